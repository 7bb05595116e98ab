package dto

// RequestCreateInput khách hàng gửi yêu cầu hỗ trợ.
// ClientID chỉ dùng khi nhân viên tạo hộ, user role client lấy từ tài khoản.
type RequestCreateInput struct {
	ClientID    string `json:"clientId,omitempty"`
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=Low Normal Urgent"`
}

// RequestUpdateInput sửa nội dung yêu cầu khi chưa kết thúc
type RequestUpdateInput struct {
	Subject     string `json:"subject,omitempty"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=Low Normal Urgent"`
}

// RequestStatusInput nhân viên chuyển trạng thái và trả lời yêu cầu
type RequestStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Pending 'In Progress' Resolved Rejected"`
	Reply  string `json:"reply,omitempty"`
}
