package dto

// ReturnTypeCreateInput dữ liệu tạo loại tờ khai
type ReturnTypeCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// ReturnTypeUpdateInput dữ liệu cập nhật loại tờ khai
type ReturnTypeUpdateInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ReturnCreateInput dữ liệu tạo tờ khai, trạng thái khởi tạo luôn là pending
type ReturnCreateInput struct {
	ClientID       string `json:"clientId" validate:"required"`
	TypeID         string `json:"typeId" validate:"required"`
	FinancialYear  string `json:"financialYear" validate:"required"`
	AssessmentYear string `json:"assessmentYear,omitempty"`
	DueDate        int64  `json:"dueDate,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ReturnUpdateInput dữ liệu cập nhật tờ khai, đổi trạng thái đi qua API riêng
type ReturnUpdateInput struct {
	FinancialYear  string `json:"financialYear,omitempty"`
	AssessmentYear string `json:"assessmentYear,omitempty"`
	DueDate        int64  `json:"dueDate,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// ReturnStatusInput đổi trạng thái tờ khai
type ReturnStatusInput struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress filled completed"`
}
