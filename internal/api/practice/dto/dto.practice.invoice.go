package dto

// InvoiceCreateInput dữ liệu tạo hóa đơn, khởi tạo ở trạng thái Draft
type InvoiceCreateInput struct {
	InvoiceNumber string  `json:"invoiceNumber" validate:"required"`
	ClientID      string  `json:"clientId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	TaxAmount     float64 `json:"taxAmount" validate:"gte=0"`
	IssuedAt      int64   `json:"issuedAt,omitempty"`
	DueDate       int64   `json:"dueDate,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// InvoiceUpdateInput dữ liệu cập nhật hóa đơn, bị chặn khi đã Paid
type InvoiceUpdateInput struct {
	Amount    float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	TaxAmount float64 `json:"taxAmount,omitempty" validate:"omitempty,gte=0"`
	IssuedAt  int64   `json:"issuedAt,omitempty"`
	DueDate   int64   `json:"dueDate,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// InvoiceStatusInput đổi trạng thái hóa đơn theo máy trạng thái
type InvoiceStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Draft Sent Pending Partial Paid Overdue"`
}

// PaymentCreateInput ghi nhận một lần thanh toán cho hóa đơn
type PaymentCreateInput struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Method string  `json:"method,omitempty"`
	PaidAt int64   `json:"paidAt,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}
