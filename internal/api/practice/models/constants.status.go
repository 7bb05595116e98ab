package models

// Trạng thái khách hàng
const (
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Trạng thái tờ khai thuế, chuyển tuần tự một chiều
const (
	ReturnStatusPending    = "pending"
	ReturnStatusInProgress = "in_progress"
	ReturnStatusFilled     = "filled"
	ReturnStatusCompleted  = "completed"
)

// Trạng thái hóa đơn.
// Overdue chỉ do worker phía server gán khi quá hạn thanh toán.
const (
	InvoiceStatusDraft   = "Draft"
	InvoiceStatusSent    = "Sent"
	InvoiceStatusPending = "Pending"
	InvoiceStatusPartial = "Partial"
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusOverdue = "Overdue"
)

// Trạng thái yêu cầu hỗ trợ
const (
	RequestStatusPending    = "Pending"
	RequestStatusInProgress = "In Progress"
	RequestStatusResolved   = "Resolved"
	RequestStatusRejected   = "Rejected"
)

// Độ ưu tiên của yêu cầu hỗ trợ
const (
	PriorityLow    = "Low"
	PriorityNormal = "Normal"
	PriorityUrgent = "Urgent"
)

// returnTransitions các bước chuyển hợp lệ của tờ khai
var returnTransitions = map[string][]string{
	ReturnStatusPending:    {ReturnStatusInProgress},
	ReturnStatusInProgress: {ReturnStatusFilled},
	ReturnStatusFilled:     {ReturnStatusCompleted},
	ReturnStatusCompleted:  {},
}

// invoiceTransitions các bước chuyển hợp lệ của hóa đơn.
// Pending <-> Partial vì paidAmount có thể được tính lại khi thêm thanh toán.
// Overdue quay lại Partial/Paid được khi khách thanh toán sau hạn.
var invoiceTransitions = map[string][]string{
	InvoiceStatusDraft:   {InvoiceStatusSent},
	InvoiceStatusSent:    {InvoiceStatusPending, InvoiceStatusPaid},
	InvoiceStatusPending: {InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusOverdue},
	InvoiceStatusPartial: {InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue},
	InvoiceStatusOverdue: {InvoiceStatusPartial, InvoiceStatusPaid},
	InvoiceStatusPaid:    {},
}

// requestTransitions các bước chuyển hợp lệ của yêu cầu hỗ trợ
var requestTransitions = map[string][]string{
	RequestStatusPending:    {RequestStatusInProgress, RequestStatusResolved, RequestStatusRejected},
	RequestStatusInProgress: {RequestStatusResolved, RequestStatusRejected},
	RequestStatusResolved:   {},
	RequestStatusRejected:   {},
}

func canTransition(table map[string][]string, from string, to string) bool {
	nexts, ok := table[from]
	if !ok {
		return false
	}
	for _, n := range nexts {
		if n == to {
			return true
		}
	}
	return false
}

// CanTransitionReturn kiểm tra bước chuyển trạng thái tờ khai có hợp lệ không
func CanTransitionReturn(from string, to string) bool {
	return canTransition(returnTransitions, from, to)
}

// CanTransitionInvoice kiểm tra bước chuyển trạng thái hóa đơn có hợp lệ không
func CanTransitionInvoice(from string, to string) bool {
	return canTransition(invoiceTransitions, from, to)
}

// CanTransitionRequest kiểm tra bước chuyển trạng thái yêu cầu có hợp lệ không
func CanTransitionRequest(from string, to string) bool {
	return canTransition(requestTransitions, from, to)
}

// IsTerminalReturn tờ khai đã hoàn tất thì không sửa/xóa được nữa
func IsTerminalReturn(status string) bool {
	return status == ReturnStatusCompleted
}

// IsTerminalInvoice hóa đơn đã thanh toán đủ là trạng thái kết thúc
func IsTerminalInvoice(status string) bool {
	return status == InvoiceStatusPaid
}

// IsTerminalRequest yêu cầu đã xử lý xong hoặc bị từ chối là trạng thái kết thúc
func IsTerminalRequest(status string) bool {
	return status == RequestStatusResolved || status == RequestStatusRejected
}

// CanDeleteRequest yêu cầu chỉ xóa được khi còn ở Pending.
// Đã có nhân viên xử lý (In Progress trở đi) thì giữ lại làm lịch sử.
func CanDeleteRequest(status string) bool {
	return status == RequestStatusPending
}

// IsValidPriority kiểm tra giá trị độ ưu tiên
func IsValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityNormal || p == PriorityUrgent
}
