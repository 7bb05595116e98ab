package practicesvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "ca_practice/internal/api/base/service"
	practicedto "ca_practice/internal/api/practice/dto"
	"ca_practice/internal/api/practice/models"
	"ca_practice/internal/common"
	"ca_practice/internal/global"
	"ca_practice/internal/reporting"
	"ca_practice/internal/utility"
)

// InvoiceService service quản lý hóa đơn và thanh toán.
// Thanh toán lưu ở collection riêng; paidAmount và trạng thái Partial/Paid
// luôn được tính lại từ tổng thanh toán, không tin giá trị client gửi lên.
type InvoiceService struct {
	*basesvc.BaseServiceMongoImpl[models.Invoice]
	payments *basesvc.BaseServiceMongoImpl[models.Payment]
	adapter  reporting.Adapter[models.Invoice]
}

// NewInvoiceService tạo mới InvoiceService với collection invoices và payments từ registry
func NewInvoiceService() *InvoiceService {
	invoices := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Invoices)
	payments := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Payments)
	return &InvoiceService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Invoice](invoices),
		payments:             basesvc.NewBaseServiceMongo[models.Payment](payments),
		adapter:              invoiceAdapter(),
	}
}

func invoiceAdapter() reporting.Adapter[models.Invoice] {
	return reporting.Adapter[models.Invoice]{
		Categorical: map[string]func(models.Invoice) string{
			"status":   func(i models.Invoice) string { return i.Status },
			"clientId": func(i models.Invoice) string { return utility.ObjectID2String(i.ClientID) },
		},
		Searchable: []func(models.Invoice) string{
			func(i models.Invoice) string { return i.InvoiceNumber },
			func(i models.Invoice) string { return i.Notes },
		},
		Date: func(i models.Invoice) time.Time { return millisToTime(i.IssuedAt) },
		SortKeys: map[string]func(models.Invoice) any{
			"invoiceNumber": func(i models.Invoice) any { return i.InvoiceNumber },
			"totalAmount":   func(i models.Invoice) any { return i.TotalAmount },
			"paidAmount":    func(i models.Invoice) any { return i.PaidAmount },
			"status":        func(i models.Invoice) any { return i.Status },
			"dueDate":       func(i models.Invoice) any { return millisToTime(i.DueDate) },
			"issuedAt":      func(i models.Invoice) any { return millisToTime(i.IssuedAt) },
		},
		Amounts: map[string]func(models.Invoice) float64{
			"total":   func(i models.Invoice) float64 { return i.TotalAmount },
			"paid":    func(i models.Invoice) float64 { return i.PaidAmount },
			"pending": func(i models.Invoice) float64 { return i.TotalAmount - i.PaidAmount },
		},
		Status: func(i models.Invoice) string { return i.Status },
	}
}

// CreateInvoice tạo hóa đơn mới ở trạng thái Draft, totalAmount = amount + taxAmount
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *practicedto.InvoiceCreateInput) (models.Invoice, error) {
	var zero models.Invoice

	clientID := utility.String2ObjectID(input.ClientID)
	if clientID.IsZero() {
		return zero, errInvalidID("client", input.ClientID)
	}

	issuedAt := input.IssuedAt
	if issuedAt == 0 {
		issuedAt = time.Now().UnixMilli()
	}

	invoice := models.Invoice{
		InvoiceNumber: input.InvoiceNumber,
		ClientID:      clientID,
		Amount:        input.Amount,
		TaxAmount:     input.TaxAmount,
		TotalAmount:   input.Amount + input.TaxAmount,
		PaidAmount:    0,
		Status:        models.InvoiceStatusDraft,
		IssuedAt:      issuedAt,
		DueDate:       input.DueDate,
		Notes:         input.Notes,
	}
	return s.InsertOne(ctx, invoice)
}

// UpdateInvoice cập nhật nội dung hóa đơn, bị chặn khi đã Paid.
// Đổi amount/taxAmount tính lại totalAmount.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id string, input *practicedto.InvoiceUpdateInput) (models.Invoice, error) {
	var zero models.Invoice

	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return zero, errInvalidID("invoice", id)
	}

	current, err := s.FindOneById(ctx, objID)
	if err != nil {
		return zero, err
	}
	if models.IsTerminalInvoice(current.Status) {
		return zero, common.ErrTerminalStatus
	}

	set := map[string]interface{}{}
	amount := current.Amount
	taxAmount := current.TaxAmount
	if input.Amount > 0 {
		amount = input.Amount
		set["amount"] = amount
	}
	if input.TaxAmount > 0 {
		taxAmount = input.TaxAmount
		set["taxAmount"] = taxAmount
	}
	if input.Amount > 0 || input.TaxAmount > 0 {
		set["totalAmount"] = amount + taxAmount
	}
	if input.IssuedAt != 0 {
		set["issuedAt"] = input.IssuedAt
	}
	if input.DueDate != 0 {
		set["dueDate"] = input.DueDate
	}
	if input.Notes != "" {
		set["notes"] = input.Notes
	}

	if len(set) == 0 {
		return current, nil
	}
	return s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
}

// UpdateStatus chuyển trạng thái hóa đơn theo máy trạng thái.
// Chuyển sang Sent gửi thông báo cho khách hàng.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id string, newStatus string) (models.Invoice, error) {
	var zero models.Invoice

	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return zero, errInvalidID("invoice", id)
	}

	current, err := s.FindOneById(ctx, objID)
	if err != nil {
		return zero, err
	}

	if !models.CanTransitionInvoice(current.Status, newStatus) {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			"Không thể chuyển hóa đơn từ "+current.Status+" sang "+newStatus,
			common.StatusConflict,
			nil,
		)
	}

	updated, err := s.UpdateById(ctx, objID, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": newStatus},
	})
	if err != nil {
		return zero, err
	}

	if newStatus == models.InvoiceStatusSent {
		sendClientNotification(ctx, updated.ClientID,
			"Hóa đơn mới",
			"Hóa đơn "+updated.InvoiceNumber+" đã được gửi tới quý khách",
			"invoice", updated.ID)
	}

	return updated, nil
}

// AddPayment ghi nhận thanh toán và tính lại paidAmount + trạng thái của hóa đơn.
// Hóa đơn Draft chưa gửi và hóa đơn Paid không nhận thêm thanh toán.
func (s *InvoiceService) AddPayment(ctx context.Context, invoiceID string, input *practicedto.PaymentCreateInput) (models.Invoice, error) {
	var zero models.Invoice

	objID := utility.String2ObjectID(invoiceID)
	if objID.IsZero() {
		return zero, errInvalidID("invoice", invoiceID)
	}

	invoice, err := s.FindOneById(ctx, objID)
	if err != nil {
		return zero, err
	}
	if invoice.Status == models.InvoiceStatusDraft {
		return zero, common.NewError(
			common.ErrCodeBusinessOperation,
			"Hóa đơn chưa gửi, không ghi nhận thanh toán được",
			common.StatusConflict,
			nil,
		)
	}
	if models.IsTerminalInvoice(invoice.Status) {
		return zero, common.ErrTerminalStatus
	}

	paidAt := input.PaidAt
	if paidAt == 0 {
		paidAt = time.Now().UnixMilli()
	}
	payment := models.Payment{
		InvoiceID: objID,
		Amount:    input.Amount,
		Method:    input.Method,
		PaidAt:    paidAt,
		Notes:     input.Notes,
	}
	if _, err := s.payments.InsertOne(ctx, payment); err != nil {
		return zero, err
	}

	return s.RecalculatePaidAmount(ctx, objID)
}

// RecalculatePaidAmount tính lại paidAmount từ toàn bộ thanh toán của hóa đơn
// và dẫn xuất trạng thái: đủ tiền -> Paid, một phần -> Partial, chưa có -> Pending.
func (s *InvoiceService) RecalculatePaidAmount(ctx context.Context, invoiceID primitive.ObjectID) (models.Invoice, error) {
	var zero models.Invoice

	invoice, err := s.FindOneById(ctx, invoiceID)
	if err != nil {
		return zero, err
	}

	payments, err := s.payments.Find(ctx, bson.M{"invoiceId": invoiceID}, nil)
	if err != nil {
		return zero, err
	}

	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}

	status := invoice.Status
	switch {
	case paid >= invoice.TotalAmount && invoice.TotalAmount > 0:
		status = models.InvoiceStatusPaid
	case paid > 0:
		status = models.InvoiceStatusPartial
	case invoice.Status == models.InvoiceStatusPartial:
		// Toàn bộ thanh toán đã bị xóa
		status = models.InvoiceStatusPending
	}

	return s.UpdateById(ctx, invoiceID, &basesvc.UpdateData{
		Set: map[string]interface{}{
			"paidAmount": paid,
			"status":     status,
		},
	})
}

// ListPayments trả về các thanh toán của một hóa đơn, mới nhất trước
func (s *InvoiceService) ListPayments(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	objID := utility.String2ObjectID(invoiceID)
	if objID.IsZero() {
		return nil, errInvalidID("invoice", invoiceID)
	}

	opts := options.Find().SetSort(bson.D{{Key: "paidAt", Value: -1}})
	return s.payments.Find(ctx, bson.M{"invoiceId": objID}, opts)
}

// DeleteInvoice xóa hóa đơn cùng các thanh toán của nó, bị chặn khi đã Paid
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id string) error {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return errInvalidID("invoice", id)
	}

	invoice, err := s.FindOneById(ctx, objID)
	if err != nil {
		return err
	}
	if models.IsTerminalInvoice(invoice.Status) {
		return common.ErrTerminalStatus
	}

	if _, err := s.payments.Collection().DeleteMany(ctx, bson.M{"invoiceId": objID}); err != nil {
		return common.ConvertMongoError(err)
	}
	return s.DeleteById(ctx, objID)
}

// MarkOverdueInvoices gán trạng thái Overdue cho các hóa đơn Pending/Partial
// đã quá hạn thanh toán. Trả về số hóa đơn bị đánh dấu. Worker gọi định kỳ.
func (s *InvoiceService) MarkOverdueInvoices(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"status":  bson.M{"$in": []string{models.InvoiceStatusPending, models.InvoiceStatusPartial}},
		"dueDate": bson.M{"$gt": 0, "$lt": now.UnixMilli()},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.InvoiceStatusOverdue,
		"updatedAt": now.UnixMilli(),
	}}

	result, err := s.Collection().UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}

// List dẫn xuất danh sách hóa đơn theo scope vai trò.
// Summary gồm các tổng total/paid/pending trên tập đã lọc.
func (s *InvoiceService) List(ctx context.Context, scope bson.M, st reporting.ViewState) (*reporting.ViewResult[models.Invoice], error) {
	items, err := s.Find(ctx, scope, nil)
	if err != nil {
		return nil, err
	}
	result := reporting.Apply(s.adapter, items, st)
	return &result, nil
}
