package practicesvc

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ca_practice/internal/api/practice/models"
	"ca_practice/internal/common"
	"ca_practice/internal/reporting"
)

func TestInvoiceAdapter_TongHopTrenTapDaLoc(t *testing.T) {
	clientA := primitive.NewObjectID()
	clientB := primitive.NewObjectID()
	now := time.Now().UnixMilli()

	invoices := []models.Invoice{
		{InvoiceNumber: "INV-001", ClientID: clientA, TotalAmount: 100, PaidAmount: 100, Status: models.InvoiceStatusPaid, IssuedAt: now},
		{InvoiceNumber: "INV-002", ClientID: clientA, TotalAmount: 200, PaidAmount: 50, Status: models.InvoiceStatusPartial, IssuedAt: now},
		{InvoiceNumber: "INV-003", ClientID: clientB, TotalAmount: 300, PaidAmount: 0, Status: models.InvoiceStatusPending, IssuedAt: now},
	}

	st := reporting.ViewState{
		Filter: reporting.FilterState{
			Selectors: map[string]string{"clientId": clientA.Hex()},
		},
		Page: reporting.PageState{Page: 1, Limit: 10},
	}

	result := reporting.Apply(invoiceAdapter(), invoices, st)

	if result.TotalItems != 2 {
		t.Fatalf("lọc theo clientId phải còn 2 hóa đơn, nhận được %d", result.TotalItems)
	}
	if got := result.Summary.Sums["total"]; got != 300 {
		t.Errorf("tổng total trên tập đã lọc phải là 300, nhận được %v", got)
	}
	if got := result.Summary.Sums["paid"]; got != 150 {
		t.Errorf("tổng paid trên tập đã lọc phải là 150, nhận được %v", got)
	}
	if got := result.Summary.Sums["pending"]; got != 150 {
		t.Errorf("tổng pending trên tập đã lọc phải là 150, nhận được %v", got)
	}
	if result.Summary.StatusCounts[models.InvoiceStatusPaid] != 1 ||
		result.Summary.StatusCounts[models.InvoiceStatusPartial] != 1 {
		t.Errorf("đếm trạng thái sai: %v", result.Summary.StatusCounts)
	}
}

func TestClientAdapter_TimKiemTrenNhieuTruong(t *testing.T) {
	clients := []models.Client{
		{BusinessName: "Công ty Alpha", ContactName: "Nguyễn Văn A", Email: "a@alpha.vn", Status: models.ClientStatusActive},
		{BusinessName: "Beta Ltd", ContactName: "Trần Thị B", Email: "b@beta.vn", Status: models.ClientStatusActive},
		{BusinessName: "Gamma Co", ContactName: "alpha phạm", Email: "c@gamma.vn", Status: models.ClientStatusInactive},
	}

	st := reporting.ViewState{
		Filter: reporting.FilterState{Search: "ALPHA"},
		Page:   reporting.PageState{Page: 1, Limit: 10},
	}

	result := reporting.Apply(clientAdapter(), clients, st)

	// Khớp cả businessName lẫn contactName, không phân biệt hoa thường
	if result.TotalItems != 2 {
		t.Fatalf("tìm 'ALPHA' phải khớp 2 khách hàng, nhận được %d", result.TotalItems)
	}
}

func TestClientAdapter_TimKiemTheoDinhDanhThue(t *testing.T) {
	clients := []models.Client{
		{BusinessName: "Công ty Alpha", Phone: "0901234567", TaxCode: "0312345678", GstNumber: "29ABCDE1234F1Z5", Status: models.ClientStatusActive},
		{BusinessName: "Beta Ltd", Phone: "0987654321", TaxCode: "0109876543", GstNumber: "07XYZAB9876C1Z2", Status: models.ClientStatusActive},
	}

	adapter := clientAdapter()

	byPhone := reporting.Apply(adapter, clients, reporting.ViewState{
		Filter: reporting.FilterState{Search: "0901234"},
		Page:   reporting.PageState{Page: 1, Limit: 10},
	})
	if byPhone.TotalItems != 1 || byPhone.Items[0].BusinessName != "Công ty Alpha" {
		t.Errorf("tìm theo số điện thoại phải khớp đúng 1 khách hàng Alpha, nhận được %d", byPhone.TotalItems)
	}

	byGst := reporting.Apply(adapter, clients, reporting.ViewState{
		Filter: reporting.FilterState{Search: "07xyzab"},
		Page:   reporting.PageState{Page: 1, Limit: 10},
	})
	if byGst.TotalItems != 1 || byGst.Items[0].BusinessName != "Beta Ltd" {
		t.Errorf("tìm theo GST không phân biệt hoa thường phải khớp đúng 1 khách hàng Beta, nhận được %d", byGst.TotalItems)
	}
}

func TestClientReferenceError_ChanXoaKhiConDuLieu(t *testing.T) {
	if err := clientReferenceError(map[string]int64{"documents": 0, "returns": 0, "invoices": 0}); err != nil {
		t.Errorf("không còn dữ liệu tham chiếu thì phải xóa được, nhận lỗi: %v", err)
	}

	err := clientReferenceError(map[string]int64{"documents": 0, "returns": 2, "invoices": 1})
	if err == nil {
		t.Fatal("còn tờ khai và hóa đơn tham chiếu thì phải bị chặn")
	}

	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi chặn xóa phải là *common.Error, nhận được %T", err)
	}
	if customErr.StatusCode != common.StatusConflict {
		t.Errorf("lỗi chặn xóa phải trả về %d, nhận được %d", common.StatusConflict, customErr.StatusCode)
	}
	refs, ok := customErr.Details.(map[string]int64)
	if !ok {
		t.Fatalf("details phải liệt kê các loại dữ liệu tham chiếu, nhận được %T", customErr.Details)
	}
	if refs["returns"] != 2 || refs["invoices"] != 1 {
		t.Errorf("details sai: %v", refs)
	}
	if _, found := refs["documents"]; found {
		t.Error("loại không có bản ghi tham chiếu không được xuất hiện trong details")
	}
}

func TestRequestAdapter_SapXepTheoNgayTao(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	requests := []models.SupportRequest{
		{Subject: "Hỏi về thuế GTGT", Status: models.RequestStatusPending, Priority: models.PriorityNormal, CreatedAt: base.AddDate(0, 0, 2).UnixMilli()},
		{Subject: "Xin hóa đơn", Status: models.RequestStatusPending, Priority: models.PriorityUrgent, CreatedAt: base.UnixMilli()},
		{Subject: "Bổ sung chứng từ", Status: models.RequestStatusResolved, Priority: models.PriorityLow, CreatedAt: base.AddDate(0, 0, 1).UnixMilli()},
	}

	st := reporting.ViewState{
		Sort: reporting.SortState{Field: "createdAt", Dir: reporting.SortDesc},
		Page: reporting.PageState{Page: 1, Limit: 10},
	}

	result := reporting.Apply(requestAdapter(), requests, st)

	if result.Items[0].Subject != "Hỏi về thuế GTGT" || result.Items[2].Subject != "Xin hóa đơn" {
		t.Errorf("sắp xếp giảm dần theo createdAt sai thứ tự: %v, %v, %v",
			result.Items[0].Subject, result.Items[1].Subject, result.Items[2].Subject)
	}
}
