// Package reporting - Test tổng hợp: tổng số tiền, tăng trưởng, đếm trạng thái, gating sửa/xóa.
package reporting

import (
	"testing"
	"time"
)

type testInvoice struct {
	Number      string
	Status      string
	TotalAmount float64
	PaidAmount  float64
	IssuedAt    time.Time
}

func invoiceAdapter() Adapter[testInvoice] {
	return Adapter[testInvoice]{
		Categorical: map[string]func(testInvoice) string{
			"status": func(i testInvoice) string { return i.Status },
		},
		Searchable: []func(testInvoice) string{
			func(i testInvoice) string { return i.Number },
		},
		Date: func(i testInvoice) time.Time { return i.IssuedAt },
		Amounts: map[string]func(testInvoice) float64{
			"total":   func(i testInvoice) float64 { return i.TotalAmount },
			"paid":    func(i testInvoice) float64 { return i.PaidAmount },
			"pending": func(i testInvoice) float64 { return i.TotalAmount - i.PaidAmount },
		},
		Status: func(i testInvoice) string { return i.Status },
	}
}

func TestSummarize_PaidCongPendingBangTotal(t *testing.T) {
	cases := [][]testInvoice{
		{}, // tập rỗng: mọi tổng đều 0
		{
			{Number: "INV-001", Status: "Paid", TotalAmount: 1000, PaidAmount: 1000},
			{Number: "INV-002", Status: "Partial", TotalAmount: 500, PaidAmount: 200},
			{Number: "INV-003", Status: "Pending", TotalAmount: 300, PaidAmount: 0},
		},
	}

	adapter := invoiceAdapter()
	for _, invoices := range cases {
		summary := Summarize(adapter, invoices)

		if summary.Sums["paid"]+summary.Sums["pending"] != summary.Sums["total"] {
			t.Errorf("paid (%v) + pending (%v) phải bằng total (%v)",
				summary.Sums["paid"], summary.Sums["pending"], summary.Sums["total"])
		}
		if summary.Count != len(invoices) {
			t.Errorf("count phải là %d, nhận được %d", len(invoices), summary.Count)
		}
	}
}

func TestSummarize_TapRongVanCoDuCacKhoa(t *testing.T) {
	summary := Summarize(invoiceAdapter(), nil)

	for _, key := range []string{"total", "paid", "pending"} {
		value, ok := summary.Sums[key]
		if !ok {
			t.Errorf("tập rỗng vẫn phải có khóa '%s' với giá trị 0", key)
		}
		if value != 0 {
			t.Errorf("khóa '%s' phải là 0 với tập rỗng, nhận được %v", key, value)
		}
	}
}

func TestSummarize_DemTrangThaiKeCaTrangThaiLa(t *testing.T) {
	invoices := []testInvoice{
		{Status: "Paid"},
		{Status: "Paid"},
		{Status: "Pending"},
		{Status: "SomethingElse"}, // trạng thái ngoài enum vẫn được đếm
	}

	summary := Summarize(invoiceAdapter(), invoices)
	if summary.StatusCounts["Paid"] != 2 {
		t.Errorf("Paid phải đếm được 2, nhận được %d", summary.StatusCounts["Paid"])
	}
	if summary.StatusCounts["SomethingElse"] != 1 {
		t.Errorf("trạng thái lạ vẫn phải được đếm, nhận được %d", summary.StatusCounts["SomethingElse"])
	}
}

func TestGrowth_CacTruongHopBien(t *testing.T) {
	cases := []struct {
		previous, current, want float64
	}{
		{0, 500, 100}, // trước = 0, sau > 0: cố định 100%
		{0, 0, 0},     // cả hai = 0: 0%
		{100, 150, 50},
		{200, 100, -50},
		{100, 100, 0},
	}

	for _, tc := range cases {
		got := Growth(tc.previous, tc.current)
		if got != tc.want {
			t.Errorf("Growth(%v, %v) = %v, kỳ vọng %v", tc.previous, tc.current, got, tc.want)
		}
	}
}

func TestMonthBuckets_VaMonthGrowth(t *testing.T) {
	jan := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	invoices := []testInvoice{
		{TotalAmount: 100, IssuedAt: jan},
		{TotalAmount: 200, IssuedAt: jan},
		{TotalAmount: 450, IssuedAt: feb},
		{TotalAmount: 50}, // không có timestamp: bỏ qua
	}

	buckets := MonthBuckets(invoices,
		func(i testInvoice) time.Time { return i.IssuedAt },
		func(i testInvoice) float64 { return i.TotalAmount })

	if buckets["2026-01"] != 300 {
		t.Errorf("bucket 2026-01 phải là 300, nhận được %v", buckets["2026-01"])
	}
	if buckets["2026-02"] != 450 {
		t.Errorf("bucket 2026-02 phải là 450, nhận được %v", buckets["2026-02"])
	}
	if _, ok := buckets[MonthKey(time.Time{})]; ok {
		t.Error("entity không có timestamp không được tạo bucket")
	}

	growth := MonthGrowth(buckets, feb)
	if growth != 50 {
		t.Errorf("tăng trưởng tháng 2 so với tháng 1 phải là 50%%, nhận được %v", growth)
	}
}

func TestCanModify_TrangThaiKetThuc(t *testing.T) {
	if CanModify("Paid", "Paid") {
		t.Error("hóa đơn Paid phải bị khóa sửa/xóa")
	}
	if !CanModify("Pending", "Paid") {
		t.Error("hóa đơn Pending phải còn sửa được")
	}
	if CanModify("Rejected", "Resolved", "Rejected") {
		t.Error("yêu cầu Rejected phải bị khóa khi Rejected thuộc danh sách kết thúc")
	}
}

func TestApply_TongHopTrenTapDaLocKhongPhaiTrang(t *testing.T) {
	invoices := make([]testInvoice, 0, 25)
	for i := 0; i < 25; i++ {
		invoices = append(invoices, testInvoice{
			Number:      "INV",
			Status:      "Pending",
			TotalAmount: 10,
		})
	}

	result := Apply(invoiceAdapter(), invoices, ViewState{
		Page: PageState{Page: 1, Limit: 10},
	})

	if len(result.Items) != 10 {
		t.Errorf("trang 1 phải có 10 items, nhận được %d", len(result.Items))
	}
	// Tổng hợp phải tính trên toàn bộ 25 items đã lọc, không phải 10 items của trang
	if result.Summary.Sums["total"] != 250 {
		t.Errorf("tổng phải tính trên tập đã lọc (250), nhận được %v", result.Summary.Sums["total"])
	}
	if result.Summary.Count != 25 {
		t.Errorf("count tổng hợp phải là 25, nhận được %d", result.Summary.Count)
	}
}
