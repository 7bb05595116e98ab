// Package reporting - Test sắp xếp: ổn định, không phân biệt hoa thường, toggle hướng.
package reporting

import (
	"testing"
	"time"
)

func TestSort_ChuoiKhongPhanBietHoaThuong(t *testing.T) {
	clients := []testClient{
		{Name: "beta Inc"},
		{Name: "Acme Corp"},
		{Name: "CHARLIE Ltd"},
	}
	adapter := clientAdapter()

	Sort(adapter, clients, SortState{Field: "name", Dir: SortAsc})
	want := []string{"Acme Corp", "beta Inc", "CHARLIE Ltd"}
	for i, name := range want {
		if clients[i].Name != name {
			t.Errorf("vị trí %d: kỳ vọng '%s', nhận được '%s'", i, name, clients[i].Name)
		}
	}

	Sort(adapter, clients, SortState{Field: "name", Dir: SortDesc})
	if clients[0].Name != "CHARLIE Ltd" {
		t.Errorf("giảm dần: kỳ vọng 'CHARLIE Ltd' đứng đầu, nhận được '%s'", clients[0].Name)
	}
}

func TestSort_OnDinhKhiGiaTriBangNhau(t *testing.T) {
	type row struct {
		Key   string
		Order int
	}
	rows := []row{
		{Key: "same", Order: 1},
		{Key: "same", Order: 2},
		{Key: "same", Order: 3},
	}
	adapter := Adapter[row]{
		SortKeys: map[string]func(row) any{
			"key": func(r row) any { return r.Key },
		},
	}

	Sort(adapter, rows, SortState{Field: "key", Dir: SortAsc})
	for i, r := range rows {
		if r.Order != i+1 {
			t.Errorf("sắp xếp phải ổn định: vị trí %d có Order=%d", i, r.Order)
		}
	}
}

func TestSort_GiaTriThieuCoiNhuChuoiRong(t *testing.T) {
	type row struct{ Name *string }
	name := "zeta"
	rows := []row{
		{Name: &name},
		{Name: nil},
	}
	adapter := Adapter[row]{
		SortKeys: map[string]func(row) any{
			"name": func(r row) any {
				if r.Name == nil {
					return nil
				}
				return *r.Name
			},
		},
	}

	Sort(adapter, rows, SortState{Field: "name", Dir: SortAsc})
	if rows[0].Name != nil {
		t.Error("giá trị thiếu phải sắp trước khi tăng dần (coi như chuỗi rỗng)")
	}
}

func TestSort_SoVaThoiGianTheoGiaTriTuNhien(t *testing.T) {
	type row struct {
		Amount float64
		At     time.Time
	}
	rows := []row{
		{Amount: 100, At: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: 20, At: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Amount: 3, At: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	}
	adapter := Adapter[row]{
		SortKeys: map[string]func(row) any{
			"amount": func(r row) any { return r.Amount },
			"at":     func(r row) any { return r.At },
		},
	}

	// Số so theo giá trị, không phải theo chuỗi ("100" < "20" theo chuỗi)
	Sort(adapter, rows, SortState{Field: "amount", Dir: SortAsc})
	if rows[0].Amount != 3 || rows[2].Amount != 100 {
		t.Errorf("số phải so theo giá trị tự nhiên: %v", rows)
	}

	Sort(adapter, rows, SortState{Field: "at", Dir: SortDesc})
	if rows[0].At.Month() != 3 {
		t.Errorf("thời gian giảm dần: kỳ vọng tháng 3 đứng đầu, nhận được tháng %d", rows[0].At.Month())
	}
}

func TestSortState_Toggle(t *testing.T) {
	var st SortState

	st.Toggle("name")
	if st.Field != "name" || st.Dir != SortAsc {
		t.Errorf("chọn khóa mới phải reset về tăng dần: %+v", st)
	}

	st.Toggle("name")
	if st.Dir != SortDesc {
		t.Errorf("bấm lại khóa đang hoạt động phải đảo hướng: %+v", st)
	}

	st.Toggle("amount")
	if st.Field != "amount" || st.Dir != SortAsc {
		t.Errorf("chuyển sang khóa khác phải reset về tăng dần: %+v", st)
	}
}

func TestSort_KhoaKhongKhaiBaoKhongLamGi(t *testing.T) {
	clients := []testClient{{Name: "b"}, {Name: "a"}}
	Sort(clientAdapter(), clients, SortState{Field: "unknown", Dir: SortAsc})
	if clients[0].Name != "b" {
		t.Error("khóa không được khai báo phải giữ nguyên thứ tự")
	}
}
