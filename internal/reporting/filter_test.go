// Package reporting - Test predicate lọc: selector AND, tìm kiếm substring, khoảng ngày.
package reporting

import (
	"testing"
	"time"
)

type testClient struct {
	Name   string
	Email  string
	Status string
	Joined time.Time
}

func clientAdapter() Adapter[testClient] {
	return Adapter[testClient]{
		Categorical: map[string]func(testClient) string{
			"status": func(c testClient) string { return c.Status },
		},
		Searchable: []func(testClient) string{
			func(c testClient) string { return c.Name },
			func(c testClient) string { return c.Email },
		},
		Date: func(c testClient) time.Time { return c.Joined },
		SortKeys: map[string]func(testClient) any{
			"name": func(c testClient) any { return c.Name },
		},
	}
}

func TestFilter_SelectorVaSearch(t *testing.T) {
	clients := []testClient{
		{Name: "Acme Corp", Status: "active"},
		{Name: "Beta Inc", Status: "inactive"},
	}

	fs := FilterState{
		Selectors: map[string]string{"status": "active"},
		Search:    "acme",
	}

	result := Filter(clientAdapter(), clients, fs)
	if len(result) != 1 {
		t.Fatalf("kỳ vọng 1 kết quả, nhận được %d", len(result))
	}
	if result[0].Name != "Acme Corp" {
		t.Errorf("kỳ vọng 'Acme Corp', nhận được '%s'", result[0].Name)
	}
}

func TestFilter_SelectorAllKhongLoc(t *testing.T) {
	clients := []testClient{
		{Name: "Acme Corp", Status: "active"},
		{Name: "Beta Inc", Status: "inactive"},
	}

	for _, value := range []string{"", FilterAll} {
		fs := FilterState{Selectors: map[string]string{"status": value}}
		result := Filter(clientAdapter(), clients, fs)
		if len(result) != 2 {
			t.Errorf("selector '%s' phải trả về toàn bộ, nhận được %d", value, len(result))
		}
	}
}

func TestFilter_SearchSubstringKhongPhanBietHoaThuong(t *testing.T) {
	clients := []testClient{
		{Name: "Acme Corp", Email: "contact@acme.vn"},
		{Name: "Beta Inc", Email: "hello@beta.vn"},
	}
	adapter := clientAdapter()

	cases := []struct {
		query string
		want  int
	}{
		{"ACME", 1},
		{"acme", 1},
		{"cme c", 1},
		{"beta.vn", 1},
		{"", 2},       // query rỗng khớp tất cả
		{"zzz", 0},
	}

	for _, tc := range cases {
		result := Filter(adapter, clients, FilterState{Search: tc.query})
		if len(result) != tc.want {
			t.Errorf("search '%s': kỳ vọng %d, nhận được %d", tc.query, tc.want, len(result))
		}
	}
}

func TestFilter_IdempotentVaGiaoHoan(t *testing.T) {
	clients := []testClient{
		{Name: "Acme Corp", Status: "active"},
		{Name: "Acme Labs", Status: "inactive"},
		{Name: "Beta Inc", Status: "active"},
	}
	adapter := clientAdapter()

	fs := FilterState{
		Selectors: map[string]string{"status": "active"},
		Search:    "acme",
	}

	// Idempotent: lọc hai lần cho cùng kết quả
	once := Filter(adapter, clients, fs)
	twice := Filter(adapter, once, fs)
	if len(once) != len(twice) {
		t.Fatalf("lọc hai lần phải cho cùng kết quả: %d != %d", len(once), len(twice))
	}

	// Giao hoán: lọc selector trước rồi search, hay ngược lại, đều như nhau
	bySelector := Filter(adapter, clients, FilterState{Selectors: map[string]string{"status": "active"}})
	thenSearch := Filter(adapter, bySelector, FilterState{Search: "acme"})

	bySearch := Filter(adapter, clients, FilterState{Search: "acme"})
	thenSelector := Filter(adapter, bySearch, FilterState{Selectors: map[string]string{"status": "active"}})

	if len(thenSearch) != len(thenSelector) || len(thenSearch) != len(once) {
		t.Errorf("thứ tự áp dụng filter không được thay đổi kết quả: %d, %d, %d",
			len(once), len(thenSearch), len(thenSelector))
	}
}

func TestFilter_KhoangNgayInclusive(t *testing.T) {
	day := func(s string) time.Time {
		t, _ := time.Parse(DateLayout, s)
		return t.Add(15 * time.Hour) // giữa ngày
	}
	clients := []testClient{
		{Name: "A", Joined: day("2026-01-05")},
		{Name: "B", Joined: day("2026-01-15")},
		{Name: "C", Joined: day("2026-02-01")},
		{Name: "D"}, // không có timestamp
	}
	adapter := clientAdapter()

	result := Filter(adapter, clients, FilterState{DateFrom: "2026-01-05", DateTo: "2026-01-15"})
	if len(result) != 2 {
		t.Fatalf("khoảng ngày inclusive phải chứa cả hai biên: kỳ vọng 2, nhận được %d", len(result))
	}

	// Entity không có timestamp bị loại khi có bound
	for _, c := range result {
		if c.Name == "D" {
			t.Error("entity không có timestamp phải bị loại khi có bound ngày")
		}
	}

	// Chỉ một phía ràng buộc
	fromOnly := Filter(adapter, clients, FilterState{DateFrom: "2026-01-15"})
	if len(fromOnly) != 2 {
		t.Errorf("chỉ ràng buộc from: kỳ vọng 2, nhận được %d", len(fromOnly))
	}
}

func TestFilter_NgayKhongParseDuocCoiNhuKhongRangBuoc(t *testing.T) {
	clients := []testClient{
		{Name: "A", Joined: time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)},
	}

	result := Filter(clientAdapter(), clients, FilterState{DateFrom: "not-a-date"})
	if len(result) != 1 {
		t.Errorf("bound không hợp lệ phải bị bỏ qua, nhận được %d kết quả", len(result))
	}
}
