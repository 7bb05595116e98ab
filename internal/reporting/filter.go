package reporting

import (
	"strings"
	"time"
)

// FilterAll là giá trị selector nghĩa là "không lọc theo trường này"
const FilterAll = "all"

// DateLayout là định dạng ngày dùng cho các bound của khoảng ngày
const DateLayout = "2006-01-02"

// FilterState chứa toàn bộ điều kiện lọc của một danh sách.
// Các điều kiện kết hợp với nhau bằng AND.
type FilterState struct {
	// Selectors ánh xạ tên selector -> giá trị cần khớp.
	// Giá trị rỗng hoặc "all" nghĩa là không lọc theo selector đó.
	Selectors map[string]string `json:"selectors"`

	// Search là chuỗi tìm kiếm, so khớp substring không phân biệt hoa thường
	// trên các trường Searchable (OR giữa các trường).
	Search string `json:"search"`

	// DateFrom/DateTo là khoảng ngày (định dạng 2006-01-02), inclusive.
	// Rỗng hoặc không parse được nghĩa là phía đó không ràng buộc.
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

// IsZero trả về true nếu không có điều kiện lọc nào đang hoạt động
func (fs FilterState) IsZero() bool {
	if fs.Search != "" || fs.DateFrom != "" || fs.DateTo != "" {
		return false
	}
	for _, v := range fs.Selectors {
		if v != "" && v != FilterAll {
			return false
		}
	}
	return true
}

// dateBounds parse khoảng ngày thành [from 00:00:00, to 23:59:59].
// Bound không parse được coi như không ràng buộc.
func (fs FilterState) dateBounds() (from time.Time, to time.Time, hasFrom bool, hasTo bool) {
	if fs.DateFrom != "" {
		if t, err := time.Parse(DateLayout, fs.DateFrom); err == nil {
			from = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			hasFrom = true
		}
	}
	if fs.DateTo != "" {
		if t, err := time.Parse(DateLayout, fs.DateTo); err == nil {
			to = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, time.UTC)
			hasTo = true
		}
	}
	return
}

// Matches trả về true nếu entity thỏa mãn toàn bộ điều kiện lọc.
// Predicate thuần túy, không thể fail: dữ liệu thiếu coi như không khớp.
func Matches[T any](adapter Adapter[T], entity T, fs FilterState) bool {
	// Các selector phân loại: AND với nhau
	for name, want := range fs.Selectors {
		if want == "" || want == FilterAll {
			continue
		}
		extract, ok := adapter.Categorical[name]
		if !ok {
			// Selector không được adapter khai báo: không có gì khớp
			return false
		}
		if extract(entity) != want {
			return false
		}
	}

	// Tìm kiếm: OR giữa các trường, AND với các điều kiện khác
	if fs.Search != "" {
		query := strings.ToLower(fs.Search)
		found := false
		for _, extract := range adapter.Searchable {
			if strings.Contains(strings.ToLower(extract(entity)), query) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Khoảng ngày: entity không có timestamp thì bị loại khi có bound
	from, to, hasFrom, hasTo := fs.dateBounds()
	if hasFrom || hasTo {
		if adapter.Date == nil {
			return false
		}
		ts := adapter.Date(entity)
		if ts.IsZero() {
			return false
		}
		if hasFrom && ts.Before(from) {
			return false
		}
		if hasTo && ts.After(to) {
			return false
		}
	}

	return true
}

// Filter trả về slice mới chứa các entity thỏa mãn điều kiện lọc,
// giữ nguyên thứ tự đầu vào.
func Filter[T any](adapter Adapter[T], items []T, fs FilterState) []T {
	result := make([]T, 0, len(items))
	for _, entity := range items {
		if Matches(adapter, entity, fs) {
			result = append(result, entity)
		}
	}
	return result
}
