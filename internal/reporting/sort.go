package reporting

import (
	"sort"
	"strings"
	"time"
)

// SortDirection là hướng sắp xếp
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState chứa trạng thái sắp xếp: đúng một khóa hoạt động tại một thời điểm
type SortState struct {
	Field string        `json:"field"`
	Dir   SortDirection `json:"dir"`
}

// Toggle chuyển trạng thái sắp xếp theo quy tắc chuẩn của bảng:
// bấm lại khóa đang hoạt động thì đảo hướng, chọn khóa mới thì reset về tăng dần.
func (s *SortState) Toggle(field string) {
	if s.Field == field {
		if s.Dir == SortAsc {
			s.Dir = SortDesc
		} else {
			s.Dir = SortAsc
		}
		return
	}
	s.Field = field
	s.Dir = SortAsc
}

// Sort sắp xếp items tại chỗ theo SortState, dùng thuật toán ổn định
// để các giá trị bằng nhau giữ nguyên thứ tự (tránh "jitter" khi render lại).
// Không làm gì nếu khóa không được adapter khai báo.
func Sort[T any](adapter Adapter[T], items []T, st SortState) {
	if st.Field == "" {
		return
	}
	extract, ok := adapter.SortKeys[st.Field]
	if !ok {
		return
	}

	direction := 1
	if st.Dir == SortDesc {
		direction = -1
	}

	sort.SliceStable(items, func(i, j int) bool {
		return compareValues(extract(items[i]), extract(items[j]))*direction < 0
	})
}

// compareValues so sánh hai khóa sắp xếp theo kiểu tự nhiên:
// chuỗi so sánh không phân biệt hoa thường, số và thời gian so theo giá trị.
// Giá trị thiếu (nil) coi như chuỗi rỗng.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
	case float64:
		bv, _ := b.(float64)
		return compareFloat(av, bv)
	case int:
		bv, _ := b.(int)
		return compareFloat(float64(av), float64(bv))
	case int64:
		bv, _ := b.(int64)
		return compareFloat(float64(av), float64(bv))
	case time.Time:
		bv, _ := b.(time.Time)
		if av.Before(bv) {
			return -1
		}
		if av.After(bv) {
			return 1
		}
		return 0
	case nil:
		if bs, ok := b.(string); ok {
			return strings.Compare("", strings.ToLower(bs))
		}
		if b == nil {
			return 0
		}
		return -1
	default:
		return 0
	}
}

func compareFloat(a, b float64) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
