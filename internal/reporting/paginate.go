package reporting

// DefaultPageSize là kích thước trang mặc định khi không chỉ định
const DefaultPageSize = 10

// PageState chứa trạng thái phân trang: trang hiện tại (1-based) và kích thước trang
type PageState struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Normalize đưa PageState về giá trị hợp lệ: page >= 1, limit > 0
func (p PageState) Normalize() PageState {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	return p
}

// PageResult chứa một trang dữ liệu cùng thông tin phân trang
type PageResult[T any] struct {
	Items      []T   `json:"items" bson:"items"`
	Page       int   `json:"page" bson:"page"`
	Limit      int   `json:"limit" bson:"limit"`
	TotalItems int64 `json:"totalItems" bson:"totalItems"`
	TotalPages int   `json:"totalPages" bson:"totalPages"`
}

// TotalPages tính tổng số trang, tối thiểu 1 để tập rỗng vẫn là "trang 1 / 1"
func TotalPages(count int, limit int) int {
	if limit < 1 {
		limit = DefaultPageSize
	}
	pages := (count + limit - 1) / limit
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Paginate cắt trang từ tập đã lọc và sắp xếp.
// Trang vượt quá tổng số trang được clamp về trang cuối.
func Paginate[T any](items []T, st PageState) PageResult[T] {
	st = st.Normalize()

	totalPages := TotalPages(len(items), st.Limit)
	if st.Page > totalPages {
		st.Page = totalPages
	}

	start := (st.Page - 1) * st.Limit
	end := start + st.Limit
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	// Trả về slice mới để trang không giữ tham chiếu tới backing array lớn
	page := make([]T, end-start)
	copy(page, items[start:end])

	return PageResult[T]{
		Items:      page,
		Page:       st.Page,
		Limit:      st.Limit,
		TotalItems: int64(len(items)),
		TotalPages: totalPages,
	}
}
