package client

import (
	"context"
	"net/url"
	"strconv"
	"sync"
)

// ListQuery là trạng thái hiển thị danh sách phía client:
// các selector, tìm kiếm, khoảng ngày, sắp xếp và phân trang.
type ListQuery struct {
	Selectors map[string]string
	Search    string
	From      string
	To        string
	SortBy    string
	SortDir   string
	Page      int
	Limit     int
}

// Values chuyển ListQuery thành query string cho API danh sách
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	for name, v := range q.Selectors {
		if v != "" {
			values.Set(name, v)
		}
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.From != "" {
		values.Set("from", q.From)
	}
	if q.To != "" {
		values.Set("to", q.To)
	}
	if q.SortBy != "" {
		values.Set("sortBy", q.SortBy)
		values.Set("sortDir", q.SortDir)
	}
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))
	return values
}

// ListSummary phần tổng hợp server tính trên tập đã lọc
type ListSummary struct {
	Count        int                `json:"count"`
	Sums         map[string]float64 `json:"sums"`
	StatusCounts map[string]int     `json:"statusCounts"`
}

// ListResult trang dữ liệu server trả về kèm tổng hợp
type ListResult[T any] struct {
	Items      []T         `json:"items"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalItems int64       `json:"totalItems"`
	TotalPages int         `json:"totalPages"`
	Summary    ListSummary `json:"summary"`
}

// ListFetcher giữ trạng thái một màn hình danh sách và tải dữ liệu từ server.
// Đổi điều kiện lọc, tìm kiếm hay sắp xếp đều reset về trang 1.
// Mỗi lần tải tăng generation; response về muộn của lần tải cũ bị bỏ,
// nên màn hình không bao giờ hiển thị dữ liệu cũ đè lên dữ liệu mới.
type ListFetcher[T any] struct {
	client *Client
	path   string

	mu    sync.Mutex
	query ListQuery
	gen   uint64

	// OnUpdate được gọi với kết quả mới nhất (chỉ của generation hiện tại)
	OnUpdate func(ListResult[T])
	// OnError được gọi khi lần tải hiện tại thất bại
	OnError func(error)
}

// NewListFetcher tạo fetcher cho một endpoint danh sách, ví dụ "/invoices"
func NewListFetcher[T any](c *Client, path string) *ListFetcher[T] {
	return &ListFetcher[T]{
		client: c,
		path:   path,
		query:  ListQuery{Selectors: map[string]string{}, Page: 1, Limit: 10},
	}
}

// Query trả về bản sao trạng thái hiện tại
func (f *ListFetcher[T]) Query() ListQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	q := f.query
	q.Selectors = make(map[string]string, len(f.query.Selectors))
	for k, v := range f.query.Selectors {
		q.Selectors[k] = v
	}
	return q
}

// SetSelector đổi giá trị một selector và reset về trang 1
func (f *ListFetcher[T]) SetSelector(name string, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.query.Selectors[name] = value
	f.query.Page = 1
}

// SetSearch đổi chuỗi tìm kiếm và reset về trang 1
func (f *ListFetcher[T]) SetSearch(search string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.query.Search = search
	f.query.Page = 1
}

// SetDateRange đổi khoảng ngày và reset về trang 1
func (f *ListFetcher[T]) SetDateRange(from string, to string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.query.From = from
	f.query.To = to
	f.query.Page = 1
}

// ToggleSort bấm vào tiêu đề cột: cùng cột đảo hướng, cột mới về tăng dần.
// Đổi sắp xếp cũng reset về trang 1.
func (f *ListFetcher[T]) ToggleSort(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.query.SortBy == field {
		if f.query.SortDir == "desc" {
			f.query.SortDir = "asc"
		} else {
			f.query.SortDir = "desc"
		}
	} else {
		f.query.SortBy = field
		f.query.SortDir = "asc"
	}
	f.query.Page = 1
}

// SetLimit đổi số dòng mỗi trang và reset về trang 1
func (f *ListFetcher[T]) SetLimit(limit int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if limit < 1 {
		limit = 10
	}
	f.query.Limit = limit
	f.query.Page = 1
}

// SetPage chuyển trang, giữ nguyên điều kiện lọc
func (f *ListFetcher[T]) SetPage(page int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if page < 1 {
		page = 1
	}
	f.query.Page = page
}

// Refresh tải dữ liệu theo trạng thái hiện tại trong goroutine riêng.
// Kết quả chỉ được giao cho OnUpdate nếu không có lần Refresh nào mới hơn.
func (f *ListFetcher[T]) Refresh(ctx context.Context) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	query := f.query.Values()
	f.mu.Unlock()

	go func() {
		result, err := Get[ListResult[T]](ctx, f.client, f.path, query)

		f.mu.Lock()
		stale := gen != f.gen
		f.mu.Unlock()
		if stale {
			return
		}

		if err != nil {
			if f.OnError != nil {
				f.OnError(err)
			}
			return
		}
		if f.OnUpdate != nil {
			f.OnUpdate(result)
		}
	}()
}

// RefreshSync tải đồng bộ, dùng cho tool CLI và test.
// Vẫn tôn trọng generation: trả về (zero, false) nếu có lần tải mới hơn.
func (f *ListFetcher[T]) RefreshSync(ctx context.Context) (ListResult[T], bool, error) {
	f.mu.Lock()
	f.gen++
	gen := f.gen
	query := f.query.Values()
	f.mu.Unlock()

	result, err := Get[ListResult[T]](ctx, f.client, f.path, query)

	f.mu.Lock()
	stale := gen != f.gen
	f.mu.Unlock()
	if stale {
		var zero ListResult[T]
		return zero, false, nil
	}
	if err != nil {
		var zero ListResult[T]
		return zero, true, err
	}
	return result, true, nil
}
