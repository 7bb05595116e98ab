// Package reporting cung cấp engine dẫn xuất danh sách dùng chung cho mọi màn hình
// báo cáo: lọc theo selector + tìm kiếm + khoảng ngày, sắp xếp ổn định,
// phân trang và tính toán tổng hợp trên tập đã lọc (không phải trang hiện tại).
//
// Engine thuần túy, không trạng thái: mỗi domain chỉ cần khai báo một Adapter
// mô tả cách trích xuất các trường từ entity của mình.
package reporting

import "time"

// Adapter mô tả cách engine đọc dữ liệu từ một loại entity.
// Mỗi domain (client, invoice, return, ...) khai báo một Adapter riêng.
type Adapter[T any] struct {
	// Categorical ánh xạ tên selector -> hàm trích giá trị phân loại (status, type, clientId, ...)
	Categorical map[string]func(T) string

	// Searchable là danh sách các hàm trích trường văn bản dùng cho tìm kiếm
	Searchable []func(T) string

	// Date trích timestamp dùng cho lọc khoảng ngày. Trả về zero time nếu entity không có.
	Date func(T) time.Time

	// SortKeys ánh xạ tên trường sắp xếp -> hàm trích khóa (string, số hoặc time.Time)
	SortKeys map[string]func(T) any

	// Amounts ánh xạ tên tổng -> hàm trích số tiền dùng cho tổng hợp
	Amounts map[string]func(T) float64

	// Status trích trạng thái dùng cho đếm tần suất. Nil nếu entity không có trạng thái.
	Status func(T) string
}

// ViewState gom toàn bộ trạng thái hiển thị của một danh sách
type ViewState struct {
	Filter FilterState
	Sort   SortState
	Page   PageState
}

// ViewResult là kết quả đầy đủ của một lần dẫn xuất danh sách:
// trang hiện tại cùng thông tin phân trang, và tổng hợp trên tập đã lọc.
type ViewResult[T any] struct {
	PageResult[T] `json:",inline" bson:",inline"`
	Summary       Summary `json:"summary" bson:"summary"`
}

// Apply chạy toàn bộ pipeline: lọc -> sắp xếp -> phân trang + tổng hợp.
// Tổng hợp được tính trên tập đã lọc, không phải trang hiện tại.
// Dữ liệu đầu vào không bị thay đổi.
func Apply[T any](adapter Adapter[T], items []T, st ViewState) ViewResult[T] {
	filtered := Filter(adapter, items, st.Filter)
	Sort(adapter, filtered, st.Sort)

	return ViewResult[T]{
		PageResult: Paginate(filtered, st.Page),
		Summary:    Summarize(adapter, filtered),
	}
}
