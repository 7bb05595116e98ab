package reporting

import "time"

// MonthLayout là định dạng khóa bucket tháng
const MonthLayout = "2006-01"

// Summary chứa các tổng hợp tính trên tập đã lọc (không phải trang hiện tại)
type Summary struct {
	Count        int                `json:"count" bson:"count"`               // Số entity trong tập đã lọc
	Sums         map[string]float64 `json:"sums" bson:"sums"`                 // Tổng các trường số tiền theo tên
	StatusCounts map[string]int     `json:"statusCounts" bson:"statusCounts"` // Đếm tần suất theo trạng thái
}

// Summarize tính tổng hợp một lượt trên tập đã lọc.
// Adapter trả về 0 cho trường thiếu nên không có NaN lan truyền.
func Summarize[T any](adapter Adapter[T], items []T) Summary {
	summary := Summary{
		Count:        len(items),
		Sums:         make(map[string]float64, len(adapter.Amounts)),
		StatusCounts: make(map[string]int),
	}

	// Khởi tạo mọi tổng về 0 để tập rỗng vẫn trả về đủ các khóa
	for name := range adapter.Amounts {
		summary.Sums[name] = 0
	}

	for _, entity := range items {
		for name, extract := range adapter.Amounts {
			summary.Sums[name] += extract(entity)
		}
		if adapter.Status != nil {
			// Trạng thái lạ vẫn được đếm, không bị loại
			summary.StatusCounts[adapter.Status(entity)]++
		}
	}

	return summary
}

// Growth tính phần trăm tăng trưởng giữa hai bucket.
// Quy ước: previous = 0 và current > 0 -> 100% (không phải vô cực),
// cả hai bằng 0 -> 0%.
func Growth(previous, current float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

// MonthKey trả về khóa bucket tháng của một thời điểm
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// MonthBuckets nhóm tổng số tiền theo tháng (khóa 2006-01).
// Entity không có timestamp bị bỏ qua.
func MonthBuckets[T any](items []T, date func(T) time.Time, amount func(T) float64) map[string]float64 {
	buckets := make(map[string]float64)
	for _, entity := range items {
		ts := date(entity)
		if ts.IsZero() {
			continue
		}
		buckets[MonthKey(ts)] += amount(entity)
	}
	return buckets
}

// MonthGrowth tính tăng trưởng của một tháng so với tháng liền trước
// dựa trên buckets đã nhóm.
func MonthGrowth(buckets map[string]float64, month time.Time) float64 {
	current := buckets[MonthKey(month)]
	previous := buckets[MonthKey(month.AddDate(0, -1, 0))]
	return Growth(previous, current)
}

// CanModify trả về true nếu entity còn được phép sửa/xóa,
// tức trạng thái hiện tại không thuộc danh sách trạng thái kết thúc.
func CanModify(status string, terminalStatuses ...string) bool {
	for _, terminal := range terminalStatuses {
		if status == terminal {
			return false
		}
	}
	return true
}
