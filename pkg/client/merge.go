package client

// MergeByID gộp một bản ghi vừa được server trả về vào danh sách đang hiển thị:
// nếu ID đã có thì thay tại chỗ (giữ nguyên vị trí), chưa có thì thêm lên đầu.
// Dùng cho cập nhật lạc quan sau create/update mà không phải tải lại cả trang.
func MergeByID[T any](items []T, updated T, id func(T) string) []T {
	updatedID := id(updated)
	for i := range items {
		if id(items[i]) == updatedID {
			merged := make([]T, len(items))
			copy(merged, items)
			merged[i] = updated
			return merged
		}
	}

	merged := make([]T, 0, len(items)+1)
	merged = append(merged, updated)
	merged = append(merged, items...)
	return merged
}

// RemoveByID loại một bản ghi khỏi danh sách đang hiển thị sau khi xóa thành công
func RemoveByID[T any](items []T, removedID string, id func(T) string) []T {
	result := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) != removedID {
			result = append(result, item)
		}
	}
	return result
}
