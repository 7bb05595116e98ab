package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func itemID(i testItem) string { return i.ID }

func TestMergeByID_ThayTaiChoGiuViTri(t *testing.T) {
	items := []testItem{
		{ID: "1", Name: "Một"},
		{ID: "2", Name: "Hai"},
		{ID: "3", Name: "Ba"},
	}

	merged := MergeByID(items, testItem{ID: "2", Name: "Hai (đã sửa)"}, itemID)

	assert.Len(t, merged, 3)
	assert.Equal(t, "Hai (đã sửa)", merged[1].Name, "bản ghi sửa phải giữ nguyên vị trí")
	assert.Equal(t, "Hai", items[1].Name, "danh sách gốc không được thay đổi")
}

func TestMergeByID_ChuaCoThemLenDau(t *testing.T) {
	items := []testItem{{ID: "1", Name: "Một"}}

	merged := MergeByID(items, testItem{ID: "9", Name: "Mới"}, itemID)

	assert.Len(t, merged, 2)
	assert.Equal(t, "9", merged[0].ID, "bản ghi mới phải lên đầu danh sách")
	assert.Equal(t, "1", merged[1].ID)
}

func TestRemoveByID(t *testing.T) {
	items := []testItem{
		{ID: "1"}, {ID: "2"}, {ID: "3"},
	}

	removed := RemoveByID(items, "2", itemID)

	assert.Len(t, removed, 2)
	assert.Equal(t, "1", removed[0].ID)
	assert.Equal(t, "3", removed[1].ID)

	// Xóa ID không tồn tại giữ nguyên danh sách
	same := RemoveByID(items, "99", itemID)
	assert.Len(t, same, 3)
}
