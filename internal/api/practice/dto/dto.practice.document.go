package dto

// DocumentCategoryCreateInput dữ liệu tạo danh mục tài liệu
type DocumentCategoryCreateInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// DocumentCategoryUpdateInput dữ liệu cập nhật danh mục tài liệu
type DocumentCategoryUpdateInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// DocumentUpdateInput chỉ cho phép đổi tên và danh mục, file không sửa được
type DocumentUpdateInput struct {
	Name       string `json:"name,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
}
