package utility

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	"ca_practice/internal/common"
)

// SaveUploadedFile lưu file multipart từ request vào destDir.
// Tên file được thêm tiền tố timestamp để tránh đè lên nhau.
//
// Parameters:
//   - c: Fiber context
//   - field: Tên field trong multipart form
//   - destDir: Thư mục đích
//   - maxSize: Kích thước tối đa cho phép (bytes)
//
// Returns:
//   - string: Đường dẫn tương đối của file đã lưu
//   - error: Lỗi nếu file thiếu, quá lớn hoặc ghi thất bại
func SaveUploadedFile(c fiber.Ctx, field string, destDir string, maxSize int64) (string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Thiếu file upload ở field '%s'", field),
			common.StatusBadRequest,
			err,
		)
	}

	if maxSize > 0 && fileHeader.Size > maxSize {
		return "", common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("File vượt quá kích thước cho phép (%d bytes)", maxSize),
			common.StatusBadRequest,
			nil,
		)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", common.NewError(
			common.ErrCodeStorageFile,
			"Không thể tạo thư mục lưu trữ",
			common.StatusInternalServerError,
			err,
		)
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
	destPath := filepath.Join(destDir, filename)

	if err := c.SaveFile(fileHeader, destPath); err != nil {
		return "", common.NewError(
			common.ErrCodeStorageFile,
			"Không thể lưu file upload",
			common.StatusInternalServerError,
			err,
		)
	}

	return destPath, nil
}
