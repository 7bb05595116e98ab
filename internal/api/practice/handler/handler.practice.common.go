// Package practicehdl - handler cho các API nghiệp vụ văn phòng kế toán.
//
// Các endpoint danh sách đều nhận chung một bộ query param:
// các selector (status, type, clientId, category, priority tùy domain),
// search, from, to (2006-01-02), sortBy, sortDir, page, limit.
// Kết quả trả về gồm trang hiện tại và summary tính trên tập đã lọc.
package practicehdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "ca_practice/internal/api/auth/models"
	"ca_practice/internal/common"
	"ca_practice/internal/reporting"
)

// parseViewState đọc trạng thái hiển thị danh sách từ query string.
// selectorNames là các selector mà domain này hỗ trợ, tên query param trùng tên selector.
func parseViewState(c fiber.Ctx, selectorNames ...string) reporting.ViewState {
	selectors := make(map[string]string, len(selectorNames))
	for _, name := range selectorNames {
		selectors[name] = c.Query(name)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(reporting.DefaultPageSize)))

	dir := reporting.SortAsc
	if c.Query("sortDir") == string(reporting.SortDesc) {
		dir = reporting.SortDesc
	}

	return reporting.ViewState{
		Filter: reporting.FilterState{
			Selectors: selectors,
			Search:    c.Query("search"),
			DateFrom:  c.Query("from"),
			DateTo:    c.Query("to"),
		},
		Sort: reporting.SortState{
			Field: c.Query("sortBy"),
			Dir:   dir,
		},
		Page: reporting.PageState{Page: page, Limit: limit},
	}
}

// currentUser lấy user đã xác thực từ context (do AuthMiddleware gán)
func currentUser(c fiber.Ctx) (authmodels.User, error) {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		return authmodels.User{}, common.NewError(
			common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil)
	}
	return user, nil
}

// roleScope trả về điều kiện giới hạn dữ liệu theo vai trò:
// staff thấy toàn bộ, client chỉ thấy bản ghi gắn với hồ sơ khách hàng của mình.
// field là tên trường chứa ObjectID khách hàng trong collection ("clientId" hoặc "_id").
func roleScope(c fiber.Ctx, field string) (bson.M, error) {
	user, err := currentUser(c)
	if err != nil {
		return nil, err
	}

	if user.Role != authmodels.RoleClient {
		return bson.M{}, nil
	}

	if user.ClientRef.IsZero() {
		return nil, common.NewError(
			common.ErrCodeAuthRole,
			"Tài khoản khách hàng chưa gắn với hồ sơ khách hàng nào",
			common.StatusForbidden,
			nil,
		)
	}
	return bson.M{field: user.ClientRef}, nil
}

// ensureClientOwnership chặn khách hàng truy cập bản ghi của khách hàng khác.
// Trả về ErrNotFound thay vì Forbidden để không lộ sự tồn tại của bản ghi.
func ensureClientOwnership(c fiber.Ctx, ownerID primitive.ObjectID) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if user.Role == authmodels.RoleClient && user.ClientRef != ownerID {
		return common.ErrNotFound
	}
	return nil
}

// isStaff kiểm tra người gọi có phải nhân viên không
func isStaff(c fiber.Ctx) bool {
	user, err := currentUser(c)
	return err == nil && user.Role == authmodels.RoleStaff
}
