// Package notificationhdl - handler cho các API thông báo của người dùng đang đăng nhập.
package notificationhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "ca_practice/internal/api/base/handler"
	notificationsvc "ca_practice/internal/api/notification/service"
	"ca_practice/internal/common"
	"ca_practice/internal/utility"
)

// NotificationHandler xử lý các request thông báo
type NotificationHandler struct {
	notificationService *notificationsvc.NotificationService
}

// NewNotificationHandler tạo instance mới của NotificationHandler
func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationsvc.NewNotificationService(),
	}
}

func (h *NotificationHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil)
	}
	objID := utility.String2ObjectID(userID)
	if objID.IsZero() {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat, "User ID không hợp lệ", common.StatusBadRequest, nil)
	}
	return objID, nil
}

// HandleListNotifications thông báo của người dùng, mới nhất trước, có phân trang
func (h *NotificationHandler) HandleListNotifications(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return basehdl.HandleError(c, err)
	}

	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "10"), 10, 64)

	result, err := h.notificationService.ListByUser(c.Context(), userID, page, limit)
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.HandleSuccess(c, result)
}

// HandleUnreadCount số thông báo chưa đọc, dùng cho badge trên giao diện
func (h *NotificationHandler) HandleUnreadCount(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return basehdl.HandleError(c, err)
	}

	count, err := h.notificationService.UnreadCount(c.Context(), userID)
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.HandleSuccess(c, fiber.Map{"count": count})
}

// HandleMarkRead đánh dấu một thông báo là đã đọc
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return basehdl.HandleError(c, err)
	}

	notificationID := utility.String2ObjectID(c.Params("id"))
	if notificationID.IsZero() {
		return basehdl.HandleError(c, common.NewError(
			common.ErrCodeValidationFormat, "ID thông báo không hợp lệ", common.StatusBadRequest, nil))
	}

	notification, err := h.notificationService.MarkRead(c.Context(), userID, notificationID)
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.HandleSuccess(c, notification)
}

// HandleMarkAllRead đánh dấu toàn bộ thông báo của người dùng là đã đọc
func (h *NotificationHandler) HandleMarkAllRead(c fiber.Ctx) error {
	userID, err := h.currentUserID(c)
	if err != nil {
		return basehdl.HandleError(c, err)
	}

	updated, err := h.notificationService.MarkAllRead(c.Context(), userID)
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.HandleSuccess(c, fiber.Map{"updated": updated})
}
