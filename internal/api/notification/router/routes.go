// Package notificationrouter - đăng ký các route thông báo và nối hook
// thông báo cho các service nghiệp vụ.
package notificationrouter

import (
	"github.com/gofiber/fiber/v3"

	"ca_practice/internal/api/middleware"
	notificationhdl "ca_practice/internal/api/notification/handler"
	notificationsvc "ca_practice/internal/api/notification/service"
	practicesvc "ca_practice/internal/api/practice/service"
	"ca_practice/internal/api/router"
)

// Register đăng ký các route thông báo vào group /api/v1
func Register(v1 fiber.Router, r *router.Router) error {
	handler := notificationhdl.NewNotificationHandler()

	// Service nghiệp vụ gửi được thông báo cho khách hàng mà không import vòng
	notificationService := notificationsvc.NewNotificationService()
	practicesvc.SetNotifyClient(notificationService.NotifyClient)

	auth := []fiber.Handler{middleware.AuthMiddleware()}

	router.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/", auth, handler.HandleListNotifications)
	router.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/unread-count", auth, handler.HandleUnreadCount)
	router.RegisterRouteWithMiddleware(v1, "/notifications", "PUT", "/:id/read", auth, handler.HandleMarkRead)
	router.RegisterRouteWithMiddleware(v1, "/notifications", "PUT", "/read-all", auth, handler.HandleMarkAllRead)

	return nil
}
