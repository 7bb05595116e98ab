// Package authrouter - đăng ký các route cho domain auth.
package authrouter

import (
	"github.com/gofiber/fiber/v3"

	authhdl "ca_practice/internal/api/auth/handler"
	authmodels "ca_practice/internal/api/auth/models"
	"ca_practice/internal/api/middleware"
	"ca_practice/internal/api/router"
)

// Register đăng ký các route auth vào group /api/v1
func Register(v1 fiber.Router, r *router.Router) error {
	handler := authhdl.NewUserHandler()

	// Handler gọi được vào cache xác thực khi logout/đổi mật khẩu
	authhdl.SetInvalidateAuthCache(middleware.GetAuthManager().InvalidateToken)

	authRequired := middleware.AuthMiddleware()
	staffOnly := middleware.AuthMiddleware(authmodels.RoleStaff)

	// Public: đăng nhập
	router.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/login", nil, handler.HandleLogin)

	// Yêu cầu đăng nhập
	router.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authRequired}, handler.HandleLogout)
	router.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authRequired}, handler.HandleGetProfile)
	router.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/profile", []fiber.Handler{authRequired}, handler.HandleUpdateProfile)
	router.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/change-password", []fiber.Handler{authRequired}, handler.HandleChangePassword)

	// Quản lý người dùng: chỉ staff
	router.RegisterRouteWithMiddleware(v1, "/users", "POST", "/", []fiber.Handler{staffOnly}, handler.HandleCreateUser)
	router.RegisterRouteWithMiddleware(v1, "/users", "GET", "/", []fiber.Handler{staffOnly}, handler.FindWithPagination)
	router.RegisterRouteWithMiddleware(v1, "/users", "GET", "/:id", []fiber.Handler{staffOnly}, handler.FindOneById)
	router.RegisterRouteWithMiddleware(v1, "/users", "PUT", "/:id", []fiber.Handler{staffOnly}, handler.UpdateById)
	router.RegisterRouteWithMiddleware(v1, "/users", "DELETE", "/:id", []fiber.Handler{staffOnly}, handler.DeleteById)

	return nil
}
