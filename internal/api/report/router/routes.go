// Package reportrouter - đăng ký các route báo cáo dashboard.
package reportrouter

import (
	"github.com/gofiber/fiber/v3"

	authmodels "ca_practice/internal/api/auth/models"
	"ca_practice/internal/api/middleware"
	reporthdl "ca_practice/internal/api/report/handler"
	"ca_practice/internal/api/router"
)

// Register đăng ký các route báo cáo vào group /api/v1. Chỉ staff truy cập được.
func Register(v1 fiber.Router, r *router.Router) error {
	handler := reporthdl.NewReportHandler()

	staff := []fiber.Handler{middleware.AuthMiddleware(authmodels.RoleStaff)}

	router.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/revenue", staff, handler.HandleRevenue)
	router.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/returns-status", staff, handler.HandleReturnsStatus)
	router.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/clients-growth", staff, handler.HandleClientsGrowth)
	router.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/requests-summary", staff, handler.HandleRequestsSummary)
	router.RegisterRouteWithMiddleware(v1, "/reports", "GET", "/invoices-status", staff, handler.HandleInvoicesStatus)

	return nil
}
