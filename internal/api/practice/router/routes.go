// Package practicerouter - đăng ký các route nghiệp vụ văn phòng kế toán.
package practicerouter

import (
	"github.com/gofiber/fiber/v3"

	authmodels "ca_practice/internal/api/auth/models"
	"ca_practice/internal/api/middleware"
	practicehdl "ca_practice/internal/api/practice/handler"
	"ca_practice/internal/api/router"
)

// Register đăng ký các route nghiệp vụ vào group /api/v1
func Register(v1 fiber.Router, r *router.Router) error {
	clientHandler := practicehdl.NewClientHandler()
	documentHandler := practicehdl.NewDocumentHandler()
	categoryHandler := practicehdl.NewDocumentCategoryHandler()
	returnHandler := practicehdl.NewReturnHandler()
	returnTypeHandler := practicehdl.NewReturnTypeHandler()
	invoiceHandler := practicehdl.NewInvoiceHandler()
	requestHandler := practicehdl.NewRequestHandler()

	authRequired := middleware.AuthMiddleware()
	staffOnly := middleware.AuthMiddleware(authmodels.RoleStaff)

	auth := []fiber.Handler{authRequired}
	staff := []fiber.Handler{staffOnly}

	// Khách hàng: staff quản lý, client chỉ xem hồ sơ của mình
	router.RegisterRouteWithMiddleware(v1, "/clients", "POST", "/", staff, clientHandler.HandleCreateClient)
	router.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/", auth, clientHandler.HandleListClients)
	router.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/statuses", staff, clientHandler.HandleListClientStatuses)
	router.RegisterRouteWithMiddleware(v1, "/clients", "GET", "/:id", auth, clientHandler.HandleGetClient)
	router.RegisterRouteWithMiddleware(v1, "/clients", "PUT", "/:id", staff, clientHandler.HandleUpdateClient)
	router.RegisterRouteWithMiddleware(v1, "/clients", "DELETE", "/:id", staff, clientHandler.HandleDeleteClient)

	// Danh mục tài liệu: staff quản lý, mọi người dùng xem được
	router.RegisterRouteWithMiddleware(v1, "/document-categories", "POST", "/", staff, categoryHandler.InsertOne)
	router.RegisterRouteWithMiddleware(v1, "/document-categories", "GET", "/", auth, categoryHandler.FindWithPagination)
	router.RegisterRouteWithMiddleware(v1, "/document-categories", "PUT", "/:id", staff, categoryHandler.UpdateById)
	router.RegisterRouteWithMiddleware(v1, "/document-categories", "DELETE", "/:id", staff, categoryHandler.DeleteById)

	// Tài liệu: cả staff lẫn client upload được, client chỉ thấy của mình
	router.RegisterRouteWithMiddleware(v1, "/documents", "POST", "/", auth, documentHandler.HandleUploadDocument)
	router.RegisterRouteWithMiddleware(v1, "/documents", "GET", "/", auth, documentHandler.HandleListDocuments)
	router.RegisterRouteWithMiddleware(v1, "/documents", "GET", "/:id", auth, documentHandler.HandleGetDocument)
	router.RegisterRouteWithMiddleware(v1, "/documents", "GET", "/:id/download", auth, documentHandler.HandleDownloadDocument)
	router.RegisterRouteWithMiddleware(v1, "/documents", "PUT", "/:id", staff, documentHandler.HandleUpdateDocument)
	router.RegisterRouteWithMiddleware(v1, "/documents", "DELETE", "/:id", staff, documentHandler.HandleDeleteDocument)

	// Loại tờ khai: staff quản lý, mọi người dùng xem được
	router.RegisterRouteWithMiddleware(v1, "/return-types", "POST", "/", staff, returnTypeHandler.InsertOne)
	router.RegisterRouteWithMiddleware(v1, "/return-types", "GET", "/", auth, returnTypeHandler.FindWithPagination)
	router.RegisterRouteWithMiddleware(v1, "/return-types", "PUT", "/:id", staff, returnTypeHandler.UpdateById)
	router.RegisterRouteWithMiddleware(v1, "/return-types", "DELETE", "/:id", staff, returnTypeHandler.DeleteById)

	// Tờ khai thuế: staff quản lý, client theo dõi tờ khai của mình
	router.RegisterRouteWithMiddleware(v1, "/returns", "POST", "/", staff, returnHandler.HandleCreateReturn)
	router.RegisterRouteWithMiddleware(v1, "/returns", "GET", "/", auth, returnHandler.HandleListReturns)
	router.RegisterRouteWithMiddleware(v1, "/returns", "GET", "/:id", auth, returnHandler.HandleGetReturn)
	router.RegisterRouteWithMiddleware(v1, "/returns", "PUT", "/:id", staff, returnHandler.HandleUpdateReturn)
	router.RegisterRouteWithMiddleware(v1, "/returns", "PUT", "/:id/status", staff, returnHandler.HandleUpdateReturnStatus)
	router.RegisterRouteWithMiddleware(v1, "/returns", "DELETE", "/:id", staff, returnHandler.HandleDeleteReturn)

	// Hóa đơn + thanh toán: staff quản lý, client xem hóa đơn của mình
	router.RegisterRouteWithMiddleware(v1, "/invoices", "POST", "/", staff, invoiceHandler.HandleCreateInvoice)
	router.RegisterRouteWithMiddleware(v1, "/invoices", "GET", "/", auth, invoiceHandler.HandleListInvoices)
	router.RegisterRouteWithMiddleware(v1, "/invoices", "GET", "/:id", auth, invoiceHandler.HandleGetInvoice)
	router.RegisterRouteWithMiddleware(v1, "/invoices", "PUT", "/:id", staff, invoiceHandler.HandleUpdateInvoice)
	router.RegisterRouteWithMiddleware(v1, "/invoices", "PUT", "/:id/status", staff, invoiceHandler.HandleUpdateInvoiceStatus)
	router.RegisterRouteWithMiddleware(v1, "/invoices", "POST", "/:id/payments", staff, invoiceHandler.HandleAddPayment)
	router.RegisterRouteWithMiddleware(v1, "/invoices", "GET", "/:id/payments", auth, invoiceHandler.HandleListPayments)
	router.RegisterRouteWithMiddleware(v1, "/invoices", "DELETE", "/:id", staff, invoiceHandler.HandleDeleteInvoice)

	// Yêu cầu hỗ trợ: client gửi và theo dõi, staff xử lý
	router.RegisterRouteWithMiddleware(v1, "/requests", "POST", "/", auth, requestHandler.HandleCreateRequest)
	router.RegisterRouteWithMiddleware(v1, "/requests", "GET", "/", auth, requestHandler.HandleListRequests)
	router.RegisterRouteWithMiddleware(v1, "/requests", "GET", "/:id", auth, requestHandler.HandleGetRequest)
	router.RegisterRouteWithMiddleware(v1, "/requests", "PUT", "/:id", auth, requestHandler.HandleUpdateRequest)
	router.RegisterRouteWithMiddleware(v1, "/requests", "PUT", "/:id/status", staff, requestHandler.HandleUpdateRequestStatus)
	router.RegisterRouteWithMiddleware(v1, "/requests", "DELETE", "/:id", staff, requestHandler.HandleDeleteRequest)

	return nil
}
