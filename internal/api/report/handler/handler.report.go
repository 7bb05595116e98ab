// Package reporthdl - handler cho các API báo cáo dashboard (chỉ staff).
package reporthdl

import (
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "ca_practice/internal/api/base/handler"
	reportsvc "ca_practice/internal/api/report/service"
)

// ReportHandler xử lý các request báo cáo tổng hợp
type ReportHandler struct {
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo instance mới của ReportHandler
func NewReportHandler() *ReportHandler {
	return &ReportHandler{
		reportService: reportsvc.NewReportService(),
	}
}

// HandleRevenue doanh thu theo tháng, growth so với tháng trước
func (h *ReportHandler) HandleRevenue(c fiber.Ctx) error {
	report, err := h.reportService.Revenue(c.Context(), time.Now().UTC())
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.HandleSuccess(c, report)
}

// HandleReturnsStatus đếm tờ khai theo trạng thái
func (h *ReportHandler) HandleReturnsStatus(c fiber.Ctx) error {
	report, err := h.reportService.ReturnsStatus(c.Context())
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.HandleSuccess(c, report)
}

// HandleClientsGrowth khách hàng mới theo tháng
func (h *ReportHandler) HandleClientsGrowth(c fiber.Ctx) error {
	report, err := h.reportService.ClientsGrowth(c.Context(), time.Now().UTC())
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.HandleSuccess(c, report)
}

// HandleRequestsSummary yêu cầu hỗ trợ theo trạng thái và độ ưu tiên
func (h *ReportHandler) HandleRequestsSummary(c fiber.Ctx) error {
	report, err := h.reportService.RequestsSummary(c.Context())
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.HandleSuccess(c, report)
}

// HandleInvoicesStatus hóa đơn theo trạng thái kèm tổng tiền
func (h *ReportHandler) HandleInvoicesStatus(c fiber.Ctx) error {
	report, err := h.reportService.InvoicesStatus(c.Context())
	if err != nil {
		return basehdl.HandleError(c, err)
	}
	return basehdl.HandleSuccess(c, report)
}
