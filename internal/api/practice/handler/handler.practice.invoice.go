package practicehdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "ca_practice/internal/api/base/handler"
	practicedto "ca_practice/internal/api/practice/dto"
	"ca_practice/internal/api/practice/models"
	practicesvc "ca_practice/internal/api/practice/service"
	"ca_practice/internal/logger"

	"github.com/sirupsen/logrus"
)

// InvoiceHandler xử lý các request quản lý hóa đơn và thanh toán
type InvoiceHandler struct {
	*basehdl.BaseHandler[models.Invoice, practicedto.InvoiceCreateInput, practicedto.InvoiceUpdateInput]
	invoiceService *practicesvc.InvoiceService
}

// NewInvoiceHandler tạo instance mới của InvoiceHandler
func NewInvoiceHandler() *InvoiceHandler {
	invoiceService := practicesvc.NewInvoiceService()
	return &InvoiceHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.Invoice, practicedto.InvoiceCreateInput, practicedto.InvoiceUpdateInput](invoiceService),
		invoiceService: invoiceService,
	}
}

// HandleCreateInvoice tạo hóa đơn mới ở trạng thái Draft (chỉ staff)
func (h *InvoiceHandler) HandleCreateInvoice(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.InvoiceCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		invoice, err := h.invoiceService.CreateInvoice(c.Context(), &input)
		h.HandleResponse(c, invoice, err)
		return nil
	})
}

// HandleListInvoices dẫn xuất danh sách hóa đơn.
// Query: status, clientId, search, from, to, sortBy, sortDir, page, limit.
// Summary gồm tổng total/paid/pending và đếm theo trạng thái trên tập đã lọc.
func (h *InvoiceHandler) HandleListInvoices(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scope, err := roleScope(c, "clientId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		st := parseViewState(c, "status", "clientId")
		result, err := h.invoiceService.List(c.Context(), scope, st)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetInvoice lấy một hóa đơn theo ID
func (h *InvoiceHandler) HandleGetInvoice(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		invoice, err := h.invoiceService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := ensureClientOwnership(c, invoice.ClientID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, invoice, nil)
		return nil
	})
}

// HandleUpdateInvoice cập nhật nội dung hóa đơn chưa Paid (chỉ staff)
func (h *InvoiceHandler) HandleUpdateInvoice(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.InvoiceUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		invoice, err := h.invoiceService.UpdateInvoice(c.Context(), c.Params("id"), &input)
		h.HandleResponse(c, invoice, err)
		return nil
	})
}

// HandleUpdateInvoiceStatus chuyển trạng thái hóa đơn theo máy trạng thái (chỉ staff)
func (h *InvoiceHandler) HandleUpdateInvoiceStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.InvoiceStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		invoice, err := h.invoiceService.UpdateStatus(c.Context(), c.Params("id"), input.Status)
		h.HandleResponse(c, invoice, err)
		return nil
	})
}

// HandleAddPayment ghi nhận thanh toán cho hóa đơn (chỉ staff).
// paidAmount và trạng thái được tính lại từ tổng thanh toán.
func (h *InvoiceHandler) HandleAddPayment(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.PaymentCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		invoice, err := h.invoiceService.AddPayment(c.Context(), c.Params("id"), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.GetAuditLogger().WithFields(logrus.Fields{
			"invoice_id": invoice.ID.Hex(),
			"amount":     input.Amount,
			"status":     invoice.Status,
		}).Info("Ghi nhận thanh toán")

		h.HandleResponse(c, invoice, nil)
		return nil
	})
}

// HandleListPayments liệt kê các thanh toán của một hóa đơn
func (h *InvoiceHandler) HandleListPayments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		invoice, err := h.invoiceService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := ensureClientOwnership(c, invoice.ClientID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		payments, err := h.invoiceService.ListPayments(c.Context(), c.Params("id"))
		h.HandleResponse(c, payments, err)
		return nil
	})
}

// HandleDeleteInvoice xóa hóa đơn chưa Paid cùng các thanh toán của nó (chỉ staff)
func (h *InvoiceHandler) HandleDeleteInvoice(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.invoiceService.DeleteInvoice(c.Context(), c.Params("id"))
		h.HandleResponse(c, nil, err)
		return nil
	})
}
