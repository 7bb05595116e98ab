package practicehdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "ca_practice/internal/api/base/handler"
	practicedto "ca_practice/internal/api/practice/dto"
	"ca_practice/internal/api/practice/models"
	practicesvc "ca_practice/internal/api/practice/service"
)

// ReturnHandler xử lý các request quản lý tờ khai thuế
type ReturnHandler struct {
	*basehdl.BaseHandler[models.TaxReturn, practicedto.ReturnCreateInput, practicedto.ReturnUpdateInput]
	returnService *practicesvc.ReturnService
}

// NewReturnHandler tạo instance mới của ReturnHandler
func NewReturnHandler() *ReturnHandler {
	returnService := practicesvc.NewReturnService()
	return &ReturnHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.TaxReturn, practicedto.ReturnCreateInput, practicedto.ReturnUpdateInput](returnService),
		returnService: returnService,
	}
}

// HandleCreateReturn tạo tờ khai mới (chỉ staff)
func (h *ReturnHandler) HandleCreateReturn(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.ReturnCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		taxReturn, err := h.returnService.CreateReturn(c.Context(), &input)
		h.HandleResponse(c, taxReturn, err)
		return nil
	})
}

// HandleListReturns dẫn xuất danh sách tờ khai.
// Query: status, type, clientId, search, from, to, sortBy, sortDir, page, limit.
func (h *ReturnHandler) HandleListReturns(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scope, err := roleScope(c, "clientId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		st := parseViewState(c, "status", "type", "clientId")
		result, err := h.returnService.List(c.Context(), scope, st)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetReturn lấy một tờ khai theo ID
func (h *ReturnHandler) HandleGetReturn(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		taxReturn, err := h.returnService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := ensureClientOwnership(c, taxReturn.ClientID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, taxReturn, nil)
		return nil
	})
}

// HandleUpdateReturn cập nhật nội dung tờ khai (chỉ staff)
func (h *ReturnHandler) HandleUpdateReturn(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.ReturnUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		taxReturn, err := h.returnService.UpdateReturn(c.Context(), c.Params("id"), &input)
		h.HandleResponse(c, taxReturn, err)
		return nil
	})
}

// HandleUpdateReturnStatus chuyển trạng thái tờ khai theo máy trạng thái (chỉ staff)
func (h *ReturnHandler) HandleUpdateReturnStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.ReturnStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		taxReturn, err := h.returnService.UpdateStatus(c.Context(), c.Params("id"), input.Status)
		h.HandleResponse(c, taxReturn, err)
		return nil
	})
}

// HandleDeleteReturn xóa tờ khai chưa hoàn tất (chỉ staff)
func (h *ReturnHandler) HandleDeleteReturn(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.returnService.DeleteReturn(c.Context(), c.Params("id"))
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// ReturnTypeHandler xử lý CRUD loại tờ khai, dùng trực tiếp base handler
type ReturnTypeHandler struct {
	*basehdl.BaseHandler[models.ReturnType, practicedto.ReturnTypeCreateInput, practicedto.ReturnTypeUpdateInput]
}

// NewReturnTypeHandler tạo instance mới của ReturnTypeHandler
func NewReturnTypeHandler() *ReturnTypeHandler {
	typeService := practicesvc.NewReturnTypeService()
	return &ReturnTypeHandler{
		BaseHandler: basehdl.NewBaseHandler[models.ReturnType, practicedto.ReturnTypeCreateInput, practicedto.ReturnTypeUpdateInput](typeService),
	}
}
