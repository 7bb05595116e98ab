package practicehdl

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "ca_practice/internal/api/base/handler"
	practicedto "ca_practice/internal/api/practice/dto"
	"ca_practice/internal/api/practice/models"
	practicesvc "ca_practice/internal/api/practice/service"
)

// ClientHandler xử lý các request quản lý hồ sơ khách hàng
type ClientHandler struct {
	*basehdl.BaseHandler[models.Client, practicedto.ClientCreateInput, practicedto.ClientUpdateInput]
	clientService *practicesvc.ClientService
}

// NewClientHandler tạo instance mới của ClientHandler
func NewClientHandler() *ClientHandler {
	clientService := practicesvc.NewClientService()
	return &ClientHandler{
		BaseHandler:   basehdl.NewBaseHandler[models.Client, practicedto.ClientCreateInput, practicedto.ClientUpdateInput](clientService),
		clientService: clientService,
	}
}

// HandleCreateClient tạo hồ sơ khách hàng mới (chỉ staff)
func (h *ClientHandler) HandleCreateClient(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.ClientCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		client, err := h.clientService.CreateClient(c.Context(), &input)
		h.HandleResponse(c, client, err)
		return nil
	})
}

// HandleListClients dẫn xuất danh sách khách hàng.
// Query: status, search, from, to, sortBy, sortDir, page, limit.
// Tài khoản khách hàng chỉ thấy hồ sơ của chính mình.
func (h *ClientHandler) HandleListClients(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scope, err := roleScope(c, "_id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		st := parseViewState(c, "status")
		result, err := h.clientService.List(c.Context(), scope, st)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetClient lấy một hồ sơ khách hàng theo ID
func (h *ClientHandler) HandleGetClient(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		client, err := h.clientService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := ensureClientOwnership(c, client.ID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, client, nil)
		return nil
	})
}

// HandleUpdateClient cập nhật hồ sơ khách hàng (chỉ staff)
func (h *ClientHandler) HandleUpdateClient(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.ClientUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		client, err := h.clientService.UpdateClient(c.Context(), c.Params("id"), &input)
		h.HandleResponse(c, client, err)
		return nil
	})
}

// HandleDeleteClient xóa hồ sơ khách hàng (chỉ staff).
// Bị chặn khi còn tài liệu, tờ khai hoặc hóa đơn tham chiếu đến khách hàng.
func (h *ClientHandler) HandleDeleteClient(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.clientService.DeleteClient(c.Context(), c.Params("id"))
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleListClientStatuses trả về các giá trị status đang có, dùng cho dropdown lọc
func (h *ClientHandler) HandleListClientStatuses(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		values, err := h.clientService.Distinct(c.Context(), "status", bson.M{})
		h.HandleResponse(c, values, err)
		return nil
	})
}
