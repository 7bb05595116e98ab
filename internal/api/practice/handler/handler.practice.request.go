package practicehdl

import (
	"path/filepath"

	"github.com/gofiber/fiber/v3"

	basehdl "ca_practice/internal/api/base/handler"
	practicedto "ca_practice/internal/api/practice/dto"
	"ca_practice/internal/api/practice/models"
	practicesvc "ca_practice/internal/api/practice/service"
	"ca_practice/internal/common"
	"ca_practice/internal/global"
	"ca_practice/internal/utility"
)

// RequestHandler xử lý các request quản lý yêu cầu hỗ trợ
type RequestHandler struct {
	*basehdl.BaseHandler[models.SupportRequest, practicedto.RequestCreateInput, practicedto.RequestUpdateInput]
	requestService *practicesvc.RequestService
}

// NewRequestHandler tạo instance mới của RequestHandler
func NewRequestHandler() *RequestHandler {
	requestService := practicesvc.NewRequestService()
	return &RequestHandler{
		BaseHandler:    basehdl.NewBaseHandler[models.SupportRequest, practicedto.RequestCreateInput, practicedto.RequestUpdateInput](requestService),
		requestService: requestService,
	}
}

// HandleCreateRequest tạo yêu cầu hỗ trợ mới.
// Nhận multipart form: subject, description, priority, clientId (chỉ staff)
// và field file "attachment" (tùy chọn).
// Khách hàng tạo yêu cầu cho hồ sơ của chính mình.
func (h *RequestHandler) HandleCreateRequest(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := practicedto.RequestCreateInput{
			ClientID:    c.FormValue("clientId"),
			Subject:     c.FormValue("subject"),
			Description: c.FormValue("description"),
			Priority:    c.FormValue("priority"),
		}
		if err := global.Validate.Struct(&input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error()))
			return nil
		}

		clientID := user.ClientRef
		if isStaff(c) {
			clientID = utility.String2ObjectID(input.ClientID)
		}

		// Đính kèm là tùy chọn: chỉ lưu khi form có gửi file
		var attachmentPath string
		if _, ferr := c.FormFile("attachment"); ferr == nil {
			cfg := global.MongoDB_ServerConfig
			destDir := filepath.Join(cfg.UploadDir, "requests")
			attachmentPath, err = utility.SaveUploadedFile(c, "attachment", destDir, cfg.UploadMaxSize)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		request, err := h.requestService.CreateRequest(c.Context(), clientID, user.ID, &input, attachmentPath)
		h.HandleResponse(c, request, err)
		return nil
	})
}

// HandleListRequests dẫn xuất danh sách yêu cầu hỗ trợ.
// Query: status, priority, clientId, search, from, to, sortBy, sortDir, page, limit.
func (h *RequestHandler) HandleListRequests(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scope, err := roleScope(c, "clientId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		st := parseViewState(c, "status", "priority", "clientId")
		result, err := h.requestService.List(c.Context(), scope, st)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetRequest lấy một yêu cầu theo ID
func (h *RequestHandler) HandleGetRequest(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		request, err := h.requestService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := ensureClientOwnership(c, request.ClientID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, request, nil)
		return nil
	})
}

// HandleUpdateRequest sửa nội dung yêu cầu chưa kết thúc
func (h *RequestHandler) HandleUpdateRequest(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		request, err := h.requestService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := ensureClientOwnership(c, request.ClientID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input practicedto.RequestUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.requestService.UpdateRequest(c.Context(), c.Params("id"), &input)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleUpdateRequestStatus chuyển trạng thái yêu cầu và ghi câu trả lời (chỉ staff)
func (h *RequestHandler) HandleUpdateRequestStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.RequestStatusInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		request, err := h.requestService.UpdateStatus(c.Context(), c.Params("id"), &input)
		h.HandleResponse(c, request, err)
		return nil
	})
}

// HandleDeleteRequest xóa yêu cầu chưa kết thúc (chỉ staff)
func (h *RequestHandler) HandleDeleteRequest(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.requestService.DeleteRequest(c.Context(), c.Params("id"))
		h.HandleResponse(c, nil, err)
		return nil
	})
}
