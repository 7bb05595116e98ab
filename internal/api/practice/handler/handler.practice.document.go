package practicehdl

import (
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v3"

	basehdl "ca_practice/internal/api/base/handler"
	practicedto "ca_practice/internal/api/practice/dto"
	"ca_practice/internal/api/practice/models"
	practicesvc "ca_practice/internal/api/practice/service"
	"ca_practice/internal/common"
	"ca_practice/internal/global"
	"ca_practice/internal/utility"
)

// DocumentHandler xử lý các request quản lý tài liệu
type DocumentHandler struct {
	*basehdl.BaseHandler[models.Document, practicedto.DocumentUpdateInput, practicedto.DocumentUpdateInput]
	documentService *practicesvc.DocumentService
}

// NewDocumentHandler tạo instance mới của DocumentHandler
func NewDocumentHandler() *DocumentHandler {
	documentService := practicesvc.NewDocumentService()
	return &DocumentHandler{
		BaseHandler:     basehdl.NewBaseHandler[models.Document, practicedto.DocumentUpdateInput, practicedto.DocumentUpdateInput](documentService),
		documentService: documentService,
	}
}

// HandleUploadDocument upload tài liệu mới.
// Nhận multipart form: field file "file", các field text name, clientId, categoryId.
// Tài khoản khách hàng upload vào hồ sơ của chính mình, bỏ qua clientId gửi lên.
func (h *DocumentHandler) HandleUploadDocument(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, err := currentUser(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		clientID := user.ClientRef
		if isStaff(c) {
			clientID = utility.String2ObjectID(c.FormValue("clientId"))
		}
		if clientID.IsZero() {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu hoặc sai clientId của tài liệu",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Thiếu file tài liệu trong form",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		cfg := global.MongoDB_ServerConfig
		destDir := filepath.Join(cfg.UploadDir, "documents", clientID.Hex())
		filePath, err := utility.SaveUploadedFile(c, "file", destDir, cfg.UploadMaxSize)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		name := c.FormValue("name")
		if name == "" {
			name = fileHeader.Filename
		}

		doc := models.Document{
			ClientID:   clientID,
			CategoryID: utility.String2ObjectID(c.FormValue("categoryId")),
			Name:       name,
			FilePath:   filePath,
			FileSize:   fileHeader.Size,
			MimeType:   fileHeader.Header.Get("Content-Type"),
			UploadedBy: user.ID,
			UploadedAt: time.Now().UnixMilli(),
		}

		created, err := h.documentService.CreateDocument(c.Context(), doc)
		h.HandleResponse(c, created, err)
		return nil
	})
}

// HandleListDocuments dẫn xuất danh sách tài liệu.
// Query: clientId, category, search, from, to, sortBy, sortDir, page, limit.
func (h *DocumentHandler) HandleListDocuments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		scope, err := roleScope(c, "clientId")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		st := parseViewState(c, "clientId", "category")
		result, err := h.documentService.List(c.Context(), scope, st)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleGetDocument lấy metadata một tài liệu theo ID
func (h *DocumentHandler) HandleGetDocument(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := h.GetIDFromParams(c, "id")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		doc, err := h.documentService.FindOneById(c.Context(), id)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := ensureClientOwnership(c, doc.ClientID); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, doc, nil)
		return nil
	})
}

// HandleDownloadDocument tải file tài liệu về
func (h *DocumentHandler) HandleDownloadDocument(c fiber.Ctx) error {
	id, err := h.GetIDFromParams(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	doc, err := h.documentService.FindOneById(c.Context(), id)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if err := ensureClientOwnership(c, doc.ClientID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	return c.Download(doc.FilePath, doc.Name)
}

// HandleUpdateDocument đổi tên hoặc danh mục tài liệu
func (h *DocumentHandler) HandleUpdateDocument(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input practicedto.DocumentUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		doc, err := h.documentService.UpdateDocument(c.Context(), c.Params("id"), &input)
		h.HandleResponse(c, doc, err)
		return nil
	})
}

// HandleDeleteDocument xóa tài liệu cùng file trên đĩa (chỉ staff)
func (h *DocumentHandler) HandleDeleteDocument(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.documentService.DeleteDocument(c.Context(), c.Params("id"))
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// DocumentCategoryHandler xử lý CRUD danh mục tài liệu, dùng trực tiếp base handler
type DocumentCategoryHandler struct {
	*basehdl.BaseHandler[models.DocumentCategory, practicedto.DocumentCategoryCreateInput, practicedto.DocumentCategoryUpdateInput]
}

// NewDocumentCategoryHandler tạo instance mới của DocumentCategoryHandler
func NewDocumentCategoryHandler() *DocumentCategoryHandler {
	categoryService := practicesvc.NewDocumentCategoryService()
	return &DocumentCategoryHandler{
		BaseHandler: basehdl.NewBaseHandler[models.DocumentCategory, practicedto.DocumentCategoryCreateInput, practicedto.DocumentCategoryUpdateInput](categoryService),
	}
}
