// Package authhdl - handler xác thực và quản lý người dùng.
package authhdl

import (
	"path/filepath"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "ca_practice/internal/api/auth/dto"
	models "ca_practice/internal/api/auth/models"
	authsvc "ca_practice/internal/api/auth/service"
	basehdl "ca_practice/internal/api/base/handler"
	"ca_practice/internal/common"
	"ca_practice/internal/global"
	"ca_practice/internal/logger"
	"ca_practice/internal/utility"

	"github.com/sirupsen/logrus"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	*basehdl.BaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() *UserHandler {
	userService := authsvc.NewUserService()
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[models.User, authdto.UserCreateInput, authdto.UserUpdateInput](userService),
		userService: userService,
	}
}

// currentUserID lấy ObjectID của user đang đăng nhập từ context
func (h *UserHandler) currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, common.MsgUnauthorized, common.StatusUnauthorized, nil)
	}
	objID := utility.String2ObjectID(userID)
	if objID.IsZero() {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "User ID không hợp lệ", common.StatusBadRequest, nil)
	}
	return objID, nil
}

// sanitize xóa các trường nhạy cảm trước khi trả user về client
func sanitize(user models.User) models.User {
	user.Password = ""
	user.Tokens = nil
	return user
}

// HandleCreateUser tạo người dùng mới (chỉ staff)
func (h *UserHandler) HandleCreateUser(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.UserCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.CreateUser(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, sanitize(user), nil)
		return nil
	})
}

// HandleLogin xử lý đăng nhập theo cổng vai trò (staff/client)
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.Login(c.Context(), &input)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.GetAuditLogger().WithFields(logrus.Fields{
			"user_id": user.ID.Hex(),
			"email":   user.Email,
			"role":    user.Role,
		}).Info("Đăng nhập thành công")

		h.HandleResponse(c, sanitize(user), nil)
		return nil
	})
}

// HandleLogout xử lý đăng xuất người dùng, thu hồi token của thiết bị
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.LogoutInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.Logout(c.Context(), userID, input.Hwid); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		// Xóa token khỏi cache xác thực để không còn dùng được ngay lập tức
		if token, ok := c.Locals("token").(string); ok {
			invalidateAuthCache(token)
		}

		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// HandleGetProfile lấy thông tin profile của người dùng đang đăng nhập
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		user, err := h.userService.FindOneById(c.Context(), userID)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, sanitize(user), nil)
		return nil
	})
}

// HandleUpdateProfile cập nhật hồ sơ cá nhân.
// Nhận multipart form: các field text (name, phone) và field file "avatar" (tùy chọn).
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		input := authdto.UpdateProfileInput{
			Name:  c.FormValue("name"),
			Phone: c.FormValue("phone"),
		}

		// Avatar là tùy chọn: chỉ lưu khi form có gửi file
		var avatarURL string
		if _, ferr := c.FormFile("avatar"); ferr == nil {
			cfg := global.MongoDB_ServerConfig
			avatarURL, err = utility.SaveUploadedFile(c, "avatar",
				filepath.Join(cfg.UploadDir, "avatars"), cfg.UploadMaxSize)
			if err != nil {
				h.HandleResponse(c, nil, err)
				return nil
			}
		}

		user, err := h.userService.UpdateProfile(c.Context(), userID, &input, avatarURL)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.HandleResponse(c, sanitize(user), nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu, thu hồi toàn bộ token hiện có
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, err := h.currentUserID(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		var input authdto.ChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.userService.ChangePassword(c.Context(), userID, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if token, ok := c.Locals("token").(string); ok {
			invalidateAuthCache(token)
		}

		logger.GetAuditLogger().WithFields(logrus.Fields{
			"user_id": userID.Hex(),
		}).Info("Đổi mật khẩu thành công")

		h.HandleResponse(c, nil, nil)
		return nil
	})
}

// invalidateAuthCache được gán từ nơi khởi tạo app để tránh import cycle handler -> middleware.
var invalidateAuthCache = func(token string) {}

// SetInvalidateAuthCache đăng ký hàm xóa token khỏi cache xác thực
func SetInvalidateAuthCache(fn func(token string)) {
	if fn != nil {
		invalidateAuthCache = fn
	}
}
