package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "ca_practice/internal/api/auth/models"
	authsvc "ca_practice/internal/api/auth/service"
	"ca_practice/internal/common"
	"ca_practice/internal/global"
	"ca_practice/internal/logger"
	"ca_practice/internal/utility"
)

// AuthManager quản lý xác thực người dùng
type AuthManager struct {
	UserCRUD *authsvc.UserService
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authManagerInstance = &AuthManager{
			UserCRUD: authsvc.NewUserService(),
			// Cache token -> user với thời gian sống 5 phút
			Cache: utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManagerInstance
}

// findUserByToken tìm user theo token, ưu tiên cache trước database
func (am *AuthManager) findUserByToken(ctx context.Context, token string) (*authmodels.User, error) {
	cacheKey := "auth_token:" + token
	if cached, found := am.Cache.Get(cacheKey); found {
		if user, ok := cached.(*authmodels.User); ok {
			return user, nil
		}
	}

	// Ưu tiên field "token" (token mới nhất), sau đó tìm trong array "tokens" theo hwid
	user, err := am.UserCRUD.FindOne(ctx, bson.M{"token": token}, nil)
	if err != nil {
		user, err = am.UserCRUD.FindOne(ctx, bson.M{"tokens.jwtToken": token}, nil)
		if err != nil {
			return nil, err
		}
	}

	am.Cache.Set(cacheKey, &user)
	return &user, nil
}

// InvalidateToken xóa token khỏi cache (gọi khi logout hoặc đổi mật khẩu)
func (am *AuthManager) InvalidateToken(token string) {
	am.Cache.Delete("auth_token:" + token)
}

// AuthMiddleware middleware xác thực cho Fiber.
// Xác thực chữ ký JWT, tra user theo token trong database, và kiểm tra vai trò.
//
// Parameters:
// - requireRoles: Danh sách vai trò được phép truy cập. Rỗng = chỉ cần đăng nhập.
func AuthMiddleware(requireRoles ...string) fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Thiếu Authorization header")
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		// Kiểm tra định dạng Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return HandleErrorResponse(c, common.ErrTokenInvalid)
		}
		token := parts[1]

		// Xác thực chữ ký JWT trước khi chạm database
		if _, err := utility.VerifyToken(global.MongoDB_ServerConfig.JwtSecret, token); err != nil {
			return HandleErrorResponse(c, common.ErrTokenInvalid)
		}

		// Tìm user đang giữ token
		user, err := authManager.findUserByToken(c.Context(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("Token không tồn tại trong database")
			return HandleErrorResponse(c, common.ErrTokenInvalid)
		}

		// Kiểm tra user có bị khóa không
		if user.IsBlock {
			return HandleErrorResponse(c, common.NewError(
				common.ErrCodeAuthCredentials,
				"Tài khoản đã bị khóa: "+user.BlockNote,
				common.StatusForbidden,
				nil,
			))
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("user", *user)
		c.Locals("user_role", user.Role)
		c.Locals("token", token)

		// Không yêu cầu vai trò cụ thể: chỉ cần đăng nhập
		if len(requireRoles) == 0 {
			return c.Next()
		}

		for _, role := range requireRoles {
			if user.Role == role {
				return c.Next()
			}
		}

		logger.GetAppLogger().WithFields(logrus.Fields{
			"user_id": user.ID.Hex(),
			"role":    user.Role,
			"path":    c.Path(),
		}).Warn("Vai trò không được phép truy cập")
		return HandleErrorResponse(c, common.ErrWrongRole)
	}
}
