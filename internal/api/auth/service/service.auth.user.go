// Package authsvc - service xử lý nghiệp vụ người dùng: đăng nhập, đăng xuất, hồ sơ, đổi mật khẩu.
package authsvc

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authdto "ca_practice/internal/api/auth/dto"
	"ca_practice/internal/api/auth/models"
	basesvc "ca_practice/internal/api/base/service"
	"ca_practice/internal/common"
	"ca_practice/internal/global"
	"ca_practice/internal/utility"
)

// UserService service xử lý nghiệp vụ người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService với collection users từ registry
func NewUserService() *UserService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Users)
	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](collection),
	}
}

// CreateUser tạo người dùng mới với mật khẩu đã băm.
// Chỉ staff được gọi qua handler; role và clientRef lấy từ input.
func (s *UserService) CreateUser(ctx context.Context, input *authdto.UserCreateInput) (models.User, error) {
	var zero models.User

	hashed, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		Tokens:   []models.Token{},
	}

	if input.Role == models.RoleClient {
		clientRef := utility.String2ObjectID(input.ClientRef)
		if clientRef.IsZero() {
			return zero, common.NewError(
				common.ErrCodeValidationInput,
				"Tài khoản khách hàng phải gắn với một hồ sơ khách hàng (clientRef)",
				common.StatusBadRequest,
				nil,
			)
		}
		user.ClientRef = clientRef
	}

	return s.InsertOne(ctx, user)
}

// Login xác thực thông tin đăng nhập và cấp JWT token theo thiết bị (hwid).
// Tài khoản đăng nhập sai cổng vai trò (staff/client) bị từ chối.
//
// Parameters:
//   - ctx: Context cho việc hủy bỏ hoặc timeout
//   - input: Thông tin đăng nhập
//
// Returns:
//   - models.User: Người dùng với token mới
//   - error: Lỗi nếu thông tin không chính xác
func (s *UserService) Login(ctx context.Context, input *authdto.LoginInput) (models.User, error) {
	var zero models.User

	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.ErrInvalidCredentials
		}
		return zero, err
	}

	if !utility.ComparePassword(user.Password, input.Password) {
		return zero, common.ErrInvalidCredentials
	}

	if user.Role != input.Role {
		return zero, common.ErrWrongRole
	}

	if user.IsBlock {
		return zero, common.NewError(
			common.ErrCodeAuthCredentials,
			"Tài khoản đã bị khóa: "+user.BlockNote,
			common.StatusForbidden,
			nil,
		)
	}

	// Tạo token mới cho thiết bị này
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(
		global.MongoDB_ServerConfig.JwtSecret,
		user.ID.Hex(),
		strconv.FormatInt(currentTime, 16),
		strconv.Itoa(rdNumber),
	)
	if err != nil {
		return zero, err
	}
	newToken := tokenMap["token"]

	// Cập nhật token theo hwid: thay token cũ của thiết bị nếu có, thêm mới nếu chưa
	idTokenExist := -1
	for i, token := range user.Tokens {
		if token.Hwid == input.Hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: input.Hwid, JwtToken: newToken})
	} else {
		user.Tokens[idTokenExist].JwtToken = newToken
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  newToken,
			"tokens": user.Tokens,
		},
	}
	updatedUser, err := s.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID.Hex(),
			"error":   err.Error(),
		}).Error("Login: Lỗi khi cập nhật token vào user")
		return zero, err
	}

	updatedUser.Token = newToken
	return updatedUser, nil
}

// Logout xóa token của thiết bị (hwid) khỏi người dùng
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, hwid string) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	remaining := make([]models.Token, 0, len(user.Tokens))
	for _, token := range user.Tokens {
		if token.Hwid != hwid {
			remaining = append(remaining, token)
		}
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"tokens": remaining,
			"token":  "",
		},
	}
	_, err = s.UpdateById(ctx, userID, updateData)
	return err
}

// ChangePassword đổi mật khẩu sau khi xác thực mật khẩu cũ.
// Toàn bộ token hiện tại bị thu hồi để buộc đăng nhập lại.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.ChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if !utility.ComparePassword(user.Password, input.OldPassword) {
		return common.NewError(
			common.ErrCodeAuthCredentials,
			"Mật khẩu cũ không chính xác",
			common.StatusBadRequest,
			nil,
		)
	}

	hashed, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": hashed,
			"token":    "",
			"tokens":   []models.Token{},
		},
	}
	_, err = s.UpdateById(ctx, userID, updateData)
	return err
}

// UpdateProfile cập nhật hồ sơ cá nhân. avatarURL rỗng nghĩa là không đổi avatar.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, input *authdto.UpdateProfileInput, avatarURL string) (models.User, error) {
	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if avatarURL != "" {
		set["avatarUrl"] = avatarURL
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, userID)
	}

	return s.UpdateById(ctx, userID, &basesvc.UpdateData{Set: set})
}
