package utility

import (
	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"ca_practice/internal/common"
)

// JwtClaims là payload của JWT token
type JwtClaims struct {
	UserID       string `json:"user_id"`       // ID của người dùng
	Time         string `json:"time"`          // Thời điểm tạo token (hex unix)
	RandomNumber string `json:"random_number"` // Số ngẫu nhiên chống trùng token
	jwt.StandardClaims
}

// CreateToken tạo JWT token với thuật toán HS256
// Parameters:
//   - secret: Bí mật dùng để ký token
//   - userID: ID của người dùng
//   - t: Thời điểm tạo (hex unix)
//   - randomNumber: Số ngẫu nhiên
//
// Returns:
//   - map chứa key "token" với giá trị là chuỗi token
//   - error: Lỗi nếu ký thất bại
func CreateToken(secret string, userID string, t string, randomNumber string) (map[string]string, error) {
	claims := JwtClaims{
		UserID:       userID,
		Time:         t,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err.Error())
	}

	return map[string]string{"token": signed}, nil
}

// VerifyToken xác thực JWT token và trả về claims
// Parameters:
//   - secret: Bí mật dùng để ký token
//   - tokenString: Chuỗi token cần xác thực
//
// Returns:
//   - *JwtClaims: Claims của token nếu hợp lệ
//   - error: ErrTokenInvalid nếu token không hợp lệ
func VerifyToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err.Error())
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu với hash đã lưu.
// Trả về true nếu khớp.
func ComparePassword(hashed string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
