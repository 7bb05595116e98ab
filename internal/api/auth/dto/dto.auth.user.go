// Package authdto - các DTO đầu vào cho domain auth.
package authdto

// UserCreateInput đầu vào tạo người dùng (CRUD, chỉ staff).
type UserCreateInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,oneof=staff client"`
	ClientRef string `json:"clientRef,omitempty"`
}

// UserUpdateInput đầu vào cập nhật người dùng.
type UserUpdateInput struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// LoginInput đầu vào đăng nhập.
// Role chỉ định cổng đăng nhập (staff hoặc client); tài khoản sai vai trò bị từ chối.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=staff client"`
	Hwid     string `json:"hwid" validate:"required"`
}

// LogoutInput đầu vào đăng xuất.
type LogoutInput struct {
	Hwid string `json:"hwid" validate:"required"`
}

// ChangePasswordInput đầu vào đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// UpdateProfileInput đầu vào cập nhật hồ sơ cá nhân.
// Avatar gửi qua multipart form (field "avatar"), không nằm trong JSON body.
type UpdateProfileInput struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}
