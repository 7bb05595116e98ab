// Package dto - input cho các API nghiệp vụ.
package dto

// ClientCreateInput dữ liệu tạo khách hàng
type ClientCreateInput struct {
	BusinessName string `json:"businessName" validate:"required"`
	ContactName  string `json:"contactName" validate:"required"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	TaxCode      string `json:"taxCode,omitempty"`
	GstNumber    string `json:"gstNumber,omitempty"`
	Address      string `json:"address,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// ClientUpdateInput dữ liệu cập nhật khách hàng
type ClientUpdateInput struct {
	BusinessName string `json:"businessName,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	TaxCode      string `json:"taxCode,omitempty"`
	GstNumber    string `json:"gstNumber,omitempty"`
	Address      string `json:"address,omitempty"`
	Status       string `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Notes        string `json:"notes,omitempty"`
}
