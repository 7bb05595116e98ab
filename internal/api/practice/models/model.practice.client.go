// Package models - các model nghiệp vụ của văn phòng kế toán.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client hồ sơ khách hàng của văn phòng.
// Status nhận một trong các giá trị ClientStatusActive/ClientStatusInactive.
type Client struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	BusinessName string             `json:"businessName" bson:"businessName"`
	ContactName  string             `json:"contactName" bson:"contactName"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	TaxCode      string             `json:"taxCode,omitempty" bson:"taxCode,omitempty"`
	GstNumber    string             `json:"gstNumber,omitempty" bson:"gstNumber,omitempty"`
	Address      string             `json:"address,omitempty" bson:"address,omitempty"`
	Status       string             `json:"status" bson:"status"`
	Notes        string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
