// Package models - model thông báo trong ứng dụng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification thông báo gửi tới một người dùng.
// ReferenceType/ReferenceID trỏ về bản ghi nguồn (invoice, return, request)
// để client điều hướng khi người dùng bấm vào thông báo.
type Notification struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID        primitive.ObjectID `json:"userId" bson:"userId"`
	Title         string             `json:"title" bson:"title"`
	Message       string             `json:"message" bson:"message"`
	ReferenceType string             `json:"referenceType,omitempty" bson:"referenceType,omitempty"`
	ReferenceID   primitive.ObjectID `json:"referenceId,omitempty" bson:"referenceId,omitempty"`
	Read          bool               `json:"read" bson:"read"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}
