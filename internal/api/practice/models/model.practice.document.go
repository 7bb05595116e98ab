// Package models - model tài liệu và danh mục tài liệu.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document tài liệu của khách hàng, file lưu trên đĩa, metadata lưu ở đây.
type Document struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID   primitive.ObjectID `json:"clientId" bson:"clientId"`
	CategoryID primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	Name       string             `json:"name" bson:"name"`
	FilePath   string             `json:"filePath" bson:"filePath"`
	FileSize   int64              `json:"fileSize" bson:"fileSize"`
	MimeType   string             `json:"mimeType,omitempty" bson:"mimeType,omitempty"`
	UploadedBy primitive.ObjectID `json:"uploadedBy,omitempty" bson:"uploadedBy,omitempty"`
	UploadedAt int64              `json:"uploadedAt" bson:"uploadedAt"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// DocumentCategory danh mục phân loại tài liệu
type DocumentCategory struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
