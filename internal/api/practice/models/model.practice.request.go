// Package models - model yêu cầu hỗ trợ của khách hàng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SupportRequest yêu cầu hỗ trợ do khách hàng gửi, nhân viên trả lời và chuyển trạng thái.
// Status chuyển theo máy trạng thái: Pending -> In Progress -> Resolved,
// Rejected đến được từ Pending hoặc In Progress.
type SupportRequest struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID       primitive.ObjectID `json:"clientId" bson:"clientId"`
	CreatedBy      primitive.ObjectID `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	Subject        string             `json:"subject" bson:"subject"`
	Description    string             `json:"description,omitempty" bson:"description,omitempty"`
	Priority       string             `json:"priority" bson:"priority"`
	Status         string             `json:"status" bson:"status"`
	Reply          string             `json:"reply,omitempty" bson:"reply,omitempty"`
	AttachmentPath string             `json:"attachmentPath,omitempty" bson:"attachmentPath,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
