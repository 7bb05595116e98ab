// Package models - model tờ khai thuế và loại tờ khai.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaxReturn tờ khai thuế của khách hàng.
// Status chuyển theo chuỗi pending -> in_progress -> filled -> completed.
type TaxReturn struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ClientID       primitive.ObjectID `json:"clientId" bson:"clientId"`
	TypeID         primitive.ObjectID `json:"typeId" bson:"typeId"`
	FinancialYear  string             `json:"financialYear" bson:"financialYear"`
	AssessmentYear string             `json:"assessmentYear" bson:"assessmentYear"`
	Status         string             `json:"status" bson:"status"`
	DueDate        int64              `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	FiledAt        int64              `json:"filedAt,omitempty" bson:"filedAt,omitempty"`
	Notes          string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// ReturnType loại tờ khai (thuế TNDN, GTGT, TNCN, ...)
type ReturnType struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
