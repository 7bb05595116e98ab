// Package models - model hóa đơn và thanh toán.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice hóa đơn phát hành cho khách hàng.
// PaidAmount được service tính lại từ các Payment, không nhận trực tiếp từ client.
// Status Overdue do worker phía server gán khi quá hạn, client không tự suy ra.
type Invoice struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	InvoiceNumber string             `json:"invoiceNumber" bson:"invoiceNumber"`
	ClientID      primitive.ObjectID `json:"clientId" bson:"clientId"`
	Amount        float64            `json:"amount" bson:"amount"`
	TaxAmount     float64            `json:"taxAmount" bson:"taxAmount"`
	TotalAmount   float64            `json:"totalAmount" bson:"totalAmount"`
	PaidAmount    float64            `json:"paidAmount" bson:"paidAmount"`
	Status        string             `json:"status" bson:"status"`
	IssuedAt      int64              `json:"issuedAt,omitempty" bson:"issuedAt,omitempty"`
	DueDate       int64              `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt     int64              `json:"updatedAt" bson:"updatedAt"`
}

// Payment một lần thanh toán cho hóa đơn
type Payment struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	InvoiceID primitive.ObjectID `json:"invoiceId" bson:"invoiceId"`
	Amount    float64            `json:"amount" bson:"amount"`
	Method    string             `json:"method,omitempty" bson:"method,omitempty"`
	PaidAt    int64              `json:"paidAt" bson:"paidAt"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
