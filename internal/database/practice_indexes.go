// Package database - Index cho các collection nghiệp vụ (compound, unique, sparse).
package database

import (
	"context"
	"strings"

	"ca_practice/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreatePracticeIndexes tạo các index cho các collection nghiệp vụ.
// Gọi một lần khi khởi động server, sau khi đăng ký collections.
func CreatePracticeIndexes(ctx context.Context, db *mongo.Database) error {
	// users: email unique — đăng nhập và chống trùng tài khoản
	users := db.Collection(global.MongoDB_ColNames.Users)
	if _, err := users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("user_email_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// access_tokens: (userId, hwid) — tra cứu token theo thiết bị
	tokens := db.Collection(global.MongoDB_ColNames.AccessTokens)
	if _, err := tokens.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "hwid", Value: 1},
		},
		Options: options.Index().SetName("token_user_hwid"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// clients: email unique sparse
	clients := db.Collection(global.MongoDB_ColNames.Clients)
	if _, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("client_email_unique").SetUnique(true).SetSparse(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// clients: status — lọc danh sách theo trạng thái
	if _, err := clients.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("client_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// documents: (clientId, uploadedAt) — danh sách tài liệu theo khách hàng
	documents := db.Collection(global.MongoDB_ColNames.Documents)
	if _, err := documents.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "uploadedAt", Value: -1},
		},
		Options: options.Index().SetName("document_client_uploaded"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// returns: (clientId, status) — danh sách tờ khai theo khách hàng và trạng thái
	returns := db.Collection(global.MongoDB_ColNames.Returns)
	if _, err := returns.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("return_client_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoices: invoiceNumber unique
	invoices := db.Collection(global.MongoDB_ColNames.Invoices)
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "invoiceNumber", Value: 1}},
		Options: options.Index().SetName("invoice_number_unique").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// invoices: (status, dueDate) — worker quét hóa đơn quá hạn
	if _, err := invoices.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "dueDate", Value: 1},
		},
		Options: options.Index().SetName("invoice_status_due"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// payments: invoiceId — cộng dồn thanh toán theo hóa đơn
	payments := db.Collection(global.MongoDB_ColNames.Payments)
	if _, err := payments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "invoiceId", Value: 1}},
		Options: options.Index().SetName("payment_invoice"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// requests: (clientId, status) — danh sách yêu cầu theo khách hàng
	requests := db.Collection(global.MongoDB_ColNames.Requests)
	if _, err := requests.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "clientId", Value: 1},
			{Key: "status", Value: 1},
		},
		Options: options.Index().SetName("request_client_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// notifications: (userId, read, createdAt) — danh sách và đếm chưa đọc
	notifications := db.Collection(global.MongoDB_ColNames.Notifications)
	if _, err := notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "read", Value: 1},
			{Key: "createdAt", Value: -1},
		},
		Options: options.Index().SetName("notification_user_read_created"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
