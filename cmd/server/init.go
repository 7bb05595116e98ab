package main

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"ca_practice/config"
	"ca_practice/internal/database"
	"ca_practice/internal/global"
)

// InitGlobal khởi tạo các biến toàn cục theo thứ tự phụ thuộc
func InitGlobal() {
	initColNames()         // Tên các collection trong database
	initValidator()        // Validator cho input DTO
	initConfig()           // Cấu hình server từ file env
	initDatabase_MongoDB() // Kết nối database + index
}

// initColNames gán tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.Users = "auth_users"
	global.MongoDB_ColNames.AccessTokens = "access_tokens"
	global.MongoDB_ColNames.Clients = "practice_clients"
	global.MongoDB_ColNames.Documents = "practice_documents"
	global.MongoDB_ColNames.DocumentCategories = "practice_document_categories"
	global.MongoDB_ColNames.Returns = "practice_returns"
	global.MongoDB_ColNames.ReturnTypes = "practice_return_types"
	global.MongoDB_ColNames.Invoices = "practice_invoices"
	global.MongoDB_ColNames.Payments = "practice_payments"
	global.MongoDB_ColNames.Requests = "practice_requests"
	global.MongoDB_ColNames.Notifications = "notifications"

	logrus.Info("Initialized collection names")
}

// initValidator khởi tạo validator dùng chung
func initValidator() {
	global.Validate = validator.New()
	logrus.Info("Initialized validator")
}

// initConfig đọc cấu hình server từ file env theo GO_ENV
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

// initDatabase_MongoDB kết nối MongoDB và tạo index cho các collection
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.CreatePracticeIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured collection indexes")
}
