package global

import (
	"ca_practice/config"
	"ca_practice/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Practice_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Practice_CollectionName struct {
	Users              string // Tên collection cho người dùng (nhân viên và khách hàng)
	AccessTokens       string // Tên collection cho token
	Clients            string // Tên collection cho hồ sơ khách hàng
	Documents          string // Tên collection cho tài liệu
	DocumentCategories string // Tên collection cho danh mục tài liệu
	Returns            string // Tên collection cho tờ khai thuế
	ReturnTypes        string // Tên collection cho loại tờ khai
	Invoices           string // Tên collection cho hóa đơn
	Payments           string // Tên collection cho thanh toán
	Requests           string // Tên collection cho yêu cầu hỗ trợ
	Notifications      string // Tên collection cho thông báo
}

// Các biến toàn cục
var Validate *validator.Validate                                                             // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                            // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                               // Cấu hình của server
var MongoDB_ColNames MongoDB_Practice_CollectionName = *new(MongoDB_Practice_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
