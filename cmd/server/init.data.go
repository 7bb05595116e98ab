package main

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "ca_practice/internal/api/auth/models"
	basesvc "ca_practice/internal/api/base/service"
	practicemodels "ca_practice/internal/api/practice/models"
	"ca_practice/internal/common"
	"ca_practice/internal/global"
	"ca_practice/internal/logger"
	"ca_practice/internal/utility"
)

// Tài khoản staff mặc định, chỉ dùng cho lần khởi động đầu tiên.
// Phải đổi mật khẩu ngay sau khi đăng nhập.
const (
	defaultAdminEmail    = "admin@capractice.local"
	defaultAdminPassword = "admin@123"
)

// InitDefaultData seed dữ liệu mặc định khi bật INITMODE:
// tài khoản staff đầu tiên, danh mục tài liệu và loại tờ khai chuẩn.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Starting InitDefaultData...")

	ctx := context.TODO()

	if err := initAdminUser(ctx); err != nil {
		log.Fatalf("Failed to initialize admin user: %v", err)
	}

	if err := initDocumentCategories(ctx); err != nil {
		log.Warnf("Failed to initialize document categories: %v", err)
	}

	if err := initReturnTypes(ctx); err != nil {
		log.Warnf("Failed to initialize return types: %v", err)
	}

	log.Info("InitDefaultData completed")
}

// initAdminUser tạo tài khoản staff đầu tiên nếu hệ thống chưa có staff nào
func initAdminUser(ctx context.Context) error {
	log := logger.GetAppLogger()
	users := basesvc.NewBaseServiceMongo[authmodels.User](
		global.RegistryCollections.MustGet(global.MongoDB_ColNames.Users))

	count, err := users.CountDocuments(ctx, bson.M{"role": authmodels.RoleStaff})
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info("Staff user already exists, skipping admin seed")
		return nil
	}

	hashed, err := utility.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	_, err = users.InsertOne(ctx, authmodels.User{
		Name:     "Administrator",
		Email:    defaultAdminEmail,
		Password: hashed,
		Role:     authmodels.RoleStaff,
		Tokens:   []authmodels.Token{},
	})
	if err != nil {
		return err
	}

	log.Infof("Seeded default staff user %s - hãy đổi mật khẩu ngay sau khi đăng nhập", defaultAdminEmail)
	return nil
}

// initDocumentCategories seed các danh mục tài liệu chuẩn của văn phòng
func initDocumentCategories(ctx context.Context) error {
	categories := basesvc.NewBaseServiceMongo[practicemodels.DocumentCategory](
		global.RegistryCollections.MustGet(global.MongoDB_ColNames.DocumentCategories))

	defaults := []practicemodels.DocumentCategory{
		{Name: "Hồ sơ pháp lý", Description: "Giấy phép kinh doanh, điều lệ, giấy tờ pháp lý"},
		{Name: "Sao kê ngân hàng", Description: "Sao kê tài khoản ngân hàng theo kỳ"},
		{Name: "Hóa đơn chứng từ", Description: "Hóa đơn mua vào, bán ra và chứng từ kế toán"},
		{Name: "Hồ sơ thuế", Description: "Tờ khai, biên lai nộp thuế, thông báo thuế"},
		{Name: "Khác", Description: "Tài liệu chưa phân loại"},
	}

	return seedByName(ctx, categories, defaults,
		func(c practicemodels.DocumentCategory) string { return c.Name })
}

// initReturnTypes seed các loại tờ khai thuế chuẩn
func initReturnTypes(ctx context.Context) error {
	types := basesvc.NewBaseServiceMongo[practicemodels.ReturnType](
		global.RegistryCollections.MustGet(global.MongoDB_ColNames.ReturnTypes))

	defaults := []practicemodels.ReturnType{
		{Name: "Thuế GTGT", Description: "Tờ khai thuế giá trị gia tăng theo kỳ"},
		{Name: "Thuế TNDN", Description: "Quyết toán thuế thu nhập doanh nghiệp năm"},
		{Name: "Thuế TNCN", Description: "Tờ khai thuế thu nhập cá nhân"},
		{Name: "Báo cáo tài chính", Description: "Bộ báo cáo tài chính năm"},
		{Name: "Báo cáo hóa đơn", Description: "Báo cáo tình hình sử dụng hóa đơn"},
	}

	return seedByName(ctx, types, defaults,
		func(t practicemodels.ReturnType) string { return t.Name })
}

// seedByName chèn các bản ghi mặc định chưa tồn tại (so theo tên)
func seedByName[T any](ctx context.Context, svc *basesvc.BaseServiceMongoImpl[T], defaults []T, name func(T) string) error {
	log := logger.GetAppLogger()
	for _, item := range defaults {
		_, err := svc.FindOne(ctx, bson.M{"name": name(item)}, nil)
		if err == nil {
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}
		if _, err := svc.InsertOne(ctx, item); err != nil {
			return err
		}
		log.Infof("Seeded %s", name(item))
	}
	return nil
}
