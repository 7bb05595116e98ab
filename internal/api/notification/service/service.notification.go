// Package notificationsvc - service thông báo trong ứng dụng và kênh email.
package notificationsvc

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/gomail.v2"

	authmodels "ca_practice/internal/api/auth/models"
	basemodels "ca_practice/internal/api/base/models"
	basesvc "ca_practice/internal/api/base/service"
	"ca_practice/internal/common"
	"ca_practice/internal/api/notification/models"
	"ca_practice/internal/global"
	"ca_practice/internal/logger"
)

// NotificationService service quản lý thông báo.
// Kênh email là tùy chọn: SMTP_HOST rỗng thì chỉ lưu thông báo trong app.
type NotificationService struct {
	*basesvc.BaseServiceMongoImpl[models.Notification]
	users *basesvc.BaseServiceMongoImpl[authmodels.User]
}

// NewNotificationService tạo mới NotificationService từ registry
func NewNotificationService() *NotificationService {
	return &NotificationService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Notification](
			global.RegistryCollections.MustGet(global.MongoDB_ColNames.Notifications)),
		users: basesvc.NewBaseServiceMongo[authmodels.User](
			global.RegistryCollections.MustGet(global.MongoDB_ColNames.Users)),
	}
}

// Notify tạo thông báo cho một người dùng và gửi email nếu kênh email đang bật
func (s *NotificationService) Notify(ctx context.Context, userID primitive.ObjectID, title string, message string, refType string, refID primitive.ObjectID) error {
	notification := models.Notification{
		UserID:        userID,
		Title:         title,
		Message:       message,
		ReferenceType: refType,
		ReferenceID:   refID,
		Read:          false,
	}
	if _, err := s.InsertOne(ctx, notification); err != nil {
		return err
	}

	s.sendEmail(ctx, userID, title, message)
	return nil
}

// NotifyClient gửi thông báo tới mọi tài khoản gắn với một hồ sơ khách hàng.
// Lỗi từng tài khoản chỉ ghi log, không chặn các tài khoản còn lại.
func (s *NotificationService) NotifyClient(ctx context.Context, clientID primitive.ObjectID, title string, message string, refType string, refID primitive.ObjectID) {
	users, err := s.users.Find(ctx, bson.M{"clientRef": clientID}, nil)
	if err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"client_id": clientID.Hex(),
			"error":     err.Error(),
		}).Error("NotifyClient: Không tìm được tài khoản của khách hàng")
		return
	}

	for _, user := range users {
		if err := s.Notify(ctx, user.ID, title, message, refType, refID); err != nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"user_id": user.ID.Hex(),
				"error":   err.Error(),
			}).Error("NotifyClient: Không tạo được thông báo")
		}
	}
}

// sendEmail gửi email best-effort qua SMTP, bỏ qua nếu chưa cấu hình
func (s *NotificationService) sendEmail(ctx context.Context, userID primitive.ObjectID, title string, message string) {
	cfg := global.MongoDB_ServerConfig
	if cfg == nil || cfg.SMTPHost == "" {
		return
	}

	user, err := s.users.FindOneById(ctx, userID)
	if err != nil || user.Email == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", cfg.SMTPFrom, cfg.SMTPFromName)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", title)
	m.SetBody("text/plain", message)

	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	if err := dialer.DialAndSend(m); err != nil {
		logger.GetErrorLogger().WithFields(logrus.Fields{
			"user_id": userID.Hex(),
			"error":   err.Error(),
		}).Warn("sendEmail: Gửi email thông báo thất bại")
	}
}

// ListByUser trả về thông báo của một người dùng, mới nhất trước, có phân trang
func (s *NotificationService) ListByUser(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[models.Notification], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"userId": userID}, page, limit, opts)
}

// UnreadCount đếm số thông báo chưa đọc của một người dùng
func (s *NotificationService) UnreadCount(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	return s.CountDocuments(ctx, bson.M{"userId": userID, "read": false})
}

// MarkRead đánh dấu một thông báo của chính người dùng là đã đọc
func (s *NotificationService) MarkRead(ctx context.Context, userID primitive.ObjectID, notificationID primitive.ObjectID) (models.Notification, error) {
	return s.UpdateOne(ctx,
		bson.M{"_id": notificationID, "userId": userID},
		&basesvc.UpdateData{Set: map[string]interface{}{"read": true}},
	)
}

// MarkAllRead đánh dấu toàn bộ thông báo của người dùng là đã đọc.
// Trả về số thông báo được cập nhật.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	result, err := s.Collection().UpdateMany(ctx,
		bson.M{"userId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.ModifiedCount, nil
}
