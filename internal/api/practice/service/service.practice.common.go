package practicesvc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ca_practice/internal/common"
)

// errInvalidID tạo lỗi chuẩn cho ObjectID không hợp lệ
func errInvalidID(kind string, id string) error {
	return common.NewError(
		common.ErrCodeValidationInput,
		"ID "+kind+" không hợp lệ: "+id,
		common.StatusBadRequest,
		nil,
	)
}

// notifyClient là hook gửi thông báo tới các tài khoản của một khách hàng.
// Được gán lúc khởi động (xem router notification) để tránh import vòng
// giữa service nghiệp vụ và service thông báo. Nil nghĩa là chưa bật thông báo.
var notifyClient func(ctx context.Context, clientID primitive.ObjectID, title string, message string, refType string, refID primitive.ObjectID)

// SetNotifyClient gán hook gửi thông báo cho khách hàng
func SetNotifyClient(fn func(ctx context.Context, clientID primitive.ObjectID, title string, message string, refType string, refID primitive.ObjectID)) {
	notifyClient = fn
}

// sendClientNotification gửi thông báo best-effort, bỏ qua nếu hook chưa gán
func sendClientNotification(ctx context.Context, clientID primitive.ObjectID, title string, message string, refType string, refID primitive.ObjectID) {
	if notifyClient == nil || clientID.IsZero() {
		return
	}
	notifyClient(ctx, clientID, title, message, refType, refID)
}
