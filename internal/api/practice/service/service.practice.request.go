package practicesvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "ca_practice/internal/api/base/service"
	practicedto "ca_practice/internal/api/practice/dto"
	"ca_practice/internal/api/practice/models"
	"ca_practice/internal/common"
	"ca_practice/internal/global"
	"ca_practice/internal/reporting"
	"ca_practice/internal/utility"
)

// RequestService service quản lý yêu cầu hỗ trợ của khách hàng
type RequestService struct {
	*basesvc.BaseServiceMongoImpl[models.SupportRequest]
	adapter reporting.Adapter[models.SupportRequest]
}

// NewRequestService tạo mới RequestService với collection requests từ registry
func NewRequestService() *RequestService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Requests)
	return &RequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.SupportRequest](collection),
		adapter:              requestAdapter(),
	}
}

func requestAdapter() reporting.Adapter[models.SupportRequest] {
	return reporting.Adapter[models.SupportRequest]{
		Categorical: map[string]func(models.SupportRequest) string{
			"status":   func(r models.SupportRequest) string { return r.Status },
			"priority": func(r models.SupportRequest) string { return r.Priority },
			"clientId": func(r models.SupportRequest) string { return utility.ObjectID2String(r.ClientID) },
		},
		Searchable: []func(models.SupportRequest) string{
			func(r models.SupportRequest) string { return r.Subject },
			func(r models.SupportRequest) string { return r.Description },
		},
		Date: func(r models.SupportRequest) time.Time { return millisToTime(r.CreatedAt) },
		SortKeys: map[string]func(models.SupportRequest) any{
			"subject":   func(r models.SupportRequest) any { return r.Subject },
			"priority":  func(r models.SupportRequest) any { return r.Priority },
			"status":    func(r models.SupportRequest) any { return r.Status },
			"createdAt": func(r models.SupportRequest) any { return millisToTime(r.CreatedAt) },
		},
		Status: func(r models.SupportRequest) string { return r.Status },
	}
}

// CreateRequest tạo yêu cầu hỗ trợ mới ở trạng thái Pending.
// clientID lấy từ tài khoản khi người gọi là khách hàng, từ input khi nhân viên tạo hộ.
func (s *RequestService) CreateRequest(ctx context.Context, clientID primitive.ObjectID, createdBy primitive.ObjectID, input *practicedto.RequestCreateInput, attachmentPath string) (models.SupportRequest, error) {
	var zero models.SupportRequest

	if clientID.IsZero() {
		return zero, errInvalidID("client", input.ClientID)
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !models.IsValidPriority(priority) {
		return zero, common.ErrInvalidInput
	}

	request := models.SupportRequest{
		ClientID:       clientID,
		CreatedBy:      createdBy,
		Subject:        input.Subject,
		Description:    input.Description,
		Priority:       priority,
		Status:         models.RequestStatusPending,
		AttachmentPath: attachmentPath,
	}
	return s.InsertOne(ctx, request)
}

// UpdateRequest sửa nội dung yêu cầu khi chưa kết thúc
func (s *RequestService) UpdateRequest(ctx context.Context, id string, input *practicedto.RequestUpdateInput) (models.SupportRequest, error) {
	var zero models.SupportRequest

	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return zero, errInvalidID("request", id)
	}

	current, err := s.FindOneById(ctx, objID)
	if err != nil {
		return zero, err
	}
	if models.IsTerminalRequest(current.Status) {
		return zero, common.ErrTerminalStatus
	}

	set := map[string]interface{}{}
	if input.Subject != "" {
		set["subject"] = input.Subject
	}
	if input.Description != "" {
		set["description"] = input.Description
	}
	if input.Priority != "" {
		if !models.IsValidPriority(input.Priority) {
			return zero, common.ErrInvalidInput
		}
		set["priority"] = input.Priority
	}

	if len(set) == 0 {
		return current, nil
	}
	return s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
}

// UpdateStatus chuyển trạng thái yêu cầu và ghi câu trả lời của nhân viên.
// Chuyển trạng thái gửi thông báo cho khách hàng.
func (s *RequestService) UpdateStatus(ctx context.Context, id string, input *practicedto.RequestStatusInput) (models.SupportRequest, error) {
	var zero models.SupportRequest

	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return zero, errInvalidID("request", id)
	}

	current, err := s.FindOneById(ctx, objID)
	if err != nil {
		return zero, err
	}

	if !models.CanTransitionRequest(current.Status, input.Status) {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			"Không thể chuyển yêu cầu từ "+current.Status+" sang "+input.Status,
			common.StatusConflict,
			nil,
		)
	}

	set := map[string]interface{}{"status": input.Status}
	if input.Reply != "" {
		set["reply"] = input.Reply
	}

	updated, err := s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return zero, err
	}

	sendClientNotification(ctx, updated.ClientID,
		"Cập nhật yêu cầu hỗ trợ",
		"Yêu cầu \""+updated.Subject+"\" chuyển sang trạng thái "+input.Status,
		"request", updated.ID)

	return updated, nil
}

// DeleteRequest xóa yêu cầu, chỉ khi còn ở trạng thái Pending.
// Yêu cầu đã có nhân viên xử lý là một phần lịch sử làm việc, không xóa được.
func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return errInvalidID("request", id)
	}

	current, err := s.FindOneById(ctx, objID)
	if err != nil {
		return err
	}
	if !models.CanDeleteRequest(current.Status) {
		return common.NewError(
			common.ErrCodeBusinessState,
			"Chỉ xóa được yêu cầu đang ở trạng thái Pending",
			common.StatusConflict,
			nil,
		)
	}
	return s.DeleteById(ctx, objID)
}

// List dẫn xuất danh sách yêu cầu theo scope vai trò
func (s *RequestService) List(ctx context.Context, scope bson.M, st reporting.ViewState) (*reporting.ViewResult[models.SupportRequest], error) {
	items, err := s.Find(ctx, scope, nil)
	if err != nil {
		return nil, err
	}
	result := reporting.Apply(s.adapter, items, st)
	return &result, nil
}
