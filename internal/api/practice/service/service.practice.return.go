package practicesvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "ca_practice/internal/api/base/service"
	practicedto "ca_practice/internal/api/practice/dto"
	"ca_practice/internal/api/practice/models"
	"ca_practice/internal/common"
	"ca_practice/internal/global"
	"ca_practice/internal/reporting"
	"ca_practice/internal/utility"
)

// ReturnService service quản lý tờ khai thuế
type ReturnService struct {
	*basesvc.BaseServiceMongoImpl[models.TaxReturn]
	adapter reporting.Adapter[models.TaxReturn]
}

// NewReturnService tạo mới ReturnService với collection returns từ registry
func NewReturnService() *ReturnService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Returns)
	return &ReturnService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.TaxReturn](collection),
		adapter:              returnAdapter(),
	}
}

func returnAdapter() reporting.Adapter[models.TaxReturn] {
	return reporting.Adapter[models.TaxReturn]{
		Categorical: map[string]func(models.TaxReturn) string{
			"status":   func(r models.TaxReturn) string { return r.Status },
			"type":     func(r models.TaxReturn) string { return utility.ObjectID2String(r.TypeID) },
			"clientId": func(r models.TaxReturn) string { return utility.ObjectID2String(r.ClientID) },
		},
		Searchable: []func(models.TaxReturn) string{
			func(r models.TaxReturn) string { return r.FinancialYear },
			func(r models.TaxReturn) string { return r.AssessmentYear },
			func(r models.TaxReturn) string { return r.Notes },
		},
		Date: func(r models.TaxReturn) time.Time { return millisToTime(r.DueDate) },
		SortKeys: map[string]func(models.TaxReturn) any{
			"financialYear": func(r models.TaxReturn) any { return r.FinancialYear },
			"status":        func(r models.TaxReturn) any { return r.Status },
			"dueDate":       func(r models.TaxReturn) any { return millisToTime(r.DueDate) },
			"createdAt":     func(r models.TaxReturn) any { return millisToTime(r.CreatedAt) },
		},
		Status: func(r models.TaxReturn) string { return r.Status },
	}
}

// CreateReturn tạo tờ khai mới, trạng thái khởi tạo luôn là pending
func (s *ReturnService) CreateReturn(ctx context.Context, input *practicedto.ReturnCreateInput) (models.TaxReturn, error) {
	var zero models.TaxReturn

	clientID := utility.String2ObjectID(input.ClientID)
	if clientID.IsZero() {
		return zero, errInvalidID("client", input.ClientID)
	}
	typeID := utility.String2ObjectID(input.TypeID)
	if typeID.IsZero() {
		return zero, errInvalidID("return type", input.TypeID)
	}

	taxReturn := models.TaxReturn{
		ClientID:       clientID,
		TypeID:         typeID,
		FinancialYear:  input.FinancialYear,
		AssessmentYear: input.AssessmentYear,
		Status:         models.ReturnStatusPending,
		DueDate:        input.DueDate,
		Notes:          input.Notes,
	}
	return s.InsertOne(ctx, taxReturn)
}

// UpdateReturn cập nhật nội dung tờ khai, bị chặn khi đã completed
func (s *ReturnService) UpdateReturn(ctx context.Context, id string, input *practicedto.ReturnUpdateInput) (models.TaxReturn, error) {
	var zero models.TaxReturn

	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return zero, errInvalidID("return", id)
	}

	current, err := s.FindOneById(ctx, objID)
	if err != nil {
		return zero, err
	}
	if models.IsTerminalReturn(current.Status) {
		return zero, common.ErrTerminalStatus
	}

	set := map[string]interface{}{}
	if input.FinancialYear != "" {
		set["financialYear"] = input.FinancialYear
	}
	if input.AssessmentYear != "" {
		set["assessmentYear"] = input.AssessmentYear
	}
	if input.DueDate != 0 {
		set["dueDate"] = input.DueDate
	}
	if input.Notes != "" {
		set["notes"] = input.Notes
	}

	if len(set) == 0 {
		return current, nil
	}
	return s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
}

// UpdateStatus chuyển trạng thái tờ khai theo máy trạng thái tuần tự.
// Chuyển sang filled ghi nhận thời điểm nộp (filedAt).
func (s *ReturnService) UpdateStatus(ctx context.Context, id string, newStatus string) (models.TaxReturn, error) {
	var zero models.TaxReturn

	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return zero, errInvalidID("return", id)
	}

	current, err := s.FindOneById(ctx, objID)
	if err != nil {
		return zero, err
	}

	if !models.CanTransitionReturn(current.Status, newStatus) {
		return zero, common.NewError(
			common.ErrCodeBusinessState,
			"Không thể chuyển tờ khai từ "+current.Status+" sang "+newStatus,
			common.StatusConflict,
			nil,
		)
	}

	set := map[string]interface{}{"status": newStatus}
	if newStatus == models.ReturnStatusFilled {
		set["filedAt"] = time.Now().UnixMilli()
	}

	updated, err := s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
	if err != nil {
		return zero, err
	}

	sendClientNotification(ctx, updated.ClientID,
		"Cập nhật tờ khai thuế",
		"Tờ khai năm tài chính "+updated.FinancialYear+" chuyển sang trạng thái "+newStatus,
		"return", updated.ID)

	return updated, nil
}

// DeleteReturn xóa tờ khai, bị chặn khi đã completed
func (s *ReturnService) DeleteReturn(ctx context.Context, id string) error {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return errInvalidID("return", id)
	}

	current, err := s.FindOneById(ctx, objID)
	if err != nil {
		return err
	}
	if models.IsTerminalReturn(current.Status) {
		return common.ErrTerminalStatus
	}
	return s.DeleteById(ctx, objID)
}

// List dẫn xuất danh sách tờ khai theo scope vai trò
func (s *ReturnService) List(ctx context.Context, scope bson.M, st reporting.ViewState) (*reporting.ViewResult[models.TaxReturn], error) {
	items, err := s.Find(ctx, scope, nil)
	if err != nil {
		return nil, err
	}
	result := reporting.Apply(s.adapter, items, st)
	return &result, nil
}

// ReturnTypeService service quản lý loại tờ khai
type ReturnTypeService struct {
	*basesvc.BaseServiceMongoImpl[models.ReturnType]
}

// NewReturnTypeService tạo mới ReturnTypeService từ registry
func NewReturnTypeService() *ReturnTypeService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.ReturnTypes)
	return &ReturnTypeService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.ReturnType](collection),
	}
}
