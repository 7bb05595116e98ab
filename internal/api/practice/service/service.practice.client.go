// Package practicesvc - service nghiệp vụ văn phòng kế toán: khách hàng, tài liệu,
// tờ khai thuế, hóa đơn + thanh toán, yêu cầu hỗ trợ.
//
// Mỗi service khai báo một reporting.Adapter mô tả cách lọc/sắp xếp/tổng hợp
// entity của mình, và một phương thức List chạy pipeline dẫn xuất danh sách
// trên tập đã được giới hạn theo vai trò (scope).
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

// millisToTime chuyển timestamp UnixMilli thành time.Time.
// Giá trị 0 trả về zero time để engine coi như "không có ngày".
func millisToTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}

// ClientService service quản lý hồ sơ khách hàng.
// Giữ tham chiếu tới các collection phụ thuộc để kiểm tra ràng buộc khi xóa.
type ClientService struct {
	*basesvc.BaseServiceMongoImpl[models.Client]
	documents *basesvc.BaseServiceMongoImpl[models.Document]
	returns   *basesvc.BaseServiceMongoImpl[models.TaxReturn]
	invoices  *basesvc.BaseServiceMongoImpl[models.Invoice]
	adapter   reporting.Adapter[models.Client]
}

// NewClientService tạo mới ClientService với collection clients từ registry
func NewClientService() *ClientService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Clients)
	return &ClientService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Client](collection),
		documents: basesvc.NewBaseServiceMongo[models.Document](
			global.RegistryCollections.MustGet(global.MongoDB_ColNames.Documents)),
		returns: basesvc.NewBaseServiceMongo[models.TaxReturn](
			global.RegistryCollections.MustGet(global.MongoDB_ColNames.Returns)),
		invoices: basesvc.NewBaseServiceMongo[models.Invoice](
			global.RegistryCollections.MustGet(global.MongoDB_ColNames.Invoices)),
		adapter: clientAdapter(),
	}
}

func clientAdapter() reporting.Adapter[models.Client] {
	return reporting.Adapter[models.Client]{
		Categorical: map[string]func(models.Client) string{
			"status": func(c models.Client) string { return c.Status },
		},
		Searchable: []func(models.Client) string{
			func(c models.Client) string { return c.BusinessName },
			func(c models.Client) string { return c.ContactName },
			func(c models.Client) string { return c.Email },
			func(c models.Client) string { return c.Phone },
			func(c models.Client) string { return c.TaxCode },
			func(c models.Client) string { return c.GstNumber },
		},
		Date: func(c models.Client) time.Time { return millisToTime(c.CreatedAt) },
		SortKeys: map[string]func(models.Client) any{
			"businessName": func(c models.Client) any { return c.BusinessName },
			"contactName":  func(c models.Client) any { return c.ContactName },
			"email":        func(c models.Client) any { return c.Email },
			"status":       func(c models.Client) any { return c.Status },
			"createdAt":    func(c models.Client) any { return millisToTime(c.CreatedAt) },
		},
		Status: func(c models.Client) string { return c.Status },
	}
}

// CreateClient tạo hồ sơ khách hàng mới ở trạng thái active
func (s *ClientService) CreateClient(ctx context.Context, input *practicedto.ClientCreateInput) (models.Client, error) {
	client := models.Client{
		BusinessName: input.BusinessName,
		ContactName:  input.ContactName,
		Email:        input.Email,
		Phone:        input.Phone,
		TaxCode:      input.TaxCode,
		GstNumber:    input.GstNumber,
		Address:      input.Address,
		Status:       models.ClientStatusActive,
		Notes:        input.Notes,
	}
	return s.InsertOne(ctx, client)
}

// UpdateClient cập nhật từng phần hồ sơ khách hàng
func (s *ClientService) UpdateClient(ctx context.Context, id string, input *practicedto.ClientUpdateInput) (models.Client, error) {
	var zero models.Client

	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return zero, errInvalidID("client", id)
	}

	set := map[string]interface{}{}
	if input.BusinessName != "" {
		set["businessName"] = input.BusinessName
	}
	if input.ContactName != "" {
		set["contactName"] = input.ContactName
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.Phone != "" {
		set["phone"] = input.Phone
	}
	if input.TaxCode != "" {
		set["taxCode"] = input.TaxCode
	}
	if input.GstNumber != "" {
		set["gstNumber"] = input.GstNumber
	}
	if input.Address != "" {
		set["address"] = input.Address
	}
	if input.Status != "" {
		set["status"] = input.Status
	}
	if input.Notes != "" {
		set["notes"] = input.Notes
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, objID)
	}
	return s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
}

// clientReferenceError dựng lỗi nghiệp vụ khi hồ sơ khách hàng còn dữ liệu
// tham chiếu. counts đếm số bản ghi theo từng loại; toàn 0 trả về nil.
func clientReferenceError(counts map[string]int64) error {
	refs := map[string]int64{}
	for kind, n := range counts {
		if n > 0 {
			refs[kind] = n
		}
	}
	if len(refs) == 0 {
		return nil
	}
	return common.NewError(
		common.ErrCodeBusinessOperation,
		"Không xóa được khách hàng vì còn dữ liệu liên quan (tài liệu, tờ khai hoặc hóa đơn)",
		common.StatusConflict,
		refs,
	)
}

// DeleteClient xóa hồ sơ khách hàng khi không còn tài liệu, tờ khai
// hay hóa đơn nào tham chiếu đến nó.
func (s *ClientService) DeleteClient(ctx context.Context, id string) error {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return errInvalidID("client", id)
	}

	filter := bson.M{"clientId": objID}
	documents, err := s.documents.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}
	returns, err := s.returns.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}
	invoices, err := s.invoices.CountDocuments(ctx, filter)
	if err != nil {
		return err
	}

	if err := clientReferenceError(map[string]int64{
		"documents": documents,
		"returns":   returns,
		"invoices":  invoices,
	}); err != nil {
		return err
	}

	return s.DeleteById(ctx, objID)
}

// List dẫn xuất danh sách khách hàng: lọc + tìm kiếm + sắp xếp + phân trang + tổng hợp.
// scope giới hạn tập dữ liệu theo vai trò người gọi (nil nghĩa là toàn bộ).
func (s *ClientService) List(ctx context.Context, scope bson.M, st reporting.ViewState) (*reporting.ViewResult[models.Client], error) {
	items, err := s.Find(ctx, scope, nil)
	if err != nil {
		return nil, err
	}
	result := reporting.Apply(s.adapter, items, st)
	return &result, nil
}
