package practicesvc

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "ca_practice/internal/api/base/service"
	practicedto "ca_practice/internal/api/practice/dto"
	"ca_practice/internal/api/practice/models"
	"ca_practice/internal/global"
	"ca_practice/internal/reporting"
	"ca_practice/internal/utility"
)

// DocumentService service quản lý tài liệu của khách hàng
type DocumentService struct {
	*basesvc.BaseServiceMongoImpl[models.Document]
	adapter reporting.Adapter[models.Document]
}

// NewDocumentService tạo mới DocumentService với collection documents từ registry
func NewDocumentService() *DocumentService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.Documents)
	return &DocumentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Document](collection),
		adapter:              documentAdapter(),
	}
}

func documentAdapter() reporting.Adapter[models.Document] {
	return reporting.Adapter[models.Document]{
		Categorical: map[string]func(models.Document) string{
			"clientId": func(d models.Document) string { return utility.ObjectID2String(d.ClientID) },
			"category": func(d models.Document) string { return utility.ObjectID2String(d.CategoryID) },
		},
		Searchable: []func(models.Document) string{
			func(d models.Document) string { return d.Name },
		},
		Date: func(d models.Document) time.Time { return millisToTime(d.UploadedAt) },
		SortKeys: map[string]func(models.Document) any{
			"name":       func(d models.Document) any { return d.Name },
			"fileSize":   func(d models.Document) any { return float64(d.FileSize) },
			"uploadedAt": func(d models.Document) any { return millisToTime(d.UploadedAt) },
		},
	}
}

// CreateDocument lưu metadata tài liệu sau khi file đã được ghi xuống đĩa
func (s *DocumentService) CreateDocument(ctx context.Context, doc models.Document) (models.Document, error) {
	if doc.UploadedAt == 0 {
		doc.UploadedAt = time.Now().UnixMilli()
	}
	return s.InsertOne(ctx, doc)
}

// UpdateDocument chỉ cho đổi tên và danh mục, file gốc giữ nguyên
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, input *practicedto.DocumentUpdateInput) (models.Document, error) {
	var zero models.Document

	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return zero, errInvalidID("document", id)
	}

	set := map[string]interface{}{}
	if input.Name != "" {
		set["name"] = input.Name
	}
	if input.CategoryID != "" {
		categoryID := utility.String2ObjectID(input.CategoryID)
		if categoryID.IsZero() {
			return zero, errInvalidID("category", input.CategoryID)
		}
		set["categoryId"] = categoryID
	}

	if len(set) == 0 {
		return s.FindOneById(ctx, objID)
	}
	return s.UpdateById(ctx, objID, &basesvc.UpdateData{Set: set})
}

// DeleteDocument xóa metadata và file trên đĩa.
// Xóa file thất bại chỉ ghi log, không chặn việc xóa metadata.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	objID := utility.String2ObjectID(id)
	if objID.IsZero() {
		return errInvalidID("document", id)
	}

	doc, err := s.FindOneById(ctx, objID)
	if err != nil {
		return err
	}

	if err := s.DeleteById(ctx, objID); err != nil {
		return err
	}

	if doc.FilePath != "" {
		if err := os.Remove(doc.FilePath); err != nil && !os.IsNotExist(err) {
			logrus.WithFields(logrus.Fields{
				"document_id": id,
				"file_path":   doc.FilePath,
				"error":       err.Error(),
			}).Warn("DeleteDocument: Không xóa được file trên đĩa")
		}
	}
	return nil
}

// List dẫn xuất danh sách tài liệu theo scope vai trò
func (s *DocumentService) List(ctx context.Context, scope bson.M, st reporting.ViewState) (*reporting.ViewResult[models.Document], error) {
	items, err := s.Find(ctx, scope, nil)
	if err != nil {
		return nil, err
	}
	result := reporting.Apply(s.adapter, items, st)
	return &result, nil
}

// DocumentCategoryService service quản lý danh mục tài liệu
type DocumentCategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.DocumentCategory]
}

// NewDocumentCategoryService tạo mới DocumentCategoryService từ registry
func NewDocumentCategoryService() *DocumentCategoryService {
	collection := global.RegistryCollections.MustGet(global.MongoDB_ColNames.DocumentCategories)
	return &DocumentCategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.DocumentCategory](collection),
	}
}
