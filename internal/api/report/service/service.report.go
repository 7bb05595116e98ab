// Package reportsvc - service tổng hợp số liệu cho dashboard của văn phòng.
// Mọi con số đều dẫn xuất từ dữ liệu gốc tại thời điểm gọi, không lưu bảng tổng hợp riêng.
package reportsvc

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "ca_practice/internal/api/base/service"
	"ca_practice/internal/api/practice/models"
	"ca_practice/internal/global"
	"ca_practice/internal/reporting"
)

// RevenueReport doanh thu theo tháng dẫn xuất từ các thanh toán đã ghi nhận
type RevenueReport struct {
	Months map[string]float64 `json:"months"`
	Total  float64            `json:"total"`
	Growth float64            `json:"growth"`
}

// StatusReport đếm bản ghi theo trạng thái
type StatusReport struct {
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// ClientGrowthReport số khách hàng mới theo tháng
type ClientGrowthReport struct {
	Months map[string]float64 `json:"months"`
	Total  int                `json:"total"`
	Growth float64            `json:"growth"`
}

// RequestSummaryReport đếm yêu cầu hỗ trợ theo trạng thái và độ ưu tiên
type RequestSummaryReport struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"byStatus"`
	ByPriority map[string]int `json:"byPriority"`
}

// ReportService service dựng các báo cáo tổng hợp
type ReportService struct {
	clients  *basesvc.BaseServiceMongoImpl[models.Client]
	returns  *basesvc.BaseServiceMongoImpl[models.TaxReturn]
	invoices *basesvc.BaseServiceMongoImpl[models.Invoice]
	payments *basesvc.BaseServiceMongoImpl[models.Payment]
	requests *basesvc.BaseServiceMongoImpl[models.SupportRequest]
}

// NewReportService tạo mới ReportService từ các collection trong registry
func NewReportService() *ReportService {
	return &ReportService{
		clients:  basesvc.NewBaseServiceMongo[models.Client](global.RegistryCollections.MustGet(global.MongoDB_ColNames.Clients)),
		returns:  basesvc.NewBaseServiceMongo[models.TaxReturn](global.RegistryCollections.MustGet(global.MongoDB_ColNames.Returns)),
		invoices: basesvc.NewBaseServiceMongo[models.Invoice](global.RegistryCollections.MustGet(global.MongoDB_ColNames.Invoices)),
		payments: basesvc.NewBaseServiceMongo[models.Payment](global.RegistryCollections.MustGet(global.MongoDB_ColNames.Payments)),
		requests: basesvc.NewBaseServiceMongo[models.SupportRequest](global.RegistryCollections.MustGet(global.MongoDB_ColNames.Requests)),
	}
}

// Revenue tổng hợp doanh thu theo tháng từ các thanh toán đã ghi nhận.
// Growth so sánh tháng hiện tại với tháng liền trước.
func (s *ReportService) Revenue(ctx context.Context, now time.Time) (*RevenueReport, error) {
	payments, err := s.payments.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	buckets := reporting.MonthBuckets(payments,
		func(p models.Payment) time.Time {
			if p.PaidAt == 0 {
				return time.Time{}
			}
			return time.UnixMilli(p.PaidAt).UTC()
		},
		func(p models.Payment) float64 { return p.Amount },
	)

	var total float64
	for _, v := range buckets {
		total += v
	}

	return &RevenueReport{
		Months: buckets,
		Total:  total,
		Growth: reporting.MonthGrowth(buckets, now),
	}, nil
}

// ReturnsStatus đếm tờ khai theo trạng thái
func (s *ReportService) ReturnsStatus(ctx context.Context) (*StatusReport, error) {
	returns, err := s.returns.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	counts := map[string]int{
		models.ReturnStatusPending:    0,
		models.ReturnStatusInProgress: 0,
		models.ReturnStatusFilled:     0,
		models.ReturnStatusCompleted:  0,
	}
	for _, r := range returns {
		counts[r.Status]++
	}

	return &StatusReport{Total: len(returns), Counts: counts}, nil
}

// ClientsGrowth đếm khách hàng mới theo tháng tạo hồ sơ
func (s *ReportService) ClientsGrowth(ctx context.Context, now time.Time) (*ClientGrowthReport, error) {
	clients, err := s.clients.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	buckets := reporting.MonthBuckets(clients,
		func(c models.Client) time.Time {
			if c.CreatedAt == 0 {
				return time.Time{}
			}
			return time.UnixMilli(c.CreatedAt).UTC()
		},
		func(models.Client) float64 { return 1 },
	)

	return &ClientGrowthReport{
		Months: buckets,
		Total:  len(clients),
		Growth: reporting.MonthGrowth(buckets, now),
	}, nil
}

// RequestsSummary đếm yêu cầu hỗ trợ theo trạng thái và độ ưu tiên
func (s *ReportService) RequestsSummary(ctx context.Context) (*RequestSummaryReport, error) {
	requests, err := s.requests.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	byStatus := map[string]int{
		models.RequestStatusPending:    0,
		models.RequestStatusInProgress: 0,
		models.RequestStatusResolved:   0,
		models.RequestStatusRejected:   0,
	}
	byPriority := map[string]int{
		models.PriorityLow:    0,
		models.PriorityNormal: 0,
		models.PriorityUrgent: 0,
	}
	for _, r := range requests {
		byStatus[r.Status]++
		byPriority[r.Priority]++
	}

	return &RequestSummaryReport{
		Total:      len(requests),
		ByStatus:   byStatus,
		ByPriority: byPriority,
	}, nil
}

// InvoicesStatus đếm hóa đơn theo trạng thái kèm các tổng tiền
func (s *ReportService) InvoicesStatus(ctx context.Context) (*reporting.Summary, error) {
	invoices, err := s.invoices.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	adapter := reporting.Adapter[models.Invoice]{
		Amounts: map[string]func(models.Invoice) float64{
			"total":   func(i models.Invoice) float64 { return i.TotalAmount },
			"paid":    func(i models.Invoice) float64 { return i.PaidAmount },
			"pending": func(i models.Invoice) float64 { return i.TotalAmount - i.PaidAmount },
		},
		Status: func(i models.Invoice) string { return i.Status },
	}
	summary := reporting.Summarize(adapter, invoices)
	return &summary, nil
}
