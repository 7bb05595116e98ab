package client

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// unreadCountResponse phần dữ liệu của endpoint unread-count
type unreadCountResponse struct {
	Count int64 `json:"count"`
}

// Notification bản ghi thông báo phía SDK.
// ReferenceType/ReferenceID trỏ về bản ghi nguồn để ứng dụng điều hướng.
type Notification struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Message       string `json:"message"`
	ReferenceType string `json:"referenceType"`
	ReferenceID   string `json:"referenceId"`
	Read          bool   `json:"read"`
	CreatedAt     int64  `json:"createdAt"`
}

// notificationPage trang thông báo server trả về, chỉ cần phần items
type notificationPage struct {
	Items []Notification `json:"items"`
}

// MarkNotificationRead đánh dấu một thông báo là đã đọc trong goroutine riêng.
// Gọi từ UI khi người dùng bấm vào thông báo: không chờ, không trả lỗi,
// thất bại chỉ ghi log vì lần poll sau sẽ đồng bộ lại trạng thái.
func (c *Client) MarkNotificationRead(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.Do(ctx, http.MethodPut, "/notifications/"+id+"/read", nil, nil, nil); err != nil {
			log.Printf("client: đánh dấu đã đọc thông báo %s thất bại: %v", id, err)
		}
	}()
}

// NotificationPoller hỏi server số thông báo chưa đọc và các thông báo
// mới nhất theo chu kỳ, dùng cho badge + dropdown thông báo trên giao diện.
// Dừng bằng Stop hoặc hủy context.
type NotificationPoller struct {
	client   *Client
	interval time.Duration
	recent   int

	// OnCount được gọi mỗi lần poll thành công
	OnCount func(int64)
	// OnNotifications được gọi với các thông báo mới nhất, mới nhất trước
	OnNotifications func([]Notification)
	// OnError được gọi khi một lần poll thất bại; poller vẫn chạy tiếp
	OnError func(error)

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewNotificationPoller tạo poller với chu kỳ cho trước (mặc định 30s),
// mỗi lần poll lấy thêm 5 thông báo mới nhất cho dropdown
func NewNotificationPoller(c *Client, interval time.Duration) *NotificationPoller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &NotificationPoller{
		client:   c,
		interval: interval,
		recent:   5,
	}
}

// SetRecentLimit đổi số thông báo mới nhất lấy mỗi lần poll, gọi trước Start
func (p *NotificationPoller) SetRecentLimit(n int) {
	if n > 0 {
		p.recent = n
	}
}

// Start chạy poller trong goroutine riêng, poll một lần ngay khi khởi động
func (p *NotificationPoller) Start(ctx context.Context) {
	p.startOnce.Do(func() {
		pollCtx, cancel := context.WithCancel(ctx)
		p.cancel = cancel

		p.wg.Add(1)
		go p.run(pollCtx)
	})
}

// Stop dừng poller và chờ goroutine kết thúc
func (p *NotificationPoller) Stop() {
	p.stopOnce.Do(func() {
		if p.cancel != nil {
			p.cancel()
		}
		p.wg.Wait()
	})
}

func (p *NotificationPoller) run(ctx context.Context) {
	defer p.wg.Done()

	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *NotificationPoller) poll(ctx context.Context) {
	var count unreadCountResponse
	err := p.client.Do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &count)
	if err != nil {
		p.reportError(ctx, err)
		return
	}
	if p.OnCount != nil {
		p.OnCount(count.Count)
	}

	if p.OnNotifications == nil {
		return
	}
	query := url.Values{}
	query.Set("page", "1")
	query.Set("limit", strconv.Itoa(p.recent))
	var page notificationPage
	if err := p.client.Do(ctx, http.MethodGet, "/notifications/", query, nil, &page); err != nil {
		p.reportError(ctx, err)
		return
	}
	p.OnNotifications(page.Items)
}

func (p *NotificationPoller) reportError(ctx context.Context, err error) {
	if p.OnError != nil && ctx.Err() == nil {
		p.OnError(err)
	}
}
