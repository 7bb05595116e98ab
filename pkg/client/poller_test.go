package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationPoller_LayBadgeVaThongBaoMoiNhat(t *testing.T) {
	var gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var data interface{}
		switch r.URL.Path {
		case "/api/v1/notifications/unread-count":
			data = map[string]int64{"count": 3}
		case "/api/v1/notifications/":
			gotLimit = r.URL.Query().Get("limit")
			data = notificationPage{Items: []Notification{
				{ID: "n2", Title: "Hóa đơn quá hạn", Read: false, CreatedAt: 200},
				{ID: "n1", Title: "Tờ khai đã nộp", Read: true, CreatedAt: 100},
			}}
		default:
			t.Errorf("đường dẫn không mong đợi: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200, "message": "Thành công", "data": data, "status": "success",
		})
	}))
	defer server.Close()

	poller := NewNotificationPoller(NewClient(server.URL), time.Hour)

	var gotCount int64
	var gotItems []Notification
	poller.OnCount = func(n int64) { gotCount = n }
	poller.OnNotifications = func(items []Notification) { gotItems = items }
	poller.OnError = func(err error) { t.Errorf("poll không được lỗi: %v", err) }

	poller.poll(context.Background())

	assert.Equal(t, int64(3), gotCount)
	require.Len(t, gotItems, 2)
	assert.Equal(t, "Hóa đơn quá hạn", gotItems[0].Title, "thông báo mới nhất phải đứng đầu")
	assert.Equal(t, "5", gotLimit, "mặc định lấy 5 thông báo mới nhất")
}

func TestNotificationPoller_KhongLayDanhSachKhiKhongAiNghe(t *testing.T) {
	listCalled := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/notifications/" {
			listCalled = true
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200, "message": "Thành công",
			"data": map[string]int64{"count": 0}, "status": "success",
		})
	}))
	defer server.Close()

	poller := NewNotificationPoller(NewClient(server.URL), time.Hour)
	poller.OnCount = func(int64) {}
	poller.poll(context.Background())

	assert.False(t, listCalled, "không có OnNotifications thì không gọi endpoint danh sách")
}

func TestClient_MarkNotificationRead_KhongChoKhongTraLoi(t *testing.T) {
	type call struct {
		method string
		path   string
	}
	calls := make(chan call, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls <- call{method: r.Method, path: r.URL.Path}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200, "message": "Thành công", "data": nil, "status": "success",
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	c.MarkNotificationRead("65f000000000000000000009")

	select {
	case got := <-calls:
		assert.Equal(t, http.MethodPut, got.method)
		assert.Equal(t, "/api/v1/notifications/65f000000000000000000009/read", got.path)
	case <-time.After(2 * time.Second):
		t.Fatal("request đánh dấu đã đọc không được gửi đi")
	}
}
