package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// newListServer dựng server giả trả về envelope chuẩn cho endpoint danh sách
func newListServer(t *testing.T, handler func(r *http.Request) interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data := handler(r)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    200,
			"message": "Thành công",
			"data":    data,
			"status":  "success",
		})
	}))
}

func TestListFetcher_DoiLocResetVeTrang1(t *testing.T) {
	server := newListServer(t, func(r *http.Request) interface{} {
		return ListResult[testItem]{Items: []testItem{}, Page: 1, Limit: 10, TotalPages: 1}
	})
	defer server.Close()

	fetcher := NewListFetcher[testItem](NewClient(server.URL), "/invoices")
	fetcher.SetPage(5)
	assert.Equal(t, 5, fetcher.Query().Page)

	fetcher.SetSelector("status", "Paid")
	assert.Equal(t, 1, fetcher.Query().Page, "đổi selector phải reset về trang 1")

	fetcher.SetPage(3)
	fetcher.SetSearch("INV")
	assert.Equal(t, 1, fetcher.Query().Page, "đổi tìm kiếm phải reset về trang 1")

	fetcher.SetPage(3)
	fetcher.ToggleSort("dueDate")
	assert.Equal(t, 1, fetcher.Query().Page, "đổi sắp xếp phải reset về trang 1")
	assert.Equal(t, "asc", fetcher.Query().SortDir)

	fetcher.ToggleSort("dueDate")
	assert.Equal(t, "desc", fetcher.Query().SortDir, "bấm lại cùng cột phải đảo hướng")

	fetcher.ToggleSort("status")
	assert.Equal(t, "asc", fetcher.Query().SortDir, "chọn cột mới phải về tăng dần")

	fetcher.SetPage(4)
	fetcher.SetLimit(25)
	assert.Equal(t, 1, fetcher.Query().Page, "đổi số dòng mỗi trang phải reset về trang 1")
	assert.Equal(t, 25, fetcher.Query().Limit)
}

func TestListFetcher_QueryStringDayDu(t *testing.T) {
	var gotQuery map[string]string
	server := newListServer(t, func(r *http.Request) interface{} {
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		return ListResult[testItem]{Items: []testItem{}, Page: 1, Limit: 10, TotalPages: 1}
	})
	defer server.Close()

	fetcher := NewListFetcher[testItem](NewClient(server.URL), "/invoices")
	fetcher.SetSelector("status", "Pending")
	fetcher.SetSearch("acme")
	fetcher.SetDateRange("2026-01-01", "2026-03-31")
	fetcher.ToggleSort("totalAmount")

	_, applied, err := fetcher.RefreshSync(context.Background())
	require.NoError(t, err)
	require.True(t, applied)

	assert.Equal(t, "Pending", gotQuery["status"])
	assert.Equal(t, "acme", gotQuery["search"])
	assert.Equal(t, "2026-01-01", gotQuery["from"])
	assert.Equal(t, "2026-03-31", gotQuery["to"])
	assert.Equal(t, "totalAmount", gotQuery["sortBy"])
	assert.Equal(t, "asc", gotQuery["sortDir"])
	assert.Equal(t, "1", gotQuery["page"])
	assert.Equal(t, "10", gotQuery["limit"])
}

func TestListFetcher_GenerationBoKetQuaCu(t *testing.T) {
	server := newListServer(t, func(r *http.Request) interface{} {
		return ListResult[testItem]{
			Items: []testItem{{ID: "1", Name: r.URL.Query().Get("search")}},
			Page:  1, Limit: 10, TotalItems: 1, TotalPages: 1,
		}
	})
	defer server.Close()

	fetcher := NewListFetcher[testItem](NewClient(server.URL), "/clients")

	// Bắt đầu lần tải thứ nhất nhưng chưa gửi request
	fetcher.mu.Lock()
	fetcher.gen++
	staleGen := fetcher.gen
	fetcher.mu.Unlock()

	// Lần tải mới hơn hoàn thành trước
	fetcher.SetSearch("moi")
	result, applied, err := fetcher.RefreshSync(context.Background())
	require.NoError(t, err)
	require.True(t, applied)
	assert.Equal(t, "moi", result.Items[0].Name)

	// Lần tải cũ về muộn phải bị coi là stale
	fetcher.mu.Lock()
	stale := staleGen != fetcher.gen
	fetcher.mu.Unlock()
	assert.True(t, stale, "generation cũ phải bị bỏ qua")
}

func TestListFetcher_RefreshSyncTraKetQua(t *testing.T) {
	server := newListServer(t, func(r *http.Request) interface{} {
		return ListResult[testItem]{
			Items:      []testItem{{ID: "a", Name: "Alpha"}, {ID: "b", Name: "Beta"}},
			Page:       1,
			Limit:      10,
			TotalItems: 2,
			TotalPages: 1,
			Summary:    ListSummary{Count: 2, StatusCounts: map[string]int{"active": 2}},
		}
	})
	defer server.Close()

	fetcher := NewListFetcher[testItem](NewClient(server.URL), "/clients")
	result, applied, err := fetcher.RefreshSync(context.Background())
	require.NoError(t, err)
	require.True(t, applied)

	assert.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.TotalItems)
	assert.Equal(t, 2, result.Summary.Count)
	assert.Equal(t, 2, result.Summary.StatusCounts["active"])
}
