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

func TestClient_Do_GuiBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": 200, "message": "Thành công", "data": nil, "status": "success",
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	require.NoError(t, c.Session.SaveToken("abc123"))

	err := c.Do(context.Background(), http.MethodGet, "/clients", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc123", gotAuth)
}

func TestClient_Do_LoiServerThanhAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    "BIZ_001",
			"message": "Không thể chuyển hóa đơn từ Paid sang Pending",
			"status":  "error",
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	err := c.Do(context.Background(), http.MethodPut, "/invoices/x/status", nil, map[string]string{"status": "Pending"}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "BIZ_001", apiErr.Code)
}

func TestClient_Do_401XoaPhienVaGoiHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code": "AUTH_002", "message": "Token đã hết hạn", "status": "error",
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	require.NoError(t, c.Session.SaveToken("het-han"))

	hookCalled := false
	c.OnUnauthorized = func() { hookCalled = true }

	err := c.Do(context.Background(), http.MethodGet, "/notifications", nil, nil, nil)
	require.Error(t, err)

	assert.True(t, hookCalled, "401 phải gọi OnUnauthorized để app chuyển về màn hình đăng nhập")
	assert.Empty(t, c.Session.Token(), "401 phải xóa token khỏi session")
}

func TestClient_Login_LuuTokenVaNguoiDung(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"code":    200,
			"message": "Thành công",
			"data": map[string]string{
				"token": "jwt-moi",
				"id":    "65f000000000000000000001",
				"name":  "Nguyễn Văn A",
				"email": "a@b.vn",
				"role":  "staff",
			},
			"status": "success",
		})
	}))
	defer server.Close()

	c := NewClient(server.URL)
	err := c.Login(context.Background(), "a@b.vn", "matkhau", "staff", "hwid-1")
	require.NoError(t, err)

	assert.Equal(t, "jwt-moi", c.Session.Token())
	assert.Equal(t, "staff", c.Session.Role())
	user := c.Session.User()
	assert.Equal(t, "Nguyễn Văn A", user.Name)
	assert.Equal(t, "a@b.vn", user.Email)
}
