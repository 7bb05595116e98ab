package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// APIError là lỗi có cấu trúc từ server
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// envelope là format response chuẩn của server
type envelope struct {
	Code    json.RawMessage `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Status  string          `json:"status"`
}

// Client gọi API server với token phiên từ SessionStore.
// OnUnauthorized được gọi khi server trả 401 (token hết hạn hoặc bị thu hồi)
// để ứng dụng chuyển về màn hình đăng nhập.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	Session        SessionStore
	OnUnauthorized func()
}

// NewClient tạo client mới với session store trong bộ nhớ
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Session:    NewMemorySessionStore(),
	}
}

// Do gửi request và decode phần data của envelope vào out (nil nếu không cần).
// Query nil nghĩa là không có query string.
func (c *Client) Do(ctx context.Context, method string, path string, query url.Values, body interface{}, out interface{}) error {
	endpoint := c.BaseURL + "/api/v1" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Phiên hết hiệu lực: xóa token và báo cho ứng dụng đăng xuất
		_ = c.Session.Clear()
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
	}

	if env.Status != "success" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       strings.Trim(string(env.Code), `"`),
			Message:    env.Message,
		}
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// Get decode kết quả GET vào kiểu T
func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodGet, path, query, nil, &out)
	return out, err
}

// Post decode kết quả POST vào kiểu T
func Post[T any](ctx context.Context, c *Client, path string, body interface{}) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodPost, path, nil, body, &out)
	return out, err
}

// Put decode kết quả PUT vào kiểu T
func Put[T any](ctx context.Context, c *Client, path string, body interface{}) (T, error) {
	var out T
	err := c.Do(ctx, http.MethodPut, path, nil, body, &out)
	return out, err
}

// loginResponse phần dữ liệu server trả về sau đăng nhập:
// token kèm hồ sơ người dùng đã được lọc trường nhạy cảm
type loginResponse struct {
	Token     string `json:"token"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ClientRef string `json:"clientRef"`
}

// Login đăng nhập theo cổng vai trò, lưu token và thông tin
// người dùng (tên, email, vai trò) vào session
func (c *Client) Login(ctx context.Context, email string, password string, role string, hwid string) error {
	resp, err := Post[loginResponse](ctx, c, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
		"hwid":     hwid,
	})
	if err != nil {
		return err
	}
	if err := c.Session.SaveToken(resp.Token); err != nil {
		return err
	}
	return c.Session.SaveUser(SessionUser{
		ID:        resp.ID,
		Name:      resp.Name,
		Email:     resp.Email,
		Role:      resp.Role,
		ClientRef: resp.ClientRef,
	})
}

// Logout thu hồi token của thiết bị và xóa phiên cục bộ
func (c *Client) Logout(ctx context.Context, hwid string) error {
	err := c.Do(ctx, http.MethodPost, "/auth/logout", nil, map[string]string{"hwid": hwid}, nil)
	_ = c.Session.Clear()
	return err
}
