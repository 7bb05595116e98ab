// Package client - SDK Go cho API của server, dùng cho tool nội bộ và test tích hợp.
package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// SessionUser thông tin người dùng của phiên đăng nhập hiện tại
type SessionUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	ClientRef string `json:"clientRef,omitempty"`
}

// SessionStore lưu phiên đăng nhập của SDK: token, người dùng và vai trò.
// MemorySessionStore giữ trong bộ nhớ; FileSessionStore ghi xuống đĩa
// để phiên sống qua các lần chạy ứng dụng.
type SessionStore interface {
	SaveToken(token string) error
	Token() string
	SaveUser(user SessionUser) error
	User() SessionUser
	Role() string
	Clear() error
}

// MemorySessionStore giữ phiên trong bộ nhớ, an toàn khi dùng từ nhiều goroutine
type MemorySessionStore struct {
	mu    sync.RWMutex
	token string
	user  SessionUser
}

// NewMemorySessionStore tạo store trong bộ nhớ
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

// SaveToken lưu token mới
func (s *MemorySessionStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Token trả về token hiện tại, rỗng nếu chưa đăng nhập
func (s *MemorySessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SaveUser lưu thông tin người dùng của phiên
func (s *MemorySessionStore) SaveUser(user SessionUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	return nil
}

// User trả về người dùng của phiên hiện tại
func (s *MemorySessionStore) User() SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Role trả về vai trò của phiên, rỗng nếu chưa đăng nhập
func (s *MemorySessionStore) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Role
}

// Clear xóa phiên, dùng khi đăng xuất hoặc bị server từ chối
func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = SessionUser{}
	return nil
}

// sessionFile format JSON của phiên trên đĩa
type sessionFile struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// FileSessionStore lưu phiên vào một file JSON trên đĩa.
// Ghi theo kiểu file tạm + rename để không bao giờ để lại file hỏng dở.
type FileSessionStore struct {
	mu   sync.RWMutex
	path string
	data sessionFile
}

// NewFileSessionStore tạo store đọc/ghi phiên tại path.
// File chưa tồn tại được coi là phiên rỗng, không phải lỗi.
func NewFileSessionStore(path string) (*FileSessionStore, error) {
	s := &FileSessionStore{path: path}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		return nil, err
	}
	return s, nil
}

// persist ghi phiên hiện tại xuống đĩa, caller phải đang giữ lock
func (s *FileSessionStore) persist() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// SaveToken lưu token mới và ghi xuống đĩa
func (s *FileSessionStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Token = token
	return s.persist()
}

// Token trả về token hiện tại, rỗng nếu chưa đăng nhập
func (s *FileSessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Token
}

// SaveUser lưu thông tin người dùng của phiên và ghi xuống đĩa
func (s *FileSessionStore) SaveUser(user SessionUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.User = user
	return s.persist()
}

// User trả về người dùng của phiên hiện tại
func (s *FileSessionStore) User() SessionUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.User
}

// Role trả về vai trò của phiên, rỗng nếu chưa đăng nhập
func (s *FileSessionStore) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.User.Role
}

// Clear xóa phiên cả trong bộ nhớ lẫn trên đĩa
func (s *FileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = sessionFile{}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
