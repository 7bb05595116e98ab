package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore_LuuVaXoaPhien(t *testing.T) {
	store := NewMemorySessionStore()

	require.NoError(t, store.SaveToken("jwt-abc"))
	require.NoError(t, store.SaveUser(SessionUser{Name: "Trần Thị B", Email: "b@beta.vn", Role: "client"}))

	assert.Equal(t, "jwt-abc", store.Token())
	assert.Equal(t, "client", store.Role())
	assert.Equal(t, "Trần Thị B", store.User().Name)

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())
	assert.Empty(t, store.Role())
	assert.Empty(t, store.User().Email, "Clear phải xóa cả thông tin người dùng")
}

func TestFileSessionStore_PhienSongQuaLanMoLai(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileSessionStore(path)
	require.NoError(t, err)
	assert.Empty(t, store.Token(), "file chưa tồn tại phải là phiên rỗng")

	require.NoError(t, store.SaveToken("jwt-tren-dia"))
	require.NoError(t, store.SaveUser(SessionUser{ID: "65f000000000000000000002", Name: "Nguyễn Văn A", Role: "staff"}))

	// Mở lại từ cùng file như một lần chạy ứng dụng mới
	reopened, err := NewFileSessionStore(path)
	require.NoError(t, err)
	assert.Equal(t, "jwt-tren-dia", reopened.Token())
	assert.Equal(t, "staff", reopened.Role())
	assert.Equal(t, "Nguyễn Văn A", reopened.User().Name)
}

func TestFileSessionStore_ClearXoaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileSessionStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveToken("jwt-tam"))

	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "Clear phải xóa file phiên trên đĩa")

	// Clear lần nữa khi file đã mất không được coi là lỗi
	require.NoError(t, store.Clear())
}

func TestFileSessionStore_DungLamSessionCuaClient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	store, err := NewFileSessionStore(path)
	require.NoError(t, err)

	c := NewClient("http://localhost:0")
	c.Session = store
	require.NoError(t, c.Session.SaveToken("jwt-qua-interface"))

	reopened, err := NewFileSessionStore(path)
	require.NoError(t, err)
	assert.Equal(t, "jwt-qua-interface", reopened.Token())
}
