package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoverStore(t *testing.T) (*LocalCoverStore, string) {
	t.Helper()
	dir := t.TempDir()
	return NewLocalCoverStore(dir, nil), dir
}

func TestLocalCoverStore_PersistLocalFile(t *testing.T) {
	store, dir := newTestCoverStore(t)

	src := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(src, []byte("jpeg bytes"), 0o644))

	dest, err := store.Persist(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(dest))
	assert.Equal(t, ".jpg", filepath.Ext(dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)
}

func TestLocalCoverStore_PersistURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote image"))
	}))
	defer srv.Close()

	store, _ := newTestCoverStore(t)
	dest, err := store.Persist(context.Background(), srv.URL+"/cover.png")
	require.NoError(t, err)
	assert.Equal(t, ".png", filepath.Ext(dest))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote image"), data)
}

func TestLocalCoverStore_PersistEmptyRef(t *testing.T) {
	store, _ := newTestCoverStore(t)
	dest, err := store.Persist(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, dest)
}

func TestLocalCoverStore_PersistMissingFile(t *testing.T) {
	store, _ := newTestCoverStore(t)
	_, err := store.Persist(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	assert.Error(t, err)
}
