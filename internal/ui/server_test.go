package ui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goamaan/site/internal/testutil"
	"github.com/goamaan/site/internal/ui/features/common"
)

const testContent = `
stack:
  - slug: go
    name: Go
  - slug: chi
    name: chi
`

func newTestServer(t *testing.T, contentFile string, dev bool) *Server {
	t.Helper()
	return NewServer(Config{
		Store:         testutil.NewTestStore(t),
		Addr:          "127.0.0.1:0",
		SessionSecret: "test-secret-key-32-bytes-long!!",
		Dev:           dev,
		Watch:         true,
		ContentFile:   contentFile,
		Site:          common.Site{Title: "Test", Author: "Tester"},
		Logger:        testutil.NewTestLogger(t),
	})
}

func TestServer_Handler(t *testing.T) {
	s := newTestServer(t, "", false)
	assert.False(t, s.watch, "watching needs a content file")

	h, err := s.Handler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dev-reload")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reload", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_DevMode(t *testing.T) {
	s := newTestServer(t, "", true)

	h, err := s.Handler()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), `id="dev-reload"`)
}

func TestServer_ReloadContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testContent), 0o600))

	s := newTestServer(t, path, true)
	events := s.Notifier().Subscribe()
	defer s.Notifier().Unsubscribe(events)

	require.NoError(t, s.reloadContent(context.Background()))

	entries, err := s.store.ListStackEntries(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	select {
	case e := <-events:
		assert.Equal(t, path, e.File)
	case <-time.After(time.Second):
		t.Fatal("no reload event")
	}
}

func TestServer_ReloadContentInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stack: ["), 0o600))

	s := newTestServer(t, path, true)
	events := s.Notifier().Subscribe()
	defer s.Notifier().Unsubscribe(events)

	require.Error(t, s.reloadContent(context.Background()))
	select {
	case <-events:
		t.Fatal("invalid content must not trigger a reload")
	default:
	}
}

func TestServer_WatchContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stack: []\n"), 0o600))

	s := newTestServer(t, path, true)
	events := s.Notifier().Subscribe()
	defer s.Notifier().Unsubscribe(events)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.watchContent(ctx) }()

	// fsnotify needs the watch registered before the write lands
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(testContent), 0o600))

	select {
	case <-events:
	case <-time.After(3 * time.Second):
		t.Fatal("content change was not picked up")
	}

	cancel()
	require.NoError(t, <-done)
}
