// Package testutil provides shared helpers for tests: a logger that writes
// through t.Log and a migrated in-memory store.
package testutil

import (
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
)

// NewTestLogger returns a debug-level logger that writes through t.Log.
// Lines logged after the test finishes, such as from a server goroutine
// still shutting down, are dropped since t.Log panics at that point.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	w := &testWriter{t: t}
	t.Cleanup(func() { w.done.Store(true) })
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type testWriter struct {
	t    testing.TB
	done atomic.Bool
}

func (w *testWriter) Write(p []byte) (int, error) {
	if !w.done.Load() {
		w.t.Log(strings.TrimSuffix(string(p), "\n"))
	}
	return len(p), nil
}
