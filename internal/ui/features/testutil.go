// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/goamaan/site/internal/auth"
	"github.com/goamaan/site/internal/query"
	"github.com/goamaan/site/internal/state"
	"github.com/goamaan/site/internal/testutil"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/notifier"
	"github.com/goamaan/site/pkg/core"
)

// TestSite is the site configuration feature tests render with.
var TestSite = common.Site{Title: "Test Site", Author: "Test Author", Theme: "light"}

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Store        *state.SQLiteStore
	Client       *query.Client
	Auth         *auth.Provider
	SessionStore *sessions.CookieStore
	Notifier     *notifier.Notifier
	Site         common.Site
}

// SetupTestFixture creates a migrated in-memory store and everything the
// handlers are built from.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)
	store := testutil.NewTestStore(t)
	sessionStore := NewTestSessionStore()

	return &TestFixture{
		Store:        store,
		Client:       query.NewClient(store, logger),
		Auth:         auth.NewProvider(store, sessionStore, logger),
		SessionStore: sessionStore,
		Notifier:     notifier.New(),
		Site:         TestSite,
	}
}

// SignInCookies signs name in with testutil.TestPassword and returns the
// session cookies.
func (f *TestFixture) SignInCookies(t *testing.T, name string) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/auth/signin", nil)
	if _, err := f.Auth.SignIn(w, r, name, testutil.TestPassword); err != nil {
		t.Fatalf("sign in %s: %v", name, err)
	}
	return w.Result().Cookies()
}

// RequestWithPathParam wraps a request with chi URL params given as
// key, value pairs.
func RequestWithPathParam(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// RequestAs puts user on the request context the way auth.Middleware does.
func RequestAs(r *http.Request, user *core.User) *http.Request {
	return r.WithContext(auth.WithSession(r.Context(), user.Session()))
}

// NewTestSessionStore creates a session store for testing.
func NewTestSessionStore() *sessions.CookieStore {
	return sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))
}
