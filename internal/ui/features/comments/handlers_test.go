package comments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goamaan/site/internal/testutil"
	"github.com/goamaan/site/internal/ui/features"
	"github.com/goamaan/site/pkg/core"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func setupTestHandlers(t *testing.T) (*Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	handlers := NewHandlers(fixture.Client, fixture.Store, testutil.NewTestLogger(t))

	return handlers, fixture
}

func threadRequest(method string, key core.EntityKey, body string) *http.Request {
	target := "/comments/" + string(key.Type) + "/" + key.ID
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return features.RequestWithPathParam(req, "type", string(key.Type), "id", key.ID)
}

func deleteRequest(key core.EntityKey, commentID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/comments/"+string(key.Type)+"/"+key.ID+"/"+commentID+"/delete", nil)
	return features.RequestWithPathParam(req, "type", string(key.Type), "id", key.ID, "commentID", commentID)
}

var stackKey = core.EntityKey{ID: "entry-1", Type: core.EntityStack}

// =============================================================================
// ThreadSSE Tests - settles a deferred thread
// =============================================================================

func TestThreadSSE(t *testing.T) {
	tests := []struct {
		name     string
		key      core.EntityKey
		seed     bool
		wantBody []string
		notBody  []string
	}{
		{
			name: "populated thread in order",
			key:  stackKey,
			seed: true,
			wantBody: []string{
				"datastar-patch-elements",
				`id="comments-stack-entry-1"`,
				`data-state="populated"`,
				"first comment",
				"second comment",
				`class="comments-header"`,
			},
			notBody: []string{"data-init", "data-on:focus__window", "data-on:online__window", "No comments yet..."},
		},
		{
			name:     "empty thread",
			key:      core.EntityKey{ID: "nothing", Type: core.EntityPost},
			wantBody: []string{`data-state="empty"`, "No comments yet...", `class="comments-header"`},
			notBody:  []string{"comment-list"},
		},
		{
			name:     "unknown entity type",
			key:      core.EntityKey{ID: "x", Type: "video"},
			wantBody: []string{`data-state="error"`, "Error loading comments... invalid entity type"},
			notBody:  []string{"comments-header", "No comments yet..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, f := setupTestHandlers(t)
			if tt.seed {
				ada := testutil.CreateUser(t, f.Store, "ada", false)
				testutil.CreateComment(t, f.Store, tt.key, ada, "first comment")
				testutil.CreateComment(t, f.Store, tt.key, ada, "second comment")
			}

			rec := httptest.NewRecorder()
			h.ThreadSSE(rec, threadRequest(http.MethodGet, tt.key, ""))

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}
			for _, not := range tt.notBody {
				assert.NotContains(t, body, not)
			}
			if tt.seed {
				assert.Less(t, strings.Index(body, "first comment"), strings.Index(body, "second comment"))
			}
		})
	}
}

func TestThreadSSE_DeleteButtonVisibility(t *testing.T) {
	h, f := setupTestHandlers(t)
	ada := testutil.CreateUser(t, f.Store, "ada", false)
	grace := testutil.CreateUser(t, f.Store, "grace", false)
	admin := testutil.CreateUser(t, f.Store, "amaan", true)
	testutil.CreateComment(t, f.Store, stackKey, ada, "by ada")

	tests := []struct {
		name       string
		user       *core.User
		wantDelete bool
	}{
		{name: "anonymous", user: nil},
		{name: "other member", user: grace},
		{name: "author", user: ada, wantDelete: true},
		{name: "admin", user: admin, wantDelete: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := threadRequest(http.MethodGet, stackKey, "")
			if tt.user != nil {
				req = features.RequestAs(req, tt.user)
			}
			rec := httptest.NewRecorder()
			h.ThreadSSE(rec, req)

			body := rec.Body.String()
			if tt.wantDelete {
				assert.Contains(t, body, "comment-delete")
			} else {
				assert.NotContains(t, body, "comment-delete")
			}
			if tt.user != nil {
				assert.Contains(t, body, "comment-form", "signed in users get the form")
			} else {
				assert.NotContains(t, body, "comment-form")
			}
		})
	}
}

// =============================================================================
// CreateSSE Tests
// =============================================================================

func TestCreateSSE_RequiresUser(t *testing.T) {
	h, f := setupTestHandlers(t)

	rec := httptest.NewRecorder()
	h.CreateSSE(rec, threadRequest(http.MethodPost, stackKey, `{"commentText":"hi"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	comments, err := f.Store.ListCommentsForEntity(context.Background(), stackKey)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCreateSSE(t *testing.T) {
	tests := []struct {
		name      string
		key       core.EntityKey
		body      string
		wantBody  []string
		wantSaved int
	}{
		{
			name:      "creates and clears the signal",
			key:       stackKey,
			body:      `{"commentText":"  nice stack  "}`,
			wantBody:  []string{"datastar-patch-elements", "nice stack", "datastar-patch-signals", `"commentText":""`},
			wantSaved: 1,
		},
		{
			name:     "blank text",
			key:      stackKey,
			body:     `{"commentText":"   "}`,
			wantBody: []string{`id="comments-stack-entry-1-error"`, "Comment cannot be empty"},
		},
		{
			name:     "invalid thread",
			key:      core.EntityKey{ID: "x", Type: "video"},
			body:     `{"commentText":"hello"}`,
			wantBody: []string{"This thread does not accept comments"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, f := setupTestHandlers(t)
			ada := testutil.CreateUser(t, f.Store, "ada", false)

			rec := httptest.NewRecorder()
			h.CreateSSE(rec, features.RequestAs(threadRequest(http.MethodPost, tt.key, tt.body), ada))

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}

			if tt.key.Validate() != nil {
				return
			}
			comments, err := f.Store.ListCommentsForEntity(context.Background(), tt.key)
			require.NoError(t, err)
			require.Len(t, comments, tt.wantSaved)
			if tt.wantSaved > 0 {
				assert.Equal(t, "nice stack", comments[0].Text)
				assert.Equal(t, ada.ID, comments[0].Author.ID)
			}
		})
	}
}

// =============================================================================
// DeleteSSE Tests
// =============================================================================

func TestDeleteSSE(t *testing.T) {
	tests := []struct {
		name       string
		as         string
		otherKey   bool
		missing    bool
		wantStatus int
		wantGone   bool
	}{
		{name: "anonymous", as: "", wantStatus: http.StatusUnauthorized},
		{name: "other member", as: "grace", wantStatus: http.StatusForbidden},
		{name: "author", as: "ada", wantStatus: http.StatusOK, wantGone: true},
		{name: "admin", as: "amaan", wantStatus: http.StatusOK, wantGone: true},
		{name: "wrong thread", as: "ada", otherKey: true, wantStatus: http.StatusNotFound},
		{name: "missing comment", as: "ada", missing: true, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, f := setupTestHandlers(t)
			users := map[string]*core.User{
				"ada":   testutil.CreateUser(t, f.Store, "ada", false),
				"grace": testutil.CreateUser(t, f.Store, "grace", false),
				"amaan": testutil.CreateUser(t, f.Store, "amaan", true),
			}
			c := testutil.CreateComment(t, f.Store, stackKey, users["ada"], "delete me")

			key := stackKey
			if tt.otherKey {
				key = core.EntityKey{ID: "entry-2", Type: core.EntityStack}
			}
			id := c.ID
			if tt.missing {
				id = "does-not-exist"
			}

			req := deleteRequest(key, id)
			if u := users[tt.as]; u != nil {
				req = features.RequestAs(req, u)
			}
			rec := httptest.NewRecorder()
			h.DeleteSSE(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			_, err := f.Store.GetComment(context.Background(), c.ID)
			if tt.wantGone {
				assert.ErrorIs(t, err, core.ErrNotFound)
				assert.Contains(t, rec.Body.String(), "No comments yet...")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
