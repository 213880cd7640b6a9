package home

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goamaan/site/internal/testutil"
	"github.com/goamaan/site/internal/ui/features"
)

// =============================================================================
// HomePage Tests - Full HTML page responses with server-rendered content
// =============================================================================

func TestHomePage(t *testing.T) {
	tests := []struct {
		name     string
		signedIn string
		admin    bool
		wantBody []string
		notBody  []string
	}{
		{
			name: "anonymous visitor",
			wantBody: []string{
				"<!doctype html>",
				"<title>Test Site</title>",
				`id="home"`,
				`<a href="/" class="nav-link active" aria-current="page">`,
				`action="/auth/signin"`,
			},
			notBody: []string{"Logged in as", "Add a bookmark", "list-pane"},
		},
		{
			name:     "member",
			signedIn: "grace",
			wantBody: []string{"Logged in as", "grace"},
			notBody:  []string{`action="/auth/signin"`, "Add a bookmark"},
		},
		{
			name:     "admin",
			signedIn: "amaan",
			admin:    true,
			wantBody: []string{"Logged in as", "Add a bookmark"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := features.SetupTestFixture(t)
			h := NewHandlers(f.Site)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.signedIn != "" {
				req = features.RequestAs(req, testutil.CreateUser(t, f.Store, tt.signedIn, tt.admin))
			}
			rec := httptest.NewRecorder()
			h.HomePage(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want, "response should contain %q", want)
			}
			for _, not := range tt.notBody {
				assert.NotContains(t, body, not)
			}
		})
	}
}
