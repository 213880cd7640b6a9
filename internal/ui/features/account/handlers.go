// Package account handles signing in and out and the profile page.
package account

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/goamaan/site/internal/auth"
	"github.com/goamaan/site/internal/ui/features/account/pages"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/pkg/core"
)

// Handlers provides HTTP handlers for the account feature.
type Handlers struct {
	auth   *auth.Provider
	site   common.Site
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(provider *auth.Provider, site common.Site, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handlers{auth: provider, site: site, logger: logger}
}

// SignIn checks the posted credentials and returns to the page the form
// was on. A failure reopens the dialog there.
func (h *Handlers) SignIn(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	redirect := safeRedirect(r.PostForm.Get("redirect"))

	_, err := h.auth.SignIn(w, r, r.PostForm.Get("name"), r.PostForm.Get("password"))
	if errors.Is(err, core.ErrInvalidCredentials) {
		h.logger.Debug("sign in failed", slog.String("name", r.PostForm.Get("name")))
		http.Redirect(w, r, withParam(redirect, common.SignInParam, common.SignInFailed), http.StatusSeeOther)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// SignOut clears the session and goes home.
func (h *Handlers) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.SignOut(w, r); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Profile shows the signed-in user, or sends visitors home.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	pc := h.site.Page(r, "Profile")
	if pc.User == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	common.NoStore(w)
	if err := pages.ProfilePage(pc).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// safeRedirect only allows local absolute paths.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	u, err := url.Parse(target)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/"
	}
	return u.RequestURI()
}

func withParam(target, key, value string) string {
	u, err := url.Parse(target)
	if err != nil {
		return "/"
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.RequestURI()
}
