// Package common provides shared types and utilities for UI features.
package common

import (
	"net/http"

	"github.com/goamaan/site/internal/auth"
	"github.com/goamaan/site/pkg/core"
)

// Site is the per-server page configuration every feature renders with.
type Site struct {
	Title  string
	Author string
	// Theme is the initial theme: light, dark or system.
	Theme string
	IsDev bool
}

// PageContext is everything the page shell needs for one request.
// It is built once in the handler and passed down explicitly.
type PageContext struct {
	Site
	PageTitle string
	Path      string
	User      *core.UserSession
	// SignInFailed opens the sign-in dialog with an error.
	SignInFailed bool
}

// Page builds the PageContext for r. The session comes from the auth
// middleware.
func (s Site) Page(r *http.Request, title string) PageContext {
	return PageContext{
		Site:         s,
		PageTitle:    title,
		Path:         r.URL.Path,
		User:         auth.FromContext(r.Context()),
		SignInFailed: r.URL.Query().Get(SignInParam) == SignInFailed,
	}
}

// FullTitle is the document title.
func (pc PageContext) FullTitle() string {
	switch {
	case pc.PageTitle == "":
		return pc.Title
	case pc.Title == "":
		return pc.PageTitle
	default:
		return pc.PageTitle + " - " + pc.Title
	}
}

// Query parameter set when a sign in attempt fails.
const (
	SignInParam  = "signin"
	SignInFailed = "failed"
)
