// Package stack serves the tech stack list and entry pages.
package stack

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goamaan/site/internal/query"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/features/common/pages"
	stackpages "github.com/goamaan/site/internal/ui/features/stack/pages"
	"github.com/goamaan/site/pkg/core"
)

// Handlers provides HTTP handlers for the stack feature.
type Handlers struct {
	client *query.Client
	site   common.Site
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(client *query.Client, site common.Site) *Handlers {
	return &Handlers{client: client, site: site}
}

// StackPage renders the stack list, fetched on the server.
func (h *Handlers) StackPage(w http.ResponseWriter, r *http.Request) {
	pc := h.site.Page(r, "Stack")
	entries := h.client.StackEntries(r.Context())

	if err := stackpages.StackPage(pc, entries).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// StackDetailPage renders the list with one entry and its comments.
func (h *Handlers) StackDetailPage(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	entry := h.client.StackEntry(r.Context(), slug)
	if entry.IsError {
		if errors.Is(entry.Err, core.ErrNotFound) {
			pc := h.site.Page(r, "Not found")
			w.WriteHeader(http.StatusNotFound)
			_ = pages.NotFoundPage(pc).Render(r.Context(), w)
			return
		}
		http.Error(w, entry.Err.Error(), common.StatusFor(entry.Err))
		return
	}

	pc := h.site.Page(r, entry.Data.Name)
	entries := h.client.StackEntries(r.Context())
	if err := stackpages.StackDetailPage(pc, entries, entry.Data).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
