// Package home provides the home page feature.
package home

import (
	"net/http"

	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/features/home/pages"
)

// Handlers provides HTTP handlers for the home feature.
type Handlers struct {
	site common.Site
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(site common.Site) *Handlers {
	return &Handlers{site: site}
}

// HomePage renders the home page. It is never cached.
func (h *Handlers) HomePage(w http.ResponseWriter, r *http.Request) {
	common.NoStore(w)
	if err := pages.HomePage(h.site.Page(r, "")).Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
