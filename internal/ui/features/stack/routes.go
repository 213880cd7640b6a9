package stack

import (
	"github.com/go-chi/chi/v5"
	"github.com/goamaan/site/internal/query"
	"github.com/goamaan/site/internal/ui/features/common"
)

// SetupRoutes configures routes for the stack feature.
func SetupRoutes(router chi.Router, client *query.Client, site common.Site) error {
	handlers := NewHandlers(client, site)

	router.Get("/stack", handlers.StackPage)
	router.Get("/stack/{slug}", handlers.StackDetailPage)

	return nil
}
