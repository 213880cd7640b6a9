package home

import (
	"github.com/go-chi/chi/v5"
	"github.com/goamaan/site/internal/ui/features/common"
)

// SetupRoutes configures routes for the home feature.
func SetupRoutes(router chi.Router, site common.Site) error {
	handlers := NewHandlers(site)

	router.Get("/", handlers.HomePage)

	return nil
}
