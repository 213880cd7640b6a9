package comments

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/goamaan/site/internal/auth"
	"github.com/goamaan/site/internal/query"
	"github.com/goamaan/site/pkg/core"
)

// SetupRoutes configures routes for the comments feature.
func SetupRoutes(router chi.Router, client *query.Client, store core.Store, logger *slog.Logger) error {
	handlers := NewHandlers(client, store, logger)

	router.Get("/comments/{type}/{id}", handlers.ThreadSSE)
	router.Group(func(r chi.Router) {
		r.Use(auth.RequireUser)
		r.Post("/comments/{type}/{id}", handlers.CreateSSE)
		r.Post("/comments/{type}/{id}/{commentID}/delete", handlers.DeleteSSE)
	})

	return nil
}
