package account

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/goamaan/site/internal/auth"
	"github.com/goamaan/site/internal/ui/features/common"
)

// SetupRoutes configures routes for the account feature.
func SetupRoutes(router chi.Router, provider *auth.Provider, site common.Site, logger *slog.Logger) error {
	handlers := NewHandlers(provider, site, logger)

	router.Post("/auth/signin", handlers.SignIn)
	router.Post("/auth/signout", handlers.SignOut)
	router.Get("/profile", handlers.Profile)

	return nil
}
