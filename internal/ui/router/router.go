// Package router sets up HTTP routes for the site server.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goamaan/site/internal/auth"
	"github.com/goamaan/site/internal/query"
	accountFeature "github.com/goamaan/site/internal/ui/features/account"
	commentsFeature "github.com/goamaan/site/internal/ui/features/comments"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/features/common/pages"
	homeFeature "github.com/goamaan/site/internal/ui/features/home"
	stackFeature "github.com/goamaan/site/internal/ui/features/stack"
	"github.com/goamaan/site/internal/ui/notifier"
	"github.com/goamaan/site/internal/ui/resources"
	"github.com/goamaan/site/pkg/core"
	"github.com/starfederation/datastar-go/datastar"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Store    core.Store
	Client   *query.Client
	Auth     *auth.Provider
	Notifier *notifier.Notifier
	Site     common.Site
	Logger   *slog.Logger
}

// SetupRoutes configures all routes for the site server.
func SetupRoutes(router chi.Router, deps Deps) error {
	router.Use(deps.Auth.Middleware)

	// Hot reload endpoint for dev mode
	if deps.Site.IsDev {
		setupReload(router, deps.Notifier, deps.Logger)
	}

	// Static assets
	router.Handle("/static/*", resources.Handler())

	// Feature routes
	if err := homeFeature.SetupRoutes(router, deps.Site); err != nil {
		return err
	}

	if err := stackFeature.SetupRoutes(router, deps.Client, deps.Site); err != nil {
		return err
	}

	if err := commentsFeature.SetupRoutes(router, deps.Client, deps.Store, deps.Logger); err != nil {
		return err
	}

	if err := accountFeature.SetupRoutes(router, deps.Auth, deps.Site, deps.Logger); err != nil {
		return err
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = pages.NotFoundPage(deps.Site.Page(r, "Not found")).Render(r.Context(), w)
	})

	return nil
}

// setupReload serves the stream every dev page holds open. A content
// change reloads the tab.
func setupReload(router chi.Router, notify *notifier.Notifier, logger *slog.Logger) {
	router.Get("/reload", func(w http.ResponseWriter, r *http.Request) {
		events := notify.Subscribe()
		defer notify.Unsubscribe(events)

		sse := datastar.NewSSE(w, r)
		select {
		case e := <-events:
			logger.Debug("reloading browser", slog.String("file", e.File))
			_ = sse.ExecuteScript("window.location.reload()")
		case <-r.Context().Done():
		}
	})
}
