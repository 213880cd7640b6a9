// Package ui serves the personal site.
package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/goamaan/site/internal/auth"
	"github.com/goamaan/site/internal/query"
	"github.com/goamaan/site/internal/state"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/notifier"
	"github.com/goamaan/site/internal/ui/router"
	"github.com/goamaan/site/pkg/core"
	"golang.org/x/sync/errgroup"
)

// reloadDebounce collapses the burst of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

// Server is the site HTTP server.
type Server struct {
	store       core.Store
	client      *query.Client
	auth        *auth.Provider
	notifier    *notifier.Notifier
	site        common.Site
	addr        string
	readTimeout time.Duration
	watch       bool
	contentFile string
	logger      *slog.Logger
}

// Config holds configuration for the server.
type Config struct {
	Store             core.Store
	Addr              string
	ReadHeaderTimeout time.Duration
	QueryTimeout      time.Duration
	SessionSecret     string
	SecureCookies     bool
	Dev               bool
	Watch             bool
	ContentFile       string
	Site              common.Site
	Logger            *slog.Logger
}

// NewServer creates a new server instance.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	client := query.NewClient(cfg.Store, logger)
	if cfg.QueryTimeout > 0 {
		client = client.WithTimeout(cfg.QueryTimeout)
	}

	site := cfg.Site
	site.IsDev = cfg.Dev

	readTimeout := cfg.ReadHeaderTimeout
	if readTimeout <= 0 {
		readTimeout = 10 * time.Second
	}

	return &Server{
		store:       cfg.Store,
		client:      client,
		auth:        auth.NewProvider(cfg.Store, auth.NewCookieStore([]byte(cfg.SessionSecret), cfg.SecureCookies), logger),
		notifier:    notifier.New(),
		site:        site,
		addr:        cfg.Addr,
		readTimeout: readTimeout,
		watch:       cfg.Watch && cfg.ContentFile != "",
		contentFile: cfg.ContentFile,
		logger:      logger,
	}
}

// Handler builds the routed handler.
func (s *Server) Handler() (http.Handler, error) {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Compress(5),
	)
	if s.site.IsDev {
		r.Use(middleware.Logger)
	}

	err := router.SetupRoutes(r, router.Deps{
		Store:    s.store,
		Client:   s.client,
		Auth:     s.auth,
		Notifier: s.notifier,
		Site:     s.site,
		Logger:   s.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to setup routes: %w", err)
	}
	return r, nil
}

// Serve starts the server and blocks until ctx is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: handler,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: s.readTimeout,
	}

	if s.watch {
		eg.Go(func() error {
			return s.watchContent(egctx)
		})
	}

	eg.Go(func() error {
		s.logger.Info("starting server", "addr", s.addr, "dev", s.site.IsDev)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Notifier returns the notifier dev pages listen on.
func (s *Server) Notifier() *notifier.Notifier {
	return s.notifier
}

// watchContent reseeds the store whenever the content file changes.
// The directory is watched rather than the file so editors that save
// by rename keep being seen.
func (s *Server) watchContent(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	dir := filepath.Dir(s.contentFile)
	if err := watcher.Add(dir); err != nil {
		s.logger.Error("failed to watch content directory", "dir", dir, "error", err)
		<-ctx.Done()
		return nil
	}

	target := filepath.Clean(s.contentFile)
	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, func() {
				if err := s.reloadContent(ctx); err != nil {
					s.logger.Error("content reload failed", "file", target, "error", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// reloadContent reseeds from the content file and tells open dev pages
// to reload. A file that fails validation leaves the store untouched.
func (s *Server) reloadContent(ctx context.Context) error {
	content, err := state.LoadContent(s.contentFile)
	if err != nil {
		return err
	}
	res, err := state.Seed(ctx, s.store, content, s.logger)
	if err != nil {
		return err
	}
	s.logger.Info("content reloaded",
		"file", s.contentFile,
		"stack", res.StackEntries,
		"comments", res.Comments)
	s.notifier.Broadcast(notifier.Event{File: s.contentFile})
	return nil
}
