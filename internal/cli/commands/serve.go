package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goamaan/site/internal/cli/config"
	"github.com/goamaan/site/internal/state"
	"github.com/goamaan/site/internal/ui"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/spf13/cobra"
)

// devSessionSecret signs cookies in dev mode when no secret is configured.
const devSessionSecret = "site-dev-secret-not-for-production" //nolint:gosec

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the site server",
		Long: `Start the HTTP server for the site.

The database is migrated on startup. When the content file exists it is
seeded before the first request. In dev mode pages hold a reload stream
open and, with --watch, edits to the content file reseed the store and
reload every open tab.`,
		Example: `  # Serve on the configured port
  site serve

  # Local development with live reload
  site serve --dev --watch --port 3000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	// Bound through the config loader: --port -> server.port and so on.
	cmd.Flags().Int("port", config.DefaultPort, "Port to listen on")
	cmd.Flags().Bool("dev", false, "Development mode (live reload, insecure cookies allowed)")
	cmd.Flags().Bool("watch", false, "Reseed and reload when the content file changes")
	cmd.Flags().String("session-secret", "", "Secret used to sign session cookies")

	return cmd
}

func runServe(cmd *cobra.Command) error {
	cfg := getConfig()
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	logger := cmdCtx.Logger
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := seedIfPresent(ctx, cmdCtx); err != nil {
		return err
	}

	secret := cfg.Server.SessionSecret
	if secret == "" && cfg.Server.Dev {
		secret = devSessionSecret
		logger.Warn("no session secret configured, using the dev secret")
	}

	server := ui.NewServer(ui.Config{
		Store:             cmdCtx.Store,
		Addr:              cfg.Server.Addr(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		QueryTimeout:      cfg.Server.QueryTimeout,
		SessionSecret:     secret,
		SecureCookies:     cfg.Server.SecureCookies,
		Dev:               cfg.Server.Dev,
		Watch:             cfg.Server.Watch,
		ContentFile:       cfg.ContentFile,
		Site: common.Site{
			Title:  cfg.Title,
			Author: cfg.Author,
			Theme:  strings.ToLower(cfg.UI.Theme),
		},
		Logger: logger,
	})

	r := cmdCtx.Renderer
	r.Success(fmt.Sprintf("Serving on http://localhost:%d", cfg.Server.Port))
	r.Muted("Press Ctrl+C to stop")

	if err := server.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// seedIfPresent seeds from the content file when it exists.
func seedIfPresent(ctx context.Context, cmdCtx *CommandContext) error {
	path := cmdCtx.Cfg.ContentFile
	if _, err := os.Stat(path); err != nil {
		cmdCtx.Logger.Debug("no content file, skipping seed", "path", path)
		return nil
	}

	content, err := state.LoadContent(path)
	if err != nil {
		return err
	}
	res, err := state.Seed(ctx, cmdCtx.Store, content, cmdCtx.Logger)
	if err != nil {
		return fmt.Errorf("failed to seed %s: %w", path, err)
	}
	cmdCtx.Logger.Info("seeded content",
		"path", path,
		"stack", res.StackEntries,
		"comments", res.Comments,
		"authors", res.Authors)
	return nil
}
