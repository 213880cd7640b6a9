package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/goamaan/site/internal/cli/output"
)

// Validate checks values every command depends on.
func (c *Config) Validate() error {
	var errs []error

	if c.Database == "" {
		errs = append(errs, errors.New("database is required"))
	}
	if _, err := output.ParseMode(c.OutputFormat); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(Themes, strings.ToLower(c.UI.Theme)) {
		errs = append(errs, fmt.Errorf("ui.theme must be one of %s, got %q", strings.Join(Themes, ", "), c.UI.Theme))
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadHeaderTimeout < 0 || c.Server.QueryTimeout < 0 {
		errs = append(errs, errors.New("server timeouts must not be negative"))
	}

	return errors.Join(errs...)
}

// ValidateServe adds the checks that only matter when serving.
func (c *Config) ValidateServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Server.Dev {
		return nil
	}
	if len(c.Server.SessionSecret) < MinSessionSecretLen {
		return fmt.Errorf("server.session_secret must be at least %d bytes outside dev mode\nHint: set SITE_SERVER__SESSION_SECRET or pass --dev", MinSessionSecretLen)
	}
	return nil
}
