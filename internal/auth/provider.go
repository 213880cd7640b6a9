// Package auth resolves the optional user session for each request.
//
// Sessions live in a signed cookie (gorilla/sessions). The cookie only
// carries the user ID; the user is re-read from the store on every request
// so a deleted user is signed out on their next page view.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goamaan/site/pkg/core"
	"github.com/gorilla/sessions"
	"golang.org/x/crypto/bcrypt"
)

const (
	// SessionName is the cookie name.
	SessionName = "site_session"
	userIDKey   = "uid"
)

// Provider signs users in and out and resolves the current session.
type Provider struct {
	store    core.Store
	sessions sessions.Store
	logger   *slog.Logger
}

// NewProvider creates a session provider.
func NewProvider(store core.Store, sessionStore sessions.Store, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Provider{store: store, sessions: sessionStore, logger: logger}
}

// NewCookieStore builds the cookie store used in production.
// secure should be false only when serving plain HTTP in development.
func NewCookieStore(secret []byte, secure bool) *sessions.CookieStore {
	cs := sessions.NewCookieStore(secret)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return cs
}

// Session returns the signed-in user for r, or nil.
func (p *Provider) Session(r *http.Request) *core.UserSession {
	sess, err := p.sessions.Get(r, SessionName)
	if err != nil {
		// tampered or stale cookie: treat as signed out
		p.logger.Debug("invalid session cookie", slog.String("error", err.Error()))
		return nil
	}
	id, _ := sess.Values[userIDKey].(string)
	if id == "" {
		return nil
	}

	user, err := p.store.GetUser(r.Context(), id)
	if err != nil {
		if !errors.Is(err, core.ErrNotFound) {
			p.logger.Warn("failed to load session user", slog.String("id", id), slog.String("error", err.Error()))
		}
		return nil
	}
	return user.Session()
}

// Authenticate checks a name and password against the store.
// Every failure is reported as core.ErrInvalidCredentials.
func (p *Provider) Authenticate(ctx context.Context, name, password string) (*core.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		return nil, core.ErrInvalidCredentials
	}

	user, err := p.store.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, core.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == "" {
		return nil, core.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, core.ErrInvalidCredentials
	}
	return user, nil
}

// SignIn authenticates and writes the session cookie.
func (p *Provider) SignIn(w http.ResponseWriter, r *http.Request, name, password string) (*core.UserSession, error) {
	user, err := p.Authenticate(r.Context(), name, password)
	if err != nil {
		return nil, err
	}

	sess, _ := p.sessions.Get(r, SessionName)
	sess.Values[userIDKey] = user.ID
	if err := sess.Save(r, w); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	p.logger.Info("user signed in", slog.String("user", user.Name))
	return user.Session(), nil
}

// SignOut clears the session cookie.
func (p *Provider) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := p.sessions.Get(r, SessionName)
	delete(sess.Values, userIDKey)
	sess.Options = &sessions.Options{Path: "/", MaxAge: -1}
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// HashPassword hashes a password for storage.
func HashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
