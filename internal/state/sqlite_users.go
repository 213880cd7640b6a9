package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/goamaan/site/pkg/core"
)

// CreateUser inserts a user. Names are unique.
func (s *SQLiteStore) CreateUser(ctx context.Context, u *core.User) error {
	if err := s.ready(); err != nil {
		return err
	}
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if u.ID == "" {
		u.ID = generateID()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	s.logger.Debug("creating user", slog.String("id", u.ID), slog.String("name", u.Name), slog.Bool("admin", u.IsAdmin))

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, image, is_admin, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Image, u.IsAdmin, u.PasswordHash, toMillis(u.CreatedAt),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %q: %w", u.Name, core.ErrDuplicate)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*core.User, error) {
	return s.getUser(ctx, "id", id)
}

// GetUserByName retrieves a user by name.
func (s *SQLiteStore) GetUserByName(ctx context.Context, name string) (*core.User, error) {
	return s.getUser(ctx, "name", strings.TrimSpace(name))
}

func (s *SQLiteStore) getUser(ctx context.Context, column, value string) (*core.User, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	var (
		u         core.User
		createdAt int64
	)
	// column is one of two constants above, never user input
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, image, is_admin, password_hash, created_at
		FROM users WHERE `+column+` = ?`, value,
	).Scan(&u.ID, &u.Name, &u.Image, &u.IsAdmin, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", value, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	u.CreatedAt = fromMillis(createdAt)
	return &u, nil
}
