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

const commentColumns = `
	c.id, c.entity_id, c.entity_type, c.text, c.created_at, c.updated_at,
	u.id, u.name, u.image`

// ListCommentsForEntity returns a thread oldest first.
// The key is validated here; callers get ErrEmptyEntityID or
// ErrInvalidEntityType back for malformed keys.
func (s *SQLiteStore) ListCommentsForEntity(ctx context.Context, key core.EntityKey) ([]core.Comment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if err := key.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT`+commentColumns+`
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.entity_type = ? AND c.entity_id = ?
		ORDER BY c.created_at ASC, c.id ASC`,
		string(key.Type), key.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	comments := []core.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

// GetComment retrieves a comment by ID.
func (s *SQLiteStore) GetComment(ctx context.Context, id string) (*core.Comment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT`+commentColumns+`
		FROM comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = ?`, id)

	c, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("comment %s: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return c, nil
}

// CreateComment inserts a comment. ID and timestamps are filled in when empty.
func (s *SQLiteStore) CreateComment(ctx context.Context, c *core.Comment) error {
	if err := s.ready(); err != nil {
		return err
	}
	if err := c.Key().Validate(); err != nil {
		return err
	}
	c.Text = strings.TrimSpace(c.Text)
	if c.Text == "" {
		return core.ErrEmptyComment
	}
	if c.Author.ID == "" {
		return fmt.Errorf("comment author is required")
	}

	if c.ID == "" {
		c.ID = generateID()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}

	s.logger.Debug("creating comment",
		slog.String("id", c.ID),
		slog.String("entity", c.Key().String()),
		slog.String("author", c.Author.ID))

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO comments (id, entity_id, entity_type, author_id, text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.EntityID, string(c.EntityType), c.Author.ID, c.Text,
		toMillis(c.CreatedAt), toMillis(c.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// DeleteComment removes a comment by ID.
func (s *SQLiteStore) DeleteComment(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("comment %s: %w", id, core.ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanComment(r rowScanner) (*core.Comment, error) {
	var (
		c                    core.Comment
		entityType           string
		createdAt, updatedAt int64
	)
	if err := r.Scan(
		&c.ID, &c.EntityID, &entityType, &c.Text, &createdAt, &updatedAt,
		&c.Author.ID, &c.Author.Name, &c.Author.Image,
	); err != nil {
		return nil, err
	}
	c.EntityType = core.EntityType(entityType)
	c.CreatedAt = fromMillis(createdAt)
	c.UpdatedAt = fromMillis(updatedAt)
	return &c, nil
}
