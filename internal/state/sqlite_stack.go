package state

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goamaan/site/pkg/core"
)

// ListStackEntries returns every stack entry ordered by name.
func (s *SQLiteStore) ListStackEntries(ctx context.Context) ([]core.StackEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, slug, name, description, url, image, tags, created_at
		FROM stack_entries
		ORDER BY name COLLATE NOCASE ASC, slug ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list stack entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []core.StackEntry{}
	for rows.Next() {
		e, err := scanStackEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stack entry: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list stack entries: %w", err)
	}
	return entries, nil
}

// GetStackEntry retrieves a stack entry by slug.
func (s *SQLiteStore) GetStackEntry(ctx context.Context, slug string) (*core.StackEntry, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, slug, name, description, url, image, tags, created_at
		FROM stack_entries
		WHERE slug = ?`, slug)

	e, err := scanStackEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("stack entry %q: %w", slug, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stack entry: %w", err)
	}
	return e, nil
}

// UpsertStackEntry inserts or updates an entry keyed by slug.
// On return e.ID and e.CreatedAt hold the stored values.
func (s *SQLiteStore) UpsertStackEntry(ctx context.Context, e *core.StackEntry) error {
	if err := s.ready(); err != nil {
		return err
	}
	e.Slug = strings.TrimSpace(e.Slug)
	if e.Slug == "" {
		return fmt.Errorf("stack entry slug is required")
	}
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("stack entry %q: name is required", e.Slug)
	}

	id := e.ID
	if id == "" {
		id = generateID()
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	tags, err := encodeTags(e.Tags)
	if err != nil {
		return fmt.Errorf("stack entry %q: failed to encode tags: %w", e.Slug, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO stack_entries (id, slug, name, description, url, image, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			url = excluded.url,
			image = excluded.image,
			tags = excluded.tags`,
		id, e.Slug, e.Name, e.Description, e.URL, e.Image, tags, toMillis(createdAt),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert stack entry %q: %w", e.Slug, err)
	}

	var storedCreated int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at FROM stack_entries WHERE slug = ?`, e.Slug,
	).Scan(&e.ID, &storedCreated); err != nil {
		return fmt.Errorf("failed to read back stack entry %q: %w", e.Slug, err)
	}
	e.CreatedAt = fromMillis(storedCreated)
	return nil
}

func scanStackEntry(r rowScanner) (*core.StackEntry, error) {
	var (
		e         core.StackEntry
		tags      string
		createdAt int64
	)
	if err := r.Scan(&e.ID, &e.Slug, &e.Name, &e.Description, &e.URL, &e.Image, &tags, &createdAt); err != nil {
		return nil, err
	}
	decoded, err := decodeTags(tags)
	if err != nil {
		return nil, fmt.Errorf("stack entry %q: %w", e.Slug, err)
	}
	e.Tags = decoded
	e.CreatedAt = fromMillis(createdAt)
	return &e, nil
}
