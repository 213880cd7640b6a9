package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/goamaan/site/pkg/core"
	"gopkg.in/yaml.v3"
)

// Content is the YAML document the site is seeded from.
type Content struct {
	Stack    []core.StackEntry `yaml:"stack"`
	Comments []SeedComment     `yaml:"comments"`
}

// SeedComment is a comment in the content file. Stack threads may be
// addressed by slug since entry IDs are generated on insert.
type SeedComment struct {
	EntityType string `yaml:"entity_type"`
	EntityID   string `yaml:"entity_id"`
	EntitySlug string `yaml:"entity_slug"`
	Author     string `yaml:"author"`
	Text       string `yaml:"text"`
}

// SeedResult counts what a seed pass wrote.
type SeedResult struct {
	StackEntries int
	Comments     int
	Authors      int
}

// LoadContent reads and validates a content file.
func LoadContent(path string) (*Content, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from config
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return ParseContent(data)
}

// ParseContent decodes and validates content YAML.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse content: %w", err)
	}

	seen := make(map[string]bool, len(c.Stack))
	for i, e := range c.Stack {
		if strings.TrimSpace(e.Slug) == "" {
			return nil, fmt.Errorf("stack[%d]: slug is required", i)
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("stack[%d] %q: name is required", i, e.Slug)
		}
		if seen[e.Slug] {
			return nil, fmt.Errorf("stack[%d]: duplicate slug %q", i, e.Slug)
		}
		seen[e.Slug] = true
	}

	for i, sc := range c.Comments {
		if _, err := core.ParseEntityType(sc.EntityType); err != nil {
			return nil, fmt.Errorf("comments[%d]: %w", i, err)
		}
		if sc.EntityID == "" && sc.EntitySlug == "" {
			return nil, fmt.Errorf("comments[%d]: entity_id or entity_slug is required", i)
		}
		if strings.TrimSpace(sc.Author) == "" {
			return nil, fmt.Errorf("comments[%d]: author is required", i)
		}
		if strings.TrimSpace(sc.Text) == "" {
			return nil, fmt.Errorf("comments[%d]: %w", i, core.ErrEmptyComment)
		}
	}

	return &c, nil
}

// Seed writes content into the store. It is safe to run repeatedly:
// stack entries are upserted by slug and a comment is skipped when the
// same author already posted the same text on that thread.
// Missing authors are created without a password, so they cannot sign in.
func Seed(ctx context.Context, store core.Store, c *Content, logger *slog.Logger) (SeedResult, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	var res SeedResult

	for i := range c.Stack {
		e := c.Stack[i]
		if err := store.UpsertStackEntry(ctx, &e); err != nil {
			return res, err
		}
		res.StackEntries++
	}

	authors := make(map[string]*core.User)
	for i, sc := range c.Comments {
		author, created, err := ensureAuthor(ctx, store, authors, sc.Author)
		if err != nil {
			return res, fmt.Errorf("comments[%d]: %w", i, err)
		}
		if created {
			res.Authors++
		}

		key, err := resolveSeedKey(ctx, store, sc)
		if err != nil {
			return res, fmt.Errorf("comments[%d]: %w", i, err)
		}

		existing, err := store.ListCommentsForEntity(ctx, key)
		if err != nil {
			return res, fmt.Errorf("comments[%d]: %w", i, err)
		}
		if hasComment(existing, author.ID, sc.Text) {
			continue
		}

		comment := &core.Comment{
			EntityID:   key.ID,
			EntityType: key.Type,
			Text:       sc.Text,
			Author:     core.Author{ID: author.ID, Name: author.Name, Image: author.Image},
		}
		if err := store.CreateComment(ctx, comment); err != nil {
			return res, fmt.Errorf("comments[%d]: %w", i, err)
		}
		res.Comments++
	}

	logger.Info("seeded content",
		slog.Int("stack_entries", res.StackEntries),
		slog.Int("comments", res.Comments),
		slog.Int("authors", res.Authors))

	return res, nil
}

func ensureAuthor(ctx context.Context, store core.Store, cache map[string]*core.User, name string) (*core.User, bool, error) {
	name = strings.TrimSpace(name)
	if u, ok := cache[name]; ok {
		return u, false, nil
	}

	u, err := store.GetUserByName(ctx, name)
	if err == nil {
		cache[name] = u
		return u, false, nil
	}
	if !errors.Is(err, core.ErrNotFound) {
		return nil, false, err
	}

	u = &core.User{Name: name}
	if err := store.CreateUser(ctx, u); err != nil {
		return nil, false, err
	}
	cache[name] = u
	return u, true, nil
}

func resolveSeedKey(ctx context.Context, store core.Store, sc SeedComment) (core.EntityKey, error) {
	t, err := core.ParseEntityType(sc.EntityType)
	if err != nil {
		return core.EntityKey{}, err
	}
	if sc.EntityID != "" {
		return core.EntityKey{ID: sc.EntityID, Type: t}, nil
	}
	if t != core.EntityStack {
		return core.EntityKey{}, fmt.Errorf("entity_slug is only supported for stack comments")
	}
	entry, err := store.GetStackEntry(ctx, sc.EntitySlug)
	if err != nil {
		return core.EntityKey{}, err
	}
	return core.EntityKey{ID: entry.ID, Type: t}, nil
}

func hasComment(comments []core.Comment, authorID, text string) bool {
	text = strings.TrimSpace(text)
	for _, c := range comments {
		if c.Author.ID == authorID && c.Text == text {
			return true
		}
	}
	return false
}
