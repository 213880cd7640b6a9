package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/goamaan/site/pkg/core"
)

// DefaultTimeout bounds a single query.
const DefaultTimeout = 5 * time.Second

// Client runs queries against a store. It does not retry or cache.
type Client struct {
	store   core.Store
	logger  *slog.Logger
	timeout time.Duration
}

// NewClient creates a query client. A nil logger discards output.
func NewClient(store core.Store, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{store: store, logger: logger, timeout: DefaultTimeout}
}

// WithTimeout returns a copy of the client using d as the per-query bound.
func (c *Client) WithTimeout(d time.Duration) *Client {
	cp := *c
	cp.timeout = d
	return &cp
}

// CommentsForType returns the comment thread addressed by key.
// Malformed keys come back as a failed result from the store.
func (c *Client) CommentsForType(ctx context.Context, key core.EntityKey) Result[[]core.Comment] {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	comments, err := c.store.ListCommentsForEntity(ctx, key)
	c.logFailure("comments", err, slog.String("entity", key.String()))
	return Settle(comments, err)
}

// StackEntries returns all stack entries.
func (c *Client) StackEntries(ctx context.Context) Result[[]core.StackEntry] {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	entries, err := c.store.ListStackEntries(ctx)
	c.logFailure("stack", err)
	return Settle(entries, err)
}

// StackEntry returns the stack entry with the given slug.
func (c *Client) StackEntry(ctx context.Context, slug string) Result[*core.StackEntry] {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	entry, err := c.store.GetStackEntry(ctx, slug)
	c.logFailure("stack entry", err, slog.String("slug", slug))
	return Settle(entry, err)
}

func (c *Client) logFailure(name string, err error, attrs ...any) {
	if err == nil {
		return
	}
	args := append([]any{slog.String("query", name), slog.String("error", err.Error())}, attrs...)
	c.logger.Debug("query failed", args...)
}
