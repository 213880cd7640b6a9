package core

import "context"

// Store defines the persistence operations the site needs.
type Store interface {
	Close() error

	// Comment operations
	ListCommentsForEntity(ctx context.Context, key EntityKey) ([]Comment, error)
	GetComment(ctx context.Context, id string) (*Comment, error)
	CreateComment(ctx context.Context, c *Comment) error
	DeleteComment(ctx context.Context, id string) error

	// Stack operations
	ListStackEntries(ctx context.Context) ([]StackEntry, error)
	GetStackEntry(ctx context.Context, slug string) (*StackEntry, error)
	UpsertStackEntry(ctx context.Context, e *StackEntry) error

	// User operations
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByName(ctx context.Context, name string) (*User, error)
}
