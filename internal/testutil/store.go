package testutil

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goamaan/site/internal/state"
	"github.com/goamaan/site/pkg/core"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext password for users made by CreateUser.
const TestPassword = "correct horse battery staple"

// NewTestStore opens a migrated in-memory store that is closed on cleanup.
func NewTestStore(t testing.TB) *state.SQLiteStore {
	t.Helper()

	store := state.NewSQLiteStore(NewTestLogger(t))
	require.NoError(t, store.Open(":memory:"))
	require.NoError(t, store.Migrate())

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

// CreateUser inserts a user whose password is TestPassword.
// bcrypt.MinCost keeps tests fast.
func CreateUser(t testing.TB, store core.Store, name string, admin bool) *core.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := &core.User{Name: name, IsAdmin: admin, PasswordHash: string(hash)}
	require.NoError(t, store.CreateUser(context.Background(), u))
	return u
}

// CreateStackEntry upserts a stack entry with the given slug and name.
func CreateStackEntry(t testing.TB, store core.Store, slug, name string) *core.StackEntry {
	t.Helper()

	e := &core.StackEntry{Slug: slug, Name: name, Description: name + " description"}
	require.NoError(t, store.UpsertStackEntry(context.Background(), e))
	return e
}

var commentClock atomic.Int64

// CreateComment posts text on the thread as author. Each call is stamped
// one minute after the previous one so thread order follows call order.
func CreateComment(t testing.TB, store core.Store, key core.EntityKey, author *core.User, text string) *core.Comment {
	t.Helper()

	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(commentClock.Add(1)) * time.Minute)
	c := &core.Comment{
		EntityID:   key.ID,
		EntityType: key.Type,
		Text:       text,
		Author:     core.Author{ID: author.ID, Name: author.Name, Image: author.Image},
		CreatedAt:  at,
	}
	require.NoError(t, store.CreateComment(context.Background(), c))
	return c
}
