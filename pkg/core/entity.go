package core

import (
	"fmt"
	"strings"
)

// EntityType identifies the kind of record a comment thread hangs off.
type EntityType string

// Entity types comments can be attached to.
const (
	EntityPost     EntityType = "post"
	EntityBookmark EntityType = "bookmark"
	EntityStack    EntityType = "stack"
	EntityWork     EntityType = "work"
	EntityQuestion EntityType = "question"
)

var entityTypes = []EntityType{
	EntityPost,
	EntityBookmark,
	EntityStack,
	EntityWork,
	EntityQuestion,
}

// EntityTypes returns every valid entity type in declaration order.
func EntityTypes() []EntityType {
	out := make([]EntityType, len(entityTypes))
	copy(out, entityTypes)
	return out
}

// Valid reports whether t is one of the enumerated entity types.
func (t EntityType) Valid() bool {
	for _, et := range entityTypes {
		if t == et {
			return true
		}
	}
	return false
}

func (t EntityType) String() string {
	return string(t)
}

// ParseEntityType converts a raw string into an EntityType.
// Matching is case-insensitive; surrounding whitespace is ignored.
func ParseEntityType(s string) (EntityType, error) {
	t := EntityType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidEntityType, s)
	}
	return t, nil
}

// EntityKey addresses one comment thread.
type EntityKey struct {
	ID   string
	Type EntityType
}

// Validate checks the key the same way the store does before querying.
func (k EntityKey) Validate() error {
	if strings.TrimSpace(k.ID) == "" {
		return ErrEmptyEntityID
	}
	if !k.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEntityType, string(k.Type))
	}
	return nil
}

func (k EntityKey) String() string {
	return string(k.Type) + "/" + k.ID
}
