package core

import "errors"

// Sentinel errors. Callers classify with errors.Is; producers wrap with %w.
var (
	ErrNotFound           = errors.New("not found")
	ErrEmptyEntityID      = errors.New("entity id is required")
	ErrInvalidEntityType  = errors.New("invalid entity type")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
	ErrEmptyComment       = errors.New("comment text is required")
	ErrDuplicate          = errors.New("already exists")
)
