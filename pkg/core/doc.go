// Package core defines the shared language of the site.
//
// This package contains:
//   - Domain entities (Comment, StackEntry, User, UserSession)
//   - The EntityType enumeration comments attach to
//   - Service interfaces (Store)
//   - Sentinel errors shared by the store, query and UI layers
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
