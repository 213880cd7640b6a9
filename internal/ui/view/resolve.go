// Package view maps query results to the branch a list renders.
//
// Every list on the site goes through Resolve, which picks exactly one of
// loading, error, empty or populated, and List, which renders that branch.
package view

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/query"
	"github.com/goamaan/site/internal/ui/markup"
)

// State is the resolved branch of a list.
type State int

// Resolved branches.
const (
	StateLoading State = iota
	StateError
	StateEmpty
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrDuplicateKey is returned when two rows of a populated list share a key.
var ErrDuplicateKey = errors.New("duplicate list key")

// Resolve picks the branch for r. Precedence is fixed: fetching wins over
// everything, then a failure or missing data, then an empty list.
func Resolve[T any](r query.Result[[]T]) State {
	switch {
	case r.IsFetching:
		return StateLoading
	case r.IsError || !r.HasData:
		return StateError
	case len(r.Data) == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}

// FailureText is the inline message for a failed query.
func FailureText(prefix string, err error) string {
	if err == nil || err.Error() == "" {
		return prefix + " please try again later"
	}
	return prefix + " " + err.Error()
}

// ListRenderer holds the components for each branch of a list.
// Error receives the query error, which may be nil when data is missing.
// Header, when set, precedes both the empty and the populated branch.
type ListRenderer[T any] struct {
	Header  templ.Component
	Loading templ.Component
	Error   func(err error) templ.Component
	Empty   templ.Component
	Item    func(item T) templ.Component
	Key     func(item T) string

	// Class is set on the <ul> of a populated list.
	Class string
}

// List renders the branch Resolve picks for r.
//
// Populated lists render as one <li data-key> per element in order. Keys
// are checked before anything is written, so a duplicate produces no
// partial output.
func List[T any](r query.Result[[]T], lr ListRenderer[T]) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		switch Resolve(r) {
		case StateLoading:
			m.Render(ctx, lr.Loading)
		case StateError:
			if lr.Error != nil {
				m.Render(ctx, lr.Error(r.Err))
			}
		case StateEmpty:
			m.Render(ctx, lr.Header)
			m.Render(ctx, lr.Empty)
		case StatePopulated:
			keys, err := rowKeys(r.Data, lr.Key)
			if err != nil {
				m.Fail(err)
				return
			}
			m.Render(ctx, lr.Header)
			m.Open("ul", markup.If(lr.Class != "", markup.A("class", lr.Class)))
			for i, item := range r.Data {
				m.Open("li", markup.A("data-key", keys[i]))
				m.Render(ctx, lr.Item(item))
				m.Close("li")
			}
			m.Close("ul")
		}
	})
}

func rowKeys[T any](items []T, key func(T) string) ([]string, error) {
	keys := make([]string, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		k := strconv.Itoa(i)
		if key != nil {
			k = key(item)
		}
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, k)
		}
		seen[k] = struct{}{}
		keys[i] = k
	}
	return keys, nil
}
