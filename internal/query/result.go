// Package query runs the site's named read queries against the store and
// reports each one as a Result: fetching, failed or settled with data.
package query

// Result is the state of one query at render time.
//
// HasData is false when the query has not produced data at all. A settled
// query with HasData false and IsError false is still treated as a failure
// by the view layer.
type Result[T any] struct {
	Data       T
	HasData    bool
	IsFetching bool
	IsError    bool
	Err        error
}

// Pending is the result of a query that has been issued but not settled.
func Pending[T any]() Result[T] {
	return Result[T]{IsFetching: true}
}

// Settle builds the settled result of a query.
func Settle[T any](data T, err error) Result[T] {
	if err != nil {
		return Result[T]{IsError: true, Err: err}
	}
	return Result[T]{Data: data, HasData: true}
}

// Options are the per-query refetch switches.
type Options struct {
	RefetchOnWindowFocus bool
	RefetchOnReconnect   bool
}

// CommentOptions disables both refetch triggers: a thread is only
// re-queried when its element is rendered again.
var CommentOptions = Options{}
