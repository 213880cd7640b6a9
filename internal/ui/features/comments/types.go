// Package comments serves comment threads over datastar SSE: settling a
// deferred thread, posting a comment and deleting one.
package comments

// CreateSignals are the signals sent with a new comment.
type CreateSignals struct {
	CommentText string `json:"commentText"`
}
