// Package components renders comment threads.
package components

import (
	"context"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/query"
	uicomponents "github.com/goamaan/site/internal/ui/components"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/icons"
	"github.com/goamaan/site/internal/ui/markup"
	"github.com/goamaan/site/internal/ui/view"
	"github.com/goamaan/site/pkg/core"
)

// TextSignal is the datastar signal bound to the new comment textarea.
const TextSignal = "commentText"

// ErrorPrefix starts the inline message shown when a thread fails to load.
const ErrorPrefix = "Error loading comments..."

// EmptyText is shown for a thread with no comments.
const EmptyText = "No comments yet..."

// ThreadID is the DOM id of a thread's container. SSE patches target it.
func ThreadID(key core.EntityKey) string {
	return "comments-" + domSafe(string(key.Type)) + "-" + domSafe(key.ID)
}

// FormErrorID is the DOM id of the new comment error message.
func FormErrorID(key core.EntityKey) string {
	return ThreadID(key) + "-error"
}

// ThreadURL is the endpoint that settles and mutates a thread.
func ThreadURL(key core.EntityKey) string {
	return "/comments/" + url.PathEscape(string(key.Type)) + "/" + url.PathEscape(key.ID)
}

// DeleteURL is the endpoint that deletes one comment.
func DeleteURL(key core.EntityKey, commentID string) string {
	return ThreadURL(key) + "/" + url.PathEscape(commentID) + "/delete"
}

// CommentList renders a thread in whatever state result is in. While
// loading it carries the data-init that fetches the settled thread.
func CommentList(key core.EntityKey, user *core.UserSession, result query.Result[[]core.Comment]) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		state := view.Resolve(result)
		attrs := append([]markup.Attr{
			markup.A("id", ThreadID(key)),
			markup.A("class", "comments"),
			markup.A("data-state", state.String()),
		}, view.QueryAttrs(ThreadURL(key), query.CommentOptions, state)...)

		m.Open("div", attrs...)
		m.Render(ctx, view.List(result, view.ListRenderer[core.Comment]{
			Header:  Header(),
			Loading: uicomponents.Spinner(),
			Error: func(err error) templ.Component {
				return markup.Component(func(_ context.Context, m *markup.Writer) {
					m.Element("p", view.FailureText(ErrorPrefix, err), markup.A("class", "comments-error"))
				})
			},
			Empty: markup.Component(func(_ context.Context, m *markup.Writer) {
				m.Element("p", EmptyText, markup.A("class", "comments-empty"))
			}),
			Item: func(c core.Comment) templ.Component {
				return Item(key, c, user)
			},
			Key:   func(c core.Comment) string { return c.ID },
			Class: "comment-list",
		}))
		if user != nil && state != view.StateLoading {
			m.Render(ctx, Form(key, ""))
		}
		m.Close("div")
	})
}

// Header is the divider above a settled thread.
func Header() templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", markup.A("class", "comments-header"))
		m.Render(ctx, icons.Sized(icons.Message, 20))
		m.Close("div")
	})
}

// Item renders one comment. The delete button is only present for the
// author and for admins.
func Item(key core.EntityKey, c core.Comment, user *core.UserSession) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("article", markup.A("class", "comment"), markup.A("id", "comment-"+domSafe(c.ID)))
		m.Render(ctx, uicomponents.Avatar(c.Author.Name, c.Author.Image, uicomponents.AvatarSmall))
		m.Open("div", markup.A("class", "comment-body"))
		m.Open("div", markup.A("class", "comment-meta"))
		m.Element("span", c.Author.Name, markup.A("class", "comment-author"))
		m.Element("time", common.FormatDate(c.CreatedAt),
			markup.A("class", "comment-date"),
			markup.A("datetime", c.CreatedAt.UTC().Format("2006-01-02T15:04:05Z")))
		if c.CanDelete(user) {
			m.Open("button",
				markup.A("type", "button"),
				markup.A("class", "comment-delete"),
				markup.A("aria-label", "Delete comment"),
				markup.A("data-on:click", "confirm('Delete this comment?') && @post('"+DeleteURL(key, c.ID)+"')"),
			)
			m.Render(ctx, icons.Icon(icons.Trash))
			m.Close("button")
		}
		m.Close("div")
		m.Element("p", c.Text, markup.A("class", "comment-text"))
		m.Close("div")
		m.Close("article")
	})
}

// Form is the new comment form. errMsg is shown under the textarea.
func Form(key core.EntityKey, errMsg string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("form", markup.A("class", "comment-form"),
			markup.A("data-on:submit", "@post('"+ThreadURL(key)+"')"))
		m.Open("textarea",
			markup.A("name", "text"),
			markup.A("placeholder", "Leave a comment"),
			markup.A("data-bind", TextSignal),
		)
		m.Close("textarea")
		m.Render(ctx, FormError(key, errMsg))
		m.Element("button", "Comment", markup.A("type", "submit"), markup.A("class", "button"))
		m.Close("form")
	})
}

// FormError is the patchable message slot of the form.
func FormError(key core.EntityKey, msg string) templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		m.Element("p", msg, markup.A("id", FormErrorID(key)), markup.A("class", "form-error"))
	})
}

// domSafe keeps ids usable in CSS selectors.
func domSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}
