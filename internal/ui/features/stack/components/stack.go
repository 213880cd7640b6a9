// Package components renders the stack list and entry detail.
package components

import (
	"context"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/query"
	uicomponents "github.com/goamaan/site/internal/ui/components"
	commentcomponents "github.com/goamaan/site/internal/ui/features/comments/components"
	"github.com/goamaan/site/internal/ui/markup"
	"github.com/goamaan/site/internal/ui/view"
	"github.com/goamaan/site/pkg/core"
)

// ListID is the DOM id of the stack list.
const ListID = "stack-list"

// EntryURL is the detail page of an entry.
func EntryURL(slug string) string {
	return "/stack/" + slug
}

// StackList renders every entry as a link. activeSlug marks the entry
// shown in the detail pane.
func StackList(result query.Result[[]core.StackEntry], activeSlug string) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("div", markup.A("id", ListID), markup.A("data-state", view.Resolve(result).String()))
		m.Render(ctx, uicomponents.TitleBar("Stack", nil))
		m.Render(ctx, view.List(result, view.ListRenderer[core.StackEntry]{
			Loading: uicomponents.Spinner(),
			Error: func(err error) templ.Component {
				return markup.Component(func(_ context.Context, m *markup.Writer) {
					m.Element("p", view.FailureText("Error loading stack...", err), markup.A("class", "list-error"))
				})
			},
			Empty: markup.Component(func(_ context.Context, m *markup.Writer) {
				m.Element("p", "Nothing in the stack yet...", markup.A("class", "list-empty"))
			}),
			Item: func(e core.StackEntry) templ.Component {
				return Row(e, e.Slug == activeSlug)
			},
			Key: func(e core.StackEntry) string { return e.Slug },
		}))
		m.Close("div")
	})
}

// Row is one entry in the list.
func Row(e core.StackEntry, active bool) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		class := "list-row"
		if active {
			class += " active"
		}
		m.Open("a", markup.A("href", EntryURL(e.Slug)), markup.A("class", class),
			markup.If(active, markup.A("aria-current", "page")))
		m.Element("div", e.Name, markup.A("class", "list-row-title"))
		if e.Description != "" {
			m.Element("div", e.Description, markup.A("class", "list-row-description"))
		}
		m.Close("a")
	})
}

// Detail shows one entry and its comment thread. The thread is rendered
// pending and settles through its own SSE request.
func Detail(e *core.StackEntry, user *core.UserSession) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, uicomponents.TitleBar(e.Name, nil))
		m.Open("article", markup.A("class", "detail"), markup.A("id", "stack-"+e.Slug))
		if e.Image != "" {
			m.Void("img", markup.A("src", e.Image), markup.A("alt", e.Name), markup.A("class", "detail-image"),
				markup.A("width", "64"), markup.A("height", "64"))
		}
		m.Element("h1", e.Name)
		if e.Description != "" {
			m.Element("p", e.Description, markup.A("class", "detail-description"))
		}
		if e.URL != "" {
			m.Element("a", e.URL, markup.A("href", e.URL), markup.A("target", "_blank"),
				markup.A("rel", "noopener noreferrer"), markup.A("class", "button button-secondary"))
		}
		if len(e.Tags) > 0 {
			m.Open("ul", markup.A("class", "tags"))
			for _, tag := range e.Tags {
				m.Element("li", tag, markup.A("class", "tag"))
			}
			m.Close("ul")
		}

		key := core.EntityKey{ID: e.ID, Type: core.EntityStack}
		m.Render(ctx, commentcomponents.CommentList(key, user, query.Pending[[]core.Comment]()))
		m.Close("article")
	})
}
