// Package pages holds pages shared by every feature.
package pages

import (
	"context"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/ui/components"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/markup"
)

// NotFoundPage is served for unknown routes and missing entries.
func NotFoundPage(pc common.PageContext) templ.Component {
	return components.Page(pc, components.ListDetailView(nil, markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, components.TitleBar("Not found", nil))
		m.Open("div", markup.A("class", "not-found"))
		m.Element("h1", "404")
		m.Element("p", "This page does not exist.")
		m.Element("a", "Go home", markup.A("href", "/"))
		m.Close("div")
	})))
}
