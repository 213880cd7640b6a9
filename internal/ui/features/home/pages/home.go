// Package pages composes the home page.
package pages

import (
	"context"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/ui/components"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/markup"
)

// HomePage has no list and an empty detail pane.
func HomePage(pc common.PageContext) templ.Component {
	return components.Page(pc, components.ListDetailView(nil, markup.Component(func(_ context.Context, m *markup.Writer) {
		m.Open("div", markup.A("id", "home"), markup.A("class", "home"))
		m.Close("div")
	})))
}
