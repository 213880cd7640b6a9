// Package pages composes full stack pages.
package pages

import (
	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/query"
	uicomponents "github.com/goamaan/site/internal/ui/components"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/features/stack/components"
	"github.com/goamaan/site/pkg/core"
)

// StackPage is the list with no detail.
func StackPage(pc common.PageContext, entries query.Result[[]core.StackEntry]) templ.Component {
	return uicomponents.Page(pc, uicomponents.ListDetailView(components.StackList(entries, ""), nil))
}

// StackDetailPage is the list with the selected entry beside it.
func StackDetailPage(pc common.PageContext, entries query.Result[[]core.StackEntry], entry *core.StackEntry) templ.Component {
	return uicomponents.Page(pc, uicomponents.ListDetailView(
		components.StackList(entries, entry.Slug),
		components.Detail(entry, pc.User),
	))
}
