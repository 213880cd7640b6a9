package components

import (
	"context"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/markup"
	"github.com/goamaan/site/internal/ui/nav"
)

// Sidebar renders the navigation for pc.Path. Admin actions only reach the
// markup when pc.User is an admin.
func Sidebar(pc common.PageContext) templ.Component {
	return SidebarSections(pc, nav.Build(pc.Path, pc.User, nav.DefaultSections()))
}

// SidebarSections renders already built sections.
func SidebarSections(pc common.PageContext, sections []nav.Section) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("nav", markup.A("id", "sidebar"), markup.A("class", "sidebar"),
			markup.A("data-class:open", "$"+nav.Signal))
		m.Open("div", markup.A("class", "sidebar-body"))
		m.Render(ctx, TitleBar(pc.Author, ThemeToggle()))

		hasAction := false
		for _, sec := range sections {
			m.Open("div", markup.A("class", "nav-section"))
			if sec.Label != "" {
				m.Element("h4", sec.Label, markup.A("class", "nav-heading"))
			}
			m.Open("ul")
			for _, it := range sec.Items {
				if it.Action != nil {
					hasAction = true
				}
				m.Render(ctx, navItem(it))
			}
			m.Close("ul")
			m.Close("div")
		}
		m.Close("div")

		if pc.User == nil {
			m.Render(ctx, SignInDialog(pc.Path, pc.SignInFailed))
		} else {
			m.Render(ctx, UserMenu(pc.User))
		}
		m.Close("nav")

		if hasAction {
			m.Render(ctx, AddBookmarkDialog())
		}

		m.Open("div", markup.A("class", "sidebar-overlay"),
			markup.A("data-class:visible", "$"+nav.Signal),
			markup.A("data-on:click", nav.OverlayClick.Expr()))
		m.Close("div")
	})
}

func navItem(it nav.Item) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("li", markup.A("class", "nav-item"), markup.A("data-on:click", nav.SelectItem.Expr()))

		class := "nav-link"
		if it.Active {
			class += " active"
		}
		m.Open("a",
			markup.A("href", it.Href),
			markup.A("class", class),
			markup.If(it.Active, markup.A("aria-current", "page")),
			markup.If(it.External, markup.A("target", "_blank")),
			markup.If(it.External, markup.A("rel", "noopener noreferrer")),
		)
		m.Open("span", markup.A("class", "nav-icon"))
		m.Render(ctx, it.Icon)
		m.Close("span")
		m.Element("span", it.Label, markup.A("class", "nav-label"))
		if it.Accessory != nil {
			m.Open("span", markup.A("class", "nav-accessory"))
			m.Render(ctx, it.Accessory)
			m.Close("span")
		}
		m.Close("a")

		if a := it.Action; a != nil {
			m.Open("button",
				markup.A("type", "button"),
				markup.A("class", "nav-action"),
				markup.A("aria-label", a.Label),
				markup.A("title", a.Label),
				markup.A("data-on:click__stop", a.OnClick),
			)
			m.Render(ctx, a.Icon)
			m.Close("button")
		}
		m.Close("li")
	})
}

// AddBookmarkDialog is opened by the admin action on the Bookmarks item.
func AddBookmarkDialog() templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		show := "$" + nav.BookmarkDialogSignal
		m.Open("div", markup.A("class", "dialog-backdrop"), markup.A("data-show", show), markup.A("style", "display: none"))
		m.Open("div", markup.A("class", "dialog"), markup.A("role", "dialog"), markup.A("aria-labelledby", "bookmark-title"))
		m.Element("h3", "Add a bookmark", markup.A("id", "bookmark-title"))
		m.Open("div", markup.A("class", "dialog-actions"))
		m.Element("button", "Close", markup.A("type", "button"), markup.A("class", "button button-ghost"),
			markup.A("data-on:click", show+" = false"))
		m.Close("div")
		m.Close("div")
		m.Close("div")
	})
}
