// Package components holds the shared page pieces: the document layout,
// sidebar, title bar and the small widgets they are built from.
package components

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/markup"
	"github.com/goamaan/site/internal/ui/nav"
	"github.com/goamaan/site/internal/ui/resources"
)

// DatastarScript is the client runtime the SSE endpoints talk to.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

// Client-side signals owned by the layout.
const (
	DarkSignal   = "dark"
	SignInSignal = "signInOpen"
)

// Page renders a full HTML document with the sidebar around body.
func Page(pc common.PageContext, body templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		dark := pc.Theme == "dark"

		m.Raw("<!doctype html>")
		m.Open("html",
			markup.A("lang", "en"),
			markup.If(dark, markup.A("class", "dark")),
			markup.A("data-signals", initialSignals(pc, dark)),
			markup.A("data-class:dark", "$"+DarkSignal),
			markup.If(pc.Theme == "system", markup.A("data-init",
				"$"+DarkSignal+" = window.matchMedia('(prefers-color-scheme: dark)').matches")),
		)
		m.Open("head")
		m.Void("meta", markup.A("charset", "utf-8"))
		m.Void("meta", markup.A("name", "viewport"), markup.A("content", "width=device-width, initial-scale=1"))
		m.Element("title", pc.FullTitle())
		m.Void("link", markup.A("rel", "stylesheet"), markup.A("href", resources.StaticPath("site.css")))
		m.Void("link", markup.A("rel", "icon"), markup.A("href", resources.StaticPath("favicon.svg")))
		m.Open("script", markup.A("type", "module"), markup.A("src", DatastarScript))
		m.Close("script")
		m.Close("head")

		m.Open("body")
		if pc.IsDev {
			m.Open("div", markup.A("id", "dev-reload"), markup.A("data-init", "@get('/reload', {openWhenHidden: true})"))
			m.Close("div")
		}
		m.Open("div", markup.A("class", "shell"))
		m.Render(ctx, Sidebar(pc))
		m.Open("main", markup.A("id", "main"), markup.A("class", "main"))
		m.Render(ctx, body)
		m.Close("main")
		m.Close("div")
		m.Close("body")
		m.Close("html")
	})
}

func initialSignals(pc common.PageContext, dark bool) string {
	b := func(v bool) string { return strconv.FormatBool(v) }
	return "{" + nav.Signal + ": " + b(nav.NewShell().IsOpen()) + ", " +
		DarkSignal + ": " + b(dark) + ", " +
		SignInSignal + ": " + b(pc.SignInFailed && pc.User == nil) + ", " +
		nav.BookmarkDialogSignal + ": false}"
}

// ListDetailView lays out an optional list pane next to a detail pane.
// A nil list renders the detail full width.
func ListDetailView(list, detail templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		class := "list-detail"
		if list != nil {
			class += " has-list"
		}
		if detail != nil {
			class += " has-detail"
		}
		m.Open("div", markup.A("class", class))
		if list != nil {
			m.Open("aside", markup.A("class", "list-pane"))
			m.Render(ctx, list)
			m.Close("aside")
		}
		m.Open("section", markup.A("class", "detail-pane"))
		m.Render(ctx, detail)
		m.Close("section")
		m.Close("div")
	})
}
