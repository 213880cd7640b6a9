package components

import (
	"context"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/ui/icons"
	"github.com/goamaan/site/internal/ui/markup"
	"github.com/goamaan/site/internal/ui/nav"
)

// TitleBar is the sticky header of a pane. The menu button opens the
// sidebar on narrow screens.
func TitleBar(title string, trailing templ.Component) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("header", markup.A("class", "titlebar"))
		m.Open("button",
			markup.A("type", "button"),
			markup.A("class", "menu-button"),
			markup.A("aria-label", "Toggle menu"),
			markup.A("data-on:click", nav.Toggle.Expr()),
		)
		m.Render(ctx, icons.Icon(icons.Menu))
		m.Close("button")
		m.Element("h2", title, markup.A("class", "titlebar-title"))
		if trailing != nil {
			m.Open("div", markup.A("class", "titlebar-trailing"))
			m.Render(ctx, trailing)
			m.Close("div")
		}
		m.Close("header")
	})
}

// ThemeToggle flips the dark signal.
func ThemeToggle() templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("button",
			markup.A("type", "button"),
			markup.A("class", "theme-toggle"),
			markup.A("aria-label", "Toggle theme"),
			markup.A("data-on:click", "$"+DarkSignal+" = !$"+DarkSignal),
		)
		m.Open("span", markup.A("data-show", "!$"+DarkSignal))
		m.Render(ctx, icons.Icon(icons.Moon))
		m.Close("span")
		m.Open("span", markup.A("data-show", "$"+DarkSignal))
		m.Render(ctx, icons.Icon(icons.Sun))
		m.Close("span")
		m.Close("button")
	})
}

// Spinner is the loading placeholder.
func Spinner() templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		m.Open("div", markup.A("class", "spinner"), markup.A("role", "status"), markup.A("aria-label", "Loading"))
		m.Open("span", markup.A("class", "spinner-ring"))
		m.Close("span")
		m.Close("div")
	})
}
