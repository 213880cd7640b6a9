package components

import (
	"context"
	"strings"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/ui/markup"
	"github.com/goamaan/site/pkg/core"
)

// Avatar sizes.
const (
	AvatarSmall = "sm"
	AvatarLarge = "lg"
)

// Avatar shows the image, or the first letter of name when there is none.
func Avatar(name, image, size string) templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		m.Open("span", markup.A("class", "avatar avatar-"+size))
		if image != "" {
			m.Void("img", markup.A("src", image), markup.A("alt", name), markup.A("class", "avatar-image"))
		} else {
			s := core.UserSession{Name: name}
			m.Element("span", strings.ToUpper(s.Initial()), markup.A("class", "avatar-fallback"))
		}
		m.Close("span")
	})
}

// SignInDialog is the sign-in trigger and form for signed-out visitors.
// After signing in the browser returns to redirect.
func SignInDialog(redirect string, failed bool) templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		m.Open("div", markup.A("class", "signin"))
		m.Element("button", "Sign in",
			markup.A("type", "button"),
			markup.A("class", "button button-secondary"),
			markup.A("data-on:click", "$"+SignInSignal+" = true"),
		)

		m.Open("div", markup.A("class", "dialog-backdrop"), markup.A("data-show", "$"+SignInSignal),
			markup.If(!failed, markup.A("style", "display: none")))
		m.Open("div", markup.A("class", "dialog"), markup.A("role", "dialog"), markup.A("aria-labelledby", "signin-title"))
		m.Element("h3", "Sign in", markup.A("id", "signin-title"))
		if failed {
			m.Element("p", "Wrong name or password.", markup.A("class", "form-error"))
		}
		m.Open("form", markup.A("method", "post"), markup.A("action", "/auth/signin"))
		m.Void("input", markup.A("type", "hidden"), markup.A("name", "redirect"), markup.A("value", redirect))
		m.Open("label")
		m.Text("Name")
		m.Void("input", markup.A("name", "name"), markup.A("autocomplete", "username"), markup.Flag("required"))
		m.Close("label")
		m.Open("label")
		m.Text("Password")
		m.Void("input", markup.A("type", "password"), markup.A("name", "password"),
			markup.A("autocomplete", "current-password"), markup.Flag("required"))
		m.Close("label")
		m.Open("div", markup.A("class", "dialog-actions"))
		m.Element("button", "Cancel", markup.A("type", "button"), markup.A("class", "button button-ghost"),
			markup.A("data-on:click", "$"+SignInSignal+" = false"))
		m.Element("button", "Sign in", markup.A("type", "submit"), markup.A("class", "button"))
		m.Close("div")
		m.Close("form")
		m.Close("div")
		m.Close("div")

		m.Close("div")
	})
}

// UserMenu is the "Logged in as" menu at the bottom of the sidebar.
func UserMenu(user *core.UserSession) templ.Component {
	return markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Open("details", markup.A("class", "user-menu"))
		m.Open("summary", markup.A("class", "user-menu-trigger"))
		m.Open("div", markup.A("class", "user-menu-label"))
		m.Element("p", "Logged in as", markup.A("class", "muted"))
		m.Element("p", user.Name, markup.A("class", "user-name"))
		m.Close("div")
		m.Render(ctx, Avatar(user.Name, user.Image, AvatarSmall))
		m.Close("summary")

		m.Open("ul", markup.A("class", "menu"))
		m.Open("li")
		m.Element("a", "Profile", markup.A("href", "/profile"))
		m.Close("li")
		m.Open("li")
		m.Open("form", markup.A("method", "post"), markup.A("action", "/auth/signout"))
		m.Element("button", "Sign out", markup.A("type", "submit"), markup.A("class", "menu-button-item"))
		m.Close("form")
		m.Close("li")
		m.Close("ul")
		m.Close("details")
	})
}
