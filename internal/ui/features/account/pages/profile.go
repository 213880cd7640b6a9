// Package pages composes the account pages.
package pages

import (
	"context"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/ui/components"
	"github.com/goamaan/site/internal/ui/features/common"
	"github.com/goamaan/site/internal/ui/markup"
)

// ProfilePage shows the signed-in user. pc.User must be set.
func ProfilePage(pc common.PageContext) templ.Component {
	user := pc.User
	return components.Page(pc, components.ListDetailView(nil, markup.Component(func(ctx context.Context, m *markup.Writer) {
		m.Render(ctx, components.TitleBar("Profile", nil))
		m.Open("div", markup.A("class", "detail"))
		m.Open("div", markup.A("class", "profile"))
		m.Render(ctx, components.Avatar(user.Name, user.Image, components.AvatarLarge))
		m.Open("div")
		m.Element("h1", user.Name)
		if user.IsAdmin {
			m.Element("span", "Admin", markup.A("class", "tag"))
		}
		m.Close("div")
		m.Close("div")
		m.Open("form", markup.A("method", "post"), markup.A("action", "/auth/signout"))
		m.Element("button", "Sign out", markup.A("type", "submit"), markup.A("class", "button button-secondary"))
		m.Close("form")
		m.Close("div")
	})))
}
