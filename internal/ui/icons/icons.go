// Package icons renders references into the static SVG sprite.
package icons

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/goamaan/site/internal/ui/markup"
)

// SpritePath is where the sprite sheet is served.
const SpritePath = "/static/icons.svg"

// Names of the symbols in the sprite.
const (
	Home         = "home"
	Writing      = "writing"
	Work         = "work"
	Bookmarks    = "bookmarks"
	AMA          = "ama"
	Stack        = "stack"
	FileCode     = "file-code"
	Waypoints    = "waypoints"
	Puzzle       = "puzzle"
	Gamepad      = "gamepad"
	Twitter      = "twitter"
	GitHub       = "github"
	Mail         = "mail"
	ExternalLink = "external-link"
	Plus         = "plus"
	Menu         = "menu"
	Close        = "close"
	Message      = "message"
	Sun          = "sun"
	Moon         = "moon"
	Trash        = "trash"
)

// Icon renders a 16px icon.
func Icon(name string) templ.Component {
	return Sized(name, 16)
}

// Sized renders an icon at size px.
func Sized(name string, size int) templ.Component {
	return markup.Component(func(_ context.Context, m *markup.Writer) {
		px := strconv.Itoa(size)
		m.Open("svg",
			markup.A("class", "icon icon-"+name),
			markup.A("width", px),
			markup.A("height", px),
			markup.A("aria-hidden", "true"),
		)
		m.Open("use", markup.A("href", SpritePath+"#"+name))
		m.Close("use")
		m.Close("svg")
	})
}
