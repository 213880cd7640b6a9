package nav

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/goamaan/site/pkg/core"
)

// Item is one sidebar link.
type Item struct {
	Href     string
	Label    string
	Icon     templ.Component
	External bool

	// Exact items are active only on their own path.
	Exact bool
	// Exclude lists paths under Href where the item is not active.
	Exclude []string

	// Accessory is rendered after the label.
	Accessory templ.Component
	// Action is a trailing button, such as "Add a bookmark".
	Action *Action

	// Active is derived by Build for the current request.
	Active bool
}

// Action is a trailing button on an item.
type Action struct {
	Label         string
	Icon          templ.Component
	RequiresAdmin bool
	// OnClick is a datastar expression.
	OnClick string
}

// Section is a titled group of items. The first section has no title.
type Section struct {
	Label string
	Items []Item
}

// IsActive reports whether item should be highlighted for path.
func IsActive(path string, item Item) bool {
	if item.External {
		return false
	}
	if item.Exact {
		return path == item.Href
	}
	if !underPath(path, item.Href) {
		return false
	}
	for _, ex := range item.Exclude {
		if underPath(path, ex) {
			return false
		}
	}
	return true
}

// underPath reports whether path is base or a descendant of it.
func underPath(path, base string) bool {
	if path == base {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(base, "/")+"/")
}

// Build returns a copy of sections for one request with Active set and
// admin-only actions removed for everyone else.
func Build(path string, user *core.UserSession, sections []Section) []Section {
	isAdmin := user != nil && user.IsAdmin

	out := make([]Section, len(sections))
	for i, sec := range sections {
		items := make([]Item, len(sec.Items))
		for j, it := range sec.Items {
			it.Active = IsActive(path, it)
			if it.Action != nil && it.Action.RequiresAdmin && !isAdmin {
				it.Action = nil
			}
			items[j] = it
		}
		out[i] = Section{Label: sec.Label, Items: items}
	}
	return out
}
