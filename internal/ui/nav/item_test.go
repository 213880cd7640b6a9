package nav_test

import (
	"testing"

	"github.com/goamaan/site/internal/ui/nav"
	"github.com/goamaan/site/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsActive(t *testing.T) {
	home := nav.Item{Href: "/", Exact: true}
	work := nav.Item{Href: "/work"}
	ama := nav.Item{Href: "/ama", Exclude: []string{"/ama/pending"}}
	external := nav.Item{Href: "https://github.com/goamaan", External: true}

	tests := []struct {
		name string
		path string
		item nav.Item
		want bool
	}{
		{name: "home on root", path: "/", item: home, want: true},
		{name: "home elsewhere", path: "/work", item: home, want: false},
		{name: "exact path", path: "/work", item: work, want: true},
		{name: "descendant", path: "/work/acme", item: work, want: true},
		{name: "sibling with shared prefix", path: "/workshop", item: work, want: false},
		{name: "nested elsewhere", path: "/foo/work", item: work, want: false},
		{name: "ama question", path: "/ama/123", item: ama, want: true},
		{name: "ama root", path: "/ama", item: ama, want: true},
		{name: "ama pending root", path: "/ama/pending", item: ama, want: false},
		{name: "ama pending detail", path: "/ama/pending/42", item: ama, want: false},
		{name: "ama pending-like sibling", path: "/ama/pendingish", item: ama, want: true},
		{name: "external never active", path: "https://github.com/goamaan", item: external, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nav.IsActive(tt.path, tt.item))
		})
	}
}

func findItem(t *testing.T, sections []nav.Section, label string) nav.Item {
	t.Helper()
	for _, s := range sections {
		for _, it := range s.Items {
			if it.Label == label {
				return it
			}
		}
	}
	require.Failf(t, "item not found", "label %q", label)
	return nav.Item{}
}

func TestBuild(t *testing.T) {
	sections := nav.DefaultSections()

	tests := []struct {
		name       string
		path       string
		user       *core.UserSession
		wantActive []string
		wantAction bool
	}{
		{name: "anonymous on home", path: "/", wantActive: []string{"Home"}},
		{name: "member on stack detail", path: "/stack/go", user: &core.UserSession{ID: "u"}, wantActive: []string{"Stack"}},
		{name: "admin on bookmarks", path: "/bookmarks", user: &core.UserSession{ID: "a", IsAdmin: true}, wantActive: []string{"Bookmarks"}, wantAction: true},
		{name: "pending questions", path: "/ama/pending/42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built := nav.Build(tt.path, tt.user, sections)
			require.Len(t, built, len(sections))

			var active []string
			for _, s := range built {
				for _, it := range s.Items {
					if it.Active {
						active = append(active, it.Label)
					}
				}
			}
			assert.Equal(t, tt.wantActive, active)

			bookmarks := findItem(t, built, "Bookmarks")
			if tt.wantAction {
				require.NotNil(t, bookmarks.Action)
				assert.Equal(t, "Add a bookmark", bookmarks.Action.Label)
			} else {
				assert.Nil(t, bookmarks.Action)
			}
		})
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	sections := nav.DefaultSections()
	_ = nav.Build("/", nil, sections)

	bookmarks := findItem(t, sections, "Bookmarks")
	assert.NotNil(t, bookmarks.Action, "the route table keeps its admin action")
	assert.False(t, findItem(t, sections, "Home").Active)
}

func TestDefaultSections(t *testing.T) {
	sections := nav.DefaultSections()

	labels := make([]string, 0, len(sections))
	for _, s := range sections {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"", "Me", "Featured Projects", "Online"}, labels)

	for _, s := range sections[2:] {
		for _, it := range s.Items {
			assert.True(t, it.External, it.Label)
			assert.NotNil(t, it.Accessory, it.Label)
		}
	}
	assert.Equal(t, []string{"/ama/pending"}, findItem(t, sections, "AMA").Exclude)
	assert.True(t, findItem(t, sections, "Home").Exact)
}
