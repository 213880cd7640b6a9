package nav

import "github.com/goamaan/site/internal/ui/icons"

// BookmarkDialogSignal opens the add-bookmark dialog.
const BookmarkDialogSignal = "addBookmarkOpen"

// DefaultSections is the site's route table.
func DefaultSections() []Section {
	external := icons.Icon(icons.ExternalLink)

	return []Section{
		{
			Items: []Item{
				{Href: "/", Label: "Home", Icon: icons.Icon(icons.Home), Exact: true},
				{Href: "/writing", Label: "Writing", Icon: icons.Icon(icons.Writing)},
			},
		},
		{
			Label: "Me",
			Items: []Item{
				{Href: "/work", Label: "Work", Icon: icons.Icon(icons.Work)},
				{
					Href:  "/bookmarks",
					Label: "Bookmarks",
					Icon:  icons.Icon(icons.Bookmarks),
					Action: &Action{
						Label:         "Add a bookmark",
						Icon:          icons.Icon(icons.Plus),
						RequiresAdmin: true,
						OnClick:       "$" + BookmarkDialogSignal + " = true",
					},
				},
				{Href: "/ama", Label: "AMA", Icon: icons.Icon(icons.AMA), Exclude: []string{"/ama/pending"}},
				{Href: "/stack", Label: "Stack", Icon: icons.Icon(icons.Stack)},
			},
		},
		{
			Label: "Featured Projects",
			Items: []Item{
				project("https://gistlab.dev", "GistLab", icons.FileCode),
				project("https://astar-visualization.netlify.app/", "A* Pathfinding", icons.Waypoints),
				project("https://github.com/goamaan/tsalgo", "TSAlgo", icons.Puzzle),
				project("https://github.com/goamaan/Titans-Trial", "Titan's Trial", icons.Gamepad),
			},
		},
		{
			Label: "Online",
			Items: []Item{
				{Href: "https://twitter.com/goamaan", Label: "Twitter", Icon: icons.Icon(icons.Twitter), External: true, Accessory: external},
				{Href: "https://github.com/goamaan", Label: "GitHub", Icon: icons.Icon(icons.GitHub), External: true, Accessory: external},
				{Href: "mailto:amaangokak18@gmail.com", Label: "Mail", Icon: icons.Icon(icons.Mail), External: true, Accessory: external},
			},
		},
	}
}

func project(href, label, icon string) Item {
	return Item{
		Href:      href,
		Label:     label,
		Icon:      icons.Icon(icon),
		External:  true,
		Accessory: icons.Icon(icons.ExternalLink),
	}
}
