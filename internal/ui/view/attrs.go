package view

import (
	"github.com/goamaan/site/internal/query"
	"github.com/goamaan/site/internal/ui/markup"
)

// QueryAttrs returns the datastar attributes that drive a deferred query
// whose settled branch is served by url.
//
// data-init fires the query once, and only while the list is loading.
// The window listeners are added only when the matching refetch option
// is on.
func QueryAttrs(url string, opts query.Options, state State) []markup.Attr {
	action := "@get('" + url + "')"
	return []markup.Attr{
		markup.If(state == StateLoading, markup.A("data-init", action)),
		markup.If(opts.RefetchOnWindowFocus, markup.A("data-on:focus__window", action)),
		markup.If(opts.RefetchOnReconnect, markup.A("data-on:online__window", action)),
	}
}
