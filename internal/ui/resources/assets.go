// Package resources serves the site's static assets: the stylesheet,
// the icon sprite and the favicon.
package resources

import (
	"io/fs"
	"net/http"
	"strings"
)

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

const prefix = "/static/"

// StaticPath returns the URL path for a static asset.
func StaticPath(name string) string {
	return prefix + name
}

// serve returns a handler for fsys mounted under prefix. Directory
// listings are not served.
func serve(fsys fs.FS, cacheControl string) http.Handler {
	fileServer := http.StripPrefix(prefix, http.FileServer(http.FS(fsys)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", cacheControl)
		fileServer.ServeHTTP(w, r)
	})
}
