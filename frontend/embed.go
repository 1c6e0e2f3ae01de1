// Package frontend embeds the built single-page UI served next to the
// JSON API.
package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed all:dist
var distFS embed.FS

// GetHTTPFS returns the embedded UI as an http.FileSystem. It fails
// when the bundle was not built before compilation, so the server can
// fall back to a plain landing page.
func GetHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(distFS, "dist")
	if err != nil {
		return nil, err
	}

	// index.html is the marker for a completed build
	if _, err := fs.Stat(sub, "index.html"); err != nil {
		return nil, &fs.PathError{Op: "stat", Path: "index.html", Err: fs.ErrNotExist}
	}

	return http.FS(sub), nil
}
