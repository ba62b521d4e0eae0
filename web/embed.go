// Package web embeds the page templates and static assets of the site.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

// FS returns the embedded tree, rooted above templates/ and static/
func FS() fs.FS {
	return files
}

// Static returns the static asset tree served under /static/
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic("web: missing embedded static dir: " + err.Error())
	}
	return sub
}
