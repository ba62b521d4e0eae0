// Package content loads the project registry and the page copy that are
// compiled into the binary. Both are read once at startup and never change.
package content

import (
	"embed"
	"io/fs"
	"os"

	"tanvir.dev/internal/models"
)

//go:embed data
var embedded embed.FS

// Bundle holds everything loaded from a content tree
type Bundle struct {
	Projects *models.ProjectList
	Copy     *models.SiteCopy
}

// Embedded returns the content tree compiled into the binary
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// the directive above guarantees the directory exists
		panic("content: missing embedded data: " + err.Error())
	}
	return sub
}

// Source picks the content tree: a directory on disk when dir is set, otherwise the embedded one
func Source(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

// Load reads the registry and the page copy from fsys
func Load(fsys fs.FS) (*Bundle, error) {
	projects, err := LoadProjects(fsys)
	if err != nil {
		return nil, err
	}

	siteCopy, err := LoadCopy(fsys)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Projects: projects,
		Copy:     siteCopy,
	}, nil
}
