package views

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
)

const (
	layoutTemplate     = "layout"
	standaloneTemplate = "standalone"
)

// Renderer executes the page templates
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the templates/ tree of fsys
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	t, err := template.New("pages").ParseFS(fsys, "templates/*.html", "templates/sections/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	for _, name := range []string{layoutTemplate, standaloneTemplate, "sections"} {
		if t.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q not defined", name)
		}
	}

	return &Renderer{templates: t}, nil
}

// Render writes the page. Standalone pages skip the header and footer.
func (r *Renderer) Render(w io.Writer, d *PageData) error {
	name := layoutTemplate
	if d.Page.Standalone() {
		name = standaloneTemplate
	}
	if err := r.templates.ExecuteTemplate(w, name, d); err != nil {
		return fmt.Errorf("failed to render %s page: %w", d.Page, err)
	}
	return nil
}
