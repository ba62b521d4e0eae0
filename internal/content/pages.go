package content

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"

	"github.com/adrg/frontmatter"

	"tanvir.dev/internal/models"
)

const pagesDir = "pages"

// LoadCopy reads the page copy documents. Each document carries its
// structured fields as front matter and its prose as the markdown body.
func LoadCopy(fsys fs.FS) (*models.SiteCopy, error) {
	var c models.SiteCopy
	var err error

	if c.Hero.Body, err = loadPage(fsys, "hero.md", &c.Hero); err != nil {
		return nil, err
	}
	if c.About.Body, err = loadPage(fsys, "about.md", &c.About); err != nil {
		return nil, err
	}
	if _, err = loadPage(fsys, "skills.md", &c.Skills); err != nil {
		return nil, err
	}
	if c.Contact.Body, err = loadPage(fsys, "contact.md", &c.Contact); err != nil {
		return nil, err
	}
	if c.NotFound.Body, err = loadPage(fsys, "error.md", &c.NotFound); err != nil {
		return nil, err
	}

	return &c, nil
}

// loadPage decodes the front matter of pages/name into v and returns the rendered body
func loadPage(fsys fs.FS, name string, v interface{}) (template.HTML, error) {
	p := path.Join(pagesDir, name)
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", p, err)
	}

	body, err := frontmatter.Parse(bytes.NewReader(data), v)
	if err != nil {
		return "", fmt.Errorf("failed to parse front matter of %s: %w", p, err)
	}

	html, err := renderMarkdown(string(bytes.TrimSpace(body)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", p, err)
	}
	return html, nil
}
