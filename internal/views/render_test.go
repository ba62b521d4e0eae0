package views

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tanvir.dev/internal/nav"
	"tanvir.dev/internal/site"
	"tanvir.dev/web"
)

func render(t *testing.T, d *PageData) string {
	t.Helper()
	r, err := NewRenderer(web.FS())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, d))
	return buf.String()
}

func TestRenderHome(t *testing.T) {
	c, _ := newTestComposer(t, Options{SiteTitle: "Tanvir Khan", Owner: "Tanvir Khan", CVURL: "/static/cv.pdf"})
	html := render(t, compose(c, "/"))

	assert.Contains(t, html, "<title>Tanvir Khan</title>")
	assert.Contains(t, html, "<header")
	assert.Contains(t, html, "<footer")
	assert.Contains(t, html, "&copy; 2025 Tanvir Khan")
	assert.Contains(t, html, "View All Projects")
	assert.Equal(t, PreviewLimit, strings.Count(html, `class="project-card"`))
	assert.Contains(t, html, `id="motion-timeline"`)

	order := []string{`data-section="hero"`, `data-section="about"`, `data-section="skills"`, `data-section="projects"`, `data-section="contact"`}
	last := -1
	for _, marker := range order {
		idx := strings.Index(html, marker)
		require.NotEqual(t, -1, idx, marker)
		assert.Greater(t, idx, last, "%s out of order", marker)
		last = idx
	}
}

func TestRenderProjectsListsAll(t *testing.T) {
	c, bundle := newTestComposer(t, Options{})
	html := render(t, compose(c, "/project"))

	assert.Equal(t, len(bundle.Projects.Projects), strings.Count(html, `class="project-card"`))
	assert.NotContains(t, html, "View All Projects")
	assert.Contains(t, html, "Interested in working together?")
	assert.Contains(t, html, `aria-current="page"`)
}

func TestRenderErrorIsStandalone(t *testing.T) {
	c, _ := newTestComposer(t, Options{})
	html := render(t, compose(c, "/missing"))

	assert.NotContains(t, html, "<header")
	assert.NotContains(t, html, "<footer")
	assert.Contains(t, html, "404")
	assert.Contains(t, html, "Page Not Found")
	assert.Contains(t, html, `href="/"`)
	assert.Contains(t, html, "Go Back")
}

func TestRenderDetail(t *testing.T) {
	c, bundle := newTestComposer(t, Options{})
	p := bundle.Projects.Projects[0]

	html := render(t, compose(c, site.ProjectPath(p.ID)))
	assert.Contains(t, html, p.Title)
	assert.Contains(t, html, "Technology Stack")
	assert.Contains(t, html, "Challenges Faced")
	assert.Contains(t, html, "Future Improvements")
	assert.Contains(t, html, "<header")
	assert.NotContains(t, html, "project-not-found")

	missing := render(t, compose(c, "/project/unknown"))
	assert.Contains(t, missing, `data-view="project-not-found"`)
	assert.Contains(t, missing, "Project Not Found")
	assert.Contains(t, missing, `href="/project"`)
	assert.Contains(t, missing, "<header")
}

func TestRenderMenu(t *testing.T) {
	c, _ := newTestComposer(t, Options{})

	closed := render(t, c.Compose(site.Resolve("/about"), "/about", nav.Menu{}))
	assert.NotContains(t, closed, `id="mobile-menu"`)
	assert.Contains(t, closed, `href="/about?menu=open"`)

	open := render(t, c.Compose(site.Resolve("/about"), "/about", nav.Menu{Open: true}))
	assert.Contains(t, open, `id="mobile-menu"`)
	assert.Contains(t, open, `class="menu-toggle" href="/about"`)
	assert.NotContains(t, open, `href="/contact?menu=open"`)
}

func TestRenderContactLinks(t *testing.T) {
	c, bundle := newTestComposer(t, Options{})
	html := render(t, compose(c, "/contact"))

	assert.Contains(t, html, `href="mailto:`+bundle.Copy.Contact.Email+`"`)
	// html/template escapes the plus sign of the international prefix
	phone := strings.ReplaceAll(string(bundle.Copy.Contact.PhoneLink), "+", "&#43;")
	assert.Contains(t, html, `href="`+phone+`"`)
	assert.Contains(t, html, `href="tel:&#43;8801781116426"`)
	assert.Contains(t, html, "Send Message")
	assert.Contains(t, html, `action="#"`)
}

func TestNewRendererMissingLayout(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/base.html":           {Data: []byte(`{{define "standalone"}}x{{end}}`)},
		"templates/sections/error.html": {Data: []byte(`{{define "sections"}}y{{end}}`)},
	}
	_, err := NewRenderer(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"layout"`)
}
