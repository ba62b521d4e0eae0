// Package site holds the route table of the portfolio and the resolver that
// maps a request path to exactly one page template.
package site

import "strings"

// Page identifies a page template
type Page string

const (
	PageHome          Page = "home"
	PageAbout         Page = "about"
	PageSkills        Page = "skills"
	PageProjects      Page = "projects"
	PageContact       Page = "contact"
	PageProjectDetail Page = "project-detail"
	PageError         Page = "error"
)

// Standalone reports whether the page owns the whole screen, without header or footer
func (p Page) Standalone() bool {
	return p == PageError
}

// Route binds a static path to a page template
type Route struct {
	Path  string
	Page  Page
	Label string // navigation label
}

// ProjectPrefix is the prefix of the parameterized project detail route
const ProjectPrefix = "/project/"

// Routes is the static route table in navigation order
var Routes = []Route{
	{Path: "/", Page: PageHome, Label: "Home"},
	{Path: "/about", Page: PageAbout, Label: "About"},
	{Path: "/skill", Page: PageSkills, Label: "Skill"},
	{Path: "/project", Page: PageProjects, Label: "Project"},
	{Path: "/contact", Page: PageContact, Label: "Contact"},
}

// Match is the outcome of resolving a path
type Match struct {
	Page      Page
	ProjectID string // set only for PageProjectDetail
}

// Resolve selects the page for path. Static routes match exactly; any path
// starting with ProjectPrefix with a non-empty remainder selects the project
// detail page with the remainder as id; everything else is the error page.
// Paths are not normalized.
func Resolve(path string) Match {
	for _, rt := range Routes {
		if rt.Path == path {
			return Match{Page: rt.Page}
		}
	}

	if id, ok := strings.CutPrefix(path, ProjectPrefix); ok && id != "" {
		return Match{Page: PageProjectDetail, ProjectID: id}
	}

	return Match{Page: PageError}
}

// ProjectPath returns the detail page path for a project id
func ProjectPath(id string) string {
	return ProjectPrefix + id
}

// PathOf returns the static path of a page, or "" if the page has none
func PathOf(p Page) string {
	for _, rt := range Routes {
		if rt.Page == p {
			return rt.Path
		}
	}
	return ""
}
