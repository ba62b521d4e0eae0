package views

import (
	"tanvir.dev/internal/models"
	"tanvir.dev/internal/motion"
	"tanvir.dev/internal/nav"
	"tanvir.dev/internal/site"
)

// Home page section order
var HomeSections = []string{"hero", "about", "skills", "projects", "contact"}

// PreviewLimit is the number of projects shown on the home page
const PreviewLimit = 3

// MaxCardTags is the number of technology chips shown on a listing card
const MaxCardTags = 4

// MaxDesignSkills caps the design skill grid
const MaxDesignSkills = 8

// SiteInfo is the site-wide data available to every page
type SiteInfo struct {
	Title string
	Owner string
	Year  int
}

// PageData is the view model handed to the templates
type PageData struct {
	Title string
	Page  site.Page
	Path  string
	Site  SiteInfo
	Nav   nav.Shell
	Copy  *models.SiteCopy

	// Sections lists the section templates composed into the page, in order
	Sections []string

	Skills  *SkillsView
	Listing *Listing
	Detail  *Detail

	// Handles maps element names to their animation handles
	Handles map[string]motion.Handle
	Motion  motion.Timeline
}

// Handle returns the animation handle id of a named element, or "" when it has none
func (d *PageData) Handle(name string) string {
	return d.Handles[name].ID
}

// Has reports whether the named section is composed into the page
func (d *PageData) Has(section string) bool {
	for _, s := range d.Sections {
		if s == section {
			return true
		}
	}
	return false
}

// SkillBadge is a skill with its reveal handle
type SkillBadge struct {
	models.Skill
	Motion motion.Handle
}

// SkillGroupView is a titled skill grid
type SkillGroupView struct {
	Title   string
	Summary string
	Skills  []SkillBadge
}

// SkillsView is the skills section with its capped design grid
type SkillsView struct {
	Development SkillGroupView
	Design      SkillGroupView
}

// Card is a project on a listing
type Card struct {
	Project   *models.Project
	Tags      []string
	MoreTags  int
	DetailURL string
	Motion    motion.Handle
}

// Listing is the project gallery, either a home preview or the full list
type Listing struct {
	Cards   []Card
	Preview bool
	Total   int
}

// Detail is the project detail view. Project is nil when the id is unknown.
type Detail struct {
	ID      string
	Project *models.Project
}

// Found reports whether the requested project exists
func (d *Detail) Found() bool {
	return d.Project != nil
}
