package models

import "html/template"

// PlaceholderLink marks a link that exists in the source data but must not be rendered
const PlaceholderLink = "#"

// Project represents a portfolio project
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Image        string   `json:"image" yaml:"image"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	LiveLink     string   `json:"live_link,omitempty" yaml:"liveLink"`
	CodeLink     string   `json:"code_link,omitempty" yaml:"codeLink"`
	Challenges   string   `json:"challenges" yaml:"challenges"`
	Improvements string   `json:"improvements" yaml:"improvements"`

	// Rendered markdown of the narrative fields, filled once at load time
	DescriptionHTML  template.HTML `json:"-" yaml:"-"`
	ChallengesHTML   template.HTML `json:"-" yaml:"-"`
	ImprovementsHTML template.HTML `json:"-" yaml:"-"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// HasLiveLink reports whether the live demo action should be shown
func (p *Project) HasLiveLink() bool {
	return showLink(p.LiveLink)
}

// HasCodeLink reports whether the source code action should be shown
func (p *Project) HasCodeLink() bool {
	return showLink(p.CodeLink)
}

func showLink(link string) bool {
	return link != "" && link != PlaceholderLink
}
