package models

import "html/template"

// Link is a labelled outbound URL
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Hero is the landing banner copy
type Hero struct {
	Name     string        `yaml:"name"`
	Badge    string        `yaml:"badge"`
	Headline []string      `yaml:"headline"`
	Image    string        `yaml:"image"`
	WorkLink string        `yaml:"workLink"`
	CVLink   string        `yaml:"cvLink"`
	Body     template.HTML `yaml:"-"`
}

// Education is one entry of the About education list
type Education struct {
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Year        string `yaml:"year"`
}

// About is the biography copy
type About struct {
	Heading   []string      `yaml:"heading"`
	Image     string        `yaml:"image"`
	WorkLink  string        `yaml:"workLink"`
	Education []Education   `yaml:"education"`
	Body      template.HTML `yaml:"-"`
}

// Skill is a single skill badge
type Skill struct {
	Name       string `yaml:"name"`
	Icon       string `yaml:"icon"`
	InvertDark bool   `yaml:"invertDark"`
}

// SkillGroup is a titled list of skills
type SkillGroup struct {
	Title   string  `yaml:"title"`
	Summary string  `yaml:"summary"`
	Skills  []Skill `yaml:"skills"`
}

// Skills holds both skill groups
type Skills struct {
	Development SkillGroup `yaml:"development"`
	Design      SkillGroup `yaml:"design"`
}

// Contact is the contact section copy. Links are literal and never validated.
type Contact struct {
	Title     string        `yaml:"title"`
	Email     string        `yaml:"email"`
	Phone     string        `yaml:"phone"`
	PhoneLink template.URL  `yaml:"phoneLink"` // tel: links need to bypass URL filtering
	WhatsApp  string        `yaml:"whatsapp"`
	Socials   []Link        `yaml:"socials"`
	Body      template.HTML `yaml:"-"`
}

// NotFound is the copy of the standalone error view
type NotFound struct {
	Code  string        `yaml:"code"`
	Title string        `yaml:"title"`
	Body  template.HTML `yaml:"-"`
}

// SiteCopy bundles the literal copy of every section
type SiteCopy struct {
	Hero     Hero
	About    About
	Skills   Skills
	Contact  Contact
	NotFound NotFound
}
