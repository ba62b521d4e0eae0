package views

import (
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tanvir.dev/internal/models"
	"tanvir.dev/internal/motion"
	"tanvir.dev/internal/nav"
	"tanvir.dev/internal/services"
	"tanvir.dev/internal/site"
)

// Options tune composition
type Options struct {
	SiteTitle  string
	Owner      string
	CVURL      string
	ActiveRule nav.ActiveRule
	Now        func() time.Time
}

// Composer assembles the view model of a page from the registry and the page copy
type Composer struct {
	projects *services.ProjectService
	copy     *models.SiteCopy
	opts     Options
}

// NewComposer creates a new Composer
func NewComposer(ps *services.ProjectService, siteCopy *models.SiteCopy, opts Options) *Composer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Composer{projects: ps, copy: siteCopy, opts: opts}
}

// sectionsOf lists the sections of a page in render order
func sectionsOf(p site.Page) []string {
	switch p {
	case site.PageHome:
		return HomeSections
	case site.PageAbout:
		return []string{"about"}
	case site.PageSkills:
		return []string{"skills"}
	case site.PageProjects:
		return []string{"projects"}
	case site.PageContact:
		return []string{"contact"}
	case site.PageProjectDetail:
		return []string{"detail"}
	}
	return []string{"error"}
}

// ListingLimit derives the listing size from the page that composes it:
// a preview on the home page, the whole registry elsewhere (-1)
func ListingLimit(p site.Page) int {
	if p == site.PageHome {
		return PreviewLimit
	}
	return -1
}

// Compose builds the view model for a resolved request
func (c *Composer) Compose(m site.Match, path string, menu nav.Menu) *PageData {
	col := motion.NewCollector("m")
	d := &PageData{
		Page:     m.Page,
		Path:     path,
		Copy:     c.copy,
		Sections: sectionsOf(m.Page),
		Handles:  make(map[string]motion.Handle),
		Site: SiteInfo{
			Title: c.opts.SiteTitle,
			Owner: c.opts.Owner,
			Year:  c.opts.Now().Year(),
		},
	}

	if !m.Page.Standalone() {
		d.Nav = nav.Build(path, menu, c.opts.ActiveRule, c.opts.CVURL)
		d.Handles["header"] = col.Add("header", motion.HeaderDrop())
		d.Handles["logo"] = col.Add("logo", motion.LogoSpin())
		for i := range d.Nav.Items {
			d.Handles[fmt.Sprintf("nav-%d", i)] = col.Add("nav-item", motion.NavItem(i))
		}
	}

	for _, section := range d.Sections {
		c.composeSection(d, m, section, col)
	}

	d.Title = c.title(d)
	d.Motion = col.Drain()
	return d
}

func (c *Composer) composeSection(d *PageData, m site.Match, section string, col *motion.Collector) {
	switch section {
	case "hero":
		d.Handles["hero"] = col.Add("hero", motion.EnterUp())
		cta := col.Add("hero-cta", motion.TapPress())
		col.Attach(cta, motion.HoverLift())
		d.Handles["hero-cta"] = cta
	case "about":
		d.Handles["about"] = col.Add("about", motion.FadeUp(0))
	case "skills":
		d.Handles["skills"] = col.Add("skills", motion.FadeUp(0))
		d.Skills = c.skills(col)
	case "projects":
		d.Handles["projects"] = col.Add("projects", motion.FadeUp(0))
		d.Listing = c.listing(m.Page, col)
	case "contact":
		d.Handles["contact"] = col.Add("contact", motion.FadeUp(0))
		d.Handles["contact-submit"] = col.Add("contact-submit", motion.TapPress())
	case "detail":
		d.Detail = c.detail(m.ProjectID)
		d.Handles["detail"] = col.Add("detail", motion.EnterUp())
	case "error":
		d.Handles["error"] = col.Add("error-code", motion.GlitchIn())
	}
}

func (c *Composer) listing(p site.Page, col *motion.Collector) *Listing {
	projects := c.projects.Preview(ListingLimit(p))
	l := &Listing{
		Cards:   make([]Card, len(projects)),
		Preview: p == site.PageHome,
		Total:   c.projects.Count(),
	}
	for i := range projects {
		proj := &projects[i]
		tags := proj.Technologies
		more := 0
		if len(tags) > MaxCardTags {
			more = len(tags) - MaxCardTags
			tags = tags[:MaxCardTags]
		}
		h := col.Add("project-card", motion.CardReveal(i))
		col.Attach(h, motion.HoverLift())
		l.Cards[i] = Card{
			Project:   proj,
			Tags:      tags,
			MoreTags:  more,
			DetailURL: site.ProjectPath(proj.ID),
			Motion:    h,
		}
	}
	return l
}

func (c *Composer) skills(col *motion.Collector) *SkillsView {
	dev := c.copy.Skills.Development
	design := c.copy.Skills.Design
	designSkills := design.Skills
	if len(designSkills) > MaxDesignSkills {
		designSkills = designSkills[:MaxDesignSkills]
	}

	n := 0
	badges := func(skills []models.Skill) []SkillBadge {
		out := make([]SkillBadge, len(skills))
		for i, s := range skills {
			out[i] = SkillBadge{Skill: s, Motion: col.Add("skill", motion.SkillPop(n))}
			n++
		}
		return out
	}

	return &SkillsView{
		Development: SkillGroupView{Title: dev.Title, Summary: dev.Summary, Skills: badges(dev.Skills)},
		Design:      SkillGroupView{Title: design.Title, Summary: design.Summary, Skills: badges(designSkills)},
	}
}

func (c *Composer) detail(id string) *Detail {
	d := &Detail{ID: id}
	if p, err := c.projects.GetByID(id); err == nil {
		d.Project = p
	}
	return d
}

// title builds the document title
func (c *Composer) title(d *PageData) string {
	var label string
	switch d.Page {
	case site.PageHome:
		return c.opts.SiteTitle
	case site.PageProjectDetail:
		if d.Detail != nil && d.Detail.Found() {
			label = d.Detail.Project.Title
		} else {
			label = "Project Not Found"
		}
	case site.PageError:
		label = c.copy.NotFound.Title
	default:
		label = cases.Title(language.English).String(string(d.Page))
	}
	if c.opts.SiteTitle == "" {
		return label
	}
	return label + " | " + c.opts.SiteTitle
}
