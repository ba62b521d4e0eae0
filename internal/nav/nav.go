package nav

import (
	"net/url"
	"strings"

	"tanvir.dev/internal/site"
)

// ActiveRule decides which entry is highlighted for the current path
type ActiveRule int

const (
	// ExactMatch highlights an entry only when its path equals the current path
	ExactMatch ActiveRule = iota
	// SectionMatch also highlights an entry for paths below it, so /project/{id} marks "Project"
	SectionMatch
)

// Item is a navigation entry
type Item struct {
	Label string
	Path  string
}

// RenderedItem is an entry ready for the header template
type RenderedItem struct {
	Item
	Active bool
}

// Items returns the navigation entries, in route table order
func Items() []Item {
	items := make([]Item, 0, len(site.Routes))
	for _, rt := range site.Routes {
		items = append(items, Item{Label: rt.Label, Path: rt.Path})
	}
	return items
}

// IsActive applies rule to an entry path and the current path
func IsActive(rule ActiveRule, itemPath, current string) bool {
	if itemPath == current {
		return true
	}
	if rule != SectionMatch || itemPath == "/" {
		return false
	}
	return strings.HasPrefix(current, itemPath+"/")
}

// Shell is the header view model
type Shell struct {
	Items       []RenderedItem
	CV          string
	CurrentPath string
	Menu        Menu
}

// Build renders the header for the current path
func Build(current string, menu Menu, rule ActiveRule, cvURL string) Shell {
	items := Items()
	rendered := make([]RenderedItem, len(items))
	for i, it := range items {
		rendered[i] = RenderedItem{Item: it, Active: IsActive(rule, it.Path, current)}
	}
	return Shell{
		Items:       rendered,
		CV:          cvURL,
		CurrentPath: current,
		Menu:        menu,
	}
}

// Active returns the highlighted entries
func (s Shell) Active() []Item {
	var out []Item
	for _, it := range s.Items {
		if it.Active {
			out = append(out, it.Item)
		}
	}
	return out
}

// ToggleURL is the target of the menu button: the current page with the menu flag flipped
func (s Shell) ToggleURL() string {
	next := s.Menu
	next.Toggle()
	u := url.URL{Path: s.CurrentPath}
	if next.Open {
		u.RawQuery = url.Values{MenuParam: {MenuOpenValue}}.Encode()
	}
	return u.String()
}
