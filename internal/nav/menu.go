package nav

import "net/url"

// Query parameter carrying the narrow-viewport menu state between requests
const (
	MenuParam     = "menu"
	MenuOpenValue = "open"
)

// Menu is the collapsible menu of narrow viewports. It lives for one render.
type Menu struct {
	Open bool
}

// MenuFromQuery reads the menu state of a request
func MenuFromQuery(q url.Values) Menu {
	return Menu{Open: q.Get(MenuParam) == MenuOpenValue}
}

// Toggle flips the menu
func (m *Menu) Toggle() {
	m.Open = !m.Open
}

// Close hides the menu
func (m *Menu) Close() {
	m.Open = false
}

// Select closes the menu and returns the path to navigate to
func (m *Menu) Select(it Item) string {
	m.Close()
	return it.Path
}
