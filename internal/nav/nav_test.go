package nav

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItems(t *testing.T) {
	items := Items()
	require.Len(t, items, 5)

	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}
	assert.Equal(t, []string{"Home", "About", "Skill", "Project", "Contact"}, labels)
}

func TestIsActiveExact(t *testing.T) {
	tests := []struct {
		item, current string
		want          bool
	}{
		{"/", "/", true},
		{"/about", "/about", true},
		{"/project", "/project", true},
		{"/project", "/project/food-ordering-platform", false},
		{"/", "/about", false},
		{"/about", "/about/", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsActive(ExactMatch, tt.item, tt.current), "%s on %s", tt.item, tt.current)
	}
}

func TestIsActiveSection(t *testing.T) {
	tests := []struct {
		item, current string
		want          bool
	}{
		{"/project", "/project", true},
		{"/project", "/project/food-ordering-platform", true},
		{"/project", "/projects", false},
		{"/", "/about", false},
		{"/", "/", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsActive(SectionMatch, tt.item, tt.current), "%s on %s", tt.item, tt.current)
	}
}

func TestBuildMarksSingleEntry(t *testing.T) {
	for _, it := range Items() {
		shell := Build(it.Path, Menu{}, ExactMatch, "")
		active := shell.Active()
		require.Len(t, active, 1, it.Path)
		assert.Equal(t, it, active[0])
	}
}

func TestBuildDetailPath(t *testing.T) {
	shell := Build("/project/food-ordering-platform", Menu{}, ExactMatch, "")
	assert.Empty(t, shell.Active())

	shell = Build("/project/food-ordering-platform", Menu{}, SectionMatch, "")
	require.Len(t, shell.Active(), 1)
	assert.Equal(t, "Project", shell.Active()[0].Label)
}

func TestMenuToggleThenSelect(t *testing.T) {
	var m Menu
	m.Toggle()
	assert.True(t, m.Open)

	about := Items()[1]
	path := m.Select(about)
	assert.False(t, m.Open)
	assert.Equal(t, "/about", path)
}

func TestMenuClose(t *testing.T) {
	m := Menu{Open: true}
	m.Close()
	assert.False(t, m.Open)
	m.Toggle()
	m.Toggle()
	assert.False(t, m.Open)
}

func TestMenuFromQuery(t *testing.T) {
	assert.True(t, MenuFromQuery(url.Values{"menu": {"open"}}).Open)
	assert.False(t, MenuFromQuery(url.Values{"menu": {"closed"}}).Open)
	assert.False(t, MenuFromQuery(url.Values{}).Open)
}

func TestToggleURL(t *testing.T) {
	closed := Build("/about", Menu{}, ExactMatch, "")
	assert.Equal(t, "/about?menu=open", closed.ToggleURL())

	open := Build("/about", Menu{Open: true}, ExactMatch, "")
	assert.Equal(t, "/about", open.ToggleURL())
	assert.True(t, open.Menu.Open, "ToggleURL must not change the shell")
}

func TestToggleURLEscapesPath(t *testing.T) {
	closed := Build("/project/a?b", Menu{}, ExactMatch, "")
	assert.Equal(t, "/project/a%3Fb?menu=open", closed.ToggleURL())

	open := Build("/project/a?b", Menu{Open: true}, ExactMatch, "")
	assert.Equal(t, "/project/a%3Fb", open.ToggleURL())

	u, err := url.Parse(closed.ToggleURL())
	require.NoError(t, err)
	assert.Equal(t, "/project/a?b", u.Path)
	assert.Equal(t, MenuOpenValue, u.Query().Get(MenuParam))
}
