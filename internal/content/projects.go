package content

import (
	"fmt"
	"io/fs"
	"regexp"

	"gopkg.in/yaml.v3"

	"tanvir.dev/internal/models"
)

const projectsFile = "projects.yaml"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// LoadProjects reads projects.yaml, validates it and renders the narrative fields
func LoadProjects(fsys fs.FS) (*models.ProjectList, error) {
	data, err := fs.ReadFile(fsys, projectsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", projectsFile, err)
	}

	var projects models.ProjectList
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", projectsFile, err)
	}

	if err := Validate(&projects); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", projectsFile, err)
	}

	for i := range projects.Projects {
		if err := renderProject(&projects.Projects[i]); err != nil {
			return nil, fmt.Errorf("project %q: %w", projects.Projects[i].ID, err)
		}
	}

	return &projects, nil
}

// Validate checks the registry invariants: every record has a slug id and a
// title, and ids are pairwise distinct
func Validate(projects *models.ProjectList) error {
	seen := make(map[string]int, len(projects.Projects))
	for i, p := range projects.Projects {
		if !slugPattern.MatchString(p.ID) {
			return fmt.Errorf("project #%d: id %q is not a slug", i+1, p.ID)
		}
		if p.Title == "" {
			return fmt.Errorf("project %q: missing title", p.ID)
		}
		if first, dup := seen[p.ID]; dup {
			return fmt.Errorf("duplicate project id %q (entries #%d and #%d)", p.ID, first+1, i+1)
		}
		seen[p.ID] = i
	}
	return nil
}

func renderProject(p *models.Project) error {
	var err error
	if p.DescriptionHTML, err = renderMarkdown(p.Description); err != nil {
		return err
	}
	if p.ChallengesHTML, err = renderMarkdown(p.Challenges); err != nil {
		return err
	}
	if p.ImprovementsHTML, err = renderMarkdown(p.Improvements); err != nil {
		return err
	}
	return nil
}
