package services

import (
	"errors"
	"fmt"

	"tanvir.dev/internal/models"
)

// ErrProjectNotFound is returned when no project carries the requested id
var ErrProjectNotFound = errors.New("project not found")

// ProjectService answers lookups against the read-only project registry
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	return s.projects.Projects
}

// Count returns the registry size
func (s *ProjectService) Count() int {
	return len(s.projects.Projects)
}

// Preview returns the first n projects, or all of them when n is negative
// or larger than the registry
func (s *ProjectService) Preview(n int) []models.Project {
	all := s.projects.Projects
	if n < 0 || n > len(all) {
		return all
	}
	return all[:n]
}

// GetByID returns a specific project by ID. Matching is exact and case-sensitive.
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].ID == id {
			return &s.projects.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}
