package workspace

import (
	"context"
	"fmt"
	"strings"

	"taskflow/internal/models"
)

// Projects returns a copy of all projects.
func (w *Workspace) Projects() []models.Project {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]models.Project{}, w.projects...)
}

// Project returns the project with the given id.
func (w *Workspace) Project(id string) (models.Project, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range w.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// ProjectName returns the display name of a project, or "" for an unknown
// or empty id.
func (w *Workspace) ProjectName(id string) string {
	if id == "" {
		return ""
	}
	p, ok := w.Project(id)
	if !ok {
		return ""
	}
	return p.Name
}

// CreateProject adds a project. Icon and color fall back to the defaults
// when blank.
func (w *Workspace) CreateProject(ctx context.Context, name, icon, color string) (models.Project, error) {
	p := models.Project{
		Name:  strings.TrimSpace(name),
		Icon:  strings.TrimSpace(icon),
		Color: strings.TrimSpace(color),
	}
	if p.Icon == "" {
		p.Icon = models.DefaultProjectIcon
	}
	if p.Color == "" {
		p.Color = models.DefaultProjectColor
	}
	if err := p.Validate(); err != nil {
		return models.Project{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	err := w.mutateProjects(ctx, func(projects []models.Project) ([]models.Project, error) {
		p.ID = w.issueID()
		return append(projects, p), nil
	})
	if err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// DeleteProject removes a project. Tasks referring to it keep the id and
// show as having no project.
func (w *Workspace) DeleteProject(ctx context.Context, id string) error {
	return w.mutateProjects(ctx, func(projects []models.Project) ([]models.Project, error) {
		for i, p := range projects {
			if p.ID == id {
				return append(projects[:i], projects[i+1:]...), nil
			}
		}
		return nil, fmt.Errorf("%w: project %s", ErrNotFound, id)
	})
}
