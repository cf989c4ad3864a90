package models

import (
	"errors"
	"strings"
)

const (
	DefaultProjectIcon  = "fa-folder"
	DefaultProjectColor = "#6366f1"
)

// Project groups tasks for display. Tasks reference projects by ID only.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Validate checks that the project has valid field values.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name is required")
	}
	if p.Color != "" && !strings.HasPrefix(p.Color, "#") {
		return errors.New("color must be a hex value like '#6366f1'")
	}
	return nil
}

// SeedProjects returns the projects a new workspace starts with.
func SeedProjects() []Project {
	return []Project{
		{ID: "work", Name: "Work", Icon: "fa-briefcase", Color: "#6366f1"},
		{ID: "personal", Name: "Personal", Icon: "fa-home", Color: "#10b981"},
		{ID: "shopping", Name: "Shopping", Icon: "fa-shopping-cart", Color: "#f59e0b"},
	}
}
