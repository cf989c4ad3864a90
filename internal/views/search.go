package views

import (
	"math"
	"strings"

	"taskflow/internal/models"
)

// Search returns the tasks whose text, description or notes contain query,
// ignoring case. An empty query matches nothing.
func Search(tasks []models.Task, query string) []models.Task {
	results := []models.Task{}
	if query == "" {
		return results
	}
	q := strings.ToLower(query)
	for _, task := range tasks {
		if strings.Contains(strings.ToLower(task.Text), q) ||
			strings.Contains(strings.ToLower(task.Description), q) ||
			strings.Contains(strings.ToLower(task.Notes), q) {
			results = append(results, task)
		}
	}
	return results
}

// Stats summarizes the workspace for the sidebar.
type Stats struct {
	CompletedToday int `json:"completedToday"`
	Pending        int `json:"pending"`
	Total          int `json:"total"`
	CompletionRate int `json:"completionRate"`
}

// Summarize computes the workspace stats. CompletedToday counts completed
// tasks that were created today; tasks carry no completion timestamp.
func Summarize(tasks []models.Task, today models.Date) Stats {
	var s Stats
	completed := 0
	for _, task := range tasks {
		if !task.Completed {
			s.Pending++
			continue
		}
		completed++
		if models.DateOf(task.CreatedAt.Local()) == today {
			s.CompletedToday++
		}
	}
	s.Total = len(tasks)
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(completed) / float64(s.Total) * 100))
	}
	return s
}

// ProjectSummary is a project with its count of open tasks.
type ProjectSummary struct {
	models.Project
	OpenTasks int `json:"openTasks"`
}

// ProjectSummaries counts open tasks per project, in project order.
func ProjectSummaries(projects []models.Project, tasks []models.Task) []ProjectSummary {
	open := make(map[string]int)
	for _, task := range tasks {
		if !task.Completed && task.Project != "" {
			open[task.Project]++
		}
	}
	out := make([]ProjectSummary, len(projects))
	for i, p := range projects {
		out[i] = ProjectSummary{Project: p, OpenTasks: open[p.ID]}
	}
	return out
}
