package views

import (
	"sync"
	"time"

	"taskflow/internal/models"
)

// Live caches the list and board projections of the current collection.
// Refresh recomputes both; readers recompute the list again once the day
// has changed since the last refresh.
type Live struct {
	mu       sync.RWMutex
	today    func() models.Date
	tasks    []models.Task
	projects []models.Project
	day      models.Date
	list     ListView
	board    Board
}

// NewLive returns an empty projection cache. today defaults to
// models.Today.
func NewLive(today func() models.Date) *Live {
	if today == nil {
		today = models.Today
	}
	l := &Live{today: today}
	l.Refresh(nil, nil)
	return l
}

// Refresh recomputes every projection from tasks and projects. It is meant
// to be registered as a workspace listener.
func (l *Live) Refresh(tasks []models.Task, projects []models.Project) {
	day := l.today()
	list := GroupedList(tasks, day)
	board := KanbanColumns(tasks)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks = tasks
	l.projects = projects
	l.day = day
	l.list = list
	l.board = board
}

// List returns the grouped list, regrouping first if the day rolled over.
func (l *Live) List() ListView {
	day := l.today()

	l.mu.RLock()
	if l.day == day {
		defer l.mu.RUnlock()
		return l.list
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.day != day {
		l.list = GroupedList(l.tasks, day)
		l.day = day
	}
	return l.list
}

// Board returns the kanban columns.
func (l *Live) Board() Board {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.board
}

// Calendar indexes the cached tasks for one month.
func (l *Live) Calendar(year int, month time.Month) Calendar {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return CalendarIndex(l.tasks, year, month)
}

// Search runs a search over the cached tasks.
func (l *Live) Search(query string) []models.Task {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Search(l.tasks, query)
}

// Stats summarizes the cached tasks.
func (l *Live) Stats() Stats {
	day := l.today()
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Summarize(l.tasks, day)
}

// Projects returns the cached projects with their open task counts.
func (l *Live) Projects() []ProjectSummary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return ProjectSummaries(l.projects, l.tasks)
}
