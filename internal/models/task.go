package models

import (
	"errors"
	"strings"
	"time"
)

// Priority represents task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// ParsePriority validates a priority name.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return p, nil
	}
	return "", errors.New("priority must be 'low', 'medium', 'high', or 'urgent'")
}

// Status is the workflow state of a task, one per board column.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// Statuses lists the workflow states in board order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}

// ParseStatus validates a status name. The legacy spelling "inprogress"
// is accepted.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return st, nil
	case "inprogress":
		return StatusInProgress, nil
	}
	return "", errors.New("status must be 'todo', 'in-progress', 'review', or 'done'")
}

// Subtask is a checklist entry inside a task. It has no identity beyond its
// position.
type Subtask struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Task represents a single to-do item.
type Task struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Completed   bool      `json:"completed"`
	Priority    Priority  `json:"priority"`
	DueDate     *Date     `json:"dueDate,omitempty"`
	Project     string    `json:"project,omitempty"`
	Tags        []string  `json:"tags"`
	Subtasks    []Subtask `json:"subtasks"`
	Notes       string    `json:"notes"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate checks that the task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Text) == "" {
		return errors.New("text is required")
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	return nil
}

// SetCompleted sets the completion flag and keeps the status in step.
func (t *Task) SetCompleted(completed bool) {
	t.Completed = completed
	if completed {
		t.Status = StatusDone
	} else {
		t.Status = StatusTodo
	}
}

// SetStatus moves the task to a workflow state and keeps the completion
// flag in step.
func (t *Task) SetStatus(status Status) {
	t.Status = status
	t.Completed = status == StatusDone
}

// Normalize repairs data loaded from storage: a cleared due date becomes
// nil, nil slices become empty, and completed/done are made consistent.
func (t *Task) Normalize() {
	if t.DueDate != nil && t.DueDate.IsZero() {
		t.DueDate = nil
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if t.Subtasks == nil {
		t.Subtasks = []Subtask{}
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}
	if t.Status == "" {
		t.Status = StatusTodo
	}
	if t.Completed || t.Status == StatusDone {
		t.Completed = true
		t.Status = StatusDone
	}
}

// IsOverdue returns true if the task is not completed and its due date is
// before today.
func (t *Task) IsOverdue(today Date) bool {
	if t.Completed || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(today)
}

// HasTag reports whether the task carries the tag (case-sensitive).
func (t *Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// SubtaskProgress returns the number of completed subtasks and the total.
func (t *Task) SubtaskProgress() (done, total int) {
	for _, s := range t.Subtasks {
		if s.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// PriorityOrder returns a numeric value for sorting by priority.
// Lower numbers indicate higher priority.
func (t *Task) PriorityOrder() int {
	switch t.Priority {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 99
	}
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	t.Tags = append([]string{}, t.Tags...)
	t.Subtasks = append([]Subtask{}, t.Subtasks...)
	return t
}
