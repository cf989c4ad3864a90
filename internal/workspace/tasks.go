package workspace

import (
	"context"
	"fmt"
	"strings"

	"taskflow/internal/models"
)

// CreateOptions are the optional fields of a new task.
type CreateOptions struct {
	Priority    models.Priority
	DueDate     *models.Date
	Project     string
	Tags        []string
	Status      models.Status
	Description string
	Notes       string
}

// Patch lists the fields an update changes. Nil fields are left alone.
type Patch struct {
	Text         *string
	Description  *string
	Notes        *string
	Priority     *models.Priority
	DueDate      *models.Date
	ClearDueDate bool
	Project      *string
	Status       *models.Status
}

// Tasks returns a copy of all tasks in insertion order.
func (w *Workspace) Tasks() []models.Task {
	w.mu.Lock()
	defer w.mu.Unlock()
	return cloneTasks(w.tasks)
}

// Task returns a copy of the task with the given id.
func (w *Workspace) Task(id string) (models.Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := indexOf(w.tasks, id); i >= 0 {
		return w.tasks[i].Clone(), true
	}
	return models.Task{}, false
}

// CreateTask appends a new task. Blank text is rejected with
// ErrInvalidInput and leaves the workspace unchanged.
func (w *Workspace) CreateTask(ctx context.Context, text string, opts CreateOptions) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	task := models.Task{
		Text:        text,
		Priority:    models.PriorityMedium,
		Project:     opts.Project,
		Tags:        []string{},
		Subtasks:    []models.Subtask{},
		Notes:       opts.Notes,
		Description: opts.Description,
		Status:      models.StatusTodo,
		CreatedAt:   w.now().UTC(),
	}
	if opts.Priority != "" {
		p, err := models.ParsePriority(string(opts.Priority))
		if err != nil {
			return models.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		task.Priority = p
	}
	if opts.Status != "" {
		st, err := models.ParseStatus(string(opts.Status))
		if err != nil {
			return models.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		task.SetStatus(st)
	}
	for _, tag := range opts.Tags {
		tag = strings.TrimSpace(tag)
		if tag != "" && !task.HasTag(tag) {
			task.Tags = append(task.Tags, tag)
		}
	}
	if opts.DueDate != nil && !opts.DueDate.IsZero() {
		due := *opts.DueDate
		task.DueDate = &due
	}

	err := w.mutateTasks(ctx, func(tasks []models.Task) ([]models.Task, error) {
		task.ID = w.issueID()
		return append(tasks, task), nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return task.Clone(), nil
}

// UpdateTask merges patch into the task. A patch with blank text or an
// unknown priority or status is rejected as a whole.
func (w *Workspace) UpdateTask(ctx context.Context, id string, patch Patch) (models.Task, error) {
	var text string
	if patch.Text != nil {
		text = strings.TrimSpace(*patch.Text)
		if text == "" {
			return models.Task{}, fmt.Errorf("%w: text is required", ErrInvalidInput)
		}
	}
	var priority models.Priority
	if patch.Priority != nil {
		p, err := models.ParsePriority(string(*patch.Priority))
		if err != nil {
			return models.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		priority = p
	}
	var status models.Status
	if patch.Status != nil {
		st, err := models.ParseStatus(string(*patch.Status))
		if err != nil {
			return models.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		status = st
	}

	return w.updateOne(ctx, id, func(t *models.Task) error {
		if patch.Text != nil {
			t.Text = text
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Notes != nil {
			t.Notes = *patch.Notes
		}
		if patch.Priority != nil {
			t.Priority = priority
		}
		if patch.ClearDueDate {
			t.DueDate = nil
		} else if patch.DueDate != nil && !patch.DueDate.IsZero() {
			due := *patch.DueDate
			t.DueDate = &due
		}
		if patch.Project != nil {
			t.Project = strings.TrimSpace(*patch.Project)
		}
		if patch.Status != nil {
			t.SetStatus(status)
		}
		return nil
	})
}

// DeleteTask removes the task with the given id, keeping the order of the
// remaining tasks.
func (w *Workspace) DeleteTask(ctx context.Context, id string) error {
	return w.mutateTasks(ctx, func(tasks []models.Task) ([]models.Task, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: task %s", ErrNotFound, id)
		}
		return append(tasks[:i], tasks[i+1:]...), nil
	})
}

// ToggleCompletion flips the completion flag; the status follows (done or
// todo).
func (w *Workspace) ToggleCompletion(ctx context.Context, id string) (models.Task, error) {
	return w.updateOne(ctx, id, func(t *models.Task) error {
		t.SetCompleted(!t.Completed)
		return nil
	})
}

// MoveToStatus moves the task to a board column; the completion flag
// follows.
func (w *Workspace) MoveToStatus(ctx context.Context, id string, status models.Status) (models.Task, error) {
	st, err := models.ParseStatus(string(status))
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return w.updateOne(ctx, id, func(t *models.Task) error {
		t.SetStatus(st)
		return nil
	})
}

// updateOne applies fn to the task with the given id and persists.
func (w *Workspace) updateOne(ctx context.Context, id string, fn func(t *models.Task) error) (models.Task, error) {
	var updated models.Task
	err := w.mutateTasks(ctx, func(tasks []models.Task) ([]models.Task, error) {
		i := indexOf(tasks, id)
		if i < 0 {
			return nil, fmt.Errorf("%w: task %s", ErrNotFound, id)
		}
		if err := fn(&tasks[i]); err != nil {
			return nil, err
		}
		updated = tasks[i].Clone()
		return tasks, nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

func indexOf(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
