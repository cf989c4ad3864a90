package workspace

import (
	"context"
	"fmt"
	"strings"

	"taskflow/internal/models"
)

// AddSubtask appends an unchecked subtask.
func (w *Workspace) AddSubtask(ctx context.Context, id, text string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Task{}, fmt.Errorf("%w: subtask text is required", ErrInvalidInput)
	}
	return w.updateOne(ctx, id, func(t *models.Task) error {
		t.Subtasks = append(t.Subtasks, models.Subtask{Text: text})
		return nil
	})
}

// ToggleSubtask flips the completion flag of the subtask at index.
func (w *Workspace) ToggleSubtask(ctx context.Context, id string, index int) (models.Task, error) {
	return w.updateOne(ctx, id, func(t *models.Task) error {
		if index < 0 || index >= len(t.Subtasks) {
			return fmt.Errorf("%w: subtask %d", ErrIndexOutOfRange, index)
		}
		t.Subtasks[index].Completed = !t.Subtasks[index].Completed
		return nil
	})
}

// RemoveSubtask deletes the subtask at index. Later subtasks shift down.
func (w *Workspace) RemoveSubtask(ctx context.Context, id string, index int) (models.Task, error) {
	return w.updateOne(ctx, id, func(t *models.Task) error {
		if index < 0 || index >= len(t.Subtasks) {
			return fmt.Errorf("%w: subtask %d", ErrIndexOutOfRange, index)
		}
		t.Subtasks = append(t.Subtasks[:index], t.Subtasks[index+1:]...)
		return nil
	})
}

// AddTag attaches a tag. Tags are trimmed; a blank tag or one the task
// already carries is rejected with ErrInvalidInput.
func (w *Workspace) AddTag(ctx context.Context, id, tag string) (models.Task, error) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return models.Task{}, fmt.Errorf("%w: tag is required", ErrInvalidInput)
	}
	return w.updateOne(ctx, id, func(t *models.Task) error {
		if t.HasTag(tag) {
			return fmt.Errorf("%w: duplicate tag %q", ErrInvalidInput, tag)
		}
		t.Tags = append(t.Tags, tag)
		return nil
	})
}

// RemoveTag deletes the tag at index.
func (w *Workspace) RemoveTag(ctx context.Context, id string, index int) (models.Task, error) {
	return w.updateOne(ctx, id, func(t *models.Task) error {
		if index < 0 || index >= len(t.Tags) {
			return fmt.Errorf("%w: tag %d", ErrIndexOutOfRange, index)
		}
		t.Tags = append(t.Tags[:index], t.Tags[index+1:]...)
		return nil
	})
}
