package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"taskflow/internal/models"
	"taskflow/internal/quickadd"
	"taskflow/internal/workspace"
)

// ListTasks returns all tasks in insertion order.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.ws.Tasks())
}

// GetTask returns a single task.
func (h *Handlers) GetTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	task, ok := h.ws.Task(id)
	if !ok {
		respondError(w, http.StatusNotFound, "task not found")
		return
	}
	respondJSON(w, http.StatusOK, task)
}

// CreateTask creates a new task.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	dueDate, err := parseDate(r.FormValue("due_date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid due_date")
		return
	}

	opts := workspace.CreateOptions{
		Priority:    models.Priority(r.FormValue("priority")),
		DueDate:     dueDate,
		Project:     strings.TrimSpace(r.FormValue("project")),
		Status:      models.Status(r.FormValue("status")),
		Description: r.FormValue("description"),
		Notes:       r.FormValue("notes"),
	}
	for _, v := range r.Form["tags"] {
		opts.Tags = append(opts.Tags, strings.Split(v, ",")...)
	}

	task, err := h.ws.CreateTask(ctx, r.FormValue("text"), opts)
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// QuickAddTask creates a task from a one-line entry.
func (h *Handlers) QuickAddTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	entry := quickadd.Parse(r.FormValue("line"), h.today())
	task, err := h.ws.CreateTask(ctx, entry.Text, workspace.CreateOptions{
		Priority: entry.Priority,
		DueDate:  entry.DueDate,
		Project:  entry.Project,
		Tags:     entry.Tags,
	})
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, task)
}

// UpdateTask updates the submitted fields of an existing task. An empty
// due_date clears the due date.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	var patch workspace.Patch
	if v, ok := formValue(r, "text"); ok {
		patch.Text = &v
	}
	if v, ok := formValue(r, "description"); ok {
		patch.Description = &v
	}
	if v, ok := formValue(r, "notes"); ok {
		patch.Notes = &v
	}
	if v, ok := formValue(r, "project"); ok {
		patch.Project = &v
	}
	if v, ok := formValue(r, "priority"); ok {
		p := models.Priority(v)
		patch.Priority = &p
	}
	if v, ok := formValue(r, "status"); ok {
		st := models.Status(v)
		patch.Status = &st
	}
	if v, ok := formValue(r, "due_date"); ok {
		due, err := parseDate(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid due_date")
			return
		}
		patch.DueDate = due
		patch.ClearDueDate = due == nil
	}

	task, err := h.ws.UpdateTask(ctx, id, patch)
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := h.ws.DeleteTask(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWorkspaceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ToggleTask toggles the completion status of a task.
func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	task, err := h.ws.ToggleCompletion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// MoveTask moves a task to another board column.
func (h *Handlers) MoveTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	status := models.Status(r.FormValue("status"))
	task, err := h.ws.MoveToStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// AddSubtask appends a subtask to a task.
func (h *Handlers) AddSubtask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	task, err := h.ws.AddSubtask(r.Context(), chi.URLParam(r, "id"), r.FormValue("text"))
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// ToggleSubtask toggles the subtask at the given position.
func (h *Handlers) ToggleSubtask(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndex(r, "index")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid subtask index")
		return
	}

	task, err := h.ws.ToggleSubtask(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// RemoveSubtask deletes the subtask at the given position.
func (h *Handlers) RemoveSubtask(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndex(r, "index")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid subtask index")
		return
	}

	task, err := h.ws.RemoveSubtask(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// AddTag attaches a tag to a task.
func (h *Handlers) AddTag(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	task, err := h.ws.AddTag(r.Context(), chi.URLParam(r, "id"), r.FormValue("tag"))
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}

// RemoveTag removes the tag at the given position.
func (h *Handlers) RemoveTag(w http.ResponseWriter, r *http.Request) {
	index, err := parseIndex(r, "index")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid tag index")
		return
	}

	task, err := h.ws.RemoveTag(r.Context(), chi.URLParam(r, "id"), index)
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, task)
}
