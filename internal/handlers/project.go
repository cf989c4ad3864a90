package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListProjects returns all projects with their open task counts.
func (h *Handlers) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.live.Projects())
}

// CreateProject creates a new project.
func (h *Handlers) CreateProject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	project, err := h.ws.CreateProject(ctx, r.FormValue("name"), r.FormValue("icon"), r.FormValue("color"))
	if err != nil {
		respondWorkspaceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, project)
}

// DeleteProject deletes a project. Its tasks are kept.
func (h *Handlers) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := h.ws.DeleteProject(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondWorkspaceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
