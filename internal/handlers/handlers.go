package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"taskflow/internal/models"
	"taskflow/internal/views"
	"taskflow/internal/workspace"
)

// Handlers holds the HTTP handlers and their dependencies.
type Handlers struct {
	ws    *workspace.Workspace
	live  *views.Live
	today func() models.Date
}

// New creates a new Handlers instance. The projection cache must already be
// subscribed to the workspace.
func New(ws *workspace.Workspace, live *views.Live, today func() models.Date) *Handlers {
	if today == nil {
		today = models.Today
	}
	return &Handlers{
		ws:    ws,
		live:  live,
		today: today,
	}
}

// parseIndex extracts a list position from URL parameters.
func parseIndex(r *http.Request, param string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, param))
}

// parseDate parses a form date in YYYY-MM-DD format. Blank input is no date.
func parseDate(s string) (*models.Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// formValue returns the submitted value and whether the field was present.
func formValue(r *http.Request, key string) (string, bool) {
	if _, ok := r.Form[key]; !ok {
		return "", false
	}
	return r.Form.Get(key), true
}

func respondJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"error": message})
}

func respondServerError(w http.ResponseWriter, err error) {
	log.Printf("internal server error: %v", err)
	respondError(w, http.StatusInternalServerError, "internal server error")
}

// respondWorkspaceError maps workspace sentinel errors to status codes.
func respondWorkspaceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, workspace.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, workspace.ErrInvalidInput), errors.Is(err, workspace.ErrIndexOutOfRange):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		respondServerError(w, err)
	}
}
