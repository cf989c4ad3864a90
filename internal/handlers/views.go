package handlers

import (
	"net/http"
	"strconv"
	"time"

	"taskflow/internal/models"
)

// ListView returns the tasks grouped into today, upcoming, someday and
// completed.
func (h *Handlers) ListView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.live.List())
}

// BoardView returns the kanban columns.
func (h *Handlers) BoardView(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.live.Board())
}

// CalendarView returns the open tasks of one month keyed by due date.
// The month defaults to the current one.
func (h *Handlers) CalendarView(w http.ResponseWriter, r *http.Request) {
	today := h.today()
	year, month := today.Year, today.Month

	if v := r.URL.Query().Get("month"); v != "" {
		t, err := time.Parse("2006-01", v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "month must be YYYY-MM")
			return
		}
		year, month = t.Year(), t.Month()
	}

	respondJSON(w, http.StatusOK, h.live.Calendar(year, month))
}

// SearchResult is a matching task with its project's display name.
type SearchResult struct {
	models.Task
	ProjectName string `json:"projectName"`
}

// Search returns the tasks matching q in text, description or notes.
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	matches := h.live.Search(r.URL.Query().Get("q"))

	results := make([]SearchResult, 0, len(matches))
	for _, task := range matches {
		name := h.ws.ProjectName(task.Project)
		if name == "" {
			name = "No project"
		}
		results = append(results, SearchResult{Task: task, ProjectName: name})
	}

	respondJSON(w, http.StatusOK, results)
}

// Stats returns the sidebar statistics.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.live.Stats())
}

type preferences struct {
	DarkMode bool `json:"darkMode"`
}

// GetPreferences returns the stored UI preferences.
func (h *Handlers) GetPreferences(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, preferences{DarkMode: h.ws.DarkMode()})
}

// UpdatePreferences stores the UI preferences.
func (h *Handlers) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	dark, err := strconv.ParseBool(r.FormValue("dark_mode"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "dark_mode must be true or false")
		return
	}

	if err := h.ws.SetDarkMode(r.Context(), dark); err != nil {
		respondServerError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, preferences{DarkMode: dark})
}
