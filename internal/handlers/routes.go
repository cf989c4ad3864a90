package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the API router.
func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Route("/api", func(r chi.Router) {
		// Task routes
		r.Get("/tasks", h.ListTasks)
		r.Post("/tasks", h.CreateTask)
		r.Post("/tasks/quick", h.QuickAddTask)
		r.Get("/tasks/{id}", h.GetTask)
		r.Put("/tasks/{id}", h.UpdateTask)
		r.Delete("/tasks/{id}", h.DeleteTask)
		r.Post("/tasks/{id}/toggle", h.ToggleTask)
		r.Post("/tasks/{id}/status", h.MoveTask)
		r.Post("/tasks/{id}/subtasks", h.AddSubtask)
		r.Post("/tasks/{id}/subtasks/{index}/toggle", h.ToggleSubtask)
		r.Delete("/tasks/{id}/subtasks/{index}", h.RemoveSubtask)
		r.Post("/tasks/{id}/tags", h.AddTag)
		r.Delete("/tasks/{id}/tags/{index}", h.RemoveTag)

		// Project routes
		r.Get("/projects", h.ListProjects)
		r.Post("/projects", h.CreateProject)
		r.Delete("/projects/{id}", h.DeleteProject)

		// Views
		r.Get("/views/list", h.ListView)
		r.Get("/views/board", h.BoardView)
		r.Get("/views/calendar", h.CalendarView)
		r.Get("/search", h.Search)
		r.Get("/stats", h.Stats)

		r.Get("/preferences", h.GetPreferences)
		r.Put("/preferences", h.UpdatePreferences)
	})

	return r
}
