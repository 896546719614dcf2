// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The TaskDesk Authors

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskdesk/taskdesk/models"
)

// Init builds the router with the full middleware chain.
//
// Route groups:
//   - /api/auth/* is open: these are the only entry points for
//     unauthenticated callers.
//   - /api/me and /api/tasks require a valid bearer token; ownership checks
//     happen in the task service.
//   - /api/users additionally requires the admin role.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes for any authenticated caller
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/me", h.me)
		r.Patch("/api/me", h.updateMe)

		r.Post("/api/tasks", h.createTask)
		r.Get("/api/tasks", h.listTasks)
		r.Get("/api/tasks/{taskID}", h.getTask)
		r.Patch("/api/tasks/{taskID}", h.updateTask)
		r.Delete("/api/tasks/{taskID}", h.deleteTask)
	})

	// admin-only routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.requireRoles(models.RoleAdmin))

		r.Get("/api/users", h.listUsers)
	})

	return router
}
