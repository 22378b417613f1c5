// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)

	router.Get("/api/version", h.getVersion)

	// routes bound to a browser session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.index)
		r.Post("/notes", h.createNote)
		r.Post("/notes/{id}/delete", h.deleteNote)
		r.Post("/image", h.uploadImage)
		r.Post("/signout", h.signOut)

		r.Get("/api/notes", h.listNotes)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
