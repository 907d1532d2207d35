// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// Init builds the router with every /api route and the middleware chain.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(withCORS)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZipRequest)
	router.Use(middleware.Compress(5, utils.ContentTypeJSON))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/init-db", h.initDB)
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/version", h.getServerVersion)

		r.Group(func(r chi.Router) {
			r.Use(withOwner)

			r.Route("/passwords", func(r chi.Router) {
				r.Get("/", h.listSecrets)
				r.Post("/", h.addSecret)
				r.Put("/{id}", h.updateSecret)
				r.Delete("/{id}", h.softDeleteSecret)
				r.Delete("/{id}/permanent", h.hardDeleteSecret)
				r.Post("/{id}/restore", h.restoreSecret)
				r.Patch("/{id}/favorite", h.toggleFavorite)
			})

			r.Get("/trash", h.listTrash)
			r.Delete("/trash", h.emptyTrash)

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.listCategories)
				r.Post("/", h.createCategory)
				r.Put("/{id}", h.updateCategory)
				r.Delete("/{id}", h.deleteCategory)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod())

	return router
}
