// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	router.Use(withGZipRequest, middleware.Compress(gzip.DefaultCompression))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
		r.Get("/api/users/{id}", h.getUser)

		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/{id}", h.getPost)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes acting on behalf of the caller
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/posts", h.createPost)
		r.Put("/api/posts/{id}", h.updatePost)
		r.Delete("/api/posts/{id}", h.deletePost)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errRouteNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
