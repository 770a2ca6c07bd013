// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const accountIDPattern = "/{id:[0-9]+}"

// Init builds the router with the full middleware chain, outermost first.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withSecurityHeaders)
	router.Use(h.withHTTPSRedirect)
	router.Use(h.withCORS())
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"))

	// set before mounting so that sub-routers inherit them
	router.NotFound(RouteNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Get("/", h.index)
	router.Get("/health", h.health)

	router.Route("/accounts", func(r chi.Router) {
		r.Get("/", h.listAccounts)
		r.With(withJSONContentType).Post("/", h.createAccount)

		r.Get(accountIDPattern, h.getAccount)
		r.With(withJSONContentType).Put(accountIDPattern, h.updateAccount)
		r.Delete(accountIDPattern, h.deleteAccount)
	})

	return router
}
