// Sofra - Restaurant Menu Catalog and Recommendation Service
// Copyright 2026 Sofra Kitchen
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sofra-kitchen/sofra

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires the handler set and middleware stack into a chi mux.
type Router struct {
	handler    *Handler
	middleware *Middleware
}

// NewRouter creates a Router.
func NewRouter(handler *Handler, middleware *Middleware) *Router {
	return &Router{
		handler:    handler,
		middleware: middleware,
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	// Health endpoints skip rate limiting so monitoring never trips it.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(PrometheusMetrics())
		r.Use(VisitorIdentity())

		r.Get("/menu", router.handler.Menu)
		r.Get("/menu/categories", router.handler.Categories)
		r.Get("/menu/items/{id}", router.handler.Item)
		r.Post("/menu/items/{id}/view", router.handler.TrackView)
		r.Get("/recommendations", router.handler.Recommendations)
		r.Get("/hours", router.handler.Hours)
	})

	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
	})

	return r
}
