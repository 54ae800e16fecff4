// Marquee - Movie Recommendations by Genre, Mood and Content Similarity
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/marquee/internal/auth"
	"github.com/tomtom215/marquee/internal/config"
	"github.com/tomtom215/marquee/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	authService   *auth.Service
	requireAuth   bool
}

// NewRouter creates a Router from the security section of the config.
func NewRouter(handler *Handler, security *config.SecurityConfig, authService *auth.Service) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(security)),
		authService:   authService,
		requireAuth:   security.RequireAuth,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)        // X-Request-ID header and logging context
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(middleware.AccessLog)        // One structured line per request
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	r.With(middleware.PrometheusMetrics).Get("/health", router.handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", router.handler.Register)
			r.Post("/login", router.handler.Login)
			r.Get("/check", router.handler.CheckLogin)
		})

		r.Route("/movies", func(r chi.Router) {
			r.Get("/titles", router.handler.Titles)
			r.Get("/suggest", router.handler.Suggest)

			r.Group(func(r chi.Router) {
				r.Use(RequireAuth(router.authService, router.requireAuth))
				r.Get("/top-rated", router.handler.TopRated)
				r.Get("/trending", router.handler.Trending)
				r.Get("/details", router.handler.Details)
			})
		})

		r.Route("/recommendations", func(r chi.Router) {
			r.Use(RequireAuth(router.authService, router.requireAuth))
			r.Get("/content", router.handler.ContentRecommendations)
			r.Post("/genre", router.handler.GenreRecommendations)
			r.Post("/mood", router.handler.MoodRecommendations)
		})
	})

	return r
}
