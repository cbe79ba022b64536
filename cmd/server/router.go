package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/tasks-api/internal/api"
	apiMiddleware "github.com/phrazzld/tasks-api/internal/api/middleware"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	// The rate limiter keys on RemoteAddr, so forwarding headers are only
	// honoured when a trusted proxy sets them.
	if app.config.Server.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.Recoverer)
	r.Use(apiMiddleware.SecurityHeaders)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Retry-After", apiMiddleware.TraceHeader},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.Metrics)
	r.Use(middleware.Timeout(app.config.Server.RequestTimeout()))

	// Registered before any sub-router so mounts inherit them.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	errs := api.NewErrorHandler(app.config.Server.IsDevelopment())
	authHandler := api.NewAuthHandler(app.userService, errs)
	taskHandler := api.NewTaskHandler(app.taskService, errs)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.identityResolver)

	var pinger api.Pinger
	if app.db != nil {
		pinger = app.db
	}
	healthHandler := api.NewHealthHandler(pinger)

	// Probes and metrics are exempt from rate limiting and body limits.
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(apiMiddleware.BodyLimit(app.config.Server.MaxBodyBytes))
		if app.limiter != nil {
			r.Use(apiMiddleware.RateLimit(app.limiter))
		}

		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		r.Route("/tasks", func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Get("/stats/summary", taskHandler.Stats)
			r.Get("/{id}", taskHandler.Get)
			r.Put("/{id}", taskHandler.Update)
			r.Delete("/{id}", taskHandler.Delete)
		})
	})

	return r
}
