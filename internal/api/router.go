package api

import (
	"f1-standings-service/internal/api/handlers"
	"f1-standings-service/internal/view"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-http-utils/etag"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(loader handlers.Loader, renderer *view.Renderer) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.GetHead)
	r.Use(corsMiddleware())

	classificationHandler := &handlers.ClassificationHandler{Loader: loader}
	pageHandler := &handlers.PageHandler{Loader: loader, Renderer: renderer}

	r.Get("/health", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api", handlers.Info)
	r.Method(http.MethodGet, "/api/classification", etag.Handler(http.HandlerFunc(classificationHandler.List), false))
	r.Method(http.MethodGet, "/", etag.Handler(http.HandlerFunc(pageHandler.Show), false))

	return r
}
