package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"numclean/internal/config"
	apierrors "numclean/internal/errors"
	"numclean/internal/middleware"
)

// NewRouter assembles the middleware chain and routes.
func NewRouter(cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredLogger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.Metrics)
	if cfg.Server.RateLimit.Enabled {
		r.Use(middleware.RateLimit(cfg.Server.RateLimit.RPS, cfg.Server.RateLimit.Burst))
	}

	errorHandler := apierrors.NewErrorHandler(logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", HealthHandler)
		r.Mount("/coerce", NewCoerceHandler(cfg.Coerce, logger, errorHandler).Routes())
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
