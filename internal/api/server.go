// Copyright (c) 2026 Sanaa. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires the HTTP router, the middleware chain and all domain
handlers into a runnable [http.Server].

Routes:

  - GET  /api/categories, /api/categories/{id}
  - GET  /api/artisans, /api/artisans/{id}
  - POST /api/contact
  - GET  /api/home
  - GET  /health, /ready, /metrics
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/sanaa/internal/core/artisan"
	"github.com/taibuivan/sanaa/internal/core/category"
	"github.com/taibuivan/sanaa/internal/core/contact"
	"github.com/taibuivan/sanaa/internal/core/home"
	"github.com/taibuivan/sanaa/internal/directory"
	"github.com/taibuivan/sanaa/internal/platform/apperr"
	"github.com/taibuivan/sanaa/internal/platform/config"
	"github.com/taibuivan/sanaa/internal/platform/constants"
	"github.com/taibuivan/sanaa/internal/platform/metrics"
	"github.com/taibuivan/sanaa/internal/platform/middleware"
	"github.com/taibuivan/sanaa/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler.
	Readiness http.HandlerFunc

	Category *category.Handler
	Artisan  *artisan.Handler
	Contact  *contact.Handler
	Home     *home.Handler
}

// Dependencies are the collaborators the domain handlers are built from.
type Dependencies struct {
	Store           directory.Repository
	Cooldown        contact.Cooldown
	ContactCooldown time.Duration
	Metrics         *metrics.Collector
	Health          HealthDependencies
}

// NewHandlers builds every domain handler on top of one Directory Store.
func NewHandlers(deps Dependencies, log *slog.Logger) Handlers {
	liveness, readiness := NewHealthHandlers(deps.Health, log)

	return Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Category:  category.NewHandler(category.NewService(deps.Store, log)),
		Artisan:   artisan.NewHandler(artisan.NewService(deps.Store, log), deps.Metrics),
		Contact: contact.NewHandler(contact.NewService(
			deps.Store, deps.Cooldown, deps.ContactCooldown, deps.Metrics, log,
		)),
		Home: home.NewHandler(home.NewService(deps.Store, deps.Store)),
	}
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. ctx bounds background middleware work.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, collector *metrics.Collector, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.PanicRecovery())
	if collector != nil {
		r.Use(middleware.Metrics(collector))
	}
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(ctx))
	r.Use(middleware.CORS(cfg, cfg.AllowedOriginSuffix))
	r.Use(chimw.CleanPath)
	r.Use(middleware.Language())

	r.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		respond.Error(writer, request, apperr.NotFound("Route"))
	})

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if collector != nil {
		r.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Mount("/categories", h.Category.Routes())
		api.Mount("/artisans", h.Artisan.Routes())
		api.Mount("/contact", h.Contact.Routes())
		api.Mount("/home", h.Home.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
