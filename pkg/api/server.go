// Package api exposes the analytics engine over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dd0wney/cluso-socialgraph/pkg/analytics"
	"github.com/dd0wney/cluso-socialgraph/pkg/api/middleware"
	"github.com/dd0wney/cluso-socialgraph/pkg/config"
	"github.com/dd0wney/cluso-socialgraph/pkg/health"
	"github.com/dd0wney/cluso-socialgraph/pkg/logging"
	"github.com/dd0wney/cluso-socialgraph/pkg/metrics"
)

// Server represents the HTTP API server
type Server struct {
	engine          *analytics.Engine
	metricsRegistry *metrics.Registry
	health          *health.HealthChecker
	logger          logging.Logger
	defaultSeed     uint64
	maxBodyBytes    int64
	corsOrigins     []string
	startTime       time.Time
	version         string
}

// NewServer creates an API server around engine. Requests without a seed use
// defaultSeed.
func NewServer(engine *analytics.Engine, registry *metrics.Registry, logger logging.Logger, cfg *config.Config, version string) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}
	checker := health.NewHealthChecker()
	checker.RegisterLivenessCheck("memory", health.MemoryCheck(health.RuntimeMemory))
	checker.RegisterReadinessCheck("analytics_engine", health.EngineCheck(engine.Ready))

	return &Server{
		engine:          engine,
		metricsRegistry: registry,
		health:          checker,
		logger:          logger.With(logging.Component("api")),
		defaultSeed:     cfg.Layout.Seed,
		maxBodyBytes:    cfg.Server.MaxBodyBytes,
		corsOrigins:     cfg.Server.CORSOrigins,
		startTime:       time.Now(),
		version:         version,
	}
}

// Health exposes the checker so callers can register further checks.
func (s *Server) Health() *health.HealthChecker {
	return s.health
}

// Router configures all routes and middleware
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(s.loggingMiddleware)
	router.Use(s.metricsMiddleware)
	router.Use(middleware.SecurityHeaders)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.corsOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", s.handleHealth)
	router.Get("/health/live", s.health.LivenessHandler())
	router.Get("/health/ready", s.health.ReadinessHandler())
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
		s.metricsRegistry.GetPrometheusRegistry(),
		promhttp.HandlerOpts{},
	))

	router.Route("/api/v1", func(r chi.Router) {
		r.With(middleware.BodySizeLimit(s.maxBodyBytes)).Post("/analyze", s.handleAnalyze)
		r.Route("/datasets/friendship", func(r chi.Router) {
			r.Get("/", s.handleFriendshipDataset)
			r.Get("/report", s.handleFriendshipReport)
		})
	})

	return router
}
