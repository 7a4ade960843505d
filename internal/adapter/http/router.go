package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/hstraders/interestledger/internal/adapter/http/handler"
	"github.com/hstraders/interestledger/internal/adapter/http/middleware"
	"github.com/hstraders/interestledger/internal/infrastructure/metrics"
	"github.com/hstraders/interestledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	VoucherHandler  *handler.VoucherHandler
	SettingsHandler *handler.SettingsHandler
	InterestHandler *handler.InterestHandler
	HealthHandler   *handler.HealthHandler

	// IdempotencyStore is optional; without it keys are ignored.
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	// RateLimiter, when set, throttles the /interest routes per client IP.
	RateLimiter *middleware.RateLimiter
	Metrics     *metrics.Metrics
	// MetricsHandler serves /metrics; defaults to promhttp.Handler().
	MetricsHandler     http.Handler
	Logger             zerolog.Logger
	CORSAllowedOrigins []string
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(cfg.Metrics).Wrap)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg.CORSAllowedOrigins),
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.IdempotencyKeyHeader},
		ExposedHeaders: []string{"Content-Disposition", "X-Idempotency-Replay"},
		MaxAge:         300,
	}))

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	metricsHandler := cfg.MetricsHandler
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL, cfg.Logger)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Vouchers
		r.Route("/vouchers", func(r chi.Router) {
			r.Post("/", cfg.VoucherHandler.Create)
			r.Get("/", cfg.VoucherHandler.List)
			r.Post("/batch", cfg.VoucherHandler.Import)
			r.Get("/{id}", cfg.VoucherHandler.Get)
			r.Put("/{id}", cfg.VoucherHandler.Update)
			r.Delete("/{id}", cfg.VoucherHandler.Delete)
		})

		// Settings
		r.Get("/settings", cfg.SettingsHandler.Get)
		r.Put("/settings", cfg.SettingsHandler.Update)

		// Interest
		r.Route("/interest", func(r chi.Router) {
			if cfg.RateLimiter != nil {
				r.Use(cfg.RateLimiter.Limit)
			}
			r.Post("/calculate", cfg.InterestHandler.Calculate)
			r.Get("/statement", cfg.InterestHandler.Statement)
			r.Get("/export.xlsx", cfg.InterestHandler.ExportXLSX)
			r.Get("/export.pdf", cfg.InterestHandler.ExportPDF)
		})
	})

	return r
}

func allowedOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
