package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	appdisputes "github.com/bryanwahyu/scamwatch/internal/application/disputes"
	appreports "github.com/bryanwahyu/scamwatch/internal/application/reports"
	"github.com/bryanwahyu/scamwatch/internal/middleware"
)

// Options carries the optional collaborators of the router. Zero values
// give a quiet logger, fresh metrics, no rate limiting and no auth.
type Options struct {
	Logger         *zap.Logger
	Metrics        *middleware.Metrics
	RateLimiter    *middleware.RateLimiter
	APIKeys        map[string]string
	CORSOrigins    []string
	HealthCheckers map[string]middleware.HealthChecker
}

type Router struct {
	reportsSvc  *appreports.Service
	disputesSvc *appdisputes.Service
	validate    *middleware.Validator
	metrics     *middleware.Metrics
	log         *zap.Logger
}

func NewRouter(reportsSvc *appreports.Service, disputesSvc *appdisputes.Service, opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Metrics == nil {
		opts.Metrics = middleware.NewMetrics()
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}

	r := &Router{
		reportsSvc:  reportsSvc,
		disputesSvc: disputesSvc,
		validate:    middleware.NewValidator(),
		metrics:     opts.Metrics,
		log:         opts.Logger,
	}

	mux := chi.NewRouter()
	mux.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logging(opts.Logger),
		opts.Metrics.Middleware,
		chimw.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.HeaderRequestID},
			ExposedHeaders: []string{middleware.HeaderRequestID},
			MaxAge:         300,
		}),
	)

	mux.Get("/health", middleware.HealthHandler(opts.HealthCheckers))
	mux.Get("/health/live", middleware.LivenessHandler)
	mux.Get("/health/ready", middleware.ReadinessHandler)
	mux.Get("/metrics", opts.Metrics.Handler)

	limited := func(h http.HandlerFunc) http.Handler {
		if opts.RateLimiter == nil {
			return h
		}
		return opts.RateLimiter.Middleware(h)
	}

	mux.Route("/api", func(rt chi.Router) {
		rt.Get("/lookup/{phoneNumber}", r.wrap(r.handleLookup, "Failed to lookup phone number"))

		rt.Method(http.MethodPost, "/reports", limited(r.wrap(r.handleCreateReport, "Failed to create report")))
		rt.Get("/reports/recent", r.wrap(r.handleRecent, "Failed to fetch recent reports"))
		rt.Get("/reports", r.wrap(r.handleList, "Failed to fetch reports"))
		rt.Get("/reports/{id}/disputes", r.wrap(r.handleListDisputes, "Failed to fetch disputes"))
		rt.With(middleware.APIKeyAuth(opts.APIKeys)).
			Patch("/reports/{id}/verify", r.wrap(r.handleVerify, "Failed to update verification status"))

		rt.Method(http.MethodPost, "/disputes", limited(r.wrap(r.handleCreateDispute, "Failed to create dispute")))
		rt.Get("/stats", r.wrap(r.handleStats, "Failed to fetch statistics"))
	})

	return mux
}
