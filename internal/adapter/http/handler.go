package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ardenpalme/app/internal/config/configs"
	"github.com/ardenpalme/app/internal/core/port"
)

// ReadinessCheck probes one dependency for /readyz.
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// Handler is the inbound HTTP adapter. It exposes the creative library
// and campaign services as a JSON API on a chi.Router.
type Handler struct {
	assets    port.AssetService
	campaigns port.CampaignService
	workflow  port.Workflow
	checks    []ReadinessCheck
	cfg       configs.HTTP
	logger    *slog.Logger
	router    chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(
	assets port.AssetService,
	campaigns port.CampaignService,
	workflow port.Workflow,
	cfg configs.HTTP,
	logger *slog.Logger,
	checks ...ReadinessCheck,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		assets:    assets,
		campaigns: campaigns,
		workflow:  workflow,
		checks:    checks,
		cfg:       cfg,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)
	r.Use(metricsMiddleware)

	if len(cfg.CORSAllowedOrigins) > 0 {
		c := cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Accept", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		})
		r.Use(c.Handler)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r.Get("/healthz", h.handleHealthz)
	r.Get("/readyz", h.handleReadyz)
	r.Handle("/metrics", promhttp.Handler())
	r.Get(openAPIPath, serveOpenAPI)
	r.Mount(swaggerUIPath, swaggerUI())

	r.Route("/api/v1", func(r chi.Router) {
		// uploads stream large payloads and are bounded by the client
		r.Post("/creatives/upload", h.handleUploadCreative)
		r.Get("/files/*", h.handleGetFile)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(timeout))

			r.Get("/creatives", h.handleListCreatives)
			r.Post("/creatives", h.handleCreateCreative)
			r.Get("/creatives/unassigned", h.handleListUnassigned)
			r.Get("/creatives/{id}", h.handleGetCreative)
			r.Patch("/creatives/{id}", h.handleUpdateCreative)
			r.Delete("/creatives/{id}", h.handleDeleteCreative)
			r.Put("/creatives/{id}/approval", h.handleReviewCreative)
			r.Put("/creatives/{id}/campaign", h.handleAssignCampaign)
			r.Delete("/creatives/{id}/campaign", h.handleUnassignCampaign)

			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Get("/campaigns/select", h.handleCampaignOptions)
			r.Get("/campaigns/with-creatives", h.handleCampaignsWithCreatives)
			r.Get("/campaigns/{id}", h.handleGetCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)

			r.Get("/stats/overview", h.handleStatsOverview)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.InfoContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
