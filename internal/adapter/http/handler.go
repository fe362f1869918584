package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"boost-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter. It wires the campaign, moderation
// and stats primary ports onto a chi router and owns request decoding,
// actor resolution and error mapping. All display formatting lives in the
// presentation layer, not here.
type Handler struct {
	campaigns  port.CampaignUseCase
	moderation port.ModerationUseCase
	stats      port.StatsUseCase
	jwtSecret  []byte
	logger     *slog.Logger
	router     chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(campaigns port.CampaignUseCase, moderation port.ModerationUseCase, stats port.StatsUseCase, jwtSecret string, logger *slog.Logger) *Handler {
	h := &Handler{
		campaigns:  campaigns,
		moderation: moderation,
		stats:      stats,
		jwtSecret:  []byte(jwtSecret),
		logger:     logger,
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Route("/campaigns", func(r chi.Router) {
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/quote", h.handleQuote)
			r.Post("/analyze", h.handleAnalyzeCreative)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Get("/stats", h.handleCampaignStats)
				r.Post("/pause", h.handlePause)
				r.Post("/resume", h.handleResume)
				r.Post("/stop", h.handleStop)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Get("/campaigns", h.handleAdminListCampaigns)
			r.Get("/campaigns/pending", h.handleListPending)
			r.Post("/campaigns/{id}/approve", h.handleApprove)
			r.Post("/campaigns/{id}/reject", h.handleReject)
			r.Get("/settings", h.handleGetSettings)
			r.Put("/settings", h.handleUpdateSettings)
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

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
