package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCampaignStats returns the derived metrics for one campaign,
// visible to its owner and to administrators.
func (h *Handler) handleCampaignStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.CampaignStats(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"campaign_id":       stats.CampaignID,
		"impressions":       stats.Impressions,
		"clicks":            stats.Clicks,
		"reservations":      stats.Reservations,
		"revenue_generated": stats.RevenueGenerated,
		"budget_total":      stats.BudgetTotal,
		"budget_spent":      stats.BudgetSpent,
		"ctr":               stats.CTR,
		"cost_per_click":    stats.CostPerClick,
		"spend_ratio":       stats.SpendRatio,
	})
}

// handleStatsOverview returns the global roll-up for the admin dashboard.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.stats.OverviewStats(r.Context(), actorFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, overview)
}
