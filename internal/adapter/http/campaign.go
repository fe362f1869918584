package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"boost-ads/internal/core/domain"
)

// handleCreateCampaign purchases a new boost campaign. The response status
// tells the buyer whether the campaign went live immediately or was queued
// for review.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	campaign, err := h.campaigns.CreateCampaign(r.Context(), actorFrom(r), req.toPort())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(campaign))
}

// handleQuote prices a prospective campaign without creating anything.
// Query parameters: duration_tier, audience.
func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	quote, err := h.campaigns.QuoteCampaign(r.Context(),
		domain.DurationTier(q.Get("duration_tier")), domain.Audience(q.Get("audience")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{
		"cost":            quote.Cost,
		"estimated_reach": quote.EstimatedReach,
	})
}

// handleAnalyzeCreative runs the optional pre-submission content audit so
// a provider can fix issues before paying.
func (h *Handler) handleAnalyzeCreative(w http.ResponseWriter, r *http.Request) {
	var creative domain.Creative
	if err := json.NewDecoder(r.Body).Decode(&creative); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	result, err := h.campaigns.AnalyzeCreative(r.Context(), creative)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaigns.ListCampaigns(r.Context(), actorFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignList(campaigns))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.campaigns.GetCampaign(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.Pause)
}

func (h *Handler) handleResume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.Resume)
}

func (h *Handler) handleStop(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.campaigns.Stop)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)) {
	campaign, err := op(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}
