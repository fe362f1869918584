package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Admin routes delegate to the moderation gateway; role checks live in the
// usecase layer so every caller path enforces them identically.

func (h *Handler) handleAdminListCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.moderation.ListAll(r.Context(), actorFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignList(campaigns))
}

// handleListPending returns the review queue, oldest first.
func (h *Handler) handleListPending(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.moderation.ListPending(r.Context(), actorFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignList(campaigns))
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.moderation.Approve(r.Context(), actorFrom(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

func (h *Handler) handleReject(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}
	campaign, err := h.moderation.Reject(r.Context(), actorFrom(r), chi.URLParam(r, "id"), body.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.moderation.GetSettings(r.Context(), actorFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSettingsPayload(settings))
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload settingsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	settings, err := h.moderation.UpdateSettings(r.Context(), actorFrom(r), payload.toDomain())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toSettingsPayload(settings))
}
