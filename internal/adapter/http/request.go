package httpadapter

import (
	"time"

	"boost-ads/internal/core/domain"
	"boost-ads/internal/core/port"
)

// createCampaignRequest is the provider's purchase payload. Price is never
// accepted from the client; it is computed server-side.
type createCampaignRequest struct {
	Creative      domain.Creative `json:"creative"`
	Audience      string          `json:"audience"`
	DurationTier  string          `json:"duration_tier"`
	TargetCountry string          `json:"target_country"`
}

func (req createCampaignRequest) toPort() port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Creative:      req.Creative,
		Audience:      domain.Audience(req.Audience),
		DurationTier:  domain.DurationTier(req.DurationTier),
		TargetCountry: req.TargetCountry,
	}
}

type campaignResponse struct {
	ID             string              `json:"id"`
	ProviderID     string              `json:"provider_id"`
	ProviderName   string              `json:"provider_name"`
	Creative       domain.Creative     `json:"creative"`
	Audience       string              `json:"audience"`
	DurationTier   string              `json:"duration_tier"`
	TargetCountry  string              `json:"target_country"`
	BudgetTotal    int64               `json:"budget_total"`
	BudgetSpent    int64               `json:"budget_spent"`
	EstimatedReach int64               `json:"estimated_reach"`
	Status         string              `json:"status"`
	Impressions    int64               `json:"impressions"`
	Clicks         int64               `json:"clicks"`
	Reservations   int64               `json:"reservations"`
	Revenue        int64               `json:"revenue_generated"`
	Events         []domain.Event      `json:"events,omitempty"`
	AIAnalysis     *domain.AuditResult `json:"ai_analysis,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	EndsAt         time.Time           `json:"ends_at"`
}

func toCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:             c.ID,
		ProviderID:     c.ProviderID,
		ProviderName:   c.ProviderName,
		Creative:       c.Creative,
		Audience:       string(c.Audience),
		DurationTier:   string(c.DurationTier),
		TargetCountry:  c.TargetCountry,
		BudgetTotal:    c.BudgetTotal,
		BudgetSpent:    c.BudgetSpent,
		EstimatedReach: c.EstimatedReach,
		Status:         string(c.Status),
		Impressions:    c.Stats.Impressions,
		Clicks:         c.Stats.Clicks,
		Reservations:   c.Stats.Reservations,
		Revenue:        c.Stats.RevenueGenerated,
		Events:         c.Events,
		AIAnalysis:     c.AIAnalysis,
		CreatedAt:      c.CreatedAt,
		EndsAt:         c.EndsAt,
	}
}

func toCampaignList(campaigns []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(campaigns))
	for i := range campaigns {
		out = append(out, toCampaignResponse(&campaigns[i]))
	}
	return out
}

// settingsPayload is the admin read/write representation of the global ad
// settings. Version makes admin writes first-writer-wins.
type settingsPayload struct {
	Enabled             bool               `json:"enabled"`
	BaseCPM             int64              `json:"base_cpm"`
	DurationMultipliers map[string]float64 `json:"duration_multipliers"`
	AllowedCountries    []string           `json:"allowed_countries"`
	Version             int64              `json:"version"`
}

func toSettingsPayload(s *domain.AdSettings) settingsPayload {
	mults := make(map[string]float64, len(s.DurationMultipliers))
	for tier, m := range s.DurationMultipliers {
		mults[string(tier)] = m
	}
	return settingsPayload{
		Enabled:             s.Enabled,
		BaseCPM:             s.BaseCPM,
		DurationMultipliers: mults,
		AllowedCountries:    s.AllowedCountries,
		Version:             s.Version,
	}
}

func (p settingsPayload) toDomain() domain.AdSettings {
	mults := make(map[domain.DurationTier]float64, len(p.DurationMultipliers))
	for tier, m := range p.DurationMultipliers {
		mults[domain.DurationTier(tier)] = m
	}
	return domain.AdSettings{
		Enabled:             p.Enabled,
		BaseCPM:             p.BaseCPM,
		DurationMultipliers: mults,
		AllowedCountries:    p.AllowedCountries,
		Version:             p.Version,
	}
}
