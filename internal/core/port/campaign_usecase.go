package port

import (
	"context"
	"time"

	"boost-ads/internal/core/domain"
)

// CreateCampaignReq carries the provider's campaign purchase request. The
// cost is never part of the request: it is computed server-side from the
// fresh global settings.
type CreateCampaignReq struct {
	Creative      domain.Creative
	Audience      domain.Audience
	DurationTier  domain.DurationTier
	TargetCountry string
}

// Quote is the price and reach estimate shown to a buyer before purchase.
// Reach is an estimate only and is never reconciled against delivery.
type Quote struct {
	Cost           int64
	EstimatedReach int64
}

// CampaignUseCase is the primary port exposing campaign purchase and
// control to providers. Every mutating operation authorizes the actor and
// returns the updated campaign snapshot or a domain error kind.
type CampaignUseCase interface {
	// QuoteCampaign prices a prospective campaign from fresh settings.
	QuoteCampaign(ctx context.Context, tier domain.DurationTier, audience domain.Audience) (*Quote, error)
	// AnalyzeCreative runs the optional pre-submission content audit.
	AnalyzeCreative(ctx context.Context, creative domain.Creative) (*domain.AuditResult, error)
	// CreateCampaign prices, charges, audits and persists a new campaign.
	// The campaign comes back active when the audit reported the creative
	// safe, pending_review otherwise.
	CreateCampaign(ctx context.Context, actor domain.Actor, req CreateCampaignReq) (*domain.Campaign, error)
	// GetCampaign returns a campaign visible to the actor (owner or admin).
	GetCampaign(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
	// ListCampaigns returns the actor's own campaigns.
	ListCampaigns(ctx context.Context, actor domain.Actor) ([]domain.Campaign, error)
	// Pause, Resume and Stop are owner-only lifecycle controls. Stop is
	// terminal and forfeits the unspent budget.
	Pause(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
	Resume(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
	Stop(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
}

// ModerationUseCase is the administrative surface over pending campaigns
// and global settings.
type ModerationUseCase interface {
	// ListAll returns every campaign for the admin dashboard.
	ListAll(ctx context.Context, actor domain.Actor) ([]domain.Campaign, error)
	// ListPending returns campaigns awaiting review, oldest first.
	ListPending(ctx context.Context, actor domain.Actor) ([]domain.Campaign, error)
	// Approve transitions pending_review -> active.
	Approve(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error)
	// Reject transitions pending_review -> rejected and refunds the full
	// budget atomically with the status change.
	Reject(ctx context.Context, actor domain.Actor, id string, reason string) (*domain.Campaign, error)
	// GetSettings and UpdateSettings are the single-writer admin path over
	// the global settings record.
	GetSettings(ctx context.Context, actor domain.Actor) (*domain.AdSettings, error)
	UpdateSettings(ctx context.Context, actor domain.Actor, s domain.AdSettings) (*domain.AdSettings, error)
}

// CampaignStats are the derived per-campaign metrics.
type CampaignStats struct {
	CampaignID       string
	Impressions      int64
	Clicks           int64
	Reservations     int64
	RevenueGenerated int64
	BudgetTotal      int64
	BudgetSpent      int64
	CTR              float64
	CostPerClick     float64
	SpendRatio       float64
}

// OverviewStats are the global roll-ups for the admin dashboard.
type OverviewStats struct {
	TotalRevenue     int64     `json:"total_revenue"`
	TotalImpressions int64     `json:"total_impressions"`
	TotalClicks      int64     `json:"total_clicks"`
	ActiveCampaigns  int64     `json:"active_campaigns"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// StatsUseCase derives read-only metrics from campaign store snapshots. It
// never mutates the store.
type StatsUseCase interface {
	CampaignStats(ctx context.Context, actor domain.Actor, id string) (*CampaignStats, error)
	OverviewStats(ctx context.Context, actor domain.Actor) (*OverviewStats, error)
}
