package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"boost-ads/internal/core/domain"
	"boost-ads/internal/core/port"
)

// overviewCacheKey holds the cached global roll-up. Dashboards poll the
// overview aggressively, so it is cached with a short TTL; the cache is
// read-through and purely an optimization.
const overviewCacheKey = "boost:stats:overview"

// Stats derives read-only metrics from campaign store snapshots. It never
// mutates the store. A nil redis client disables caching.
type Stats struct {
	repo   port.CampaignRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewStats creates the stats aggregator. cache may be nil.
func NewStats(repo port.CampaignRepository, cache *redis.Client, ttl time.Duration, logger *slog.Logger) *Stats {
	return &Stats{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// CampaignStats returns the derived metrics for one campaign, visible to
// the owner and to administrators.
func (s *Stats) CampaignStats(ctx context.Context, actor domain.Actor, id string) (*port.CampaignStats, error) {
	c, err := s.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Admin && !c.OwnedBy(actor.ProviderID) {
		return nil, domain.ErrUnauthorized
	}

	out := &port.CampaignStats{
		CampaignID:       c.ID,
		Impressions:      c.Stats.Impressions,
		Clicks:           c.Stats.Clicks,
		Reservations:     c.Stats.Reservations,
		RevenueGenerated: c.Stats.RevenueGenerated,
		BudgetTotal:      c.BudgetTotal,
		BudgetSpent:      c.BudgetSpent,
	}
	if c.Stats.Impressions > 0 {
		out.CTR = float64(c.Stats.Clicks) / float64(c.Stats.Impressions)
	}
	if c.Stats.Clicks > 0 {
		out.CostPerClick = float64(c.BudgetSpent) / float64(c.Stats.Clicks)
	}
	if c.BudgetTotal > 0 {
		out.SpendRatio = float64(c.BudgetSpent) / float64(c.BudgetTotal)
	}
	return out, nil
}

// OverviewStats returns the global roll-up for the admin dashboard.
// Revenue from rejected campaigns is excluded: their budgets were refunded.
func (s *Stats) OverviewStats(ctx context.Context, actor domain.Actor) (*port.OverviewStats, error) {
	if !actor.Admin {
		return nil, domain.ErrUnauthorized
	}

	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	campaigns, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := &port.OverviewStats{GeneratedAt: time.Now().UTC()}
	for i := range campaigns {
		c := &campaigns[i]
		if c.Status == domain.StatusActive {
			out.ActiveCampaigns++
		}
		if c.Status == domain.StatusRejected {
			continue
		}
		out.TotalRevenue += c.Stats.RevenueGenerated
		out.TotalImpressions += c.Stats.Impressions
		out.TotalClicks += c.Stats.Clicks
	}

	s.toCache(ctx, out)
	return out, nil
}

func (s *Stats) fromCache(ctx context.Context) *port.OverviewStats {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, overviewCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Debug("overview cache read failed", slog.Any("error", err))
		}
		return nil
	}
	var out port.OverviewStats
	if err = json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return &out
}

func (s *Stats) toCache(ctx context.Context, out *port.OverviewStats) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return
	}
	if err = s.cache.Set(ctx, overviewCacheKey, raw, s.ttl).Err(); err != nil {
		s.logger.Debug("overview cache write failed", slog.Any("error", err))
	}
}
