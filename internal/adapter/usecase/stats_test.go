package usecase

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boost-ads/internal/core/domain"
	"boost-ads/internal/core/port/mocks"
)

func statsCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:          "camp-1",
		ProviderID:  "prov-1",
		Status:      domain.StatusActive,
		BudgetTotal: 20000,
		BudgetSpent: 5000,
		Stats: domain.Stats{
			Impressions:      1000,
			Clicks:           40,
			Reservations:     5,
			RevenueGenerated: 30000,
		},
	}
}

func TestCampaignStatsDerivedMetrics(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(statsCampaign(), nil)

	s := NewStats(repo, nil, 0, slog.New(slog.DiscardHandler))
	out, err := s.CampaignStats(context.Background(), provider, "camp-1")
	require.NoError(t, err)

	assert.Equal(t, int64(1000), out.Impressions)
	assert.InDelta(t, 0.04, out.CTR, 1e-9)
	assert.InDelta(t, 125.0, out.CostPerClick, 1e-9)
	assert.InDelta(t, 0.25, out.SpendRatio, 1e-9)
}

func TestCampaignStatsZeroGuards(t *testing.T) {
	c := statsCampaign()
	c.Stats = domain.Stats{}
	c.BudgetSpent = 0
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(c, nil)

	s := NewStats(repo, nil, 0, slog.New(slog.DiscardHandler))
	out, err := s.CampaignStats(context.Background(), provider, "camp-1")
	require.NoError(t, err)

	// no impressions and no clicks must not divide by zero
	assert.Zero(t, out.CTR)
	assert.Zero(t, out.CostPerClick)
	assert.Zero(t, out.SpendRatio)
}

func TestCampaignStatsHiddenFromStrangers(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().GetCampaign(mock.Anything, "camp-1").Return(statsCampaign(), nil)

	s := NewStats(repo, nil, 0, slog.New(slog.DiscardHandler))
	_, err := s.CampaignStats(context.Background(), domain.Actor{ProviderID: "prov-2"}, "camp-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOverviewExcludesRejectedRevenue(t *testing.T) {
	active := *statsCampaign()
	rejected := *statsCampaign()
	rejected.ID = "camp-2"
	rejected.Status = domain.StatusRejected
	rejected.Stats.RevenueGenerated = 99999

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListAll(mock.Anything).Return([]domain.Campaign{active, rejected}, nil)

	s := NewStats(repo, nil, 0, slog.New(slog.DiscardHandler))
	out, err := s.OverviewStats(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, int64(30000), out.TotalRevenue)
	assert.Equal(t, int64(1000), out.TotalImpressions)
	assert.Equal(t, int64(1), out.ActiveCampaigns)
}

func TestOverviewRequiresAdmin(t *testing.T) {
	s := NewStats(mocks.NewMockCampaignRepository(t), nil, 0, slog.New(slog.DiscardHandler))
	_, err := s.OverviewStats(context.Background(), provider)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestOverviewServedFromCache(t *testing.T) {
	srv := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	repo := mocks.NewMockCampaignRepository(t)
	// the store is consulted exactly once; the second read hits the cache
	repo.EXPECT().ListAll(mock.Anything).Return([]domain.Campaign{*statsCampaign()}, nil).Once()

	s := NewStats(repo, cache, 10*time.Second, slog.New(slog.DiscardHandler))

	first, err := s.OverviewStats(context.Background(), admin)
	require.NoError(t, err)

	second, err := s.OverviewStats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, first.TotalRevenue, second.TotalRevenue)
	assert.Equal(t, first.TotalImpressions, second.TotalImpressions)
}

func TestOverviewCacheExpiry(t *testing.T) {
	srv := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: srv.Addr()})

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().ListAll(mock.Anything).Return([]domain.Campaign{*statsCampaign()}, nil).Twice()

	s := NewStats(repo, cache, time.Second, slog.New(slog.DiscardHandler))

	_, err := s.OverviewStats(context.Background(), admin)
	require.NoError(t, err)

	srv.FastForward(2 * time.Second)

	_, err = s.OverviewStats(context.Background(), admin)
	require.NoError(t, err)
}
