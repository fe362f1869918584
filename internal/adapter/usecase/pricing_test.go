package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boost-ads/internal/core/domain"
)

func testSettings(baseCPM int64) *domain.AdSettings {
	return &domain.AdSettings{
		Enabled: true,
		BaseCPM: baseCPM,
		DurationMultipliers: map[domain.DurationTier]float64{
			domain.Duration24h: 1,
			domain.Duration3d:  2,
			domain.Duration7d:  3,
			domain.Duration30d: 8,
		},
		AllowedCountries: []string{"US", "DE"},
	}
}

func TestComputeCost(t *testing.T) {
	// baseCPM 2.50, multiplier 3, budget unit 100 -> 750.00
	settings := testSettings(250)

	cost, err := ComputeCost(domain.Duration7d, settings)
	require.NoError(t, err)
	assert.Equal(t, int64(75000), cost)

	// deterministic: same inputs, same output on every call
	for i := 0; i < 5; i++ {
		again, err := ComputeCost(domain.Duration7d, settings)
		require.NoError(t, err)
		assert.Equal(t, cost, again)
	}
}

func TestComputeCostBaseline(t *testing.T) {
	// baseCPM 2.00 with the 24h multiplier of 1 -> 200.00
	cost, err := ComputeCost(domain.Duration24h, testSettings(200))
	require.NoError(t, err)
	assert.Equal(t, int64(20000), cost)
}

func TestComputeCostUnknownTier(t *testing.T) {
	_, err := ComputeCost(domain.DurationTier("90d"), testSettings(250))
	assert.ErrorIs(t, err, domain.ErrUnknownTier)
}

func TestEstimateReach(t *testing.T) {
	settings := testSettings(250)

	tests := []struct {
		name     string
		tier     domain.DurationTier
		audience domain.Audience
		want     int64
	}{
		{"local 24h", domain.Duration24h, domain.AudienceLocal, 1000},
		{"region 7d", domain.Duration7d, domain.AudienceRegion, 15000},
		{"retarget 24h floors down", domain.Duration24h, domain.AudienceRetarget, 500},
		{"retarget 3d", domain.Duration3d, domain.AudienceRetarget, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reach, err := EstimateReach(tt.tier, tt.audience, settings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, reach)
		})
	}
}

func TestEstimateReachUnknownAudience(t *testing.T) {
	_, err := EstimateReach(domain.Duration24h, domain.Audience("global"), testSettings(250))
	assert.ErrorIs(t, err, domain.ErrUnknownTier)
}
