package worker

import (
	"math/rand"
	"sync"

	"boost-ads/internal/adapter/usecase"
	"boost-ads/internal/core/domain"
	"boost-ads/internal/core/port"
)

// Fractions bounding the simulated funnel per tick.
const (
	maxClickRate      = 0.08 // clicks as a share of impressions
	maxConversionRate = 0.3  // conversions as a share of clicks
	maxBurstShare     = 0.05 // impressions per tick as a share of remaining reach
	minBookingValue   = 2500 // cents
	maxBookingValue   = 12500
)

// RandomTraffic is the default TrafficModel: a bounded pseudo-random funnel
// whose impression rate is proportional to the campaign's remaining budget
// and audience multiplier. It is safe for concurrent use.
type RandomTraffic struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomTraffic creates a traffic model from the given seed.
func NewRandomTraffic(seed int64) *RandomTraffic {
	return &RandomTraffic{rng: rand.New(rand.NewSource(seed))}
}

// Draw produces one tick of simulated delivery for the campaign.
func (t *RandomTraffic) Draw(c *domain.Campaign) port.TrafficDraw {
	t.mu.Lock()
	defer t.mu.Unlock()

	remaining := c.RemainingBudget() / c.PerImpressionCost()
	if remaining <= 0 {
		return port.TrafficDraw{}
	}

	burst := int64(float64(remaining) * maxBurstShare * usecase.AudienceMultiplier(c.Audience))
	if burst < 1 {
		burst = 1
	}
	impressions := t.rng.Int63n(burst + 1)
	if impressions == 0 {
		return port.TrafficDraw{}
	}

	clicks := int64(float64(impressions) * t.rng.Float64() * maxClickRate)
	conversions := int64(float64(clicks) * t.rng.Float64() * maxConversionRate)

	var revenue int64
	for i := int64(0); i < conversions; i++ {
		revenue += minBookingValue + t.rng.Int63n(maxBookingValue-minBookingValue+1)
	}

	return port.TrafficDraw{
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Revenue:     revenue,
	}
}
