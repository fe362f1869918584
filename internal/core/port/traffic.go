package port

import "boost-ads/internal/core/domain"

// TrafficDraw is one tick's worth of simulated delivery for a campaign.
// Clicks never exceed Impressions and Conversions never exceed Clicks; the
// simulator clamps any draw that would violate that.
type TrafficDraw struct {
	Impressions int64
	Clicks      int64
	Conversions int64
	// Revenue is the simulated booking value generated by the conversions,
	// in cents.
	Revenue int64
}

// TrafficModel produces delivery increments for an active campaign. It is
// an interface so the pseudo-random simulation can later be swapped for a
// real delivery pipeline without touching lifecycle or pricing code.
type TrafficModel interface {
	Draw(c *domain.Campaign) TrafficDraw
}
