package usecase

import (
	"fmt"

	"boost-ads/internal/core/domain"
)

// budgetUnit decouples the cost-per-1000-impressions base from the flat
// campaign price: cost = baseCPM * durationMultiplier * budgetUnit.
const budgetUnit = 100

// baseReachUnit is the impression estimate for a 24h local campaign before
// duration and audience multipliers are applied.
const baseReachUnit = 1000

// audienceMultipliers are fixed policy constants scaling both the reach
// estimate and the simulated delivery rate per audience tier.
var audienceMultipliers = map[domain.Audience]float64{
	domain.AudienceLocal:    1,
	domain.AudienceRegion:   5,
	domain.AudienceRetarget: 0.5,
}

// AudienceMultiplier returns the policy multiplier for an audience tier,
// defaulting to 1 for unknown values.
func AudienceMultiplier(a domain.Audience) float64 {
	if m, ok := audienceMultipliers[a]; ok {
		return m
	}
	return 1
}

// ComputeCost prices a campaign from the fresh global settings. It is
// deterministic and side-effect free. An unknown tier is a validation
// error caught at the API boundary.
func ComputeCost(tier domain.DurationTier, s *domain.AdSettings) (int64, error) {
	mult, ok := s.MultiplierFor(tier)
	if !ok {
		return 0, fmt.Errorf("%w: duration %q", domain.ErrUnknownTier, tier)
	}
	return int64(float64(s.BaseCPM) * mult * budgetUnit), nil
}

// EstimateReach estimates delivered impressions for the buyer before
// purchase, floored to an integer. The estimate is never reconciled against
// actual delivery.
func EstimateReach(tier domain.DurationTier, audience domain.Audience, s *domain.AdSettings) (int64, error) {
	mult, ok := s.MultiplierFor(tier)
	if !ok {
		return 0, fmt.Errorf("%w: duration %q", domain.ErrUnknownTier, tier)
	}
	if !audience.Valid() {
		return 0, fmt.Errorf("%w: audience %q", domain.ErrUnknownTier, audience)
	}
	return int64(baseReachUnit * mult * AudienceMultiplier(audience)), nil
}
