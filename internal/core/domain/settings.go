package domain

import (
	"slices"
	"time"
)

// AdSettings is the admin-owned singleton governing campaign creation and
// pricing. It is versioned: every admin write bumps Version, and writes are
// rejected when the version has moved underneath the writer. Creation
// decisions always read it fresh, never from a cache.
type AdSettings struct {
	Enabled             bool
	BaseCPM             int64 // cents per 1000 impressions
	DurationMultipliers map[DurationTier]float64
	AllowedCountries    []string
	Version             int64
	UpdatedAt           time.Time
}

// DefaultAdSettings returns the settings seeded at first boot.
func DefaultAdSettings() AdSettings {
	return AdSettings{
		Enabled: true,
		BaseCPM: 250,
		DurationMultipliers: map[DurationTier]float64{
			Duration24h: 1,
			Duration3d:  2,
			Duration7d:  3,
			Duration30d: 8,
		},
		AllowedCountries: []string{"US", "CA", "GB", "DE", "FR"},
		Version:          1,
	}
}

// CountryAllowed reports whether the country is on the targeting allow-list.
func (s AdSettings) CountryAllowed(country string) bool {
	return slices.Contains(s.AllowedCountries, country)
}

// MultiplierFor returns the pricing multiplier for a duration tier.
func (s AdSettings) MultiplierFor(tier DurationTier) (float64, bool) {
	m, ok := s.DurationMultipliers[tier]
	return m, ok
}
