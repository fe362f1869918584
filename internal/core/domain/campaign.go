package domain

import "time"

// Campaign represents a purchased boost campaign promoting a provider's
// profile. Monetary amounts are stored in integer units (cents).
type Campaign struct {
	ID            string
	ProviderID    string
	ProviderName  string // denormalized at creation, immutable afterwards
	Creative      Creative
	Audience      Audience
	DurationTier  DurationTier
	TargetCountry string

	// BudgetTotal is locked in at creation and never re-priced.
	// BudgetSpent only grows and never exceeds BudgetTotal.
	BudgetTotal    int64
	BudgetSpent    int64
	EstimatedReach int64

	Status     Status
	Stats      Stats
	Events     []Event
	AIAnalysis *AuditResult

	CreatedAt time.Time
	EndsAt    time.Time
	UpdatedAt time.Time
}

// Stats holds the delivery counters accrued by the simulator.
type Stats struct {
	Impressions      int64
	Clicks           int64
	Reservations     int64
	RevenueGenerated int64
}

// Audience is the targeting scope of a campaign. It affects both the
// estimated reach and the simulated delivery rate.
type Audience string

const (
	AudienceLocal    Audience = "local"
	AudienceRegion   Audience = "region"
	AudienceRetarget Audience = "retarget"
)

// Valid reports whether the audience is a known tier.
func (a Audience) Valid() bool {
	switch a {
	case AudienceLocal, AudienceRegion, AudienceRetarget:
		return true
	}
	return false
}

// DurationTier is the time-boxed length of a campaign.
type DurationTier string

const (
	Duration24h DurationTier = "24h"
	Duration3d  DurationTier = "3d"
	Duration7d  DurationTier = "7d"
	Duration30d DurationTier = "30d"
)

// Window returns the wall-clock length of the tier.
func (t DurationTier) Window() (time.Duration, bool) {
	switch t {
	case Duration24h:
		return 24 * time.Hour, true
	case Duration3d:
		return 3 * 24 * time.Hour, true
	case Duration7d:
		return 7 * 24 * time.Hour, true
	case Duration30d:
		return 30 * 24 * time.Hour, true
	}
	return 0, false
}

// RemainingBudget returns the unspent portion of the locked-in budget.
func (c *Campaign) RemainingBudget() int64 {
	if c.BudgetSpent >= c.BudgetTotal {
		return 0
	}
	return c.BudgetTotal - c.BudgetSpent
}

// PerImpressionCost derives the debit applied per simulated impression from
// the locked-in budget and the reach estimated at purchase time. It is at
// least one cent so accrual always converges on BudgetTotal.
func (c *Campaign) PerImpressionCost() int64 {
	if c.EstimatedReach <= 0 {
		return 1
	}
	cost := c.BudgetTotal / c.EstimatedReach
	if cost < 1 {
		cost = 1
	}
	return cost
}

// OwnedBy reports whether the campaign belongs to the given provider.
func (c *Campaign) OwnedBy(providerID string) bool {
	return c.ProviderID == providerID
}
