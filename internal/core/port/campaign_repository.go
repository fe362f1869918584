package port

import (
	"context"

	"boost-ads/internal/core/domain"
)

// CampaignRepository is the outbound port for durable campaign and settings
// storage. Implementations must serialize mutations per campaign id:
// UpdateAtomic runs the mutation against the current row under a write lock
// so two concurrent transitions on the same campaign cannot both succeed
// when they are mutually exclusive. Reads return snapshots and are
// lock-free with respect to each other.
//
// Storage failures are wrapped in domain.ErrStoreUnavailable; callers must
// not assume a write happened unless it was acknowledged.
type CampaignRepository interface {
	// CreateCampaign persists a new campaign.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign snapshot, or domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	// ListByProvider returns the provider's campaigns, newest first.
	ListByProvider(ctx context.Context, providerID string) ([]domain.Campaign, error)
	// ListAll returns every campaign, newest first.
	ListAll(ctx context.Context) ([]domain.Campaign, error)
	// ListByStatus returns campaigns in the given status, oldest first.
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.Campaign, error)
	// UpdateAtomic loads the campaign under a per-id write lock, applies
	// mutate to it and persists the result. If mutate returns an error the
	// write is rolled back and the error is returned unchanged. The updated
	// snapshot is returned on success.
	UpdateAtomic(ctx context.Context, id string, mutate func(*domain.Campaign) error) (*domain.Campaign, error)

	// GetSettings returns the current global ad settings. Never cached by
	// callers across a creation decision.
	GetSettings(ctx context.Context) (*domain.AdSettings, error)
	// SaveSettings persists settings if the stored version still matches
	// s.Version, then bumps the version. A concurrent write surfaces as
	// domain.ErrSettingsConflict.
	SaveSettings(ctx context.Context, s *domain.AdSettings) error
}
