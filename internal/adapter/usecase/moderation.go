package usecase

import (
	"context"
	"fmt"

	"boost-ads/internal/core/domain"
	"boost-ads/internal/core/port"
)

// Moderation is the administrative surface over the review queue and the
// global ad settings. Decisions delegate to the Lifecycle so the state
// machine lives in one place; a campaign resolved by a concurrent moderator
// surfaces as an invalid transition here.
type Moderation struct {
	repo      port.CampaignRepository
	lifecycle *Lifecycle
}

// NewModeration creates the moderation gateway.
func NewModeration(repo port.CampaignRepository, lifecycle *Lifecycle) *Moderation {
	return &Moderation{repo: repo, lifecycle: lifecycle}
}

// ListAll returns every campaign for the admin dashboard.
func (m *Moderation) ListAll(ctx context.Context, actor domain.Actor) ([]domain.Campaign, error) {
	if !actor.Admin {
		return nil, domain.ErrUnauthorized
	}
	return m.repo.ListAll(ctx)
}

// ListPending returns campaigns awaiting review, oldest first so the queue
// is drained fairly.
func (m *Moderation) ListPending(ctx context.Context, actor domain.Actor) ([]domain.Campaign, error) {
	if !actor.Admin {
		return nil, domain.ErrUnauthorized
	}
	return m.repo.ListByStatus(ctx, domain.StatusPendingReview)
}

// Approve resolves a pending campaign into delivery.
func (m *Moderation) Approve(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	return m.lifecycle.Approve(ctx, actor, id)
}

// Reject resolves a pending campaign with a refund.
func (m *Moderation) Reject(ctx context.Context, actor domain.Actor, id string, reason string) (*domain.Campaign, error) {
	return m.lifecycle.Reject(ctx, actor, id, reason)
}

// GetSettings returns the current global ad settings.
func (m *Moderation) GetSettings(ctx context.Context, actor domain.Actor) (*domain.AdSettings, error) {
	if !actor.Admin {
		return nil, domain.ErrUnauthorized
	}
	return m.repo.GetSettings(ctx)
}

// UpdateSettings validates and persists new global settings through the
// single admin writer path. The caller's Version must match the stored one.
// Already-created campaigns keep their locked-in budgets.
func (m *Moderation) UpdateSettings(ctx context.Context, actor domain.Actor, s domain.AdSettings) (*domain.AdSettings, error) {
	if !actor.Admin {
		return nil, domain.ErrUnauthorized
	}
	if s.BaseCPM <= 0 {
		return nil, fmt.Errorf("%w: base CPM must be positive", domain.ErrInvalidSettings)
	}
	for _, tier := range []domain.DurationTier{domain.Duration24h, domain.Duration3d, domain.Duration7d, domain.Duration30d} {
		if mult, ok := s.MultiplierFor(tier); !ok || mult <= 0 {
			return nil, fmt.Errorf("%w: missing multiplier for tier %q", domain.ErrInvalidSettings, tier)
		}
	}
	if err := m.repo.SaveSettings(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
