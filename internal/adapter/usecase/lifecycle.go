package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"boost-ads/internal/core/domain"
	"boost-ads/internal/core/port"
)

// Lifecycle enforces the campaign state machine. It is the only component
// that mutates campaigns; everything else works on read-only snapshots.
// It implements port.CampaignUseCase and backs the moderation and delivery
// paths.
type Lifecycle struct {
	repo    port.CampaignRepository
	auditor port.ContentAuditor
	ledger  port.Ledger
	logger  *slog.Logger

	now func() time.Time
}

// NewLifecycle creates a lifecycle manager with the provided collaborators.
func NewLifecycle(repo port.CampaignRepository, auditor port.ContentAuditor, ledger port.Ledger, logger *slog.Logger) *Lifecycle {
	return &Lifecycle{
		repo:    repo,
		auditor: auditor,
		ledger:  ledger,
		logger:  logger,
		now:     time.Now,
	}
}

// QuoteCampaign prices a prospective campaign from freshly read settings.
func (l *Lifecycle) QuoteCampaign(ctx context.Context, tier domain.DurationTier, audience domain.Audience) (*port.Quote, error) {
	settings, err := l.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	cost, err := ComputeCost(tier, settings)
	if err != nil {
		return nil, err
	}
	reach, err := EstimateReach(tier, audience, settings)
	if err != nil {
		return nil, err
	}
	return &port.Quote{Cost: cost, EstimatedReach: reach}, nil
}

// AnalyzeCreative runs the optional pre-submission audit. The auditor is
// side-effect free, so repeated calls are safe.
func (l *Lifecycle) AnalyzeCreative(ctx context.Context, creative domain.Creative) (*domain.AuditResult, error) {
	if err := creative.Validate(); err != nil {
		return nil, err
	}
	return l.auditor.Audit(ctx, creative)
}

// CreateCampaign validates the request against fresh settings, charges the
// buyer, audits the creative and persists the campaign. The audit decides
// the initial status: safe creatives go straight to active, anything else
// (including an unavailable auditor) lands in pending_review for a human
// moderator. A failed charge prevents creation; a failed persist refunds
// the charge.
func (l *Lifecycle) CreateCampaign(ctx context.Context, actor domain.Actor, req port.CreateCampaignReq) (*domain.Campaign, error) {
	if err := req.Creative.Validate(); err != nil {
		return nil, err
	}
	if !req.Audience.Valid() {
		return nil, fmt.Errorf("%w: audience %q", domain.ErrUnknownTier, req.Audience)
	}
	window, ok := req.DurationTier.Window()
	if !ok {
		return nil, fmt.Errorf("%w: duration %q", domain.ErrUnknownTier, req.DurationTier)
	}

	settings, err := l.repo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !settings.Enabled {
		return nil, domain.ErrSettingsDisabled
	}
	if !settings.CountryAllowed(req.TargetCountry) {
		return nil, fmt.Errorf("%w: %q", domain.ErrCountryNotAllowed, req.TargetCountry)
	}

	cost, err := ComputeCost(req.DurationTier, settings)
	if err != nil {
		return nil, err
	}
	reach, err := EstimateReach(req.DurationTier, req.Audience, settings)
	if err != nil {
		return nil, err
	}

	if err = l.ledger.Charge(ctx, actor.ProviderID, cost); err != nil {
		return nil, err
	}

	status := domain.StatusPendingReview
	analysis, auditErr := l.auditor.Audit(ctx, req.Creative)
	switch {
	case auditErr != nil:
		l.logger.Warn("content audit inconclusive, queueing for review",
			slog.String("provider_id", actor.ProviderID), slog.Any("error", auditErr))
		analysis = &domain.AuditResult{
			Reason: "content audit unavailable, queued for manual review",
		}
	case analysis.IsSafe:
		status = domain.StatusActive
	}

	now := l.now().UTC()
	campaign := &domain.Campaign{
		ID:             uuid.NewString(),
		ProviderID:     actor.ProviderID,
		ProviderName:   actor.ProviderName,
		Creative:       req.Creative,
		Audience:       req.Audience,
		DurationTier:   req.DurationTier,
		TargetCountry:  req.TargetCountry,
		BudgetTotal:    cost,
		EstimatedReach: reach,
		Status:         status,
		AIAnalysis:     analysis,
		CreatedAt:      now,
		EndsAt:         now.Add(window),
		UpdatedAt:      now,
	}

	if err = l.repo.CreateCampaign(ctx, campaign); err != nil {
		// The buyer was already charged; give the money back before
		// surfacing the store failure.
		if refundErr := l.ledger.Refund(ctx, actor.ProviderID, cost); refundErr != nil {
			l.logger.Error("compensating refund failed",
				slog.String("provider_id", actor.ProviderID),
				slog.Int64("amount", cost), slog.Any("error", refundErr))
		}
		return nil, err
	}

	l.logger.Info("campaign created",
		slog.String("campaign_id", campaign.ID),
		slog.String("provider_id", actor.ProviderID),
		slog.String("status", string(status)),
		slog.Int64("budget_total", cost))
	return campaign, nil
}

// GetCampaign returns a campaign visible to the actor.
func (l *Lifecycle) GetCampaign(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	c, err := l.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Admin && !c.OwnedBy(actor.ProviderID) {
		return nil, domain.ErrUnauthorized
	}
	return c, nil
}

// ListCampaigns returns the actor's own campaigns.
func (l *Lifecycle) ListCampaigns(ctx context.Context, actor domain.Actor) ([]domain.Campaign, error) {
	return l.repo.ListByProvider(ctx, actor.ProviderID)
}

// Pause suspends delivery accrual. Provider-only, active -> paused. Unspent
// budget stays charged.
func (l *Lifecycle) Pause(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	return l.ownerTransition(ctx, actor, id, domain.StatusPaused)
}

// Resume restarts delivery accrual. Provider-only, paused -> active.
func (l *Lifecycle) Resume(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	return l.ownerTransition(ctx, actor, id, domain.StatusActive)
}

// Stop terminates the campaign from active or paused. The unspent budget
// is forfeited, matching the cancellation warning shown to the buyer.
func (l *Lifecycle) Stop(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	return l.ownerTransition(ctx, actor, id, domain.StatusStopped)
}

func (l *Lifecycle) ownerTransition(ctx context.Context, actor domain.Actor, id string, to domain.Status) (*domain.Campaign, error) {
	return l.repo.UpdateAtomic(ctx, id, func(c *domain.Campaign) error {
		if !c.OwnedBy(actor.ProviderID) {
			return domain.ErrUnauthorized
		}
		if !domain.CanTransition(c.Status, to) {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, c.Status, to)
		}
		c.Status = to
		return nil
	})
}

// Approve moves a pending campaign into delivery. Administrator-only.
func (l *Lifecycle) Approve(ctx context.Context, actor domain.Actor, id string) (*domain.Campaign, error) {
	if !actor.Admin {
		return nil, domain.ErrUnauthorized
	}
	c, err := l.repo.UpdateAtomic(ctx, id, func(c *domain.Campaign) error {
		if c.Status != domain.StatusPendingReview {
			return fmt.Errorf("%w: approve from %s", domain.ErrInvalidTransition, c.Status)
		}
		c.Status = domain.StatusActive
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.logger.Info("campaign approved", slog.String("campaign_id", id))
	return c, nil
}

// Reject refunds the full budget and marks the campaign rejected.
// Administrator-only. The refund happens inside the locked mutation: if it
// fails the transaction rolls back and the campaign stays pending_review so
// an operator can retry. No partial outcome is observable.
func (l *Lifecycle) Reject(ctx context.Context, actor domain.Actor, id string, reason string) (*domain.Campaign, error) {
	if !actor.Admin {
		return nil, domain.ErrUnauthorized
	}
	c, err := l.repo.UpdateAtomic(ctx, id, func(c *domain.Campaign) error {
		if c.Status != domain.StatusPendingReview {
			return fmt.Errorf("%w: reject from %s", domain.ErrInvalidTransition, c.Status)
		}
		if err := l.ledger.Refund(ctx, c.ProviderID, c.BudgetTotal); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrRefundFailed, err)
		}
		c.Status = domain.StatusRejected
		if c.AIAnalysis == nil {
			c.AIAnalysis = &domain.AuditResult{}
		}
		if reason != "" {
			c.AIAnalysis.Reason = reason
		} else if c.AIAnalysis.Reason == "" {
			c.AIAnalysis.Reason = "rejected by moderator"
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.logger.Info("campaign rejected and refunded",
		slog.String("campaign_id", id), slog.Int64("refund", c.BudgetTotal))
	return c, nil
}

// AdvanceDelivery applies one simulator tick to an active campaign. The
// whole step runs inside a single locked mutation, so a concurrent stop or
// pause makes this tick lose cleanly with ErrInvalidTransition.
//
// Accrual is monotonic and clamped: spend never exceeds BudgetTotal,
// clicks never exceed impressions, conversions never exceed clicks. The
// campaign completes when the spend clamp is hit or its duration window
// has elapsed.
func (l *Lifecycle) AdvanceDelivery(ctx context.Context, id string, draw port.TrafficDraw) (*domain.Campaign, error) {
	return l.repo.UpdateAtomic(ctx, id, func(c *domain.Campaign) error {
		if c.Status != domain.StatusActive {
			return fmt.Errorf("%w: delivery tick on %s campaign", domain.ErrInvalidTransition, c.Status)
		}
		now := l.now().UTC()
		if !now.Before(c.EndsAt) {
			c.Status = domain.StatusCompleted
			return nil
		}

		impressions := max(draw.Impressions, 0)
		clicks := min(max(draw.Clicks, 0), impressions)
		conversions := min(max(draw.Conversions, 0), clicks)

		debit := impressions * c.PerImpressionCost()
		clamped := false
		if remaining := c.RemainingBudget(); debit >= remaining {
			debit = remaining
			clamped = true
		}

		c.Stats.Impressions += impressions
		c.Stats.Clicks += clicks
		c.Stats.Reservations += conversions
		if conversions > 0 && draw.Revenue > 0 {
			c.Stats.RevenueGenerated += draw.Revenue
		}
		c.BudgetSpent += debit

		for i := int64(0); i < clicks; i++ {
			c.AppendEvent(domain.Event{Type: domain.EventClick, OccurredAt: now})
		}
		for i := int64(0); i < conversions; i++ {
			c.AppendEvent(domain.Event{Type: domain.EventConversion, OccurredAt: now})
		}

		if clamped {
			c.Status = domain.StatusCompleted
		}
		return nil
	})
}

// IsBenignTickLoss reports whether an AdvanceDelivery error is an expected
// race with a concurrent user transition rather than a real failure.
func IsBenignTickLoss(err error) bool {
	return errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrCampaignNotFound)
}
