package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"boost-ads/internal/adapter/usecase"
	"boost-ads/internal/core/domain"
	"boost-ads/internal/core/port"
)

// DeliverySimulator is the server-owned scheduled task that accrues
// impressions, clicks and conversions against every active campaign. One
// simulator runs per deployment, so any number of open dashboards observe
// a single converged truth instead of per-viewer drift.
//
// Each campaign tick is a single atomic mutation through the lifecycle
// manager; a campaign stopped concurrently loses at most one in-flight tick
// and no tick ever starts against a campaign already observed non-active.
type DeliverySimulator struct {
	repo      port.CampaignRepository
	lifecycle *usecase.Lifecycle
	traffic   port.TrafficModel
	logger    *slog.Logger

	interval time.Duration

	running bool
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewDeliverySimulator creates a simulator ticking at the given interval.
func NewDeliverySimulator(repo port.CampaignRepository, lifecycle *usecase.Lifecycle, traffic port.TrafficModel, interval time.Duration, logger *slog.Logger) *DeliverySimulator {
	return &DeliverySimulator{
		repo:      repo,
		lifecycle: lifecycle,
		traffic:   traffic,
		interval:  interval,
		logger:    logger,
	}
}

// Start begins the accrual loop.
func (s *DeliverySimulator) Start() {
	if s.running {
		return
	}
	s.running = true
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("delivery simulator starting", slog.Duration("interval", s.interval))
	s.wg.Add(1)
	go s.runLoop()
}

// Stop cancels the loop and waits for an in-flight tick to drain.
func (s *DeliverySimulator) Stop() {
	if !s.running {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.running = false
	s.logger.Info("delivery simulator stopped")
}

func (s *DeliverySimulator) runLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.Tick(s.ctx)
		}
	}
}

// Tick advances every active campaign once. It is exported so tests and
// operational tooling can drive the simulator without the timer.
func (s *DeliverySimulator) Tick(ctx context.Context) {
	campaigns, err := s.repo.ListByStatus(ctx, domain.StatusActive)
	if err != nil {
		s.logger.Error("delivery tick: listing active campaigns", slog.Any("error", err))
		return
	}

	for i := range campaigns {
		c := &campaigns[i]
		draw := s.traffic.Draw(c)
		updated, err := s.lifecycle.AdvanceDelivery(ctx, c.ID, draw)
		if err != nil {
			if usecase.IsBenignTickLoss(err) {
				// Lost a race with a user transition; next tick skips it.
				continue
			}
			s.logger.Error("delivery tick failed",
				slog.String("campaign_id", c.ID), slog.Any("error", err))
			continue
		}
		if updated.Status == domain.StatusCompleted {
			s.logger.Info("campaign completed",
				slog.String("campaign_id", updated.ID),
				slog.Int64("budget_spent", updated.BudgetSpent))
		}
	}
}
