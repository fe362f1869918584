package usecase

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boost-ads/internal/core/domain"
	"boost-ads/internal/core/port"
	"boost-ads/internal/core/port/mocks"
)

var (
	provider = domain.Actor{ProviderID: "prov-1", ProviderName: "Dream Weddings"}
	admin    = domain.Actor{ProviderID: "admin-1", Admin: true}

	validCreative = domain.Creative{
		Headline: "Boost your big day",
		Tagline:  "Premium wedding photography",
		Tags:     []string{"wedding", "photo"},
	}
)

func newTestLifecycle(t *testing.T) (*Lifecycle, *mocks.MockCampaignRepository, *mocks.MockContentAuditor, *mocks.MockLedger) {
	repo := mocks.NewMockCampaignRepository(t)
	auditor := mocks.NewMockContentAuditor(t)
	wallet := mocks.NewMockLedger(t)
	l := NewLifecycle(repo, auditor, wallet, slog.New(slog.DiscardHandler))
	return l, repo, auditor, wallet
}

func createReq() port.CreateCampaignReq {
	return port.CreateCampaignReq{
		Creative:      validCreative,
		Audience:      domain.AudienceLocal,
		DurationTier:  domain.Duration24h,
		TargetCountry: "US",
	}
}

// expectUpdateAtomic wires the mock repository so UpdateAtomic applies the
// mutation to the given campaign, mirroring the row-locked behaviour of the
// real store.
func expectUpdateAtomic(repo *mocks.MockCampaignRepository, c *domain.Campaign) {
	repo.EXPECT().
		UpdateAtomic(mock.Anything, c.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, mutate func(*domain.Campaign) error) (*domain.Campaign, error) {
			if err := mutate(c); err != nil {
				return nil, err
			}
			return c, nil
		})
}

func TestCreateCampaignActiveOnSafeAudit(t *testing.T) {
	l, repo, auditor, wallet := newTestLifecycle(t)

	repo.EXPECT().GetSettings(mock.Anything).Return(testSettings(200), nil)
	wallet.EXPECT().Charge(mock.Anything, "prov-1", int64(20000)).Return(nil)
	auditor.EXPECT().Audit(mock.Anything, validCreative).
		Return(&domain.AuditResult{IsSafe: true, SafetyScore: 95, QualityScore: 80}, nil)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	c, err := l.CreateCampaign(context.Background(), provider, createReq())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)
	assert.Equal(t, int64(20000), c.BudgetTotal)
	assert.Equal(t, int64(0), c.BudgetSpent)
	assert.Equal(t, int64(1000), c.EstimatedReach)
	assert.Equal(t, "prov-1", c.ProviderID)
	assert.True(t, c.EndsAt.Equal(c.CreatedAt.Add(24*time.Hour)))
}

func TestCreateCampaignPendingOnUnsafeAudit(t *testing.T) {
	l, repo, auditor, wallet := newTestLifecycle(t)

	repo.EXPECT().GetSettings(mock.Anything).Return(testSettings(200), nil)
	wallet.EXPECT().Charge(mock.Anything, "prov-1", int64(20000)).Return(nil)
	auditor.EXPECT().Audit(mock.Anything, validCreative).
		Return(&domain.AuditResult{IsSafe: false, SafetyScore: 30, Issues: []string{"misleading claim"}}, nil)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	c, err := l.CreateCampaign(context.Background(), provider, createReq())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingReview, c.Status)
	require.NotNil(t, c.AIAnalysis)
	assert.Equal(t, []string{"misleading claim"}, c.AIAnalysis.Issues)
}

func TestCreateCampaignPendingOnInconclusiveAudit(t *testing.T) {
	l, repo, auditor, wallet := newTestLifecycle(t)

	repo.EXPECT().GetSettings(mock.Anything).Return(testSettings(200), nil)
	wallet.EXPECT().Charge(mock.Anything, "prov-1", int64(20000)).Return(nil)
	auditor.EXPECT().Audit(mock.Anything, validCreative).
		Return(nil, domain.ErrAuditInconclusive)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).Return(nil)

	c, err := l.CreateCampaign(context.Background(), provider, createReq())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingReview, c.Status)
	require.NotNil(t, c.AIAnalysis)
	assert.NotEmpty(t, c.AIAnalysis.Reason)
}

func TestCreateCampaignCountryNotAllowed(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	repo.EXPECT().GetSettings(mock.Anything).Return(testSettings(200), nil)

	req := createReq()
	req.TargetCountry = "XX"
	_, err := l.CreateCampaign(context.Background(), provider, req)
	assert.ErrorIs(t, err, domain.ErrCountryNotAllowed)
	// no charge and no persist expectations: the mock fails the test if
	// either collaborator is touched
}

func TestCreateCampaignSettingsDisabled(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	settings := testSettings(200)
	settings.Enabled = false
	repo.EXPECT().GetSettings(mock.Anything).Return(settings, nil)

	_, err := l.CreateCampaign(context.Background(), provider, createReq())
	assert.ErrorIs(t, err, domain.ErrSettingsDisabled)
}

func TestCreateCampaignInvalidCreative(t *testing.T) {
	l, _, _, _ := newTestLifecycle(t)

	req := createReq()
	req.Creative.Headline = "this headline is definitely way too long"
	_, err := l.CreateCampaign(context.Background(), provider, req)
	assert.ErrorIs(t, err, domain.ErrInvalidCreative)
}

func TestCreateCampaignChargeFails(t *testing.T) {
	l, repo, _, wallet := newTestLifecycle(t)

	repo.EXPECT().GetSettings(mock.Anything).Return(testSettings(200), nil)
	wallet.EXPECT().Charge(mock.Anything, "prov-1", int64(20000)).
		Return(domain.ErrInsufficientFunds)

	_, err := l.CreateCampaign(context.Background(), provider, createReq())
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	// nothing may be persisted after a failed charge
	repo.AssertNotCalled(t, "CreateCampaign", mock.Anything, mock.Anything)
}

func TestCreateCampaignPersistFailureRefunds(t *testing.T) {
	l, repo, auditor, wallet := newTestLifecycle(t)

	repo.EXPECT().GetSettings(mock.Anything).Return(testSettings(200), nil)
	wallet.EXPECT().Charge(mock.Anything, "prov-1", int64(20000)).Return(nil)
	auditor.EXPECT().Audit(mock.Anything, validCreative).
		Return(&domain.AuditResult{IsSafe: true}, nil)
	repo.EXPECT().CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Return(domain.ErrStoreUnavailable)
	wallet.EXPECT().Refund(mock.Anything, "prov-1", int64(20000)).Return(nil)

	_, err := l.CreateCampaign(context.Background(), provider, createReq())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func pendingCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:             "camp-1",
		ProviderID:     "prov-1",
		Status:         domain.StatusPendingReview,
		BudgetTotal:    20000,
		EstimatedReach: 1000,
		CreatedAt:      time.Now().UTC(),
		EndsAt:         time.Now().UTC().Add(24 * time.Hour),
	}
}

func TestApprove(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	expectUpdateAtomic(repo, c)

	updated, err := l.Approve(context.Background(), admin, "camp-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, updated.Status)
}

func TestApproveTwiceSecondLoses(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	repo.EXPECT().
		UpdateAtomic(mock.Anything, c.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, mutate func(*domain.Campaign) error) (*domain.Campaign, error) {
			if err := mutate(c); err != nil {
				return nil, err
			}
			return c, nil
		}).Twice()

	_, err := l.Approve(context.Background(), admin, "camp-1")
	require.NoError(t, err)

	_, err = l.Approve(context.Background(), admin, "camp-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, domain.StatusActive, c.Status)
}

func TestApproveRequiresAdmin(t *testing.T) {
	l, _, _, _ := newTestLifecycle(t)

	_, err := l.Approve(context.Background(), provider, "camp-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRejectRefundsAtomically(t *testing.T) {
	l, repo, _, wallet := newTestLifecycle(t)

	c := pendingCampaign()
	expectUpdateAtomic(repo, c)
	wallet.EXPECT().Refund(mock.Anything, "prov-1", int64(20000)).Return(nil)

	updated, err := l.Reject(context.Background(), admin, "camp-1", "low quality creative")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, updated.Status)
	require.NotNil(t, updated.AIAnalysis)
	assert.Equal(t, "low quality creative", updated.AIAnalysis.Reason)
}

func TestRejectRefundFailureKeepsPending(t *testing.T) {
	l, repo, _, wallet := newTestLifecycle(t)

	c := pendingCampaign()
	expectUpdateAtomic(repo, c)
	wallet.EXPECT().Refund(mock.Anything, "prov-1", int64(20000)).
		Return(errors.New("ledger timeout"))

	_, err := l.Reject(context.Background(), admin, "camp-1", "")
	assert.ErrorIs(t, err, domain.ErrRefundFailed)
	// status untouched so an operator can retry the rejection
	assert.Equal(t, domain.StatusPendingReview, c.Status)
}

func TestRejectAfterResolutionFails(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	c.Status = domain.StatusActive
	expectUpdateAtomic(repo, c)

	_, err := l.Reject(context.Background(), admin, "camp-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPauseResumeStop(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	c.Status = domain.StatusActive
	repo.EXPECT().
		UpdateAtomic(mock.Anything, c.ID, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, mutate func(*domain.Campaign) error) (*domain.Campaign, error) {
			if err := mutate(c); err != nil {
				return nil, err
			}
			return c, nil
		}).Times(3)

	_, err := l.Pause(context.Background(), provider, "camp-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPaused, c.Status)

	_, err = l.Resume(context.Background(), provider, "camp-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, c.Status)

	_, err = l.Stop(context.Background(), provider, "camp-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStopped, c.Status)
}

func TestPausePendingCampaignFails(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	expectUpdateAtomic(repo, c)

	_, err := l.Pause(context.Background(), provider, "camp-1")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestPauseByNonOwnerFails(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	c.Status = domain.StatusActive
	expectUpdateAtomic(repo, c)

	other := domain.Actor{ProviderID: "prov-2"}
	_, err := l.Pause(context.Background(), other, "camp-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, domain.StatusActive, c.Status)
}

func TestStopForfeitsWithoutRefund(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	c.Status = domain.StatusActive
	c.BudgetSpent = 5000
	expectUpdateAtomic(repo, c)

	updated, err := l.Stop(context.Background(), provider, "camp-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStopped, updated.Status)
	// the ledger mock has no Refund expectation: forfeited budget stays
	// with the platform
	assert.Equal(t, int64(5000), updated.BudgetSpent)
}

func TestAdvanceDeliveryAccruesAndClamps(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	c.Status = domain.StatusActive
	c.BudgetTotal = 5000
	c.EstimatedReach = 1000 // 5 cents per impression
	c.BudgetSpent = 4980
	expectUpdateAtomic(repo, c)

	// 10 impressions would debit 50, only 20 remains: clamp and complete
	updated, err := l.AdvanceDelivery(context.Background(), "camp-1", port.TrafficDraw{
		Impressions: 10,
		Clicks:      2,
		Conversions: 1,
		Revenue:     3000,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), updated.BudgetSpent)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	assert.Equal(t, int64(10), updated.Stats.Impressions)
	assert.Equal(t, int64(2), updated.Stats.Clicks)
	assert.Equal(t, int64(1), updated.Stats.Reservations)
	assert.Equal(t, int64(3000), updated.Stats.RevenueGenerated)
	assert.Len(t, updated.Events, 3)
}

func TestAdvanceDeliveryClampsFunnel(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	c.Status = domain.StatusActive
	c.BudgetTotal = 5000
	c.EstimatedReach = 1000
	expectUpdateAtomic(repo, c)

	// an adversarial draw must never yield clicks > impressions or
	// reservations > clicks
	updated, err := l.AdvanceDelivery(context.Background(), "camp-1", port.TrafficDraw{
		Impressions: 3,
		Clicks:      10,
		Conversions: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.Stats.Impressions)
	assert.Equal(t, int64(3), updated.Stats.Clicks)
	assert.Equal(t, int64(3), updated.Stats.Reservations)
	assert.LessOrEqual(t, updated.Stats.Clicks, updated.Stats.Impressions)
	assert.LessOrEqual(t, updated.Stats.Reservations, updated.Stats.Clicks)
}

func TestAdvanceDeliveryCompletesOnElapsedWindow(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	c.Status = domain.StatusActive
	c.EndsAt = time.Now().UTC().Add(-time.Minute)
	expectUpdateAtomic(repo, c)

	updated, err := l.AdvanceDelivery(context.Background(), "camp-1", port.TrafficDraw{Impressions: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	// no accrual past the window
	assert.Equal(t, int64(0), updated.Stats.Impressions)
	assert.Equal(t, int64(0), updated.BudgetSpent)
}

func TestAdvanceDeliveryOnStoppedCampaign(t *testing.T) {
	l, repo, _, _ := newTestLifecycle(t)

	c := pendingCampaign()
	c.Status = domain.StatusStopped
	expectUpdateAtomic(repo, c)

	_, err := l.AdvanceDelivery(context.Background(), "camp-1", port.TrafficDraw{Impressions: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.True(t, IsBenignTickLoss(err))
}
