package usecase

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boost-ads/internal/core/domain"
	"boost-ads/internal/core/port/mocks"
)

func newTestModeration(t *testing.T) (*Moderation, *mocks.MockCampaignRepository) {
	repo := mocks.NewMockCampaignRepository(t)
	lifecycle := NewLifecycle(repo, mocks.NewMockContentAuditor(t), mocks.NewMockLedger(t), slog.New(slog.DiscardHandler))
	return NewModeration(repo, lifecycle), repo
}

func TestModerationListPending(t *testing.T) {
	m, repo := newTestModeration(t)

	queue := []domain.Campaign{*pendingCampaign()}
	repo.EXPECT().ListByStatus(mock.Anything, domain.StatusPendingReview).Return(queue, nil)

	got, err := m.ListPending(context.Background(), admin)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestModerationAdminGating(t *testing.T) {
	m, _ := newTestModeration(t)
	ctx := context.Background()

	_, err := m.ListAll(ctx, provider)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = m.ListPending(ctx, provider)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = m.Approve(ctx, provider, "camp-1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = m.Reject(ctx, provider, "camp-1", "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = m.GetSettings(ctx, provider)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = m.UpdateSettings(ctx, provider, *testSettings(250))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUpdateSettings(t *testing.T) {
	m, repo := newTestModeration(t)

	next := *testSettings(300)
	repo.EXPECT().SaveSettings(mock.Anything, mock.AnythingOfType("*domain.AdSettings")).Return(nil)

	saved, err := m.UpdateSettings(context.Background(), admin, next)
	require.NoError(t, err)
	assert.Equal(t, int64(300), saved.BaseCPM)
}

func TestUpdateSettingsRejectsBadValues(t *testing.T) {
	m, _ := newTestModeration(t)
	ctx := context.Background()

	bad := *testSettings(250)
	bad.BaseCPM = 0
	_, err := m.UpdateSettings(ctx, admin, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)

	missing := *testSettings(250)
	missing.DurationMultipliers = map[domain.DurationTier]float64{
		domain.Duration24h: 1,
	}
	_, err = m.UpdateSettings(ctx, admin, missing)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)

	negative := *testSettings(250)
	negative.DurationMultipliers[domain.Duration7d] = -1
	_, err = m.UpdateSettings(ctx, admin, negative)
	assert.ErrorIs(t, err, domain.ErrInvalidSettings)
}

func TestUpdateSettingsVersionConflict(t *testing.T) {
	m, repo := newTestModeration(t)

	repo.EXPECT().SaveSettings(mock.Anything, mock.AnythingOfType("*domain.AdSettings")).
		Return(domain.ErrSettingsConflict)

	_, err := m.UpdateSettings(context.Background(), admin, *testSettings(250))
	assert.ErrorIs(t, err, domain.ErrSettingsConflict)
}
