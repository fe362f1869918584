package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		want     bool
	}{
		{StatusPendingReview, StatusActive, true},
		{StatusPendingReview, StatusRejected, true},
		{StatusPendingReview, StatusPaused, false},
		{StatusPendingReview, StatusStopped, false},

		{StatusActive, StatusPaused, true},
		{StatusActive, StatusStopped, true},
		{StatusActive, StatusCompleted, true},
		{StatusActive, StatusPendingReview, false},
		{StatusActive, StatusRejected, false},

		{StatusPaused, StatusActive, true},
		{StatusPaused, StatusStopped, true},
		{StatusPaused, StatusCompleted, false},

		{StatusRejected, StatusActive, false},
		{StatusStopped, StatusActive, false},
		{StatusCompleted, StatusActive, false},
		{StatusStopped, StatusStopped, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusPendingReview.Terminal())
	assert.False(t, StatusActive.Terminal())
	assert.False(t, StatusPaused.Terminal())
	assert.True(t, StatusRejected.Terminal())
	assert.True(t, StatusStopped.Terminal())
	assert.True(t, StatusCompleted.Terminal())
}
