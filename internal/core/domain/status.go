package domain

// Status is the lifecycle state of a campaign.
type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusActive        Status = "active"
	StatusPaused        Status = "paused"
	StatusRejected      Status = "rejected"
	StatusStopped       Status = "stopped"
	StatusCompleted     Status = "completed"
)

// Terminal reports whether the status is final. Terminal campaigns never
// change status, budget or stats again.
func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusStopped, StatusCompleted:
		return true
	}
	return false
}

// CanTransition enforces the campaign state machine:
//
//	pending_review -> active | rejected
//	active        <-> paused
//	active, paused -> stopped
//	active         -> completed (system-driven)
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPendingReview:
		return to == StatusActive || to == StatusRejected
	case StatusActive:
		return to == StatusPaused || to == StatusStopped || to == StatusCompleted
	case StatusPaused:
		return to == StatusActive || to == StatusStopped
	default:
		return false
	}
}
