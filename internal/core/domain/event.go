package domain

import "time"

// EventType identifies a delivery event recorded against a campaign.
type EventType string

const (
	EventClick      EventType = "click"
	EventConversion EventType = "conversion"
)

// Event is a single click or conversion produced by the delivery simulator.
type Event struct {
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventRetention caps the per-campaign event feed kept for display.
const EventRetention = 50

// AppendEvent appends an event and prunes the feed to the retention cap,
// keeping the most recent entries.
func (c *Campaign) AppendEvent(ev Event) {
	c.Events = append(c.Events, ev)
	if n := len(c.Events); n > EventRetention {
		c.Events = c.Events[n-EventRetention:]
	}
}
