// Package events publishes domain events after a state change has committed.
package events

import (
	"context"
	"time"

	"car-rental-core/utils"
)

// Type names a domain event; it doubles as the AMQP routing key
type Type string

const (
	ReservationCreated   Type = "reservation.created"
	ReservationUpdated   Type = "reservation.updated"
	ReservationConfirmed Type = "reservation.confirmed"
	ReservationCancelled Type = "reservation.cancelled"
	ReservationDeleted   Type = "reservation.deleted"
	BidPlaced            Type = "auction.bid_placed"
)

// Event is a committed domain fact
type Event struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	ResourceID string    `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// New stamps an event with an id
func New(t Type, resourceID string, occurredAt time.Time, payload any) Event {
	return Event{
		ID:         utils.GenerateID(),
		Type:       t,
		ResourceID: resourceID,
		OccurredAt: occurredAt,
		Payload:    payload,
	}
}

// Publisher delivers events to interested parties
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// LogPublisher writes events to the structured log
type LogPublisher struct{}

// NewLogPublisher creates a LogPublisher
func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

// Publish implements Publisher
func (LogPublisher) Publish(_ context.Context, event Event) error {
	utils.Info("domain event", map[string]any{
		"event_id":    event.ID,
		"event_type":  string(event.Type),
		"resource_id": event.ResourceID,
		"occurred_at": event.OccurredAt.UTC().Format(time.RFC3339),
	})
	return nil
}

// PublishQuietly publishes and logs a failure instead of returning it.
// The state change is already committed, so a lost event must not fail the caller.
func PublishQuietly(ctx context.Context, p Publisher, event Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, event); err != nil {
		utils.Warn("events: failed to publish", map[string]any{
			"event_type":  string(event.Type),
			"resource_id": event.ResourceID,
			"error":       err.Error(),
		})
	}
}
