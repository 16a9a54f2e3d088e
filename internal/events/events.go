package events

import (
	"context"
	"time"
)

// Event types
const (
	TenantCreated     = "tenant.created"
	LeaseCreated      = "lease.created"
	UnitCreated       = "unit.created"
	UnitStatusChanged = "unit.status_changed"
	PropertyCreated   = "property.created"
	PropertyDeleted   = "property.deleted"
)

// Event domain change notification
type Event struct {
	Type       string    `json:"type"`
	RealtorID  uint      `json:"realtorId"`
	EntityID   uint      `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload,omitempty"`
}

// New stamps an event with the current time
func New(eventType string, realtorID, entityID uint, payload any) Event {
	return Event{
		Type:       eventType,
		RealtorID:  realtorID,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Publisher delivers events to a broker. Callers log failures and carry on.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NopPublisher drops events
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
