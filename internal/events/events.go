// Package events defines the booking lifecycle events published to Kafka and
// the publisher that carries them.
package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Topic and event type names.
const (
	TopicBookingEvents = "booking.events"

	BookingCreated       = "booking.created"
	BookingStatusChanged = "booking.status_changed"
	BookingDeleted       = "booking.deleted"
)

// Envelope is the CloudEvents-style wrapper every published event travels in.
type Envelope struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewEnvelope wraps event data in an Envelope with a fresh event id.
func NewEnvelope(source, eventType string, data interface{}) (Envelope, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		ID:     uuid.New().String(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   payload,
	}, nil
}

// ParseEnvelope decodes a raw message into an Envelope.
func ParseEnvelope(raw []byte) (Envelope, error) {
	var e Envelope
	err := json.Unmarshal(raw, &e)
	return e, err
}

// ParseData decodes the envelope payload into the given value.
func (e Envelope) ParseData(v interface{}) error {
	return json.Unmarshal(e.Data, v)
}

// BookingCreatedEvent is published after a booking request is stored.
type BookingCreatedEvent struct {
	BookingID        uint      `json:"booking_id"`
	BookingType      string    `json:"booking_type"`
	ServiceOrPackage string    `json:"service_or_package"`
	Phone            string    `json:"phone"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// BookingStatusChangedEvent is published after an admin status update.
type BookingStatusChangedEvent struct {
	BookingID  uint      `json:"booking_id"`
	OldStatus  string    `json:"old_status"`
	NewStatus  string    `json:"new_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BookingDeletedEvent is published after an admin deletes a booking.
type BookingDeletedEvent struct {
	BookingID  uint      `json:"booking_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
