// Package events publishes booking lifecycle notifications to a broker.
// Publishing is best-effort: callers log failures and carry on.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"MediBook/config"
	"MediBook/models"
)

const (
	BookingCreated = "booking.created"
	BookingUpdated = "booking.updated"
	BookingDeleted = "booking.deleted"
)

type Event struct {
	Type         string    `json:"type"`
	BookingID    string    `json:"bookingId"`
	TokenNumber  int64     `json:"tokenNumber,omitempty"`
	DoctorEmail  string    `json:"doctorEmail,omitempty"`
	PatientEmail string    `json:"patientEmail,omitempty"`
	Status       string    `json:"status,omitempty"`
	DoctorStatus string    `json:"doctorStatus,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// FromBooking builds an event of the given type describing b.
func FromBooking(eventType string, b *models.Booking) Event {
	return Event{
		Type:         eventType,
		BookingID:    b.ID.Hex(),
		TokenNumber:  b.TokenNumber,
		DoctorEmail:  b.DoctorEmail,
		PatientEmail: b.PatientEmail,
		Status:       b.Status,
		DoctorStatus: b.DoctorStatus,
		OccurredAt:   time.Now().UTC(),
	}
}

func encode(event Event) ([]byte, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	return body, nil
}

/*
* Pick the publisher for EVENTS_DRIVER
* none or empty gives a publisher that drops everything
 */
func NewPublisher(cfg *config.Config) (Publisher, error) {
	switch cfg.EventsDriver {
	case "rabbitmq":
		return DialRabbit(cfg.AMQPURL, cfg.EventsTopic)
	case "kafka":
		return NewKafkaPublisher(cfg.KafkaBrokers, cfg.EventsTopic), nil
	case "", "none":
		return Nop{}, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.EventsDriver)
	}
}

// Nop discards events.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }
