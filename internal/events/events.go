package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salon/backend/internal/domain"
)

const (
	TypeAppointmentBooked        = "appointment.booked"
	TypeAppointmentStatusChanged = "appointment.status_changed"
)

// AppointmentEvent is the payload published for appointment lifecycle changes.
type AppointmentEvent struct {
	ID             uuid.UUID `json:"id"`
	Type           string    `json:"type"`
	OccurredAt     time.Time `json:"occurred_at"`
	AppointmentID  uuid.UUID `json:"appointment_id"`
	CustomerID     uuid.UUID `json:"customer_id"`
	ProviderID     uuid.UUID `json:"provider_id"`
	ServiceID      uuid.UUID `json:"service_id"`
	Date           string    `json:"date"`
	StartTime      string    `json:"start_time"`
	EndTime        string    `json:"end_time"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
}

func Booked(appt domain.Appointment, at time.Time) AppointmentEvent {
	return newEvent(TypeAppointmentBooked, appt, at)
}

func StatusChanged(appt domain.Appointment, from domain.AppointmentStatus, at time.Time) AppointmentEvent {
	evt := newEvent(TypeAppointmentStatusChanged, appt, at)
	evt.PreviousStatus = string(from)
	return evt
}

func newEvent(typ string, appt domain.Appointment, at time.Time) AppointmentEvent {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return AppointmentEvent{
		ID:            id,
		Type:          typ,
		OccurredAt:    at.UTC(),
		AppointmentID: appt.ID,
		CustomerID:    appt.CustomerID,
		ProviderID:    appt.ProviderID,
		ServiceID:     appt.ServiceID,
		Date:          appt.Date.String(),
		StartTime:     appt.Start.String(),
		EndTime:       appt.End.String(),
		Status:        string(appt.Status),
	}
}

type Publisher interface {
	Publish(ctx context.Context, evt AppointmentEvent) error
	Close() error
}

// NopPublisher drops every event. It is used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, AppointmentEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
