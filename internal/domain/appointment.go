package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Allowed transitions:
//
//	pending   → confirmed, cancelled
//	confirmed → completed, cancelled
//
// completed and cancelled are terminal.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

func (s AppointmentStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

func (s AppointmentStatus) IsTerminal() bool {
	next, ok := statusTransitions[s]
	return ok && len(next) == 0
}

func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Appointment struct {
	bun.BaseModel `bun:"table:appointments,alias:a"`

	ID         uuid.UUID         `bun:"id,pk,type:uuid"`
	CustomerID uuid.UUID         `bun:"customer_id,notnull,type:uuid"`
	ProviderID uuid.UUID         `bun:"provider_id,notnull,type:uuid"`
	ServiceID  uuid.UUID         `bun:"service_id,notnull,type:uuid"`
	Date       Date              `bun:"appointment_date,notnull,type:date"`
	Start      TimeOfDay         `bun:"start_minute,notnull"`
	End        TimeOfDay         `bun:"end_minute,notnull"`
	Status     AppointmentStatus `bun:"status,notnull"`
	CreatedAt  time.Time         `bun:"created_at,notnull"`
	UpdatedAt  time.Time         `bun:"updated_at,notnull"`
}

func (a Appointment) Slot() Slot {
	return Slot{Start: a.Start, End: a.End}
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if a.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			a.ID = id
		}
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		if a.UpdatedAt.IsZero() {
			a.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		a.UpdatedAt = now
	}
	return nil
}

// AppointmentDetail is an appointment joined with the names shown in listings.
type AppointmentDetail struct {
	Appointment `bun:",extend"`

	ServiceName  string `bun:"service_name"`
	CustomerName string `bun:"customer_name"`
	ProviderName string `bun:"provider_name"`
}
