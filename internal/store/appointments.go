package store

import (
	"context"

	"github.com/google/uuid"

	"salon/backend/internal/domain"
)

// BookingTx is the set of appointment operations available inside a
// transaction.
type BookingTx interface {
	FindAppointmentsForProviderOnDate(ctx context.Context, providerID uuid.UUID, date domain.Date) ([]domain.Appointment, error)
	InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
	GetAppointmentForUpdate(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, status domain.AppointmentStatus) error
}

type AppointmentRepository interface {
	// InProviderDayTransaction runs fn in a transaction that holds an
	// exclusive lock on the provider's schedule for date.
	InProviderDayTransaction(ctx context.Context, providerID uuid.UUID, date domain.Date, fn func(ctx context.Context, tx BookingTx) error) error
	InTransaction(ctx context.Context, fn func(ctx context.Context, tx BookingTx) error) error

	FindAppointmentsForProviderOnDate(ctx context.Context, providerID uuid.UUID, date domain.Date) ([]domain.Appointment, error)
	ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.AppointmentDetail, error)
	ListForProvider(ctx context.Context, providerID uuid.UUID) ([]domain.AppointmentDetail, error)
}
