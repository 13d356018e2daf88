package appointments

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"salon/backend/internal/domain"
	"salon/backend/internal/events"
	"salon/backend/internal/metrics"
	"salon/backend/internal/scheduling"
	"salon/backend/internal/store"
)

var tracer = otel.Tracer("salon/backend/internal/service/appointments")

type Metrics interface {
	BookingAttempt(result string)
	StatusChanged(from, to domain.AppointmentStatus)
}

type nopMetrics struct{}

func (nopMetrics) BookingAttempt(string) {}

func (nopMetrics) StatusChanged(domain.AppointmentStatus, domain.AppointmentStatus) {}

// Hours is the daily window offered by AvailableSlots.
type Hours struct {
	Open  domain.TimeOfDay
	Close domain.TimeOfDay
	Step  int
}

var DefaultHours = Hours{Open: 9 * 60, Close: 18 * 60, Step: 15}

type Service struct {
	repo      store.AppointmentRepository
	services  store.ServiceReader
	publisher events.Publisher
	metrics   Metrics
	log       *slog.Logger
	hours     Hours
	now       func() time.Time
}

type Option func(*Service)

func WithPublisher(p events.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func WithHours(h Hours) Option {
	return func(s *Service) { s.hours = h }
}

func NewService(repo store.AppointmentRepository, services store.ServiceReader, opts ...Option) *Service {
	s := &Service{
		repo:      repo,
		services:  services,
		publisher: events.NopPublisher{},
		metrics:   nopMetrics{},
		log:       slog.Default(),
		hours:     DefaultHours,
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type BookInput struct {
	ServiceID uuid.UUID
	Date      domain.Date
	StartTime string
}

// Book reserves the slot starting at in.StartTime for the session's customer.
// The conflict check and the insert run under one provider/date lock, so two
// concurrent bookings of overlapping slots cannot both succeed.
func (s *Service) Book(ctx context.Context, sess domain.Session, in BookInput) (appt domain.Appointment, err error) {
	ctx, span := tracer.Start(ctx, "appointments.Book", trace.WithAttributes(
		attribute.String("service.id", in.ServiceID.String()),
		attribute.String("appointment.date", in.Date.String()),
		attribute.String("appointment.start", in.StartTime),
	))
	defer func() {
		s.metrics.BookingAttempt(bookingResult(err))
		endSpan(span, err)
	}()

	if !sess.IsCustomer() {
		return domain.Appointment{}, ErrNotAuthorized
	}

	svc, err := s.services.FindServiceByID(ctx, in.ServiceID)
	if err != nil {
		return domain.Appointment{}, storeError(err, ErrServiceNotFound)
	}

	start, err := domain.ParseTimeOfDay(in.StartTime)
	if err != nil {
		return domain.Appointment{}, ErrInvalidTimeFormat
	}

	date, err := domain.NewDate(in.Date.Year, in.Date.Month, in.Date.Day)
	if err != nil {
		return domain.Appointment{}, ErrInvalidDate
	}

	if svc.DurationMinutes <= 0 {
		return domain.Appointment{}, ErrSlotUnavailable
	}
	slot := domain.Slot{Start: start, End: start.Add(svc.DurationMinutes)}
	if slot.End > domain.MinutesPerDay {
		return domain.Appointment{}, ErrSlotUnavailable
	}

	err = s.repo.InProviderDayTransaction(ctx, svc.ProviderID, date, func(ctx context.Context, tx store.BookingTx) error {
		conflict, err := scheduling.HasConflict(ctx, tx, svc.ProviderID, date, slot)
		if err != nil {
			return err
		}
		if conflict {
			return ErrSlotUnavailable
		}

		created, err := tx.InsertAppointment(ctx, domain.Appointment{
			CustomerID: sess.UserID,
			ProviderID: svc.ProviderID,
			ServiceID:  svc.ID,
			Date:       date,
			Start:      slot.Start,
			End:        slot.End,
			Status:     domain.StatusPending,
		})
		if err != nil {
			return err
		}
		appt = created
		return nil
	})
	if err != nil {
		return domain.Appointment{}, storeError(err, nil)
	}

	s.log.InfoContext(ctx, "appointment booked",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("provider_id", appt.ProviderID.String()),
		slog.String("date", appt.Date.String()),
		slog.String("slot", appt.Slot().String()),
	)
	s.publish(ctx, events.Booked(appt, s.now()))
	return appt, nil
}

// SetStatus moves an appointment along the status workflow. Only the
// appointment's provider may change it. Setting the current status again
// returns the appointment unchanged without writing.
func (s *Service) SetStatus(ctx context.Context, sess domain.Session, appointmentID uuid.UUID, status domain.AppointmentStatus) (appt domain.Appointment, err error) {
	ctx, span := tracer.Start(ctx, "appointments.SetStatus", trace.WithAttributes(
		attribute.String("appointment.id", appointmentID.String()),
		attribute.String("appointment.status", string(status)),
	))
	defer func() { endSpan(span, err) }()

	switch status {
	case domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
	default:
		return domain.Appointment{}, ErrInvalidStatus
	}

	var previous domain.AppointmentStatus
	changed := false
	err = s.repo.InTransaction(ctx, func(ctx context.Context, tx store.BookingTx) error {
		current, err := tx.GetAppointmentForUpdate(ctx, appointmentID)
		if err != nil {
			return err
		}
		if !sess.IsProvider() || current.ProviderID != sess.UserID {
			return ErrNotAuthorized
		}
		if current.Status == status {
			appt = current
			return nil
		}
		if !current.Status.CanTransitionTo(status) {
			return ErrInvalidTransition
		}
		if err := tx.UpdateAppointmentStatus(ctx, appointmentID, status); err != nil {
			return err
		}

		previous = current.Status
		current.Status = status
		current.UpdatedAt = s.now()
		appt = current
		changed = true
		return nil
	})
	if err != nil {
		return domain.Appointment{}, storeError(err, ErrAppointmentNotFound)
	}
	if !changed {
		return appt, nil
	}

	s.metrics.StatusChanged(previous, status)
	s.log.InfoContext(ctx, "appointment status changed",
		slog.String("appointment_id", appt.ID.String()),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)
	s.publish(ctx, events.StatusChanged(appt, previous, s.now()))
	return appt, nil
}

func (s *Service) ListForCustomer(ctx context.Context, sess domain.Session) ([]domain.AppointmentDetail, error) {
	if !sess.IsCustomer() {
		return nil, ErrNotAuthorized
	}
	rows, err := s.repo.ListForCustomer(ctx, sess.UserID)
	if err != nil {
		return nil, storeError(err, nil)
	}
	return rows, nil
}

func (s *Service) ListForProvider(ctx context.Context, sess domain.Session) ([]domain.AppointmentDetail, error) {
	if !sess.IsProvider() {
		return nil, ErrNotAuthorized
	}
	rows, err := s.repo.ListForProvider(ctx, sess.UserID)
	if err != nil {
		return nil, storeError(err, nil)
	}
	return rows, nil
}

// AvailableSlots lists the start times on date at which serviceID could be
// booked within the configured opening hours.
func (s *Service) AvailableSlots(ctx context.Context, serviceID uuid.UUID, date domain.Date) ([]domain.TimeOfDay, error) {
	svc, err := s.services.FindServiceByID(ctx, serviceID)
	if err != nil {
		return nil, storeError(err, ErrServiceNotFound)
	}
	date, err = domain.NewDate(date.Year, date.Month, date.Day)
	if err != nil {
		return nil, ErrInvalidDate
	}

	existing, err := s.repo.FindAppointmentsForProviderOnDate(ctx, svc.ProviderID, date)
	if err != nil {
		return nil, storeError(err, nil)
	}
	return scheduling.FreeStarts(s.hours.Open, s.hours.Close, svc.DurationMinutes, s.hours.Step, scheduling.BusySlots(existing)), nil
}

func (s *Service) publish(ctx context.Context, evt events.AppointmentEvent) {
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.WarnContext(ctx, "publish appointment event failed",
			slog.String("type", evt.Type),
			slog.String("appointment_id", evt.AppointmentID.String()),
			slog.String("err", err.Error()),
		)
	}
}

func bookingResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultBooked
	case errors.Is(err, ErrSlotUnavailable):
		return metrics.ResultSlotUnavailable
	case errors.Is(err, ErrStoreUnavailable):
		return metrics.ResultError
	default:
		return metrics.ResultRejected
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
