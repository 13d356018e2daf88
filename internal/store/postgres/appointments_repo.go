package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"salon/backend/internal/domain"
	"salon/backend/internal/store"
)

const appointmentsNoOverlap = "appointments_no_overlap"

type AppointmentRepo struct {
	db *bun.DB
}

func NewAppointmentRepo(db *bun.DB) *AppointmentRepo {
	return &AppointmentRepo{db: db}
}

type bookingTx struct {
	tx bun.Tx
}

func (r *AppointmentRepo) InProviderDayTransaction(ctx context.Context, providerID uuid.UUID, date domain.Date, fn func(ctx context.Context, tx store.BookingTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockProviderDay(ctx, tx, providerID, date); err != nil {
			return err
		}
		return fn(ctx, bookingTx{tx: tx})
	})
}

func (r *AppointmentRepo) InTransaction(ctx context.Context, fn func(ctx context.Context, tx store.BookingTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return fn(ctx, bookingTx{tx: tx})
	})
}

func lockProviderDay(ctx context.Context, tx bun.Tx, providerID uuid.UUID, date domain.Date) error {
	_, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", providerDayLockKey(providerID, date)).Exec(ctx)
	return err
}

func providerDayLockKey(providerID uuid.UUID, date domain.Date) string {
	return "appointments:" + providerID.String() + ":" + date.String()
}

func (r *AppointmentRepo) FindAppointmentsForProviderOnDate(ctx context.Context, providerID uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	return findAppointmentsOnDate(ctx, r.db, providerID, date)
}

func (r *AppointmentRepo) ListForCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.AppointmentDetail, error) {
	return r.listDetails(ctx, "a.customer_id = ?", customerID)
}

func (r *AppointmentRepo) ListForProvider(ctx context.Context, providerID uuid.UUID) ([]domain.AppointmentDetail, error) {
	return r.listDetails(ctx, "a.provider_id = ?", providerID)
}

func (r *AppointmentRepo) listDetails(ctx context.Context, where string, id uuid.UUID) ([]domain.AppointmentDetail, error) {
	var rows []domain.AppointmentDetail
	err := r.db.NewSelect().
		Model(&rows).
		ColumnExpr("a.*").
		ColumnExpr("svc.name AS service_name").
		ColumnExpr("cu.name AS customer_name").
		ColumnExpr("pr.name AS provider_name").
		Join("JOIN services AS svc ON svc.id = a.service_id").
		Join("JOIN users AS cu ON cu.id = a.customer_id").
		Join("JOIN users AS pr ON pr.id = a.provider_id").
		Where(where, id).
		OrderExpr("a.appointment_date ASC, a.start_minute ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func findAppointmentsOnDate(ctx context.Context, db bun.IDB, providerID uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	var rows []domain.Appointment
	err := db.NewSelect().
		Model(&rows).
		Where("a.provider_id = ?", providerID).
		Where("a.appointment_date = ?", date).
		OrderExpr("a.start_minute ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r bookingTx) FindAppointmentsForProviderOnDate(ctx context.Context, providerID uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	return findAppointmentsOnDate(ctx, r.tx, providerID, date)
}

func (r bookingTx) InsertAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := domain.Appointment{
		ID:         appt.ID,
		CustomerID: appt.CustomerID,
		ProviderID: appt.ProviderID,
		ServiceID:  appt.ServiceID,
		Date:       appt.Date,
		Start:      appt.Start,
		End:        appt.End,
		Status:     appt.Status,
		CreatedAt:  appt.CreatedAt,
		UpdatedAt:  appt.UpdatedAt,
	}

	_, err := r.tx.NewInsert().Model(&m).Exec(ctx)
	if err != nil {
		if pgErr, ok := pgError(err); ok && pgErr.Code == pgExclusionViolation && pgErr.ConstraintName == appointmentsNoOverlap {
			return domain.Appointment{}, store.ErrConflict
		}
		return domain.Appointment{}, err
	}
	return m, nil
}

func (r bookingTx) GetAppointmentForUpdate(ctx context.Context, appointmentID uuid.UUID) (domain.Appointment, error) {
	var appt domain.Appointment
	err := r.tx.NewSelect().
		Model(&appt).
		Where("a.id = ?", appointmentID).
		For("UPDATE").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Appointment{}, store.ErrNotFound
		}
		return domain.Appointment{}, err
	}
	return appt, nil
}

func (r bookingTx) UpdateAppointmentStatus(ctx context.Context, appointmentID uuid.UUID, status domain.AppointmentStatus) error {
	res, err := r.tx.NewUpdate().
		Model((*domain.Appointment)(nil)).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", appointmentID).
		Exec(ctx)
	if err != nil {
		if pgErr, ok := pgError(err); ok && pgErr.Code == pgExclusionViolation {
			return store.ErrConflict
		}
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
