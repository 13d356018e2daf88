package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"salon/backend/internal/domain"
	"salon/backend/internal/store"
)

type ServiceRepo struct {
	db *bun.DB
}

func NewServiceRepo(db *bun.DB) *ServiceRepo {
	return &ServiceRepo{db: db}
}

func (r *ServiceRepo) FindServiceByID(ctx context.Context, serviceID uuid.UUID) (domain.Service, error) {
	var svc domain.Service
	err := r.db.NewSelect().
		Model(&svc).
		Where("s.id = ?", serviceID).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Service{}, store.ErrNotFound
		}
		return domain.Service{}, err
	}
	return svc, nil
}

func (r *ServiceRepo) CreateService(ctx context.Context, svc domain.Service) (domain.Service, error) {
	m := svc
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Service{}, err
	}
	return m, nil
}

func (r *ServiceRepo) UpdateService(ctx context.Context, svc domain.Service) (domain.Service, error) {
	m := svc
	res, err := r.db.NewUpdate().
		Model(&m).
		Column("name", "description", "price_cents", "duration_minutes", "updated_at").
		WherePK().
		Where("provider_id = ?", svc.ProviderID).
		Exec(ctx)
	if err != nil {
		return domain.Service{}, err
	}
	if err := requireAffected(res); err != nil {
		return domain.Service{}, err
	}
	return r.FindServiceByID(ctx, svc.ID)
}

func (r *ServiceRepo) DeleteService(ctx context.Context, providerID, serviceID uuid.UUID) error {
	m := domain.Service{ID: serviceID, ProviderID: providerID}
	res, err := r.db.NewDelete().
		Model(&m).
		Where("id = ?", serviceID).
		Where("provider_id = ?", providerID).
		Exec(ctx)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *ServiceRepo) ListByProvider(ctx context.Context, providerID uuid.UUID) ([]domain.Service, error) {
	var rows []domain.Service
	err := r.db.NewSelect().
		Model(&rows).
		Where("s.provider_id = ?", providerID).
		OrderExpr("s.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ServiceRepo) Browse(ctx context.Context, filter store.ServiceFilter) ([]domain.ServiceListing, error) {
	var rows []domain.ServiceListing
	q := r.db.NewSelect().
		Model(&rows).
		ColumnExpr("s.*").
		ColumnExpr("pr.username AS provider_username").
		ColumnExpr("pr.location AS provider_location").
		Join("JOIN users AS pr ON pr.id = s.provider_id")
	if filter.Location != "" {
		q = q.Where("pr.location = ?", filter.Location)
	}
	if filter.Name != "" {
		q = q.Where("s.name = ?", filter.Name)
	}
	if err := q.OrderExpr("s.name ASC, pr.username ASC").Scan(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ServiceRepo) DistinctLocations(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.NewSelect().
		TableExpr("users").
		ColumnExpr("DISTINCT location").
		Where("role = ?", domain.RoleProvider).
		Where("location <> ''").
		OrderExpr("location ASC").
		Scan(ctx, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ServiceRepo) DistinctServiceNames(ctx context.Context) ([]string, error) {
	var out []string
	err := r.db.NewSelect().
		TableExpr("services").
		ColumnExpr("DISTINCT name").
		Where("deleted_at IS NULL").
		OrderExpr("name ASC").
		Scan(ctx, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func requireAffected(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
