package store

import (
	"context"

	"github.com/google/uuid"

	"salon/backend/internal/domain"
)

type ServiceFilter struct {
	Location string
	Name     string
}

type ServiceReader interface {
	FindServiceByID(ctx context.Context, serviceID uuid.UUID) (domain.Service, error)
}

type ServiceRepository interface {
	ServiceReader

	CreateService(ctx context.Context, svc domain.Service) (domain.Service, error)
	UpdateService(ctx context.Context, svc domain.Service) (domain.Service, error)
	DeleteService(ctx context.Context, providerID, serviceID uuid.UUID) error
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]domain.Service, error)

	Browse(ctx context.Context, filter ServiceFilter) ([]domain.ServiceListing, error)
	DistinctLocations(ctx context.Context) ([]string, error)
	DistinctServiceNames(ctx context.Context) ([]string, error)
}
