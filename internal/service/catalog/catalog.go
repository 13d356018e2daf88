package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"salon/backend/internal/domain"
	"salon/backend/internal/service"
	"salon/backend/internal/store"
)

var (
	ErrNotAuthorized    = errors.New("not authorized")
	ErrServiceNotFound  = errors.New("service not found")
	ErrStoreUnavailable = errors.New("store unavailable")
)

const maxDurationMinutes = domain.MinutesPerDay

// Invalidator drops cached copies of a service after it changes.
type Invalidator interface {
	Invalidate(ctx context.Context, serviceID uuid.UUID) error
}

type Service struct {
	repo  store.ServiceRepository
	cache Invalidator
	log   *slog.Logger
}

func NewService(repo store.ServiceRepository, cache Invalidator, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{repo: repo, cache: cache, log: log}
}

type ServiceInput struct {
	Name            string
	Description     string
	PriceCents      int64
	DurationMinutes int
}

type BrowseFilter struct {
	Location string
	Name     string
}

func (in ServiceInput) normalize() (ServiceInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Name == "" {
		return in, service.Invalid("name is required")
	}
	if in.PriceCents < 0 {
		return in, service.Invalid("price must not be negative")
	}
	if in.DurationMinutes <= 0 {
		return in, service.Invalid("duration must be positive")
	}
	if in.DurationMinutes > maxDurationMinutes {
		return in, service.Invalid("duration must fit in one day")
	}
	return in, nil
}

func (s *Service) CreateService(ctx context.Context, sess domain.Session, in ServiceInput) (domain.Service, error) {
	if !sess.IsProvider() {
		return domain.Service{}, ErrNotAuthorized
	}
	in, err := in.normalize()
	if err != nil {
		return domain.Service{}, err
	}

	created, err := s.repo.CreateService(ctx, domain.Service{
		ProviderID:      sess.UserID,
		Name:            in.Name,
		Description:     in.Description,
		PriceCents:      in.PriceCents,
		DurationMinutes: in.DurationMinutes,
	})
	if err != nil {
		return domain.Service{}, storeError(err)
	}
	return created, nil
}

// UpdateService changes a service owned by the session's provider.
// Appointments already booked keep the end time computed when they were made.
func (s *Service) UpdateService(ctx context.Context, sess domain.Session, serviceID uuid.UUID, in ServiceInput) (domain.Service, error) {
	if !sess.IsProvider() {
		return domain.Service{}, ErrNotAuthorized
	}
	in, err := in.normalize()
	if err != nil {
		return domain.Service{}, err
	}
	if err := s.requireOwner(ctx, sess, serviceID); err != nil {
		return domain.Service{}, err
	}

	updated, err := s.repo.UpdateService(ctx, domain.Service{
		ID:              serviceID,
		ProviderID:      sess.UserID,
		Name:            in.Name,
		Description:     in.Description,
		PriceCents:      in.PriceCents,
		DurationMinutes: in.DurationMinutes,
	})
	if err != nil {
		return domain.Service{}, storeError(err)
	}
	s.invalidate(ctx, serviceID)
	return updated, nil
}

func (s *Service) DeleteService(ctx context.Context, sess domain.Session, serviceID uuid.UUID) error {
	if !sess.IsProvider() {
		return ErrNotAuthorized
	}
	if err := s.requireOwner(ctx, sess, serviceID); err != nil {
		return err
	}
	if err := s.repo.DeleteService(ctx, sess.UserID, serviceID); err != nil {
		return storeError(err)
	}
	s.invalidate(ctx, serviceID)
	return nil
}

func (s *Service) ListProviderServices(ctx context.Context, sess domain.Session) ([]domain.Service, error) {
	if !sess.IsProvider() {
		return nil, ErrNotAuthorized
	}
	rows, err := s.repo.ListByProvider(ctx, sess.UserID)
	if err != nil {
		return nil, storeError(err)
	}
	return rows, nil
}

func (s *Service) BrowseServices(ctx context.Context, filter BrowseFilter) ([]domain.ServiceListing, error) {
	rows, err := s.repo.Browse(ctx, store.ServiceFilter{
		Location: strings.TrimSpace(filter.Location),
		Name:     strings.TrimSpace(filter.Name),
	})
	if err != nil {
		return nil, storeError(err)
	}
	return rows, nil
}

func (s *Service) Locations(ctx context.Context) ([]string, error) {
	out, err := s.repo.DistinctLocations(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return out, nil
}

func (s *Service) ServiceNames(ctx context.Context) ([]string, error) {
	out, err := s.repo.DistinctServiceNames(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return out, nil
}

// requireOwner tells a missing service apart from someone else's.
func (s *Service) requireOwner(ctx context.Context, sess domain.Session, serviceID uuid.UUID) error {
	existing, err := s.repo.FindServiceByID(ctx, serviceID)
	if err != nil {
		return storeError(err)
	}
	if existing.ProviderID != sess.UserID {
		return ErrNotAuthorized
	}
	return nil
}

func (s *Service) invalidate(ctx context.Context, serviceID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, serviceID); err != nil {
		s.log.WarnContext(ctx, "service cache invalidation failed",
			slog.String("service_id", serviceID.String()),
			slog.String("err", err.Error()),
		)
	}
}

func storeError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrServiceNotFound
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
