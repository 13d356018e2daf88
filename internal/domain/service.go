package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Service is a bookable offering owned by one provider. Deleted services are
// soft-deleted so appointments booked against them keep their reference.
type Service struct {
	bun.BaseModel `bun:"table:services,alias:s"`

	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	ProviderID      uuid.UUID `bun:"provider_id,notnull,type:uuid"`
	Name            string    `bun:"name,notnull"`
	Description     string    `bun:"description"`
	PriceCents      int64     `bun:"price_cents,notnull"`
	DurationMinutes int       `bun:"duration_minutes,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull"`
	UpdatedAt       time.Time `bun:"updated_at,notnull"`
	DeletedAt       time.Time `bun:"deleted_at,soft_delete,nullzero"`
}

func (s *Service) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if s.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			s.ID = id
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		if s.UpdatedAt.IsZero() {
			s.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		s.UpdatedAt = now
	}
	return nil
}

// ServiceListing is a service as customers browse it.
type ServiceListing struct {
	Service `bun:",extend"`

	ProviderUsername string `bun:"provider_username"`
	ProviderLocation string `bun:"provider_location"`
}
