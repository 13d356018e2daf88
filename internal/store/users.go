package store

import (
	"context"

	"salon/backend/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (domain.User, error)
}
