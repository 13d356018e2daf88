package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleProvider
}

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           uuid.UUID `bun:"id,pk,type:uuid"`
	Username     string    `bun:"username,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	Role         Role      `bun:"role,notnull"`
	Name         string    `bun:"name,notnull"`
	Phone        string    `bun:"phone"`
	Email        string    `bun:"email"`
	Location     string    `bun:"location"`
	CreatedAt    time.Time `bun:"created_at,notnull"`
	UpdatedAt    time.Time `bun:"updated_at,notnull"`
}

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	now := time.Now().UTC()
	switch query.(type) {
	case *bun.InsertQuery:
		if u.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return err
			}
			u.ID = id
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = now
		}
		if u.UpdatedAt.IsZero() {
			u.UpdatedAt = now
		}
	case *bun.UpdateQuery:
		u.UpdatedAt = now
	}
	return nil
}

// Session identifies the signed-in user acting on a request. It is passed
// explicitly to every service call.
type Session struct {
	UserID   uuid.UUID
	Username string
	Role     Role
}

func (s Session) IsProvider() bool {
	return s.UserID != uuid.Nil && s.Role == RoleProvider
}

func (s Session) IsCustomer() bool {
	return s.UserID != uuid.Nil && s.Role == RoleCustomer
}
