package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"salon/backend/internal/domain"
	"salon/backend/internal/service"
	"salon/backend/internal/store"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username, password or role")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// bcrypt ignores input beyond 72 bytes.
const maxPasswordBytes = 72

type TokenIssuer interface {
	Issue(sess domain.Session) (string, time.Time, error)
}

type Service struct {
	users    store.UserRepository
	tokens   TokenIssuer
	log      *slog.Logger
	hashCost int
}

func NewService(users store.UserRepository, tokens TokenIssuer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{users: users, tokens: tokens, log: log, hashCost: bcrypt.DefaultCost}
}

type RegisterInput struct {
	Username string
	Password string
	Role     domain.Role
	Name     string
	Phone    string
	Email    string
	Location string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return domain.User{}, service.Invalid("username is required")
	}
	if in.Password == "" {
		return domain.User{}, service.Invalid("password is required")
	}
	if len(in.Password) > maxPasswordBytes {
		return domain.User{}, service.Invalid("password must be at most 72 bytes")
	}
	if !in.Role.IsValid() {
		return domain.User{}, service.Invalid("role must be customer or provider")
	}
	location := strings.TrimSpace(in.Location)
	if in.Role == domain.RoleProvider && location == "" {
		return domain.User{}, service.Invalid("location is required for providers")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.hashCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.CreateUser(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         in.Role,
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		Email:        strings.TrimSpace(in.Email),
		Location:     location,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", u.ID.String()),
		slog.String("role", string(u.Role)),
	)
	return u, nil
}

type LoginResult struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

// Login verifies the password and that the account has the requested role.
// All mismatches return ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string, role domain.Role) (LoginResult, error) {
	u, err := s.users.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if u.Role != role {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(domain.Session{UserID: u.ID, Username: u.Username, Role: u.Role})
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: u, Token: token, ExpiresAt: expiresAt}, nil
}
