// Package user implements registration, login, profile updates and the
// admin user listing.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/auth"
	"github.com/heartmarshall/moreminutes-backend/internal/config"
	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type totalsReader interface {
	TotalsByUser(ctx context.Context) (map[uuid.UUID]int, error)
}

type tokenIssuer interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (auth.AccessToken, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Service implements user operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	totals totalsReader
	tokens tokenIssuer
	hasher passwordHasher
	cfg    config.AuthConfig
	now    func() time.Time
}

// NewService creates a new user service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	totals totalsReader,
	tokens tokenIssuer,
	hasher passwordHasher,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		totals: totals,
		tokens: tokens,
		hasher: hasher,
		cfg:    cfg,
		now:    time.Now,
	}
}

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}

func (s *Service) issue(u *domain.User) (*AuthResult, error) {
	tok, err := s.tokens.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: tok.Token, ExpiresAt: tok.ExpiresAt, User: u}, nil
}
