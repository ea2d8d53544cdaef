package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

// Register creates a user with a password and returns an access token.
// Usernames listed in auth.admin_usernames get the admin role.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	role := domain.UserRoleUser
	if s.cfg.IsAdminUsername(input.Username) {
		role = domain.UserRoleAdmin
	}

	created, err := s.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		DisplayName:  input.DisplayName,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("user.Register: %w", err)
	}

	result, err := s.issue(created)
	if err != nil {
		return nil, fmt.Errorf("user.Register issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user registered",
		slog.String("user_id", created.ID.String()),
		slog.String("role", string(created.Role)),
	)
	return result, nil
}

// Login checks credentials. Unknown users and wrong passwords both yield
// domain.ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	login := strings.TrimSpace(input.Login)
	var (
		u   *domain.User
		err error
	)
	if strings.Contains(login, "@") {
		u, err = s.users.GetByEmail(ctx, strings.ToLower(login))
	} else {
		u, err = s.users.GetByUsername(ctx, login)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("user.Login: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, input.Password); err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("user.Login: %w", err)
	}

	result, err := s.issue(u)
	if err != nil {
		return nil, fmt.Errorf("user.Login issue token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", u.ID.String()))
	return result, nil
}

// Me returns the user record of the caller.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}
	return u, nil
}
