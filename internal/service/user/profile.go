package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

// UpdateProfile changes the caller's email, display name or password.
// An email already used by another account yields domain.ErrAlreadyExists.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	upd := domain.UserUpdate{
		Email:       input.Email,
		DisplayName: input.DisplayName,
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile: %w", err)
		}
		upd.PasswordHash = &hash
	}

	u, err := s.users.Update(ctx, userID, upd)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.Bool("email_changed", upd.Email != nil),
		slog.Bool("password_changed", upd.PasswordHash != nil),
	)
	return u, nil
}
