package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	"github.com/heartmarshall/moreminutes-backend/pkg/ctxutil"
)

// ListUsers returns every user with their all-time minutes (admin only).
func (s *Service) ListUsers(ctx context.Context) ([]domain.UserWithTotals, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	var (
		users  []domain.User
		totals map[uuid.UUID]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.users.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.totals.TotalsByUser(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}

	out := make([]domain.UserWithTotals, 0, len(users))
	for _, u := range users {
		out = append(out, domain.UserWithTotals{User: u, TotalMinutes: totals[u.ID]})
	}
	return out, nil
}

// AdminTarget resolves the user an admin operation acts on (admin only).
func (s *Service) AdminTarget(ctx context.Context, targetID uuid.UUID) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	u, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("user.AdminTarget: %w", err)
	}
	return u, nil
}
