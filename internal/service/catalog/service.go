// Package catalog manages the per-user set of loggable actions: global
// builtins, the user's edits and hides of them, and the user's custom actions.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type actionRepo interface {
	ListBuiltins(ctx context.Context) ([]domain.ActionDefinition, error)
	ListEdits(ctx context.Context, userID uuid.UUID) ([]domain.ActionEdit, error)
	ListHidden(ctx context.Context, userID uuid.UUID) ([]string, error)
	ListCustom(ctx context.Context, userID uuid.UUID) ([]domain.ActionDefinition, error)
	UpsertEdit(ctx context.Context, edit *domain.ActionEdit) error
	Hide(ctx context.Context, userID uuid.UUID, originalText string) error
	Unhide(ctx context.Context, userID uuid.UUID, originalText string) error
	CreateCustom(ctx context.Context, def *domain.ActionDefinition) (*domain.ActionDefinition, error)
	UpdateCustom(ctx context.Context, def *domain.ActionDefinition) (*domain.ActionDefinition, error)
	DeleteCustom(ctx context.Context, userID, id uuid.UUID) error
}

type userLocker interface {
	LockForUpdate(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// catalogCache stores effective catalogs under a per-user generation.
// Invalidate moves the user to a new generation, so a Set made with an older
// generation is never read back. Get returns domain.ErrNotFound on a miss.
type catalogCache interface {
	Generation(ctx context.Context, userID uuid.UUID) (int64, error)
	Get(ctx context.Context, userID uuid.UUID, gen int64) ([]domain.ActionDefinition, error)
	Set(ctx context.Context, userID uuid.UUID, gen int64, defs []domain.ActionDefinition) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the action catalog.
type Service struct {
	actions actionRepo
	users   userLocker
	tx      txManager
	cache   catalogCache
	log     *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	actions actionRepo,
	users userLocker,
	tx txManager,
	cache catalogCache,
) *Service {
	return &Service{
		actions: actions,
		users:   users,
		tx:      tx,
		cache:   cache,
		log:     log.With("service", "catalog"),
	}
}

// EffectiveActions returns the user's effective catalog, ordered by minutes.
// It may be served from the cache; use LoadEffective inside a transaction.
func (s *Service) EffectiveActions(ctx context.Context, userID uuid.UUID) ([]domain.ActionDefinition, error) {
	// The generation is read before storage so that a mutation committed
	// during the load leaves this result under a stale key.
	gen, err := s.cache.Generation(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "catalog cache generation failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return s.LoadEffective(ctx, userID)
	}

	defs, err := s.cache.Get(ctx, userID, gen)
	if err == nil {
		return defs, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "catalog cache get failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}

	defs, err = s.LoadEffective(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, userID, gen, defs); err != nil {
		s.log.WarnContext(ctx, "catalog cache set failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
	return defs, nil
}

// LoadEffective reads and merges the user's catalog from storage.
func (s *Service) LoadEffective(ctx context.Context, userID uuid.UUID) ([]domain.ActionDefinition, error) {
	snap, err := s.LoadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Merge(snap), nil
}

// LoadSnapshot reads the raw catalog state of the user.
func (s *Service) LoadSnapshot(ctx context.Context, userID uuid.UUID) (Snapshot, error) {
	var (
		snap Snapshot
		err  error
	)
	if snap.Builtins, err = s.actions.ListBuiltins(ctx); err != nil {
		return Snapshot{}, fmt.Errorf("catalog: list builtins: %w", err)
	}
	if snap.Edits, err = s.actions.ListEdits(ctx, userID); err != nil {
		return Snapshot{}, fmt.Errorf("catalog: list edits: %w", err)
	}
	if snap.Hidden, err = s.actions.ListHidden(ctx, userID); err != nil {
		return Snapshot{}, fmt.Errorf("catalog: list hidden: %w", err)
	}
	if snap.Customs, err = s.actions.ListCustom(ctx, userID); err != nil {
		return Snapshot{}, fmt.Errorf("catalog: list custom: %w", err)
	}
	return snap, nil
}

// HiddenActions lists the builtins the user has deleted and may restore.
func (s *Service) HiddenActions(ctx context.Context, userID uuid.UUID) ([]domain.ActionDefinition, error) {
	snap, err := s.LoadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return HiddenBuiltins(snap), nil
}

// mutate runs fn under the user's lock and drops the cached catalog afterwards.
func (s *Service) mutate(ctx context.Context, userID uuid.UUID, fn func(ctx context.Context, snap Snapshot) error) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.LockForUpdate(txCtx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		snap, err := s.LoadSnapshot(txCtx, userID)
		if err != nil {
			return err
		}
		return fn(txCtx, snap)
	})
	if err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "catalog cache invalidate failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
	return nil
}
