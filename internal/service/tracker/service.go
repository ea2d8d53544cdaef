// Package tracker is the single mutation path for logging actions. It ties
// the catalog, the eligibility rules and the ledger together under the
// user's lock.
package tracker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalog interface {
	EffectiveActions(ctx context.Context, userID uuid.UUID) ([]domain.ActionDefinition, error)
	LoadEffective(ctx context.Context, userID uuid.UUID) ([]domain.ActionDefinition, error)
}

type ledger interface {
	Append(ctx context.Context, userID uuid.UUID, actionText string, minutes int, at time.Time) (*domain.LoggedEvent, error)
	TotalsInWindow(ctx context.Context, userID uuid.UUID, w domain.DayWindow) (domain.Totals, error)
	EventsInWindow(ctx context.Context, userID uuid.UUID, w domain.DayWindow) ([]domain.LoggedEvent, error)
}

type userLocker interface {
	LockForUpdate(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type logRecorder interface {
	ActionLogged(origin string, minutes int)
	ActionRejected(reason string)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements action logging and availability.
type Service struct {
	catalog catalog
	ledger  ledger
	users   userLocker
	tx      txManager
	metrics logRecorder
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new tracker service.
func NewService(
	log *slog.Logger,
	catalog catalog,
	ledger ledger,
	users userLocker,
	tx txManager,
	metrics logRecorder,
) *Service {
	return &Service{
		catalog: catalog,
		ledger:  ledger,
		users:   users,
		tx:      tx,
		metrics: metrics,
		log:     log.With("service", "tracker"),
		now:     time.Now,
	}
}
