// Package ledger keeps the append-only log of logged actions and derives
// per-user totals from it.
package ledger

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

type eventRepo interface {
	Create(ctx context.Context, event *domain.LoggedEvent) (*domain.LoggedEvent, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LoggedEvent, error)
	ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.LoggedEvent, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LoggedEvent, error)
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error)
}

type userLocker interface {
	LockForUpdate(ctx context.Context, userID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type resetRecorder interface {
	Reset(kind string, minutesRemoved int)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the time ledger.
type Service struct {
	events  eventRepo
	users   userLocker
	tx      txManager
	metrics resetRecorder
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new ledger service.
func NewService(
	log *slog.Logger,
	events eventRepo,
	users userLocker,
	tx txManager,
	metrics resetRecorder,
) *Service {
	return &Service{
		events:  events,
		users:   users,
		tx:      tx,
		metrics: metrics,
		log:     log.With("service", "ledger"),
		now:     time.Now,
	}
}

// Sum derives totals from events: every event counts toward the total,
// events inside w also count toward today.
func Sum(events []domain.LoggedEvent, w domain.DayWindow) domain.Totals {
	var t domain.Totals
	for _, e := range events {
		t.TotalMinutes += e.MinutesAdded
		if w.Contains(e.OccurredAt) {
			t.TodayMinutes += e.MinutesAdded
		}
	}
	return t
}
