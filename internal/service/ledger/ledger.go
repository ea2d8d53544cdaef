package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// Append records one logged action. It does not check eligibility: callers
// are expected to hold the user's lock and to have validated the action.
func (s *Service) Append(ctx context.Context, userID uuid.UUID, actionText string, minutes int, at time.Time) (*domain.LoggedEvent, error) {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if strings.TrimSpace(actionText) == "" {
		errs = append(errs, domain.FieldError{Field: "action_text", Message: "required"})
	}
	if minutes < 0 {
		errs = append(errs, domain.FieldError{Field: "minutes", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	event, err := s.events.Create(ctx, &domain.LoggedEvent{
		UserID:       userID,
		ActionText:   actionText,
		MinutesAdded: minutes,
		OccurredAt:   at.UTC().Truncate(time.Microsecond),
	})
	if err != nil {
		return nil, fmt.Errorf("ledger.Append: %w", err)
	}
	return event, nil
}

// Totals recomputes the user's all-time and today minutes from the event log.
func (s *Service) Totals(ctx context.Context, userID uuid.UUID, offsetMinutes int) (domain.Totals, error) {
	w, err := domain.LocalDayWindow(s.now(), offsetMinutes)
	if err != nil {
		return domain.Totals{}, err
	}
	return s.TotalsInWindow(ctx, userID, w)
}

// TotalsInWindow is Totals for an already resolved local day.
func (s *Service) TotalsInWindow(ctx context.Context, userID uuid.UUID, w domain.DayWindow) (domain.Totals, error) {
	events, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return domain.Totals{}, fmt.Errorf("ledger.Totals: %w", err)
	}
	return Sum(events, w), nil
}

// EventsInWindow returns the user's events inside w, oldest first.
func (s *Service) EventsInWindow(ctx context.Context, userID uuid.UUID, w domain.DayWindow) ([]domain.LoggedEvent, error) {
	events, err := s.events.ListInRange(ctx, userID, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("ledger.EventsInWindow: %w", err)
	}
	return events, nil
}

// History returns the user's most recent events, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LoggedEvent, error) {
	if limit < 0 || limit > maxHistoryLimit {
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", maxHistoryLimit))
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}

	events, err := s.events.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ledger.History: %w", err)
	}
	return events, nil
}

// ResetAll deletes every event of the user. Irreversible.
func (s *Service) ResetAll(ctx context.Context, userID uuid.UUID) error {
	var removed int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.LockForUpdate(txCtx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		before, err := s.TotalsInWindow(txCtx, userID, domain.DayWindow{})
		if err != nil {
			return err
		}
		removed = before.TotalMinutes

		if _, err := s.events.DeleteByUser(txCtx, userID); err != nil {
			return fmt.Errorf("delete events: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ledger.ResetAll: %w", err)
	}

	s.metrics.Reset("all", removed)
	s.log.InfoContext(ctx, "time reset",
		slog.String("user_id", userID.String()),
		slog.Int("minutes_removed", removed),
	)
	return nil
}

// ResetToday deletes the user's events inside the local day of now and
// returns the totals afterwards. Today becomes 0; total drops by exactly the
// removed amount.
func (s *Service) ResetToday(ctx context.Context, userID uuid.UUID, offsetMinutes int) (domain.Totals, error) {
	w, err := domain.LocalDayWindow(s.now(), offsetMinutes)
	if err != nil {
		return domain.Totals{}, err
	}

	var (
		after   domain.Totals
		removed int
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.LockForUpdate(txCtx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		today, err := s.events.ListInRange(txCtx, userID, w.Start, w.End)
		if err != nil {
			return fmt.Errorf("list today: %w", err)
		}
		removed = Sum(today, w).TodayMinutes

		if _, err := s.events.DeleteInRange(txCtx, userID, w.Start, w.End); err != nil {
			return fmt.Errorf("delete today: %w", err)
		}

		after, err = s.TotalsInWindow(txCtx, userID, w)
		return err
	})
	if err != nil {
		return domain.Totals{}, fmt.Errorf("ledger.ResetToday: %w", err)
	}

	s.metrics.Reset("today", removed)
	s.log.InfoContext(ctx, "today reset",
		slog.String("user_id", userID.String()),
		slog.Int("minutes_removed", removed),
	)
	return after, nil
}
