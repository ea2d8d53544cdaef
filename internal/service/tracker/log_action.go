package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	catalogsvc "github.com/heartmarshall/moreminutes-backend/internal/service/catalog"
	"github.com/heartmarshall/moreminutes-backend/internal/service/eligibility"
)

// LogAction logs one action for the user and returns fresh totals.
//
// The action must be in the user's effective catalog and eligible in the
// local day given by offsetMinutes. The event records the action's current
// minutes. Not idempotent: every successful call appends one event.
func (s *Service) LogAction(ctx context.Context, userID uuid.UUID, actionText string, offsetMinutes int) (*LogResult, error) {
	if strings.TrimSpace(actionText) == "" {
		return nil, domain.NewValidationError("action", "required")
	}

	now := s.now()
	w, err := domain.LocalDayWindow(now, offsetMinutes)
	if err != nil {
		return nil, err
	}

	var (
		result LogResult
		def    domain.ActionDefinition
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.LockForUpdate(txCtx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		defs, err := s.catalog.LoadEffective(txCtx, userID)
		if err != nil {
			return err
		}

		var ok bool
		if def, ok = catalogsvc.FindByText(defs, actionText); !ok {
			return domain.ErrActionNotFound
		}

		today, err := s.ledger.EventsInWindow(txCtx, userID, w)
		if err != nil {
			return err
		}
		if err := eligibility.Check(def, eligibility.LoggedTexts(today, w)); err != nil {
			return err
		}

		event, err := s.ledger.Append(txCtx, userID, def.Text, def.Minutes, now)
		if err != nil {
			return err
		}
		result.Event = *event

		result.Totals, err = s.ledger.TotalsInWindow(txCtx, userID, w)
		return err
	})
	if err != nil {
		var ne *domain.NotEligibleError
		if errors.As(err, &ne) {
			s.metrics.ActionRejected(string(ne.Reason))
		}
		return nil, fmt.Errorf("tracker.LogAction: %w", err)
	}

	s.metrics.ActionLogged(string(def.Origin), def.Minutes)
	s.log.InfoContext(ctx, "action logged",
		slog.String("user_id", userID.String()),
		slog.String("action", def.Text),
		slog.Int("minutes", def.Minutes),
		slog.Int("total_minutes", result.Totals.TotalMinutes),
	)
	return &result, nil
}
