package tracker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	"github.com/heartmarshall/moreminutes-backend/internal/service/eligibility"
)

// Availability lists the user's effective actions, ordered by minutes, each
// with its eligibility for the local day given by offsetMinutes.
func (s *Service) Availability(ctx context.Context, userID uuid.UUID, offsetMinutes int) ([]AvailableAction, error) {
	w, err := domain.LocalDayWindow(s.now(), offsetMinutes)
	if err != nil {
		return nil, err
	}

	defs, err := s.catalog.EffectiveActions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("tracker.Availability: %w", err)
	}

	today, err := s.ledger.EventsInWindow(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("tracker.Availability: %w", err)
	}
	logged := eligibility.LoggedTexts(today, w)

	verdicts := eligibility.Evaluate(defs, logged)
	out := make([]AvailableAction, len(defs))
	for i, def := range defs {
		out[i] = AvailableAction{Action: def, Eligibility: verdicts[def.Text]}
	}
	return out, nil
}

// TodayLoggedTexts returns the distinct texts the user logged in the local
// day given by offsetMinutes, in the order they were first logged.
func (s *Service) TodayLoggedTexts(ctx context.Context, userID uuid.UUID, offsetMinutes int) ([]string, error) {
	w, err := domain.LocalDayWindow(s.now(), offsetMinutes)
	if err != nil {
		return nil, err
	}

	today, err := s.ledger.EventsInWindow(ctx, userID, w)
	if err != nil {
		return nil, fmt.Errorf("tracker.TodayLoggedTexts: %w", err)
	}

	seen := make(map[string]struct{}, len(today))
	texts := make([]string, 0, len(today))
	for _, e := range today {
		if _, ok := seen[e.ActionText]; ok {
			continue
		}
		seen[e.ActionText] = struct{}{}
		texts = append(texts, e.ActionText)
	}
	return texts, nil
}
