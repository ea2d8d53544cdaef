// Package eligibility decides which actions a user may log in the current
// local day. Everything here is pure: no I/O and no hidden state.
package eligibility

import (
	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

// Result is the eligibility verdict for one action.
type Result struct {
	Eligible         bool
	Reason           domain.BlockReason
	BlockingPeerText string
}

// TextSet is the set of action texts logged within one local day.
type TextSet map[string]struct{}

// Has reports whether text is in the set.
func (s TextSet) Has(text string) bool {
	_, ok := s[text]
	return ok
}

// LoggedTexts collects the texts of events that occurred inside w.
func LoggedTexts(events []domain.LoggedEvent, w domain.DayWindow) TextSet {
	set := make(TextSet, len(events))
	for _, e := range events {
		if w.Contains(e.OccurredAt) {
			set[e.ActionText] = struct{}{}
		}
	}
	return set
}

// EvaluateOne applies the once-per-day and similar-action rules to def.
//
// A repeatable action is always eligible. A non-repeatable action is blocked
// when it was logged today, or else by the first SimilarTo entry (in declared
// order) that was logged today.
func EvaluateOne(def domain.ActionDefinition, loggedToday TextSet) Result {
	if def.RepeatableDaily {
		return Result{Eligible: true, Reason: domain.BlockNone}
	}

	if loggedToday.Has(def.Text) {
		return Result{Reason: domain.BlockSelfLogged}
	}

	for _, peer := range def.SimilarTo {
		if peer == def.Text {
			continue
		}
		if loggedToday.Has(peer) {
			return Result{Reason: domain.BlockSimilarLogged, BlockingPeerText: peer}
		}
	}

	return Result{Eligible: true, Reason: domain.BlockNone}
}

// Evaluate returns a verdict for every definition, keyed by action text.
func Evaluate(defs []domain.ActionDefinition, loggedToday TextSet) map[string]Result {
	out := make(map[string]Result, len(defs))
	for _, def := range defs {
		out[def.Text] = EvaluateOne(def, loggedToday)
	}
	return out
}

// Check returns nil when def can be logged, or a *domain.NotEligibleError.
func Check(def domain.ActionDefinition, loggedToday TextSet) error {
	r := EvaluateOne(def, loggedToday)
	if r.Eligible {
		return nil
	}
	return &domain.NotEligibleError{
		Text:             def.Text,
		Reason:           r.Reason,
		BlockingPeerText: r.BlockingPeerText,
	}
}
