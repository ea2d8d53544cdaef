package tracker

import (
	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	"github.com/heartmarshall/moreminutes-backend/internal/service/eligibility"
)

// AvailableAction is an effective action with its current eligibility.
type AvailableAction struct {
	Action      domain.ActionDefinition
	Eligibility eligibility.Result
}

// LogResult is the authoritative outcome of a successful LogAction.
type LogResult struct {
	Event  domain.LoggedEvent
	Totals domain.Totals
}
