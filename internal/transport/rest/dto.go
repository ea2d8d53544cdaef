package rest

import (
	"time"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	"github.com/heartmarshall/moreminutes-backend/internal/service/tracker"
)

// actionResponse uses the hyphenated field names clients already read.
type actionResponse struct {
	ID                     *string  `json:"id,omitempty"`
	Text                   string   `json:"text"`
	Minutes                int      `json:"minutes"`
	RepeatableDaily        bool     `json:"is-repeatable-daily"`
	MustBeLoggedAtEndOfDay bool     `json:"must-be-logged-at-end-of-day"`
	Warning                *string  `json:"warning"`
	SimilarTo              []string `json:"similar-to"`
	OriginalText           string   `json:"original_text"`
	IsCustom               bool     `json:"is_custom"`
	IsEdited               bool     `json:"is_edited"`
}

type availableActionResponse struct {
	actionResponse
	Eligible       bool   `json:"eligible"`
	BlockingReason string `json:"blocking_reason"`
	BlockingPeer   string `json:"blocking_peer,omitempty"`
}

type breakdownResponse struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type totalsResponse struct {
	TotalMinutes int               `json:"total_minutes"`
	TodayMinutes int               `json:"today_minutes"`
	Total        breakdownResponse `json:"total"`
	Today        breakdownResponse `json:"today"`
}

type eventResponse struct {
	ID           int64     `json:"id"`
	ActionText   string    `json:"action_text"`
	MinutesAdded int       `json:"minutes_added"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type logActionResponse struct {
	Event eventResponse `json:"event"`
	totalsResponse
}

type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

type adminUserResponse struct {
	userResponse
	TotalMinutes int               `json:"total_minutes"`
	Total        breakdownResponse `json:"total"`
}

func toActionResponse(d domain.ActionDefinition) actionResponse {
	resp := actionResponse{
		Text:                   d.Text,
		Minutes:                d.Minutes,
		RepeatableDaily:        d.RepeatableDaily,
		MustBeLoggedAtEndOfDay: d.MustBeLoggedAtEndOfDay,
		Warning:                d.Warning,
		SimilarTo:              d.SimilarTo,
		OriginalText:           d.OriginalText,
		IsCustom:               d.IsCustom(),
		IsEdited:               d.IsEdited(),
	}
	if resp.SimilarTo == nil {
		resp.SimilarTo = []string{}
	}
	if d.IsCustom() {
		id := d.ID.String()
		resp.ID = &id
	}
	return resp
}

func toActionsResponse(defs []domain.ActionDefinition) []actionResponse {
	out := make([]actionResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, toActionResponse(d))
	}
	return out
}

func toAvailableResponse(items []tracker.AvailableAction) []availableActionResponse {
	out := make([]availableActionResponse, 0, len(items))
	for _, it := range items {
		out = append(out, availableActionResponse{
			actionResponse: toActionResponse(it.Action),
			Eligible:       it.Eligibility.Eligible,
			BlockingReason: string(it.Eligibility.Reason),
			BlockingPeer:   it.Eligibility.BlockingPeerText,
		})
	}
	return out
}

func toBreakdown(minutes int) breakdownResponse {
	b := domain.BreakdownMinutes(minutes)
	return breakdownResponse{Days: b.Days, Hours: b.Hours, Minutes: b.Minutes}
}

func toTotalsResponse(t domain.Totals) totalsResponse {
	return totalsResponse{
		TotalMinutes: t.TotalMinutes,
		TodayMinutes: t.TodayMinutes,
		Total:        toBreakdown(t.TotalMinutes),
		Today:        toBreakdown(t.TodayMinutes),
	}
}

func toEventResponse(e domain.LoggedEvent) eventResponse {
	return eventResponse{
		ID:           e.ID,
		ActionText:   e.ActionText,
		MinutesAdded: e.MinutesAdded,
		OccurredAt:   e.OccurredAt,
	}
}

func toEventsResponse(events []domain.LoggedEvent) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
		CreatedAt:   u.CreatedAt,
	}
}
