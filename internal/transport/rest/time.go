package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	"github.com/heartmarshall/moreminutes-backend/internal/service/tracker"
)

type ledgerService interface {
	Totals(ctx context.Context, userID uuid.UUID, offsetMinutes int) (domain.Totals, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LoggedEvent, error)
	ResetAll(ctx context.Context, userID uuid.UUID) error
	ResetToday(ctx context.Context, userID uuid.UUID, offsetMinutes int) (domain.Totals, error)
}

type actionLogger interface {
	LogAction(ctx context.Context, userID uuid.UUID, actionText string, offsetMinutes int) (*tracker.LogResult, error)
}

// TimeHandler serves the user's minute totals and the logging endpoint.
type TimeHandler struct {
	ledger ledgerService
	logger actionLogger
	log    *slog.Logger
}

// NewTimeHandler creates a TimeHandler.
func NewTimeHandler(ledger ledgerService, logger actionLogger, log *slog.Logger) *TimeHandler {
	return &TimeHandler{
		ledger: ledger,
		logger: logger,
		log:    log.With("handler", "time"),
	}
}

type addTimeRequest struct {
	Text     string `json:"text"`
	TZOffset *int   `json:"tz_offset"`
}

type offsetRequest struct {
	TZOffset *int `json:"tz_offset"`
}

// Totals handles GET /api/time?tz_offset=.
func (h *TimeHandler) Totals(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	offset, err := tzOffset(r, nil)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	totals, err := h.ledger.Totals(r.Context(), userID, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTotalsResponse(totals))
}

// Add handles POST /api/time/add: logs one action and returns the new totals.
func (h *TimeHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req addTimeRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := tzOffset(r, req.TZOffset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.logger.LogAction(r.Context(), userID, req.Text, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, logActionResponse{
		Event:          toEventResponse(result.Event),
		totalsResponse: toTotalsResponse(result.Totals),
	})
}

// Reset handles POST /api/time/reset. Deletes every event of the caller.
func (h *TimeHandler) Reset(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.ledger.ResetAll(r.Context(), userID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTotalsResponse(domain.Totals{}))
}

// ResetToday handles POST /api/time/reset-today.
func (h *TimeHandler) ResetToday(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req offsetRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := tzOffset(r, req.TZOffset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	totals, err := h.ledger.ResetToday(r.Context(), userID, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTotalsResponse(totals))
}

// History handles GET /api/time/history?limit=.
func (h *TimeHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.ledger.History(r.Context(), userID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventsResponse(events))
}
