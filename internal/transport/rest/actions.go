package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	"github.com/heartmarshall/moreminutes-backend/internal/service/catalog"
	"github.com/heartmarshall/moreminutes-backend/internal/service/tracker"
)

type catalogService interface {
	AddCustom(ctx context.Context, userID uuid.UUID, input catalog.CustomActionInput) (*domain.ActionDefinition, error)
	EditAction(ctx context.Context, userID uuid.UUID, input catalog.EditActionInput) (*domain.ActionDefinition, error)
	DeleteAction(ctx context.Context, userID uuid.UUID, ref string) error
	RestoreAction(ctx context.Context, userID uuid.UUID, ref string) (*domain.ActionDefinition, error)
	HiddenActions(ctx context.Context, userID uuid.UUID) ([]domain.ActionDefinition, error)
}

type availabilityService interface {
	Availability(ctx context.Context, userID uuid.UUID, offsetMinutes int) ([]tracker.AvailableAction, error)
	TodayLoggedTexts(ctx context.Context, userID uuid.UUID, offsetMinutes int) ([]string, error)
}

// ActionsHandler serves the user's action catalog.
type ActionsHandler struct {
	catalog catalogService
	tracker availabilityService
	log     *slog.Logger
}

// NewActionsHandler creates an ActionsHandler.
func NewActionsHandler(catalog catalogService, tracker availabilityService, logger *slog.Logger) *ActionsHandler {
	return &ActionsHandler{
		catalog: catalog,
		tracker: tracker,
		log:     logger.With("handler", "actions"),
	}
}

type customActionRequest struct {
	Text                   string   `json:"text"`
	Minutes                int      `json:"minutes"`
	RepeatableDaily        *bool    `json:"is-repeatable-daily"`
	MustBeLoggedAtEndOfDay bool     `json:"must-be-logged-at-end-of-day"`
	Warning                *string  `json:"warning"`
	SimilarTo              []string `json:"similar-to"`
}

// editActionRequest carries only the fields to change. An empty warning
// clears it.
type editActionRequest struct {
	OriginalText           string    `json:"original_text"`
	Text                   *string   `json:"text"`
	Minutes                *int      `json:"minutes"`
	RepeatableDaily        *bool     `json:"is-repeatable-daily"`
	MustBeLoggedAtEndOfDay *bool     `json:"must-be-logged-at-end-of-day"`
	Warning                *string   `json:"warning"`
	SimilarTo              *[]string `json:"similar-to"`
}

type actionRefRequest struct {
	Text string `json:"text"`
}

type todayResponse struct {
	Texts []string `json:"texts"`
}

// List handles GET /api/actions?tz_offset=. Every effective action comes
// with its eligibility for the caller's local day.
func (h *ActionsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	offset, err := tzOffset(r, nil)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := h.tracker.Availability(r.Context(), userID, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAvailableResponse(items))
}

// Today handles GET /api/actions/today?tz_offset=.
func (h *ActionsHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	offset, err := tzOffset(r, nil)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	texts, err := h.tracker.TodayLoggedTexts(r.Context(), userID, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if texts == nil {
		texts = []string{}
	}

	writeJSON(w, http.StatusOK, todayResponse{Texts: texts})
}

// Hidden handles GET /api/actions/hidden.
func (h *ActionsHandler) Hidden(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	defs, err := h.catalog.HiddenActions(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toActionsResponse(defs))
}

// AddCustom handles POST /api/actions/custom.
func (h *ActionsHandler) AddCustom(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req customActionRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	repeatable := true
	if req.RepeatableDaily != nil {
		repeatable = *req.RepeatableDaily
	}

	def, err := h.catalog.AddCustom(r.Context(), userID, catalog.CustomActionInput{
		Text:                   req.Text,
		Minutes:                req.Minutes,
		RepeatableDaily:        repeatable,
		MustBeLoggedAtEndOfDay: req.MustBeLoggedAtEndOfDay,
		Warning:                req.Warning,
		SimilarTo:              req.SimilarTo,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toActionResponse(*def))
}

// Edit handles POST /api/actions/edit.
func (h *ActionsHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req editActionRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	def, err := h.catalog.EditAction(r.Context(), userID, catalog.EditActionInput{
		Ref: req.OriginalText,
		Patch: domain.ActionPatch{
			Text:                   req.Text,
			Minutes:                req.Minutes,
			RepeatableDaily:        req.RepeatableDaily,
			MustBeLoggedAtEndOfDay: req.MustBeLoggedAtEndOfDay,
			Warning:                req.Warning,
			SimilarTo:              req.SimilarTo,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toActionResponse(*def))
}

// Delete handles POST /api/actions/delete.
func (h *ActionsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req actionRefRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Text == "" {
		handleError(h.log, w, r, domain.NewValidationError("text", "required"))
		return
	}

	if err := h.catalog.DeleteAction(r.Context(), userID, req.Text); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeOK(w)
}

// Restore handles POST /api/actions/restore.
func (h *ActionsHandler) Restore(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req actionRefRequest
	if err := decodeBody(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Text == "" {
		handleError(h.log, w, r, domain.NewValidationError("text", "required"))
		return
	}

	def, err := h.catalog.RestoreAction(r.Context(), userID, req.Text)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toActionResponse(*def))
}
