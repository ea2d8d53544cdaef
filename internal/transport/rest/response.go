// Package rest exposes the services over JSON HTTP endpoints.
package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	"github.com/heartmarshall/moreminutes-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error        string       `json:"error"`
	Fields       []fieldError `json:"fields,omitempty"`
	Reason       string       `json:"reason,omitempty"`
	BlockingPeer string       `json:"blocking_peer,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeOK(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleError maps service errors to status codes. Only unexpected errors
// are logged.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		notEligible *domain.NotEligibleError
		validation  *domain.ValidationError
	)

	switch {
	case errors.As(err, &notEligible):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:        notEligible.Error(),
			Reason:       string(notEligible.Reason),
			BlockingPeer: notEligible.BlockingPeerText,
		})
	case errors.As(err, &validation):
		resp := errorResponse{Error: "validation error"}
		for _, fe := range validation.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, domain.ErrInvalidTimezoneOffset):
		writeError(w, http.StatusBadRequest, "invalid timezone offset")
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrActionNotFound):
		writeError(w, http.StatusNotFound, "action not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateActionText):
		writeError(w, http.StatusConflict, "action text already exists")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody reads a JSON body into dst. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}

// tzOffset returns the client's offset in minutes east of UTC. A body value
// wins over the tz_offset query parameter; one of them is required.
func tzOffset(r *http.Request, body *int) (int, error) {
	if body != nil {
		return *body, nil
	}
	raw := r.URL.Query().Get("tz_offset")
	if raw == "" {
		return 0, domain.NewValidationError("tz_offset", "required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse tz_offset %q: %w", raw, domain.ErrInvalidTimezoneOffset)
	}
	return v, nil
}

// queryLimit parses the optional limit parameter; 0 means the service default.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError("limit", "must be an integer")
	}
	return v, nil
}

func parseUserID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError("userID", "must be a UUID")
	}
	return id, nil
}

// currentUser returns the authenticated caller or writes 401.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return id, true
}
