package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
	"github.com/heartmarshall/moreminutes-backend/pkg/ctxutil"
)

type userAdminService interface {
	ListUsers(ctx context.Context) ([]domain.UserWithTotals, error)
	AdminTarget(ctx context.Context, targetID uuid.UUID) (*domain.User, error)
}

// AdminHandler serves the admin users page.
type AdminHandler struct {
	users  userAdminService
	ledger ledgerService
	log    *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userAdminService, ledger ledgerService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users:  users,
		ledger: ledger,
		log:    logger.With("handler", "admin"),
	}
}

// Users returns every user with their all-time minutes.
// GET /api/users
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]adminUserResponse, 0, len(users))
	for i := range users {
		out = append(out, adminUserResponse{
			userResponse: toUserResponse(&users[i].User),
			TotalMinutes: users[i].TotalMinutes,
			Total:        toBreakdown(users[i].TotalMinutes),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// UserHistory returns another user's logged events, newest first.
// GET /api/users/{userID}/actions?limit=50
func (h *AdminHandler) UserHistory(w http.ResponseWriter, r *http.Request) {
	target, ok := h.target(w, r)
	if !ok {
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	events, err := h.ledger.History(r.Context(), target.ID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventsResponse(events))
}

// ResetUser deletes every event of another user.
// POST /api/users/{userID}/reset
func (h *AdminHandler) ResetUser(w http.ResponseWriter, r *http.Request) {
	target, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.ledger.ResetAll(r.Context(), target.ID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "admin reset user",
		slog.String("target_user_id", target.ID.String()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
	)
	writeOK(w)
}

func (h *AdminHandler) target(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	if !h.requireAdmin(w, r) {
		return nil, false
	}
	id, err := parseUserID(chi.URLParam(r, "userID"))
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}

	u, err := h.users.AdminTarget(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return nil, false
	}
	return u, true
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}
