// Package event implements the logged-event repository using PostgreSQL.
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

var eventColumns = []string{"id", "user_id", "action_text", "minutes_added", "occurred_at"}

// Repo provides logged-event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new event repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type eventRow struct {
	ID           int64     `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	ActionText   string    `db:"action_text"`
	MinutesAdded int       `db:"minutes_added"`
	OccurredAt   time.Time `db:"occurred_at"`
}

func (r eventRow) toDomain() domain.LoggedEvent {
	return domain.LoggedEvent{
		ID:           r.ID,
		UserID:       r.UserID,
		ActionText:   r.ActionText,
		MinutesAdded: r.MinutesAdded,
		OccurredAt:   r.OccurredAt.UTC(),
	}
}

// Create appends an event and returns it with its assigned ID.
func (r *Repo) Create(ctx context.Context, e *domain.LoggedEvent) (*domain.LoggedEvent, error) {
	query, args, err := postgres.Builder().
		Insert("logged_events").
		Columns("user_id", "action_text", "minutes_added", "occurred_at").
		Values(e.UserID, e.ActionText, e.MinutesAdded, e.OccurredAt.UTC()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert event: %w", err)
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "event", e.ActionText)
	}

	out := *e
	out.ID = id
	out.OccurredAt = e.OccurredAt.UTC()
	return &out, nil
}

// ListByUser returns every event of the user in append order.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.LoggedEvent, error) {
	return r.list(ctx, postgres.Builder().
		Select(eventColumns...).
		From("logged_events").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id"), userID)
}

// ListInRange returns the user's events with from <= occurred_at < to, in append order.
func (r *Repo) ListInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.LoggedEvent, error) {
	return r.list(ctx, postgres.Builder().
		Select(eventColumns...).
		From("logged_events").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"occurred_at": from.UTC()}).
		Where(squirrel.Lt{"occurred_at": to.UTC()}).
		OrderBy("id"), userID)
}

// ListRecent returns up to limit of the user's newest events, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LoggedEvent, error) {
	return r.list(ctx, postgres.Builder().
		Select(eventColumns...).
		From("logged_events").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id DESC").
		Limit(uint64(limit)), userID)
}

func (r *Repo) list(ctx context.Context, sb squirrel.SelectBuilder, userID uuid.UUID) ([]domain.LoggedEvent, error) {
	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list events: %w", err)
	}

	var rows []eventRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "events of user", userID)
	}

	events := make([]domain.LoggedEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toDomain())
	}
	return events, nil
}

// DeleteByUser removes all of the user's events and returns how many were removed.
func (r *Repo) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return r.delete(ctx, postgres.Builder().
		Delete("logged_events").
		Where(squirrel.Eq{"user_id": userID}), userID)
}

// DeleteInRange removes the user's events with from <= occurred_at < to.
func (r *Repo) DeleteInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	return r.delete(ctx, postgres.Builder().
		Delete("logged_events").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"occurred_at": from.UTC()}).
		Where(squirrel.Lt{"occurred_at": to.UTC()}), userID)
}

func (r *Repo) delete(ctx context.Context, db squirrel.DeleteBuilder, userID uuid.UUID) (int64, error) {
	query, args, err := db.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete events: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "events of user", userID)
	}
	return tag.RowsAffected(), nil
}

// TotalsByUser returns the all-time minutes of every user that has events.
func (r *Repo) TotalsByUser(ctx context.Context) (map[uuid.UUID]int, error) {
	query, args, err := postgres.Builder().
		Select("user_id", "COALESCE(SUM(minutes_added), 0) AS total_minutes").
		From("logged_events").
		GroupBy("user_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build totals by user: %w", err)
	}

	var rows []struct {
		UserID       uuid.UUID `db:"user_id"`
		TotalMinutes int64     `db:"total_minutes"`
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "event totals", "all")
	}

	totals := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		totals[row.UserID] = int(row.TotalMinutes)
	}
	return totals, nil
}
