// Package action stores builtin actions and per-user catalog changes
// (edits, hides and custom actions) in PostgreSQL.
package action

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

var (
	definitionColumns = []string{"text", "minutes", "is_repeatable_daily", "must_be_logged_at_end_of_day", "warning", "similar_to"}
	editColumns       = append([]string{"original_text"}, definitionColumns...)
	customColumns     = append([]string{"id", "user_id"}, definitionColumns...)
)

// Repo provides catalog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new action repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type definitionRow struct {
	Text                   string   `db:"text"`
	Minutes                int      `db:"minutes"`
	RepeatableDaily        bool     `db:"is_repeatable_daily"`
	MustBeLoggedAtEndOfDay bool     `db:"must_be_logged_at_end_of_day"`
	Warning                *string  `db:"warning"`
	SimilarTo              []string `db:"similar_to"`
}

func (r definitionRow) toDomain(origin domain.ActionOrigin) domain.ActionDefinition {
	similar := r.SimilarTo
	if similar == nil {
		similar = []string{}
	}
	return domain.ActionDefinition{
		Text:                   r.Text,
		OriginalText:           r.Text,
		Minutes:                r.Minutes,
		RepeatableDaily:        r.RepeatableDaily,
		MustBeLoggedAtEndOfDay: r.MustBeLoggedAtEndOfDay,
		Warning:                r.Warning,
		SimilarTo:              similar,
		Origin:                 origin,
	}
}

type editRow struct {
	OriginalText string `db:"original_text"`
	definitionRow
}

type customRow struct {
	ID     uuid.UUID `db:"id"`
	UserID uuid.UUID `db:"user_id"`
	definitionRow
}

func (r customRow) toDomain() domain.ActionDefinition {
	def := r.definitionRow.toDomain(domain.OriginCustom)
	def.ID = r.ID
	owner := r.UserID
	def.OwnerUserID = &owner
	return def
}

// definitionValues returns the column values matching definitionColumns.
func definitionValues(d domain.ActionDefinition) []any {
	similar := d.SimilarTo
	if similar == nil {
		similar = []string{}
	}
	return []any{d.Text, d.Minutes, d.RepeatableDaily, d.MustBeLoggedAtEndOfDay, d.Warning, similar}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// ListBuiltins returns the global builtin actions in definition order.
func (r *Repo) ListBuiltins(ctx context.Context) ([]domain.ActionDefinition, error) {
	query, args, err := postgres.Builder().
		Select(definitionColumns...).
		From("builtin_actions").
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list builtins: %w", err)
	}

	var rows []definitionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "builtin actions", "all")
	}

	defs := make([]domain.ActionDefinition, 0, len(rows))
	for _, row := range rows {
		defs = append(defs, row.toDomain(domain.OriginBuiltin))
	}
	return defs, nil
}

// ListEdits returns the user's builtin overrides.
func (r *Repo) ListEdits(ctx context.Context, userID uuid.UUID) ([]domain.ActionEdit, error) {
	query, args, err := postgres.Builder().
		Select(editColumns...).
		From("action_edits").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("original_text").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list edits: %w", err)
	}

	var rows []editRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "action edits", userID)
	}

	edits := make([]domain.ActionEdit, 0, len(rows))
	for _, row := range rows {
		def := row.definitionRow.toDomain(domain.OriginBuiltinEdited)
		def.OriginalText = row.OriginalText
		edits = append(edits, domain.ActionEdit{
			UserID:       userID,
			OriginalText: row.OriginalText,
			Definition:   def,
		})
	}
	return edits, nil
}

// ListHidden returns the original texts of the builtins the user has hidden.
func (r *Repo) ListHidden(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query, args, err := postgres.Builder().
		Select("original_text").
		From("action_hides").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("hidden_at", "original_text").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list hidden: %w", err)
	}

	var texts []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &texts, query, args...); err != nil {
		return nil, postgres.MapError(err, "action hides", userID)
	}
	return texts, nil
}

// ListCustom returns the user's custom actions in creation order.
func (r *Repo) ListCustom(ctx context.Context, userID uuid.UUID) ([]domain.ActionDefinition, error) {
	query, args, err := postgres.Builder().
		Select(customColumns...).
		From("custom_actions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list custom: %w", err)
	}

	var rows []customRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "custom actions", userID)
	}

	defs := make([]domain.ActionDefinition, 0, len(rows))
	for _, row := range rows {
		defs = append(defs, row.toDomain())
	}
	return defs, nil
}

// ---------------------------------------------------------------------------
// Builtin edits and hides
// ---------------------------------------------------------------------------

// UpsertEdit stores the full edited definition of a builtin for a user.
func (r *Repo) UpsertEdit(ctx context.Context, edit *domain.ActionEdit) error {
	values := append([]any{edit.UserID, edit.OriginalText}, definitionValues(edit.Definition)...)

	updates := make([]string, 0, len(definitionColumns)+1)
	for _, c := range definitionColumns {
		updates = append(updates, c+" = EXCLUDED."+c)
	}
	updates = append(updates, "updated_at = now()")

	query, args, err := postgres.Builder().
		Insert("action_edits").
		Columns(append([]string{"user_id"}, editColumns...)...).
		Values(values...).
		Suffix("ON CONFLICT (user_id, original_text) DO UPDATE SET " + strings.Join(updates, ", ")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert edit: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "action edit", edit.OriginalText)
	}
	return nil
}

// Hide marks a builtin hidden for the user. Hiding twice is a no-op.
func (r *Repo) Hide(ctx context.Context, userID uuid.UUID, originalText string) error {
	query, args, err := postgres.Builder().
		Insert("action_hides").
		Columns("user_id", "original_text").
		Values(userID, originalText).
		Suffix("ON CONFLICT (user_id, original_text) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build hide: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "action hide", originalText)
	}
	return nil
}

// Unhide removes a hide. Returns ErrActionNotFound when the builtin was not hidden.
func (r *Repo) Unhide(ctx context.Context, userID uuid.UUID, originalText string) error {
	query, args, err := postgres.Builder().
		Delete("action_hides").
		Where(squirrel.Eq{"user_id": userID, "original_text": originalText}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build unhide: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "action hide", originalText)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("hidden action %q: %w", originalText, domain.ErrActionNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Custom actions
// ---------------------------------------------------------------------------

// CreateCustom inserts a custom action. A zero ID is replaced with a new one.
func (r *Repo) CreateCustom(ctx context.Context, def *domain.ActionDefinition) (*domain.ActionDefinition, error) {
	if def.OwnerUserID == nil {
		return nil, domain.NewValidationError("owner", "custom action needs an owner")
	}
	id := def.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query, args, err := postgres.Builder().
		Insert("custom_actions").
		Columns(customColumns...).
		Values(append([]any{id, *def.OwnerUserID}, definitionValues(*def)...)...).
		Suffix("RETURNING " + strings.Join(customColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert custom: %w", err)
	}

	var row customRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "custom action", def.Text)
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateCustom overwrites the definition fields of an existing custom action.
func (r *Repo) UpdateCustom(ctx context.Context, def *domain.ActionDefinition) (*domain.ActionDefinition, error) {
	if def.OwnerUserID == nil {
		return nil, domain.NewValidationError("owner", "custom action needs an owner")
	}

	values := definitionValues(*def)
	upd := postgres.Builder().Update("custom_actions")
	for i, c := range definitionColumns {
		upd = upd.Set(c, values[i])
	}

	query, args, err := upd.
		Where(squirrel.Eq{"id": def.ID, "user_id": *def.OwnerUserID}).
		Suffix("RETURNING " + strings.Join(customColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update custom: %w", err)
	}

	var row customRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "custom action", def.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// DeleteCustom permanently removes a custom action owned by userID.
func (r *Repo) DeleteCustom(ctx context.Context, userID, id uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("custom_actions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete custom: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "custom action", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("custom action %s: %w", id, domain.ErrActionNotFound)
	}
	return nil
}
