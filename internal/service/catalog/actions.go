package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

// AddCustom creates a custom action for the user.
func (s *Service) AddCustom(ctx context.Context, userID uuid.UUID, input CustomActionInput) (*domain.ActionDefinition, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	def := input.definition()
	owner := userID
	def.OwnerUserID = &owner

	var created *domain.ActionDefinition
	err := s.mutate(ctx, userID, func(ctx context.Context, snap Snapshot) error {
		if collides(Merge(snap), def.Text, nil) {
			return domain.ErrDuplicateActionText
		}

		var err error
		created, err = s.actions.CreateCustom(ctx, &def)
		if errors.Is(err, domain.ErrAlreadyExists) {
			return domain.ErrDuplicateActionText
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.AddCustom: %w", err)
	}

	s.log.InfoContext(ctx, "custom action created",
		slog.String("user_id", userID.String()),
		slog.String("text", created.Text),
		slog.Int("minutes", created.Minutes),
	)
	return created, nil
}

// EditAction applies a patch to one of the user's effective actions. Builtins
// get a per-user override keyed by their original text; customs are updated
// in place.
func (s *Service) EditAction(ctx context.Context, userID uuid.UUID, input EditActionInput) (*domain.ActionDefinition, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated domain.ActionDefinition
	err := s.mutate(ctx, userID, func(ctx context.Context, snap Snapshot) error {
		effective := Merge(snap)

		target, ok := Find(effective, input.Ref)
		if !ok {
			return domain.ErrActionNotFound
		}

		updated = input.Patch.Apply(target)
		updated.Text = strings.TrimSpace(updated.Text)
		if err := validateDefinition(updated); err != nil {
			return err
		}
		if updated.Text != target.Text && collides(effective, updated.Text, &target) {
			return domain.ErrDuplicateActionText
		}

		if target.IsCustom() {
			updated.OriginalText = updated.Text
			saved, err := s.actions.UpdateCustom(ctx, &updated)
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrDuplicateActionText
			}
			if err != nil {
				return err
			}
			updated = *saved
			return nil
		}

		owner := userID
		updated.Origin = domain.OriginBuiltinEdited
		updated.OwnerUserID = &owner
		return s.actions.UpsertEdit(ctx, &domain.ActionEdit{
			UserID:       userID,
			OriginalText: target.OriginalText,
			Definition:   updated,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.EditAction: %w", err)
	}

	s.log.InfoContext(ctx, "action edited",
		slog.String("user_id", userID.String()),
		slog.String("ref", input.Ref),
		slog.String("text", updated.Text),
	)
	return &updated, nil
}

// DeleteAction hides a builtin for the user or removes a custom action.
// Logged events referencing the action are never touched.
func (s *Service) DeleteAction(ctx context.Context, userID uuid.UUID, ref string) error {
	var target domain.ActionDefinition
	err := s.mutate(ctx, userID, func(ctx context.Context, snap Snapshot) error {
		var ok bool
		target, ok = Find(Merge(snap), ref)
		if !ok {
			return domain.ErrActionNotFound
		}

		if target.IsCustom() {
			return s.actions.DeleteCustom(ctx, userID, target.ID)
		}
		return s.actions.Hide(ctx, userID, target.OriginalText)
	})
	if err != nil {
		return fmt.Errorf("catalog.DeleteAction: %w", err)
	}

	s.log.InfoContext(ctx, "action deleted",
		slog.String("user_id", userID.String()),
		slog.String("text", target.Text),
		slog.String("origin", string(target.Origin)),
	)
	return nil
}

// RestoreAction brings back a builtin the user deleted. Customs cannot be
// restored: their deletion is permanent.
func (s *Service) RestoreAction(ctx context.Context, userID uuid.UUID, ref string) (*domain.ActionDefinition, error) {
	var restored domain.ActionDefinition
	err := s.mutate(ctx, userID, func(ctx context.Context, snap Snapshot) error {
		hidden := HiddenBuiltins(snap)

		var ok bool
		if restored, ok = Find(hidden, ref); !ok {
			return domain.ErrActionNotFound
		}
		effective := Merge(snap)
		if collides(effective, restored.Text, nil) || collides(effective, restored.OriginalText, nil) {
			return domain.ErrDuplicateActionText
		}
		return s.actions.Unhide(ctx, userID, restored.OriginalText)
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.RestoreAction: %w", err)
	}

	s.log.InfoContext(ctx, "action restored",
		slog.String("user_id", userID.String()),
		slog.String("text", restored.Text),
	)
	return &restored, nil
}
