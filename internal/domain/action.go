package domain

import (
	"slices"

	"github.com/google/uuid"
)

// ActionOrigin tells where an effective action definition comes from.
type ActionOrigin string

const (
	OriginBuiltin       ActionOrigin = "builtin"
	OriginBuiltinEdited ActionOrigin = "builtin-edited"
	OriginCustom        ActionOrigin = "custom"
)

// ActionDefinition is a loggable action as seen by one user.
//
// Text is the display text and the identity inside a user's effective catalog.
// OriginalText is the canonical key of a builtin; for customs it equals Text.
// ID is set for custom actions only. SimilarTo is ordered: the first entry
// logged today blocks the action.
type ActionDefinition struct {
	ID                     uuid.UUID
	Text                   string
	OriginalText           string
	Minutes                int
	RepeatableDaily        bool
	MustBeLoggedAtEndOfDay bool
	Warning                *string
	SimilarTo              []string
	Origin                 ActionOrigin
	OwnerUserID            *uuid.UUID
}

// IsCustom reports whether the action was created by its owner.
func (d ActionDefinition) IsCustom() bool { return d.Origin == OriginCustom }

// IsEdited reports whether a builtin carries per-user overrides.
func (d ActionDefinition) IsEdited() bool { return d.Origin == OriginBuiltinEdited }

// Clone returns a copy that shares no slices or pointers with d.
func (d ActionDefinition) Clone() ActionDefinition {
	c := d
	c.SimilarTo = slices.Clone(d.SimilarTo)
	if d.Warning != nil {
		w := *d.Warning
		c.Warning = &w
	}
	if d.OwnerUserID != nil {
		id := *d.OwnerUserID
		c.OwnerUserID = &id
	}
	return c
}

// ActionPatch holds the fields of an edit. Nil fields stay unchanged.
// A Warning pointing to an empty string clears the warning.
type ActionPatch struct {
	Text                   *string
	Minutes                *int
	RepeatableDaily        *bool
	MustBeLoggedAtEndOfDay *bool
	Warning                *string
	SimilarTo              *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p ActionPatch) IsEmpty() bool {
	return p.Text == nil && p.Minutes == nil && p.RepeatableDaily == nil &&
		p.MustBeLoggedAtEndOfDay == nil && p.Warning == nil && p.SimilarTo == nil
}

// Apply returns d with the patch applied. Identity fields (ID, OriginalText,
// Origin, OwnerUserID) are left to the caller.
func (p ActionPatch) Apply(d ActionDefinition) ActionDefinition {
	out := d.Clone()
	if p.Text != nil {
		out.Text = *p.Text
	}
	if p.Minutes != nil {
		out.Minutes = *p.Minutes
	}
	if p.RepeatableDaily != nil {
		out.RepeatableDaily = *p.RepeatableDaily
	}
	if p.MustBeLoggedAtEndOfDay != nil {
		out.MustBeLoggedAtEndOfDay = *p.MustBeLoggedAtEndOfDay
	}
	if p.Warning != nil {
		if *p.Warning == "" {
			out.Warning = nil
		} else {
			w := *p.Warning
			out.Warning = &w
		}
	}
	if p.SimilarTo != nil {
		out.SimilarTo = slices.Clone(*p.SimilarTo)
	}
	return out
}

// ActionEdit is a stored per-user override of a builtin, keyed by the
// builtin's original text. It carries the full resulting definition.
type ActionEdit struct {
	UserID       uuid.UUID
	OriginalText string
	Definition   ActionDefinition
}
