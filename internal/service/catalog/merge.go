package catalog

import (
	"slices"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

// Snapshot is the raw catalog state of one user.
type Snapshot struct {
	Builtins []domain.ActionDefinition
	Edits    []domain.ActionEdit
	Hidden   []string
	Customs  []domain.ActionDefinition
}

// Merge builds the effective catalog: builtins in definition order with the
// user's edits applied, hidden builtins removed, then customs in creation
// order. The result is stably sorted by minutes ascending.
func Merge(s Snapshot) []domain.ActionDefinition {
	edits := make(map[string]domain.ActionEdit, len(s.Edits))
	for _, e := range s.Edits {
		edits[e.OriginalText] = e
	}
	hidden := make(map[string]struct{}, len(s.Hidden))
	for _, h := range s.Hidden {
		hidden[h] = struct{}{}
	}

	out := make([]domain.ActionDefinition, 0, len(s.Builtins)+len(s.Customs))
	for _, b := range s.Builtins {
		if _, ok := hidden[b.OriginalText]; ok {
			continue
		}
		out = append(out, resolveBuiltin(b, edits))
	}
	for _, c := range s.Customs {
		def := c.Clone()
		def.Origin = domain.OriginCustom
		def.OriginalText = def.Text
		out = append(out, def)
	}

	slices.SortStableFunc(out, func(a, b domain.ActionDefinition) int {
		return a.Minutes - b.Minutes
	})
	return out
}

// HiddenBuiltins returns the builtins the user has hidden, with edits applied.
func HiddenBuiltins(s Snapshot) []domain.ActionDefinition {
	edits := make(map[string]domain.ActionEdit, len(s.Edits))
	for _, e := range s.Edits {
		edits[e.OriginalText] = e
	}

	var out []domain.ActionDefinition
	for _, b := range s.Builtins {
		if slices.Contains(s.Hidden, b.OriginalText) {
			out = append(out, resolveBuiltin(b, edits))
		}
	}
	return out
}

func resolveBuiltin(b domain.ActionDefinition, edits map[string]domain.ActionEdit) domain.ActionDefinition {
	e, ok := edits[b.OriginalText]
	if !ok {
		def := b.Clone()
		def.Origin = domain.OriginBuiltin
		return def
	}

	def := e.Definition.Clone()
	def.ID = b.ID
	def.OriginalText = b.OriginalText
	def.Origin = domain.OriginBuiltinEdited
	owner := e.UserID
	def.OwnerUserID = &owner
	return def
}

// Find resolves a reference to an effective action. A builtin is found by its
// original text first so that renamed builtins stay addressable; otherwise the
// display text is matched.
func Find(defs []domain.ActionDefinition, ref string) (domain.ActionDefinition, bool) {
	for _, d := range defs {
		if !d.IsCustom() && d.OriginalText == ref {
			return d, true
		}
	}
	return FindByText(defs, ref)
}

// FindByText matches the display text only.
func FindByText(defs []domain.ActionDefinition, text string) (domain.ActionDefinition, bool) {
	for _, d := range defs {
		if d.Text == text {
			return d, true
		}
	}
	return domain.ActionDefinition{}, false
}

// collides reports whether text would clash with an effective action other
// than skip. Builtin original texts are reserved too, since Find resolves them
// before display texts.
func collides(defs []domain.ActionDefinition, text string, skip *domain.ActionDefinition) bool {
	for _, d := range defs {
		if skip != nil && sameAction(d, *skip) {
			continue
		}
		if d.Text == text || (!d.IsCustom() && d.OriginalText == text) {
			return true
		}
	}
	return false
}

func sameAction(a, b domain.ActionDefinition) bool {
	if a.IsCustom() != b.IsCustom() {
		return false
	}
	if a.IsCustom() {
		return a.ID == b.ID
	}
	return a.OriginalText == b.OriginalText
}
