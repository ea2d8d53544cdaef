package catalog

import (
	"slices"
	"strings"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

const (
	maxTextLength    = 200
	maxWarningLength = 500
	maxMinutes       = 24 * 60
	maxSimilarTo     = 50
)

// CustomActionInput holds the parameters for creating a custom action.
type CustomActionInput struct {
	Text                   string
	Minutes                int
	RepeatableDaily        bool
	MustBeLoggedAtEndOfDay bool
	Warning                *string
	SimilarTo              []string
}

// Validate checks all fields and collects all errors.
func (i *CustomActionInput) Validate() error {
	errs := validateFields(i.Text, i.Minutes, i.Warning, i.SimilarTo)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i *CustomActionInput) definition() domain.ActionDefinition {
	def := domain.ActionDefinition{
		Text:                   strings.TrimSpace(i.Text),
		Minutes:                i.Minutes,
		RepeatableDaily:        i.RepeatableDaily,
		MustBeLoggedAtEndOfDay: i.MustBeLoggedAtEndOfDay,
		SimilarTo:              slices.Clone(i.SimilarTo),
		Origin:                 domain.OriginCustom,
	}
	if i.Warning != nil && *i.Warning != "" {
		w := *i.Warning
		def.Warning = &w
	}
	def.OriginalText = def.Text
	return def
}

// EditActionInput holds the parameters for editing an action. Ref is the
// builtin's original text or the action's current display text.
type EditActionInput struct {
	Ref   string
	Patch domain.ActionPatch
}

// Validate checks all fields and collects all errors.
func (i *EditActionInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Ref) == "" {
		errs = append(errs, domain.FieldError{Field: "original_text", Message: "required"})
	}
	if i.Patch.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "patch", Message: "at least one field required"})
	}
	if i.Patch.Text != nil {
		if strings.TrimSpace(*i.Patch.Text) == "" {
			errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
		} else if len(*i.Patch.Text) > maxTextLength {
			errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
		}
	}
	if i.Patch.Minutes != nil && (*i.Patch.Minutes < 0 || *i.Patch.Minutes > maxMinutes) {
		errs = append(errs, domain.FieldError{Field: "minutes", Message: "must be between 0 and 1440"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validateDefinition checks a definition produced by applying a patch.
func validateDefinition(def domain.ActionDefinition) error {
	errs := validateFields(def.Text, def.Minutes, def.Warning, def.SimilarTo)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateFields(text string, minutes int, warning *string, similarTo []string) []domain.FieldError {
	var errs []domain.FieldError

	text = strings.TrimSpace(text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(text) > maxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}
	if minutes < 0 || minutes > maxMinutes {
		errs = append(errs, domain.FieldError{Field: "minutes", Message: "must be between 0 and 1440"})
	}
	if warning != nil && len(*warning) > maxWarningLength {
		errs = append(errs, domain.FieldError{Field: "warning", Message: "too long"})
	}
	if len(similarTo) > maxSimilarTo {
		errs = append(errs, domain.FieldError{Field: "similar-to", Message: "too many entries"})
	}
	for _, s := range similarTo {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, domain.FieldError{Field: "similar-to", Message: "entries must not be empty"})
			break
		}
	}
	if text != "" && slices.Contains(similarTo, text) {
		errs = append(errs, domain.FieldError{Field: "similar-to", Message: "must not contain the action itself"})
	}

	return errs
}
