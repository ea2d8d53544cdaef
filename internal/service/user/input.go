package user

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/moreminutes-backend/internal/domain"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

// RegisterInput holds parameters for Register.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

func (i *RegisterInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Email = strings.ToLower(strings.TrimSpace(i.Email))
	i.DisplayName = strings.TrimSpace(i.DisplayName)
	if i.DisplayName == "" {
		i.DisplayName = i.Username
	}
}

// Validate checks the registration fields.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if !usernameRe.MatchString(i.Username) {
		errs = append(errs, domain.FieldError{Field: "username", Message: "3-32 letters, digits, '_', '.' or '-'"})
	}

	errs = checkEmail(errs, i.Email)
	errs = checkPassword(errs, i.Password)
	errs = checkDisplayName(errs, i.DisplayName)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput holds parameters for Login. Login is a username or an email.
type LoginInput struct {
	Login    string
	Password string
}

// Validate checks the login fields.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.Login) == "" {
		errs = append(errs, domain.FieldError{Field: "login", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProfileInput holds parameters for UpdateProfile. Nil fields are left
// unchanged; an empty password counts as not given.
type UpdateProfileInput struct {
	Email       *string
	DisplayName *string
	Password    *string
}

func (i *UpdateProfileInput) normalize() {
	if i.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*i.Email))
		i.Email = &e
	}
	if i.DisplayName != nil {
		n := strings.TrimSpace(*i.DisplayName)
		i.DisplayName = &n
	}
	if i.Password != nil && *i.Password == "" {
		i.Password = nil
	}
}

// Validate checks the fields that are set.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Email != nil {
		errs = checkEmail(errs, *i.Email)
	}
	if i.DisplayName != nil {
		if *i.DisplayName == "" {
			errs = append(errs, domain.FieldError{Field: "display_name", Message: "required"})
		}
		errs = checkDisplayName(errs, *i.DisplayName)
	}
	if i.Password != nil {
		errs = checkPassword(errs, *i.Password)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkEmail(errs []domain.FieldError, email string) []domain.FieldError {
	if email == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if _, err := mail.ParseAddress(email); err != nil || len(email) > 254 {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func checkPassword(errs []domain.FieldError, password string) []domain.FieldError {
	switch n := utf8.RuneCountInString(password); {
	case n < 8:
		return append(errs, domain.FieldError{Field: "password", Message: "must be at least 8 characters"})
	case len(password) > 72:
		return append(errs, domain.FieldError{Field: "password", Message: "must be at most 72 bytes"})
	}
	return errs
}

func checkDisplayName(errs []domain.FieldError, name string) []domain.FieldError {
	if utf8.RuneCountInString(name) > 100 {
		return append(errs, domain.FieldError{Field: "display_name", Message: "too long"})
	}
	return errs
}
