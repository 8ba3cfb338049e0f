package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError holds every rejected field for a request.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Messages returns the per-field messages in declaration order.
func (e ValidationError) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return msgs
}

var validate = validator.New()

type registerRules struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"min=6"`
}

// ValidateRegister checks all fields and returns the full violation list,
// not just the first failure. A nil result means the input is valid.
func ValidateRegister(in RegisterInput) ValidationError {
	rules := registerRules{
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Password: in.Password,
	}
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return ValidationError{{Field: "request", Message: "Invalid request"}}
	}

	out := make(ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe.Field()),
		})
	}
	return out
}

func fieldMessage(field string) string {
	switch field {
	case "Name":
		return "Name is required"
	case "Email":
		return "Please include a valid email"
	case "Password":
		return "Please enter a password with 6 or more characters"
	default:
		return "Invalid value"
	}
}
