package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Error is a coded error safe to surface to API consumers and logs.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func NewError(code, message, details string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationErrors maps a struct field name to its validation failure.
type ValidationErrors map[string]*Error

// Messages flattens validation errors to field -> human readable message.
func (v ValidationErrors) Messages() map[string]string {
	out := make(map[string]string, len(v))
	for field, err := range v {
		out[field] = err.Message
	}
	return out
}

// ProcessValidatorErrors converts go-playground validator errors into coded errors.
// fieldLabel maps a struct field name to a display label; empty falls back to the
// field name itself.
func ProcessValidatorErrors(errs validator.ValidationErrors, fieldLabel func(field string) string) map[string]*Error {
	out := make(map[string]*Error, len(errs))
	for _, fe := range errs {
		label := fieldLabel(fe.Field())
		if label == "" {
			label = fe.Field()
		}
		var msg string
		switch fe.Tag() {
		case "required":
			msg = fmt.Sprintf("%s is required", label)
		case "email":
			msg = fmt.Sprintf("%s must be a valid email address", label)
		case "min", "max", "gte", "lte":
			msg = fmt.Sprintf("%s is out of range", label)
		default:
			msg = fmt.Sprintf("%s is invalid", label)
		}
		out[fe.Field()] = NewError("VALIDATION_"+fe.Tag(), msg, fe.Param())
	}
	return out
}
