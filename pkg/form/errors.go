package form

import "errors"

// Validation error kinds, reported in the order the checks run
var (
	ErrMissingRequired        = errors.New("missing required fields")
	ErrMissingComparisonDates = errors.New("missing comparison dates")
	ErrInvalidEmail           = errors.New("invalid email")
)

// ValidationError is the user-facing outcome of a failed submit
type ValidationError struct {
	Kind    error  // one of the Err* kinds above
	Message string // text shown in the blocking notice
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap lets callers match the kind with errors.Is
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

var validationMessages = map[error]string{
	ErrMissingRequired:        "Please fill in all required fields",
	ErrMissingComparisonDates: "Please select comparison dates",
	ErrInvalidEmail:           "Please enter a valid email address",
}

func newValidationError(kind error) *ValidationError {
	return &ValidationError{Kind: kind, Message: validationMessages[kind]}
}
