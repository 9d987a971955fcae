package services

import "errors"

// ErrForbidden marks a failed policy check; controllers answer 403.
var ErrForbidden = errors.New("not authorized")

// ValidationError marks a missing or invalid request field; controllers
// answer 400 with the error message.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(msg string) error {
	return &ValidationError{msg: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
