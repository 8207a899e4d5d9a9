package services

import "fmt"

// ValidationError marks malformed caller input. The state machine performs no
// mutation before raising it, so handlers can safely map it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
