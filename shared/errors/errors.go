package errors

import (
	"errors"
	"fmt"
)

// NotFound signals that an operation targeted a post id that no longer
// exists. Interaction flows treat it as a no-op, never as a failure.
var NotFound = errors.New("not found")

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
