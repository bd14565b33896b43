package wizard

import "fmt"

// ValidationError carries a user-facing message that blocks a transition
// synchronously. It is the only error class the wizard surfaces.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// ErrMissingAddresses rejects a pick-and-drop submission with an empty
// pickup or drop-off address.
var ErrMissingAddresses = NewValidationError("Please enter pickup and drop-off addresses.")
