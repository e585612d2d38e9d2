package commands

import "fmt"

// ValidationFailedError carries the per-field violations that stopped a
// command. The shipment stays in its previous status when this is returned.
type ValidationFailedError struct {
	Errors map[string]string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("shipment validation failed: %d invalid field(s)", len(e.Errors))
}

// NewValidationFailedError wraps a violation map into an error.
func NewValidationFailedError(errors map[string]string) *ValidationFailedError {
	return &ValidationFailedError{Errors: errors}
}
