package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with a single one-way transition:
//
//	Draft ──> Finalized
//
// A Draft shipment is freely editable and may be arbitrarily incomplete.
// A Finalized shipment is immutable in its content fields; only tracking
// events may still be appended.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Draft is the initial status. Draft shipments are mutable and may be
	// saved with missing or partially filled fields.
	Draft

	// Finalized means the shipment passed complete validation and carries a
	// server-computed price. Content fields are immutable from here on.
	Finalized
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Draft:         "draft",
		Finalized:     "finalized",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Finalized: "finalized",
	}
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
// Valid statuses are Draft and Finalized.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
// It implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDraft reports whether the status permits content edits.
func (s Status) IsDraft() bool {
	return s == Draft
}

// Finalize transitions the status to Finalized.
//
// Valid transitions:
//   - Draft -> Finalized
//
// Returns (0, error) for every other starting state: Finalized is terminal
// and UnknownStatus is invalid.
func (s Status) Finalize() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to finalize", s.String()),
		)
	}
	return Finalized, nil
}
