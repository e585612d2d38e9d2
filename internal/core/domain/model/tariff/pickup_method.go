package tariff

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// PickupMethod selects how a package enters the network: collected at the
// sender's address or dropped off at a postal office.
type PickupMethod string

const (
	// PickupHome means the package is collected at the sender's address.
	PickupHome PickupMethod = "home"

	// PickupPostalOffice means the sender drops the package off at a postal office.
	PickupPostalOffice PickupMethod = "postal_office"
)

// Validate checks that the method is one of the two known values.
func (m PickupMethod) Validate() error {
	if m != PickupHome && m != PickupPostalOffice {
		return errs.NewValueIsInvalidErrorWithCause(
			"pickup method",
			fmt.Errorf("%q is not a valid pickup method", string(m)),
		)
	}
	return nil
}

// String returns the wire form of the pickup method.
func (m PickupMethod) String() string {
	return string(m)
}
