package geography

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// ShipmentType classifies a shipment by its sender/receiver country pair.
// It is always derived through Directory.Classify and never taken from
// user input.
type ShipmentType int

const (
	// UnknownShipmentType represents an invalid or undefined type.
	// This value (0) helps catch uninitialized ShipmentType values.
	UnknownShipmentType ShipmentType = iota

	// Domestic means sender and receiver country are the same.
	Domestic

	// IntraGulf means sender and receiver are different Gulf countries.
	IntraGulf

	// International covers every other country pair.
	International
)

func getShipmentTypeStrings() map[ShipmentType]string {
	return map[ShipmentType]string{
		UnknownShipmentType: "Unknown",
		Domestic:            "Domestic",
		IntraGulf:           "IntraGulf",
		International:       "International",
	}
}

func getValidShipmentTypeStrings() map[ShipmentType]string {
	//nolint:exhaustive // UnknownShipmentType is intentionally excluded as it's invalid
	return map[ShipmentType]string{
		Domestic:      "Domestic",
		IntraGulf:     "IntraGulf",
		International: "International",
	}
}

// ShipmentTypeFromString parses the canonical string form of a shipment type.
// Returns an error for any string that is not Domestic, IntraGulf or International.
func ShipmentTypeFromString(s string) (ShipmentType, error) {
	for t, str := range getValidShipmentTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownShipmentType, errs.NewValueIsInvalidErrorWithCause(
		"shipment type",
		fmt.Errorf("%q is not a valid shipment type", s),
	)
}

// Validate checks that the ShipmentType holds one of the three valid values.
func (t ShipmentType) Validate() error {
	if _, ok := getValidShipmentTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipment type",
			fmt.Errorf("%d is not a valid shipment type", t),
		)
	}
	return nil
}

// String returns the canonical name of the shipment type.
// It implements fmt.Stringer and is safe on invalid values.
func (t ShipmentType) String() string {
	if str, ok := getShipmentTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
