package tariff

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"shipping/internal/core/domain/model/geography"
)

//go:embed data/tariff.yaml
var tariffYAML []byte

type scheduleDocument struct {
	ServicesByShipmentType map[string][]Service      `yaml:"servicesByShipmentType"`
	ShipmentTypes          map[string]PackageLimits  `yaml:"shipmentTypes"`
	PickupFees             map[string]PickupFees     `yaml:"pickupFees"`
	DefaultPickupFees      PickupFees                `yaml:"defaultPickupFees"`
	AdditionalFees         AdditionalFees            `yaml:"additionalFees"`
}

// LoadSchedule decodes the embedded fee schedule.
// The schedule ships with the binary; there is no runtime reload.
func LoadSchedule() (*Schedule, error) {
	var doc scheduleDocument
	if err := yaml.Unmarshal(tariffYAML, &doc); err != nil {
		return nil, fmt.Errorf("decode tariff schedule: %w", err)
	}

	servicesByType := make(map[geography.ShipmentType][]Service, len(doc.ServicesByShipmentType))
	for name, services := range doc.ServicesByShipmentType {
		t, err := geography.ShipmentTypeFromString(name)
		if err != nil {
			return nil, fmt.Errorf("tariff schedule services: %w", err)
		}
		servicesByType[t] = services
	}

	packageLimits := make(map[geography.ShipmentType]PackageLimits, len(doc.ShipmentTypes))
	for name, limits := range doc.ShipmentTypes {
		t, err := geography.ShipmentTypeFromString(name)
		if err != nil {
			return nil, fmt.Errorf("tariff schedule package limits: %w", err)
		}
		packageLimits[t] = limits
	}

	return NewSchedule(servicesByType, packageLimits, doc.PickupFees, doc.DefaultPickupFees, doc.AdditionalFees)
}
