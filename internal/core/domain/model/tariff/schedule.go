package tariff

import (
	"fmt"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/pkg/errs"
)

// ErrServiceNotFound is returned when a service id does not exist in any
// shipment-type bucket of the schedule.
var ErrServiceNotFound = errs.NewObjectNotFoundError("service", "unknown service id")

// Service is one bookable delivery service of the fee schedule.
// Services are immutable reference data grouped under a shipment type.
type Service struct {
	ID           string  `yaml:"id"`
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	MaxWeight    float64 `yaml:"maxWeight"`
	BasePrice    float64 `yaml:"basePrice"`
	PricePerKg   float64 `yaml:"pricePerKg"`
	DeliveryDays int     `yaml:"deliveryDays"`
}

// PackageLimits bounds the package stage for one shipment type.
type PackageLimits struct {
	MaxWeight    float64 `yaml:"maxWeight"`
	MaxDimension float64 `yaml:"maxDimension"`
}

// PickupFees holds the fee pair for one sender country.
type PickupFees struct {
	Home         float64 `yaml:"home"`
	PostalOffice float64 `yaml:"postal_office"`
}

// Fee returns the fee for the given pickup method.
func (f PickupFees) Fee(method PickupMethod) float64 {
	if method == PickupHome {
		return f.Home
	}
	return f.PostalOffice
}

// AdditionalFees holds the flat fees for the optional add-ons.
type AdditionalFees struct {
	Signature float64 `yaml:"signature"`
	Liquid    float64 `yaml:"liquid"`
	Insurance float64 `yaml:"insurance"`
	Packaging float64 `yaml:"packaging"`
}

// Schedule is the static fee schedule: services grouped by shipment type,
// per-country pickup/drop-off fees with a default fallback, per-type package
// limits, and flat add-on fees.
//
// A Schedule is immutable after construction and safe for concurrent use.
// It is the only pricing reference the rate calculator consults.
type Schedule struct {
	servicesByType    map[geography.ShipmentType][]Service
	packageLimits     map[geography.ShipmentType]PackageLimits
	pickupFees        map[string]PickupFees
	defaultPickupFees PickupFees
	additionalFees    AdditionalFees
}

// NewSchedule builds a Schedule from its parts. Every shipment type must
// carry at least one service and a package limit entry.
func NewSchedule(
	servicesByType map[geography.ShipmentType][]Service,
	packageLimits map[geography.ShipmentType]PackageLimits,
	pickupFees map[string]PickupFees,
	defaultPickupFees PickupFees,
	additionalFees AdditionalFees,
) (*Schedule, error) {
	for _, t := range []geography.ShipmentType{geography.Domestic, geography.IntraGulf, geography.International} {
		if len(servicesByType[t]) == 0 {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"services",
				fmt.Errorf("no services configured for %s shipments", t),
			)
		}
		if _, ok := packageLimits[t]; !ok {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"package limits",
				fmt.Errorf("no package limits configured for %s shipments", t),
			)
		}
	}

	return &Schedule{
		servicesByType:    servicesByType,
		packageLimits:     packageLimits,
		pickupFees:        pickupFees,
		defaultPickupFees: defaultPickupFees,
		additionalFees:    additionalFees,
	}, nil
}

// ServicesFor returns the services available for the given shipment type.
func (s *Schedule) ServicesFor(t geography.ShipmentType) []Service {
	return append([]Service(nil), s.servicesByType[t]...)
}

// FindService locates a service by id across all shipment-type buckets.
// Returns the service, the bucket it belongs to, and an ObjectNotFoundError
// when the id is unknown.
func (s *Schedule) FindService(id string) (Service, geography.ShipmentType, error) {
	for t, services := range s.servicesByType {
		for _, svc := range services {
			if svc.ID == id {
				return svc, t, nil
			}
		}
	}
	return Service{}, geography.UnknownShipmentType, errs.NewObjectNotFoundError("service", id)
}

// PackageLimits returns the weight/dimension bounds for a shipment type.
func (s *Schedule) PackageLimits(t geography.ShipmentType) PackageLimits {
	return s.packageLimits[t]
}

// PickupFee returns the pickup/drop-off fee for a sender country and method.
// Countries absent from the per-country table fall back to the default fees.
func (s *Schedule) PickupFee(country string, method PickupMethod) float64 {
	if fees, ok := s.pickupFees[country]; ok {
		return fees.Fee(method)
	}
	return s.defaultPickupFees.Fee(method)
}

// AdditionalFees returns the flat fees for the optional add-ons.
func (s *Schedule) AdditionalFees() AdditionalFees {
	return s.additionalFees
}
