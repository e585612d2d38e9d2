package rates

import (
	"errors"
	"fmt"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/pkg/errs"
)

var (
	// ErrServiceNotFound is returned when the service ID matches no service
	// in any shipment type bucket.
	ErrServiceNotFound = errors.New("service not found")

	// ErrWeightExceedsService is returned when the package weight is above
	// the selected service's carry limit.
	ErrWeightExceedsService = errors.New("weight exceeds service limit")
)

// Input carries everything the price depends on. The pickup fee is charged
// for the sender's country; unknown countries fall back to the default fee.
type Input struct {
	ServiceID     string
	Weight        float64
	SenderCountry string
	PickupMethod  tariff.PickupMethod

	Signature bool
	Liquid    bool
	Insurance bool
	Packaging bool
}

// Result is the priced outcome: the component breakdown plus the resolved
// service, which callers use for the delivery estimate.
type Result struct {
	Breakdown    shipment.RateBreakdown
	Service      tariff.Service
	ShipmentType geography.ShipmentType
}

// Calculator computes shipment prices from the fee schedule. It is the only
// place prices are computed; both the live rate endpoint and finalize go
// through it, so a client-supplied price never reaches storage.
type Calculator struct {
	schedule *tariff.Schedule
}

// NewCalculator creates a Calculator over the fee schedule.
func NewCalculator(schedule *tariff.Schedule) *Calculator {
	return &Calculator{schedule: schedule}
}

// Calculate prices one shipment. Pure: same input, same result.
//
// The base component is the service's base price plus the weight charge plus
// the pickup fee; each selected add-on contributes its flat fee. Components
// are rounded to two decimals independently before summing.
func (c *Calculator) Calculate(input Input) (Result, error) {
	if input.Weight <= 0 {
		return Result{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%g is not greater than 0", input.Weight),
		)
	}
	if err := input.PickupMethod.Validate(); err != nil {
		return Result{}, err
	}

	service, shipmentType, err := c.schedule.FindService(input.ServiceID)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrServiceNotFound, input.ServiceID)
	}
	if input.Weight > service.MaxWeight {
		return Result{}, fmt.Errorf("%w: %g kg > %g kg (%s)",
			ErrWeightExceedsService, input.Weight, service.MaxWeight, service.ID)
	}

	baseCost := service.BasePrice +
		input.Weight*service.PricePerKg +
		c.schedule.PickupFee(input.SenderCountry, input.PickupMethod)

	fees := c.schedule.AdditionalFees()
	var signatureCost, liquidCost, insuranceCost, packagingCost float64
	if input.Signature {
		signatureCost = fees.Signature
	}
	if input.Liquid {
		liquidCost = fees.Liquid
	}
	if input.Insurance {
		insuranceCost = fees.Insurance
	}
	if input.Packaging {
		packagingCost = fees.Packaging
	}

	breakdown, err := shipment.NewRateBreakdown(baseCost, signatureCost, insuranceCost, packagingCost, liquidCost)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Breakdown:    breakdown,
		Service:      service,
		ShipmentType: shipmentType,
	}, nil
}
