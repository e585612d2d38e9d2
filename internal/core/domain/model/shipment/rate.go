package shipment

import (
	"fmt"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// RateBreakdown is the priced decomposition of a shipment: the base cost
// (service price + weight charge + pickup fee) plus one flat component per
// add-on, and the total.
//
// Invariant: TotalPrice equals the sum of the five components, each rounded
// to two decimals before summation. NewRateBreakdown enforces this by
// computing the total itself; callers never supply one.
type RateBreakdown struct {
	baseCost      float64
	signatureCost float64
	insuranceCost float64
	packagingCost float64
	liquidCost    float64
	totalPrice    float64
}

// NewRateBreakdown builds a breakdown from its components. Each component is
// rounded to two decimals independently, and the total is their sum; negative
// components are rejected.
func NewRateBreakdown(baseCost, signatureCost, insuranceCost, packagingCost, liquidCost float64) (RateBreakdown, error) {
	components := map[string]float64{
		"base cost":      baseCost,
		"signature cost": signatureCost,
		"insurance cost": insuranceCost,
		"packaging cost": packagingCost,
		"liquid cost":    liquidCost,
	}
	for name, v := range components {
		if v < 0 {
			return RateBreakdown{}, errs.NewValueIsInvalidErrorWithCause(
				name,
				fmt.Errorf("%f is negative", v),
			)
		}
	}

	b := RateBreakdown{
		baseCost:      kernel.RoundMoney(baseCost),
		signatureCost: kernel.RoundMoney(signatureCost),
		insuranceCost: kernel.RoundMoney(insuranceCost),
		packagingCost: kernel.RoundMoney(packagingCost),
		liquidCost:    kernel.RoundMoney(liquidCost),
	}
	b.totalPrice = kernel.RoundMoney(
		b.baseCost + b.signatureCost + b.insuranceCost + b.packagingCost + b.liquidCost,
	)
	return b, nil
}

// BaseCost returns the service price + weight charge + pickup fee component.
func (b RateBreakdown) BaseCost() float64 { return b.baseCost }

// SignatureCost returns the signature add-on fee (zero when not selected).
func (b RateBreakdown) SignatureCost() float64 { return b.signatureCost }

// InsuranceCost returns the insurance add-on fee (zero when not selected).
func (b RateBreakdown) InsuranceCost() float64 { return b.insuranceCost }

// PackagingCost returns the packaging add-on fee (zero when not selected).
func (b RateBreakdown) PackagingCost() float64 { return b.packagingCost }

// LiquidCost returns the liquid-handling fee (zero when not selected).
func (b RateBreakdown) LiquidCost() float64 { return b.liquidCost }

// TotalPrice returns the sum of all components.
func (b RateBreakdown) TotalPrice() float64 { return b.totalPrice }
