package commands

import (
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/core/domain/services/rates"
	"shipping/internal/core/domain/services/stagerules"
)

func rateInput(form stagerules.FormData) rates.Input {
	return rates.Input{
		ServiceID:     form.ServiceID,
		Weight:        form.WeightOrZero(),
		SenderCountry: form.SenderCountry,
		PickupMethod:  tariff.PickupMethod(form.PickupMethod),
		Signature:     form.SignatureRequired,
		Liquid:        form.ContainsLiquid,
		Insurance:     form.Insurance,
		Packaging:     form.Packaging,
	}
}

// estimateRate computes the non-binding display price for a draft. A draft
// may not yet carry enough fields to price, in which case the estimate is
// simply zero; the authoritative computation happens at finalize.
func estimateRate(calculator *rates.Calculator, form stagerules.FormData) shipment.RateBreakdown {
	result, err := calculator.Calculate(rateInput(form))
	if err != nil {
		return shipment.RateBreakdown{}
	}
	return result.Breakdown
}
