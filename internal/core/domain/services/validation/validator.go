package validation

import (
	"fmt"
	"strings"
	"unicode"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/core/domain/services/stagerules"
)

// Result collects field violations keyed by field name. Validation never
// short-circuits: every broken rule shows up, so a form can surface all of
// its problems at once.
type Result struct {
	IsValid bool
	Errors  map[string]string
}

func newResult() *Result {
	return &Result{IsValid: true, Errors: map[string]string{}}
}

func (r *Result) add(field, message string) {
	// First violation per field wins.
	if _, exists := r.Errors[field]; exists {
		return
	}
	r.Errors[field] = message
	r.IsValid = false
}

// Validator checks form data against the business rules. Draft validation is
// tolerant of missing fields; complete validation enforces every rule and
// gates finalization.
type Validator struct {
	countries *geography.Directory
	schedule  *tariff.Schedule
}

// NewValidator creates a Validator over the static reference data.
func NewValidator(countries *geography.Directory, schedule *tariff.Schedule) *Validator {
	return &Validator{countries: countries, schedule: schedule}
}

// ValidateDraft checks only what cannot be stored meaningfully: numeric
// fields that are present must not be negative. Everything else, including
// country names, may stay empty or incomplete while the shipment is a draft.
func (v *Validator) ValidateDraft(form stagerules.FormData) Result {
	result := newResult()

	numerics := map[string]*float64{
		"weight": form.Weight,
		"length": form.Length,
		"width":  form.Width,
		"height": form.Height,
	}
	for field, value := range numerics {
		if value != nil && *value < 0 {
			result.add(field, fmt.Sprintf("%s cannot be negative", field))
		}
	}

	return *result
}

// ValidateComplete enforces every rule as a hard requirement. A shipment may
// only be finalized when this passes over its stored field values.
func (v *Validator) ValidateComplete(form stagerules.FormData) Result {
	result := newResult()

	v.validateAddress(result, "sender", form.SenderName, form.SenderPhone,
		form.SenderCountry, form.SenderCity, form.SenderStreet, form.SenderPostalCode)
	v.validateAddress(result, "receiver", form.ReceiverName, form.ReceiverPhone,
		form.ReceiverCountry, form.ReceiverCity, form.ReceiverStreet, form.ReceiverPostalCode)

	if v.countries.IsGulf(form.SenderCountry) && form.ReceiverCountry == stagerules.RestrictedDestination {
		result.add("receiverCountry", stagerules.RestrictedRouteMessage)
	}

	shipmentType := v.countries.Classify(form.SenderCountry, form.ReceiverCountry)
	v.validatePackage(result, form, shipmentType)
	v.validateService(result, form, shipmentType)
	v.validateOptions(result, form)

	return *result
}

func (v *Validator) validateAddress(result *Result, prefix, name, phone, country, city, street, postalCode string) {
	if len(strings.TrimSpace(name)) < 2 {
		result.add(prefix+"Name", "Name must have at least 2 characters")
	}
	if countDigits(phone) < 10 {
		result.add(prefix+"Phone", "Phone number must have at least 10 digits")
	}
	if country == "" {
		result.add(prefix+"Country", "Country is required")
	} else if !v.countries.Contains(country) {
		result.add(prefix+"Country", "Country is not supported")
	}
	if len(strings.TrimSpace(city)) < 2 {
		result.add(prefix+"City", "City must have at least 2 characters")
	}
	if v.countries.IsGulf(country) && strings.TrimSpace(street) == "" {
		result.add(prefix+"Street", "Street address is required for Gulf countries")
	}
	if l := len(strings.TrimSpace(postalCode)); l < 3 || l > 10 {
		result.add(prefix+"PostalCode", "Postal code must be between 3 and 10 characters")
	}
}

func (v *Validator) validatePackage(result *Result, form stagerules.FormData, shipmentType geography.ShipmentType) {
	limits := v.schedule.PackageLimits(shipmentType)

	if form.Weight == nil || *form.Weight <= 0 {
		result.add("weight", "Weight must be greater than 0")
	} else if *form.Weight > limits.MaxWeight {
		result.add("weight", fmt.Sprintf("Weight must not exceed %g kg for %s shipments",
			limits.MaxWeight, shipmentType))
	}

	dimensions := map[string]*float64{
		"length": form.Length,
		"width":  form.Width,
		"height": form.Height,
	}
	for field, value := range dimensions {
		switch {
		case value == nil || *value <= 0:
			result.add(field, fmt.Sprintf("%s must be greater than 0", capitalize(field)))
		case *value > limits.MaxDimension:
			result.add(field, fmt.Sprintf("%s must not exceed %g cm",
				capitalize(field), limits.MaxDimension))
		}
	}

	if !v.countries.IsGulf(form.SenderCountry) && v.countries.IsGulf(form.ReceiverCountry) {
		if len(strings.TrimSpace(form.ItemDescription)) < 5 {
			result.add("itemDescription",
				"Item description is required (minimum 5 characters) when shipping from non-Gulf to Gulf countries")
		}
	}
}

func (v *Validator) validateService(result *Result, form stagerules.FormData, shipmentType geography.ShipmentType) {
	if form.ServiceID == "" {
		result.add("serviceId", "Service is required")
		return
	}

	service, serviceType, err := v.schedule.FindService(form.ServiceID)
	if err != nil {
		result.add("serviceId", "Selected service does not exist")
		return
	}
	if serviceType != shipmentType {
		result.add("serviceId", "Selected service is not available for this route")
		return
	}
	if form.Weight != nil && *form.Weight > service.MaxWeight {
		result.add("serviceId", fmt.Sprintf("Selected service carries at most %g kg", service.MaxWeight))
	}
}

func (v *Validator) validateOptions(result *Result, form stagerules.FormData) {
	method := tariff.PickupMethod(form.PickupMethod)
	if err := method.Validate(); err != nil {
		result.add("pickupMethod", "Pickup method is required")
		return
	}

	heavy := form.WeightOrZero() > stagerules.HeavyPickupThresholdKg
	exempt := form.SenderCountry == stagerules.HeavyPickupExemptSender
	if heavy && !exempt && method != tariff.PickupPostalOffice {
		result.add("pickupMethod",
			fmt.Sprintf("Packages over %g kg must be dropped off at a postal office",
				stagerules.HeavyPickupThresholdKg))
	}

	if stagerules.IsForcedSignatureDestination(form.ReceiverCountry) && !form.SignatureRequired {
		result.add("signatureRequired",
			fmt.Sprintf("Signature is required for shipments to %s", form.ReceiverCountry))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}
