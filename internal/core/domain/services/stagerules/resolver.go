package stagerules

import (
	"fmt"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/pkg/errs"
)

// Stage names one of the five sequential form sections.
type Stage string

const (
	StageSender   Stage = "sender"
	StageReceiver Stage = "receiver"
	StagePackage  Stage = "package"
	StageService  Stage = "service"
	StageOptions  Stage = "options"
)

// Stages returns the five stages in pipeline order. Each stage's rules may
// depend on values entered in earlier stages, never on later ones.
func Stages() []Stage {
	return []Stage{StageSender, StageReceiver, StagePackage, StageService, StageOptions}
}

// Route and option constraints. These are business rules, not geography:
// the country table only knows the Gulf flag.
const (
	// RestrictedDestination cannot receive shipments from Gulf countries.
	RestrictedDestination = "Iraq"

	// HeavyPickupExemptSender keeps home pickup available above the weight
	// threshold.
	HeavyPickupExemptSender = "Iraq"

	// HeavyPickupThresholdKg is the weight above which home pickup is
	// disabled (strictly greater than).
	HeavyPickupThresholdKg = 17.0
)

// ForcedSignatureDestinations lists receiver countries for which the
// signature add-on is forced on and cannot be unchecked.
func ForcedSignatureDestinations() []string {
	return []string{"Jordan", "Egypt"}
}

// IsForcedSignatureDestination reports whether the receiver country forces
// the signature add-on.
func IsForcedSignatureDestination(country string) bool {
	for _, c := range ForcedSignatureDestinations() {
		if c == country {
			return true
		}
	}
	return false
}

// RestrictedRouteMessage is the cross-field error raised on the receiver
// stage (and at complete validation) for the Gulf -> restricted destination
// route.
const RestrictedRouteMessage = "Shipping from Gulf countries to Iraq is currently not possible"

// Resolver computes the active CardRuleSet for each stage as a pure function
// of the accumulated form data, the country table and the fee schedule.
//
// Every Resolve call builds fresh rule values from read-only reference data;
// no templates are shared or mutated, so identical inputs always produce
// identical rule sets and concurrent resolutions cannot contaminate each
// other.
type Resolver struct {
	countries *geography.Directory
	schedule  *tariff.Schedule
}

// NewResolver creates a Resolver over the static reference data.
func NewResolver(countries *geography.Directory, schedule *tariff.Schedule) *Resolver {
	return &Resolver{countries: countries, schedule: schedule}
}

// Resolve computes the rule set for one stage.
// Returns a ValueIsInvalidError for an unknown stage name.
func (r *Resolver) Resolve(stage Stage, form FormData) (CardRuleSet, error) {
	switch stage {
	case StageSender:
		return r.resolveSender(form), nil
	case StageReceiver:
		return r.resolveReceiver(form), nil
	case StagePackage:
		return r.resolvePackage(form), nil
	case StageService:
		return r.resolveService(form), nil
	case StageOptions:
		return r.resolveOptions(form), nil
	default:
		return CardRuleSet{}, errs.NewValueIsInvalidErrorWithCause(
			"stage",
			fmt.Errorf("%q is not a known form stage", stage),
		)
	}
}

// ResolveAll computes the rule sets for all five stages in pipeline order.
func (r *Resolver) ResolveAll(form FormData) []CardRuleSet {
	return r.ResolveFrom(StageSender, form)
}

// ResolveFrom recomputes rule sets from the given stage onward. Callers that
// know which stage's dependencies changed can skip the unaffected prefix;
// earlier stages keep their previously resolved rules by construction, since
// resolution is pure.
func (r *Resolver) ResolveFrom(stage Stage, form FormData) []CardRuleSet {
	stages := Stages()
	start := 0
	for i, s := range stages {
		if s == stage {
			start = i
			break
		}
	}

	sets := make([]CardRuleSet, 0, len(stages)-start)
	for _, s := range stages[start:] {
		set, err := r.Resolve(s, form)
		if err != nil {
			// Stages() only yields known names.
			continue
		}
		sets = append(sets, set)
	}
	return sets
}

// StageComplete reports whether the stage's required fields all hold
// non-empty values and no cross-field error is present. A stage being
// complete is what unlocks the next stage of the pipeline.
func (r *Resolver) StageComplete(stage Stage, form FormData) bool {
	set, err := r.Resolve(stage, form)
	if err != nil {
		return false
	}
	if set.HasErrors() {
		return false
	}

	for name, rule := range set.Fields {
		if rule.Required && rule.Visible && form.Value(name) == "" {
			return false
		}
	}
	return true
}

func (r *Resolver) countryOptions() []Option {
	countries := r.countries.Countries()
	options := make([]Option, len(countries))
	for i, c := range countries {
		options[i] = Option{Value: c.Name, Label: c.Name}
	}
	return options
}

// resolveSender builds the sender stage rules. Street address is required
// only when the sender country is a Gulf country.
func (r *Resolver) resolveSender(form FormData) CardRuleSet {
	isGulf := r.countries.IsGulf(form.SenderCountry)

	return CardRuleSet{
		Stage: StageSender,
		Fields: map[string]FieldRule{
			"senderName": {
				Type: FieldText, Label: "Sender name", Required: true, Visible: true,
				Validation: &Validation{MinLength: intPtr(2), MaxLength: intPtr(100)},
			},
			"senderPhone": {
				Type: FieldText, Label: "Sender phone", Required: true, Visible: true,
				Validation: &Validation{MinLength: intPtr(10), ErrorMessage: "Phone number must have at least 10 digits"},
			},
			"senderCountry": {
				Type: FieldSelect, Label: "Sender country", Required: true, Visible: true,
				Options: r.countryOptions(),
			},
			"senderCity": {
				Type: FieldText, Label: "Sender city", Required: true, Visible: true,
				Validation: &Validation{MinLength: intPtr(2)},
			},
			"senderStreet": {
				Type: FieldText, Label: "Sender street", Required: isGulf, Visible: true,
				Validation: &Validation{ErrorMessage: "Street address is required for Gulf countries"},
			},
			"senderPostalCode": {
				Type: FieldText, Label: "Sender postal code", Required: true, Visible: true,
				Validation: &Validation{MinLength: intPtr(3), MaxLength: intPtr(10)},
			},
		},
	}
}

// resolveReceiver builds the receiver stage rules. In addition to the Gulf
// street rule it raises the hard cross-field block for the Gulf ->
// restricted destination route.
func (r *Resolver) resolveReceiver(form FormData) CardRuleSet {
	isReceiverGulf := r.countries.IsGulf(form.ReceiverCountry)

	crossFieldErrors := map[string]string{}
	if r.countries.IsGulf(form.SenderCountry) && form.ReceiverCountry == RestrictedDestination {
		crossFieldErrors["receiverCountry"] = RestrictedRouteMessage
	}

	return CardRuleSet{
		Stage: StageReceiver,
		Fields: map[string]FieldRule{
			"receiverName": {
				Type: FieldText, Label: "Receiver name", Required: true, Visible: true,
				Validation: &Validation{MinLength: intPtr(2), MaxLength: intPtr(100)},
			},
			"receiverPhone": {
				Type: FieldText, Label: "Receiver phone", Required: true, Visible: true,
				Validation: &Validation{MinLength: intPtr(10), ErrorMessage: "Phone number must have at least 10 digits"},
			},
			"receiverCountry": {
				Type: FieldSelect, Label: "Receiver country", Required: true, Visible: true,
				Options: r.countryOptions(),
			},
			"receiverCity": {
				Type: FieldText, Label: "Receiver city", Required: true, Visible: true,
				Validation: &Validation{MinLength: intPtr(2)},
			},
			"receiverStreet": {
				Type: FieldText, Label: "Receiver street", Required: isReceiverGulf, Visible: true,
				Validation: &Validation{ErrorMessage: "Street address is required for Gulf countries"},
			},
			"receiverPostalCode": {
				Type: FieldText, Label: "Receiver postal code", Required: true, Visible: true,
				Validation: &Validation{MinLength: intPtr(3), MaxLength: intPtr(10)},
			},
		},
		CrossFieldErrors: crossFieldErrors,
	}
}

// resolvePackage builds the package stage rules. The weight bound comes from
// the fee schedule's limits for the derived shipment type; item description
// becomes required when shipping from a non-Gulf into a Gulf country.
func (r *Resolver) resolvePackage(form FormData) CardRuleSet {
	shipmentType := r.countries.Classify(form.SenderCountry, form.ReceiverCountry)
	limits := r.schedule.PackageLimits(shipmentType)

	isSenderGulf := r.countries.IsGulf(form.SenderCountry)
	isReceiverGulf := r.countries.IsGulf(form.ReceiverCountry)
	needsDescription := !isSenderGulf && isReceiverGulf

	dimensionRule := func(label string) FieldRule {
		return FieldRule{
			Type: FieldNumber, Label: label, Required: true, Visible: true,
			Validation: &Validation{Min: floatPtr(0.1), Max: floatPtr(limits.MaxDimension)},
		}
	}

	return CardRuleSet{
		Stage: StagePackage,
		Fields: map[string]FieldRule{
			"weight": {
				Type: FieldNumber, Label: "Weight (kg)", Required: true, Visible: true,
				Validation: &Validation{
					Min: floatPtr(0.1),
					Max: floatPtr(limits.MaxWeight),
					ErrorMessage: fmt.Sprintf(
						"Weight must be between 0.1 and %g kg for %s shipments",
						limits.MaxWeight, shipmentType,
					),
				},
			},
			"length": dimensionRule("Length (cm)"),
			"width":  dimensionRule("Width (cm)"),
			"height": dimensionRule("Height (cm)"),
			"itemDescription": {
				Type: FieldText, Label: "Item description",
				Required: needsDescription, Visible: needsDescription,
				Validation: &Validation{
					MinLength:    intPtr(5),
					ErrorMessage: "Item description is required (minimum 5 characters) when shipping from non-Gulf to Gulf countries",
				},
			},
		},
	}
}

// resolveService builds the service stage rules: the candidate list is the
// derived shipment type's bucket, narrowed down to services that can carry
// the entered weight.
func (r *Resolver) resolveService(form FormData) CardRuleSet {
	shipmentType := r.countries.Classify(form.SenderCountry, form.ReceiverCountry)

	services := r.schedule.ServicesFor(shipmentType)
	if form.Weight != nil {
		available := make([]tariff.Service, 0, len(services))
		for _, svc := range services {
			if *form.Weight <= svc.MaxWeight {
				available = append(available, svc)
			}
		}
		services = available
	}

	options := make([]Option, len(services))
	for i, svc := range services {
		options[i] = Option{Value: svc.ID, Label: svc.Name}
	}

	return CardRuleSet{
		Stage: StageService,
		Fields: map[string]FieldRule{
			"serviceId": {
				Type: FieldSelect, Label: "Service", Required: true, Visible: true,
				Options: options,
			},
		},
		Services: services,
	}
}

// resolveOptions builds the options stage rules: the forced-signature rule
// for the designated destinations and the heavy-package pickup restriction
// with its sender exemption.
func (r *Resolver) resolveOptions(form FormData) CardRuleSet {
	forcedSignature := IsForcedSignatureDestination(form.ReceiverCountry)

	heavy := form.WeightOrZero() > HeavyPickupThresholdKg
	exempt := form.SenderCountry == HeavyPickupExemptSender

	pickup := FieldRule{
		Type: FieldRadio, Label: "Pickup method", Required: true, Visible: true,
		AllowedValues: []string{string(tariff.PickupHome), string(tariff.PickupPostalOffice)},
		DefaultValue:  string(tariff.PickupHome),
	}
	if heavy && !exempt {
		pickup.AllowedValues = []string{string(tariff.PickupPostalOffice)}
		pickup.DefaultValue = string(tariff.PickupPostalOffice)
	}

	return CardRuleSet{
		Stage: StageOptions,
		Fields: map[string]FieldRule{
			"signatureRequired": {
				Type: FieldCheckbox, Label: "Signature required", Visible: true,
				Checked:  forcedSignature || form.SignatureRequired,
				Disabled: forcedSignature,
			},
			"containsLiquid": {
				Type: FieldCheckbox, Label: "Contains liquid", Visible: true,
				Checked: form.ContainsLiquid,
			},
			"insurance": {
				Type: FieldCheckbox, Label: "Insurance", Visible: true,
				Checked: form.Insurance,
			},
			"packaging": {
				Type: FieldCheckbox, Label: "Professional packaging", Visible: true,
				Checked: form.Packaging,
			},
			"pickupMethod": pickup,
		},
	}
}
