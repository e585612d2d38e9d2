package stagerules

import (
	"strconv"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tariff"
)

// FormData is the flat accumulation of everything the user has entered so
// far across all stages. String zero values and nil numeric pointers mean
// "not entered yet"; drafts may be arbitrarily incomplete.
type FormData struct {
	SenderName       string
	SenderPhone      string
	SenderCountry    string
	SenderCity       string
	SenderStreet     string
	SenderPostalCode string

	ReceiverName       string
	ReceiverPhone      string
	ReceiverCountry    string
	ReceiverCity       string
	ReceiverStreet     string
	ReceiverPostalCode string

	Weight *float64
	Length *float64
	Width  *float64
	Height *float64

	ItemDescription string

	ServiceID    string
	PickupMethod string

	SignatureRequired bool
	ContainsLiquid    bool
	Insurance         bool
	Packaging         bool
}

// HasCountries reports whether both countries are entered, which is the
// precondition for deriving the shipment type.
func (f FormData) HasCountries() bool {
	return f.SenderCountry != "" && f.ReceiverCountry != ""
}

// WeightOrZero returns the entered weight, or zero when absent.
func (f FormData) WeightOrZero() float64 {
	if f.Weight == nil {
		return 0
	}
	return *f.Weight
}

// Value returns the string form of the named field's current value, with ""
// meaning empty/unset. It powers the generic required-fields completion
// check over resolved rule sets.
func (f FormData) Value(field string) string {
	num := func(p *float64) string {
		if p == nil {
			return ""
		}
		return strconv.FormatFloat(*p, 'f', -1, 64)
	}
	boolVal := func(b bool) string {
		if b {
			return "true"
		}
		return ""
	}

	switch field {
	case "senderName":
		return f.SenderName
	case "senderPhone":
		return f.SenderPhone
	case "senderCountry":
		return f.SenderCountry
	case "senderCity":
		return f.SenderCity
	case "senderStreet":
		return f.SenderStreet
	case "senderPostalCode":
		return f.SenderPostalCode
	case "receiverName":
		return f.ReceiverName
	case "receiverPhone":
		return f.ReceiverPhone
	case "receiverCountry":
		return f.ReceiverCountry
	case "receiverCity":
		return f.ReceiverCity
	case "receiverStreet":
		return f.ReceiverStreet
	case "receiverPostalCode":
		return f.ReceiverPostalCode
	case "weight":
		return num(f.Weight)
	case "length":
		return num(f.Length)
	case "width":
		return num(f.Width)
	case "height":
		return num(f.Height)
	case "itemDescription":
		return f.ItemDescription
	case "serviceId":
		return f.ServiceID
	case "pickupMethod":
		return f.PickupMethod
	case "signatureRequired":
		return boolVal(f.SignatureRequired)
	case "containsLiquid":
		return boolVal(f.ContainsLiquid)
	case "insurance":
		return boolVal(f.Insurance)
	case "packaging":
		return boolVal(f.Packaging)
	default:
		return ""
	}
}

// FormDataFromDetails flattens a shipment's stored content fields back into
// form data. Finalize uses this so complete validation and the rate
// recomputation run over the stored fields, never over caller input.
func FormDataFromDetails(d shipment.Details) FormData {
	form := FormData{
		SenderName:         d.Sender.Name,
		SenderPhone:        d.Sender.Phone,
		SenderCountry:      d.Sender.Country,
		SenderCity:         d.Sender.City,
		SenderStreet:       d.Sender.Street,
		SenderPostalCode:   d.Sender.PostalCode,
		ReceiverName:       d.Receiver.Name,
		ReceiverPhone:      d.Receiver.Phone,
		ReceiverCountry:    d.Receiver.Country,
		ReceiverCity:       d.Receiver.City,
		ReceiverStreet:     d.Receiver.Street,
		ReceiverPostalCode: d.Receiver.PostalCode,
		ItemDescription:    d.Package.Description,
		ServiceID:          d.Service.ServiceID,
		PickupMethod:       string(d.Service.PickupMethod),
		SignatureRequired:  d.Options.Signature,
		ContainsLiquid:     d.Options.Liquid,
		Insurance:          d.Options.Insurance,
		Packaging:          d.Options.Packaging,
	}

	setIfPositive := func(dst **float64, v float64) {
		if v > 0 {
			val := v
			*dst = &val
		}
	}
	setIfPositive(&form.Weight, d.Package.Weight)
	setIfPositive(&form.Length, d.Package.Length)
	setIfPositive(&form.Width, d.Package.Width)
	setIfPositive(&form.Height, d.Package.Height)

	return form
}

// Details converts form data into the aggregate's content fields, deriving
// the shipment type from the country pair.
func (f FormData) Details(countries *geography.Directory) shipment.Details {
	shipmentType := geography.UnknownShipmentType
	if f.HasCountries() {
		shipmentType = countries.Classify(f.SenderCountry, f.ReceiverCountry)
	}

	return shipment.Details{
		Sender: shipment.Address{
			Name:       f.SenderName,
			Phone:      f.SenderPhone,
			Country:    f.SenderCountry,
			City:       f.SenderCity,
			Street:     f.SenderStreet,
			PostalCode: f.SenderPostalCode,
		},
		Receiver: shipment.Address{
			Name:       f.ReceiverName,
			Phone:      f.ReceiverPhone,
			Country:    f.ReceiverCountry,
			City:       f.ReceiverCity,
			Street:     f.ReceiverStreet,
			PostalCode: f.ReceiverPostalCode,
		},
		Package: shipment.Package{
			Weight:      f.WeightOrZero(),
			Length:      valueOrZero(f.Length),
			Width:       valueOrZero(f.Width),
			Height:      valueOrZero(f.Height),
			Description: f.ItemDescription,
		},
		Service: shipment.ServiceSelection{
			ServiceID:    f.ServiceID,
			ShipmentType: shipmentType,
			PickupMethod: tariff.PickupMethod(f.PickupMethod),
		},
		Options: shipment.Options{
			Signature: f.SignatureRequired,
			Liquid:    f.ContainsLiquid,
			Insurance: f.Insurance,
			Packaging: f.Packaging,
		},
	}
}

func valueOrZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
