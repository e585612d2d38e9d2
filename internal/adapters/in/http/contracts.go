package http

import (
	"time"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/core/domain/services/rates"
	"shipping/internal/core/domain/services/stagerules"
)

// Error is the uniform error payload.
type Error struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// FormDataRequest is the wire form of the accumulated shipment form.
// Absent numeric fields stay nil so drafts can be saved mid-stage.
type FormDataRequest struct {
	SenderName       string `json:"senderName"`
	SenderPhone      string `json:"senderPhone"`
	SenderCountry    string `json:"senderCountry"`
	SenderCity       string `json:"senderCity"`
	SenderStreet     string `json:"senderStreet"`
	SenderPostalCode string `json:"senderPostalCode"`

	ReceiverName       string `json:"receiverName"`
	ReceiverPhone      string `json:"receiverPhone"`
	ReceiverCountry    string `json:"receiverCountry"`
	ReceiverCity       string `json:"receiverCity"`
	ReceiverStreet     string `json:"receiverStreet"`
	ReceiverPostalCode string `json:"receiverPostalCode"`

	Weight *float64 `json:"weight,omitempty"`
	Length *float64 `json:"length,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	ItemDescription string `json:"itemDescription"`

	ServiceID    string `json:"serviceId"`
	PickupMethod string `json:"pickupMethod"`

	SignatureRequired bool `json:"signatureRequired"`
	ContainsLiquid    bool `json:"containsLiquid"`
	Insurance         bool `json:"insurance"`
	Packaging         bool `json:"packaging"`
}

func (r FormDataRequest) toDomain() stagerules.FormData {
	return stagerules.FormData{
		SenderName:         r.SenderName,
		SenderPhone:        r.SenderPhone,
		SenderCountry:      r.SenderCountry,
		SenderCity:         r.SenderCity,
		SenderStreet:       r.SenderStreet,
		SenderPostalCode:   r.SenderPostalCode,
		ReceiverName:       r.ReceiverName,
		ReceiverPhone:      r.ReceiverPhone,
		ReceiverCountry:    r.ReceiverCountry,
		ReceiverCity:       r.ReceiverCity,
		ReceiverStreet:     r.ReceiverStreet,
		ReceiverPostalCode: r.ReceiverPostalCode,
		Weight:             r.Weight,
		Length:             r.Length,
		Width:              r.Width,
		Height:             r.Height,
		ItemDescription:    r.ItemDescription,
		ServiceID:          r.ServiceID,
		PickupMethod:       r.PickupMethod,
		SignatureRequired:  r.SignatureRequired,
		ContainsLiquid:     r.ContainsLiquid,
		Insurance:          r.Insurance,
		Packaging:          r.Packaging,
	}
}

// RulesRequest is the body of the stage rule resolution endpoint.
type RulesRequest struct {
	FormData FormDataRequest `json:"formData"`
}

// ValidationRules is the wire form of a field's validation constraints.
type ValidationRules struct {
	MinLength    *int     `json:"minLength,omitempty"`
	MaxLength    *int     `json:"maxLength,omitempty"`
	Pattern      string   `json:"pattern,omitempty"`
	Min          *float64 `json:"min,omitempty"`
	Max          *float64 `json:"max,omitempty"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
}

// OptionItem is one entry of a select field's option list.
type OptionItem struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldRuleView is the wire form of one resolved field rule.
type FieldRuleView struct {
	Type          string           `json:"type"`
	Label         string           `json:"label"`
	Required      bool             `json:"required"`
	Visible       bool             `json:"visible"`
	Disabled      bool             `json:"disabled,omitempty"`
	Checked       bool             `json:"checked,omitempty"`
	Validation    *ValidationRules `json:"validation,omitempty"`
	Options       []OptionItem     `json:"options,omitempty"`
	AllowedValues []string         `json:"allowedValues,omitempty"`
	DefaultValue  string           `json:"defaultValue,omitempty"`
}

// ServiceView is the wire form of one candidate service.
type ServiceView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	MaxWeight    float64 `json:"maxWeight"`
	BasePrice    float64 `json:"basePrice"`
	PricePerKg   float64 `json:"pricePerKg"`
	DeliveryDays int     `json:"deliveryDays"`
}

// RulesResponse is the resolved rule set for one stage.
type RulesResponse struct {
	Stage            string                   `json:"stage"`
	Fields           map[string]FieldRuleView `json:"fields"`
	CrossFieldErrors map[string]string        `json:"crossFieldErrors,omitempty"`
	Services         []ServiceView            `json:"services,omitempty"`
	IsComplete       bool                     `json:"isComplete"`
}

func ruleSetToResponse(set stagerules.CardRuleSet, isComplete bool) RulesResponse {
	fields := make(map[string]FieldRuleView, len(set.Fields))
	for name, rule := range set.Fields {
		fields[name] = fieldRuleToView(rule)
	}

	return RulesResponse{
		Stage:            string(set.Stage),
		Fields:           fields,
		CrossFieldErrors: set.CrossFieldErrors,
		Services:         servicesToViews(set.Services),
		IsComplete:       isComplete,
	}
}

func fieldRuleToView(rule stagerules.FieldRule) FieldRuleView {
	view := FieldRuleView{
		Type:          string(rule.Type),
		Label:         rule.Label,
		Required:      rule.Required,
		Visible:       rule.Visible,
		Disabled:      rule.Disabled,
		Checked:       rule.Checked,
		AllowedValues: rule.AllowedValues,
		DefaultValue:  rule.DefaultValue,
	}

	if rule.Validation != nil {
		view.Validation = &ValidationRules{
			MinLength:    rule.Validation.MinLength,
			MaxLength:    rule.Validation.MaxLength,
			Pattern:      rule.Validation.Pattern,
			Min:          rule.Validation.Min,
			Max:          rule.Validation.Max,
			ErrorMessage: rule.Validation.ErrorMessage,
		}
	}

	options := make([]OptionItem, len(rule.Options))
	for i, o := range rule.Options {
		options[i] = OptionItem{Value: o.Value, Label: o.Label}
	}
	view.Options = options

	return view
}

func servicesToViews(services []tariff.Service) []ServiceView {
	views := make([]ServiceView, len(services))
	for i, svc := range services {
		views[i] = ServiceView{
			ID:           svc.ID,
			Name:         svc.Name,
			Description:  svc.Description,
			MaxWeight:    svc.MaxWeight,
			BasePrice:    svc.BasePrice,
			PricePerKg:   svc.PricePerKg,
			DeliveryDays: svc.DeliveryDays,
		}
	}
	return views
}

// RateRequest is the body of the live rate endpoint.
type RateRequest struct {
	ServiceID     string  `json:"serviceId"`
	Weight        float64 `json:"weight"`
	SenderCountry string  `json:"senderCountry"`
	PickupMethod  string  `json:"pickupMethod"`

	SignatureRequired bool `json:"signatureRequired"`
	ContainsLiquid    bool `json:"containsLiquid"`
	Insurance         bool `json:"insurance"`
	Packaging         bool `json:"packaging"`
}

func (r RateRequest) toInput() rates.Input {
	return rates.Input{
		ServiceID:     r.ServiceID,
		Weight:        r.Weight,
		SenderCountry: r.SenderCountry,
		PickupMethod:  tariff.PickupMethod(r.PickupMethod),
		Signature:     r.SignatureRequired,
		Liquid:        r.ContainsLiquid,
		Insurance:     r.Insurance,
		Packaging:     r.Packaging,
	}
}

// RateBreakdownView is the wire form of a priced decomposition.
type RateBreakdownView struct {
	BaseCost      float64 `json:"baseCost"`
	SignatureCost float64 `json:"signatureCost"`
	InsuranceCost float64 `json:"insuranceCost"`
	PackagingCost float64 `json:"packagingCost"`
	LiquidCost    float64 `json:"liquidCost"`
}

// RateResponse is the live rate quote.
type RateResponse struct {
	Breakdown  RateBreakdownView `json:"breakdown"`
	TotalPrice float64           `json:"totalPrice"`
}

// CreatedResponse reports the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// AddressView is the wire form of a stored address.
type AddressView struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Country    string `json:"country"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
}

// StoredRateView is the wire form of a shipment's stored price breakdown.
type StoredRateView struct {
	BaseCost      float64 `json:"baseCost"`
	SignatureCost float64 `json:"signatureCost"`
	InsuranceCost float64 `json:"insuranceCost"`
	PackagingCost float64 `json:"packagingCost"`
	LiquidCost    float64 `json:"liquidCost"`
	TotalPrice    float64 `json:"totalPrice"`
}

// TrackingEventView is the wire form of one tracking history row.
type TrackingEventView struct {
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// ShipmentView is the full wire form of one shipment.
type ShipmentView struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`

	Sender   AddressView `json:"sender"`
	Receiver AddressView `json:"receiver"`

	Weight          float64 `json:"weight"`
	Length          float64 `json:"length"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
	ItemDescription string  `json:"itemDescription,omitempty"`

	ServiceID    string `json:"serviceId"`
	ShipmentType string `json:"shipmentType"`
	PickupMethod string `json:"pickupMethod"`

	SignatureRequired bool `json:"signatureRequired"`
	ContainsLiquid    bool `json:"containsLiquid"`
	Insurance         bool `json:"insurance"`
	Packaging         bool `json:"packaging"`

	Rate              StoredRateView      `json:"rate"`
	EstimatedDelivery *time.Time          `json:"estimatedDelivery,omitempty"`
	TrackingEvents    []TrackingEventView `json:"trackingEvents"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShipmentSummaryView is the wire form of one shipment list row.
type ShipmentSummaryView struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
	Status         string `json:"status"`

	SenderCountry   string `json:"senderCountry"`
	ReceiverCountry string `json:"receiverCountry"`
	ReceiverName    string `json:"receiverName"`

	Weight       float64 `json:"weight"`
	ServiceID    string  `json:"serviceId"`
	ShipmentType string  `json:"shipmentType"`

	TotalPrice        float64    `json:"totalPrice"`
	EstimatedDelivery *time.Time `json:"estimatedDelivery,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func shipmentViewFromQuery(view queries.GetShipmentQueryResponse) ShipmentView {
	events := make([]TrackingEventView, len(view.TrackingEvents))
	for i, event := range view.TrackingEvents {
		events[i] = TrackingEventView{
			Status:      event.Status,
			Location:    event.Location,
			Description: event.Description,
			Timestamp:   event.Timestamp,
		}
	}

	return ShipmentView{
		ID:             view.ID.String(),
		TrackingNumber: view.TrackingNumber,
		Status:         view.Status,
		Sender:         addressViewFromQuery(view.Sender),
		Receiver:       addressViewFromQuery(view.Receiver),

		Weight:          view.Weight,
		Length:          view.Length,
		Width:           view.Width,
		Height:          view.Height,
		ItemDescription: view.ItemDescription,

		ServiceID:    view.ServiceID,
		ShipmentType: view.ShipmentType,
		PickupMethod: view.PickupMethod,

		SignatureRequired: view.Signature,
		ContainsLiquid:    view.Liquid,
		Insurance:         view.Insurance,
		Packaging:         view.Packaging,

		Rate: StoredRateView{
			BaseCost:      view.Rate.BaseCost,
			SignatureCost: view.Rate.SignatureCost,
			InsuranceCost: view.Rate.InsuranceCost,
			PackagingCost: view.Rate.PackagingCost,
			LiquidCost:    view.Rate.LiquidCost,
			TotalPrice:    view.Rate.TotalPrice,
		},
		EstimatedDelivery: view.EstimatedDelivery,
		TrackingEvents:    events,

		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func addressViewFromQuery(address queries.AddressResponse) AddressView {
	return AddressView{
		Name:       address.Name,
		Phone:      address.Phone,
		Country:    address.Country,
		City:       address.City,
		Street:     address.Street,
		PostalCode: address.PostalCode,
	}
}

func summaryViewsFromQuery(rows []queries.ListShipmentsQueryResponse) []ShipmentSummaryView {
	views := make([]ShipmentSummaryView, len(rows))
	for i, row := range rows {
		views[i] = ShipmentSummaryView{
			ID:             row.ID.String(),
			TrackingNumber: row.TrackingNumber,
			Status:         row.Status,

			SenderCountry:   row.SenderCountry,
			ReceiverCountry: row.ReceiverCountry,
			ReceiverName:    row.ReceiverName,

			Weight:       row.Weight,
			ServiceID:    row.ServiceID,
			ShipmentType: row.ShipmentType,

			TotalPrice:        row.TotalPrice,
			EstimatedDelivery: row.EstimatedDelivery,
			CreatedAt:         row.CreatedAt,
		}
	}
	return views
}
