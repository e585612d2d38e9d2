package shipment

import (
	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/tariff"
)

// Address holds one party's address block (sender or receiver).
// Fields may be empty while the shipment is a draft; the shipment validator
// enforces presence and lengths at finalize time.
type Address struct {
	Name       string
	Phone      string
	Country    string
	City       string
	Street     string
	PostalCode string
}

// Package holds the physical package attributes. Zero values mean the field
// has not been entered yet.
type Package struct {
	Weight      float64
	Length      float64
	Width       float64
	Height      float64
	Description string
}

// ServiceSelection captures the chosen service together with the derived
// shipment type and the pickup method.
type ServiceSelection struct {
	ServiceID    string
	ShipmentType geography.ShipmentType
	PickupMethod tariff.PickupMethod
}

// Options holds the boolean add-ons.
type Options struct {
	Signature bool
	Liquid    bool
	Insurance bool
	Packaging bool
}

// Details groups every content field of a shipment. Drafts carry partially
// filled Details; finalize freezes them.
type Details struct {
	Sender   Address
	Receiver Address
	Package  Package
	Service  ServiceSelection
	Options  Options
}
