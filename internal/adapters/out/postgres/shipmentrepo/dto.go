// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/model/tariff"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// The form content is stored flat; tracking events live in a child table keyed
// by shipment ID.
type ShipmentDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber string    `gorm:"uniqueIndex"`
	Status         int       `gorm:"index"`

	Sender   AddressDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver AddressDTO `gorm:"embedded;embeddedPrefix:receiver_"`

	Weight          float64
	Length          float64
	Width           float64
	Height          float64
	ItemDescription string

	ServiceID    string
	ShipmentType int
	PickupMethod string

	Signature bool
	Liquid    bool
	Insurance bool
	Packaging bool

	BaseCost      float64
	SignatureCost float64
	InsuranceCost float64
	PackagingCost float64
	LiquidCost    float64
	TotalPrice    float64

	EstimatedDelivery *time.Time

	TrackingEvents []TrackingEventDTO `gorm:"foreignKey:ShipmentID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for shipment entities.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO represents an embedded address within the shipment table.
type AddressDTO struct {
	Name       string
	Phone      string
	Country    string
	City       string
	Street     string
	PostalCode string
}

// TrackingEventDTO represents one row of a shipment's tracking history.
type TrackingEventDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	ShipmentID  uuid.UUID `gorm:"type:uuid;index"`
	Status      string
	Location    string
	Description string
	Timestamp   time.Time
}

// TableName specifies the database table name for tracking events.
func (TrackingEventDTO) TableName() string {
	return "tracking_events"
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	details := aggregate.Details()
	rate := aggregate.Rate()
	shipmentID := aggregate.ID().Bytes()

	events := make([]TrackingEventDTO, 0, len(aggregate.TrackingEvents()))
	for _, e := range aggregate.TrackingEvents() {
		events = append(events, TrackingEventDTO{
			ShipmentID:  shipmentID,
			Status:      e.Status,
			Location:    e.Location,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}

	return ShipmentDTO{
		ID:              shipmentID,
		OwnerID:         aggregate.OwnerID().Bytes(),
		TrackingNumber:  aggregate.TrackingNumber(),
		Status:          int(aggregate.Status()),
		Sender:          addressFromDomain(details.Sender),
		Receiver:        addressFromDomain(details.Receiver),
		Weight:          details.Package.Weight,
		Length:          details.Package.Length,
		Width:           details.Package.Width,
		Height:          details.Package.Height,
		ItemDescription: details.Package.Description,
		ServiceID:       details.Service.ServiceID,
		ShipmentType:    int(details.Service.ShipmentType),
		PickupMethod:    string(details.Service.PickupMethod),
		Signature:       details.Options.Signature,
		Liquid:          details.Options.Liquid,
		Insurance:       details.Options.Insurance,
		Packaging:       details.Options.Packaging,
		BaseCost:        rate.BaseCost(),
		SignatureCost:   rate.SignatureCost(),
		InsuranceCost:   rate.InsuranceCost(),
		PackagingCost:   rate.PackagingCost(),
		LiquidCost:      rate.LiquidCost(),
		TotalPrice:      rate.TotalPrice(),

		EstimatedDelivery: aggregate.EstimatedDelivery(),
		TrackingEvents:    events,
	}
}

func addressFromDomain(a shipment.Address) AddressDTO {
	return AddressDTO{
		Name:       a.Name,
		Phone:      a.Phone,
		Country:    a.Country,
		City:       a.City,
		Street:     a.Street,
		PostalCode: a.PostalCode,
	}
}

func addressToDomain(a AddressDTO) shipment.Address {
	return shipment.Address{
		Name:       a.Name,
		Phone:      a.Phone,
		Country:    a.Country,
		City:       a.City,
		Street:     a.Street,
		PostalCode: a.PostalCode,
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including rate breakdown and tracking
// history using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	rate, err := shipment.NewRateBreakdown(
		dto.BaseCost, dto.SignatureCost, dto.InsuranceCost, dto.PackagingCost, dto.LiquidCost,
	)
	if err != nil {
		return nil, err
	}

	details := shipment.Details{
		Sender:   addressToDomain(dto.Sender),
		Receiver: addressToDomain(dto.Receiver),
		Package: shipment.Package{
			Weight:      dto.Weight,
			Length:      dto.Length,
			Width:       dto.Width,
			Height:      dto.Height,
			Description: dto.ItemDescription,
		},
		Service: shipment.ServiceSelection{
			ServiceID:    dto.ServiceID,
			ShipmentType: geography.ShipmentType(dto.ShipmentType),
			PickupMethod: tariff.PickupMethod(dto.PickupMethod),
		},
		Options: shipment.Options{
			Signature: dto.Signature,
			Liquid:    dto.Liquid,
			Insurance: dto.Insurance,
			Packaging: dto.Packaging,
		},
	}

	events := make([]shipment.TrackingEvent, 0, len(dto.TrackingEvents))
	for _, e := range dto.TrackingEvents {
		events = append(events, shipment.TrackingEvent{
			Status:      e.Status,
			Location:    e.Location,
			Description: e.Description,
			Timestamp:   e.Timestamp,
		})
	}

	return shipment.RestoreShipment(
		id,
		ownerID,
		dto.TrackingNumber,
		shipment.Status(dto.Status),
		details,
		rate,
		dto.EstimatedDelivery,
		events,
	)
}
