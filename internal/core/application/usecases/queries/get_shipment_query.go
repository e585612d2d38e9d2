// Package queries contains read-only operations over the shipment store.
// Query handlers read the database directly through GORM instead of going
// through the aggregate repositories, keeping reads cheap in the CQRS split.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery retrieves one shipment with its full structured view:
// addresses, package, selections, price breakdown and tracking history.
// Scoped to the requesting account; foreign shipments read as not found.
type GetShipmentQuery struct {
	shipmentID kernel.UUID
	ownerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentQuery creates a query for one shipment.
func NewGetShipmentQuery(shipmentID kernel.UUID, ownerID kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}
	if err := ownerID.Validate(); err != nil {
		return GetShipmentQuery{}, err
	}

	return GetShipmentQuery{
		shipmentID: shipmentID,
		ownerID:    ownerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the requested shipment.
func (q GetShipmentQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

// OwnerID returns the identifier of the requesting account.
func (q GetShipmentQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// AddressResponse is the read model for one address block.
type AddressResponse struct {
	Name       string
	Phone      string
	Country    string
	City       string
	Street     string
	PostalCode string
}

// RateResponse is the read model for the stored price breakdown.
type RateResponse struct {
	BaseCost      float64
	SignatureCost float64
	InsuranceCost float64
	PackagingCost float64
	LiquidCost    float64
	TotalPrice    float64
}

// TrackingEventResponse is the read model for one tracking history row.
type TrackingEventResponse struct {
	Status      string
	Location    string
	Description string
	Timestamp   time.Time
}

// GetShipmentQueryResponse is the full structured view of one shipment.
type GetShipmentQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         string

	Sender   AddressResponse
	Receiver AddressResponse

	Weight          float64
	Length          float64
	Width           float64
	Height          float64
	ItemDescription string

	ServiceID    string
	ShipmentType string
	PickupMethod string

	Signature bool
	Liquid    bool
	Insurance bool
	Packaging bool

	Rate              RateResponse
	EstimatedDelivery *time.Time
	TrackingEvents    []TrackingEventResponse

	CreatedAt time.Time
	UpdatedAt time.Time
}
