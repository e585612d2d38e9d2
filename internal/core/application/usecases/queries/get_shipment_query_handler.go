package queries

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentQueryHandler retrieves one shipment's full view from the database.
//
// Example:
//
//	handler := NewGetShipmentQueryHandler(db)
//	query, _ := NewGetShipmentQuery(shipmentID, accountID)
//
//	view, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Shipment %s is %s\n", view.TrackingNumber, view.Status)
type GetShipmentQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentQueryHandler creates a handler for single-shipment queries.
// Requires a GORM database connection for query execution.
func NewGetShipmentQueryHandler(db *gorm.DB) GetShipmentQueryHandler {
	return GetShipmentQueryHandler{db: db}
}

// shipmentRow mirrors the shipments table for read scans.
type shipmentRow struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	TrackingNumber string
	Status         int

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
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Handle executes the query. Returns ObjectNotFoundError when the shipment
// does not exist or belongs to another account.
func (h GetShipmentQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentQuery,
) (GetShipmentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var row shipmentRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT *
		FROM shipments
		WHERE id = ? AND owner_id = ?
	`, query.ShipmentID().Bytes(), query.OwnerID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetShipmentQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetShipmentQueryResponse{}, errs.NewObjectNotFoundError("shipment", query.ShipmentID().String())
	}

	response, err := rowToResponse(row)
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	var events []TrackingEventResponse
	err = h.db.WithContext(ctx).Raw(`
		SELECT status, location, description, timestamp
		FROM tracking_events
		WHERE shipment_id = ?
		ORDER BY timestamp, id
	`, row.ID).Scan(&events).Error
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}
	response.TrackingEvents = events

	return response, nil
}

func rowToResponse(row shipmentRow) (GetShipmentQueryResponse, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return GetShipmentQueryResponse{}, err
	}

	return GetShipmentQueryResponse{
		ID:             id,
		TrackingNumber: row.TrackingNumber,
		Status:         shipment.Status(row.Status).String(),
		Sender: AddressResponse{
			Name: row.SenderName, Phone: row.SenderPhone, Country: row.SenderCountry,
			City: row.SenderCity, Street: row.SenderStreet, PostalCode: row.SenderPostalCode,
		},
		Receiver: AddressResponse{
			Name: row.ReceiverName, Phone: row.ReceiverPhone, Country: row.ReceiverCountry,
			City: row.ReceiverCity, Street: row.ReceiverStreet, PostalCode: row.ReceiverPostalCode,
		},
		Weight:          row.Weight,
		Length:          row.Length,
		Width:           row.Width,
		Height:          row.Height,
		ItemDescription: row.ItemDescription,
		ServiceID:       row.ServiceID,
		ShipmentType:    geography.ShipmentType(row.ShipmentType).String(),
		PickupMethod:    row.PickupMethod,
		Signature:       row.Signature,
		Liquid:          row.Liquid,
		Insurance:       row.Insurance,
		Packaging:       row.Packaging,
		Rate: RateResponse{
			BaseCost:      row.BaseCost,
			SignatureCost: row.SignatureCost,
			InsuranceCost: row.InsuranceCost,
			PackagingCost: row.PackagingCost,
			LiquidCost:    row.LiquidCost,
			TotalPrice:    row.TotalPrice,
		},
		EstimatedDelivery: row.EstimatedDelivery,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}, nil
}
