package queries

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListShipmentsQueryHandler retrieves shipment summaries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewListShipmentsQueryHandler creates a handler for listing queries.
// Requires a GORM database connection for query execution.
func NewListShipmentsQueryHandler(db *gorm.DB) ListShipmentsQueryHandler {
	return ListShipmentsQueryHandler{db: db}
}

type shipmentSummaryRow struct {
	ID                uuid.UUID
	TrackingNumber    string
	Status            int
	SenderCountry     string
	ReceiverCountry   string
	ReceiverName      string
	Weight            float64
	ServiceID         string
	ShipmentType      int
	TotalPrice        float64
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
}

// Handle executes the listing query. Results are always scoped to the
// requesting account; filters narrow them further.
func (h ListShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListShipmentsQuery,
) ([]ListShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).
		Table("shipments").
		Select(`id, tracking_number, status, sender_country, receiver_country,
			receiver_name, weight, service_id, shipment_type, total_price,
			estimated_delivery, created_at`).
		Where("owner_id = ?", query.OwnerID().Bytes())

	if status := query.Status(); status != nil {
		db = db.Where("status = ?", int(*status))
	}
	if shipmentType := query.ShipmentType(); shipmentType != nil {
		db = db.Where("shipment_type = ?", int(*shipmentType))
	}

	// sortBy is restricted to a known set by the query constructor
	column := map[string]string{
		SortByCreatedAt:  "created_at",
		SortByTotalPrice: "total_price",
	}[query.SortBy()]
	direction := "ASC"
	if query.Descending() {
		direction = "DESC"
	}
	db = db.Order(column + " " + direction).
		Offset((query.Page() - 1) * query.PageSize()).
		Limit(query.PageSize())

	var rows []shipmentSummaryRow
	if err := db.Scan(&rows).Error; err != nil {
		return nil, err
	}

	responses := make([]ListShipmentsQueryResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}

		responses = append(responses, ListShipmentsQueryResponse{
			ID:                id,
			TrackingNumber:    row.TrackingNumber,
			Status:            shipment.Status(row.Status).String(),
			SenderCountry:     row.SenderCountry,
			ReceiverCountry:   row.ReceiverCountry,
			ReceiverName:      row.ReceiverName,
			Weight:            row.Weight,
			ServiceID:         row.ServiceID,
			ShipmentType:      geography.ShipmentType(row.ShipmentType).String(),
			TotalPrice:        row.TotalPrice,
			EstimatedDelivery: row.EstimatedDelivery,
			CreatedAt:         row.CreatedAt,
		})
	}

	return responses, nil
}
