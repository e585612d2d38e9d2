package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Ownership checks happen in the use cases; the repository
// retrieves by identity only.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment including its tracking history.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// Delete removes a shipment and its tracking history from storage.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllFinalized retrieves all finalized shipments.
	// Used by the tracking progression job to advance transit milestones.
	GetAllFinalized(ctx context.Context) ([]*shipment.Shipment, error)
}
