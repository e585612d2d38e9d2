package shipmentrepo

import (
	"context"
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment to the database. The tracking history is
// rewritten as a whole; events are few and append-only, so replacing the
// child rows keeps the mapping simple.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	events := dto.TrackingEvents
	dto.TrackingEvents = nil

	db := r.db.WithContext(ctx)
	result := db.Model(&ShipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at", "TrackingEvents").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := db.Where("shipment_id = ?", dto.ID).Delete(&TrackingEventDTO{}).Error; err != nil {
		return err
	}
	if len(events) > 0 {
		if err := db.Create(&events).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID, including its tracking history.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("TrackingEvents", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp, id") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a shipment and its tracking history.
func (r *GormShipmentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("shipment_id = ?", id.Bytes()).Delete(&TrackingEventDTO{}).Error; err != nil {
		return err
	}

	result := db.Delete(&ShipmentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("shipment", id.String())
	}

	return nil
}

// GetAllFinalized retrieves all finalized shipments with their tracking history.
func (r *GormShipmentRepository) GetAllFinalized(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Preload("TrackingEvents", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp, id") }).
		Find(&dtos, "status = ?", int(shipment.Finalized)).Error
	if err != nil {
		return nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
