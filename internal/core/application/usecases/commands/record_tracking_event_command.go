package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var (
	ErrRecordTrackingEventCommandIsNotConstructed = errors.New(
		"RecordTrackingEventCommand must be created via NewRecordTrackingEventCommand constructor",
	)
	ErrTrackingStatusIsRequired = errors.New("tracking status is required")
)

// RecordTrackingEventCommand represents a request to append a transit event
// to a finalized shipment. Issued by the tracking progression job, not by
// account holders, so it carries no owner.
type RecordTrackingEventCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	event      shipment.TrackingEvent

	guard guard.ConstructorGuard
}

// NewRecordTrackingEventCommand creates a command to record a transit event.
func NewRecordTrackingEventCommand(
	shipmentID kernel.UUID,
	status string,
	location string,
	description string,
	timestamp time.Time,
) (RecordTrackingEventCommand, error) {
	cmd := RecordTrackingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setEvent(status, location, description, timestamp),
	); err != nil {
		return RecordTrackingEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrRecordTrackingEventCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to record against.
func (c RecordTrackingEventCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Event returns the transit event to append.
func (c RecordTrackingEventCommand) Event() shipment.TrackingEvent {
	return c.event
}

func (c *RecordTrackingEventCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RecordTrackingEventCommand) setEvent(status, location, description string, timestamp time.Time) error {
	if status == "" {
		return ErrTrackingStatusIsRequired
	}

	c.event = shipment.TrackingEvent{
		Status:      status,
		Location:    location,
		Description: description,
		Timestamp:   timestamp,
	}
	return nil
}
