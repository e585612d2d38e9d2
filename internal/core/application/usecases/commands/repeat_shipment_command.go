package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrRepeatShipmentCommandIsNotConstructed = errors.New(
	"RepeatShipmentCommand must be created via NewRepeatShipmentCommand constructor",
)

// RepeatShipmentCommand represents a request to open a new draft seeded
// from an existing shipment's field values. Works for finalized sources;
// the new draft gets its own identity, tracking number and price estimate.
type RepeatShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	sourceID   kernel.UUID
	ownerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewRepeatShipmentCommand creates a command to repeat a shipment.
func NewRepeatShipmentCommand(
	shipmentID kernel.UUID,
	sourceID kernel.UUID,
	ownerID kernel.UUID,
) (RepeatShipmentCommand, error) {
	cmd := RepeatShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setSourceID(sourceID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return RepeatShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RepeatShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRepeatShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new draft.
func (c RepeatShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// SourceID returns the identifier of the shipment being repeated.
func (c RepeatShipmentCommand) SourceID() kernel.UUID {
	return c.sourceID
}

// OwnerID returns the identifier of the requesting account.
func (c RepeatShipmentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *RepeatShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RepeatShipmentCommand) setSourceID(sourceID kernel.UUID) error {
	if err := sourceID.Validate(); err != nil {
		return err
	}

	c.sourceID = sourceID
	return nil
}

func (c *RepeatShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
