package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents a request to remove a shipment. Both
// drafts (discarding unfinished forms) and finalized shipments
// (cancellation) may be deleted by their owner.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	ownerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to delete a shipment.
func NewDeleteShipmentCommand(shipmentID kernel.UUID, ownerID kernel.UUID) (DeleteShipmentCommand, error) {
	cmd := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to delete.
func (c DeleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OwnerID returns the identifier of the requesting account.
func (c DeleteShipmentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *DeleteShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *DeleteShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
