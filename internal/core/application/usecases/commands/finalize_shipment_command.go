package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrFinalizeShipmentCommandIsNotConstructed = errors.New(
	"FinalizeShipmentCommand must be created via NewFinalizeShipmentCommand constructor",
)

// FinalizeShipmentCommand represents a request to submit a draft as a
// binding shipment order.
//
// Example:
//
//	cmd, err := NewFinalizeShipmentCommand(shipmentID, accountID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewFinalizeShipmentCommandHandler(uowFactory, calculator, validator)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var validationErr *ValidationFailedError
//	    if errors.As(err, &validationErr) {
//	        // surface validationErr.Errors to the form, shipment stays a draft
//	    }
//	    return err
//	}
type FinalizeShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	ownerID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinalizeShipmentCommand creates a command to finalize a draft.
func NewFinalizeShipmentCommand(shipmentID kernel.UUID, ownerID kernel.UUID) (FinalizeShipmentCommand, error) {
	cmd := FinalizeShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return FinalizeShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeShipmentCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the draft to finalize.
func (c FinalizeShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OwnerID returns the identifier of the requesting account.
func (c FinalizeShipmentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *FinalizeShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *FinalizeShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
