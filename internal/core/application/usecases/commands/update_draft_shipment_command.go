package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services/stagerules"
	"shipping/internal/pkg/guard"
)

var ErrUpdateDraftShipmentCommandIsNotConstructed = errors.New(
	"UpdateDraftShipmentCommand must be created via NewUpdateDraftShipmentCommand constructor",
)

// UpdateDraftShipmentCommand represents a request to replace the content
// fields of an existing draft with the latest form state.
type UpdateDraftShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	ownerID    kernel.UUID
	form       stagerules.FormData

	guard guard.ConstructorGuard
}

// NewUpdateDraftShipmentCommand creates a command to save draft progress.
func NewUpdateDraftShipmentCommand(
	shipmentID kernel.UUID,
	ownerID kernel.UUID,
	form stagerules.FormData,
) (UpdateDraftShipmentCommand, error) {
	cmd := UpdateDraftShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return UpdateDraftShipmentCommand{}, err
	}

	cmd.form = form
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDraftShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDraftShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the draft to update.
func (c UpdateDraftShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OwnerID returns the identifier of the requesting account.
func (c UpdateDraftShipmentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Form returns the submitted form data.
func (c UpdateDraftShipmentCommand) Form() stagerules.FormData {
	return c.form
}

func (c *UpdateDraftShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateDraftShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
