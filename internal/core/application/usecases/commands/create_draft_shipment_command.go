package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services/stagerules"
	"shipping/internal/pkg/guard"
)

var ErrCreateDraftShipmentCommandIsNotConstructed = errors.New(
	"CreateDraftShipmentCommand must be created via NewCreateDraftShipmentCommand constructor",
)

// CreateDraftShipmentCommand represents a request to open a new draft
// shipment for an account. The form data may be arbitrarily incomplete;
// drafts exist precisely so partial progress can be saved.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateDraftShipmentCommand(shipmentID, accountID, form)
//	if err != nil {
//	    return fmt.Errorf("invalid draft data: %w", err)
//	}
//
//	handler := NewCreateDraftShipmentCommandHandler(uowFactory, calculator, validator, countries)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create draft: %w", err)
//	}
type CreateDraftShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	ownerID    kernel.UUID
	form       stagerules.FormData

	guard guard.ConstructorGuard
}

// NewCreateDraftShipmentCommand creates a command to open a new draft.
// Validates both identifiers; the form data is validated leniently by the
// handler.
func NewCreateDraftShipmentCommand(
	shipmentID kernel.UUID,
	ownerID kernel.UUID,
	form stagerules.FormData,
) (CreateDraftShipmentCommand, error) {
	cmd := CreateDraftShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return CreateDraftShipmentCommand{}, err
	}

	cmd.form = form
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDraftShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateDraftShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier for the new draft.
func (c CreateDraftShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OwnerID returns the identifier of the owning account.
func (c CreateDraftShipmentCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Form returns the submitted form data.
func (c CreateDraftShipmentCommand) Form() stagerules.FormData {
	return c.form
}

func (c *CreateDraftShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateDraftShipmentCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}
