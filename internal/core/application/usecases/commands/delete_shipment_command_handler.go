package commands

import (
	"context"
)

// DeleteShipmentCommandHandler removes shipments together with their
// tracking history.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Returns ObjectNotFoundError when the shipment does not exist or belongs to
// another account.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := loadOwnedShipment(ctx, shipmentRepo, cmd.ShipmentID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err := shipmentRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
