package commands

import (
	"context"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services/rates"
	"shipping/internal/core/domain/services/stagerules"
)

// RepeatShipmentCommandHandler opens a new draft from an existing
// shipment's field values. The source is left untouched.
type RepeatShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	calculator *rates.Calculator
}

// NewRepeatShipmentCommandHandler creates a handler for repeating shipments.
func NewRepeatShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	calculator *rates.Calculator,
) RepeatShipmentCommandHandler {
	return RepeatShipmentCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the repeat command.
// Returns ObjectNotFoundError when the source does not exist or belongs to
// another account.
func (h *RepeatShipmentCommandHandler) Handle(ctx context.Context, cmd RepeatShipmentCommand) error {
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
	source, err := loadOwnedShipment(ctx, shipmentRepo, cmd.SourceID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	seed := source.SeedCopy()
	draft, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.OwnerID(),
		shipment.NewTrackingNumber(),
		seed,
		estimateRate(h.calculator, stagerules.FormDataFromDetails(seed)),
	)
	if err != nil {
		return err
	}

	if err := shipmentRepo.Add(ctx, draft); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
