package commands

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services/rates"
	"shipping/internal/core/domain/services/stagerules"
	"shipping/internal/core/domain/services/validation"
)

// FinalizeShipmentCommandHandler performs the one-way draft -> finalized
// transition.
//
// Everything is derived from the shipment's stored fields, never from caller
// input: complete validation runs over them, and the binding price is a
// fresh calculator run over them. If the calculator fails, finalization
// fails; there is no fallback price. Status, price, delivery estimate and
// the initial tracking event are persisted in one transaction.
type FinalizeShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	calculator *rates.Calculator
	validator  *validation.Validator
}

// NewFinalizeShipmentCommandHandler creates a handler for finalization.
func NewFinalizeShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	calculator *rates.Calculator,
	validator *validation.Validator,
) FinalizeShipmentCommandHandler {
	return FinalizeShipmentCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		validator:  validator,
	}
}

// Handle processes the finalization command.
//
// Returns ObjectNotFoundError when the shipment does not exist or belongs to
// another account, shipment.ErrAlreadyFinalized when it is not a draft, and
// ValidationFailedError with the full violation map when the stored fields
// do not pass complete validation (the shipment stays a draft).
func (h *FinalizeShipmentCommandHandler) Handle(ctx context.Context, cmd FinalizeShipmentCommand) error {
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
	draft, err := loadOwnedShipment(ctx, shipmentRepo, cmd.ShipmentID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	// The status gate comes before validation: a shipment that is already
	// finalized reports that, never a validation error.
	if !draft.Status().IsDraft() {
		return shipment.ErrAlreadyFinalized
	}

	form := stagerules.FormDataFromDetails(draft.Details())
	if result := h.validator.ValidateComplete(form); !result.IsValid {
		return NewValidationFailedError(result.Errors)
	}

	priced, err := h.calculator.Calculate(rateInput(form))
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	estimatedDelivery := now.AddDate(0, 0, priced.Service.DeliveryDays)
	if err := draft.Finalize(priced.Breakdown, estimatedDelivery, now); err != nil {
		return err
	}

	if err := shipmentRepo.Update(ctx, draft); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
