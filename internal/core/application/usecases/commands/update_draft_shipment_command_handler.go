package commands

import (
	"context"

	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services/rates"
	"shipping/internal/core/domain/services/validation"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/errs"
)

// UpdateDraftShipmentCommandHandler saves draft progress. Only drafts are
// editable; the stored price estimate is recomputed from the new fields.
type UpdateDraftShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	calculator *rates.Calculator
	validator  *validation.Validator
	countries  *geography.Directory
}

// NewUpdateDraftShipmentCommandHandler creates a handler for draft updates.
func NewUpdateDraftShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	calculator *rates.Calculator,
	validator *validation.Validator,
	countries *geography.Directory,
) UpdateDraftShipmentCommandHandler {
	return UpdateDraftShipmentCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		validator:  validator,
		countries:  countries,
	}
}

// Handle processes the draft update command.
// Returns ObjectNotFoundError when the shipment does not exist or belongs to
// another account, and shipment.ErrShipmentNotEditable for finalized ones.
func (h *UpdateDraftShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateDraftShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	form := cmd.Form()
	if result := h.validator.ValidateDraft(form); !result.IsValid {
		return NewValidationFailedError(result.Errors)
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

	if err := draft.UpdateDetails(form.Details(h.countries), estimateRate(h.calculator, form)); err != nil {
		return err
	}

	if err := shipmentRepo.Update(ctx, draft); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// loadOwnedShipment fetches a shipment and enforces ownership. A foreign
// shipment is reported as not found, so the API never leaks that the
// identifier exists.
func loadOwnedShipment(
	ctx context.Context,
	repo ports.ShipmentRepository,
	id kernel.UUID,
	ownerID kernel.UUID,
) (*shipment.Shipment, error) {
	aggregate, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !aggregate.IsOwnedBy(ownerID) {
		return nil, errs.NewObjectNotFoundError("shipment", id)
	}
	return aggregate, nil
}
