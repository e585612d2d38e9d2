package commands

import (
	"context"

	"shipping/internal/core/domain/model/account"
	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services/rates"
	"shipping/internal/core/domain/services/stagerules"
	"shipping/internal/core/domain/services/validation"
)

// CreateDraftShipmentCommandHandler opens new draft shipments.
//
// Blank sender address fields are seeded from the account's saved sender
// profile, so a returning customer starts from their usual pickup address.
// The stored price is a fresh server-side estimate; whatever the client
// displayed is ignored.
type CreateDraftShipmentCommandHandler struct {
	uowFactory UoWFactory
	calculator *rates.Calculator
	validator  *validation.Validator
	countries  *geography.Directory
}

// NewCreateDraftShipmentCommandHandler creates a handler for draft creation.
func NewCreateDraftShipmentCommandHandler(
	uowFactory UoWFactory,
	calculator *rates.Calculator,
	validator *validation.Validator,
	countries *geography.Directory,
) CreateDraftShipmentCommandHandler {
	return CreateDraftShipmentCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		validator:  validator,
		countries:  countries,
	}
}

// Handle processes the draft creation command.
// Rejects only what cannot be stored (draft-level validation); persists the
// new draft with a generated tracking number.
func (h *CreateDraftShipmentCommandHandler) Handle(ctx context.Context, cmd CreateDraftShipmentCommand) error {
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

	owner, err := uow.AccountRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}
	form = seedSenderFromProfile(form, owner.SenderProfile())

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.OwnerID(),
		shipment.NewTrackingNumber(),
		form.Details(h.countries),
		estimateRate(h.calculator, form),
	)
	if err != nil {
		return err
	}

	if err := uow.ShipmentRepository().Add(ctx, newShipment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// seedSenderFromProfile fills blank sender fields from the account's saved
// profile. Fields the caller did enter always win.
func seedSenderFromProfile(form stagerules.FormData, profile account.SenderProfile) stagerules.FormData {
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&form.SenderName, profile.Name)
	fill(&form.SenderPhone, profile.Phone)
	fill(&form.SenderCountry, profile.Country)
	fill(&form.SenderCity, profile.City)
	fill(&form.SenderStreet, profile.Street)
	fill(&form.SenderPostalCode, profile.PostalCode)
	return form
}
