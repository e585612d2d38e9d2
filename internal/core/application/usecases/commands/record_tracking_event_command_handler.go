package commands

import (
	"context"
)

// RecordTrackingEventCommandHandler appends transit events to finalized
// shipments on behalf of the tracking progression job.
type RecordTrackingEventCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewRecordTrackingEventCommandHandler creates a handler for recording events.
func NewRecordTrackingEventCommandHandler(uowFactory ShipmentUoWFactory) RecordTrackingEventCommandHandler {
	return RecordTrackingEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the record command. Drafts reject the append at the
// aggregate level.
func (h *RecordTrackingEventCommandHandler) Handle(ctx context.Context, cmd RecordTrackingEventCommand) error {
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
	aggregate, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err := aggregate.AppendTrackingEvent(cmd.Event()); err != nil {
		return err
	}

	if err := shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
