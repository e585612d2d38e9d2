package commands_test

import (
	"testing"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRecordTrackingEventCommand(t *testing.T) {
	t.Run("should fail without a status", func(t *testing.T) {
		_, err := commands.NewRecordTrackingEventCommand(
			kernel.NewUUID(), "", "Riyadh Hub", "", time.Now(),
		)

		assert.ErrorIs(t, err, commands.ErrTrackingStatusIsRequired)
	})
}

func TestRecordTrackingEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	finalized := finalizedShipment(t, kernel.NewUUID())
	cmd, err := commands.NewRecordTrackingEventCommand(
		finalized.ID(), shipment.EventPickedUp, "Riyadh Hub",
		"Package picked up by courier", nowForTest(),
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, finalized.ID()).Return(finalized, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, finalized).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordTrackingEventCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, shipment.EventPickedUp, finalized.LatestTrackingStatus())
}

func TestRecordTrackingEventCommandHandler_Handle_DraftRejectsEvents(t *testing.T) {
	ctx := t.Context()
	draft := draftShipment(t, kernel.NewUUID(), completeForm())
	cmd, err := commands.NewRecordTrackingEventCommand(
		draft.ID(), shipment.EventPickedUp, "Riyadh Hub", "", nowForTest(),
	)
	require.NoError(t, err)

	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Get", mock.Anything, draft.ID()).Return(draft, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRecordTrackingEventCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
