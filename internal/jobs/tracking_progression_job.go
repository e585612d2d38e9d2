package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/shipment"

	"github.com/robfig/cron/v3"
)

// TrackingProgressionJob manages the simulated transit of finalized
// shipments. Runs every minute and moves each undelivered shipment to its
// next tracking milestone.
type TrackingProgressionJob struct {
	uowFactory commands.ShipmentUoWFactory
	handler    commands.RecordTrackingEventCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTrackingProgressionJob creates a new job for advancing tracking
// milestones. Uses RecordTrackingEventCommandHandler to append each event.
func NewTrackingProgressionJob(
	uowFactory commands.ShipmentUoWFactory,
	handler commands.RecordTrackingEventCommandHandler,
	logger *slog.Logger,
) *TrackingProgressionJob {
	return &TrackingProgressionJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "tracking_progression_job"),
	}
}

// Start begins the tracking progression job to run every minute.
func (j *TrackingProgressionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		if err := j.advanceAll(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Tracking progression job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tracking progression job started (running every minute)")
	return nil
}

// Stop stops the tracking progression job.
func (j *TrackingProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tracking progression job stopped")
}

func (j *TrackingProgressionJob) advanceAll(ctx context.Context) error {
	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	finalized, err := uow.ShipmentRepository().GetAllFinalized(ctx)
	if err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, aggregate := range finalized {
		next, ok := shipment.NextTransitStatus(aggregate.LatestTrackingStatus())
		if !ok {
			// Delivered shipments have nothing left to advance.
			continue
		}

		cmd, cmdErr := commands.NewRecordTrackingEventCommand(
			aggregate.ID(),
			next,
			transitLocation(next, aggregate),
			transitDescription(next),
			now,
		)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build tracking event command",
				"shipmentID", aggregate.ID().String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Failed to record tracking event",
				"shipmentID", aggregate.ID().String(), "status", next, "error", handleErr)
		}
	}

	return nil
}

func transitLocation(status string, aggregate *shipment.Shipment) string {
	details := aggregate.Details()

	switch status {
	case shipment.EventPickedUp:
		return details.Sender.City
	case shipment.EventOutForDelivery, shipment.EventDelivered:
		return details.Receiver.City
	default:
		return fmt.Sprintf("%s - %s corridor", details.Sender.Country, details.Receiver.Country)
	}
}

func transitDescription(status string) string {
	switch status {
	case shipment.EventPickedUp:
		return "Package has been picked up from the sender"
	case shipment.EventInTransit:
		return "Package is on its way to the destination"
	case shipment.EventOutForDelivery:
		return "Package is out for delivery"
	case shipment.EventDelivered:
		return "Package has been delivered"
	default:
		return "Shipment status updated"
	}
}
