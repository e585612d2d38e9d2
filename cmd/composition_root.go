package cmd

import (
	"fmt"
	"log/slog"

	httpadapter "shipping/internal/adapters/in/http"
	"shipping/internal/adapters/out/postgres"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/geography"
	"shipping/internal/core/domain/model/tariff"
	"shipping/internal/core/domain/services/rates"
	"shipping/internal/core/domain/services/stagerules"
	"shipping/internal/core/domain/services/validation"
	"shipping/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	countries *geography.Directory
	schedule  *tariff.Schedule

	resolver   *stagerules.Resolver
	calculator *rates.Calculator
	validator  *validation.Validator
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) (CompositionRoot, error) {
	countries, err := geography.LoadDirectory()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to load country directory: %w", err)
	}

	schedule, err := tariff.LoadSchedule()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to load tariff schedule: %w", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		countries:  countries,
		schedule:   schedule,
		resolver:   stagerules.NewResolver(countries, schedule),
		calculator: rates.NewCalculator(schedule),
		validator:  validation.NewValidator(countries, schedule),
	}, nil
}

func (c *CompositionRoot) CreateCreateDraftShipmentCommandHandler() commands.CreateDraftShipmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDraftShipmentCommandHandler(f, c.calculator, c.validator, c.countries)
}

func (c *CompositionRoot) CreateUpdateDraftShipmentCommandHandler() commands.UpdateDraftShipmentCommandHandler {
	return commands.NewUpdateDraftShipmentCommandHandler(
		c.shipmentUoWFactory(), c.calculator, c.validator, c.countries,
	)
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeShipmentCommandHandler() commands.FinalizeShipmentCommandHandler {
	return commands.NewFinalizeShipmentCommandHandler(c.shipmentUoWFactory(), c.calculator, c.validator)
}

func (c *CompositionRoot) CreateRepeatShipmentCommandHandler() commands.RepeatShipmentCommandHandler {
	return commands.NewRepeatShipmentCommandHandler(c.shipmentUoWFactory(), c.calculator)
}

func (c *CompositionRoot) CreateRecordTrackingEventCommandHandler() commands.RecordTrackingEventCommandHandler {
	return commands.NewRecordTrackingEventCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateDraftShipmentCommandHandler(),
		c.CreateUpdateDraftShipmentCommandHandler(),
		c.CreateDeleteShipmentCommandHandler(),
		c.CreateFinalizeShipmentCommandHandler(),
		c.CreateRepeatShipmentCommandHandler(),
		c.CreateGetShipmentQueryHandler(),
		c.CreateListShipmentsQueryHandler(),
		c.resolver,
		c.calculator,
	)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.shipmentUoWFactory(),
		c.CreateRecordTrackingEventCommandHandler(),
		logger,
	)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
