package http

import (
	"errors"
	"net/http"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services/rates"
	"shipping/internal/core/domain/services/stagerules"
	"shipping/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// AccountIDHeader carries the identity of the calling account. The gateway
// in front of this service authenticates the caller and injects the header.
const AccountIDHeader = "X-Account-ID"

// Server handles HTTP requests for the shipment form application.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDraftHandler commands.CreateDraftShipmentCommandHandler
	updateDraftHandler commands.UpdateDraftShipmentCommandHandler
	deleteHandler      commands.DeleteShipmentCommandHandler
	finalizeHandler    commands.FinalizeShipmentCommandHandler
	repeatHandler      commands.RepeatShipmentCommandHandler

	// Query handlers
	getShipmentHandler   queries.GetShipmentQueryHandler
	listShipmentsHandler queries.ListShipmentsQueryHandler

	// Stateless domain services
	resolver   *stagerules.Resolver
	calculator *rates.Calculator
}

// NewServer creates a new HTTP server with the required handlers and
// domain services.
func NewServer(
	createDraftHandler commands.CreateDraftShipmentCommandHandler,
	updateDraftHandler commands.UpdateDraftShipmentCommandHandler,
	deleteHandler commands.DeleteShipmentCommandHandler,
	finalizeHandler commands.FinalizeShipmentCommandHandler,
	repeatHandler commands.RepeatShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	resolver *stagerules.Resolver,
	calculator *rates.Calculator,
) *Server {
	return &Server{
		createDraftHandler:   createDraftHandler,
		updateDraftHandler:   updateDraftHandler,
		deleteHandler:        deleteHandler,
		finalizeHandler:      finalizeHandler,
		repeatHandler:        repeatHandler,
		getShipmentHandler:   getShipmentHandler,
		listShipmentsHandler: listShipmentsHandler,
		resolver:             resolver,
		calculator:           calculator,
	}
}

// RegisterRoutes mounts every endpoint on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/rules/:stage", s.ResolveStageRules)
	api.POST("/rates", s.CalculateRate)

	api.POST("/shipments", s.CreateDraftShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.PUT("/shipments/:id", s.UpdateDraftShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)
	api.POST("/shipments/:id/finalize", s.FinalizeShipment)
	api.POST("/shipments/:id/repeat", s.RepeatShipment)
}

// ResolveStageRules handles POST /api/v1/rules/:stage - resolves the field
// rules for one stage against the submitted form data.
func (s *Server) ResolveStageRules(ctx echo.Context) error {
	var request RulesRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	stage := stagerules.Stage(ctx.Param("stage"))
	form := request.FormData.toDomain()

	ruleSet, err := s.resolver.Resolve(stage, form)
	if err != nil {
		return badRequest(ctx, "Unknown stage: "+ctx.Param("stage"))
	}

	isComplete := s.resolver.StageComplete(stage, form)
	return ctx.JSON(http.StatusOK, ruleSetToResponse(ruleSet, isComplete))
}

// CalculateRate handles POST /api/v1/rates - returns a live quote for the
// selected service and options. The quote is advisory; the finalize
// operation recalculates the price server-side.
func (s *Server) CalculateRate(ctx echo.Context) error {
	var request RateRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	result, err := s.calculator.Calculate(request.toInput())
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrServiceNotFound):
			return writeStatus(ctx, http.StatusNotFound, "Unknown service: "+request.ServiceID)
		case errors.Is(err, rates.ErrWeightExceedsService):
			return writeStatus(ctx, http.StatusUnprocessableEntity, "Weight exceeds the selected service limit")
		default:
			return badRequest(ctx, "Invalid rate input: "+err.Error())
		}
	}

	breakdown := result.Breakdown
	return ctx.JSON(http.StatusOK, RateResponse{
		Breakdown: RateBreakdownView{
			BaseCost:      breakdown.BaseCost(),
			SignatureCost: breakdown.SignatureCost(),
			InsuranceCost: breakdown.InsuranceCost(),
			PackagingCost: breakdown.PackagingCost(),
			LiquidCost:    breakdown.LiquidCost(),
		},
		TotalPrice: breakdown.TotalPrice(),
	})
}

// CreateDraftShipment handles POST /api/v1/shipments - opens a new draft
// from whatever form data the caller has entered so far.
func (s *Server) CreateDraftShipment(ctx echo.Context) error {
	ownerID, err := accountID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var request FormDataRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateDraftShipmentCommand(shipmentID, ownerID, request.toDomain())
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.createDraftHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: shipmentID.String()})
}

// UpdateDraftShipment handles PUT /api/v1/shipments/:id - saves draft
// progress.
func (s *Server) UpdateDraftShipment(ctx echo.Context) error {
	ownerID, err := accountID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	var request FormDataRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateDraftShipmentCommand(shipmentID, ownerID, request.toDomain())
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.updateDraftHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	ownerID, err := accountID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID, ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.deleteHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinalizeShipment handles POST /api/v1/shipments/:id/finalize - validates
// the complete form, prices it and places the order.
func (s *Server) FinalizeShipment(ctx echo.Context) error {
	ownerID, err := accountID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	cmd, err := commands.NewFinalizeShipmentCommand(shipmentID, ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.finalizeHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RepeatShipment handles POST /api/v1/shipments/:id/repeat - opens a new
// draft pre-filled from an earlier shipment.
func (s *Server) RepeatShipment(ctx echo.Context) error {
	ownerID, err := accountID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	sourceID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	newID := kernel.NewUUID()
	cmd, err := commands.NewRepeatShipmentCommand(newID, sourceID, ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.repeatHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: newID.String()})
}

// GetShipment handles GET /api/v1/shipments/:id - full shipment view
// including the rate breakdown and tracking history.
func (s *Server) GetShipment(ctx echo.Context) error {
	ownerID, err := accountID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	query, err := queries.NewGetShipmentQuery(shipmentID, ownerID)
	if err != nil {
		return badRequest(ctx, "Invalid shipment id")
	}

	view, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentViewFromQuery(view))
}

// ListShipments handles GET /api/v1/shipments - the account's shipment
// list with optional status/type filters, sorting and paging.
func (s *Server) ListShipments(ctx echo.Context) error {
	ownerID, err := accountID(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	filter, err := listFilterFromQuery(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListShipmentsQuery(ownerID, filter)
	if err != nil {
		return badRequest(ctx, "Invalid filter: "+err.Error())
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summaryViewsFromQuery(shipments))
}

func accountID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(AccountIDHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(AccountIDHeader)
	}
	return kernel.UUIDFromString(raw)
}

func listFilterFromQuery(ctx echo.Context) (queries.ListShipmentsFilter, error) {
	filter := queries.ListShipmentsFilter{
		Status:       ctx.QueryParam("status"),
		ShipmentType: ctx.QueryParam("shipmentType"),
		SortBy:       ctx.QueryParam("sortBy"),
		Ascending:    ctx.QueryParam("order") == "asc",
	}

	var err error
	if filter.Page, err = intQueryParam(ctx, "page"); err != nil {
		return queries.ListShipmentsFilter{}, err
	}
	if filter.PageSize, err = intQueryParam(ctx, "pageSize"); err != nil {
		return queries.ListShipmentsFilter{}, err
	}
	return filter, nil
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	value := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, errs.NewValueIsInvalidError(name)
		}
		value = value*10 + int(r-'0')
	}
	return value, nil
}

// writeError maps application errors to HTTP responses. Ownership checks
// surface as not-found so shipment identifiers of other accounts are not
// probeable.
func writeError(ctx echo.Context, err error) error {
	var validationErr *commands.ValidationFailedError
	if errors.As(err, &validationErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: "Shipment validation failed",
			Errors:  validationErr.Errors,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeStatus(ctx, http.StatusNotFound, "Shipment not found")
	case errors.Is(err, shipment.ErrAlreadyFinalized):
		return writeStatus(ctx, http.StatusConflict, "Shipment is already finalized")
	case errors.Is(err, shipment.ErrShipmentNotEditable):
		return writeStatus(ctx, http.StatusConflict, "Finalized shipment cannot be edited")
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return badRequest(ctx, err.Error())
	default:
		return writeStatus(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return writeStatus(ctx, http.StatusBadRequest, message)
}

func unauthorized(ctx echo.Context) error {
	return writeStatus(ctx, http.StatusUnauthorized, "Missing or invalid "+AccountIDHeader+" header")
}

func writeStatus(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}
