package http

import (
	"context"
	"net/http"

	"exchange/internal/core/application/usecases/commands"
	"exchange/internal/core/application/usecases/queries"
	"exchange/internal/core/domain/model/audit"
	"exchange/internal/core/domain/model/exchange"
	"exchange/internal/core/domain/model/kernel"
	"exchange/internal/core/ports"
	"exchange/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the authenticated actor's identifier. Authentication
// itself happens upstream; this adapter trusts the header and only resolves
// capabilities through the identity provider.
const actorHeader = "X-Actor-ID"

// Server wires HTTP requests to the application's command and query handlers.
type Server struct {
	// Command handlers
	createBatchHandler      commands.CreateBatchCommandHandler
	requestExchangeHandler  commands.RequestExchangeCommandHandler
	acceptExchangeHandler   commands.AcceptExchangeCommandHandler
	rejectExchangeHandler   commands.RejectExchangeCommandHandler
	cancelExchangeHandler   commands.CancelExchangeCommandHandler
	completeExchangeHandler commands.CompleteExchangeCommandHandler
	submitRatingHandler     commands.SubmitRatingCommandHandler
	reportRatingHandler     commands.ReportRatingCommandHandler
	overrideStatusHandler   commands.OverrideStatusCommandHandler
	reactivateBatchHandler  commands.ReactivateBatchCommandHandler

	// Query handlers
	getAvailableBatchesHandler queries.GetAvailableBatchesQueryHandler
	getOrdersForActorHandler   queries.GetOrdersForActorQueryHandler
	getActorRatingHandler      queries.GetActorRatingQueryHandler
	getAuditTrailHandler       queries.GetAuditTrailQueryHandler

	identity ports.IdentityProvider
}

// NewServer creates the HTTP server with the required command and query
// handlers and the identity provider used to resolve actor capabilities.
func NewServer(
	createBatchHandler commands.CreateBatchCommandHandler,
	requestExchangeHandler commands.RequestExchangeCommandHandler,
	acceptExchangeHandler commands.AcceptExchangeCommandHandler,
	rejectExchangeHandler commands.RejectExchangeCommandHandler,
	cancelExchangeHandler commands.CancelExchangeCommandHandler,
	completeExchangeHandler commands.CompleteExchangeCommandHandler,
	submitRatingHandler commands.SubmitRatingCommandHandler,
	reportRatingHandler commands.ReportRatingCommandHandler,
	overrideStatusHandler commands.OverrideStatusCommandHandler,
	reactivateBatchHandler commands.ReactivateBatchCommandHandler,
	getAvailableBatchesHandler queries.GetAvailableBatchesQueryHandler,
	getOrdersForActorHandler queries.GetOrdersForActorQueryHandler,
	getActorRatingHandler queries.GetActorRatingQueryHandler,
	getAuditTrailHandler queries.GetAuditTrailQueryHandler,
	identity ports.IdentityProvider,
) *Server {
	return &Server{
		createBatchHandler:         createBatchHandler,
		requestExchangeHandler:     requestExchangeHandler,
		acceptExchangeHandler:      acceptExchangeHandler,
		rejectExchangeHandler:      rejectExchangeHandler,
		cancelExchangeHandler:      cancelExchangeHandler,
		completeExchangeHandler:    completeExchangeHandler,
		submitRatingHandler:        submitRatingHandler,
		reportRatingHandler:        reportRatingHandler,
		overrideStatusHandler:      overrideStatusHandler,
		reactivateBatchHandler:     reactivateBatchHandler,
		getAvailableBatchesHandler: getAvailableBatchesHandler,
		getOrdersForActorHandler:   getOrdersForActorHandler,
		getActorRatingHandler:      getActorRatingHandler,
		getAuditTrailHandler:       getAuditTrailHandler,
		identity:                   identity,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/batches", s.GetAvailableBatches)
	api.POST("/batches", s.CreateBatch)
	api.POST("/batches/:batchID/reactivate", s.ReactivateBatch)

	api.POST("/exchanges", s.RequestExchange)
	api.POST("/exchanges/:orderID/accept", s.AcceptExchange)
	api.POST("/exchanges/:orderID/reject", s.RejectExchange)
	api.POST("/exchanges/:orderID/cancel", s.CancelExchange)
	api.POST("/exchanges/:orderID/complete", s.CompleteExchange)
	api.GET("/orders", s.GetOrders)

	api.POST("/ratings", s.SubmitRating)
	api.POST("/ratings/:ratingID/report", s.ReportRating)
	api.GET("/actors/:actorID/rating", s.GetActorRating)

	api.POST("/admin/overrides", s.OverrideStatus)
	api.GET("/admin/entities/:entityID/audit", s.GetAuditTrail)
}

func actorFromHeader(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(actorHeader + " header")
	}

	return parseUUID(raw, actorHeader+" header")
}

func parseUUID(raw, paramName string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}

	return id, nil
}

func respondMissingActor(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: err.Error(),
	})
}

// checkActive rejects writes from suspended accounts before any use case
// runs. Read endpoints do not go through this gate.
func (s *Server) checkActive(ctx context.Context, actorID kernel.UUID) error {
	active, err := s.identity.IsActive(ctx, actorID)
	if err != nil {
		return err
	}
	if !active {
		return errs.NewNotAuthorizedError(actorID.String(), "act while suspended")
	}

	return nil
}

// CreateBatch handles POST /api/v1/batches - publishes a new waste batch.
func (s *Server) CreateBatch(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return respondMissingActor(ctx, err)
	}

	var newBatch NewBatch
	if err = ctx.Bind(&newBatch); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	reqCtx := ctx.Request().Context()
	if err = s.checkActive(reqCtx, actorID); err != nil {
		return respondError(ctx, err)
	}

	batchID := kernel.NewUUID()
	cmd, err := commands.NewCreateBatchCommand(
		batchID, actorID, newBatch.Title, newBatch.Category, newBatch.QuantityKg,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createBatchHandler.Handle(reqCtx, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: batchID.String()})
}

// GetAvailableBatches handles GET /api/v1/batches - lists open marketplace
// batches.
func (s *Server) GetAvailableBatches(ctx echo.Context) error {
	query := queries.NewGetAvailableBatchesQuery()

	batches, err := s.getAvailableBatchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Batch, len(batches))
	for i, item := range batches {
		response[i] = Batch{
			ID:         item.ID.String(),
			OwnerID:    item.OwnerID.String(),
			Title:      item.Title,
			Category:   item.Category,
			QuantityKg: item.QuantityKg,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ReactivateBatch handles POST /api/v1/batches/:batchID/reactivate - puts a
// cancelled batch back on the marketplace.
func (s *Server) ReactivateBatch(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return respondMissingActor(ctx, err)
	}

	batchID, err := parseUUID(ctx.Param("batchID"), "batchID")
	if err != nil {
		return respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.checkActive(reqCtx, actorID); err != nil {
		return respondError(ctx, err)
	}

	isAdmin, err := s.identity.IsAdmin(reqCtx, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReactivateBatchCommand(batchID, actorID, isAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reactivateBatchHandler.Handle(reqCtx, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestExchange handles POST /api/v1/exchanges - asks for a listed item.
func (s *Server) RequestExchange(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return respondMissingActor(ctx, err)
	}

	var newExchange NewExchange
	if err = ctx.Bind(&newExchange); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	itemID, err := parseUUID(newExchange.ItemID, "item_id")
	if err != nil {
		return respondError(ctx, err)
	}

	itemKind, err := exchange.ItemKindFromString(newExchange.ItemKind)
	if err != nil {
		return respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.checkActive(reqCtx, actorID); err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewRequestExchangeCommand(orderID, itemID, itemKind, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.requestExchangeHandler.Handle(reqCtx, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: orderID.String()})
}

// resolveActor pulls the actor and the order id out of a lifecycle request
// and runs the suspended-account gate. The boolean reports whether a
// response has already been written.
func (s *Server) resolveActor(ctx echo.Context) (orderID, actorID kernel.UUID, done bool) {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		_ = respondMissingActor(ctx, err)
		return kernel.UUID{}, kernel.UUID{}, true
	}

	orderID, err = parseUUID(ctx.Param("orderID"), "orderID")
	if err != nil {
		_ = respondError(ctx, err)
		return kernel.UUID{}, kernel.UUID{}, true
	}

	if err = s.checkActive(ctx.Request().Context(), actorID); err != nil {
		_ = respondError(ctx, err)
		return kernel.UUID{}, kernel.UUID{}, true
	}

	return orderID, actorID, false
}

// AcceptExchange handles POST /api/v1/exchanges/:orderID/accept.
func (s *Server) AcceptExchange(ctx echo.Context) error {
	orderID, actorID, done := s.resolveActor(ctx)
	if done {
		return nil
	}

	cmd, err := commands.NewAcceptExchangeCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.acceptExchangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectExchange handles POST /api/v1/exchanges/:orderID/reject.
func (s *Server) RejectExchange(ctx echo.Context) error {
	orderID, actorID, done := s.resolveActor(ctx)
	if done {
		return nil
	}

	cmd, err := commands.NewRejectExchangeCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rejectExchangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelExchange handles POST /api/v1/exchanges/:orderID/cancel.
func (s *Server) CancelExchange(ctx echo.Context) error {
	orderID, actorID, done := s.resolveActor(ctx)
	if done {
		return nil
	}

	cmd, err := commands.NewCancelExchangeCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelExchangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteExchange handles POST /api/v1/exchanges/:orderID/complete.
func (s *Server) CompleteExchange(ctx echo.Context) error {
	orderID, actorID, done := s.resolveActor(ctx)
	if done {
		return nil
	}

	cmd, err := commands.NewCompleteExchangeCommand(orderID, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.completeExchangeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists the requesting actor's orders
// on both sides of the exchange.
func (s *Server) GetOrders(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return respondMissingActor(ctx, err)
	}

	query, err := queries.NewGetOrdersForActorQuery(actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersForActorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, order := range orders {
		response[i] = Order{
			ID:          order.ID.String(),
			ItemID:      order.ItemID.String(),
			ItemKind:    order.ItemKind,
			RequesterID: order.RequesterID.String(),
			ProviderID:  order.ProviderID.String(),
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
			UpdatedAt:   order.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SubmitRating handles POST /api/v1/ratings - rates the counterpart of a
// completed exchange.
func (s *Server) SubmitRating(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return respondMissingActor(ctx, err)
	}

	var newRating NewRating
	if err = ctx.Bind(&newRating); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	orderID, err := parseUUID(newRating.OrderID, "order_id")
	if err != nil {
		return respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.checkActive(reqCtx, actorID); err != nil {
		return respondError(ctx, err)
	}

	ratingID := kernel.NewUUID()
	cmd, err := commands.NewSubmitRatingCommand(
		ratingID, orderID, actorID, newRating.Score, newRating.Comment,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.submitRatingHandler.Handle(reqCtx, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: ratingID.String()})
}

// ReportRating handles POST /api/v1/ratings/:ratingID/report - flags a
// rating for moderation.
func (s *Server) ReportRating(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return respondMissingActor(ctx, err)
	}

	ratingID, err := parseUUID(ctx.Param("ratingID"), "ratingID")
	if err != nil {
		return respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.checkActive(reqCtx, actorID); err != nil {
		return respondError(ctx, err)
	}

	isAdmin, err := s.identity.IsAdmin(reqCtx, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReportRatingCommand(ratingID, actorID, isAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.reportRatingHandler.Handle(reqCtx, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetActorRating handles GET /api/v1/actors/:actorID/rating - returns an
// actor's aggregate reputation.
func (s *Server) GetActorRating(ctx echo.Context) error {
	actorID, err := parseUUID(ctx.Param("actorID"), "actorID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetActorRatingQuery(actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	rating, err := s.getActorRatingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ActorRating{
		ActorID: rating.ActorID.String(),
		Average: rating.Average,
		Count:   rating.Count,
	})
}

// OverrideStatus handles POST /api/v1/admin/overrides - forces an item's
// status and records the override on the audit trail.
func (s *Server) OverrideStatus(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return respondMissingActor(ctx, err)
	}

	var newOverride NewOverride
	if err = ctx.Bind(&newOverride); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	entityType, err := audit.EntityTypeFromString(newOverride.EntityType)
	if err != nil {
		return respondError(ctx, err)
	}

	entityID, err := parseUUID(newOverride.EntityID, "entity_id")
	if err != nil {
		return respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	if err = s.checkActive(reqCtx, actorID); err != nil {
		return respondError(ctx, err)
	}

	isAdmin, err := s.identity.IsAdmin(reqCtx, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	entryID := kernel.NewUUID()
	cmd, err := commands.NewOverrideStatusCommand(
		entryID, entityType, entityID, actorID, isAdmin,
		newOverride.NewStatus, newOverride.Note,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.overrideStatusHandler.Handle(reqCtx, cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: entryID.String()})
}

// GetAuditTrail handles GET /api/v1/admin/entities/:entityID/audit - returns
// the override history for one entity.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return respondMissingActor(ctx, err)
	}

	entityID, err := parseUUID(ctx.Param("entityID"), "entityID")
	if err != nil {
		return respondError(ctx, err)
	}

	reqCtx := ctx.Request().Context()
	isAdmin, err := s.identity.IsAdmin(reqCtx, actorID)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetAuditTrailQuery(entityID, isAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	entries, err := s.getAuditTrailHandler.Handle(reqCtx, query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AuditEntry, len(entries))
	for i, entry := range entries {
		response[i] = AuditEntry{
			ID:             entry.ID.String(),
			EntityType:     entry.EntityType,
			EntityID:       entry.EntityID.String(),
			AdminID:        entry.AdminID.String(),
			PreviousStatus: entry.PreviousStatus,
			NewStatus:      entry.NewStatus,
			Note:           entry.Note,
			CreatedAt:      entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
