// Package http exposes the service order back office over a REST API built
// on echo. Handlers bind and validate request DTOs, translate them into
// commands and queries, and map the business error taxonomy to HTTP status
// codes.
package http

import (
	"net/http"
	"time"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/commands"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/application/usecases/queries"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/kernel"
	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/core/domain/model/serviceorder"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and the application use cases.
type Server struct {
	createOrderHandler     commands.CreateServiceOrderCommandHandler
	updateOrderHandler     commands.UpdateServiceOrderCommandHandler
	startOrderHandler      commands.StartServiceOrderCommandHandler
	completeOrderHandler   commands.CompleteServiceOrderCommandHandler
	cancelOrderHandler     commands.CancelServiceOrderCommandHandler
	updateChecklistHandler commands.UpdateChecklistCommandHandler

	getOrderHandler        queries.GetServiceOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getLowStockHandler     queries.GetLowStockMaterialsQueryHandler
	getAvailabilityHandler queries.GetCrewAvailabilityQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateServiceOrderCommandHandler,
	updateOrderHandler commands.UpdateServiceOrderCommandHandler,
	startOrderHandler commands.StartServiceOrderCommandHandler,
	completeOrderHandler commands.CompleteServiceOrderCommandHandler,
	cancelOrderHandler commands.CancelServiceOrderCommandHandler,
	updateChecklistHandler commands.UpdateChecklistCommandHandler,
	getOrderHandler queries.GetServiceOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getLowStockHandler queries.GetLowStockMaterialsQueryHandler,
	getAvailabilityHandler queries.GetCrewAvailabilityQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		startOrderHandler:      startOrderHandler,
		completeOrderHandler:   completeOrderHandler,
		cancelOrderHandler:     cancelOrderHandler,
		updateChecklistHandler: updateChecklistHandler,
		getOrderHandler:        getOrderHandler,
		getActiveOrdersHandler: getActiveOrdersHandler,
		getLowStockHandler:     getLowStockHandler,
		getAvailabilityHandler: getAvailabilityHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:orderId", s.GetOrder)
	api.PUT("/orders/:orderId", s.UpdateOrder)
	api.POST("/orders/:orderId/start", s.StartOrder)
	api.POST("/orders/:orderId/complete", s.CompleteOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.PUT("/orders/:orderId/checklists/:kind", s.UpdateChecklist)
	api.GET("/materials/low-stock", s.GetLowStockMaterials)
	api.GET("/crew/availability", s.GetCrewAvailability)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorKind: KindValidationError,
			Message:   "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := s.buildCreateCommand(req)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(order))
}

func (s *Server) buildCreateCommand(req CreateOrderRequest) (commands.CreateServiceOrderCommand, error) {
	contractID, err := parseUUID(req.ContractID)
	if err != nil {
		return commands.CreateServiceOrderCommand{}, err
	}
	window, err := kernel.NewTimeWindow(req.WindowStart, req.WindowEnd)
	if err != nil {
		return commands.CreateServiceOrderCommand{}, err
	}
	origin, err := req.Origin.toDomain()
	if err != nil {
		return commands.CreateServiceOrderCommand{}, err
	}
	destination, err := req.Destination.toDomain()
	if err != nil {
		return commands.CreateServiceOrderCommand{}, err
	}
	crew, err := crewToDomain(req.Crew)
	if err != nil {
		return commands.CreateServiceOrderCommand{}, err
	}
	materials, err := materialsToDomain(req.Materials)
	if err != nil {
		return commands.CreateServiceOrderCommand{}, err
	}
	vehicleID, err := parseOptionalUUID(req.VehicleID)
	if err != nil {
		return commands.CreateServiceOrderCommand{}, err
	}

	return commands.NewCreateServiceOrderCommand(
		contractID, window, origin, destination,
		crew, materials, vehicleID,
		req.PreChecklist, req.PostChecklist, req.Notes)
}

// UpdateOrder handles PUT /api/v1/orders/{orderId}.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorKind: KindValidationError,
			Message:   "Invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	cmd, err := s.buildUpdateCommand(orderID, req)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromAggregate(order))
}

func (s *Server) buildUpdateCommand(
	orderID kernel.UUID,
	req UpdateOrderRequest,
) (commands.UpdateServiceOrderCommand, error) {
	var window *kernel.TimeWindow
	if req.WindowStart != nil || req.WindowEnd != nil {
		var start, end time.Time
		if req.WindowStart != nil {
			start = *req.WindowStart
		}
		if req.WindowEnd != nil {
			end = *req.WindowEnd
		}
		w, err := kernel.NewTimeWindow(start, end)
		if err != nil {
			return commands.UpdateServiceOrderCommand{}, err
		}
		window = &w
	}

	var origin, destination *serviceorder.Address
	if req.Origin != nil {
		a, err := req.Origin.toDomain()
		if err != nil {
			return commands.UpdateServiceOrderCommand{}, err
		}
		origin = &a
	}
	if req.Destination != nil {
		a, err := req.Destination.toDomain()
		if err != nil {
			return commands.UpdateServiceOrderCommand{}, err
		}
		destination = &a
	}

	var materials []serviceorder.MaterialLine
	hasMaterials := req.Materials != nil
	if hasMaterials {
		lines, err := materialsToDomain(*req.Materials)
		if err != nil {
			return commands.UpdateServiceOrderCommand{}, err
		}
		materials = lines
	}

	vehicleID, err := parseOptionalUUID(req.VehicleID)
	if err != nil {
		return commands.UpdateServiceOrderCommand{}, err
	}

	assignCrew, err := crewToDomain(req.AssignCrew)
	if err != nil {
		return commands.UpdateServiceOrderCommand{}, err
	}

	unassignCrew := make([]kernel.UUID, 0, len(req.UnassignCrew))
	for _, raw := range req.UnassignCrew {
		employeeID, parseErr := parseUUID(raw)
		if parseErr != nil {
			return commands.UpdateServiceOrderCommand{}, parseErr
		}
		unassignCrew = append(unassignCrew, employeeID)
	}

	return commands.NewUpdateServiceOrderCommand(
		orderID, window, origin, destination, req.Notes,
		materials, hasMaterials,
		req.ChangeVehicle, vehicleID,
		assignCrew, unassignCrew)
}

// StartOrder handles POST /api/v1/orders/{orderId}/start.
func (s *Server) StartOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewStartServiceOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.startOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/{orderId}/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteServiceOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelServiceOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateChecklist handles PUT /api/v1/orders/{orderId}/checklists/{kind}.
func (s *Server) UpdateChecklist(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateChecklistRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorKind: KindValidationError,
			Message:   "Invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return err
	}

	items := make([]commands.ChecklistItemUpdate, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.ChecklistItemUpdate{Label: item.Label, Done: item.Done})
	}

	cmd, err := commands.NewUpdateChecklistCommand(
		orderID, serviceorder.ChecklistKind(ctx.Param("kind")), items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateChecklistHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := parseUUID(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetServiceOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(order))
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	orders, err := s.getActiveOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetActiveOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveOrderResponse, 0, len(orders))
	for _, o := range orders {
		row := ActiveOrderResponse{
			ID:          o.ID.String(),
			Number:      o.Number,
			ClientID:    o.ClientID.String(),
			Status:      o.Status,
			WindowStart: o.WindowStart,
			WindowEnd:   o.WindowEnd,
		}
		if o.VehicleID != nil {
			v := o.VehicleID.String()
			row.VehicleID = &v
		}
		response = append(response, row)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLowStockMaterials handles GET /api/v1/materials/low-stock.
func (s *Server) GetLowStockMaterials(ctx echo.Context) error {
	materials, err := s.getLowStockHandler.Handle(
		ctx.Request().Context(), queries.NewGetLowStockMaterialsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]LowStockMaterialResponse, 0, len(materials))
	for _, m := range materials {
		response = append(response, LowStockMaterialResponse{
			ID:        m.ID.String(),
			Name:      m.Name,
			Available: m.Available,
			Minimum:   m.Minimum,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCrewAvailability handles GET /api/v1/crew/availability?date=YYYY-MM-DD.
func (s *Server) GetCrewAvailability(ctx echo.Context) error {
	date, err := time.Parse("2006-01-02", ctx.QueryParam("date"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorKind: KindValidationError,
			Message:   "date must be formatted as YYYY-MM-DD",
		})
	}

	query, err := queries.NewGetCrewAvailabilityQuery(date)
	if err != nil {
		return writeError(ctx, err)
	}

	availability, err := s.getAvailabilityHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]CrewAvailabilityResponse, 0, len(availability))
	for _, a := range availability {
		row := CrewAvailabilityResponse{
			EmployeeID: a.EmployeeID.String(),
			Name:       a.Name,
			Available:  a.Available,
		}
		if a.OrderID != nil {
			o := a.OrderID.String()
			row.OrderID = &o
		}
		response = append(response, row)
	}

	return ctx.JSON(http.StatusOK, response)
}

func writeError(ctx echo.Context, err error) error {
	status, body := errorBody(err)
	return ctx.JSON(status, body)
}
