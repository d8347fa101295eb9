package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cargobook/booking-system/internal/api/metrics"
	"github.com/cargobook/booking-system/internal/core/ports"
)

// PaymentDispatcher is the interface the handler uses to enqueue
// payment-confirmation events for asynchronous processing.
type PaymentDispatcher interface {
	Enqueue(event ports.PaymentEventInput)
}

// ShipmentHandler handles HTTP requests for shipment operations.
type ShipmentHandler struct {
	service    ports.ShipmentService
	dispatcher PaymentDispatcher
}

func NewShipmentHandler(service ports.ShipmentService, dispatcher PaymentDispatcher) *ShipmentHandler {
	return &ShipmentHandler{service: service, dispatcher: dispatcher}
}

// Create handles POST /v1/shipments. Bookings do not require authentication;
// when a token is present the shipment is attributed to the caller.
//
// @Summary      Book a new shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Param        body  body      createShipmentRequest  true  "Shipment details"
// @Success      201   {object}  createShipmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /v1/shipments [post]
func (h *ShipmentHandler) Create(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	username, _ := c.Get("username").(string)

	result, err := h.service.CreateShipment(c.Request().Context(), toCreateInput(req, username))
	if err != nil {
		return err
	}

	metrics.ShipmentsCreatedTotal.WithLabelValues(req.Service).Inc()
	return c.JSON(http.StatusCreated, toCreateResponse(result))
}

// Update handles PUT /v1/shipments/:id. Editable fields are quantity,
// dimensions and gross weight; identifiers and payment status never change
// through this path.
//
// @Summary      Update a pending shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Shipment id"
// @Param        body  body      updateShipmentRequest  true  "Editable fields"
// @Success      200   {object}  shipmentResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/shipments/{id} [put]
func (h *ShipmentHandler) Update(c echo.Context) error {
	var req updateShipmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	role, username, err := ctxClaims(c)
	if err != nil {
		return err
	}

	shipment, err := h.service.UpdateShipment(c.Request().Context(), ports.UpdateShipmentInput{
		ID:            c.Param("id"),
		Quantity:      req.Quantity,
		Dimensions:    toDimensionsInput(req.Dimensions),
		GrossWeightKg: req.GrossWeightKg,
		Role:          role,
		Username:      username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// Get handles GET /v1/shipments/:id.
//
// @Summary      Get a shipment by id
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Shipment id"
// @Success      200  {object}  shipmentResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/shipments/{id} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	role, username, err := ctxClaims(c)
	if err != nil {
		return err
	}

	shipment, err := h.service.GetShipment(c.Request().Context(), ports.GetShipmentInput{
		ID:       c.Param("id"),
		Role:     role,
		Username: username,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toShipmentResponse(shipment))
}

// List handles GET /v1/shipments. Clients see only their own shipments;
// admins see everything.
//
// @Summary      List shipments
// @Tags         shipments
// @Produce      json
// @Security     BearerAuth
// @Param        payment_status  query     string  false  "Filter by payment status (pending|paid)"
// @Param        service         query     string  false  "Filter by service"
// @Param        search          query     string  false  "Search in identifiers and receiver name"
// @Param        page            query     int     false  "Page number (1-based)"
// @Param        limit           query     int     false  "Page size (max 100)"
// @Success      200  {object}  listShipmentsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/shipments [get]
func (h *ShipmentHandler) List(c echo.Context) error {
	role, username, err := ctxClaims(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListShipments(c.Request().Context(), ports.ListShipmentsInput{
		Role:          role,
		Username:      username,
		PaymentStatus: c.QueryParam("payment_status"),
		Service:       c.QueryParam("service"),
		Search:        c.QueryParam("search"),
		Page:          page,
		Limit:         limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// ConfirmPayment handles POST /v1/shipments/:id/payment. The event is
// acknowledged immediately and processed asynchronously; the worker assigned
// to the shipment performs the pending→paid transition and issues the
// permanent identifiers. Safe to retry: events are deduplicated by event_id
// and the transition itself is idempotent.
//
// @Summary      Confirm payment for a shipment
// @Tags         shipments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true   "Shipment id"
// @Param        body  body      paymentConfirmationRequest  false  "Payment event details"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /v1/shipments/{id}/payment [post]
func (h *ShipmentHandler) ConfirmPayment(c echo.Context) error {
	var req paymentConfirmationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	shipmentID := c.Param("id")
	if shipmentID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing shipment id")
	}
	if req.EventID == "" {
		req.EventID = uuid.NewString()
	}
	if req.OccurredAt.IsZero() {
		req.OccurredAt = time.Now().UTC()
	}

	h.dispatcher.Enqueue(ports.PaymentEventInput{
		ShipmentID: shipmentID,
		EventID:    req.EventID,
		Source:     req.Source,
		OccurredAt: req.OccurredAt,
	})

	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "payment confirmation accepted"})
}
