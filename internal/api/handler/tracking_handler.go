package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cargobook/booking-system/internal/api/metrics"
	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

// TrackingHandler serves the public, unauthenticated tracking lookup.
type TrackingHandler struct {
	service ports.TrackingService
}

func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles GET /v1/tracking?tracking_number=AWB-000123.
//
// @Summary      Track a shipment by AWB or reference number
// @Tags         tracking
// @Produce      json
// @Param        tracking_number  query     string  true  "Tracking number (AWB-... or REF-...)"
// @Success      200              {object}  trackingResponse
// @Failure      400              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /v1/tracking [get]
func (h *TrackingHandler) Track(c echo.Context) error {
	trackingNumber := strings.TrimSpace(c.QueryParam("tracking_number"))

	shipment, err := h.service.Resolve(c.Request().Context(), trackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTrackingNumber):
			metrics.TrackingLookupsTotal.WithLabelValues("invalid").Inc()
		case errors.Is(err, domain.ErrShipmentNotFound):
			metrics.TrackingLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return err
	}

	if strings.HasPrefix(trackingNumber, domain.AWBPrefix) {
		metrics.TrackingLookupsTotal.WithLabelValues("awb").Inc()
	} else {
		metrics.TrackingLookupsTotal.WithLabelValues("ref").Inc()
	}

	return c.JSON(http.StatusOK, toTrackingResponse(shipment))
}
