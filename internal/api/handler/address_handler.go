package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

// AddressHandler manages the authenticated user's saved address book.
type AddressHandler struct {
	service ports.AddressService
}

func NewAddressHandler(service ports.AddressService) *AddressHandler {
	return &AddressHandler{service: service}
}

type createAddressRequest struct {
	Address       string `json:"address"        validate:"required"`
	Country       string `json:"country"        validate:"required"`
	City          string `json:"city"           validate:"required"`
	ZipCode       string `json:"zip_code"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number" validate:"required"`
	MobileNumber  string `json:"mobile_number"`
	Default       bool   `json:"default"`
}

type listAddressesResponse struct {
	Data []*domain.Address `json:"data"`
}

// Create handles POST /v1/addresses.
//
// @Summary      Save an address-book entry
// @Tags         addresses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAddressRequest  true  "Address details"
// @Success      201   {object}  domain.Address
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/addresses [post]
func (h *AddressHandler) Create(c echo.Context) error {
	var req createAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	_, username, err := ctxClaims(c)
	if err != nil {
		return err
	}

	address, err := h.service.CreateAddress(c.Request().Context(), ports.CreateAddressInput{
		Username:      username,
		Address:       req.Address,
		Country:       req.Country,
		City:          req.City,
		ZipCode:       req.ZipCode,
		Location:      req.Location,
		ContactNumber: req.ContactNumber,
		MobileNumber:  req.MobileNumber,
		Default:       req.Default,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, address)
}

// List handles GET /v1/addresses. Returns the caller's own entries only.
//
// @Summary      List saved addresses
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAddressesResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/addresses [get]
func (h *AddressHandler) List(c echo.Context) error {
	_, username, err := ctxClaims(c)
	if err != nil {
		return err
	}

	addresses, err := h.service.ListAddresses(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listAddressesResponse{Data: addresses})
}

// SetDefault handles PUT /v1/addresses/:uuid/default.
//
// @Summary      Mark an address as the default
// @Tags         addresses
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "Address uuid"
// @Success      204   "No Content"
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/addresses/{uuid}/default [put]
func (h *AddressHandler) SetDefault(c echo.Context) error {
	_, username, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.SetDefaultAddress(c.Request().Context(), username, c.Param("uuid")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
