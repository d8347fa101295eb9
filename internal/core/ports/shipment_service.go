package ports

import (
	"context"
	"time"

	"github.com/cargobook/booking-system/internal/core/domain"
)

// PartyInput holds the contact block for a shipper or receiver.
type PartyInput struct {
	Name          string
	Address       string
	Country       string
	City          string
	ZipCode       string
	ContactPerson string
	ContactNumber string
	MobileNumber  string
}

// DimensionsInput holds the per-piece package measurements in centimetres.
type DimensionsInput struct {
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

// CreateShipmentInput carries all data needed to create a new shipment.
// CreatedBy is empty for anonymous bookings. AddressUUID optionally names a
// saved address-book entry used to prefill the shipper block.
type CreateShipmentInput struct {
	Shipper            PartyInput
	Receiver           PartyInput
	ProductType        string
	Service            string
	Quantity           int
	Dimensions         DimensionsInput
	GrossWeightKg      float64
	CODAmount          float64
	ItemDescription    string
	SpecialInstruction string
	CreatedBy          string
	AddressUUID        string
}

// UpdateShipmentInput carries the editable fields of a pending shipment.
type UpdateShipmentInput struct {
	ID            string
	Quantity      int
	Dimensions    DimensionsInput
	GrossWeightKg float64
	// Role and Username enforce ownership: clients may only touch their own
	// shipments.
	Role     string
	Username string
}

// ShipmentResult is the creation outcome returned to the transport layer.
type ShipmentResult struct {
	ID                 string
	AWBNumber          string
	ReferenceNumber    string
	PaymentStatus      string
	VolumetricWeightKg float64
	ChargeableWeightKg float64
	CreatedAt          time.Time
}

// GetShipmentInput carries the parameters to retrieve a single shipment.
type GetShipmentInput struct {
	ID       string
	Role     string
	Username string
}

// ListShipmentsInput carries all parameters for the list endpoint.
type ListShipmentsInput struct {
	Role          string
	Username      string
	PaymentStatus string
	Service       string
	Search        string
	Page          int
	Limit         int
}

// ListShipmentsResult is returned by ListShipments.
type ListShipmentsResult struct {
	Items      []*domain.Shipment
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ShipmentService defines the use-case operations for shipments. It owns the
// identifier state machine: records are created pending with temporary
// identifiers, and derived weights are recomputed on every persist.
type ShipmentService interface {
	CreateShipment(ctx context.Context, input CreateShipmentInput) (*ShipmentResult, error)
	UpdateShipment(ctx context.Context, input UpdateShipmentInput) (*domain.Shipment, error)
	GetShipment(ctx context.Context, input GetShipmentInput) (*domain.Shipment, error)
	ListShipments(ctx context.Context, input ListShipmentsInput) (*ListShipmentsResult, error)
}
