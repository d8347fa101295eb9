package ports

import (
	"context"

	"github.com/cargobook/booking-system/internal/core/domain"
)

// ListShipmentsFilter carries all query parameters for listing shipments.
// CreatedBy is enforced by the service layer: empty means no owner filter
// (admin), non-empty scopes the query to that user's shipments.
type ListShipmentsFilter struct {
	CreatedBy     string
	PaymentStatus string // optional: "pending" or "paid"
	Service       string // optional: service level
	Search        string // optional: partial match on awb/reference/receiver name
	Page          int    // 1-based
	Limit         int    // capped at 100 by the service
}

// ShipmentRepository defines persistence operations for shipments. The
// shipments collection carries unique indexes on awb_number and
// reference_number; writes that violate them return
// domain.ErrDuplicateIdentifier.
type ShipmentRepository interface {
	// Create inserts the shipment as a single document write; the assigned
	// storage id is written back to s.ID.
	Create(ctx context.Context, s *domain.Shipment) error

	// Update persists the mutable fields of an existing shipment, including
	// recomputed weights and identifiers, as one atomic document update.
	Update(ctx context.Context, s *domain.Shipment) error

	// MarkPaid atomically sets both identifiers and flips the payment status
	// to paid in a single document update, so readers never observe the
	// transition half-applied.
	MarkPaid(ctx context.Context, id, awbNumber, referenceNumber string) error

	FindByID(ctx context.Context, id string) (*domain.Shipment, error)
	FindByAWB(ctx context.Context, awbNumber string) (*domain.Shipment, error)
	FindByReference(ctx context.Context, referenceNumber string) (*domain.Shipment, error)

	// List returns a page of shipments matching filter and the total count.
	List(ctx context.Context, filter ListShipmentsFilter) ([]*domain.Shipment, int64, error)
}
