package ports

import (
	"context"

	"github.com/cargobook/booking-system/internal/core/domain"
)

// TrackingService resolves a caller-supplied tracking string to a shipment
// for public tracking. Resolution is read-only and dispatches on the
// identifier prefix: AWB- looks up by awb_number, REF- by reference_number,
// anything else is rejected with domain.ErrInvalidTrackingNumber. Temporary
// PENDING identifiers carry neither prefix, so unpaid shipments are not
// reachable through this path.
type TrackingService interface {
	Resolve(ctx context.Context, trackingNumber string) (*domain.Shipment, error)
}
