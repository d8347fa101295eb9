package ports

import (
	"context"
	"time"
)

// PaymentEventInput is a payment-confirmation event received from the
// payment collaborator. EventID identifies the upstream event for
// deduplication; ShipmentID names the record to transition.
type PaymentEventInput struct {
	ShipmentID string
	EventID    string
	Source     string
	OccurredAt time.Time
}

// PaymentService executes the pending→paid transition. Confirm is idempotent:
// identifiers already carrying the permanent shape are never reissued, and a
// replayed event leaves the record unchanged.
type PaymentService interface {
	Confirm(ctx context.Context, input PaymentEventInput) error
}
