package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// PaymentDedup provides idempotency checks for payment-confirmation events.
// Key format: payment:<shipment_id>:<event_id>
type PaymentDedup struct {
	client *redis.Client
}

// NewPaymentDedup creates a PaymentDedup wrapping the given Redis client.
func NewPaymentDedup(client *redis.Client) *PaymentDedup {
	return &PaymentDedup{client: client}
}

// IsDuplicate reports whether this exact payment event has already been processed.
func (d *PaymentDedup) IsDuplicate(ctx context.Context, shipmentID, eventID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(shipmentID, eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("payment dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this event has been processed (expires after dedupTTL).
func (d *PaymentDedup) Mark(ctx context.Context, shipmentID, eventID string) error {
	return d.client.Set(ctx, d.key(shipmentID, eventID), "1", dedupTTL).Err()
}

func (d *PaymentDedup) key(shipmentID, eventID string) string {
	return fmt.Sprintf("payment:%s:%s", shipmentID, eventID)
}
