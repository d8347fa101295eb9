package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis) in front of payment
// events.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, shipmentID, eventID string) (bool, error)
	Mark(ctx context.Context, shipmentID, eventID string) error
}

type paymentService struct {
	shipments ports.ShipmentRepository
	ids       *TrackingIDGenerator
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewPaymentService returns a PaymentService implementation.
func NewPaymentService(
	shipments ports.ShipmentRepository,
	ids *TrackingIDGenerator,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.PaymentService {
	return &paymentService{shipments: shipments, ids: ids, dedup: dedup, log: log}
}

// Confirm executes the pending→paid transition for one shipment. Each
// identifier still carrying the temporary shape is replaced by a permanent
// sequence-derived value; identifiers already permanent are left untouched,
// so replaying the event is a no-op. The status flip and both identifier
// writes land in a single document update.
func (s *paymentService) Confirm(ctx context.Context, in ports.PaymentEventInput) error {
	// 1. Idempotency check: silently skip replays of the same upstream event.
	isDup, err := s.dedup.IsDuplicate(ctx, in.ShipmentID, in.EventID)
	if err != nil {
		s.log.Warn().Err(err).Str("shipment_id", in.ShipmentID).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("shipment_id", in.ShipmentID).Str("event_id", in.EventID).Msg("duplicate payment event skipped")
		return nil
	}

	shipment, err := s.shipments.FindByID(ctx, in.ShipmentID)
	if err != nil {
		return fmt.Errorf("confirm payment: %w", err)
	}

	// 2. Already fully transitioned: nothing to do.
	if shipment.PaymentStatus == domain.PaymentPaid && shipment.HasPermanentIdentifiers() {
		s.markProcessed(ctx, in)
		return nil
	}

	// 3. Issue permanent identifiers only where the temporary shape remains.
	awb := shipment.AWBNumber
	if !domain.IsPermanentAWB(awb) {
		if awb, err = s.ids.PermanentAWB(ctx); err != nil {
			return fmt.Errorf("confirm payment: %w", err)
		}
	}
	ref := shipment.ReferenceNumber
	if !domain.IsPermanentReference(ref) {
		if ref, err = s.ids.PermanentReference(ctx); err != nil {
			return fmt.Errorf("confirm payment: %w", err)
		}
	}

	// 4. Atomic flip. A duplicate key on a counter-derived id means the
	// counter itself is corrupted; that is fatal, never retried.
	if err := s.shipments.MarkPaid(ctx, shipment.ID, awb, ref); err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentifier) {
			s.log.Error().
				Str("shipment_id", shipment.ID).
				Str("awb_number", awb).
				Msg("permanent identifier collision")
			return fmt.Errorf("confirm payment: %w", domain.ErrSequenceCorrupted)
		}
		return fmt.Errorf("confirm payment: %w", err)
	}

	s.markProcessed(ctx, in)
	s.log.Info().
		Str("shipment_id", shipment.ID).
		Str("awb_number", awb).
		Str("reference_number", ref).
		Msg("payment confirmed")

	return nil
}

func (s *paymentService) markProcessed(ctx context.Context, in ports.PaymentEventInput) {
	if err := s.dedup.Mark(ctx, in.ShipmentID, in.EventID); err != nil {
		s.log.Warn().Err(err).Str("shipment_id", in.ShipmentID).Msg("failed to set dedup key")
	}
}
