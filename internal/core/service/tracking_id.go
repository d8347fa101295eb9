package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

// temporaryIDDigits is the length of the random suffix on placeholder ids.
const temporaryIDDigits = 8

// TrackingIDGenerator builds the two identifier shapes: permanent
// sequence-derived ids (AWB-NNNNNN / REF-NNNNNN) and temporary placeholders
// (prefix + 8 random decimal digits).
type TrackingIDGenerator struct {
	seq ports.SequenceStore
}

func NewTrackingIDGenerator(seq ports.SequenceStore) *TrackingIDGenerator {
	return &TrackingIDGenerator{seq: seq}
}

// PermanentAWB issues the next AWB number from the awb series.
func (g *TrackingIDGenerator) PermanentAWB(ctx context.Context) (string, error) {
	n, err := g.seq.Next(ctx, ports.SeriesAWB)
	if err != nil {
		return "", fmt.Errorf("awb sequence: %w", err)
	}
	return fmt.Sprintf("%s%06d", domain.AWBPrefix, n), nil
}

// PermanentReference issues the next reference number from the ref series.
func (g *TrackingIDGenerator) PermanentReference(ctx context.Context) (string, error) {
	n, err := g.seq.Next(ctx, ports.SeriesRef)
	if err != nil {
		return "", fmt.Errorf("ref sequence: %w", err)
	}
	return fmt.Sprintf("%s%06d", domain.RefPrefix, n), nil
}

// TemporaryID returns prefix followed by 8 random decimal digits. Collisions
// are possible; the unique index on the shipment collection surfaces them as
// domain.ErrDuplicateIdentifier and the caller retries with a fresh id.
func TemporaryID(prefix string) string {
	var b [temporaryIDDigits]byte
	if _, err := rand.Read(b[:]); err != nil {
		// fallback: derive digits from the clock
		return fmt.Sprintf("%s%08d", prefix, time.Now().UnixNano()%100000000)
	}
	digits := make([]byte, temporaryIDDigits)
	for i, v := range b {
		digits[i] = '0' + v%10
	}
	return prefix + string(digits)
}
