package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

type trackingService struct {
	repo ports.ShipmentRepository
	log  zerolog.Logger
}

// NewTrackingService returns the public TrackingService implementation.
func NewTrackingService(repo ports.ShipmentRepository, log zerolog.Logger) ports.TrackingService {
	return &trackingService{repo: repo, log: log}
}

// Resolve dispatches on the identifier prefix. The prefix check happens
// before any storage access, so malformed input never reaches the database.
func (s *trackingService) Resolve(ctx context.Context, trackingNumber string) (*domain.Shipment, error) {
	switch {
	case trackingNumber == "":
		return nil, domain.ErrInvalidTrackingNumber
	case strings.HasPrefix(trackingNumber, domain.AWBPrefix):
		return s.repo.FindByAWB(ctx, trackingNumber)
	case strings.HasPrefix(trackingNumber, domain.RefPrefix):
		return s.repo.FindByReference(ctx, trackingNumber)
	default:
		return nil, domain.ErrInvalidTrackingNumber
	}
}
