package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

// maxTemporaryIDRetries bounds how often a create is retried when a random
// placeholder id collides with an existing one.
const maxTemporaryIDRetries = 3

const defaultPageLimit = 20
const maxPageLimit = 100

type ShipmentService struct {
	repo      ports.ShipmentRepository
	addresses ports.AddressRepository
	ids       *TrackingIDGenerator
	logger    zerolog.Logger
}

func NewShipmentService(
	repo ports.ShipmentRepository,
	addresses ports.AddressRepository,
	ids *TrackingIDGenerator,
	logger zerolog.Logger,
) *ShipmentService {
	return &ShipmentService{repo: repo, addresses: addresses, ids: ids, logger: logger}
}

// CreateShipment persists a new shipment in the pending state. Both
// identifiers receive the temporary PENDING shape; derived weights are
// computed before the write. A placeholder collision is retried with fresh
// ids up to maxTemporaryIDRetries times.
func (s *ShipmentService) CreateShipment(ctx context.Context, input ports.CreateShipmentInput) (*ports.ShipmentResult, error) {
	shipper := input.Shipper
	if input.AddressUUID != "" && input.CreatedBy != "" {
		saved, err := s.addresses.FindByUUID(ctx, input.CreatedBy, input.AddressUUID)
		if err != nil {
			return nil, fmt.Errorf("create shipment: %w", err)
		}
		applySavedAddress(&shipper, saved)
	}

	now := time.Now().UTC()
	shipment := &domain.Shipment{
		PaymentStatus: domain.PaymentPending,
		Shipper:       toParty(shipper),
		Receiver:      toParty(input.Receiver),

		ProductType: input.ProductType,
		Service:     input.Service,
		Quantity:    input.Quantity,
		Dimensions: domain.Dimensions{
			LengthCm: input.Dimensions.LengthCm,
			WidthCm:  input.Dimensions.WidthCm,
			HeightCm: input.Dimensions.HeightCm,
		},
		GrossWeightKg:      input.GrossWeightKg,
		CODAmount:          input.CODAmount,
		ItemDescription:    input.ItemDescription,
		SpecialInstruction: input.SpecialInstruction,

		CreatedBy: input.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	shipment.ComputeWeights()

	var err error
	for attempt := 0; attempt < maxTemporaryIDRetries; attempt++ {
		shipment.AWBNumber = TemporaryID(domain.TempPrefix)
		shipment.ReferenceNumber = TemporaryID(domain.TempPrefix)

		err = s.repo.Create(ctx, shipment)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateIdentifier) {
			s.logger.Error().Err(err).Msg("failed to create shipment")
			return nil, err
		}
		s.logger.Warn().Int("attempt", attempt+1).Msg("placeholder id collision, regenerating")
	}
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	s.logger.Info().
		Str("shipment_id", shipment.ID).
		Str("awb_number", shipment.AWBNumber).
		Str("created_by", shipment.CreatedBy).
		Msg("shipment created")

	return &ports.ShipmentResult{
		ID:                 shipment.ID,
		AWBNumber:          shipment.AWBNumber,
		ReferenceNumber:    shipment.ReferenceNumber,
		PaymentStatus:      string(shipment.PaymentStatus),
		VolumetricWeightKg: shipment.VolumetricWeightKg,
		ChargeableWeightKg: shipment.ChargeableWeightKg,
		CreatedAt:          shipment.CreatedAt,
	}, nil
}

// UpdateShipment persists edits to the package fields of an existing shipment
// and recomputes the derived weights. Identifiers follow the state machine:
// a pending record keeps its existing placeholder (never reissued), a paid
// record keeps its permanent ids untouched.
func (s *ShipmentService) UpdateShipment(ctx context.Context, input ports.UpdateShipmentInput) (*domain.Shipment, error) {
	shipment, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Role != domain.RoleAdmin && shipment.CreatedBy != input.Username {
		return nil, domain.ErrForbidden
	}

	shipment.Quantity = input.Quantity
	shipment.Dimensions = domain.Dimensions{
		LengthCm: input.Dimensions.LengthCm,
		WidthCm:  input.Dimensions.WidthCm,
		HeightCm: input.Dimensions.HeightCm,
	}
	shipment.GrossWeightKg = input.GrossWeightKg
	shipment.ComputeWeights()
	shipment.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, shipment); err != nil {
		s.logger.Error().Err(err).Str("shipment_id", shipment.ID).Msg("failed to update shipment")
		return nil, err
	}
	return shipment, nil
}

// GetShipment returns a single shipment, enforcing ownership for clients.
func (s *ShipmentService) GetShipment(ctx context.Context, input ports.GetShipmentInput) (*domain.Shipment, error) {
	shipment, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if input.Role != domain.RoleAdmin && shipment.CreatedBy != input.Username {
		return nil, domain.ErrForbidden
	}
	return shipment, nil
}

// ListShipments returns a page of shipments. Clients only ever see their own
// records; admins see everything.
func (s *ShipmentService) ListShipments(ctx context.Context, input ports.ListShipmentsInput) (*ports.ListShipmentsResult, error) {
	filter := ports.ListShipmentsFilter{
		PaymentStatus: input.PaymentStatus,
		Service:       input.Service,
		Search:        input.Search,
		Page:          input.Page,
		Limit:         input.Limit,
	}
	if input.Role != domain.RoleAdmin {
		filter.CreatedBy = input.Username
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &ports.ListShipmentsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

func toParty(p ports.PartyInput) domain.Party {
	return domain.Party{
		Name:          p.Name,
		Address:       p.Address,
		Country:       p.Country,
		City:          p.City,
		ZipCode:       p.ZipCode,
		ContactPerson: p.ContactPerson,
		ContactNumber: p.ContactNumber,
		MobileNumber:  p.MobileNumber,
	}
}

// applySavedAddress fills blank shipper fields from a saved address-book
// entry, leaving explicitly provided values alone.
func applySavedAddress(p *ports.PartyInput, a *domain.Address) {
	if p.Address == "" {
		p.Address = a.Address
	}
	if p.Country == "" {
		p.Country = a.Country
	}
	if p.City == "" {
		p.City = a.City
	}
	if p.ZipCode == "" {
		p.ZipCode = a.ZipCode
	}
	if p.ContactNumber == "" {
		p.ContactNumber = a.ContactNumber
	}
	if p.MobileNumber == "" {
		p.MobileNumber = a.MobileNumber
	}
}
