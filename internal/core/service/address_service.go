package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cargobook/booking-system/internal/core/domain"
	"github.com/cargobook/booking-system/internal/core/ports"
)

type addressService struct {
	repo ports.AddressRepository
	log  zerolog.Logger
}

// NewAddressService returns the AddressService implementation.
func NewAddressService(repo ports.AddressRepository, log zerolog.Logger) ports.AddressService {
	return &addressService{repo: repo, log: log}
}

func (s *addressService) CreateAddress(ctx context.Context, input ports.CreateAddressInput) (*domain.Address, error) {
	now := time.Now().UTC()
	addr := &domain.Address{
		UUID:          uuid.NewString(),
		Username:      input.Username,
		Address:       input.Address,
		Country:       input.Country,
		City:          input.City,
		ZipCode:       input.ZipCode,
		Location:      input.Location,
		ContactNumber: input.ContactNumber,
		MobileNumber:  input.MobileNumber,
		Default:       input.Default,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// A new default displaces the previous one for this user only. The old
	// default is cleared before the insert, so a reader never observes two
	// defaults at once.
	if addr.Default {
		if err := s.repo.ClearDefault(ctx, input.Username, ""); err != nil {
			return nil, fmt.Errorf("create address: %w", err)
		}
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	s.log.Info().Str("username", input.Username).Str("address_uuid", addr.UUID).Msg("address created")
	return addr, nil
}

func (s *addressService) ListAddresses(ctx context.Context, username string) ([]*domain.Address, error) {
	return s.repo.ListByUser(ctx, username)
}

// SetDefaultAddress makes the named entry the user's single default. The
// previous default is cleared first, so at no point do two defaults exist.
func (s *addressService) SetDefaultAddress(ctx context.Context, username, id string) error {
	if _, err := s.repo.FindByUUID(ctx, username, id); err != nil {
		return err
	}
	if err := s.repo.ClearDefault(ctx, username, id); err != nil {
		return fmt.Errorf("set default address: %w", err)
	}
	if err := s.repo.SetDefault(ctx, username, id); err != nil {
		return fmt.Errorf("set default address: %w", err)
	}
	return nil
}
