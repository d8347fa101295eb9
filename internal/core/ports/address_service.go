package ports

import (
	"context"

	"github.com/cargobook/booking-system/internal/core/domain"
)

// CreateAddressInput carries the fields for a new address-book entry.
type CreateAddressInput struct {
	Username      string
	Address       string
	Country       string
	City          string
	ZipCode       string
	Location      string
	ContactNumber string
	MobileNumber  string
	Default       bool
}

// AddressService manages a user's address book. At most one entry per user is
// flagged default; making an entry the default clears the previous one for
// that user only.
type AddressService interface {
	CreateAddress(ctx context.Context, input CreateAddressInput) (*domain.Address, error)
	ListAddresses(ctx context.Context, username string) ([]*domain.Address, error)
	SetDefaultAddress(ctx context.Context, username, uuid string) error
}
