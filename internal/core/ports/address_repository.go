package ports

import (
	"context"

	"github.com/cargobook/booking-system/internal/core/domain"
)

// AddressRepository defines persistence operations for address-book entries.
// All lookups are scoped by username; cross-user access is structurally
// impossible at this layer.
type AddressRepository interface {
	Create(ctx context.Context, a *domain.Address) error
	FindByUUID(ctx context.Context, username, uuid string) (*domain.Address, error)
	ListByUser(ctx context.Context, username string) ([]*domain.Address, error)
	// ClearDefault unsets the default flag on every address of the user
	// except the one identified by exceptUUID (pass "" to clear all).
	ClearDefault(ctx context.Context, username, exceptUUID string) error
	// SetDefault flags the given address as the user's default.
	SetDefault(ctx context.Context, username, uuid string) error
}
