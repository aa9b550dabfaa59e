package ports

import (
	"context"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

// AddressRepository defines persistence for user addresses.
type AddressRepository interface {
	// Create inserts the address and sets its store-assigned id.
	Create(ctx context.Context, addr *domain.Address) error
	// FindByID retrieves an address regardless of owner; the caller performs
	// the ownership check. Returns domain.ErrInvalidAddress when absent.
	FindByID(ctx context.Context, id string) (*domain.Address, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
}
