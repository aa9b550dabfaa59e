package ports

import "context"

// CreateAddressInput carries the address form fields plus the owner.
type CreateAddressInput struct {
	UserID string
	Alias  string
	Street string
	City   string
}

// AddressService defines the address use cases. Create is fire-and-forget
// from the caller's perspective: the client re-fetches its snapshot to
// observe the new address.
type AddressService interface {
	Create(ctx context.Context, input CreateAddressInput) error
}
