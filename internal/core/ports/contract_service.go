package ports

import (
	"context"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

// CreateContractInput carries everything needed to sign a new contract.
type CreateContractInput struct {
	UserID     string
	UserEmail  string
	ServiceIDs []string
	AddressID  string
}

// ContractService defines the contract lifecycle use cases.
type ContractService interface {
	// Create resolves the requested services against the catalog, validates
	// address ownership, and persists a one-year Active contract with
	// denormalised service snapshots. Unknown service ids fail with
	// domain.ErrUnknownService; an address that is missing or not owned by
	// the caller fails with domain.ErrInvalidAddress.
	Create(ctx context.Context, input CreateContractInput) (*domain.Contract, error)
	// Get retrieves an owned contract for the details overlay.
	Get(ctx context.Context, contractID, userID string) (*domain.Contract, error)
	// Renew extends an owned contract's end date by one calendar year and
	// marks it Renewed.
	Renew(ctx context.Context, contractID, userID string) (*domain.Contract, error)
	// Delete removes an owned contract.
	Delete(ctx context.Context, contractID, userID string) error
}
