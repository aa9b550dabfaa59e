package ports

import (
	"context"
	"time"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

// ContractRepository defines persistence for contracts. Every lookup that
// names a contract id is owner-scoped: a contract belonging to another user
// is indistinguishable from a missing one.
type ContractRepository interface {
	// Create inserts the contract and sets its store-assigned id.
	Create(ctx context.Context, c *domain.Contract) error
	ListByUser(ctx context.Context, userID string) ([]domain.Contract, error)
	// FindOwned returns domain.ErrContractNotFound when the contract is
	// absent or owned by a different user.
	FindOwned(ctx context.Context, id, userID string) (*domain.Contract, error)
	// MarkRenewed persists the extended end date and the Renewed status.
	MarkRenewed(ctx context.Context, id, userID string, endDate time.Time) error
	// Delete removes an owned contract; domain.ErrContractNotFound when no
	// owned contract matches.
	Delete(ctx context.Context, id, userID string) error
}
