package ports

import (
	"context"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

// AccountSnapshot is everything the client renders from: the global catalog
// plus the caller's own addresses and contracts. Slices are never nil, so an
// account with nothing yet still serialises as empty arrays.
type AccountSnapshot struct {
	Services  []domain.Service  `json:"services"`
	Addresses []domain.Address  `json:"addresses"`
	Contracts []domain.Contract `json:"contracts"`
}

// AccountService assembles the per-user account snapshot.
type AccountService interface {
	// Snapshot issues the three collection reads concurrently and waits for
	// all of them. Addresses and contracts are scoped to userID.
	Snapshot(ctx context.Context, userID string) (*AccountSnapshot, error)
}
