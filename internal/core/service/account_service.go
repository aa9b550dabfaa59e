package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/vigilia/contracts-api/internal/core/domain"
	"github.com/vigilia/contracts-api/internal/core/ports"
)

// AccountService assembles the per-user snapshot the client renders from.
type AccountService struct {
	catalog   ports.CatalogRepository
	addresses ports.AddressRepository
	contracts ports.ContractRepository
	log       zerolog.Logger
}

func NewAccountService(
	catalog ports.CatalogRepository,
	addresses ports.AddressRepository,
	contracts ports.ContractRepository,
	log zerolog.Logger,
) *AccountService {
	return &AccountService{catalog: catalog, addresses: addresses, contracts: contracts, log: log}
}

// Snapshot reads the catalog, the user's addresses, and the user's contracts
// concurrently. The three reads are independent and may complete in any
// order; the first error wins and the call fails as a whole.
func (s *AccountService) Snapshot(ctx context.Context, userID string) (*ports.AccountSnapshot, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	var (
		snap ports.AccountSnapshot
		errs [3]error
		wg   sync.WaitGroup
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Services, errs[0] = s.catalog.ListServices(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Addresses, errs[1] = s.addresses.ListByUser(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		snap.Contracts, errs[2] = s.contracts.ListByUser(ctx, userID)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			s.log.Error().Err(err).Str("user_id", userID).Msg("account snapshot failed")
			return nil, err
		}
	}

	// Empty collections render as empty arrays, never null.
	if snap.Services == nil {
		snap.Services = []domain.Service{}
	}
	if snap.Addresses == nil {
		snap.Addresses = []domain.Address{}
	}
	if snap.Contracts == nil {
		snap.Contracts = []domain.Contract{}
	}

	return &snap, nil
}
