package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vigilia/contracts-api/internal/core/domain"
	"github.com/vigilia/contracts-api/internal/core/ports"
)

// ContractService implements the contract lifecycle: create, renew, delete.
type ContractService struct {
	contracts ports.ContractRepository
	catalog   ports.CatalogRepository
	addresses ports.AddressRepository
	log       zerolog.Logger
}

func NewContractService(
	contracts ports.ContractRepository,
	catalog ports.CatalogRepository,
	addresses ports.AddressRepository,
	log zerolog.Logger,
) *ContractService {
	return &ContractService{contracts: contracts, catalog: catalog, addresses: addresses, log: log}
}

// Create signs a one-year contract for the selected services at the given
// address. Service prices, the address alias, and the owner email are copied
// into the contract so later catalog or address edits never rewrite history.
func (s *ContractService) Create(ctx context.Context, input ports.CreateContractInput) (*domain.Contract, error) {
	if input.UserID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	catalog, err := s.catalog.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Service, len(catalog))
	for _, svc := range catalog {
		byID[svc.ID] = svc
	}

	seen := make(map[string]struct{}, len(input.ServiceIDs))
	selected := make([]domain.Service, 0, len(input.ServiceIDs))
	var total int64
	for _, id := range input.ServiceIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		svc, ok := byID[id]
		if !ok {
			// A stale id means the client's catalog view and ours disagree;
			// silently shrinking the bundle would bill for less than the
			// user believes they selected.
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownService, id)
		}
		selected = append(selected, svc)
		total += svc.Price
	}

	addr, err := s.addresses.FindByID(ctx, input.AddressID)
	if err != nil {
		return nil, err
	}
	if addr.UserID != input.UserID {
		return nil, domain.ErrInvalidAddress
	}

	now := time.Now().UTC()
	contract := &domain.Contract{
		UserID:       input.UserID,
		UserEmail:    input.UserEmail,
		Status:       domain.StatusActive,
		Services:     selected,
		AddressID:    addr.ID,
		AddressAlias: addr.Alias,
		TotalPrice:   total,
		StartDate:    now,
		EndDate:      domain.AddCalendarYear(now),
	}

	if err := s.contracts.Create(ctx, contract); err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create contract")
		return nil, err
	}

	s.log.Info().
		Str("contract_id", contract.ID).
		Str("user_id", input.UserID).
		Int("services", len(selected)).
		Int64("total_price", total).
		Msg("contract created")

	return contract, nil
}

// Get retrieves an owned contract.
func (s *ContractService) Get(ctx context.Context, contractID, userID string) (*domain.Contract, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}
	return s.contracts.FindOwned(ctx, contractID, userID)
}

// Renew extends an owned contract's end date by one calendar year and marks
// it Renewed. Contracts owned by other users are reported as not found.
func (s *ContractService) Renew(ctx context.Context, contractID, userID string) (*domain.Contract, error) {
	if userID == "" {
		return nil, domain.ErrNotAuthenticated
	}

	contract, err := s.contracts.FindOwned(ctx, contractID, userID)
	if err != nil {
		return nil, err
	}

	newEnd := domain.AddCalendarYear(contract.EndDate)
	if err := s.contracts.MarkRenewed(ctx, contractID, userID, newEnd); err != nil {
		s.log.Error().Err(err).Str("contract_id", contractID).Msg("failed to renew contract")
		return nil, err
	}

	contract.EndDate = newEnd
	contract.Status = domain.StatusRenewed

	s.log.Info().
		Str("contract_id", contractID).
		Str("user_id", userID).
		Time("end_date", newEnd).
		Msg("contract renewed")

	return contract, nil
}

// Delete removes an owned contract.
func (s *ContractService) Delete(ctx context.Context, contractID, userID string) error {
	if userID == "" {
		return domain.ErrNotAuthenticated
	}

	if err := s.contracts.Delete(ctx, contractID, userID); err != nil {
		return err
	}

	s.log.Info().Str("contract_id", contractID).Str("user_id", userID).Msg("contract deleted")
	return nil
}
