package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vigilia/contracts-api/internal/core/domain"
	"github.com/vigilia/contracts-api/internal/core/ports"
)

// AddressService implements address registration.
type AddressService struct {
	repo ports.AddressRepository
	log  zerolog.Logger
}

func NewAddressService(repo ports.AddressRepository, log zerolog.Logger) *AddressService {
	return &AddressService{repo: repo, log: log}
}

func (s *AddressService) Create(ctx context.Context, input ports.CreateAddressInput) error {
	if input.UserID == "" {
		return domain.ErrNotAuthenticated
	}

	addr := &domain.Address{
		Alias:     input.Alias,
		Street:    input.Street,
		City:      input.City,
		UserID:    input.UserID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		s.log.Error().Err(err).Str("user_id", input.UserID).Msg("failed to create address")
		return err
	}

	s.log.Info().Str("address_id", addr.ID).Str("user_id", input.UserID).Str("alias", addr.Alias).Msg("address created")
	return nil
}
