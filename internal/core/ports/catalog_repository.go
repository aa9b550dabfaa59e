package ports

import (
	"context"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

// CatalogRepository reads the global service catalog. The catalog is
// read-only for the application; seeding is an infrastructure concern.
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]domain.Service, error)
}
