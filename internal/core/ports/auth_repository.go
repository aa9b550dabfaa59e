package ports

import (
	"context"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

// AuthRepository defines persistence for user accounts.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Create inserts the user and returns it with its store-assigned id.
	// Returns domain.ErrEmailInUse when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
