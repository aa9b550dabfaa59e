package ports

import (
	"context"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

// AuthService implements registration and login against the user store.
// Register signs the new user in immediately and returns a token alongside
// the created user.
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
