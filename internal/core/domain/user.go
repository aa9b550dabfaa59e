package domain

import (
	"errors"
	"time"
)

// MinPasswordLength mirrors the identity provider's weak-password rule.
const MinPasswordLength = 6

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrEmailInUse = errors.New("email already in use")
var ErrWeakPassword = errors.New("weak password")
var ErrUserNotFound = errors.New("user not found")
var ErrNotAuthenticated = errors.New("not authenticated")

// User models an authenticated account holder. Addresses and contracts are
// owned by exactly one user and every read and write is scoped to that owner.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
