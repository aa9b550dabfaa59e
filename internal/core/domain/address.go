package domain

import (
	"errors"
	"time"
)

var ErrInvalidAddress = errors.New("invalid address")

// Address is a registered location a contract can be attached to.
// UserID is used for ownership checks but never serialised to API responses.
type Address struct {
	ID        string    `json:"id"`
	Alias     string    `json:"alias"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	UserID    string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
