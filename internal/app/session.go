// Package app holds per-user application state: the current view, the
// in-progress cart, and the transient notice. State transitions are pure
// methods on Session; persistence is behind the Store interface so the
// state survives across stateless HTTP requests.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

// View names one of the navigable screens.
type View string

const (
	ViewHome        View = "home"
	ViewNewContract View = "new-contract"
	ViewMyContracts View = "my-contracts"
	ViewNewAddress  View = "new-address"
)

// ValidView reports whether v names a navigable screen.
func ValidView(v View) bool {
	switch v {
	case ViewHome, ViewNewContract, ViewMyContracts, ViewNewAddress:
		return true
	}
	return false
}

// NoticeTTL is how long a submit outcome stays visible.
const NoticeTTL = 3 * time.Second

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the transient message shown after a submit.
type Notice struct {
	Message   string     `json:"message"`
	Kind      NoticeKind `json:"kind"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Session is one user's transient UI state.
type Session struct {
	UserID string      `json:"user_id"`
	Email  string      `json:"email"`
	View   View        `json:"view"`
	Cart   domain.Cart `json:"cart"`
	Notice *Notice     `json:"notice,omitempty"`
}

// NewSession returns the state a user lands in right after signing in.
func NewSession(userID, email string) *Session {
	return &Session{
		UserID: userID,
		Email:  email,
		View:   ViewHome,
		Cart:   domain.NewCart(),
	}
}

// Navigate switches the current view. Entering the new-contract screen
// always starts from an empty cart; a half-built selection from an earlier
// visit is never carried back in.
func (s *Session) Navigate(v View) {
	if v == ViewNewContract {
		s.Cart.Reset()
	}
	s.View = v
}

// ToggleService flips the selection state of one service in the cart.
func (s *Session) ToggleService(serviceID string, price int64) (selected bool) {
	return s.Cart.Toggle(serviceID, price)
}

// SetNotice replaces the transient notice; it expires NoticeTTL after now.
func (s *Session) SetNotice(message string, kind NoticeKind, now time.Time) {
	s.Notice = &Notice{Message: message, Kind: kind, ExpiresAt: now.Add(NoticeTTL)}
}

// ActiveNotice returns the notice if it has not expired yet. Expired
// notices simply stop rendering; the next SetNotice overwrites them.
func (s *Session) ActiveNotice(now time.Time) *Notice {
	if s.Notice == nil || now.After(s.Notice.ExpiresAt) {
		return nil
	}
	return s.Notice
}

var ErrSessionNotFound = errors.New("session not found")

// Store persists sessions keyed by user id.
type Store interface {
	// Get returns ErrSessionNotFound when the user has no session.
	Get(ctx context.Context, userID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, userID string) error
}
