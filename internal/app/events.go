package app

import (
	"sync"

	"github.com/rs/zerolog"
)

// AuthEventKind names an auth-state transition.
type AuthEventKind string

const (
	SignedIn  AuthEventKind = "signed_in"
	SignedOut AuthEventKind = "signed_out"
)

// AuthEvent is delivered to subscribers on every sign-in and sign-out.
type AuthEvent struct {
	Kind   AuthEventKind
	UserID string
	Email  string
}

const subscriberBuffer = 64

// Broker fans auth events out to subscribers. Publish never blocks the
// auth path: a subscriber that cannot keep up loses events, and the
// controller re-synchronises lazily on the next request anyway.
type Broker struct {
	mu   sync.RWMutex
	subs []chan AuthEvent
	log  zerolog.Logger
}

func NewBroker(log zerolog.Logger) *Broker {
	return &Broker{log: log}
}

// Subscribe registers a new subscriber channel.
func (b *Broker) Subscribe() <-chan AuthEvent {
	ch := make(chan AuthEvent, subscriberBuffer)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish delivers the event to every subscriber without blocking.
func (b *Broker) Publish(ev AuthEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
			b.log.Warn().Str("kind", string(ev.Kind)).Str("user_id", ev.UserID).Msg("auth event dropped, subscriber full")
		}
	}
}
