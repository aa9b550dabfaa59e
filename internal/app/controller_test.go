package app

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestController_SignInInstallsFreshSession(t *testing.T) {
	store := newStubStore()
	// A previous session with leftover state must be replaced wholesale.
	stale := NewSession("u1", "a@x.com")
	stale.Navigate(ViewNewContract)
	stale.ToggleService("svc_alarm", 1000)
	_ = store.Save(context.Background(), stale)

	c := NewController(store, zerolog.Nop())
	c.handle(context.Background(), AuthEvent{Kind: SignedIn, UserID: "u1", Email: "a@x.com"})

	sess, err := store.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected session: %v", err)
	}
	if sess.View != ViewHome || sess.Cart.Size() != 0 {
		t.Fatalf("expected fresh home session, got view=%s cart=%d", sess.View, sess.Cart.Size())
	}
}

func TestController_SignOutClearsSession(t *testing.T) {
	store := newStubStore()
	_ = store.Save(context.Background(), NewSession("u1", "a@x.com"))

	c := NewController(store, zerolog.Nop())
	c.handle(context.Background(), AuthEvent{Kind: SignedOut, UserID: "u1"})

	if _, err := store.Get(context.Background(), "u1"); err != ErrSessionNotFound {
		t.Fatalf("expected session gone, got %v", err)
	}

	// Signing out twice is harmless.
	c.handle(context.Background(), AuthEvent{Kind: SignedOut, UserID: "u1"})
}

func TestController_RunConsumesBrokerEvents(t *testing.T) {
	store := newStubStore()
	broker := NewBroker(zerolog.Nop())
	events := broker.Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewController(store, zerolog.Nop())
	done := make(chan struct{})
	go func() {
		c.Run(ctx, events)
		close(done)
	}()

	broker.Publish(AuthEvent{Kind: SignedIn, UserID: "u1", Email: "a@x.com"})

	deadline := time.After(2 * time.Second)
	for {
		if _, err := store.Get(context.Background(), "u1"); err == nil {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("session never installed")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not stop on cancel")
	}
}
