package app

import (
	"context"

	"github.com/rs/zerolog"
)

// Controller keeps the session store in step with auth-state transitions: a
// sign-in installs a fresh session at the home view, a sign-out destroys
// whatever state the previous session left so it can never render again.
type Controller struct {
	store Store
	log   zerolog.Logger
}

func NewController(store Store, log zerolog.Logger) *Controller {
	return &Controller{store: store, log: log}
}

// Run consumes auth events until ctx is cancelled. It is idempotent per
// event: replaying a sign-in just reinstalls the same fresh session.
func (c *Controller) Run(ctx context.Context, events <-chan AuthEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			c.handle(ctx, ev)
		}
	}
}

func (c *Controller) handle(ctx context.Context, ev AuthEvent) {
	switch ev.Kind {
	case SignedIn:
		if err := c.store.Save(ctx, NewSession(ev.UserID, ev.Email)); err != nil {
			c.log.Error().Err(err).Str("user_id", ev.UserID).Msg("failed to install session")
			return
		}
		c.log.Debug().Str("user_id", ev.UserID).Msg("session installed")
	case SignedOut:
		if err := c.store.Delete(ctx, ev.UserID); err != nil && err != ErrSessionNotFound {
			c.log.Error().Err(err).Str("user_id", ev.UserID).Msg("failed to clear session")
			return
		}
		c.log.Debug().Str("user_id", ev.UserID).Msg("session cleared")
	}
}
