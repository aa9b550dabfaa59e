package handler

import (
	"context"
	"errors"

	"github.com/vigilia/contracts-api/internal/api/metrics"
	"github.com/vigilia/contracts-api/internal/core/domain"
)

// SubmitGuard serialises submits per user and action, the server-side
// equivalent of disabling a control while its request runs.
type SubmitGuard interface {
	Acquire(ctx context.Context, userID, action string) (string, error)
	Release(ctx context.Context, userID, action, token string) error
}

// acquireSubmit takes the guard for an action and returns the release
// function. The release runs on every exit path, success or failure, so no
// action can stay locked behind a failed submit.
func acquireSubmit(ctx context.Context, guard SubmitGuard, userID, action string) (release func(), err error) {
	token, err := guard.Acquire(ctx, userID, action)
	if err != nil {
		if errors.Is(err, domain.ErrActionInFlight) {
			metrics.SubmitsBlockedTotal.WithLabelValues(action).Inc()
		}
		return nil, err
	}
	return func() { _ = guard.Release(ctx, userID, action, token) }, nil
}
