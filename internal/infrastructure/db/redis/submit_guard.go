package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vigilia/contracts-api/internal/core/domain"
)

// guardTTL bounds how long a crashed submit can keep its action locked.
const guardTTL = 30 * time.Second

// SubmitGuard is the server-side version of disabling a submit control
// while its request runs: per user and action, only one submit may be in
// flight. Key format: submit:<user_id>:<action>
type SubmitGuard struct {
	client *redis.Client
}

func NewSubmitGuard(client *redis.Client) *SubmitGuard {
	return &SubmitGuard{client: client}
}

// Acquire takes the lock for (userID, action) and returns a release token.
// Returns domain.ErrActionInFlight when the same action is already running.
func (g *SubmitGuard) Acquire(ctx context.Context, userID, action string) (string, error) {
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, g.key(userID, action), token, guardTTL).Result()
	if err != nil {
		return "", fmt.Errorf("submit guard acquire: %w", err)
	}
	if !ok {
		return "", domain.ErrActionInFlight
	}
	return token, nil
}

// Release frees the lock if the caller still holds it. The token check
// keeps a slow submit that outlived its TTL from releasing the lock of the
// retry that replaced it.
func (g *SubmitGuard) Release(ctx context.Context, userID, action, token string) error {
	const script = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`
	if err := g.client.Eval(ctx, script, []string{g.key(userID, action)}, token).Err(); err != nil {
		return fmt.Errorf("submit guard release: %w", err)
	}
	return nil
}

func (g *SubmitGuard) key(userID, action string) string {
	return fmt.Sprintf("submit:%s:%s", userID, action)
}
