// package submissiongate contains the Redis implementation of the
// submission rate governor, for deployments that spread connections over
// several instances.
package submissiongate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
)

const gateKeyPrefix = "submitgate:"

var _ secondary.SubmissionGate = (*Gate)(nil)

// Gate implements the SubmissionGate interface with a Redis sorted set per
// session, scored by submission time.
type Gate struct {
	redisClient *redis.Client
	window      time.Duration
	limit       int
	logger      primary.Logger
}

// NewGate creates a new Redis submission gate
func NewGate(redisClient *redis.Client, window time.Duration, limit int, logger primary.Logger) *Gate {
	return &Gate{
		redisClient: redisClient,
		window:      window,
		limit:       limit,
		logger:      logger,
	}
}

// Allow prunes entries older than the window, then admits and records the
// call only if fewer than the limit remain.
func (g *Gate) Allow(ctx context.Context, sessionID string) (bool, error) {
	key := gateKeyPrefix + sessionID
	now := time.Now()
	cutoff := now.Add(-g.window).UnixNano()

	if err := g.redisClient.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		return false, fmt.Errorf("failed to prune submission window: %w", err)
	}

	count, err := g.redisClient.ZCard(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to count submission window: %w", err)
	}

	if count >= int64(g.limit) {
		return false, nil
	}

	member := &redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	}
	pipe := g.redisClient.TxPipeline()
	pipe.ZAdd(ctx, key, member)
	pipe.Expire(ctx, key, g.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record submission: %w", err)
	}

	return true, nil
}

// Forget drops the session's window key. The key expires on its own anyway,
// so a failure here only delays the cleanup.
func (g *Gate) Forget(ctx context.Context, sessionID string) {
	if err := g.redisClient.Del(ctx, gateKeyPrefix+sessionID).Err(); err != nil {
		g.logger.Warn("Failed to drop submission window", "sessionId", sessionID, "error", err)
	}
}
