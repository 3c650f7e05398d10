package matchmaking

import (
	"context"

	"gitlab.com/codeduel-2025.net/internal/domain"
)

// IMatchmakingService defines the interface for the quick-match queue
type IMatchmakingService interface {
	// JoinQueue enqueues a session and pairs it immediately when a
	// compatible opponent is waiting
	JoinQueue(ctx context.Context, sessionID string, difficulty domain.Difficulty)

	// LeaveQueue removes a session from the queue
	LeaveQueue(sessionID string)
}
