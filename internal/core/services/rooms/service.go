package rooms

import (
	"context"

	"gitlab.com/codeduel-2025.net/internal/domain"
)

// IRoomService defines the interface for managing custom rooms
type IRoomService interface {
	// Create opens a new room hosted by the session
	Create(sessionID string, difficulty domain.Difficulty) error

	// Join adds the session to an existing room by its code
	Join(sessionID, roomID string) error

	// Leave removes the session from its current room
	Leave(sessionID string) error

	// Start begins the duel; only the host of a full room may call it
	Start(ctx context.Context, sessionID string) error

	// Evict silently removes a disconnecting session from its room
	Evict(sessionID string)

	// SweepIdle discards rooms that sat unstarted past the idle threshold
	SweepIdle()
}
