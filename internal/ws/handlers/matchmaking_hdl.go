package handlers

import (
	"context"
	"encoding/json"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/core/services/matchmaking"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/ws/defs"
)

// JoinQueueHandler handles join_queue events
type JoinQueueHandler struct {
	MatchmakingService matchmaking.IMatchmakingService
	Notifier           secondary.Notifier
	Logger             primary.Logger
}

// HandleEvent implements the EventHandler interface
func (h *JoinQueueHandler) HandleEvent(ctx context.Context, sessionID string, payload []byte) error {
	var data defs.JoinQueueData
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &data); err != nil {
			h.Logger.Warn("Invalid join_queue payload", "sessionId", sessionID, "error", err)
			h.Notifier.Notify(sessionID, domain.EventRoomError, domain.ErrorData{Message: "Invalid message data"})
			return err
		}
	}

	h.MatchmakingService.JoinQueue(ctx, sessionID, domain.Difficulty(data.Difficulty))
	return nil
}

// LeaveQueueHandler handles leave_queue events
type LeaveQueueHandler struct {
	MatchmakingService matchmaking.IMatchmakingService
	Logger             primary.Logger
}

// HandleEvent implements the EventHandler interface
func (h *LeaveQueueHandler) HandleEvent(_ context.Context, sessionID string, _ []byte) error {
	h.MatchmakingService.LeaveQueue(sessionID)
	return nil
}
