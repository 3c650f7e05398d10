package handlers

import (
	"context"
	"encoding/json"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/core/services/rooms"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/ws/defs"
)

// CreateRoomHandler handles create_room events
type CreateRoomHandler struct {
	RoomService rooms.IRoomService
	Notifier    secondary.Notifier
	Logger      primary.Logger
}

// HandleEvent implements the EventHandler interface
func (h *CreateRoomHandler) HandleEvent(_ context.Context, sessionID string, payload []byte) error {
	var data defs.CreateRoomData
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &data); err != nil {
			h.Logger.Warn("Invalid create_room payload", "sessionId", sessionID, "error", err)
			h.Notifier.Notify(sessionID, domain.EventRoomError, domain.ErrorData{Message: "Invalid message data"})
			return err
		}
	}

	if err := h.RoomService.Create(sessionID, domain.Difficulty(data.Difficulty)); err != nil {
		h.Notifier.Notify(sessionID, domain.EventRoomError, domain.ErrorData{Message: err.Error()})
		return err
	}
	return nil
}

// JoinRoomHandler handles join_room events
type JoinRoomHandler struct {
	RoomService rooms.IRoomService
	Notifier    secondary.Notifier
	Logger      primary.Logger
}

// HandleEvent implements the EventHandler interface
func (h *JoinRoomHandler) HandleEvent(_ context.Context, sessionID string, payload []byte) error {
	var data defs.JoinRoomData
	if err := json.Unmarshal(payload, &data); err != nil {
		h.Logger.Warn("Invalid join_room payload", "sessionId", sessionID, "error", err)
		h.Notifier.Notify(sessionID, domain.EventRoomError, domain.ErrorData{Message: "Invalid message data"})
		return err
	}

	if err := h.RoomService.Join(sessionID, data.RoomCode); err != nil {
		h.Notifier.Notify(sessionID, domain.EventRoomError, domain.ErrorData{Message: err.Error()})
		return err
	}
	return nil
}

// LeaveRoomHandler handles leave_room events
type LeaveRoomHandler struct {
	RoomService rooms.IRoomService
	Notifier    secondary.Notifier
	Logger      primary.Logger
}

// HandleEvent implements the EventHandler interface
func (h *LeaveRoomHandler) HandleEvent(_ context.Context, sessionID string, _ []byte) error {
	if err := h.RoomService.Leave(sessionID); err != nil {
		h.Notifier.Notify(sessionID, domain.EventRoomError, domain.ErrorData{Message: err.Error()})
		return err
	}
	return nil
}

// StartRoomMatchHandler handles start_room_match events
type StartRoomMatchHandler struct {
	RoomService rooms.IRoomService
	Notifier    secondary.Notifier
	Logger      primary.Logger
}

// HandleEvent implements the EventHandler interface
func (h *StartRoomMatchHandler) HandleEvent(ctx context.Context, sessionID string, _ []byte) error {
	if err := h.RoomService.Start(ctx, sessionID); err != nil {
		h.Notifier.Notify(sessionID, domain.EventRoomError, domain.ErrorData{Message: err.Error()})
		return err
	}
	return nil
}
