package handlers

import (
	"context"
	"encoding/json"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/core/services/duel"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/ws/defs"
)

// RunCodeHandler handles run_code events
type RunCodeHandler struct {
	DuelService duel.IDuelService
	Notifier    secondary.Notifier
	Logger      primary.Logger
}

// HandleEvent implements the EventHandler interface
func (h *RunCodeHandler) HandleEvent(ctx context.Context, sessionID string, payload []byte) error {
	var data defs.CodeData
	if err := json.Unmarshal(payload, &data); err != nil {
		h.Logger.Warn("Invalid run_code payload", "sessionId", sessionID, "error", err)
		h.Notifier.Notify(sessionID, domain.EventSubmissionError, domain.ErrorData{Message: "Invalid message data"})
		return err
	}

	if err := h.DuelService.Run(ctx, sessionID, data.Code, data.Language); err != nil {
		h.Notifier.Notify(sessionID, domain.EventSubmissionError, domain.ErrorData{Message: err.Error()})
		return err
	}
	return nil
}

// SubmitCodeHandler handles submit_code events
type SubmitCodeHandler struct {
	DuelService duel.IDuelService
	Notifier    secondary.Notifier
	Logger      primary.Logger
}

// HandleEvent implements the EventHandler interface
func (h *SubmitCodeHandler) HandleEvent(ctx context.Context, sessionID string, payload []byte) error {
	var data defs.CodeData
	if err := json.Unmarshal(payload, &data); err != nil {
		h.Logger.Warn("Invalid submit_code payload", "sessionId", sessionID, "error", err)
		h.Notifier.Notify(sessionID, domain.EventSubmissionError, domain.ErrorData{Message: "Invalid message data"})
		return err
	}

	if err := h.DuelService.Submit(ctx, sessionID, data.Code, data.Language); err != nil {
		h.Notifier.Notify(sessionID, domain.EventSubmissionError, domain.ErrorData{Message: err.Error()})
		return err
	}
	return nil
}
