package primary

import "context"

// EventHandler defines an interface for handling one client event type
type EventHandler interface {
	HandleEvent(ctx context.Context, sessionID string, payload []byte) error
}
