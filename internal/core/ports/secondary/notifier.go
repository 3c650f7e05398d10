package secondary

// Notifier delivers a server-to-client event to a single session. Sending
// to an unknown or disconnected session is a silent no-op; that is how
// departed participants are absorbed.
type Notifier interface {
	Notify(sessionID string, event string, payload interface{})
}
