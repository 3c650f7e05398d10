package session

// ISessionService defines the interface for session lifecycle
type ISessionService interface {
	// Register records a newly connected session
	Register(sessionID string)

	// Teardown cascade-clears everything bound to a departed session:
	// its queue entry, its room membership and its side of any duel.
	// Calling it for an unknown session is a no-op.
	Teardown(sessionID string)
}
