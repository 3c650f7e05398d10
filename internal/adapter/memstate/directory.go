// package memstate contains the in-memory implementations of the duel
// server's state stores. State lives only for the lifetime of the process.
package memstate

import (
	"sync"
	"time"

	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
)

var _ secondary.SessionDirectory = (*SessionDirectory)(nil)

// SessionDirectory implements the SessionDirectory interface with a locked
// map
type SessionDirectory struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

// NewSessionDirectory creates a new in-memory session directory
func NewSessionDirectory() *SessionDirectory {
	return &SessionDirectory{
		sessions: make(map[string]*domain.Session),
	}
}

// Register records a newly connected session
func (d *SessionDirectory) Register(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.sessions[sessionID]; exists {
		return
	}
	d.sessions[sessionID] = &domain.Session{
		ID:          sessionID,
		ConnectedAt: time.Now(),
	}
}

// Registered reports whether the session is currently known
func (d *SessionDirectory) Registered(sessionID string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, exists := d.sessions[sessionID]
	return exists
}

// RoomOf returns the room the session is bound to, if any
func (d *SessionDirectory) RoomOf(sessionID string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	sess, exists := d.sessions[sessionID]
	if !exists || sess.RoomID == "" {
		return "", false
	}
	return sess.RoomID, true
}

// BindRoom binds the session to a room, replacing any previous binding
func (d *SessionDirectory) BindRoom(sessionID, roomID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if sess, exists := d.sessions[sessionID]; exists {
		sess.RoomID = roomID
	}
}

// UnbindRoom clears the session's room binding
func (d *SessionDirectory) UnbindRoom(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if sess, exists := d.sessions[sessionID]; exists {
		sess.RoomID = ""
	}
}

// SessionsInRoom returns all sessions currently bound to roomID
func (d *SessionDirectory) SessionsInRoom(roomID string) []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	members := make([]string, 0, domain.MaxRoomPlayers)
	for id, sess := range d.sessions {
		if sess.RoomID == roomID {
			members = append(members, id)
		}
	}
	return members
}

// Remove deletes the session entirely
func (d *SessionDirectory) Remove(sessionID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.sessions, sessionID)
}
