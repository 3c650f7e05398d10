package secondary

import (
	"time"

	"gitlab.com/codeduel-2025.net/internal/domain"
)

// SessionDirectory is the authoritative mapping from connection identity to
// room membership. Every other component queries it instead of keeping its
// own copy.
type SessionDirectory interface {
	// Register records a newly connected session
	Register(sessionID string)

	// Registered reports whether the session is currently known
	Registered(sessionID string) bool

	// RoomOf returns the room the session is bound to, if any
	RoomOf(sessionID string) (string, bool)

	// BindRoom binds the session to a room, replacing any previous binding
	BindRoom(sessionID, roomID string)

	// UnbindRoom clears the session's room binding
	UnbindRoom(sessionID string)

	// SessionsInRoom returns all sessions currently bound to roomID
	SessionsInRoom(roomID string) []string

	// Remove deletes the session entirely
	Remove(sessionID string)
}

// QueueStore holds matchmaking queue entries in join order
type QueueStore interface {
	// Enqueue appends an entry; it is a no-op returning false when the
	// session is already queued.
	Enqueue(entry *domain.QueueEntry) bool

	// Remove deletes the session's entry and reports whether it was present
	Remove(sessionID string) bool

	// Entries returns a snapshot of all entries in join order
	Entries() []*domain.QueueEntry
}

// RoomStore holds active custom rooms keyed by room code
type RoomStore interface {
	Save(room *domain.Room)
	Get(roomID string) (*domain.Room, bool)
	Exists(roomID string) bool
	Delete(roomID string)

	// All returns a snapshot of every active custom room
	All() []*domain.Room
}

// DuelStore holds the per-room duel state (problem assignment and
// submission set) for started rooms. Each operation is atomic; callers
// combine them only from the serial task queue.
type DuelStore interface {
	// Create assigns the problem and an empty submission set to roomID.
	// The assignment is immutable afterwards.
	Create(roomID, problemID string, startedAt time.Time)

	Exists(roomID string) bool

	// ProblemID returns the problem assigned to roomID
	ProblemID(roomID string) (string, bool)

	// PutSubmission records a submission for its session; false means the
	// duel no longer exists and the caller must treat it as a benign race.
	PutSubmission(roomID string, sub *domain.Submission) bool

	// AttachResults sets the scored report on the session's stored
	// submission; false means the duel or submission is gone.
	AttachResults(roomID, sessionID string, report *domain.TestRunReport) bool

	// Submissions returns a snapshot of the submission set
	Submissions(roomID string) ([]*domain.Submission, bool)

	// TryReveal atomically flips the duel to revealed when the submission
	// set holds both entries and no reveal happened before. A submission
	// whose verdict is still pending counts; exactly one caller ever gets
	// true for a given room.
	TryReveal(roomID string) bool

	Delete(roomID string)
}
