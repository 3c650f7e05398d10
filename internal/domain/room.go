package domain

import "time"

// MaxRoomPlayers caps room membership; duels are strictly 1v1
const MaxRoomPlayers = 2

// Room is a host-owned custom room identified by a short code. Quick-match
// rooms never pass through this shape: they are born started and live only
// as a Duel.
type Room struct {
	ID         string
	Host       string
	Players    []string
	Difficulty Difficulty
	CreatedAt  time.Time
}

// HasPlayer reports whether sessionID is a member of the room
func (r *Room) HasPlayer(sessionID string) bool {
	for _, p := range r.Players {
		if p == sessionID {
			return true
		}
	}
	return false
}

// IsFull reports whether the room has reached the member cap
func (r *Room) IsFull() bool {
	return len(r.Players) >= MaxRoomPlayers
}

// RemovePlayer removes sessionID from the member list, preserving order,
// and reports whether it was present.
func (r *Room) RemovePlayer(sessionID string) bool {
	for i, p := range r.Players {
		if p == sessionID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

// Duel is the started-room state: the assigned problem and the submission
// set, keyed by the same id the room carried. The problem never changes
// after assignment, and Revealed flips to true at most once.
type Duel struct {
	RoomID      string
	ProblemID   string
	Submissions map[string]*Submission
	Revealed    bool
	StartedAt   time.Time
}
