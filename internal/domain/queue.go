package domain

import "time"

// Difficulty is a problem difficulty class or the wildcard "any"
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyAny    Difficulty = "any"
)

// Valid reports whether d is one of the four accepted values
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyAny:
		return true
	}
	return false
}

// QueueEntry represents a session waiting in the matchmaking queue
type QueueEntry struct {
	SessionID  string
	Difficulty Difficulty
	JoinedAt   time.Time
}

// Compatible reports whether two queue entries can be paired: either side
// picked "any", or both picked the same class.
func (e *QueueEntry) Compatible(other *QueueEntry) bool {
	return e.Difficulty == DifficultyAny ||
		other.Difficulty == DifficultyAny ||
		e.Difficulty == other.Difficulty
}
