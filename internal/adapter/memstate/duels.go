package memstate

import (
	"sync"
	"time"

	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
)

var _ secondary.DuelStore = (*Duels)(nil)

// Duels implements the DuelStore interface. Each exported method takes the
// lock once, making it atomic with respect to the other methods; the
// reveal decision in TryReveal is a single check-and-set under that lock.
type Duels struct {
	mu    sync.Mutex
	duels map[string]*domain.Duel
}

// NewDuels creates a new in-memory duel store
func NewDuels() *Duels {
	return &Duels{
		duels: make(map[string]*domain.Duel),
	}
}

// Create assigns the problem and an empty submission set to roomID. An
// existing duel for the same room is never overwritten.
func (s *Duels) Create(roomID, problemID string, startedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.duels[roomID]; exists {
		return
	}
	s.duels[roomID] = &domain.Duel{
		RoomID:      roomID,
		ProblemID:   problemID,
		Submissions: make(map[string]*domain.Submission),
		StartedAt:   startedAt,
	}
}

func (s *Duels) Exists(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.duels[roomID]
	return exists
}

func (s *Duels) ProblemID(roomID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	duel, exists := s.duels[roomID]
	if !exists {
		return "", false
	}
	return duel.ProblemID, true
}

func (s *Duels) PutSubmission(roomID string, sub *domain.Submission) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	duel, exists := s.duels[roomID]
	if !exists {
		return false
	}
	duel.Submissions[sub.SessionID] = sub
	return true
}

func (s *Duels) AttachResults(roomID, sessionID string, report *domain.TestRunReport) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	duel, exists := s.duels[roomID]
	if !exists {
		return false
	}
	sub, exists := duel.Submissions[sessionID]
	if !exists {
		return false
	}
	sub.Results = report
	return true
}

// Submissions returns a snapshot of the submission set. The submissions
// themselves are shared; callers on the serial queue treat them as
// read-only.
func (s *Duels) Submissions(roomID string) ([]*domain.Submission, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	duel, exists := s.duels[roomID]
	if !exists {
		return nil, false
	}
	subs := make([]*domain.Submission, 0, len(duel.Submissions))
	for _, sub := range duel.Submissions {
		subs = append(subs, sub)
	}
	return subs, true
}

func (s *Duels) SubmissionCount(roomID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	duel, exists := s.duels[roomID]
	if !exists {
		return 0
	}
	return len(duel.Submissions)
}

// TryReveal flips the duel to revealed the first time the submission set is
// full; whether every submission is scored does not matter. Exactly one
// caller ever gets true.
func (s *Duels) TryReveal(roomID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	duel, exists := s.duels[roomID]
	if !exists || duel.Revealed || len(duel.Submissions) != domain.MaxRoomPlayers {
		return false
	}
	duel.Revealed = true
	return true
}

func (s *Duels) Delete(roomID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.duels, roomID)
}
