package memstate

import (
	"sync"

	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
)

var _ secondary.QueueStore = (*Queue)(nil)

// Queue implements the QueueStore interface with a slice kept in join
// order
type Queue struct {
	mu      sync.RWMutex
	entries []*domain.QueueEntry
}

// NewQueue creates a new in-memory matchmaking queue store
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends an entry unless the session is already queued
func (q *Queue) Enqueue(entry *domain.QueueEntry) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, e := range q.entries {
		if e.SessionID == entry.SessionID {
			return false
		}
	}
	q.entries = append(q.entries, entry)
	return true
}

// Remove deletes the session's entry, preserving the order of the rest
func (q *Queue) Remove(sessionID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range q.entries {
		if e.SessionID == sessionID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a snapshot of all entries in join order
func (q *Queue) Entries() []*domain.QueueEntry {
	q.mu.RLock()
	defer q.mu.RUnlock()

	snapshot := make([]*domain.QueueEntry, len(q.entries))
	copy(snapshot, q.entries)
	return snapshot
}

func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return len(q.entries)
}
