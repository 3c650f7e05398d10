// package memgate is the in-process implementation of the submission rate
// governor
package memgate

import (
	"context"
	"sync"
	"time"

	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
)

var _ secondary.SubmissionGate = (*Gate)(nil)

// Gate keeps the timestamps of recently admitted submissions per session
// and admits a call only while fewer than limit remain inside the rolling
// window.
type Gate struct {
	mu      sync.Mutex
	window  time.Duration
	limit   int
	recents map[string][]time.Time
	now     func() time.Time
}

// NewGate creates a new in-memory submission gate
func NewGate(window time.Duration, limit int) *Gate {
	return &Gate{
		window:  window,
		limit:   limit,
		recents: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Allow admits and records the call, or rejects it without mutating the
// window
func (g *Gate) Allow(_ context.Context, sessionID string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	cutoff := now.Add(-g.window)

	recent := g.recents[sessionID][:0]
	for _, t := range g.recents[sessionID] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= g.limit {
		g.recents[sessionID] = recent
		return false, nil
	}

	g.recents[sessionID] = append(recent, now)
	return true, nil
}

// Forget drops a session's window, called when the session disconnects
func (g *Gate) Forget(_ context.Context, sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.recents, sessionID)
}
