package duel

import "context"

// IDuelService defines the interface for running and scoring code inside
// an active duel
type IDuelService interface {
	// Run executes code against the visible test cases only; the outcome
	// is private to the caller and never counts toward the reveal.
	Run(ctx context.Context, sessionID, code, language string) error

	// Submit executes code against the full test-case set and records the
	// scored submission; the second scored submission triggers the reveal.
	Submit(ctx context.Context, sessionID, code, language string) error
}
