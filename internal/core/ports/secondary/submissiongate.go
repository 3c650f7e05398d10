package secondary

import "context"

// SubmissionGate is the sliding-window admission control for scoring
// submissions, keyed by session id and independent of rooms. Allow admits
// the call and records it, or rejects it leaving the window untouched.
type SubmissionGate interface {
	Allow(ctx context.Context, sessionID string) (bool, error)

	// Forget discards the session's window when the session goes away, so
	// churning sessions do not accumulate state. Best effort; failures are
	// the adapter's to log.
	Forget(ctx context.Context, sessionID string)
}
