package secondary

import (
	"context"

	"gitlab.com/codeduel-2025.net/internal/domain"
)

// CodeExecutor runs a piece of code against one stdin input in the external
// judge sandbox. Implementations convert transport and timeout failures into
// an internal-error shaped result instead of returning them, so a broken
// judge degrades a single test run and never aborts a duel flow.
type CodeExecutor interface {
	Execute(ctx context.Context, code string, languageID int, stdin string) *domain.ExecutionResult
}
