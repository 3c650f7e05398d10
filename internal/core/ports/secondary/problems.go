package secondary

import (
	"context"

	"gitlab.com/codeduel-2025.net/internal/domain"
)

// ProblemRepository provides the problem pool duels draw from
type ProblemRepository interface {
	// GetByID returns the problem with the given id
	GetByID(ctx context.Context, id string) (*domain.Problem, error)

	// Random returns a random problem from the whole pool
	Random(ctx context.Context) (*domain.Problem, error)

	// RandomByDifficulty returns a random problem of the given class,
	// falling back to the whole pool when the class is empty.
	RandomByDifficulty(ctx context.Context, difficulty domain.Difficulty) (*domain.Problem, error)
}
