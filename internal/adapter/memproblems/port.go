// package memproblems is the seeded in-memory problem pool used when no
// database is configured
package memproblems

import (
	"context"
	"math/rand"
	"sync"

	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/static/errs"
)

var _ secondary.ProblemRepository = (*Repository)(nil)

// Repository implements the ProblemRepository interface over a fixed
// problem slice
type Repository struct {
	mu       sync.Mutex
	problems []*domain.Problem
	byID     map[string]*domain.Problem
	rng      *rand.Rand
}

// New creates a repository over the built-in problem set
func New(seed int64) *Repository {
	return NewWithProblems(seededProblems(), seed)
}

// NewWithProblems creates a repository over an explicit problem set
func NewWithProblems(problems []*domain.Problem, seed int64) *Repository {
	byID := make(map[string]*domain.Problem, len(problems))
	for _, p := range problems {
		byID[p.ID] = p
	}
	return &Repository{
		problems: problems,
		byID:     byID,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// GetByID returns the problem with the given id
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Problem, error) {
	problem, exists := r.byID[id]
	if !exists {
		return nil, errs.ProblemNotFound
	}
	return problem, nil
}

// Random returns a random problem from the whole pool
func (r *Repository) Random(_ context.Context) (*domain.Problem, error) {
	if len(r.problems) == 0 {
		return nil, errs.ProblemNotFound
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.problems[r.rng.Intn(len(r.problems))], nil
}

// RandomByDifficulty returns a random problem of the given class, falling
// back to the whole pool when the class has no problems.
func (r *Repository) RandomByDifficulty(ctx context.Context, difficulty domain.Difficulty) (*domain.Problem, error) {
	filtered := make([]*domain.Problem, 0, len(r.problems))
	for _, p := range r.problems {
		if p.Difficulty == difficulty {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		return r.Random(ctx)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return filtered[r.rng.Intn(len(filtered))], nil
}
