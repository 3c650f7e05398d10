// package problemrepository contains the PostgreSQL implementation of the
// problem repository, for deployments with a curated problem bank.
package problemrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codeduel-2025.net/internal/core/ports/primary"
	"gitlab.com/codeduel-2025.net/internal/core/ports/secondary"
	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/static/errs"
)

var _ secondary.ProblemRepository = (*ProblemRepository)(nil)

// ProblemRepository implements the ProblemRepository interface with
// PostgreSQL
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

// NewProblemRepository creates a new PostgreSQL problem repository
func NewProblemRepository(db *sqlx.DB, logger primary.Logger) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
	}
}

type problemRow struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Difficulty  string `db:"difficulty"`
	Examples    []byte `db:"examples"`
	Constraints []byte `db:"constraints"`
	StarterCode []byte `db:"starter_code"`
}

type testCaseRow struct {
	Input          string `db:"input"`
	ExpectedOutput string `db:"expected_output"`
	IsHidden       bool   `db:"is_hidden"`
}

// GetByID retrieves a problem and its test cases from PostgreSQL
func (r *ProblemRepository) GetByID(ctx context.Context, id string) (*domain.Problem, error) {
	query := `
		SELECT id, title, description, difficulty, examples, constraints, starter_code
		FROM problems
		WHERE id = $1
	`

	var row problemRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ProblemNotFound
		}
		r.logger.Error("Failed to get problem", "problemId", id, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	problem, err := r.toDomain(&row)
	if err != nil {
		return nil, err
	}

	casesQuery := `
		SELECT input, expected_output, is_hidden
		FROM test_cases
		WHERE problem_id = $1
		ORDER BY position
	`

	var caseRows []testCaseRow
	if err := r.db.SelectContext(ctx, &caseRows, casesQuery, id); err != nil {
		r.logger.Error("Failed to get test cases", "problemId", id, "error", err)
		return nil, fmt.Errorf("failed to get test cases: %w", err)
	}

	problem.TestCases = make([]domain.TestCase, 0, len(caseRows))
	for _, tc := range caseRows {
		problem.TestCases = append(problem.TestCases, domain.TestCase{
			Input:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
			IsHidden:       tc.IsHidden,
		})
	}

	return problem, nil
}

// Random retrieves a random problem from the whole bank
func (r *ProblemRepository) Random(ctx context.Context) (*domain.Problem, error) {
	var id string
	query := `SELECT id FROM problems ORDER BY random() LIMIT 1`
	if err := r.db.GetContext(ctx, &id, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errs.ProblemNotFound
		}
		r.logger.Error("Failed to pick random problem", "error", err)
		return nil, fmt.Errorf("failed to pick random problem: %w", err)
	}
	return r.GetByID(ctx, id)
}

// RandomByDifficulty retrieves a random problem of the given class,
// falling back to the whole bank when the class is empty.
func (r *ProblemRepository) RandomByDifficulty(ctx context.Context, difficulty domain.Difficulty) (*domain.Problem, error) {
	var id string
	query := `SELECT id FROM problems WHERE difficulty = $1 ORDER BY random() LIMIT 1`
	if err := r.db.GetContext(ctx, &id, query, string(difficulty)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r.Random(ctx)
		}
		r.logger.Error("Failed to pick random problem", "difficulty", difficulty, "error", err)
		return nil, fmt.Errorf("failed to pick random problem: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ProblemRepository) toDomain(row *problemRow) (*domain.Problem, error) {
	problem := &domain.Problem{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Difficulty:  domain.Difficulty(row.Difficulty),
	}

	if len(row.Examples) > 0 {
		if err := json.Unmarshal(row.Examples, &problem.Examples); err != nil {
			return nil, fmt.Errorf("failed to unmarshal problem examples: %w", err)
		}
	}
	if len(row.Constraints) > 0 {
		if err := json.Unmarshal(row.Constraints, &problem.Constraints); err != nil {
			return nil, fmt.Errorf("failed to unmarshal problem constraints: %w", err)
		}
	}
	if len(row.StarterCode) > 0 {
		if err := json.Unmarshal(row.StarterCode, &problem.StarterCode); err != nil {
			return nil, fmt.Errorf("failed to unmarshal starter code: %w", err)
		}
	}

	return problem, nil
}
