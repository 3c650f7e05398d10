package memproblems

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codeduel-2025.net/internal/domain"
	"gitlab.com/codeduel-2025.net/internal/static/errs"
)

func TestGetByID(t *testing.T) {
	repo := New(1)
	ctx := context.Background()

	problem, err := repo.GetByID(ctx, "two-sum")
	require.NoError(t, err)
	assert.Equal(t, "Two Sum", problem.Title)
	assert.Equal(t, domain.DifficultyEasy, problem.Difficulty)

	_, err = repo.GetByID(ctx, "does-not-exist")
	assert.ErrorIs(t, err, errs.ProblemNotFound)
}

func TestSeededProblemsAreWellFormed(t *testing.T) {
	for _, p := range seededProblems() {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.True(t, p.Difficulty.Valid())
		assert.NotEmpty(t, p.TestCases, "problem %s has no test cases", p.ID)
		assert.NotEmpty(t, p.VisibleTestCases(), "problem %s has no visible test cases", p.ID)
		for _, lang := range []string{"javascript", "python", "java"} {
			assert.Contains(t, p.StarterCode, lang, "problem %s misses %s starter code", p.ID, lang)
		}
	}
}

func TestRandomByDifficulty(t *testing.T) {
	repo := New(42)
	ctx := context.Background()

	for i := 0; i < 20; i++ {
		problem, err := repo.RandomByDifficulty(ctx, domain.DifficultyEasy)
		require.NoError(t, err)
		assert.Equal(t, domain.DifficultyEasy, problem.Difficulty)
	}
}

func TestRandomByDifficultyFallsBackWhenClassEmpty(t *testing.T) {
	onlyEasy := []*domain.Problem{
		{ID: "p1", Difficulty: domain.DifficultyEasy, TestCases: []domain.TestCase{{Input: "1"}}},
	}
	repo := NewWithProblems(onlyEasy, 7)

	problem, err := repo.RandomByDifficulty(context.Background(), domain.DifficultyHard)
	require.NoError(t, err)
	assert.Equal(t, "p1", problem.ID)
}

func TestRandomOnEmptyPool(t *testing.T) {
	repo := NewWithProblems(nil, 7)

	_, err := repo.Random(context.Background())
	assert.ErrorIs(t, err, errs.ProblemNotFound)
}
