package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/neetcode-tracker/backend/internal/complexity"
	"github.com/neetcode-tracker/backend/internal/domain"
)

func newSolutionService(t *testing.T, problemRepo domain.ProblemRepository, solutionRepo domain.SolutionRepository, estimator complexity.Estimator) *SolutionService {
	t.Helper()
	return NewSolutionService(solutionRepo, problemRepo, estimator, testMetrics(t), testTracer(), zap.NewNop())
}

func TestCreateSolutionRejectsMalformedProblemID(t *testing.T) {
	svc := newSolutionService(t, newFakeProblemRepo(), &fakeSolutionRepo{}, complexity.Disabled())

	_, err := svc.Create(context.Background(), &domain.CreateSolutionRequest{
		ProblemID: "not-a-uuid",
		Language:  "go",
		Code:      "func main() {}",
	})
	if !errors.Is(err, domain.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestCreateSolutionRejectsUnknownProblem(t *testing.T) {
	svc := newSolutionService(t, newFakeProblemRepo(), &fakeSolutionRepo{}, complexity.Disabled())

	_, err := svc.Create(context.Background(), &domain.CreateSolutionRequest{
		ProblemID: uuid.New().String(),
		Language:  "go",
		Code:      "func main() {}",
	})
	if !errors.Is(err, domain.ErrProblemNotFound) {
		t.Fatalf("expected ErrProblemNotFound, got %v", err)
	}
}

func TestCreateSolutionFillsEstimatedComplexity(t *testing.T) {
	problem := testProblem("Two Sum", "two-sum", domain.CategoryArraysHashing, 1)
	estimator := &fakeEstimator{estimate: &complexity.Estimate{
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(n)",
	}}
	svc := newSolutionService(t, newFakeProblemRepo(problem), &fakeSolutionRepo{}, estimator)

	solution, err := svc.Create(context.Background(), &domain.CreateSolutionRequest{
		ProblemID: problem.ID.String(),
		Language:  "go",
		Code:      "func twoSum(nums []int, target int) []int { return nil }",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if solution.TimeComplexity != "O(n)" || solution.SpaceComplexity != "O(n)" {
		t.Fatalf("estimate not applied: time=%q space=%q", solution.TimeComplexity, solution.SpaceComplexity)
	}
	if estimator.calls != 1 {
		t.Fatalf("expected exactly one estimator call, got %d", estimator.calls)
	}
}

func TestCreateSolutionSwallowsEstimatorFailure(t *testing.T) {
	problem := testProblem("Two Sum", "two-sum", domain.CategoryArraysHashing, 1)
	estimator := &fakeEstimator{err: errors.New("upstream unavailable")}
	svc := newSolutionService(t, newFakeProblemRepo(problem), &fakeSolutionRepo{}, estimator)

	solution, err := svc.Create(context.Background(), &domain.CreateSolutionRequest{
		ProblemID: problem.ID.String(),
		Language:  "go",
		Code:      "func twoSum(nums []int, target int) []int { return nil }",
	})
	if err != nil {
		t.Fatalf("estimator failure must not fail the create: %v", err)
	}
	if solution.TimeComplexity != "" || solution.SpaceComplexity != "" {
		t.Fatalf("expected empty complexity fields, got time=%q space=%q", solution.TimeComplexity, solution.SpaceComplexity)
	}
	if estimator.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", estimator.calls)
	}
}

func TestCreateSolutionSkipsEstimatorWhenComplexityProvided(t *testing.T) {
	problem := testProblem("Two Sum", "two-sum", domain.CategoryArraysHashing, 1)
	estimator := &fakeEstimator{estimate: &complexity.Estimate{
		TimeComplexity:  "O(n^2)",
		SpaceComplexity: "O(1)",
	}}
	svc := newSolutionService(t, newFakeProblemRepo(problem), &fakeSolutionRepo{}, estimator)

	solution, err := svc.Create(context.Background(), &domain.CreateSolutionRequest{
		ProblemID:       problem.ID.String(),
		Language:        "go",
		Code:            "func twoSum(nums []int, target int) []int { return nil }",
		TimeComplexity:  "O(n)",
		SpaceComplexity: "O(n)",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if estimator.calls != 0 {
		t.Fatalf("estimator must not run when complexity is provided, got %d calls", estimator.calls)
	}
	if solution.TimeComplexity != "O(n)" {
		t.Fatalf("provided complexity overwritten: %q", solution.TimeComplexity)
	}
}

func TestUpdateSolutionNotFound(t *testing.T) {
	svc := newSolutionService(t, newFakeProblemRepo(), &fakeSolutionRepo{}, complexity.Disabled())

	_, err := svc.Update(context.Background(), uuid.New(), &domain.UpdateSolutionRequest{
		Language: "go",
		Code:     "func main() {}",
	})
	if !errors.Is(err, domain.ErrSolutionNotFound) {
		t.Fatalf("expected ErrSolutionNotFound, got %v", err)
	}
}

func TestDeleteSolutionRemovesRecord(t *testing.T) {
	problem := testProblem("Two Sum", "two-sum", domain.CategoryArraysHashing, 1)
	solutionRepo := &fakeSolutionRepo{}
	svc := newSolutionService(t, newFakeProblemRepo(problem), solutionRepo, complexity.Disabled())

	solution, err := svc.Create(context.Background(), &domain.CreateSolutionRequest{
		ProblemID: problem.ID.String(),
		Language:  "go",
		Code:      "func twoSum(nums []int, target int) []int { return nil }",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), solution.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), solution.ID); !errors.Is(err, domain.ErrSolutionNotFound) {
		t.Fatalf("expected ErrSolutionNotFound on second delete, got %v", err)
	}
}
