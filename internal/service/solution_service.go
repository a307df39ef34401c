package service

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/neetcode-tracker/backend/internal/complexity"
	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/internal/infrastructure"
)

// SolutionService handles solution writes and reads. Creating a solution
// without explicit complexity values triggers one best-effort estimator
// call; an estimator failure never blocks the write.
type SolutionService struct {
	solutionRepo domain.SolutionRepository
	problemRepo  domain.ProblemRepository
	estimator    complexity.Estimator
	metrics      *infrastructure.TelemetryMetrics
	tracer       trace.Tracer
	logger       *zap.Logger
}

// NewSolutionService creates a new solution service
func NewSolutionService(
	solutionRepo domain.SolutionRepository,
	problemRepo domain.ProblemRepository,
	estimator complexity.Estimator,
	metrics *infrastructure.TelemetryMetrics,
	tracer trace.Tracer,
	logger *zap.Logger,
) *SolutionService {
	return &SolutionService{
		solutionRepo: solutionRepo,
		problemRepo:  problemRepo,
		estimator:    estimator,
		metrics:      metrics,
		tracer:       tracer,
		logger:       logger,
	}
}

// GetSolutionsForProblem returns a problem's solutions, newest first
func (s *SolutionService) GetSolutionsForProblem(ctx context.Context, problemID uuid.UUID) ([]domain.Solution, error) {
	ctx, span := s.tracer.Start(ctx, "SolutionService.GetSolutionsForProblem")
	defer span.End()

	span.SetAttributes(attribute.String("problem.id", problemID.String()))
	return s.solutionRepo.FindByProblemID(problemID)
}

// Create records a new solution for a problem
func (s *SolutionService) Create(ctx context.Context, req *domain.CreateSolutionRequest) (*domain.Solution, error) {
	ctx, span := s.tracer.Start(ctx, "SolutionService.Create")
	defer span.End()

	problemID, err := uuid.Parse(req.ProblemID)
	if err != nil {
		return nil, domain.ErrBadRequest
	}
	span.SetAttributes(
		attribute.String("problem.id", problemID.String()),
		attribute.String("solution.language", req.Language),
	)

	// Reject writes against unknown problems before touching the store.
	if _, err := s.problemRepo.FindByID(problemID); err != nil {
		return nil, err
	}

	solution := &domain.Solution{
		ProblemID:       problemID,
		Name:            req.Name,
		Language:        req.Language,
		Code:            req.Code,
		TimeComplexity:  req.TimeComplexity,
		SpaceComplexity: req.SpaceComplexity,
		Explanation:     req.Explanation,
	}

	if solution.TimeComplexity == "" && solution.SpaceComplexity == "" {
		s.fillEstimatedComplexity(ctx, solution)
	}

	if err := s.solutionRepo.Create(solution); err != nil {
		return nil, err
	}

	s.metrics.SolutionsRecorded.Add(ctx, 1,
		metric.WithAttributes(attribute.String("solution.language", solution.Language)),
	)
	s.logger.Info("Solution recorded",
		zap.String("solution_id", solution.ID.String()),
		zap.String("problem_id", problemID.String()),
		zap.String("language", solution.Language),
	)
	return solution, nil
}

// Update edits an existing solution
func (s *SolutionService) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateSolutionRequest) (*domain.Solution, error) {
	ctx, span := s.tracer.Start(ctx, "SolutionService.Update")
	defer span.End()

	span.SetAttributes(attribute.String("solution.id", id.String()))

	solution, err := s.solutionRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	solution.Name = req.Name
	solution.Language = req.Language
	solution.Code = req.Code
	solution.TimeComplexity = req.TimeComplexity
	solution.SpaceComplexity = req.SpaceComplexity
	solution.Explanation = req.Explanation

	if err := s.solutionRepo.Update(solution); err != nil {
		return nil, err
	}

	s.logger.Info("Solution updated",
		zap.String("solution_id", id.String()),
	)
	return solution, nil
}

// Delete removes a solution
func (s *SolutionService) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, span := s.tracer.Start(ctx, "SolutionService.Delete")
	defer span.End()

	span.SetAttributes(attribute.String("solution.id", id.String()))

	if err := s.solutionRepo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("Solution deleted",
		zap.String("solution_id", id.String()),
	)
	return nil
}

// fillEstimatedComplexity makes a single estimator attempt and annotates
// the solution in place. Failures are logged and swallowed: the estimate
// is a non-critical enrichment.
func (s *SolutionService) fillEstimatedComplexity(ctx context.Context, solution *domain.Solution) {
	estimate, err := s.estimator.Estimate(ctx, solution.Code, solution.Language)
	if err != nil {
		s.logger.Warn("Complexity estimation failed, persisting without annotations",
			zap.String("problem_id", solution.ProblemID.String()),
			zap.Error(err),
		)
		return
	}
	if estimate == nil {
		return
	}
	solution.TimeComplexity = estimate.TimeComplexity
	solution.SpaceComplexity = estimate.SpaceComplexity
}
