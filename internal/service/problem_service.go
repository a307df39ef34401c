package service

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/neetcode-tracker/backend/internal/domain"
)

// ProblemService handles collection and problem reads plus the one
// mutable problem field, its description text
type ProblemService struct {
	problemRepo    domain.ProblemRepository
	collectionRepo domain.CollectionRepository
	tracer         trace.Tracer
	logger         *zap.Logger
}

// NewProblemService creates a new problem service
func NewProblemService(
	problemRepo domain.ProblemRepository,
	collectionRepo domain.CollectionRepository,
	tracer trace.Tracer,
	logger *zap.Logger,
) *ProblemService {
	return &ProblemService{
		problemRepo:    problemRepo,
		collectionRepo: collectionRepo,
		tracer:         tracer,
		logger:         logger,
	}
}

// GetCollections returns all curated collections
func (s *ProblemService) GetCollections(ctx context.Context) ([]domain.Collection, error) {
	ctx, span := s.tracer.Start(ctx, "ProblemService.GetCollections")
	defer span.End()

	return s.collectionRepo.FindAll()
}

// GetCollectionBySlug returns a single collection
func (s *ProblemService) GetCollectionBySlug(ctx context.Context, slug string) (*domain.Collection, error) {
	ctx, span := s.tracer.Start(ctx, "ProblemService.GetCollectionBySlug")
	defer span.End()

	span.SetAttributes(attribute.String("collection.slug", slug))
	return s.collectionRepo.FindBySlug(slug)
}

// GetProblemsByCollection returns a collection's problems in curated order
func (s *ProblemService) GetProblemsByCollection(ctx context.Context, slug string) ([]domain.Problem, error) {
	ctx, span := s.tracer.Start(ctx, "ProblemService.GetProblemsByCollection")
	defer span.End()

	span.SetAttributes(attribute.String("collection.slug", slug))

	collection, err := s.collectionRepo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	return s.problemRepo.FindByCollectionID(collection.ID)
}

// GetProblemByID returns a specific problem
func (s *ProblemService) GetProblemByID(ctx context.Context, id uuid.UUID) (*domain.Problem, error) {
	ctx, span := s.tracer.Start(ctx, "ProblemService.GetProblemByID")
	defer span.End()

	span.SetAttributes(attribute.String("problem.id", id.String()))
	return s.problemRepo.FindByID(id)
}

// UpdateDescription edits a problem's description text
func (s *ProblemService) UpdateDescription(ctx context.Context, id uuid.UUID, description string) (*domain.Problem, error) {
	ctx, span := s.tracer.Start(ctx, "ProblemService.UpdateDescription")
	defer span.End()

	span.SetAttributes(attribute.String("problem.id", id.String()))

	if err := s.problemRepo.UpdateDescription(id, description); err != nil {
		return nil, err
	}

	s.logger.Info("Problem description updated",
		zap.String("problem_id", id.String()),
	)
	return s.problemRepo.FindByID(id)
}

// GetProblemStats returns statistics about the problem set
func (s *ProblemService) GetProblemStats(ctx context.Context) (*domain.ProblemStats, error) {
	ctx, span := s.tracer.Start(ctx, "ProblemService.GetProblemStats")
	defer span.End()

	problems, err := s.problemRepo.FindAll()
	if err != nil {
		return nil, err
	}

	stats := &domain.ProblemStats{
		Total:        len(problems),
		ByDifficulty: make(map[domain.Difficulty]int),
		ByCategory:   make(map[domain.Category]int),
	}

	for _, p := range problems {
		stats.ByDifficulty[p.Difficulty]++
		stats.ByCategory[p.Category]++
	}

	return stats, nil
}
