package service

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/internal/infrastructure"
)

// NoteService handles the single per-problem note. Saves are upserts:
// the first save creates the note, later saves update it in place.
type NoteService struct {
	noteRepo    domain.NoteRepository
	problemRepo domain.ProblemRepository
	metrics     *infrastructure.TelemetryMetrics
	tracer      trace.Tracer
	logger      *zap.Logger
}

// NewNoteService creates a new note service
func NewNoteService(
	noteRepo domain.NoteRepository,
	problemRepo domain.ProblemRepository,
	metrics *infrastructure.TelemetryMetrics,
	tracer trace.Tracer,
	logger *zap.Logger,
) *NoteService {
	return &NoteService{
		noteRepo:    noteRepo,
		problemRepo: problemRepo,
		metrics:     metrics,
		tracer:      tracer,
		logger:      logger,
	}
}

// GetByProblemID returns the note attached to a problem, or
// domain.ErrNoteNotFound when none exists yet
func (s *NoteService) GetByProblemID(ctx context.Context, problemID uuid.UUID) (*domain.Note, error) {
	ctx, span := s.tracer.Start(ctx, "NoteService.GetByProblemID")
	defer span.End()

	span.SetAttributes(attribute.String("problem.id", problemID.String()))
	return s.noteRepo.FindByProblemID(problemID)
}

// Upsert saves the note for a problem, creating or updating as needed
func (s *NoteService) Upsert(ctx context.Context, req *domain.UpsertNoteRequest) (*domain.Note, error) {
	ctx, span := s.tracer.Start(ctx, "NoteService.Upsert")
	defer span.End()

	problemID, err := uuid.Parse(req.ProblemID)
	if err != nil {
		return nil, domain.ErrBadRequest
	}
	span.SetAttributes(attribute.String("problem.id", problemID.String()))

	// Reject writes against unknown problems before touching the store.
	if _, err := s.problemRepo.FindByID(problemID); err != nil {
		return nil, err
	}

	note, err := s.noteRepo.Upsert(problemID, *req.Content)
	if err != nil {
		return nil, err
	}

	s.metrics.NotesSaved.Add(ctx, 1)
	s.logger.Info("Note saved",
		zap.String("note_id", note.ID.String()),
		zap.String("problem_id", problemID.String()),
	)
	return note, nil
}
