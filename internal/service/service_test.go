package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/neetcode-tracker/backend/internal/complexity"
	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/internal/infrastructure"
)

func testTracer() trace.Tracer {
	return tracenoop.NewTracerProvider().Tracer("test")
}

func testMetrics(t *testing.T) *infrastructure.TelemetryMetrics {
	t.Helper()
	meter := metricnoop.NewMeterProvider().Meter("test")

	solutions, err := meter.Int64Counter("solutions.recorded")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}
	notes, err := meter.Int64Counter("notes.saved")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}
	return &infrastructure.TelemetryMetrics{
		SolutionsRecorded: solutions,
		NotesSaved:        notes,
	}
}

// fakeProblemRepo keeps problems in a map; only the methods the
// services under test reach are meaningful.
type fakeProblemRepo struct {
	problems map[uuid.UUID]*domain.Problem
}

func newFakeProblemRepo(problems ...*domain.Problem) *fakeProblemRepo {
	repo := &fakeProblemRepo{problems: make(map[uuid.UUID]*domain.Problem)}
	for _, p := range problems {
		repo.problems[p.ID] = p
	}
	return repo
}

func (r *fakeProblemRepo) Create(problem *domain.Problem) error {
	r.problems[problem.ID] = problem
	return nil
}

func (r *fakeProblemRepo) CreateBatch(problems []domain.Problem) error {
	for i := range problems {
		p := problems[i]
		r.problems[p.ID] = &p
	}
	return nil
}

func (r *fakeProblemRepo) FindByID(id uuid.UUID) (*domain.Problem, error) {
	p, ok := r.problems[id]
	if !ok {
		return nil, domain.ErrProblemNotFound
	}
	return p, nil
}

func (r *fakeProblemRepo) FindBySlug(slug string) (*domain.Problem, error) {
	for _, p := range r.problems {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, domain.ErrProblemNotFound
}

func (r *fakeProblemRepo) FindAll() ([]domain.Problem, error) {
	out := make([]domain.Problem, 0, len(r.problems))
	for _, p := range r.problems {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakeProblemRepo) FindByCollectionID(collectionID uuid.UUID) ([]domain.Problem, error) {
	out := make([]domain.Problem, 0)
	for _, p := range r.problems {
		if p.CollectionID == collectionID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProblemRepo) UpdateDescription(id uuid.UUID, description string) error {
	p, ok := r.problems[id]
	if !ok {
		return domain.ErrProblemNotFound
	}
	p.Description = description
	return nil
}

func (r *fakeProblemRepo) Count() (int64, error) {
	return int64(len(r.problems)), nil
}

// fakeSolutionRepo keeps solutions in insertion order.
type fakeSolutionRepo struct {
	solutions []*domain.Solution
}

func (r *fakeSolutionRepo) Create(solution *domain.Solution) error {
	if solution.ID == uuid.Nil {
		solution.ID = uuid.New()
	}
	if solution.CreatedAt.IsZero() {
		solution.CreatedAt = time.Now()
	}
	r.solutions = append(r.solutions, solution)
	return nil
}

func (r *fakeSolutionRepo) FindByID(id uuid.UUID) (*domain.Solution, error) {
	for _, s := range r.solutions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, domain.ErrSolutionNotFound
}

func (r *fakeSolutionRepo) FindAll() ([]domain.Solution, error) {
	out := make([]domain.Solution, len(r.solutions))
	for i, s := range r.solutions {
		out[i] = *s
	}
	return out, nil
}

func (r *fakeSolutionRepo) FindByProblemID(problemID uuid.UUID) ([]domain.Solution, error) {
	out := make([]domain.Solution, 0)
	for _, s := range r.solutions {
		if s.ProblemID == problemID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeSolutionRepo) Update(solution *domain.Solution) error {
	for i, s := range r.solutions {
		if s.ID == solution.ID {
			r.solutions[i] = solution
			return nil
		}
	}
	return domain.ErrSolutionNotFound
}

func (r *fakeSolutionRepo) Delete(id uuid.UUID) error {
	for i, s := range r.solutions {
		if s.ID == id {
			r.solutions = append(r.solutions[:i], r.solutions[i+1:]...)
			return nil
		}
	}
	return domain.ErrSolutionNotFound
}

// fakeNoteRepo enforces the one-note-per-problem rule the way the real
// store does, with an upsert keyed on problem id.
type fakeNoteRepo struct {
	notes map[uuid.UUID]*domain.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]*domain.Note)}
}

func (r *fakeNoteRepo) FindAll() ([]domain.Note, error) {
	out := make([]domain.Note, 0, len(r.notes))
	for _, n := range r.notes {
		out = append(out, *n)
	}
	return out, nil
}

func (r *fakeNoteRepo) FindByProblemID(problemID uuid.UUID) (*domain.Note, error) {
	n, ok := r.notes[problemID]
	if !ok {
		return nil, domain.ErrNoteNotFound
	}
	return n, nil
}

func (r *fakeNoteRepo) Upsert(problemID uuid.UUID, content string) (*domain.Note, error) {
	if existing, ok := r.notes[problemID]; ok {
		existing.Content = content
		existing.UpdatedAt = time.Now()
		return existing, nil
	}
	note := &domain.Note{
		ID:        uuid.New(),
		ProblemID: problemID,
		Content:   content,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	r.notes[problemID] = note
	return note, nil
}

// fakeEstimator returns a fixed estimate or error.
type fakeEstimator struct {
	estimate *complexity.Estimate
	err      error
	calls    int
}

func (e *fakeEstimator) Estimate(ctx context.Context, code, language string) (*complexity.Estimate, error) {
	e.calls++
	return e.estimate, e.err
}

func testProblem(title, slug string, category domain.Category, order int) *domain.Problem {
	return &domain.Problem{
		ID:         uuid.New(),
		Slug:       slug,
		Title:      title,
		Difficulty: domain.DifficultyEasy,
		Category:   category,
		OrderIndex: order,
	}
}
