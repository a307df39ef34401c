package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/pkg/progress"
)

// ProgressService serves every derived view: the solved set, activity
// heatmap, roadmap graph, and revision listing. It reads full snapshots
// from the repositories and hands them to pkg/progress; a failed read
// fails the whole view rather than serving a partial one.
type ProgressService struct {
	problemRepo  domain.ProblemRepository
	solutionRepo domain.SolutionRepository
	noteRepo     domain.NoteRepository
	nodes        []domain.RoadmapNode
	edges        []domain.RoadmapEdge
	loc          *time.Location
	tracer       trace.Tracer
	logger       *zap.Logger
}

// NewProgressService creates a new progress service
func NewProgressService(
	problemRepo domain.ProblemRepository,
	solutionRepo domain.SolutionRepository,
	noteRepo domain.NoteRepository,
	nodes []domain.RoadmapNode,
	edges []domain.RoadmapEdge,
	loc *time.Location,
	tracer trace.Tracer,
	logger *zap.Logger,
) *ProgressService {
	return &ProgressService{
		problemRepo:  problemRepo,
		solutionRepo: solutionRepo,
		noteRepo:     noteRepo,
		nodes:        nodes,
		edges:        edges,
		loc:          loc,
		tracer:       tracer,
		logger:       logger,
	}
}

// GetSolvedProblemIDs returns the ids of every problem with at least one
// recorded solution
func (s *ProgressService) GetSolvedProblemIDs(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "ProgressService.GetSolvedProblemIDs")
	defer span.End()

	solutions, err := s.solutionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	solved := progress.ComputeSolvedSet(engineSolutions(solutions))
	span.SetAttributes(attribute.Int("progress.solved_count", len(solved)))
	return solved.IDs(), nil
}

// GetActivity returns the trailing-year activity map, keyed by local
// calendar day in the configured timezone
func (s *ProgressService) GetActivity(ctx context.Context) (map[string]int, error) {
	ctx, span := s.tracer.Start(ctx, "ProgressService.GetActivity")
	defer span.End()

	solutions, err := s.solutionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	activity := progress.ComputeActivity(engineSolutions(solutions), time.Now(), s.loc)
	span.SetAttributes(attribute.Int("activity.days", len(activity)))
	return activity, nil
}

// GetActivityGrid returns the current year's heatmap grid
func (s *ProgressService) GetActivityGrid(ctx context.Context) (*progress.YearGrid, error) {
	ctx, span := s.tracer.Start(ctx, "ProgressService.GetActivityGrid")
	defer span.End()

	solutions, err := s.solutionRepo.FindAll()
	if err != nil {
		return nil, err
	}

	now := time.Now().In(s.loc)
	activity := progress.ComputeActivity(engineSolutions(solutions), now, s.loc)
	grid := progress.ComputeYearGrid(now.Year(), activity, s.loc)
	span.SetAttributes(attribute.Int("activity.year", grid.Year))
	return &grid, nil
}

// RoadmapView is the roadmap graph annotated with per-node progress.
type RoadmapView struct {
	Nodes []progress.NodeProgress `json:"nodes"`
	Edges []progress.Edge         `json:"edges"`
}

// GetRoadmap returns the static topic graph with every node classified
// by its category's completion state
func (s *ProgressService) GetRoadmap(ctx context.Context) (*RoadmapView, error) {
	ctx, span := s.tracer.Start(ctx, "ProgressService.GetRoadmap")
	defer span.End()

	problems, solved, err := s.snapshotProblems(ctx)
	if err != nil {
		return nil, err
	}

	view := &RoadmapView{
		Nodes: progress.ComputeRoadmap(s.engineNodes(), problems, solved),
		Edges: s.engineEdges(),
	}
	span.SetAttributes(attribute.Int("roadmap.nodes", len(view.Nodes)))
	return view, nil
}

// GetCategoryDetail returns the problems of one category in curated
// order, each flagged with solved-set membership. An unknown category
// returns ErrUnknownCategory rather than an empty listing.
func (s *ProgressService) GetCategoryDetail(ctx context.Context, category string) ([]progress.CategoryProblem, error) {
	ctx, span := s.tracer.Start(ctx, "ProgressService.GetCategoryDetail")
	defer span.End()

	span.SetAttributes(attribute.String("roadmap.category", category))
	if !domain.Category(category).Valid() {
		return nil, domain.ErrUnknownCategory
	}

	problems, solved, err := s.snapshotProblems(ctx)
	if err != nil {
		return nil, err
	}

	return progress.ComputeCategoryDetail(category, problems, solved), nil
}

// GetRevision returns the filtered revision listing: every problem that
// has at least one solution or a note, joined with both
func (s *ProgressService) GetRevision(ctx context.Context) ([]progress.Revision, error) {
	ctx, span := s.tracer.Start(ctx, "ProgressService.GetRevision")
	defer span.End()

	problems, err := s.problemRepo.FindAll()
	if err != nil {
		return nil, err
	}
	solutions, err := s.solutionRepo.FindAll()
	if err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.FindAll()
	if err != nil {
		return nil, err
	}

	composites := progress.ComposeRevision(
		engineProblems(problems),
		engineSolutions(solutions),
		engineNotes(notes),
	)
	filtered := progress.FilterRevision(composites)
	span.SetAttributes(attribute.Int("revision.records", len(filtered)))
	return filtered, nil
}

func (s *ProgressService) snapshotProblems(ctx context.Context) ([]progress.Problem, progress.SolvedSet, error) {
	problems, err := s.problemRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}
	solutions, err := s.solutionRepo.FindAll()
	if err != nil {
		return nil, nil, err
	}
	return engineProblems(problems), progress.ComputeSolvedSet(engineSolutions(solutions)), nil
}

func (s *ProgressService) engineNodes() []progress.Node {
	nodes := make([]progress.Node, len(s.nodes))
	for i, n := range s.nodes {
		nodes[i] = progress.Node{
			ID:       n.ID,
			Label:    n.Label,
			Category: string(n.Category),
			X:        n.X,
			Y:        n.Y,
		}
	}
	return nodes
}

func (s *ProgressService) engineEdges() []progress.Edge {
	edges := make([]progress.Edge, len(s.edges))
	for i, e := range s.edges {
		edges[i] = progress.Edge{From: e.From, To: e.To}
	}
	return edges
}

func engineProblems(problems []domain.Problem) []progress.Problem {
	out := make([]progress.Problem, len(problems))
	for i, p := range problems {
		out[i] = progress.Problem{
			ID:         p.ID.String(),
			Slug:       p.Slug,
			Title:      p.Title,
			Difficulty: string(p.Difficulty),
			Category:   string(p.Category),
			Order:      p.OrderIndex,
		}
	}
	return out
}

func engineSolutions(solutions []domain.Solution) []progress.Solution {
	out := make([]progress.Solution, len(solutions))
	for i, s := range solutions {
		out[i] = progress.Solution{
			ID:              s.ID.String(),
			ProblemID:       s.ProblemID.String(),
			Name:            s.Name,
			Language:        s.Language,
			Code:            s.Code,
			TimeComplexity:  s.TimeComplexity,
			SpaceComplexity: s.SpaceComplexity,
			Explanation:     s.Explanation,
			CreatedAt:       s.CreatedAt,
			UpdatedAt:       s.UpdatedAt,
		}
	}
	return out
}

func engineNotes(notes []domain.Note) []progress.Note {
	out := make([]progress.Note, len(notes))
	for i, n := range notes {
		out[i] = progress.Note{
			ID:        n.ID.String(),
			ProblemID: n.ProblemID.String(),
			Content:   n.Content,
			CreatedAt: n.CreatedAt,
			UpdatedAt: n.UpdatedAt,
		}
	}
	return out
}
