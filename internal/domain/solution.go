package domain

import (
	"time"

	"github.com/google/uuid"
)

// Solution represents one stored code solution for a problem.
// A problem may have any number of solutions; the system never executes
// or verifies the code, a problem counts as solved once at least one
// solution record exists. CreatedAt drives the activity heatmap.
type Solution struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProblemID       uuid.UUID `json:"problem_id" gorm:"type:uuid;not null;index"`
	Name            string    `json:"name"` // Optional label, e.g. "Two Pointer Approach"
	Language        string    `json:"language" gorm:"not null"`
	Code            string    `json:"code" gorm:"type:text;not null"`
	TimeComplexity  string    `json:"time_complexity"`
	SpaceComplexity string    `json:"space_complexity"`
	Explanation     string    `json:"explanation" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Problem Problem `json:"-" gorm:"foreignKey:ProblemID"`
}

// TableName specifies the table name for GORM
func (Solution) TableName() string {
	return "solutions"
}

// SolutionRepository defines the interface for solution data access
type SolutionRepository interface {
	Create(solution *Solution) error
	FindByID(id uuid.UUID) (*Solution, error)
	FindAll() ([]Solution, error)
	FindByProblemID(problemID uuid.UUID) ([]Solution, error)
	Update(solution *Solution) error
	Delete(id uuid.UUID) error
}

// CreateSolutionRequest represents the data needed to record a solution
type CreateSolutionRequest struct {
	ProblemID       string `json:"problem_id" binding:"required"`
	Name            string `json:"name"`
	Language        string `json:"language" binding:"required"`
	Code            string `json:"code" binding:"required"`
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
	Explanation     string `json:"explanation"`
}

// UpdateSolutionRequest represents an edit to an existing solution
type UpdateSolutionRequest struct {
	Name            string `json:"name"`
	Language        string `json:"language" binding:"required"`
	Code            string `json:"code" binding:"required"`
	TimeComplexity  string `json:"time_complexity"`
	SpaceComplexity string `json:"space_complexity"`
	Explanation     string `json:"explanation"`
}

// SolutionResponse represents a solution in API responses
type SolutionResponse struct {
	ID              uuid.UUID `json:"id"`
	ProblemID       uuid.UUID `json:"problem_id"`
	Name            string    `json:"name,omitempty"`
	Language        string    `json:"language"`
	Code            string    `json:"code"`
	TimeComplexity  string    `json:"time_complexity,omitempty"`
	SpaceComplexity string    `json:"space_complexity,omitempty"`
	Explanation     string    `json:"explanation,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToResponse converts a Solution to a SolutionResponse
func (s *Solution) ToResponse() SolutionResponse {
	return SolutionResponse{
		ID:              s.ID,
		ProblemID:       s.ProblemID,
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
