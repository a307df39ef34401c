package domain

import (
	"time"

	"github.com/google/uuid"
)

// Difficulty represents the difficulty level of a problem
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Weight returns a numeric weight for sorting by difficulty
func (d Difficulty) Weight() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 0
	}
}

// Problem represents one curated coding problem from the NeetCode 150 list.
// Problems are created once at seed time; only the description text is
// editable afterwards.
type Problem struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CollectionID uuid.UUID  `json:"collection_id" gorm:"type:uuid;not null;index"`
	Slug         string     `json:"slug" gorm:"uniqueIndex;not null"`
	Title        string     `json:"title" gorm:"not null"`
	Difficulty   Difficulty `json:"difficulty" gorm:"type:varchar(10);not null"`
	Category     Category   `json:"category" gorm:"type:varchar(50);not null;index"`
	Description  string     `json:"description" gorm:"type:text"`
	OrderIndex   int        `json:"order" gorm:"not null"` // Rank 1..150 within the curated list
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relationships
	Collection Collection `json:"-" gorm:"foreignKey:CollectionID"`
	Solutions  []Solution `json:"-" gorm:"foreignKey:ProblemID"`
}

// TableName specifies the table name for GORM
func (Problem) TableName() string {
	return "problems"
}

// ProblemRepository defines the interface for problem data access
type ProblemRepository interface {
	Create(problem *Problem) error
	CreateBatch(problems []Problem) error
	FindByID(id uuid.UUID) (*Problem, error)
	FindBySlug(slug string) (*Problem, error)
	FindAll() ([]Problem, error)
	FindByCollectionID(collectionID uuid.UUID) ([]Problem, error)
	UpdateDescription(id uuid.UUID, description string) error
	Count() (int64, error)
}

// ProblemResponse represents a problem in API responses
type ProblemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    Category   `json:"category"`
	Description string     `json:"description"`
	OrderIndex  int        `json:"order"`
}

// ToResponse converts a Problem to a ProblemResponse
func (p *Problem) ToResponse() ProblemResponse {
	return ProblemResponse{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       p.Title,
		Difficulty:  p.Difficulty,
		Category:    p.Category,
		Description: p.Description,
		OrderIndex:  p.OrderIndex,
	}
}

// UpdateDescriptionRequest represents a problem description edit
type UpdateDescriptionRequest struct {
	Description string `json:"description" binding:"required"`
}

// ProblemStats represents statistics about the problem set
type ProblemStats struct {
	Total        int                `json:"total"`
	ByDifficulty map[Difficulty]int `json:"by_difficulty"`
	ByCategory   map[Category]int   `json:"by_category"`
}
