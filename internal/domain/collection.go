package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Collection represents a named curated problem list. The seeder creates
// a single "neetcode-150" collection; the model supports more.
type Collection struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Slug         string         `json:"slug" gorm:"uniqueIndex;not null"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description"`
	ProblemCount int            `json:"problem_count" gorm:"not null"`
	Categories   pq.StringArray `json:"categories" gorm:"type:text[]"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`

	// Relationships
	Problems []Problem `json:"-" gorm:"foreignKey:CollectionID"`
}

// TableName specifies the table name for GORM
func (Collection) TableName() string {
	return "collections"
}

// CollectionRepository defines the interface for collection data access
type CollectionRepository interface {
	Create(collection *Collection) error
	FindBySlug(slug string) (*Collection, error)
	FindAll() ([]Collection, error)
}
