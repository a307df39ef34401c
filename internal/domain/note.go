package domain

import (
	"time"

	"github.com/google/uuid"
)

// Note represents the single freeform note attached to a problem.
// At most one note exists per problem; saves go through upsert-by-problem
// semantics so repeated writes update the same record in place.
type Note struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProblemID uuid.UUID `json:"problem_id" gorm:"type:uuid;not null;uniqueIndex"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Note) TableName() string {
	return "notes"
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	FindAll() ([]Note, error)
	FindByProblemID(problemID uuid.UUID) (*Note, error)
	Upsert(problemID uuid.UUID, content string) (*Note, error)
}

// UpsertNoteRequest represents a note save. Content is a pointer so an
// explicitly empty note is distinguishable from a missing field.
type UpsertNoteRequest struct {
	ProblemID string  `json:"problem_id" binding:"required"`
	Content   *string `json:"content" binding:"required"`
}
