package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/neetcode-tracker/backend/internal/domain"
)

// noteRepository implements domain.NoteRepository using GORM
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) domain.NoteRepository {
	return &noteRepository{db: db}
}

// FindAll returns every note
func (r *noteRepository) FindAll() ([]domain.Note, error) {
	var notes []domain.Note
	result := r.db.Find(&notes)
	return notes, result.Error
}

// FindByProblemID finds the single note attached to a problem
func (r *noteRepository) FindByProblemID(problemID uuid.UUID) (*domain.Note, error) {
	var note domain.Note
	result := r.db.Where("problem_id = ?", problemID).First(&note)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, result.Error
	}
	return &note, nil
}

// Upsert creates the problem's note on first save and updates it in
// place on every save after that. The unique index on problem_id keeps
// the one-note-per-problem invariant; last write wins.
func (r *noteRepository) Upsert(problemID uuid.UUID, content string) (*domain.Note, error) {
	note := domain.Note{
		ProblemID: problemID,
		Content:   content,
	}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "problem_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&note)
	if result.Error != nil {
		return nil, result.Error
	}

	// Re-read so the caller sees the stored row, including the original
	// id and created_at when the upsert hit an existing note.
	return r.FindByProblemID(problemID)
}
