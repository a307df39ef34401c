package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neetcode-tracker/backend/internal/domain"
)

// solutionRepository implements domain.SolutionRepository using GORM
type solutionRepository struct {
	db *gorm.DB
}

// NewSolutionRepository creates a new solution repository
func NewSolutionRepository(db *gorm.DB) domain.SolutionRepository {
	return &solutionRepository{db: db}
}

// Create creates a new solution record
func (r *solutionRepository) Create(solution *domain.Solution) error {
	return r.db.Create(solution).Error
}

// FindByID finds a solution by its ID
func (r *solutionRepository) FindByID(id uuid.UUID) (*domain.Solution, error) {
	var solution domain.Solution
	result := r.db.Where("id = ?", id).First(&solution)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSolutionNotFound
		}
		return nil, result.Error
	}
	return &solution, nil
}

// FindAll returns every solution; the derived-view engine consumes the
// full snapshot
func (r *solutionRepository) FindAll() ([]domain.Solution, error) {
	var solutions []domain.Solution
	result := r.db.Find(&solutions)
	return solutions, result.Error
}

// FindByProblemID returns a problem's solutions, newest first
func (r *solutionRepository) FindByProblemID(problemID uuid.UUID) ([]domain.Solution, error) {
	var solutions []domain.Solution
	result := r.db.
		Where("problem_id = ?", problemID).
		Order("created_at DESC").
		Find(&solutions)
	return solutions, result.Error
}

// Update persists edits to an existing solution
func (r *solutionRepository) Update(solution *domain.Solution) error {
	result := r.db.Save(solution)
	return result.Error
}

// Delete deletes a solution by its ID
func (r *solutionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&domain.Solution{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrSolutionNotFound
	}
	return nil
}
