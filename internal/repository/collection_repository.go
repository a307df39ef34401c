package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/neetcode-tracker/backend/internal/domain"
)

// collectionRepository implements domain.CollectionRepository using GORM
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *gorm.DB) domain.CollectionRepository {
	return &collectionRepository{db: db}
}

// Create creates a new collection in the database
func (r *collectionRepository) Create(collection *domain.Collection) error {
	return r.db.Create(collection).Error
}

// FindBySlug finds a collection by its slug
func (r *collectionRepository) FindBySlug(slug string) (*domain.Collection, error) {
	var collection domain.Collection
	result := r.db.Where("slug = ?", slug).First(&collection)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, result.Error
	}
	return &collection, nil
}

// FindAll returns all collections ordered by creation time
func (r *collectionRepository) FindAll() ([]domain.Collection, error) {
	var collections []domain.Collection
	result := r.db.Order("created_at ASC").Find(&collections)
	return collections, result.Error
}
