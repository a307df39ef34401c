package data

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/neetcode-tracker/backend/internal/domain"
	"github.com/neetcode-tracker/backend/internal/infrastructure"
)

//go:embed neetcode150.json
var neetcode150Data []byte

// CollectionSlug is the slug of the seeded curated list
const CollectionSlug = "neetcode-150"

// problemJSON represents the JSON structure for problems
type problemJSON struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
	Order      int    `json:"order"`
}

// Seeder handles database seeding operations
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSeeder creates a new database seeder
func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

// Seed runs all seeding steps: the admin user, the curated collection,
// and its 150 problems. Each step is idempotent.
func (s *Seeder) Seed(adminCfg *infrastructure.AdminConfig) error {
	if err := s.EnsureAdminUser(adminCfg); err != nil {
		return err
	}
	collection, err := s.EnsureCollection()
	if err != nil {
		return err
	}
	return s.SeedProblems(collection)
}

// EnsureAdminUser creates the single admin account if it does not exist
func (s *Seeder) EnsureAdminUser(cfg *infrastructure.AdminConfig) error {
	var count int64
	if err := s.db.Model(&domain.User{}).
		Where("username = ?", cfg.Username).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := domain.User{
		ID:           uuid.New(),
		Username:     cfg.Username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return err
	}

	s.logger.Info("Admin user created",
		zap.String("username", cfg.Username),
	)
	return nil
}

// EnsureCollection creates the curated collection row if missing and
// returns it either way
func (s *Seeder) EnsureCollection() (*domain.Collection, error) {
	var existing domain.Collection
	err := s.db.Where("slug = ?", CollectionSlug).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	categories := make([]string, 0, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		categories = append(categories, string(c))
	}

	collection := domain.Collection{
		ID:           uuid.New(),
		Slug:         CollectionSlug,
		Name:         "NeetCode 150",
		Description:  "A curated list of 150 coding-interview practice problems across 18 topics.",
		ProblemCount: 150,
		Categories:   categories,
	}
	if err := s.db.Create(&collection).Error; err != nil {
		return nil, err
	}

	s.logger.Info("Collection created",
		zap.String("slug", collection.Slug),
	)
	return &collection, nil
}

// SeedProblems seeds the problems table with the embedded NeetCode 150
// data. Every category is validated against the known roadmap labels so
// a mismatch fails loudly at startup instead of rendering as an empty
// roadmap node.
func (s *Seeder) SeedProblems(collection *domain.Collection) error {
	s.logger.Info("Starting to seed problems...")

	// Check if problems already exist
	var count int64
	if err := s.db.Model(&domain.Problem{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		s.logger.Info("Problems already seeded, skipping",
			zap.Int64("count", count),
		)
		return nil
	}

	problems, err := EmbeddedProblems(collection.ID)
	if err != nil {
		return err
	}

	// Batch insert
	if err := s.db.CreateInBatches(problems, 50).Error; err != nil {
		return err
	}

	s.logger.Info("Successfully seeded problems",
		zap.Int("count", len(problems)),
	)

	return nil
}

// EmbeddedProblems parses the embedded NeetCode 150 list into domain
// models belonging to the given collection
func EmbeddedProblems(collectionID uuid.UUID) ([]domain.Problem, error) {
	var problemsJSON []problemJSON
	if err := json.Unmarshal(neetcode150Data, &problemsJSON); err != nil {
		return nil, err
	}

	problems := make([]domain.Problem, len(problemsJSON))
	for i, p := range problemsJSON {
		category := domain.Category(p.Category)
		if !category.Valid() {
			return nil, fmt.Errorf("problem %q: %w: %q", p.Title, domain.ErrUnknownCategory, p.Category)
		}
		problems[i] = domain.Problem{
			ID:           uuid.New(),
			CollectionID: collectionID,
			Slug:         p.Slug,
			Title:        p.Title,
			Difficulty:   domain.Difficulty(p.Difficulty),
			Category:     category,
			Description:  templateDescription(p.Title),
			OrderIndex:   p.Order,
		}
	}

	return problems, nil
}

// templateDescription produces the initial markdown skeleton for a
// problem; the admin fills it in through the description edit endpoint.
func templateDescription(title string) string {
	return "# " + title + "\n\n## Problem Statement\n\n[Add problem description here]\n\n## Constraints\n\n- [Add constraints here]\n"
}
