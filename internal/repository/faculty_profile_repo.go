package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/models"
)

// FacultyProfileRepository provides access to faculty scoping profiles.
type FacultyProfileRepository interface {
	GetByUsername(ctx context.Context, username string) (models.FacultyProfile, error)
	Upsert(ctx context.Context, profile *models.FacultyProfile) error
}

type facultyProfileRepository struct {
	db *gorm.DB
}

// NewFacultyProfileRepository constructs a faculty profile repository.
func NewFacultyProfileRepository(db *gorm.DB) FacultyProfileRepository {
	return &facultyProfileRepository{db: db}
}

func (r *facultyProfileRepository) GetByUsername(ctx context.Context, username string) (models.FacultyProfile, error) {
	var profile models.FacultyProfile
	if err := r.db.WithContext(ctx).First(&profile, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FacultyProfile{}, domain.ErrNotFound
		}
		return models.FacultyProfile{}, err
	}

	return profile, nil
}

func (r *facultyProfileRepository) Upsert(ctx context.Context, profile *models.FacultyProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"subjects", "classes", "updated_at"}),
		}).
		Create(profile).Error
}
