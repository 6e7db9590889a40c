package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/scope"
)

// MarkRepository provides access to mark records.
type MarkRepository interface {
	List(ctx context.Context, filter scope.RecordFilter) ([]models.Mark, error)
	ListForStudent(ctx context.Context, studentID uint) ([]models.Mark, error)
	ListForStudents(ctx context.Context, studentIDs []uint) ([]models.Mark, error)
	Get(ctx context.Context, id uint) (models.Mark, error)
	Create(ctx context.Context, mark *models.Mark) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Mark, error)
	Delete(ctx context.Context, id uint) error
}

type markRepository struct {
	db *gorm.DB
}

// NewMarkRepository constructs a mark repository.
func NewMarkRepository(db *gorm.DB) MarkRepository {
	return &markRepository{db: db}
}

func (r *markRepository) List(ctx context.Context, filter scope.RecordFilter) ([]models.Mark, error) {
	query := r.db.WithContext(ctx).Model(&models.Mark{})
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	} else if len(filter.Sections) > 0 {
		query = query.
			Joins("JOIN students ON students.id = marks.student_id").
			Where("students.section IN ?", filter.Sections)
	}

	var marks []models.Mark
	if err := query.Order("marks.id").Find(&marks).Error; err != nil {
		return nil, err
	}

	return marks, nil
}

func (r *markRepository) ListForStudent(ctx context.Context, studentID uint) ([]models.Mark, error) {
	var marks []models.Mark
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("id").
		Find(&marks).Error
	if err != nil {
		return nil, err
	}

	return marks, nil
}

func (r *markRepository) ListForStudents(ctx context.Context, studentIDs []uint) ([]models.Mark, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}

	var marks []models.Mark
	err := r.db.WithContext(ctx).
		Where("student_id IN ?", studentIDs).
		Order("id").
		Find(&marks).Error
	if err != nil {
		return nil, err
	}

	return marks, nil
}

func (r *markRepository) Get(ctx context.Context, id uint) (models.Mark, error) {
	var mark models.Mark
	if err := r.db.WithContext(ctx).First(&mark, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Mark{}, domain.ErrNotFound
		}
		return models.Mark{}, err
	}

	return mark, nil
}

func (r *markRepository) Create(ctx context.Context, mark *models.Mark) error {
	return r.db.WithContext(ctx).Create(mark).Error
}

func (r *markRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Mark, error) {
	result := r.db.WithContext(ctx).Model(&models.Mark{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return models.Mark{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Mark{}, domain.ErrNotFound
	}

	return r.Get(ctx, id)
}

func (r *markRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Mark{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
