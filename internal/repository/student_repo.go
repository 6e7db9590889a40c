package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/scope"
)

// StudentRepository provides access to student records.
type StudentRepository interface {
	List(ctx context.Context, filter scope.StudentFilter) ([]models.Student, error)
	ListForAnalytics(ctx context.Context, classYearPrefix, sectionSuffix string) ([]models.Student, error)
	Get(ctx context.Context, id uint, filter scope.StudentFilter) (models.Student, error)
	GetByID(ctx context.Context, id uint) (models.Student, error)
	GetByEnrollment(ctx context.Context, enrollment string) (models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Student, error)
	Delete(ctx context.Context, id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository constructs a student repository.
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func applyStudentScope(query *gorm.DB, filter scope.StudentFilter) *gorm.DB {
	if filter.OwnID != nil {
		return query.Where("id = ?", *filter.OwnID)
	}
	if len(filter.Sections) > 0 {
		return query.Where("section IN ?", filter.Sections)
	}
	return query
}

func (r *studentRepository) List(ctx context.Context, filter scope.StudentFilter) ([]models.Student, error) {
	query := applyStudentScope(r.db.WithContext(ctx).Model(&models.Student{}), filter)

	var students []models.Student
	if err := query.Order("id").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) ListForAnalytics(ctx context.Context, classYearPrefix, sectionSuffix string) ([]models.Student, error) {
	query := r.db.WithContext(ctx).Model(&models.Student{})
	if classYearPrefix != "" {
		query = query.Where("class_year LIKE ?", classYearPrefix+"%")
	}
	if sectionSuffix != "" {
		query = query.Where("section LIKE ?", "%"+sectionSuffix)
	}

	var students []models.Student
	if err := query.Order("id").Find(&students).Error; err != nil {
		return nil, err
	}

	return students, nil
}

func (r *studentRepository) Get(ctx context.Context, id uint, filter scope.StudentFilter) (models.Student, error) {
	query := applyStudentScope(r.db.WithContext(ctx), filter)

	var student models.Student
	if err := query.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, domain.ErrNotFound
		}
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) GetByID(ctx context.Context, id uint) (models.Student, error) {
	return r.Get(ctx, id, scope.StudentFilter{})
}

func (r *studentRepository) GetByEnrollment(ctx context.Context, enrollment string) (models.Student, error) {
	var student models.Student
	if err := r.db.WithContext(ctx).First(&student, "enrollment_number = ?", enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Student{}, domain.ErrNotFound
		}
		return models.Student{}, err
	}

	return student, nil
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) (models.Student, error) {
	tx := r.db.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id)
	if err := tx.Updates(updates).Error; err != nil {
		return models.Student{}, err
	}

	return r.GetByID(ctx, id)
}

// Delete removes the student together with its attendance and mark records.
// The cascade runs in one transaction so a failure leaves nothing half-deleted.
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", id).Delete(&models.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", id).Delete(&models.Mark{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Student{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return nil
	})
}
