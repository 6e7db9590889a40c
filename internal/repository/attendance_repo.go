package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/scope"
)

// AttendanceRepository provides access to attendance records.
type AttendanceRepository interface {
	List(ctx context.Context, filter scope.RecordFilter) ([]models.Attendance, error)
	ListForStudent(ctx context.Context, studentID uint) ([]models.Attendance, error)
	ListRecentForStudent(ctx context.Context, studentID uint, limit int) ([]models.Attendance, error)
	ListForStudentsInRange(ctx context.Context, studentIDs []uint, from, to time.Time) ([]models.Attendance, error)
	Get(ctx context.Context, id uint) (models.Attendance, error)
	Create(ctx context.Context, attendance *models.Attendance) error
	UpdatePresent(ctx context.Context, id uint, present bool) (models.Attendance, error)
	Delete(ctx context.Context, id uint) error
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository constructs an attendance repository.
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) List(ctx context.Context, filter scope.RecordFilter) ([]models.Attendance, error) {
	query := r.db.WithContext(ctx).Model(&models.Attendance{})
	if filter.StudentID != nil {
		query = query.Where("student_id = ?", *filter.StudentID)
	} else if len(filter.Sections) > 0 {
		query = query.
			Joins("JOIN students ON students.id = attendances.student_id").
			Where("students.section IN ?", filter.Sections)
	}

	var records []models.Attendance
	if err := query.Order("attendances.date DESC, attendances.id DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepository) ListForStudent(ctx context.Context, studentID uint) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepository) ListRecentForStudent(ctx context.Context, studentID uint, limit int) ([]models.Attendance, error) {
	var records []models.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepository) ListForStudentsInRange(ctx context.Context, studentIDs []uint, from, to time.Time) ([]models.Attendance, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}

	var records []models.Attendance
	err := r.db.WithContext(ctx).
		Where("student_id IN ?", studentIDs).
		Where("date >= ? AND date <= ?", datatypes.Date(from), datatypes.Date(to)).
		Order("date, id").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *attendanceRepository) Get(ctx context.Context, id uint) (models.Attendance, error) {
	var record models.Attendance
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Attendance{}, domain.ErrNotFound
		}
		return models.Attendance{}, err
	}

	return record, nil
}

// Create inserts a new attendance row. The store's unique (student, date)
// index rejects duplicate pairs; that violation surfaces as
// ErrDuplicateAttendance instead of a silent second row.
func (r *attendanceRepository) Create(ctx context.Context, attendance *models.Attendance) error {
	if err := r.db.WithContext(ctx).Create(attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateAttendance
		}
		return err
	}

	return nil
}

// UpdatePresent flips the present flag. The (student, date) identity of a row
// is immutable once created, so nothing else is updatable.
func (r *attendanceRepository) UpdatePresent(ctx context.Context, id uint, present bool) (models.Attendance, error) {
	result := r.db.WithContext(ctx).Model(&models.Attendance{}).
		Where("id = ?", id).
		Update("present", present)
	if result.Error != nil {
		return models.Attendance{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Attendance{}, domain.ErrNotFound
	}

	return r.Get(ctx, id)
}

func (r *attendanceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Attendance{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	return nil
}
