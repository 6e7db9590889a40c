package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/campushq/sis-api/internal/dto"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/principal"
	"github.com/campushq/sis-api/internal/repository"
	"github.com/campushq/sis-api/internal/scope"
)

// AttendanceService orchestrates attendance CRUD with scope enforcement.
type AttendanceService interface {
	List(ctx context.Context, p principal.Principal) ([]dto.AttendanceResponse, error)
	Create(ctx context.Context, p principal.Principal, payload dto.AttendanceCreateRequest) (dto.AttendanceResponse, error)
	Update(ctx context.Context, p principal.Principal, id uint, payload dto.AttendanceUpdateRequest) (dto.AttendanceResponse, error)
	Delete(ctx context.Context, p principal.Principal, id uint) error
}

type attendanceService struct {
	repo      repository.AttendanceRepository
	students  repository.StudentRepository
	gate      scope.Gate
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo repository.AttendanceRepository, students repository.StudentRepository, gate scope.Gate, validate *validator.Validate, logger zerolog.Logger) AttendanceService {
	return &attendanceService{
		repo:      repo,
		students:  students,
		gate:      gate,
		validator: validate,
		logger:    logger.With().Str("component", "attendance_service").Logger(),
	}
}

func (s *attendanceService) List(ctx context.Context, p principal.Principal) ([]dto.AttendanceResponse, error) {
	records, err := s.repo.List(ctx, scope.ForRecords(p))
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, dto.NewAttendanceResponse(record))
	}

	return responses, nil
}

func (s *attendanceService) Create(ctx context.Context, p principal.Principal, payload dto.AttendanceCreateRequest) (dto.AttendanceResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AttendanceResponse{}, err
	}

	// Attendance resolves scope through its owning student's section.
	student, err := s.students.GetByID(ctx, payload.StudentID)
	if err != nil {
		return dto.AttendanceResponse{}, err
	}
	if err := s.gate.Authorize(p, scope.Target{Section: student.Section}); err != nil {
		return dto.AttendanceResponse{}, err
	}

	day, err := time.Parse(time.DateOnly, payload.Date)
	if err != nil {
		return dto.AttendanceResponse{}, err
	}

	record := models.Attendance{
		StudentID: student.ID,
		Date:      datatypes.Date(day),
		Present:   *payload.Present,
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		return dto.AttendanceResponse{}, err
	}

	return dto.NewAttendanceResponse(record), nil
}

func (s *attendanceService) Update(ctx context.Context, p principal.Principal, id uint, payload dto.AttendanceUpdateRequest) (dto.AttendanceResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AttendanceResponse{}, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return dto.AttendanceResponse{}, err
	}
	owner, err := s.students.GetByID(ctx, existing.StudentID)
	if err != nil {
		return dto.AttendanceResponse{}, err
	}
	if err := s.gate.Authorize(p, scope.Target{Section: owner.Section}); err != nil {
		return dto.AttendanceResponse{}, err
	}

	record, err := s.repo.UpdatePresent(ctx, id, *payload.Present)
	if err != nil {
		return dto.AttendanceResponse{}, err
	}

	return dto.NewAttendanceResponse(record), nil
}

func (s *attendanceService) Delete(ctx context.Context, p principal.Principal, id uint) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	owner, err := s.students.GetByID(ctx, existing.StudentID)
	if err != nil {
		return err
	}
	if err := s.gate.Authorize(p, scope.Target{Section: owner.Section}); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
