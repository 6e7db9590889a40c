package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/dto"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/principal"
	"github.com/campushq/sis-api/internal/repository"
	"github.com/campushq/sis-api/internal/scope"
)

// StudentService orchestrates student CRUD with scope enforcement.
type StudentService interface {
	List(ctx context.Context, p principal.Principal) ([]dto.StudentResponse, error)
	Get(ctx context.Context, p principal.Principal, id uint) (dto.StudentResponse, error)
	Create(ctx context.Context, p principal.Principal, payload dto.StudentCreateRequest) (dto.StudentResponse, error)
	Update(ctx context.Context, p principal.Principal, id uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error)
	Delete(ctx context.Context, p principal.Principal, id uint) error
}

type studentService struct {
	repo      repository.StudentRepository
	gate      scope.Gate
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo repository.StudentRepository, gate scope.Gate, validate *validator.Validate, logger zerolog.Logger) StudentService {
	return &studentService{
		repo:      repo,
		gate:      gate,
		validator: validate,
		logger:    logger.With().Str("component", "student_service").Logger(),
	}
}

// List deliberately bypasses read scoping: the roster list is shared across
// every role so the frontend can display all students. Per-record reads and
// every mutation still enforce scope; nothing on the write path may reuse
// what this list returned.
func (s *studentService) List(ctx context.Context, _ principal.Principal) ([]dto.StudentResponse, error) {
	students, err := s.repo.List(ctx, scope.Unscoped())
	if err != nil {
		return nil, err
	}

	responses := make([]dto.StudentResponse, 0, len(students))
	for _, student := range students {
		responses = append(responses, dto.NewStudentResponse(student))
	}

	return responses, nil
}

func (s *studentService) Get(ctx context.Context, p principal.Principal, id uint) (dto.StudentResponse, error) {
	student, err := s.repo.Get(ctx, id, scope.ForStudents(p))
	if err != nil {
		return dto.StudentResponse{}, err
	}

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Create(ctx context.Context, p principal.Principal, payload dto.StudentCreateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	// For create the target is described by the incoming payload itself.
	if err := s.gate.Authorize(p, scope.Target{Section: strings.TrimSpace(payload.Section)}); err != nil {
		return dto.StudentResponse{}, err
	}

	student := models.Student{
		EnrollmentNumber: strings.TrimSpace(payload.EnrollmentNumber),
		FirstName:        strings.TrimSpace(payload.FirstName),
		LastName:         strings.TrimSpace(payload.LastName),
		Email:            strings.TrimSpace(payload.Email),
		ClassYear:        strings.TrimSpace(payload.ClassYear),
		Department:       strings.TrimSpace(payload.Department),
		Semester:         payload.Semester,
		Section:          strings.TrimSpace(payload.Section),
		Contact:          strings.TrimSpace(payload.Contact),
		Address:          strings.TrimSpace(payload.Address),
		Gender:           strings.TrimSpace(payload.Gender),
	}
	if payload.DateOfBirth != "" {
		dob, err := time.Parse(time.DateOnly, payload.DateOfBirth)
		if err != nil {
			return dto.StudentResponse{}, err
		}
		student.DateOfBirth = &dob
	}

	if err := s.repo.Create(ctx, &student); err != nil {
		return dto.StudentResponse{}, err
	}

	s.logger.Info().Uint("student_id", student.ID).Str("enrollment", student.EnrollmentNumber).Msg("student created")
	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Update(ctx context.Context, p principal.Principal, id uint, payload dto.StudentUpdateRequest) (dto.StudentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.StudentResponse{}, err
	}

	// The target of an update is the stored row, not the incoming payload:
	// authorization is decided against the section the record lives in today.
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.StudentResponse{}, err
	}
	if err := s.gate.Authorize(p, scope.Target{Section: existing.Section}); err != nil {
		return dto.StudentResponse{}, err
	}

	updates := make(map[string]interface{})
	if payload.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*payload.FirstName)
	}
	if payload.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*payload.LastName)
	}
	if payload.Email != nil {
		updates["email"] = strings.TrimSpace(*payload.Email)
	}
	if payload.DateOfBirth != nil {
		dob, err := time.Parse(time.DateOnly, *payload.DateOfBirth)
		if err != nil {
			return dto.StudentResponse{}, err
		}
		updates["date_of_birth"] = dob
	}
	if payload.ClassYear != nil {
		updates["class_year"] = strings.TrimSpace(*payload.ClassYear)
	}
	if payload.Department != nil {
		updates["department"] = strings.TrimSpace(*payload.Department)
	}
	if payload.Semester != nil {
		updates["semester"] = *payload.Semester
	}
	if payload.Section != nil {
		updates["section"] = strings.TrimSpace(*payload.Section)
	}
	if payload.Contact != nil {
		updates["contact"] = strings.TrimSpace(*payload.Contact)
	}
	if payload.Address != nil {
		updates["address"] = strings.TrimSpace(*payload.Address)
	}
	if payload.Gender != nil {
		updates["gender"] = strings.TrimSpace(*payload.Gender)
	}

	if len(updates) == 0 {
		return dto.NewStudentResponse(existing), nil
	}

	student, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return dto.StudentResponse{}, err
	}

	return dto.NewStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, p principal.Principal, id uint) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.gate.Authorize(p, scope.Target{Section: existing.Section}); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Uint("student_id", id).Msg("student deleted with attendance and marks")
	return nil
}
