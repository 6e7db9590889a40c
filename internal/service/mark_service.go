package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/dto"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/principal"
	"github.com/campushq/sis-api/internal/repository"
	"github.com/campushq/sis-api/internal/scope"
)

// MarkService orchestrates mark CRUD with scope enforcement.
type MarkService interface {
	List(ctx context.Context, p principal.Principal) ([]dto.MarkResponse, error)
	Create(ctx context.Context, p principal.Principal, payload dto.MarkCreateRequest) (dto.MarkResponse, error)
	Update(ctx context.Context, p principal.Principal, id uint, payload dto.MarkUpdateRequest) (dto.MarkResponse, error)
	Delete(ctx context.Context, p principal.Principal, id uint) error
}

type markService struct {
	repo      repository.MarkRepository
	students  repository.StudentRepository
	gate      scope.Gate
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewMarkService constructs the mark service.
func NewMarkService(repo repository.MarkRepository, students repository.StudentRepository, gate scope.Gate, validate *validator.Validate, logger zerolog.Logger) MarkService {
	return &markService{
		repo:      repo,
		students:  students,
		gate:      gate,
		validator: validate,
		logger:    logger.With().Str("component", "mark_service").Logger(),
	}
}

func (s *markService) List(ctx context.Context, p principal.Principal) ([]dto.MarkResponse, error) {
	marks, err := s.repo.List(ctx, scope.ForRecords(p))
	if err != nil {
		return nil, err
	}

	responses := make([]dto.MarkResponse, 0, len(marks))
	for _, mark := range marks {
		responses = append(responses, dto.NewMarkResponse(mark))
	}

	return responses, nil
}

func (s *markService) Create(ctx context.Context, p principal.Principal, payload dto.MarkCreateRequest) (dto.MarkResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.MarkResponse{}, err
	}

	student, err := s.students.GetByID(ctx, payload.StudentID)
	if err != nil {
		return dto.MarkResponse{}, err
	}
	if err := s.gate.Authorize(p, scope.Target{Section: student.Section}); err != nil {
		return dto.MarkResponse{}, err
	}

	mark := models.Mark{
		StudentID:     student.ID,
		Subject:       strings.TrimSpace(payload.Subject),
		MarksObtained: payload.MarksObtained,
		MaxMarks:      payload.MaxMarks,
	}
	if err := s.repo.Create(ctx, &mark); err != nil {
		return dto.MarkResponse{}, err
	}

	return dto.NewMarkResponse(mark), nil
}

func (s *markService) Update(ctx context.Context, p principal.Principal, id uint, payload dto.MarkUpdateRequest) (dto.MarkResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.MarkResponse{}, err
	}

	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return dto.MarkResponse{}, err
	}
	owner, err := s.students.GetByID(ctx, existing.StudentID)
	if err != nil {
		return dto.MarkResponse{}, err
	}
	if err := s.gate.Authorize(p, scope.Target{Section: owner.Section}); err != nil {
		return dto.MarkResponse{}, err
	}

	updates := make(map[string]interface{})
	if payload.Subject != nil {
		updates["subject"] = strings.TrimSpace(*payload.Subject)
	}
	if payload.MarksObtained != nil {
		updates["marks_obtained"] = *payload.MarksObtained
	}
	if payload.MaxMarks != nil {
		updates["max_marks"] = *payload.MaxMarks
	}

	if len(updates) == 0 {
		return dto.NewMarkResponse(existing), nil
	}

	mark, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return dto.MarkResponse{}, err
	}

	return dto.NewMarkResponse(mark), nil
}

func (s *markService) Delete(ctx context.Context, p principal.Principal, id uint) error {
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
