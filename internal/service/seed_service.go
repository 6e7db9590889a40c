package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

// SeedSummary reports how many rows demo seeding created.
type SeedSummary struct {
	Students   int `json:"students"`
	Attendance int `json:"attendance"`
	Marks      int `json:"marks"`
	Faculty    int `json:"faculty"`
}

// SeedService loads demo students, attendance, marks, and a faculty profile
// for local development and dashboard demos.
type SeedService interface {
	SeedDemo(ctx context.Context, token string) (SeedSummary, error)
}

type seedService struct {
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
	marks      repository.MarkRepository
	faculty    repository.FacultyProfileRepository
	enabled    bool
	token      string
	logger     zerolog.Logger
	now        func() time.Time
}

// NewSeedService constructs a seeding service.
func NewSeedService(students repository.StudentRepository, attendance repository.AttendanceRepository, marks repository.MarkRepository, faculty repository.FacultyProfileRepository, enabled bool, token string, logger zerolog.Logger) SeedService {
	return &seedService{
		students:   students,
		attendance: attendance,
		marks:      marks,
		faculty:    faculty,
		enabled:    enabled,
		token:      token,
		logger:     logger.With().Str("component", "seed_service").Logger(),
		now:        time.Now,
	}
}

func (s *seedService) SeedDemo(ctx context.Context, token string) (SeedSummary, error) {
	if !s.enabled {
		return SeedSummary{}, ErrSeedDisabled
	}
	if s.token == "" || token != s.token {
		return SeedSummary{}, ErrSeedUnauthorized
	}

	summary := SeedSummary{}
	subjects := []string{"Data Structures", "DBMS", "Operating Systems", "Computer Networks"}
	sections := []string{"TY-COMP-A", "TY-COMP-B"}

	semester := 5
	today := s.now().UTC()

	for i := 0; i < 10; i++ {
		section := sections[i%len(sections)]
		student := models.Student{
			EnrollmentNumber: fmt.Sprintf("TY%03d", i+1),
			FirstName:        fmt.Sprintf("Student%02d", i+1),
			LastName:         "Demo",
			Email:            fmt.Sprintf("ty%03d@college.edu", i+1),
			ClassYear:        "TY Computer",
			Department:       "Computer Engineering",
			Semester:         &semester,
			Section:          section,
		}
		if err := s.students.Create(ctx, &student); err != nil {
			return summary, err
		}
		summary.Students++

		for day := 0; day < 6; day++ {
			record := models.Attendance{
				StudentID: student.ID,
				Date:      datatypes.Date(today.AddDate(0, 0, -day)),
				Present:   (i+day)%5 != 0,
			}
			if err := s.attendance.Create(ctx, &record); err != nil {
				return summary, err
			}
			summary.Attendance++
		}

		for j, subject := range subjects {
			mark := models.Mark{
				StudentID:     student.ID,
				Subject:       subject,
				MarksObtained: float64(60 + (i*7+j*5)%40),
				MaxMarks:      100,
			}
			if err := s.marks.Create(ctx, &mark); err != nil {
				return summary, err
			}
			summary.Marks++
		}
	}

	profile := models.FacultyProfile{
		Username: "prof.sharma",
		Subjects: "Data Structures,DBMS",
		Classes:  "TY-COMP-A",
	}
	if err := s.faculty.Upsert(ctx, &profile); err != nil {
		return summary, err
	}
	summary.Faculty++

	s.logger.Info().
		Int("students", summary.Students).
		Int("attendance", summary.Attendance).
		Int("marks", summary.Marks).
		Msg("demo data seeded")

	return summary, nil
}
