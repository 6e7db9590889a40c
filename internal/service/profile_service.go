package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/aggregate"
	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/dto"
	"github.com/campushq/sis-api/internal/principal"
	"github.com/campushq/sis-api/internal/repository"
)

// profileRecentDays is how many recent attendance entries the profile shows.
const profileRecentDays = 10

// ProfileService assembles the logged-in student's profile view.
type ProfileService interface {
	GetProfile(ctx context.Context, identity principal.Identity) (dto.ProfileResponse, error)
}

type profileService struct {
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
	marks      repository.MarkRepository
	logger     zerolog.Logger
}

// NewProfileService constructs the profile assembler.
func NewProfileService(students repository.StudentRepository, attendance repository.AttendanceRepository, marks repository.MarkRepository, logger zerolog.Logger) ProfileService {
	return &profileService{
		students:   students,
		attendance: attendance,
		marks:      marks,
		logger:     logger.With().Str("component", "profile_service").Logger(),
	}
}

// GetProfile re-validates the identity-to-student match even though the
// principal resolver already confirmed it; this may run in a separate request
// from the one that resolved the principal. CGPA here is strict: a corrupt
// mark surfaces as a data integrity failure rather than silently dropping
// data the student is entitled to see accurately.
func (s *profileService) GetProfile(ctx context.Context, identity principal.Identity) (dto.ProfileResponse, error) {
	if !identity.Authenticated || identity.Username == "" {
		return dto.ProfileResponse{}, domain.ErrAuthenticationRequired
	}

	student, err := s.students.GetByEnrollment(ctx, identity.Username)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	allAttendance, err := s.attendance.ListForStudent(ctx, student.ID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}
	recent, err := s.attendance.ListRecentForStudent(ctx, student.ID, profileRecentDays)
	if err != nil {
		return dto.ProfileResponse{}, err
	}
	marks, err := s.marks.ListForStudent(ctx, student.ID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	cgpa, err := aggregate.CGPA(marks)
	if err != nil {
		s.logger.Error().Err(err).Uint("student_id", student.ID).Msg("corrupt mark data on profile view")
		return dto.ProfileResponse{}, err
	}

	subjects := make([]dto.SubjectMarks, 0, len(marks))
	for _, mark := range marks {
		subjects = append(subjects, dto.SubjectMarks{
			Name:  mark.Subject,
			Marks: mark.MarksObtained,
			Total: mark.MaxMarks,
		})
	}

	recentEntries := make([]dto.AttendanceEntry, 0, len(recent))
	for _, record := range recent {
		day := record.Day()
		recentEntries = append(recentEntries, dto.AttendanceEntry{
			Date:    day.Format(time.DateOnly),
			Present: record.Present,
			Day:     day.Format("Monday"),
		})
	}

	semester := 5
	if student.Semester != nil {
		semester = *student.Semester
	}

	dob := ""
	if student.DateOfBirth != nil {
		dob = student.DateOfBirth.Format(time.DateOnly)
	}

	return dto.ProfileResponse{
		Name:             student.FullName(),
		Enrollment:       student.EnrollmentNumber,
		Class:            student.ClassYear,
		Department:       student.Department,
		Section:          student.Section,
		Email:            student.Email,
		Contact:          student.Contact,
		DateOfBirth:      dob,
		Gender:           student.Gender,
		Address:          student.Address,
		Semester:         semester,
		CGPA:             cgpa,
		Attendance:       aggregate.AttendanceRate(allAttendance),
		Rank:             "N/A",
		Subjects:         subjects,
		RecentAttendance: recentEntries,
	}, nil
}
