package service

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/repository"
)

func newSeedService(db *gorm.DB, enabled bool, token string) SeedService {
	logger := zerolog.New(io.Discard)
	return NewSeedService(
		repository.NewStudentRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewMarkRepository(db),
		repository.NewFacultyProfileRepository(db),
		enabled,
		token,
		logger,
	)
}

func TestSeedServiceDisabled(t *testing.T) {
	svc := newSeedService(setupServiceDB(t), false, "secret")

	_, err := svc.SeedDemo(context.Background(), "secret")
	require.ErrorIs(t, err, ErrSeedDisabled)
}

func TestSeedServiceRejectsBadToken(t *testing.T) {
	svc := newSeedService(setupServiceDB(t), true, "secret")

	_, err := svc.SeedDemo(context.Background(), "wrong")
	require.ErrorIs(t, err, ErrSeedUnauthorized)

	// An empty configured token never matches, even an empty submission.
	svc = newSeedService(setupServiceDB(t), true, "")
	_, err = svc.SeedDemo(context.Background(), "")
	require.ErrorIs(t, err, ErrSeedUnauthorized)
}

func TestSeedServiceCreatesDemoData(t *testing.T) {
	db := setupServiceDB(t)
	svc := newSeedService(db, true, "secret")

	summary, err := svc.SeedDemo(context.Background(), "secret")
	require.NoError(t, err)
	require.Equal(t, 10, summary.Students)
	require.Equal(t, 60, summary.Attendance)
	require.Equal(t, 40, summary.Marks)
	require.Equal(t, 1, summary.Faculty)

	var sectionACount int64
	require.NoError(t, db.Model(&models.Student{}).Where("section = ?", "TY-COMP-A").Count(&sectionACount).Error)
	require.EqualValues(t, 5, sectionACount)

	var profile models.FacultyProfile
	require.NoError(t, db.First(&profile, "username = ?", "prof.sharma").Error)
	require.Equal(t, []string{"TY-COMP-A"}, profile.ClassList())
}
