package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/principal"
	"github.com/campushq/sis-api/internal/repository"
)

func newProfileService(db *gorm.DB) ProfileService {
	logger := zerolog.New(io.Discard)
	return NewProfileService(
		repository.NewStudentRepository(db),
		repository.NewAttendanceRepository(db),
		repository.NewMarkRepository(db),
		logger,
	)
}

func identityFor(username string) principal.Identity {
	return principal.Identity{Username: username, Authenticated: true}
}

func TestProfileServiceRequiresAuthentication(t *testing.T) {
	svc := newProfileService(setupServiceDB(t))

	_, err := svc.GetProfile(context.Background(), principal.Identity{})
	require.ErrorIs(t, err, domain.ErrAuthenticationRequired)
}

func TestProfileServiceUnknownEnrollment(t *testing.T) {
	svc := newProfileService(setupServiceDB(t))

	_, err := svc.GetProfile(context.Background(), identityFor("TY999"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProfileServiceAssemblesMetrics(t *testing.T) {
	db := setupServiceDB(t)
	svc := newProfileService(db)
	ctx := context.Background()

	student := seedStudent(t, db, "TY001", "TY-COMP-A")

	for _, obtained := range []float64{90, 80, 70} {
		require.NoError(t, db.Create(&models.Mark{StudentID: student.ID, Subject: "Subject", MarksObtained: obtained, MaxMarks: 100}).Error)
	}

	// 8 of 9 days present is 88.9 percent after rounding.
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 9; i++ {
		record := models.Attendance{StudentID: student.ID, Date: datatypes.Date(start.AddDate(0, 0, i)), Present: i != 0}
		require.NoError(t, db.Create(&record).Error)
	}

	profile, err := svc.GetProfile(ctx, identityFor("TY001"))
	require.NoError(t, err)

	require.Equal(t, "TY001", profile.Enrollment)
	require.Equal(t, "Student TY001", profile.Name)
	require.Equal(t, 8.0, profile.CGPA)
	require.Equal(t, 88.9, profile.Attendance)
	require.Equal(t, "N/A", profile.Rank)
	require.Len(t, profile.Subjects, 3)
	require.Len(t, profile.RecentAttendance, 9)

	// Recent attendance is newest first and carries the weekday name.
	require.Equal(t, "2025-03-09", profile.RecentAttendance[0].Date)
	require.Equal(t, "Sunday", profile.RecentAttendance[0].Day)
}

func TestProfileServiceDefaultsAndRecentWindow(t *testing.T) {
	db := setupServiceDB(t)
	svc := newProfileService(db)
	ctx := context.Background()

	student := seedStudent(t, db, "TY001", "TY-COMP-A")

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		record := models.Attendance{StudentID: student.ID, Date: datatypes.Date(start.AddDate(0, 0, i)), Present: true}
		require.NoError(t, db.Create(&record).Error)
	}

	profile, err := svc.GetProfile(ctx, identityFor("TY001"))
	require.NoError(t, err)

	// Without a stored semester the view reports the fifth.
	require.Equal(t, 5, profile.Semester)
	require.Equal(t, 0.0, profile.CGPA)
	require.Equal(t, 100.0, profile.Attendance)
	require.Len(t, profile.RecentAttendance, 10)
	require.Equal(t, "2025-03-14", profile.RecentAttendance[0].Date)
	require.Equal(t, "2025-03-05", profile.RecentAttendance[9].Date)
}

func TestProfileServiceSurfacesCorruptMarks(t *testing.T) {
	db := setupServiceDB(t)
	svc := newProfileService(db)
	ctx := context.Background()

	student := seedStudent(t, db, "TY001", "TY-COMP-A")

	// The store defaults max_marks to 100, so corrupting the row takes an
	// explicit update after the insert.
	mark := models.Mark{StudentID: student.ID, Subject: "DBMS", MarksObtained: 50, MaxMarks: 100}
	require.NoError(t, db.Create(&mark).Error)
	require.NoError(t, db.Model(&models.Mark{}).Where("id = ?", mark.ID).Update("max_marks", 0).Error)

	_, err := svc.GetProfile(ctx, identityFor("TY001"))
	require.Error(t, err)
	require.True(t, domain.IsDataIntegrity(err))
}
