package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/dto"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/principal"
	"github.com/campushq/sis-api/internal/repository"
	"github.com/campushq/sis-api/internal/scope"
)

func newAttendanceService(db *gorm.DB) AttendanceService {
	logger := zerolog.New(io.Discard)
	return NewAttendanceService(
		repository.NewAttendanceRepository(db),
		repository.NewStudentRepository(db),
		scope.NewGate(logger),
		validator.New(validator.WithRequiredStructEnabled()),
		logger,
	)
}

func boolPtr(v bool) *bool { return &v }

func TestAttendanceServiceCreate(t *testing.T) {
	db := setupServiceDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	student := seedStudent(t, db, "TY001", "TY-COMP-A")

	created, err := svc.Create(ctx, facultyFor("TY-COMP-A"), dto.AttendanceCreateRequest{
		StudentID: student.ID,
		Date:      "2025-03-10",
		Present:   boolPtr(true),
	})
	require.NoError(t, err)
	require.Equal(t, "2025-03-10", created.Date)
	require.True(t, created.Present)

	// A second record for the same student and day is a conflict even with a
	// different present flag.
	_, err = svc.Create(ctx, facultyFor("TY-COMP-A"), dto.AttendanceCreateRequest{
		StudentID: student.ID,
		Date:      "2025-03-10",
		Present:   boolPtr(false),
	})
	require.ErrorIs(t, err, domain.ErrDuplicateAttendance)
}

func TestAttendanceServiceCreateOutOfScope(t *testing.T) {
	db := setupServiceDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	other := seedStudent(t, db, "TY002", "TY-COMP-B")

	_, err := svc.Create(ctx, facultyFor("TY-COMP-A"), dto.AttendanceCreateRequest{
		StudentID: other.ID,
		Date:      "2025-03-10",
		Present:   boolPtr(true),
	})
	require.ErrorIs(t, err, domain.ErrAuthorizationDenied)

	var count int64
	require.NoError(t, db.Model(&models.Attendance{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestAttendanceServiceListScopedToStudent(t *testing.T) {
	db := setupServiceDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	own := seedStudent(t, db, "TY001", "TY-COMP-A")
	other := seedStudent(t, db, "TY002", "TY-COMP-B")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&models.Attendance{StudentID: own.ID, Date: datatypes.Date(day), Present: true}).Error)
	require.NoError(t, db.Create(&models.Attendance{StudentID: other.ID, Date: datatypes.Date(day), Present: false}).Error)

	records, err := svc.List(ctx, principal.Principal{Kind: principal.KindStudent, StudentID: own.ID})
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, own.ID, records[0].StudentID)
}

func TestAttendanceServiceUpdateGatedByOwnerSection(t *testing.T) {
	db := setupServiceDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	other := seedStudent(t, db, "TY002", "TY-COMP-B")
	record := models.Attendance{StudentID: other.ID, Date: datatypes.Date(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)), Present: true}
	require.NoError(t, db.Create(&record).Error)

	_, err := svc.Update(ctx, facultyFor("TY-COMP-A"), record.ID, dto.AttendanceUpdateRequest{Present: boolPtr(false)})
	require.ErrorIs(t, err, domain.ErrAuthorizationDenied)

	updated, err := svc.Update(ctx, facultyFor("TY-COMP-B"), record.ID, dto.AttendanceUpdateRequest{Present: boolPtr(false)})
	require.NoError(t, err)
	require.False(t, updated.Present)
}

func TestAttendanceServiceDeleteGatedByOwnerSection(t *testing.T) {
	db := setupServiceDB(t)
	svc := newAttendanceService(db)
	ctx := context.Background()

	other := seedStudent(t, db, "TY002", "TY-COMP-B")
	record := models.Attendance{StudentID: other.ID, Date: datatypes.Date(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)), Present: true}
	require.NoError(t, db.Create(&record).Error)

	require.ErrorIs(t, svc.Delete(ctx, facultyFor("TY-COMP-A"), record.ID), domain.ErrAuthorizationDenied)
	require.NoError(t, svc.Delete(ctx, principal.Principal{Kind: principal.KindAdmin}, record.ID))
	require.ErrorIs(t, svc.Delete(ctx, principal.Principal{Kind: principal.KindAdmin}, record.ID), domain.ErrNotFound)
}
