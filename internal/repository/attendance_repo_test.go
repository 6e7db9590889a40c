package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/scope"
)

func TestAttendanceRepositoryRejectsDuplicateDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := createStudent(t, db, "TY001", "TY-COMP-A")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	first := models.Attendance{StudentID: student.ID, Date: datatypes.Date(day), Present: true}
	require.NoError(t, repo.Create(ctx, &first))

	duplicate := models.Attendance{StudentID: student.ID, Date: datatypes.Date(day), Present: false}
	require.ErrorIs(t, repo.Create(ctx, &duplicate), domain.ErrDuplicateAttendance)

	// A different day for the same student is fine.
	next := models.Attendance{StudentID: student.ID, Date: datatypes.Date(day.AddDate(0, 0, 1)), Present: false}
	require.NoError(t, repo.Create(ctx, &next))
}

func TestAttendanceRepositoryListScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	studentA := createStudent(t, db, "TY001", "TY-COMP-A")
	studentB := createStudent(t, db, "TY002", "TY-COMP-B")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &models.Attendance{StudentID: studentA.ID, Date: datatypes.Date(day), Present: true}))
	require.NoError(t, repo.Create(ctx, &models.Attendance{StudentID: studentB.ID, Date: datatypes.Date(day), Present: false}))

	all, err := repo.List(ctx, scope.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	own, err := repo.List(ctx, scope.RecordFilter{StudentID: &studentA.ID})
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, studentA.ID, own[0].StudentID)

	// Section scoping resolves through the owning student's section.
	sectionB, err := repo.List(ctx, scope.RecordFilter{Sections: []string{"TY-COMP-B"}})
	require.NoError(t, err)
	require.Len(t, sectionB, 1)
	require.Equal(t, studentB.ID, sectionB[0].StudentID)
}

func TestAttendanceRepositoryRecentIsNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := createStudent(t, db, "TY001", "TY-COMP-A")
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		record := models.Attendance{StudentID: student.ID, Date: datatypes.Date(start.AddDate(0, 0, i)), Present: true}
		require.NoError(t, repo.Create(ctx, &record))
	}

	recent, err := repo.ListRecentForStudent(ctx, student.ID, 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	require.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), recent[0].Day())
	require.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), recent[9].Day())
}

func TestAttendanceRepositoryRangeQuery(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := createStudent(t, db, "TY001", "TY-COMP-A")
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		record := models.Attendance{StudentID: student.ID, Date: datatypes.Date(start.AddDate(0, 0, i)), Present: true}
		require.NoError(t, repo.Create(ctx, &record))
	}

	records, err := repo.ListForStudentsInRange(ctx, []uint{student.ID}, start.AddDate(0, 0, 4), start.AddDate(0, 0, 6))
	require.NoError(t, err)
	require.Len(t, records, 3)

	// An empty population short-circuits without touching the store.
	records, err = repo.ListForStudentsInRange(ctx, nil, start, start.AddDate(0, 0, 9))
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestAttendanceRepositoryUpdatePresentOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := createStudent(t, db, "TY001", "TY-COMP-A")
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	record := models.Attendance{StudentID: student.ID, Date: datatypes.Date(day), Present: true}
	require.NoError(t, repo.Create(ctx, &record))

	updated, err := repo.UpdatePresent(ctx, record.ID, false)
	require.NoError(t, err)
	require.False(t, updated.Present)
	require.Equal(t, day, updated.Day())

	_, err = repo.UpdatePresent(ctx, 9999, true)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttendanceRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAttendanceRepository(db)
	ctx := context.Background()

	student := createStudent(t, db, "TY001", "TY-COMP-A")
	record := models.Attendance{StudentID: student.ID, Date: datatypes.Date(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)), Present: true}
	require.NoError(t, repo.Create(ctx, &record))

	require.NoError(t, repo.Delete(ctx, record.ID))
	require.ErrorIs(t, repo.Delete(ctx, record.ID), domain.ErrNotFound)

	_, err := repo.Get(ctx, record.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
