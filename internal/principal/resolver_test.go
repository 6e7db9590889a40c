package principal

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/models"
)

type stubStudentLookup struct {
	students map[string]models.Student
	err      error
}

func (s stubStudentLookup) GetByEnrollment(_ context.Context, enrollment string) (models.Student, error) {
	if s.err != nil {
		return models.Student{}, s.err
	}
	if student, ok := s.students[enrollment]; ok {
		return student, nil
	}
	return models.Student{}, domain.ErrNotFound
}

type stubFacultyLookup struct {
	profiles map[string]models.FacultyProfile
	err      error
}

func (s stubFacultyLookup) GetByUsername(_ context.Context, username string) (models.FacultyProfile, error) {
	if s.err != nil {
		return models.FacultyProfile{}, s.err
	}
	if profile, ok := s.profiles[username]; ok {
		return profile, nil
	}
	return models.FacultyProfile{}, domain.ErrNotFound
}

func newTestResolver(students stubStudentLookup, faculty stubFacultyLookup) *Resolver {
	return NewResolver(students, faculty, zerolog.New(io.Discard))
}

func TestResolveAnonymousIsAdmin(t *testing.T) {
	resolver := newTestResolver(stubStudentLookup{}, stubFacultyLookup{})

	p, err := resolver.Resolve(context.Background(), Identity{})
	require.NoError(t, err)
	require.Equal(t, KindAdmin, p.Kind)

	// An authenticated identity with an empty username is still anonymous.
	p, err = resolver.Resolve(context.Background(), Identity{Authenticated: true})
	require.NoError(t, err)
	require.Equal(t, KindAdmin, p.Kind)
}

func TestResolveStudentByEnrollment(t *testing.T) {
	resolver := newTestResolver(stubStudentLookup{
		students: map[string]models.Student{
			"TY001": {ID: 42, EnrollmentNumber: "TY001"},
		},
	}, stubFacultyLookup{})

	p, err := resolver.Resolve(context.Background(), Identity{Username: "TY001", Authenticated: true})
	require.NoError(t, err)
	require.Equal(t, KindStudent, p.Kind)
	require.Equal(t, uint(42), p.StudentID)
}

func TestResolveFacultyByProfile(t *testing.T) {
	resolver := newTestResolver(stubStudentLookup{}, stubFacultyLookup{
		profiles: map[string]models.FacultyProfile{
			"prof.sharma": {
				Username: "prof.sharma",
				Subjects: "Data Structures, DBMS",
				Classes:  "TY-COMP-A ,TY-COMP-B",
			},
		},
	})

	p, err := resolver.Resolve(context.Background(), Identity{Username: "prof.sharma", Authenticated: true})
	require.NoError(t, err)
	require.Equal(t, KindFaculty, p.Kind)
	require.Equal(t, []string{"TY-COMP-A", "TY-COMP-B"}, p.Sections)
	require.Equal(t, []string{"Data Structures", "DBMS"}, p.Subjects)
}

func TestResolveStudentMatchWinsOverFaculty(t *testing.T) {
	// A faculty login that collides with an enrollment number classifies as
	// the student; the student probe runs first.
	resolver := newTestResolver(stubStudentLookup{
		students: map[string]models.Student{
			"TY001": {ID: 42, EnrollmentNumber: "TY001"},
		},
	}, stubFacultyLookup{
		profiles: map[string]models.FacultyProfile{
			"TY001": {Username: "TY001", Classes: "TY-COMP-A"},
		},
	})

	p, err := resolver.Resolve(context.Background(), Identity{Username: "TY001", Authenticated: true})
	require.NoError(t, err)
	require.Equal(t, KindStudent, p.Kind)
}

func TestResolveUnmatchedIdentityIsAdmin(t *testing.T) {
	resolver := newTestResolver(stubStudentLookup{}, stubFacultyLookup{})

	p, err := resolver.Resolve(context.Background(), Identity{Username: "registrar", Authenticated: true})
	require.NoError(t, err)
	require.Equal(t, KindAdmin, p.Kind)
}

func TestResolvePropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	resolver := newTestResolver(stubStudentLookup{err: storeErr}, stubFacultyLookup{})

	_, err := resolver.Resolve(context.Background(), Identity{Username: "TY001", Authenticated: true})
	require.ErrorIs(t, err, storeErr)
}
