package scope

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/principal"
)

func TestForStudentsAdminIsUnscoped(t *testing.T) {
	filter := ForStudents(principal.Principal{Kind: principal.KindAdmin})
	require.Nil(t, filter.OwnID)
	require.Empty(t, filter.Sections)
}

func TestForStudentsStudentSeesOnlySelf(t *testing.T) {
	filter := ForStudents(principal.Principal{Kind: principal.KindStudent, StudentID: 42})
	require.NotNil(t, filter.OwnID)
	require.Equal(t, uint(42), *filter.OwnID)
	require.Empty(t, filter.Sections)
}

func TestForStudentsFacultyScopedToSections(t *testing.T) {
	filter := ForStudents(principal.Principal{
		Kind:     principal.KindFaculty,
		Sections: []string{"TY-COMP-A", "TY-COMP-B"},
	})
	require.Nil(t, filter.OwnID)
	require.Equal(t, []string{"TY-COMP-A", "TY-COMP-B"}, filter.Sections)
}

func TestForStudentsFacultyWithoutSectionsFallsBackToUnscoped(t *testing.T) {
	filter := ForStudents(principal.Principal{Kind: principal.KindFaculty})
	require.Nil(t, filter.OwnID)
	require.Empty(t, filter.Sections)
}

func TestForRecordsMirrorsStudentScoping(t *testing.T) {
	filter := ForRecords(principal.Principal{Kind: principal.KindStudent, StudentID: 7})
	require.NotNil(t, filter.StudentID)
	require.Equal(t, uint(7), *filter.StudentID)

	filter = ForRecords(principal.Principal{Kind: principal.KindFaculty, Sections: []string{"TY-COMP-A"}})
	require.Nil(t, filter.StudentID)
	require.Equal(t, []string{"TY-COMP-A"}, filter.Sections)

	filter = ForRecords(principal.Principal{Kind: principal.KindAdmin})
	require.Nil(t, filter.StudentID)
	require.Empty(t, filter.Sections)
}

func TestCanMutate(t *testing.T) {
	target := Target{Section: "TY-COMP-A"}

	tests := []struct {
		name      string
		principal principal.Principal
		allowed   bool
	}{
		{"admin always allowed", principal.Principal{Kind: principal.KindAdmin}, true},
		{"student never allowed", principal.Principal{Kind: principal.KindStudent, StudentID: 42}, false},
		{"faculty in section", principal.Principal{Kind: principal.KindFaculty, Sections: []string{"TY-COMP-A"}}, true},
		{"faculty outside section", principal.Principal{Kind: principal.KindFaculty, Sections: []string{"TY-COMP-B"}}, false},
		{"faculty match is case sensitive", principal.Principal{Kind: principal.KindFaculty, Sections: []string{"ty-comp-a"}}, false},
		{"faculty without sections covers everything", principal.Principal{Kind: principal.KindFaculty}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.allowed, CanMutate(tt.principal, target))
		})
	}
}

func TestGateAuthorizeDeniesWithDomainError(t *testing.T) {
	gate := NewGate(zerolog.New(io.Discard))

	err := gate.Authorize(principal.Principal{Kind: principal.KindStudent, StudentID: 42}, Target{Section: "TY-COMP-A"})
	require.ErrorIs(t, err, domain.ErrAuthorizationDenied)

	err = gate.Authorize(principal.Principal{Kind: principal.KindFaculty, Sections: []string{"TY-COMP-A"}}, Target{Section: "TY-COMP-A"})
	require.NoError(t, err)
}
