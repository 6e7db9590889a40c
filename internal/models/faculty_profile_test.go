package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFacultyProfileLists(t *testing.T) {
	profile := FacultyProfile{
		Subjects: " Data Structures ,DBMS, ,Operating Systems",
		Classes:  "TY-COMP-A",
	}

	require.Equal(t, []string{"Data Structures", "DBMS", "Operating Systems"}, profile.SubjectList())
	require.Equal(t, []string{"TY-COMP-A"}, profile.ClassList())
}

func TestFacultyProfileEmptyLists(t *testing.T) {
	profile := FacultyProfile{}
	require.Empty(t, profile.SubjectList())
	require.Empty(t, profile.ClassList())
}

func TestStudentFullName(t *testing.T) {
	require.Equal(t, "Asha Patil", Student{FirstName: "Asha", LastName: "Patil"}.FullName())
	require.Equal(t, "Asha", Student{FirstName: "Asha"}.FullName())
}
