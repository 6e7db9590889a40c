package scope

import (
	"github.com/campushq/sis-api/internal/principal"
)

// StudentFilter narrows a student query to the rows visible to a principal.
// A zero filter means unscoped. OwnID takes precedence over Sections; the two
// are never set together.
type StudentFilter struct {
	OwnID    *uint
	Sections []string
}

// RecordFilter narrows attendance and mark queries. Records resolve scope
// through their owning student's section.
type RecordFilter struct {
	StudentID *uint
	Sections  []string
}

// ForStudents derives the read filter over student records. A faculty
// principal with an empty section list deliberately falls through to full
// visibility, matching the admin fallback the rest of the scoping applies.
func ForStudents(p principal.Principal) StudentFilter {
	switch p.Kind {
	case principal.KindStudent:
		id := p.StudentID
		return StudentFilter{OwnID: &id}
	case principal.KindFaculty:
		if len(p.Sections) == 0 {
			return StudentFilter{}
		}
		return StudentFilter{Sections: p.Sections}
	default:
		return StudentFilter{}
	}
}

// ForRecords derives the read filter over attendance and mark records.
func ForRecords(p principal.Principal) RecordFilter {
	switch p.Kind {
	case principal.KindStudent:
		id := p.StudentID
		return RecordFilter{StudentID: &id}
	case principal.KindFaculty:
		if len(p.Sections) == 0 {
			return RecordFilter{}
		}
		return RecordFilter{Sections: p.Sections}
	default:
		return RecordFilter{}
	}
}

// Unscoped returns the filter used by the "list all students" carve-out: the
// roster list endpoint always returns the full set so every role can render a
// shared roster. This is a documented exception, not scoping that was
// forgotten; write authorization must never be derived from what that list
// returned.
func Unscoped() StudentFilter {
	return StudentFilter{}
}

// Target describes the row a mutation wants to touch, reduced to the one
// attribute scoping cares about: the section of the record's owning student.
// For student rows that is the student's own section.
type Target struct {
	Section string
}

// CanMutate decides whether a principal may create, update, or delete the
// target. Students are read-only over their own data and are denied here
// defensively even though the API layer does not expose them a write surface.
// Faculty admit only on exact, case-sensitive section membership; an empty
// faculty section list admits everything, the same fallback as the read path.
func CanMutate(p principal.Principal, target Target) bool {
	switch p.Kind {
	case principal.KindAdmin:
		return true
	case principal.KindStudent:
		return false
	case principal.KindFaculty:
		return p.CoversSection(target.Section)
	default:
		return false
	}
}
