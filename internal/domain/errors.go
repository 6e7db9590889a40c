package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationRequired indicates the request carried no valid identity.
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrAuthorizationDenied indicates the principal resolved but failed the scope check.
	ErrAuthorizationDenied = errors.New("authorization denied")
	// ErrNotFound indicates the target record is absent.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateAttendance indicates a second attendance row for the same (student, date) pair.
	ErrDuplicateAttendance = errors.New("attendance already recorded for this student and date")
)

// DataIntegrityError reports corrupt stored data encountered during
// aggregation, such as a mark row with max_marks of zero. It is surfaced
// rather than silently coerced so the upstream data can be repaired.
type DataIntegrityError struct {
	Entity string
	ID     uint
	Detail string
}

func (e *DataIntegrityError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("data integrity violation in %s %d: %s", e.Entity, e.ID, e.Detail)
	}
	return fmt.Sprintf("data integrity violation in %s: %s", e.Entity, e.Detail)
}

// IsDataIntegrity reports whether err wraps a DataIntegrityError.
func IsDataIntegrity(err error) bool {
	var integrity *DataIntegrityError
	return errors.As(err, &integrity)
}
