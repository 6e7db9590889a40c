package models

import (
	"time"

	"gorm.io/datatypes"
)

// Attendance records whether a student was present on a calendar date.
// At most one row may exist per (student, date) pair; the composite unique
// index makes the store reject duplicate inserts.
type Attendance struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	StudentID uint           `gorm:"not null;uniqueIndex:idx_attendance_student_date" json:"student_id"`
	Date      datatypes.Date `gorm:"not null;uniqueIndex:idx_attendance_student_date" json:"date"`
	Present   bool           `json:"present"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`

	Student Student `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// Day returns the attendance date as a time.Time truncated to midnight UTC.
func (a Attendance) Day() time.Time {
	t := time.Time(a.Date)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
