package models

import "time"

// Mark stores one graded entry for a student. Subject is free text, not a
// foreign key; a student may carry several independent entries for the same
// subject. MaxMarks must be positive whenever a percentage is derived from it.
type Mark struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StudentID     uint      `gorm:"not null;index" json:"student_id"`
	Subject       string    `gorm:"size:200;not null" json:"subject"`
	MarksObtained float64   `gorm:"not null" json:"marks_obtained"`
	MaxMarks      float64   `gorm:"not null;default:100" json:"max_marks"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Student Student `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
