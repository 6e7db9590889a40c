package models

import "time"

// Student is the identity record for a learner. The enrollment number doubles
// as the login username, so it must be unique and non-empty for any student
// expected to sign in.
type Student struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	EnrollmentNumber string     `gorm:"size:50;uniqueIndex;not null" json:"enrollment_number"`
	FirstName        string     `gorm:"size:100;not null" json:"first_name"`
	LastName         string     `gorm:"size:100;not null" json:"last_name"`
	Email            string     `gorm:"size:255" json:"email"`
	DateOfBirth      *time.Time `json:"date_of_birth,omitempty"`
	ClassYear        string     `gorm:"size:120" json:"class_year"`
	Department       string     `gorm:"size:120" json:"department"`
	Semester         *int       `json:"semester,omitempty"`
	Section          string     `gorm:"size:50;index" json:"section"`
	Contact          string     `gorm:"size:50" json:"contact"`
	Address          string     `json:"address"`
	Gender           string     `gorm:"size:20" json:"gender"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// FullName joins the stored name parts for display.
func (s Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}
