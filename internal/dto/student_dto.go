package dto

import (
	"time"

	"github.com/campushq/sis-api/internal/models"
)

// StudentCreateRequest captures the payload for registering a student.
type StudentCreateRequest struct {
	EnrollmentNumber string `json:"enrollment_number" validate:"required,min=1,max=50"`
	FirstName        string `json:"first_name" validate:"required,max=100"`
	LastName         string `json:"last_name" validate:"required,max=100"`
	Email            string `json:"email" validate:"omitempty,email"`
	DateOfBirth      string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ClassYear        string `json:"class_year" validate:"omitempty,max=120"`
	Department       string `json:"department" validate:"omitempty,max=120"`
	Semester         *int   `json:"semester" validate:"omitempty,gt=0"`
	Section          string `json:"section" validate:"omitempty,max=50"`
	Contact          string `json:"contact" validate:"omitempty,max=50"`
	Address          string `json:"address"`
	Gender           string `json:"gender" validate:"omitempty,max=20"`
}

// StudentUpdateRequest captures partial update payloads for students.
type StudentUpdateRequest struct {
	FirstName   *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email       *string `json:"email" validate:"omitempty,email"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	ClassYear   *string `json:"class_year" validate:"omitempty,max=120"`
	Department  *string `json:"department" validate:"omitempty,max=120"`
	Semester    *int    `json:"semester" validate:"omitempty,gt=0"`
	Section     *string `json:"section" validate:"omitempty,max=50"`
	Contact     *string `json:"contact" validate:"omitempty,max=50"`
	Address     *string `json:"address"`
	Gender      *string `json:"gender" validate:"omitempty,max=20"`
}

// StudentResponse serializes a student record.
type StudentResponse struct {
	ID               uint   `json:"id"`
	EnrollmentNumber string `json:"enrollment_number"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
	DateOfBirth      string `json:"date_of_birth,omitempty"`
	ClassYear        string `json:"class_year"`
	Department       string `json:"department"`
	Semester         *int   `json:"semester,omitempty"`
	Section          string `json:"section"`
	Contact          string `json:"contact"`
	Address          string `json:"address"`
	Gender           string `json:"gender"`
}

// NewStudentResponse converts a student model into its DTO.
func NewStudentResponse(student models.Student) StudentResponse {
	dob := ""
	if student.DateOfBirth != nil {
		dob = student.DateOfBirth.Format(time.DateOnly)
	}

	return StudentResponse{
		ID:               student.ID,
		EnrollmentNumber: student.EnrollmentNumber,
		FirstName:        student.FirstName,
		LastName:         student.LastName,
		Email:            student.Email,
		DateOfBirth:      dob,
		ClassYear:        student.ClassYear,
		Department:       student.Department,
		Semester:         student.Semester,
		Section:          student.Section,
		Contact:          student.Contact,
		Address:          student.Address,
		Gender:           student.Gender,
	}
}
