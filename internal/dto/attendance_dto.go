package dto

import (
	"time"

	"github.com/campushq/sis-api/internal/models"
)

// AttendanceCreateRequest captures the payload for recording attendance.
type AttendanceCreateRequest struct {
	StudentID uint   `json:"student_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Present   *bool  `json:"present" validate:"required"`
}

// AttendanceUpdateRequest allows flipping the present flag only; the
// (student, date) identity of a row is immutable.
type AttendanceUpdateRequest struct {
	Present *bool `json:"present" validate:"required"`
}

// AttendanceResponse serializes an attendance record.
type AttendanceResponse struct {
	ID        uint   `json:"id"`
	StudentID uint   `json:"student_id"`
	Date      string `json:"date"`
	Present   bool   `json:"present"`
}

// NewAttendanceResponse converts an attendance model into its DTO.
func NewAttendanceResponse(record models.Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:        record.ID,
		StudentID: record.StudentID,
		Date:      record.Day().Format(time.DateOnly),
		Present:   record.Present,
	}
}
