package dto

import "github.com/campushq/sis-api/internal/models"

// MarkCreateRequest captures the payload for recording a mark entry.
type MarkCreateRequest struct {
	StudentID     uint    `json:"student_id" validate:"required,gt=0"`
	Subject       string  `json:"subject" validate:"required,max=200"`
	MarksObtained float64 `json:"marks_obtained" validate:"gte=0"`
	MaxMarks      float64 `json:"max_marks" validate:"required,gt=0"`
}

// MarkUpdateRequest captures partial update payloads for mark entries.
type MarkUpdateRequest struct {
	Subject       *string  `json:"subject" validate:"omitempty,min=1,max=200"`
	MarksObtained *float64 `json:"marks_obtained" validate:"omitempty,gte=0"`
	MaxMarks      *float64 `json:"max_marks" validate:"omitempty,gt=0"`
}

// MarkResponse serializes a mark record.
type MarkResponse struct {
	ID            uint    `json:"id"`
	StudentID     uint    `json:"student_id"`
	Subject       string  `json:"subject"`
	MarksObtained float64 `json:"marks_obtained"`
	MaxMarks      float64 `json:"max_marks"`
}

// NewMarkResponse converts a mark model into its DTO.
func NewMarkResponse(mark models.Mark) MarkResponse {
	return MarkResponse{
		ID:            mark.ID,
		StudentID:     mark.StudentID,
		Subject:       mark.Subject,
		MarksObtained: mark.MarksObtained,
		MaxMarks:      mark.MaxMarks,
	}
}
