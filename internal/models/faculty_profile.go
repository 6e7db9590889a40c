package models

import (
	"strings"
	"time"
)

// FacultyProfile links a staff login to the subjects and class sections the
// member is responsible for. Both lists are stored as comma-separated text;
// duplicates in the underlying lists are harmless for scoping purposes.
type FacultyProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Subjects  string    `json:"subjects"`
	Classes   string    `json:"classes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubjectList splits the stored subjects string, trimming whitespace and
// discarding empty entries.
func (p FacultyProfile) SubjectList() []string {
	return splitCommaList(p.Subjects)
}

// ClassList splits the stored classes string the same way as SubjectList.
func (p FacultyProfile) ClassList() []string {
	return splitCommaList(p.Classes)
}

func splitCommaList(input string) []string {
	parts := strings.Split(input, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
