package dto

// SubjectMarks is one graded entry on the profile view.
type SubjectMarks struct {
	Name  string  `json:"name"`
	Marks float64 `json:"marks"`
	Total float64 `json:"total"`
}

// AttendanceEntry is one recent attendance row on the profile view.
type AttendanceEntry struct {
	Date    string `json:"date"`
	Present bool   `json:"present"`
	Day     string `json:"day"`
}

// ProfileResponse is the flat payload backing the student profile page:
// identity fields, the two computed metrics, the ten most recent attendance
// entries newest-first, and every mark entry.
type ProfileResponse struct {
	Name             string            `json:"name"`
	Enrollment       string            `json:"enrollment"`
	Class            string            `json:"class"`
	Department       string            `json:"department"`
	Section          string            `json:"section"`
	Email            string            `json:"email"`
	Contact          string            `json:"contact"`
	DateOfBirth      string            `json:"dob"`
	Gender           string            `json:"gender"`
	Address          string            `json:"address"`
	Semester         int               `json:"semester"`
	CGPA             float64           `json:"cgpa"`
	Attendance       float64           `json:"attendance"`
	Rank             string            `json:"rank"`
	Subjects         []SubjectMarks    `json:"subjects"`
	RecentAttendance []AttendanceEntry `json:"recent_attendance"`
}
