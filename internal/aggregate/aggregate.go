package aggregate

import (
	"math"

	"github.com/campushq/sis-api/internal/domain"
	"github.com/campushq/sis-api/internal/models"
)

// CGPA computes a student's grade on the 10-point scale: the arithmetic mean
// of each mark's percentage (not weighted by max marks) divided by 10,
// rounded to two decimals. A student with no marks has a CGPA of 0.0 by
// definition. A mark with max_marks <= 0 is corrupt input and fails fast
// rather than producing Inf or NaN; this variant backs the single-student
// profile view, which must not silently drop data the student is entitled
// to see accurately.
func CGPA(marks []models.Mark) (float64, error) {
	if len(marks) == 0 {
		return 0.0, nil
	}

	total := 0.0
	for _, mark := range marks {
		if mark.MaxMarks <= 0 {
			return 0, &domain.DataIntegrityError{
				Entity: "mark",
				ID:     mark.ID,
				Detail: "max_marks must be positive",
			}
		}
		total += mark.MarksObtained / mark.MaxMarks * 100
	}

	avgPercentage := total / float64(len(marks))
	return round2(avgPercentage / 10), nil
}

// studentCGPALenient is the population-aggregation variant: malformed marks
// are skipped and counted instead of aborting the whole computation. ok is
// false when the student has no valid marks, in which case the student is
// excluded from population averages rather than counted as 0.
func studentCGPALenient(marks []models.Mark) (cgpa float64, ok bool, skipped int) {
	total := 0.0
	counted := 0
	for _, mark := range marks {
		if mark.MaxMarks <= 0 {
			skipped++
			continue
		}
		total += mark.MarksObtained / mark.MaxMarks * 100
		counted++
	}

	if counted == 0 {
		return 0, false, skipped
	}
	return total / float64(counted) / 10, true, skipped
}

// AttendanceRate computes the present percentage over the given records,
// rounded to one decimal. An empty population yields 0.0, not an error.
func AttendanceRate(records []models.Attendance) float64 {
	if len(records) == 0 {
		return 0.0
	}

	present := 0
	for _, record := range records {
		if record.Present {
			present++
		}
	}

	return round1(float64(present) / float64(len(records)) * 100)
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
