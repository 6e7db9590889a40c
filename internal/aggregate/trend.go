package aggregate

import (
	"time"

	"github.com/campushq/sis-api/internal/models"
)

// TrendDays is the fixed window length of the dashboard trend series.
const TrendDays = 6

// TrendSeries is the day-by-day dashboard series covering the most recent
// TrendDays consecutive calendar days ending today, ordered oldest to newest.
//
// Marks carry no date, so the CGPA component is the population average of
// each student's current CGPA and is identical for every day in the window.
// That is a known simplification carried over deliberately, pending product
// clarification on per-period marks.
type TrendSeries struct {
	Dates           []time.Time
	Labels          []string
	AttendanceRates []float64
	AvgCGPA         []float64
	SkippedMarks    int
}

// BuildTrend assembles the trend series from the window's attendance records
// and the population's marks grouped by student. Only students with at least
// one valid mark enter the CGPA average denominator; malformed marks are
// skipped and counted in SkippedMarks.
func BuildTrend(attendance []models.Attendance, marksByStudent map[uint][]models.Mark, today time.Time) TrendSeries {
	byDay := make(map[string][]models.Attendance, TrendDays)
	for _, record := range attendance {
		key := record.Day().Format("2006-01-02")
		byDay[key] = append(byDay[key], record)
	}

	totalCGPA := 0.0
	counted := 0
	skipped := 0
	for _, marks := range marksByStudent {
		cgpa, ok, skippedHere := studentCGPALenient(marks)
		skipped += skippedHere
		if ok {
			totalCGPA += cgpa
			counted++
		}
	}

	avgCGPA := 0.0
	if counted > 0 {
		avgCGPA = round2(totalCGPA / float64(counted))
	}

	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	series := TrendSeries{
		Dates:           make([]time.Time, 0, TrendDays),
		Labels:          make([]string, 0, TrendDays),
		AttendanceRates: make([]float64, 0, TrendDays),
		AvgCGPA:         make([]float64, 0, TrendDays),
		SkippedMarks:    skipped,
	}

	for i := 0; i < TrendDays; i++ {
		day := start.AddDate(0, 0, -(TrendDays - 1 - i))
		key := day.Format("2006-01-02")

		series.Dates = append(series.Dates, day)
		series.Labels = append(series.Labels, day.Format("Mon"))
		series.AttendanceRates = append(series.AttendanceRates, AttendanceRate(byDay[key]))
		series.AvgCGPA = append(series.AvgCGPA, avgCGPA)
	}

	return series
}
