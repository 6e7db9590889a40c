package dto

// AnalyticsFilter echoes the cohort filters that were applied together with
// the size of the matched population.
type AnalyticsFilter struct {
	Year         string `json:"year"`
	Division     string `json:"division"`
	StudentCount int    `json:"student_count"`
}

// PerformanceAnalyticsResponse carries the dashboard trend series: one entry
// per day for the six consecutive calendar days ending today, oldest first.
type PerformanceAnalyticsResponse struct {
	Labels       []string        `json:"labels"`
	Attendance   []float64       `json:"attendance"`
	CGPA         []float64       `json:"cgpa"`
	Filter       AnalyticsFilter `json:"filter"`
	SkippedMarks int             `json:"skipped_marks"`
	CacheHit     bool            `json:"cache_hit"`
}
