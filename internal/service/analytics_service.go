package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/campushq/sis-api/internal/aggregate"
	"github.com/campushq/sis-api/internal/dto"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/repository"
)

// AnalyticsService aggregates the dashboard performance trend.
type AnalyticsService interface {
	GetPerformance(ctx context.Context, year, division string) (dto.PerformanceAnalyticsResponse, error)
}

type analyticsService struct {
	students   repository.StudentRepository
	attendance repository.AttendanceRepository
	marks      repository.MarkRepository
	cache      *redis.Client
	cacheTTL   time.Duration
	logger     zerolog.Logger
	now        func() time.Time
}

// NewAnalyticsService constructs the analytics aggregator.
func NewAnalyticsService(students repository.StudentRepository, attendance repository.AttendanceRepository, marks repository.MarkRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		students:   students,
		attendance: attendance,
		marks:      marks,
		cache:      cache,
		cacheTTL:   ttl,
		logger:     logger.With().Str("component", "analytics_service").Logger(),
		now:        time.Now,
	}
}

// GetPerformance computes the six-day trend for the filtered population.
// This endpoint feeds the shared dashboard and deliberately does not apply
// principal scoping; the year filter is a class-year prefix match and the
// division filter a section suffix match ("A" matches "TY-COMP-A").
func (s *analyticsService) GetPerformance(ctx context.Context, year, division string) (dto.PerformanceAnalyticsResponse, error) {
	cacheKey := fmt.Sprintf("analytics:performance:year=%s:division=%s", year, division)
	tracer := otel.Tracer("github.com/campushq/sis-api/internal/service/analytics")
	ctx, span := tracer.Start(ctx, "analytics.performance", trace.WithSpanKind(trace.SpanKindInternal))
	span.SetAttributes(attribute.String("analytics.cache_key", cacheKey))
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var response dto.PerformanceAnalyticsResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				response.CacheHit = true
				span.SetAttributes(attribute.Bool("analytics.cache_hit", true))
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read analytics cache")
			span.RecordError(err)
		}
	}

	sectionSuffix := ""
	if division != "" {
		sectionSuffix = "-" + division
	}

	students, err := s.students.ListForAnalytics(ctx, year, sectionSuffix)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_students_failed")
		return dto.PerformanceAnalyticsResponse{}, err
	}

	studentIDs := make([]uint, 0, len(students))
	for _, student := range students {
		studentIDs = append(studentIDs, student.ID)
	}

	today := s.now().UTC()
	windowStart := today.AddDate(0, 0, -(aggregate.TrendDays - 1))

	attendance, err := s.attendance.ListForStudentsInRange(ctx, studentIDs, windowStart, today)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_attendance_failed")
		return dto.PerformanceAnalyticsResponse{}, err
	}

	marks, err := s.marks.ListForStudents(ctx, studentIDs)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_marks_failed")
		return dto.PerformanceAnalyticsResponse{}, err
	}

	marksByStudent := make(map[uint][]models.Mark, len(studentIDs))
	for _, mark := range marks {
		marksByStudent[mark.StudentID] = append(marksByStudent[mark.StudentID], mark)
	}

	series := aggregate.BuildTrend(attendance, marksByStudent, today)
	response := dto.PerformanceAnalyticsResponse{
		Labels:     series.Labels,
		Attendance: series.AttendanceRates,
		CGPA:       series.AvgCGPA,
		Filter: dto.AnalyticsFilter{
			Year:         year,
			Division:     division,
			StudentCount: len(studentIDs),
		},
		SkippedMarks: series.SkippedMarks,
	}

	span.SetAttributes(
		attribute.Int("analytics.student_count", len(studentIDs)),
		attribute.Int("analytics.skipped_marks", series.SkippedMarks),
	)
	if series.SkippedMarks > 0 {
		s.logger.Warn().Int("skipped_marks", series.SkippedMarks).Msg("skipped malformed mark records during trend aggregation")
	}

	if s.cache != nil {
		payload, err := json.Marshal(response)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store analytics cache")
				span.RecordError(err)
			}
		}
	}

	return response, nil
}
