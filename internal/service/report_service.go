package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultReportWindowDays is the default reporting window.
	DefaultReportWindowDays = 30

	// DefaultHabitsMinN is the minimum group size for the per-tag report.
	DefaultHabitsMinN = 3
)

// ReportService aggregates persisted sleep records into dashboard
// reports and CSV exports.
type ReportService interface {
	Aggregates(ctx context.Context, filter domain.ReportFilter) (*domain.AggregatesResponse, error)
	Timeseries(ctx context.Context, filter domain.ReportFilter) (*domain.TimeseriesResponse, error)
	Distribution(ctx context.Context, filter domain.ReportFilter) (*domain.DistributionResponse, error)
	HabitsQuality(ctx context.Context, filter domain.ReportFilter) (*domain.HabitsQualityResponse, error)
	ExportRecordsCSV(ctx context.Context, filter domain.ReportFilter, w io.Writer) error
	ExportSubjectsCSV(ctx context.Context, w io.Writer) error
	BuildInsightsContext(ctx context.Context, filter domain.ReportFilter) (*domain.ReportInsightsContext, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

// normalize applies the filter defaults and derives the window start.
func (s *reportService) normalize(filter domain.ReportFilter) (domain.ReportFilter, time.Time) {
	if filter.Days <= 0 {
		filter.Days = DefaultReportWindowDays
	}
	if filter.MinN <= 0 {
		filter.MinN = DefaultHabitsMinN
	}
	since := domain.Today().AddDate(0, 0, -filter.Days)
	return filter, since
}

func (s *reportService) Aggregates(ctx context.Context, filter domain.ReportFilter) (*domain.AggregatesResponse, error) {
	filter, since := s.normalize(filter)

	tracer := otel.Tracer("sueno-habitos-api/reports")
	ctx, span := tracer.Start(ctx, "ReportService.Aggregates",
		trace.WithAttributes(
			attribute.Int("window.days", filter.Days),
			attribute.String("window.since", since.Format("2006-01-02")),
		),
	)
	defer span.End()

	byGender, err := s.repo.AggregatesByGender(ctx, since)
	if err != nil {
		return nil, err
	}
	byAgeBucket, err := s.repo.AggregatesByAgeBucket(ctx, since)
	if err != nil {
		return nil, err
	}

	if byGender == nil {
		byGender = []domain.GenderAggregate{}
	}
	if byAgeBucket == nil {
		byAgeBucket = []domain.AgeBucketAggregate{}
	}

	span.SetAttributes(
		attribute.Int("report.gender_groups", len(byGender)),
		attribute.Int("report.age_groups", len(byAgeBucket)),
	)

	return &domain.AggregatesResponse{
		ByGender:    byGender,
		ByAgeBucket: byAgeBucket,
	}, nil
}

func (s *reportService) Timeseries(ctx context.Context, filter domain.ReportFilter) (*domain.TimeseriesResponse, error) {
	filter, since := s.normalize(filter)

	tracer := otel.Tracer("sueno-habitos-api/reports")
	ctx, span := tracer.Start(ctx, "ReportService.Timeseries",
		trace.WithAttributes(attribute.Int("window.days", filter.Days)),
	)
	defer span.End()

	daily, err := s.repo.DailyDurations(ctx, since)
	if err != nil {
		return nil, err
	}
	if daily == nil {
		daily = []domain.DailyPoint{}
	}

	span.SetAttributes(attribute.Int("report.days_with_data", len(daily)))

	return &domain.TimeseriesResponse{Daily: daily}, nil
}

func (s *reportService) Distribution(ctx context.Context, filter domain.ReportFilter) (*domain.DistributionResponse, error) {
	filter, since := s.normalize(filter)

	tracer := otel.Tracer("sueno-habitos-api/reports")
	ctx, span := tracer.Start(ctx, "ReportService.Distribution",
		trace.WithAttributes(attribute.Int("window.days", filter.Days)),
	)
	defer span.End()

	dist, err := s.repo.StageDistribution(ctx, since)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("report.stage_rows", dist.Count))

	return dist, nil
}

func (s *reportService) HabitsQuality(ctx context.Context, filter domain.ReportFilter) (*domain.HabitsQualityResponse, error) {
	filter, since := s.normalize(filter)

	tracer := otel.Tracer("sueno-habitos-api/reports")
	ctx, span := tracer.Start(ctx, "ReportService.HabitsQuality",
		trace.WithAttributes(
			attribute.Int("window.days", filter.Days),
			attribute.Int("report.min_n", filter.MinN),
		),
	)
	defer span.End()

	byTag, err := s.repo.HabitsByTag(ctx, since, filter.MinN)
	if err != nil {
		return nil, err
	}
	if byTag == nil {
		byTag = []domain.TagHabitAggregate{}
	}

	span.SetAttributes(attribute.Int("report.tag_groups", len(byTag)))

	return &domain.HabitsQualityResponse{ByTag: byTag}, nil
}

func (s *reportService) ExportRecordsCSV(ctx context.Context, filter domain.ReportFilter, w io.Writer) error {
	_, since := s.normalize(filter)

	records, err := s.repo.RecordsForExport(ctx, since)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"id", "subject_id", "subject_name", "gender", "age",
		"record_date", "bedtime", "wakeup_time",
		"sleep_duration", "sleep_efficiency", "awakenings", "notes",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		var name, gender, age string
		if r.Subject != nil {
			if r.Subject.Name != nil {
				name = *r.Subject.Name
			}
			gender = r.Subject.Gender
			age = strconv.Itoa(r.Subject.Age)
		}
		var notes string
		if r.Notes != nil {
			notes = *r.Notes
		}

		row := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			strconv.FormatUint(uint64(r.SubjectID), 10),
			name,
			gender,
			age,
			r.RecordDate.Format("2006-01-02"),
			r.Bedtime.Format(time.RFC3339),
			r.WakeupTime.Format(time.RFC3339),
			fmt.Sprintf("%.2f", r.SleepDuration),
			fmt.Sprintf("%.2f", r.SleepEfficiency),
			strconv.Itoa(r.Awakenings),
			notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func (s *reportService) ExportSubjectsCSV(ctx context.Context, w io.Writer) error {
	subjects, err := s.repo.SubjectsForExport(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "name", "age", "gender", "tags", "created_at"}); err != nil {
		return err
	}

	for _, subj := range subjects {
		var name string
		if subj.Name != nil {
			name = *subj.Name
		}
		tagNames := make([]string, len(subj.Tags))
		for i, tag := range subj.Tags {
			tagNames[i] = tag.Name
		}

		row := []string{
			strconv.FormatUint(uint64(subj.ID), 10),
			name,
			strconv.Itoa(subj.Age),
			subj.Gender,
			strings.Join(tagNames, ";"),
			subj.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// BuildInsightsContext assembles the aggregate payload handed to the LLM.
func (s *reportService) BuildInsightsContext(ctx context.Context, filter domain.ReportFilter) (*domain.ReportInsightsContext, error) {
	filter, _ = s.normalize(filter)

	aggregates, err := s.Aggregates(ctx, filter)
	if err != nil {
		return nil, err
	}
	timeseries, err := s.Timeseries(ctx, filter)
	if err != nil {
		return nil, err
	}
	distribution, err := s.Distribution(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &domain.ReportInsightsContext{
		WindowDays:   filter.Days,
		Aggregates:   *aggregates,
		Timeseries:   *timeseries,
		Distribution: *distribution,
	}, nil
}
