package repository

import (
	"context"
	"time"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"gorm.io/gorm"
)

// genderExpr folds arbitrary stored gender values onto the M/F/O set so
// legacy rows cannot create stray report groups.
const genderExpr = `CASE WHEN UPPER(TRIM(s.gender)) IN ('M', 'F') THEN UPPER(TRIM(s.gender)) ELSE 'O' END`

// ageBucketExpr assigns subjects to the reporting age buckets.
const ageBucketExpr = `CASE
	WHEN s.age IS NULL OR s.age < 0 OR s.age > 120 THEN 'desconocido'
	WHEN s.age < 18 THEN 'menor'
	WHEN s.age <= 30 THEN '18-30'
	WHEN s.age <= 45 THEN '31-45'
	WHEN s.age <= 60 THEN '46-60'
	ELSE '60+'
END`

// sanityFilter re-applies the stored metric bounds inside grouped
// queries. Rows written before strict validation stay out of averages.
const sanityFilter = `r.is_deleted = FALSE
	AND s.is_deleted = FALSE
	AND r.sleep_duration >= 0 AND r.sleep_duration <= 24
	AND r.sleep_efficiency >= 0 AND r.sleep_efficiency <= 100`

type ReportRepository interface {
	AggregatesByGender(ctx context.Context, since time.Time) ([]domain.GenderAggregate, error)
	AggregatesByAgeBucket(ctx context.Context, since time.Time) ([]domain.AgeBucketAggregate, error)
	DailyDurations(ctx context.Context, since time.Time) ([]domain.DailyPoint, error)
	StageDistribution(ctx context.Context, since time.Time) (*domain.DistributionResponse, error)
	HabitsByTag(ctx context.Context, since time.Time, minN int) ([]domain.TagHabitAggregate, error)
	RecordsForExport(ctx context.Context, since time.Time) ([]domain.SleepRecord, error)
	SubjectsForExport(ctx context.Context) ([]domain.Subject, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) AggregatesByGender(ctx context.Context, since time.Time) ([]domain.GenderAggregate, error) {
	var rows []domain.GenderAggregate
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+genderExpr+` AS gender,
		       COUNT(*) AS count,
		       ROUND(AVG(r.sleep_duration)::numeric, 2) AS avg_duration,
		       ROUND(AVG(r.sleep_efficiency)::numeric, 2) AS avg_efficiency
		FROM sleep_records r
		JOIN subjects s ON s.id = r.subject_id
		WHERE `+sanityFilter+`
		  AND r.record_date >= ?
		GROUP BY 1
		ORDER BY 1`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) AggregatesByAgeBucket(ctx context.Context, since time.Time) ([]domain.AgeBucketAggregate, error) {
	var rows []domain.AgeBucketAggregate
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+ageBucketExpr+` AS age_bucket,
		       COUNT(*) AS count,
		       ROUND(AVG(r.sleep_duration)::numeric, 2) AS avg_duration,
		       ROUND(AVG(r.sleep_efficiency)::numeric, 2) AS avg_efficiency
		FROM sleep_records r
		JOIN subjects s ON s.id = r.subject_id
		WHERE `+sanityFilter+`
		  AND r.record_date >= ?
		GROUP BY 1
		ORDER BY 1`, since).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) DailyDurations(ctx context.Context, since time.Time) ([]domain.DailyPoint, error) {
	var raw []struct {
		Day         time.Time
		AvgDuration float64
		Count       int
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT r.record_date AS day,
		       ROUND(AVG(r.sleep_duration)::numeric, 2) AS avg_duration,
		       COUNT(*) AS count
		FROM sleep_records r
		JOIN subjects s ON s.id = r.subject_id
		WHERE `+sanityFilter+`
		  AND r.record_date >= ?
		GROUP BY r.record_date
		ORDER BY r.record_date`, since).Scan(&raw).Error
	if err != nil {
		return nil, err
	}

	points := make([]domain.DailyPoint, 0, len(raw))
	for _, row := range raw {
		points = append(points, domain.DailyPoint{
			Date:        row.Day.Format("2006-01-02"),
			AvgDuration: row.AvgDuration,
			Count:       row.Count,
		})
	}
	return points, nil
}

func (r *reportRepository) StageDistribution(ctx context.Context, since time.Time) (*domain.DistributionResponse, error) {
	var row struct {
		Count int
		REM   float64
		Deep  float64
		Light float64
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) AS count,
		       COALESCE(ROUND(AVG(st.rem_percentage)::numeric, 2), 0) AS rem,
		       COALESCE(ROUND(AVG(st.deep_percentage)::numeric, 2), 0) AS deep,
		       COALESCE(ROUND(AVG(st.light_percentage)::numeric, 2), 0) AS light
		FROM sleep_stages st
		JOIN sleep_records r ON r.id = st.sleep_record_id
		JOIN subjects s ON s.id = r.subject_id
		WHERE `+sanityFilter+`
		  AND r.record_date >= ?`, since).Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &domain.DistributionResponse{
		Source: "sleep_stages",
		Count:  row.Count,
		Data: domain.StageDistribution{
			REM:   row.REM,
			Deep:  row.Deep,
			Light: row.Light,
		},
	}, nil
}

func (r *reportRepository) HabitsByTag(ctx context.Context, since time.Time, minN int) ([]domain.TagHabitAggregate, error) {
	var rows []domain.TagHabitAggregate
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.name AS tag,
		       ROUND(AVG(r.sleep_efficiency)::numeric, 2) AS avg_efficiency,
		       ROUND(AVG(r.sleep_duration)::numeric, 2) AS avg_duration,
		       COUNT(*) AS n
		FROM tags t
		JOIN subject_tags st ON st.tag_id = t.id
		JOIN subjects s ON s.id = st.subject_id
		JOIN sleep_records r ON r.subject_id = s.id
		WHERE `+sanityFilter+`
		  AND r.record_date >= ?
		GROUP BY t.name
		HAVING COUNT(*) >= ?
		ORDER BY avg_efficiency ASC`, since, minN).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) RecordsForExport(ctx context.Context, since time.Time) ([]domain.SleepRecord, error) {
	var records []domain.SleepRecord
	err := r.db.WithContext(ctx).
		Preload("Subject").
		Where("is_deleted = ?", false).
		Where("record_date >= ?", since).
		Order("record_date DESC, id DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *reportRepository) SubjectsForExport(ctx context.Context) ([]domain.Subject, error) {
	var subjects []domain.Subject
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("is_deleted = ?", false).
		Order("id ASC").
		Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}
