package repository

import (
	"context"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/pkg/pagination"
	"gorm.io/gorm"
)

type SleepRecordRepository interface {
	Create(ctx context.Context, record *domain.SleepRecord) error
	GetByID(ctx context.Context, id uint) (*domain.SleepRecord, error)
	List(ctx context.Context, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error)
	Update(ctx context.Context, record *domain.SleepRecord) error
}

type sleepRecordRepository struct {
	db *gorm.DB
}

func NewSleepRecordRepository(db *gorm.DB) SleepRecordRepository {
	return &sleepRecordRepository{db: db}
}

func (r *sleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *sleepRecordRepository) GetByID(ctx context.Context, id uint) (*domain.SleepRecord, error) {
	var record domain.SleepRecord
	err := r.db.WithContext(ctx).Preload("Subject").First(&record, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

func (r *sleepRecordRepository) List(ctx context.Context, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.SleepRecord{}).
		Preload("Subject").
		Order("record_date DESC, id DESC")

	if !filter.IncludeDeleted {
		query = query.Where("sleep_records.is_deleted = ?", false)
	}
	if filter.SubjectID != 0 {
		query = query.Where("sleep_records.subject_id = ?", filter.SubjectID)
	}
	if filter.DateFrom != nil {
		query = query.Where("sleep_records.record_date >= ?", filter.DateFrom.Time)
	}
	if filter.DateTo != nil {
		query = query.Where("sleep_records.record_date <= ?", filter.DateTo.Time)
	}
	if filter.Gender != "" {
		query = query.
			Joins("JOIN subjects ON subjects.id = sleep_records.subject_id").
			Where("subjects.gender = ?", filter.Gender)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with record_date < cursor.RecordDate
			// or same record_date but id < cursor.ID
			query = query.Where(
				"(sleep_records.record_date < ?) OR (sleep_records.record_date = ? AND sleep_records.id < ?)",
				cursor.RecordDate, cursor.RecordDate, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var records []domain.SleepRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *sleepRecordRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}
