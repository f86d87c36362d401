package repository

import (
	"context"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"gorm.io/gorm"
)

type SleepStageRepository interface {
	Create(ctx context.Context, stage *domain.SleepStage) error
	GetByID(ctx context.Context, id uint) (*domain.SleepStage, error)
	GetByRecordID(ctx context.Context, recordID uint) (*domain.SleepStage, error)
	List(ctx context.Context) ([]domain.SleepStage, error)
	Update(ctx context.Context, stage *domain.SleepStage) error
	Delete(ctx context.Context, id uint) error
}

type sleepStageRepository struct {
	db *gorm.DB
}

func NewSleepStageRepository(db *gorm.DB) SleepStageRepository {
	return &sleepStageRepository{db: db}
}

func (r *sleepStageRepository) Create(ctx context.Context, stage *domain.SleepStage) error {
	return r.db.WithContext(ctx).Create(stage).Error
}

func (r *sleepStageRepository) GetByID(ctx context.Context, id uint) (*domain.SleepStage, error) {
	var stage domain.SleepStage
	err := r.db.WithContext(ctx).First(&stage, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &stage, nil
}

func (r *sleepStageRepository) GetByRecordID(ctx context.Context, recordID uint) (*domain.SleepStage, error) {
	var stage domain.SleepStage
	err := r.db.WithContext(ctx).First(&stage, "sleep_record_id = ?", recordID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // absence is not an error for the uniqueness check
		}
		return nil, err
	}
	return &stage, nil
}

func (r *sleepStageRepository) List(ctx context.Context) ([]domain.SleepStage, error) {
	var stages []domain.SleepStage
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&stages).Error; err != nil {
		return nil, err
	}
	return stages, nil
}

func (r *sleepStageRepository) Update(ctx context.Context, stage *domain.SleepStage) error {
	return r.db.WithContext(ctx).Save(stage).Error
}

func (r *sleepStageRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.SleepStage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
