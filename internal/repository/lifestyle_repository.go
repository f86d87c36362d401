package repository

import (
	"context"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"gorm.io/gorm"
)

type LifestyleRepository interface {
	Create(ctx context.Context, factors *domain.LifestyleFactors) error
	GetByID(ctx context.Context, id uint) (*domain.LifestyleFactors, error)
	GetByRecordID(ctx context.Context, recordID uint) (*domain.LifestyleFactors, error)
	List(ctx context.Context) ([]domain.LifestyleFactors, error)
	Update(ctx context.Context, factors *domain.LifestyleFactors) error
	Delete(ctx context.Context, id uint) error
}

type lifestyleRepository struct {
	db *gorm.DB
}

func NewLifestyleRepository(db *gorm.DB) LifestyleRepository {
	return &lifestyleRepository{db: db}
}

func (r *lifestyleRepository) Create(ctx context.Context, factors *domain.LifestyleFactors) error {
	return r.db.WithContext(ctx).Create(factors).Error
}

func (r *lifestyleRepository) GetByID(ctx context.Context, id uint) (*domain.LifestyleFactors, error) {
	var factors domain.LifestyleFactors
	err := r.db.WithContext(ctx).First(&factors, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &factors, nil
}

func (r *lifestyleRepository) GetByRecordID(ctx context.Context, recordID uint) (*domain.LifestyleFactors, error) {
	var factors domain.LifestyleFactors
	err := r.db.WithContext(ctx).First(&factors, "sleep_record_id = ?", recordID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil // absence is not an error for the uniqueness check
		}
		return nil, err
	}
	return &factors, nil
}

func (r *lifestyleRepository) List(ctx context.Context) ([]domain.LifestyleFactors, error) {
	var factors []domain.LifestyleFactors
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&factors).Error; err != nil {
		return nil, err
	}
	return factors, nil
}

func (r *lifestyleRepository) Update(ctx context.Context, factors *domain.LifestyleFactors) error {
	return r.db.WithContext(ctx).Save(factors).Error
}

func (r *lifestyleRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&domain.LifestyleFactors{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
