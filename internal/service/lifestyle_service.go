package service

import (
	"context"
	"fmt"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/repository"
)

type LifestyleService interface {
	Create(ctx context.Context, req *domain.CreateLifestyleRequest) (*domain.LifestyleFactors, error)
	GetByID(ctx context.Context, id uint) (*domain.LifestyleFactors, error)
	GetByRecordID(ctx context.Context, recordID uint) (*domain.LifestyleFactors, error)
	List(ctx context.Context) ([]domain.LifestyleFactors, error)
	Replace(ctx context.Context, id uint, req *domain.CreateLifestyleRequest) (*domain.LifestyleFactors, error)
	Update(ctx context.Context, id uint, req *domain.UpdateLifestyleRequest) (*domain.LifestyleFactors, error)
	Delete(ctx context.Context, id uint) error
}

type lifestyleService struct {
	repo       repository.LifestyleRepository
	recordRepo repository.SleepRecordRepository
}

func NewLifestyleService(repo repository.LifestyleRepository, recordRepo repository.SleepRecordRepository) LifestyleService {
	return &lifestyleService{
		repo:       repo,
		recordRepo: recordRepo,
	}
}

func (s *lifestyleService) requireRecord(ctx context.Context, id uint) error {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.IsDeleted {
		return domain.ErrRecordGone
	}
	return nil
}

// requireUniqueRecord enforces the one-lifestyle-row-per-record rule,
// ignoring the row being updated.
func (s *lifestyleService) requireUniqueRecord(ctx context.Context, recordID, selfID uint) error {
	existing, err := s.repo.GetByRecordID(ctx, recordID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: sleep record %d already has lifestyle factors", domain.ErrConflict, recordID)
	}
	return nil
}

func (s *lifestyleService) Create(ctx context.Context, req *domain.CreateLifestyleRequest) (*domain.LifestyleFactors, error) {
	if err := s.requireRecord(ctx, req.SleepRecordID); err != nil {
		return nil, err
	}
	if err := s.requireUniqueRecord(ctx, req.SleepRecordID, 0); err != nil {
		return nil, err
	}

	factors := &domain.LifestyleFactors{
		SleepRecordID:       req.SleepRecordID,
		CaffeineConsumption: req.CaffeineConsumption,
		AlcoholConsumption:  req.AlcoholConsumption,
		SmokingStatus:       req.SmokingStatus,
		ExerciseFrequency:   req.ExerciseFrequency,
	}

	if err := s.repo.Create(ctx, factors); err != nil {
		return nil, err
	}
	return factors, nil
}

func (s *lifestyleService) GetByID(ctx context.Context, id uint) (*domain.LifestyleFactors, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *lifestyleService) GetByRecordID(ctx context.Context, recordID uint) (*domain.LifestyleFactors, error) {
	factors, err := s.repo.GetByRecordID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if factors == nil {
		return nil, domain.ErrNotFound
	}
	return factors, nil
}

func (s *lifestyleService) List(ctx context.Context) ([]domain.LifestyleFactors, error) {
	return s.repo.List(ctx)
}

func (s *lifestyleService) Replace(ctx context.Context, id uint, req *domain.CreateLifestyleRequest) (*domain.LifestyleFactors, error) {
	factors, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.requireRecord(ctx, req.SleepRecordID); err != nil {
		return nil, err
	}
	if err := s.requireUniqueRecord(ctx, req.SleepRecordID, id); err != nil {
		return nil, err
	}

	factors.SleepRecordID = req.SleepRecordID
	factors.CaffeineConsumption = req.CaffeineConsumption
	factors.AlcoholConsumption = req.AlcoholConsumption
	factors.SmokingStatus = req.SmokingStatus
	factors.ExerciseFrequency = req.ExerciseFrequency

	if err := s.repo.Update(ctx, factors); err != nil {
		return nil, err
	}
	return factors, nil
}

func (s *lifestyleService) Update(ctx context.Context, id uint, req *domain.UpdateLifestyleRequest) (*domain.LifestyleFactors, error) {
	factors, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SleepRecordID != nil && *req.SleepRecordID != factors.SleepRecordID {
		if err := s.requireRecord(ctx, *req.SleepRecordID); err != nil {
			return nil, err
		}
		if err := s.requireUniqueRecord(ctx, *req.SleepRecordID, id); err != nil {
			return nil, err
		}
		factors.SleepRecordID = *req.SleepRecordID
	}
	if req.CaffeineConsumption != nil {
		factors.CaffeineConsumption = *req.CaffeineConsumption
	}
	if req.AlcoholConsumption != nil {
		factors.AlcoholConsumption = *req.AlcoholConsumption
	}
	if req.SmokingStatus != nil {
		factors.SmokingStatus = *req.SmokingStatus
	}
	if req.ExerciseFrequency != nil {
		factors.ExerciseFrequency = *req.ExerciseFrequency
	}

	if err := s.repo.Update(ctx, factors); err != nil {
		return nil, err
	}
	return factors, nil
}

func (s *lifestyleService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
