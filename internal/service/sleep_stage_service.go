package service

import (
	"context"
	"fmt"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/repository"
)

type SleepStageService interface {
	Create(ctx context.Context, req *domain.CreateSleepStageRequest) (*domain.SleepStage, error)
	GetByID(ctx context.Context, id uint) (*domain.SleepStage, error)
	GetByRecordID(ctx context.Context, recordID uint) (*domain.SleepStage, error)
	List(ctx context.Context) ([]domain.SleepStage, error)
	Replace(ctx context.Context, id uint, req *domain.CreateSleepStageRequest) (*domain.SleepStage, error)
	Update(ctx context.Context, id uint, req *domain.UpdateSleepStageRequest) (*domain.SleepStage, error)
	Delete(ctx context.Context, id uint) error
}

type sleepStageService struct {
	repo       repository.SleepStageRepository
	recordRepo repository.SleepRecordRepository
}

func NewSleepStageService(repo repository.SleepStageRepository, recordRepo repository.SleepRecordRepository) SleepStageService {
	return &sleepStageService{
		repo:       repo,
		recordRepo: recordRepo,
	}
}

// requireRecord confirms the sleep record exists and is not soft-deleted.
func (s *sleepStageService) requireRecord(ctx context.Context, id uint) error {
	record, err := s.recordRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.IsDeleted {
		return domain.ErrRecordGone
	}
	return nil
}

// requireUniqueRecord enforces the one-stage-row-per-record rule,
// ignoring the row being updated.
func (s *sleepStageService) requireUniqueRecord(ctx context.Context, recordID, selfID uint) error {
	existing, err := s.repo.GetByRecordID(ctx, recordID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: sleep record %d already has a stage breakdown", domain.ErrConflict, recordID)
	}
	return nil
}

func (s *sleepStageService) Create(ctx context.Context, req *domain.CreateSleepStageRequest) (*domain.SleepStage, error) {
	if err := s.requireRecord(ctx, req.SleepRecordID); err != nil {
		return nil, err
	}
	if err := s.requireUniqueRecord(ctx, req.SleepRecordID, 0); err != nil {
		return nil, err
	}

	stage := &domain.SleepStage{
		SleepRecordID:   req.SleepRecordID,
		REMPercentage:   req.REMPercentage,
		DeepPercentage:  req.DeepPercentage,
		LightPercentage: req.LightPercentage,
	}

	if err := s.repo.Create(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *sleepStageService) GetByID(ctx context.Context, id uint) (*domain.SleepStage, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *sleepStageService) GetByRecordID(ctx context.Context, recordID uint) (*domain.SleepStage, error) {
	stage, err := s.repo.GetByRecordID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if stage == nil {
		return nil, domain.ErrNotFound
	}
	return stage, nil
}

func (s *sleepStageService) List(ctx context.Context) ([]domain.SleepStage, error) {
	return s.repo.List(ctx)
}

func (s *sleepStageService) Replace(ctx context.Context, id uint, req *domain.CreateSleepStageRequest) (*domain.SleepStage, error) {
	stage, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.requireRecord(ctx, req.SleepRecordID); err != nil {
		return nil, err
	}
	if err := s.requireUniqueRecord(ctx, req.SleepRecordID, id); err != nil {
		return nil, err
	}

	stage.SleepRecordID = req.SleepRecordID
	stage.REMPercentage = req.REMPercentage
	stage.DeepPercentage = req.DeepPercentage
	stage.LightPercentage = req.LightPercentage

	if err := s.repo.Update(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *sleepStageService) Update(ctx context.Context, id uint, req *domain.UpdateSleepStageRequest) (*domain.SleepStage, error) {
	stage, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SleepRecordID != nil && *req.SleepRecordID != stage.SleepRecordID {
		if err := s.requireRecord(ctx, *req.SleepRecordID); err != nil {
			return nil, err
		}
		if err := s.requireUniqueRecord(ctx, *req.SleepRecordID, id); err != nil {
			return nil, err
		}
		stage.SleepRecordID = *req.SleepRecordID
	}
	if req.REMPercentage != nil {
		stage.REMPercentage = *req.REMPercentage
	}
	if req.DeepPercentage != nil {
		stage.DeepPercentage = *req.DeepPercentage
	}
	if req.LightPercentage != nil {
		stage.LightPercentage = *req.LightPercentage
	}

	if err := s.repo.Update(ctx, stage); err != nil {
		return nil, err
	}
	return stage, nil
}

func (s *sleepStageService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
