package service

import (
	"context"
	"fmt"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/repository"
)

type SubjectService interface {
	Create(ctx context.Context, req *domain.CreateSubjectRequest) (*domain.Subject, error)
	GetByID(ctx context.Context, id uint) (*domain.Subject, error)
	List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error)
	Update(ctx context.Context, id uint, req *domain.UpdateSubjectRequest) (*domain.Subject, error)
	Delete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) (*domain.Subject, error)
}

type subjectService struct {
	repo    repository.SubjectRepository
	tagRepo repository.TagRepository
}

func NewSubjectService(repo repository.SubjectRepository, tagRepo repository.TagRepository) SubjectService {
	return &subjectService{
		repo:    repo,
		tagRepo: tagRepo,
	}
}

// resolveTags loads the requested tags, requiring every id to exist.
func (s *subjectService) resolveTags(ctx context.Context, ids []uint) ([]domain.Tag, error) {
	tags, err := s.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(ids) {
		return nil, fmt.Errorf("%w: one or more tag ids do not exist", domain.ErrInvalidInput)
	}
	return tags, nil
}

func (s *subjectService) Create(ctx context.Context, req *domain.CreateSubjectRequest) (*domain.Subject, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tags, err := s.resolveTags(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	subject := &domain.Subject{
		Name:   req.Name,
		Age:    req.Age,
		Gender: req.Gender,
		Tags:   tags,
	}

	if err := s.repo.Create(ctx, subject); err != nil {
		return nil, err
	}

	return subject, nil
}

func (s *subjectService) GetByID(ctx context.Context, id uint) (*domain.Subject, error) {
	subject, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subject.IsDeleted {
		return nil, domain.ErrSubjectGone
	}
	return subject, nil
}

func (s *subjectService) List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error) {
	if filter.Gender != "" {
		gender, err := domain.ValidateGender(filter.Gender)
		if err != nil {
			return nil, err
		}
		filter.Gender = string(gender)
	}
	return s.repo.List(ctx, filter)
}

func (s *subjectService) Update(ctx context.Context, id uint, req *domain.UpdateSubjectRequest) (*domain.Subject, error) {
	subject, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A deleted subject only accepts a restore patch.
	restoring := req.IsDeleted != nil && !*req.IsDeleted
	if subject.IsDeleted && !restoring {
		return nil, domain.ErrSubjectGone
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		subject.Name = req.Name
	}
	if req.Age != nil {
		subject.Age = *req.Age
	}
	if req.Gender != nil {
		subject.Gender = *req.Gender
	}
	if req.IsDeleted != nil {
		subject.IsDeleted = *req.IsDeleted
	}

	if err := s.repo.Update(ctx, subject); err != nil {
		return nil, err
	}

	if req.TagIDs != nil {
		tags, err := s.resolveTags(ctx, req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceTags(ctx, subject, tags); err != nil {
			return nil, err
		}
		subject.Tags = tags
	}

	return subject, nil
}

func (s *subjectService) Delete(ctx context.Context, id uint) error {
	subject, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if subject.IsDeleted {
		return domain.ErrSubjectGone
	}

	subject.IsDeleted = true
	return s.repo.Update(ctx, subject)
}

func (s *subjectService) Restore(ctx context.Context, id uint) (*domain.Subject, error) {
	subject, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !subject.IsDeleted {
		return subject, nil
	}

	subject.IsDeleted = false
	if err := s.repo.Update(ctx, subject); err != nil {
		return nil, err
	}
	return subject, nil
}
