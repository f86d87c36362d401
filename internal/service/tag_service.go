package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/repository"
)

type TagService interface {
	Create(ctx context.Context, req *domain.CreateTagRequest) (*domain.Tag, error)
	GetByID(ctx context.Context, id uint) (*domain.Tag, error)
	List(ctx context.Context) ([]domain.Tag, error)
	Rename(ctx context.Context, id uint, req *domain.CreateTagRequest) (*domain.Tag, error)
	Delete(ctx context.Context, id uint) error
}

type tagService struct {
	repo repository.TagRepository
}

func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

// requireUniqueName enforces tag name uniqueness, ignoring the tag being
// renamed.
func (s *tagService) requireUniqueName(ctx context.Context, name string, selfID uint) error {
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != selfID {
		return fmt.Errorf("%w: tag %q already exists", domain.ErrConflict, name)
	}
	return nil
}

func (s *tagService) Create(ctx context.Context, req *domain.CreateTagRequest) (*domain.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", domain.ErrInvalidInput)
	}
	if err := s.requireUniqueName(ctx, name, 0); err != nil {
		return nil, err
	}

	tag := &domain.Tag{Name: name}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetByID(ctx context.Context, id uint) (*domain.Tag, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *tagService) List(ctx context.Context) ([]domain.Tag, error) {
	return s.repo.List(ctx)
}

func (s *tagService) Rename(ctx context.Context, id uint, req *domain.CreateTagRequest) (*domain.Tag, error) {
	tag, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: tag name is required", domain.ErrInvalidInput)
	}
	if err := s.requireUniqueName(ctx, name, id); err != nil {
		return nil, err
	}

	tag.Name = name
	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

// Delete removes a tag unless subjects still reference it.
func (s *tagService) Delete(ctx context.Context, id uint) error {
	inUse, err := s.repo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: tag is still assigned to subjects", domain.ErrConflict)
	}
	return s.repo.Delete(ctx, id)
}
