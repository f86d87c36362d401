package repository

import (
	"context"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"gorm.io/gorm"
)

type SubjectRepository interface {
	Create(ctx context.Context, subject *domain.Subject) error
	GetByID(ctx context.Context, id uint) (*domain.Subject, error)
	List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error)
	Update(ctx context.Context, subject *domain.Subject) error
	ReplaceTags(ctx context.Context, subject *domain.Subject, tags []domain.Tag) error
}

type subjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) SubjectRepository {
	return &subjectRepository{db: db}
}

func (r *subjectRepository) Create(ctx context.Context, subject *domain.Subject) error {
	return r.db.WithContext(ctx).Create(subject).Error
}

func (r *subjectRepository) GetByID(ctx context.Context, id uint) (*domain.Subject, error) {
	var subject domain.Subject
	err := r.db.WithContext(ctx).Preload("Tags").First(&subject, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &subject, nil
}

func (r *subjectRepository) List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error) {
	query := r.db.WithContext(ctx).Preload("Tags").Order("id ASC")

	if !filter.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.AgeMin != nil {
		query = query.Where("age >= ?", *filter.AgeMin)
	}
	if filter.AgeMax != nil {
		query = query.Where("age <= ?", *filter.AgeMax)
	}
	if filter.Query != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Query+"%")
	}

	var subjects []domain.Subject
	if err := query.Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) Update(ctx context.Context, subject *domain.Subject) error {
	return r.db.WithContext(ctx).Save(subject).Error
}

// ReplaceTags swaps the full tag association set for the subject.
func (r *subjectRepository) ReplaceTags(ctx context.Context, subject *domain.Subject, tags []domain.Tag) error {
	return r.db.WithContext(ctx).Model(subject).Association("Tags").Replace(tags)
}
