package service

import (
	"context"

	"github.com/dvaldes/sueno-habitos/internal/domain"
	"github.com/dvaldes/sueno-habitos/internal/repository"
	"github.com/dvaldes/sueno-habitos/pkg/pagination"
)

type SleepRecordService interface {
	Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	GetByID(ctx context.Context, id uint) (*domain.SleepRecord, error)
	List(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	Replace(ctx context.Context, id uint, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	Update(ctx context.Context, id uint, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error)
	Delete(ctx context.Context, id uint) error
	Restore(ctx context.Context, id uint) (*domain.SleepRecord, error)
	Attach(ctx context.Context, id uint, url string) (*domain.SleepRecord, error)
}

type sleepRecordService struct {
	repo        repository.SleepRecordRepository
	subjectRepo repository.SubjectRepository
}

func NewSleepRecordService(repo repository.SleepRecordRepository, subjectRepo repository.SubjectRepository) SleepRecordService {
	return &sleepRecordService{
		repo:        repo,
		subjectRepo: subjectRepo,
	}
}

// requireSubject confirms the subject exists and is not soft-deleted.
func (s *sleepRecordService) requireSubject(ctx context.Context, id uint) (*domain.Subject, error) {
	subject, err := s.subjectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if subject.IsDeleted {
		return nil, domain.ErrSubjectGone
	}
	return subject, nil
}

func (s *sleepRecordService) Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	subject, err := s.requireSubject(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}

	duration, efficiency, err := req.Validate(domain.Today())
	if err != nil {
		return nil, err
	}

	bed, wake := domain.ResolveSleepWindow(req.RecordDate, req.Bedtime, req.WakeupTime)

	record := &domain.SleepRecord{
		SubjectID:       req.SubjectID,
		RecordDate:      req.RecordDate.Time,
		Bedtime:         bed,
		WakeupTime:      wake,
		SleepDuration:   duration,
		SleepEfficiency: efficiency,
		Awakenings:      req.Awakenings,
		AttachmentURL:   req.AttachmentURL,
		Notes:           req.Notes,
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	record.Subject = subject
	return record, nil
}

func (s *sleepRecordService) GetByID(ctx context.Context, id uint) (*domain.SleepRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.IsDeleted {
		return nil, domain.ErrRecordGone
	}
	return record, nil
}

func (s *sleepRecordService) List(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	if filter.Gender != "" {
		gender, err := domain.ValidateGender(filter.Gender)
		if err != nil {
			return nil, err
		}
		filter.Gender = string(gender)
	}

	records, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(records) > limit

	// Trim to actual limit
	if hasMore {
		records = records[:limit]
	}

	response := &domain.SleepRecordListResponse{
		Data: make([]domain.SleepRecordResponse, len(records)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, record := range records {
		response.Data[i] = record.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(records) > 0 {
		last := records[len(records)-1]
		cursor := &pagination.Cursor{
			ID:         last.ID,
			RecordDate: last.RecordDate,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

// Replace fully re-validates and recomputes the record from the request,
// keeping PUT semantics: unset optional fields are cleared.
func (s *sleepRecordService) Replace(ctx context.Context, id uint, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.IsDeleted {
		return nil, domain.ErrRecordGone
	}

	subject, err := s.requireSubject(ctx, req.SubjectID)
	if err != nil {
		return nil, err
	}

	duration, efficiency, err := req.Validate(domain.Today())
	if err != nil {
		return nil, err
	}

	bed, wake := domain.ResolveSleepWindow(req.RecordDate, req.Bedtime, req.WakeupTime)

	record.SubjectID = req.SubjectID
	record.RecordDate = req.RecordDate.Time
	record.Bedtime = bed
	record.WakeupTime = wake
	record.SleepDuration = duration
	record.SleepEfficiency = efficiency
	record.Awakenings = req.Awakenings
	record.AttachmentURL = req.AttachmentURL
	record.Notes = req.Notes

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	record.Subject = subject
	return record, nil
}

// Update merges the patch onto the stored record. When any field the
// window derivation depends on changes, the merged values go through the
// full create validation and the metrics are recomputed.
func (s *sleepRecordService) Update(ctx context.Context, id uint, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A deleted record only accepts a restore patch.
	restoring := req.IsDeleted != nil && !*req.IsDeleted
	if record.IsDeleted && !restoring {
		return nil, domain.ErrRecordGone
	}

	subjectID := record.SubjectID
	if req.SubjectID != nil {
		subjectID = *req.SubjectID
	}
	subject, err := s.requireSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}

	if req.TouchesWindow() {
		merged := &domain.CreateSleepRecordRequest{
			SubjectID:       subjectID,
			RecordDate:      domain.NewDate(record.RecordDate.Year(), record.RecordDate.Month(), record.RecordDate.Day()),
			Bedtime:         domain.TimeOfDayFrom(record.Bedtime),
			WakeupTime:      domain.TimeOfDayFrom(record.WakeupTime),
			SleepDuration:   req.SleepDuration,
			SleepEfficiency: req.SleepEfficiency,
			Awakenings:      record.Awakenings,
		}
		if req.RecordDate != nil {
			merged.RecordDate = *req.RecordDate
		}
		if req.Bedtime != nil {
			merged.Bedtime = *req.Bedtime
		}
		if req.WakeupTime != nil {
			merged.WakeupTime = *req.WakeupTime
		}
		if req.Awakenings != nil {
			merged.Awakenings = *req.Awakenings
		}

		duration, efficiency, err := merged.Validate(domain.Today())
		if err != nil {
			return nil, err
		}

		bed, wake := domain.ResolveSleepWindow(merged.RecordDate, merged.Bedtime, merged.WakeupTime)

		record.RecordDate = merged.RecordDate.Time
		record.Bedtime = bed
		record.WakeupTime = wake
		record.SleepDuration = duration
		record.SleepEfficiency = efficiency
		record.Awakenings = merged.Awakenings
	}

	record.SubjectID = subjectID
	if req.AttachmentURL != nil {
		record.AttachmentURL = req.AttachmentURL
	}
	if req.Notes != nil {
		record.Notes = req.Notes
	}
	if req.IsDeleted != nil {
		record.IsDeleted = *req.IsDeleted
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	record.Subject = subject
	return record, nil
}

func (s *sleepRecordService) Delete(ctx context.Context, id uint) error {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.IsDeleted {
		return domain.ErrRecordGone
	}

	record.IsDeleted = true
	return s.repo.Update(ctx, record)
}

func (s *sleepRecordService) Restore(ctx context.Context, id uint) (*domain.SleepRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !record.IsDeleted {
		return record, nil
	}

	record.IsDeleted = false
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Attach stores an uploaded file URL on the record.
func (s *sleepRecordService) Attach(ctx context.Context, id uint, url string) (*domain.SleepRecord, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.IsDeleted {
		return nil, domain.ErrRecordGone
	}

	record.AttachmentURL = &url
	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
