package service

import (
	"context"
	"sort"
	"time"

	"github.com/dvaldes/sueno-habitos/internal/domain"
)

// MockSubjectRepository is a mock implementation of SubjectRepository
type MockSubjectRepository struct {
	subjects map[uint]*domain.Subject
	nextID   uint
	err      error
}

func NewMockSubjectRepository() *MockSubjectRepository {
	return &MockSubjectRepository{
		subjects: make(map[uint]*domain.Subject),
		nextID:   1,
	}
}

func (m *MockSubjectRepository) Create(ctx context.Context, subject *domain.Subject) error {
	if m.err != nil {
		return m.err
	}
	if subject.ID == 0 {
		subject.ID = m.nextID
		m.nextID++
	}
	subject.CreatedAt = time.Now()
	m.subjects[subject.ID] = subject
	return nil
}

func (m *MockSubjectRepository) GetByID(ctx context.Context, id uint) (*domain.Subject, error) {
	if m.err != nil {
		return nil, m.err
	}
	subject, ok := m.subjects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return subject, nil
}

func (m *MockSubjectRepository) List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Subject
	for _, subject := range m.subjects {
		if !filter.IncludeDeleted && subject.IsDeleted {
			continue
		}
		if filter.Gender != "" && subject.Gender != filter.Gender {
			continue
		}
		result = append(result, *subject)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockSubjectRepository) Update(ctx context.Context, subject *domain.Subject) error {
	if m.err != nil {
		return m.err
	}
	m.subjects[subject.ID] = subject
	return nil
}

func (m *MockSubjectRepository) ReplaceTags(ctx context.Context, subject *domain.Subject, tags []domain.Tag) error {
	if m.err != nil {
		return m.err
	}
	subject.Tags = tags
	return nil
}

// MockSleepRecordRepository is a mock implementation of SleepRecordRepository
type MockSleepRecordRepository struct {
	records    map[uint]*domain.SleepRecord
	nextID     uint
	listResult []domain.SleepRecord
	err        error
}

func NewMockSleepRecordRepository() *MockSleepRecordRepository {
	return &MockSleepRecordRepository{
		records: make(map[uint]*domain.SleepRecord),
		nextID:  1,
	}
}

func (m *MockSleepRecordRepository) Create(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == 0 {
		record.ID = m.nextID
		m.nextID++
	}
	record.CreatedAt = time.Now()
	m.records[record.ID] = record
	return nil
}

func (m *MockSleepRecordRepository) GetByID(ctx context.Context, id uint) (*domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record, ok := m.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return record, nil
}

func (m *MockSleepRecordRepository) List(ctx context.Context, filter domain.SleepRecordFilter) ([]domain.SleepRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.listResult != nil {
		result := make([]domain.SleepRecord, len(m.listResult))
		copy(result, m.listResult)
		return result, nil
	}
	var result []domain.SleepRecord
	for _, record := range m.records {
		if !filter.IncludeDeleted && record.IsDeleted {
			continue
		}
		if filter.SubjectID != 0 && record.SubjectID != filter.SubjectID {
			continue
		}
		result = append(result, *record)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].RecordDate.Equal(result[j].RecordDate) {
			return result[i].RecordDate.After(result[j].RecordDate)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (m *MockSleepRecordRepository) Update(ctx context.Context, record *domain.SleepRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records[record.ID] = record
	return nil
}

// MockTagRepository is a mock implementation of TagRepository
type MockTagRepository struct {
	tags       map[uint]*domain.Tag
	references map[uint]int
	nextID     uint
	err        error
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{
		tags:       make(map[uint]*domain.Tag),
		references: make(map[uint]int),
		nextID:     1,
	}
}

func (m *MockTagRepository) Create(ctx context.Context, tag *domain.Tag) error {
	if m.err != nil {
		return m.err
	}
	if tag.ID == 0 {
		tag.ID = m.nextID
		m.nextID++
	}
	m.tags[tag.ID] = tag
	return nil
}

func (m *MockTagRepository) GetByID(ctx context.Context, id uint) (*domain.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	tag, ok := m.tags[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return tag, nil
}

func (m *MockTagRepository) GetByIDs(ctx context.Context, ids []uint) ([]domain.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Tag
	for _, id := range ids {
		if tag, ok := m.tags[id]; ok {
			result = append(result, *tag)
		}
	}
	return result, nil
}

func (m *MockTagRepository) GetByName(ctx context.Context, name string) (*domain.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, tag := range m.tags {
		if tag.Name == name {
			return tag, nil
		}
	}
	return nil, nil
}

func (m *MockTagRepository) List(ctx context.Context) ([]domain.Tag, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.Tag
	for _, tag := range m.tags {
		result = append(result, *tag)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *MockTagRepository) Update(ctx context.Context, tag *domain.Tag) error {
	if m.err != nil {
		return m.err
	}
	m.tags[tag.ID] = tag
	return nil
}

func (m *MockTagRepository) Delete(ctx context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.tags[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.tags, id)
	return nil
}

func (m *MockTagRepository) InUse(ctx context.Context, id uint) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return m.references[id] > 0, nil
}

// MockSleepStageRepository is a mock implementation of SleepStageRepository
type MockSleepStageRepository struct {
	stages map[uint]*domain.SleepStage
	nextID uint
	err    error
}

func NewMockSleepStageRepository() *MockSleepStageRepository {
	return &MockSleepStageRepository{
		stages: make(map[uint]*domain.SleepStage),
		nextID: 1,
	}
}

func (m *MockSleepStageRepository) Create(ctx context.Context, stage *domain.SleepStage) error {
	if m.err != nil {
		return m.err
	}
	if stage.ID == 0 {
		stage.ID = m.nextID
		m.nextID++
	}
	m.stages[stage.ID] = stage
	return nil
}

func (m *MockSleepStageRepository) GetByID(ctx context.Context, id uint) (*domain.SleepStage, error) {
	if m.err != nil {
		return nil, m.err
	}
	stage, ok := m.stages[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return stage, nil
}

func (m *MockSleepStageRepository) GetByRecordID(ctx context.Context, recordID uint) (*domain.SleepStage, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, stage := range m.stages {
		if stage.SleepRecordID == recordID {
			return stage, nil
		}
	}
	return nil, nil
}

func (m *MockSleepStageRepository) List(ctx context.Context) ([]domain.SleepStage, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.SleepStage
	for _, stage := range m.stages {
		result = append(result, *stage)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockSleepStageRepository) Update(ctx context.Context, stage *domain.SleepStage) error {
	if m.err != nil {
		return m.err
	}
	m.stages[stage.ID] = stage
	return nil
}

func (m *MockSleepStageRepository) Delete(ctx context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.stages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.stages, id)
	return nil
}

// MockLifestyleRepository is a mock implementation of LifestyleRepository
type MockLifestyleRepository struct {
	factors map[uint]*domain.LifestyleFactors
	nextID  uint
	err     error
}

func NewMockLifestyleRepository() *MockLifestyleRepository {
	return &MockLifestyleRepository{
		factors: make(map[uint]*domain.LifestyleFactors),
		nextID:  1,
	}
}

func (m *MockLifestyleRepository) Create(ctx context.Context, factors *domain.LifestyleFactors) error {
	if m.err != nil {
		return m.err
	}
	if factors.ID == 0 {
		factors.ID = m.nextID
		m.nextID++
	}
	m.factors[factors.ID] = factors
	return nil
}

func (m *MockLifestyleRepository) GetByID(ctx context.Context, id uint) (*domain.LifestyleFactors, error) {
	if m.err != nil {
		return nil, m.err
	}
	factors, ok := m.factors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return factors, nil
}

func (m *MockLifestyleRepository) GetByRecordID(ctx context.Context, recordID uint) (*domain.LifestyleFactors, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, factors := range m.factors {
		if factors.SleepRecordID == recordID {
			return factors, nil
		}
	}
	return nil, nil
}

func (m *MockLifestyleRepository) List(ctx context.Context) ([]domain.LifestyleFactors, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.LifestyleFactors
	for _, factors := range m.factors {
		result = append(result, *factors)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockLifestyleRepository) Update(ctx context.Context, factors *domain.LifestyleFactors) error {
	if m.err != nil {
		return m.err
	}
	m.factors[factors.ID] = factors
	return nil
}

func (m *MockLifestyleRepository) Delete(ctx context.Context, id uint) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.factors[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.factors, id)
	return nil
}

// MockReportRepository is a mock implementation of ReportRepository
type MockReportRepository struct {
	byGender     []domain.GenderAggregate
	byAgeBucket  []domain.AgeBucketAggregate
	daily        []domain.DailyPoint
	distribution *domain.DistributionResponse
	byTag        []domain.TagHabitAggregate
	records      []domain.SleepRecord
	subjects     []domain.Subject
	err          error
}

func (m *MockReportRepository) AggregatesByGender(ctx context.Context, since time.Time) ([]domain.GenderAggregate, error) {
	return m.byGender, m.err
}

func (m *MockReportRepository) AggregatesByAgeBucket(ctx context.Context, since time.Time) ([]domain.AgeBucketAggregate, error) {
	return m.byAgeBucket, m.err
}

func (m *MockReportRepository) DailyDurations(ctx context.Context, since time.Time) ([]domain.DailyPoint, error) {
	return m.daily, m.err
}

func (m *MockReportRepository) StageDistribution(ctx context.Context, since time.Time) (*domain.DistributionResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.distribution != nil {
		return m.distribution, nil
	}
	return &domain.DistributionResponse{Source: "sleep_stages"}, nil
}

func (m *MockReportRepository) HabitsByTag(ctx context.Context, since time.Time, minN int) ([]domain.TagHabitAggregate, error) {
	return m.byTag, m.err
}

func (m *MockReportRepository) RecordsForExport(ctx context.Context, since time.Time) ([]domain.SleepRecord, error) {
	return m.records, m.err
}

func (m *MockReportRepository) SubjectsForExport(ctx context.Context) ([]domain.Subject, error) {
	return m.subjects, m.err
}
