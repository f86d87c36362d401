package handler

import (
	"context"
	"io"
	"time"

	"github.com/dvaldes/sueno-habitos/internal/domain"
)

// MockSubjectService is a mock implementation of SubjectService
type MockSubjectService struct {
	createFunc  func(ctx context.Context, req *domain.CreateSubjectRequest) (*domain.Subject, error)
	getByIDFunc func(ctx context.Context, id uint) (*domain.Subject, error)
	listFunc    func(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error)
	updateFunc  func(ctx context.Context, id uint, req *domain.UpdateSubjectRequest) (*domain.Subject, error)
	deleteFunc  func(ctx context.Context, id uint) error
	restoreFunc func(ctx context.Context, id uint) (*domain.Subject, error)
}

func (m *MockSubjectService) Create(ctx context.Context, req *domain.CreateSubjectRequest) (*domain.Subject, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.Subject{ID: 1, Name: req.Name, Age: req.Age, Gender: req.Gender}, nil
}

func (m *MockSubjectService) GetByID(ctx context.Context, id uint) (*domain.Subject, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockSubjectService) List(ctx context.Context, filter domain.SubjectFilter) ([]domain.Subject, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return []domain.Subject{}, nil
}

func (m *MockSubjectService) Update(ctx context.Context, id uint, req *domain.UpdateSubjectRequest) (*domain.Subject, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, domain.ErrNotFound
}

func (m *MockSubjectService) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *MockSubjectService) Restore(ctx context.Context, id uint) (*domain.Subject, error) {
	if m.restoreFunc != nil {
		return m.restoreFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockSleepRecordService is a mock implementation of SleepRecordService
type MockSleepRecordService struct {
	createFunc  func(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	getByIDFunc func(ctx context.Context, id uint) (*domain.SleepRecord, error)
	listFunc    func(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error)
	replaceFunc func(ctx context.Context, id uint, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error)
	updateFunc  func(ctx context.Context, id uint, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error)
	deleteFunc  func(ctx context.Context, id uint) error
	restoreFunc func(ctx context.Context, id uint) (*domain.SleepRecord, error)
	attachFunc  func(ctx context.Context, id uint, url string) (*domain.SleepRecord, error)
}

func sampleRecord(id uint) *domain.SleepRecord {
	return &domain.SleepRecord{
		ID:              id,
		SubjectID:       1,
		RecordDate:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Bedtime:         time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC),
		WakeupTime:      time.Date(2024, 3, 2, 7, 0, 0, 0, time.UTC),
		SleepDuration:   8,
		SleepEfficiency: 97.92,
		Awakenings:      2,
	}
}

func (m *MockSleepRecordService) Create(ctx context.Context, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return sampleRecord(42), nil
}

func (m *MockSleepRecordService) GetByID(ctx context.Context, id uint) (*domain.SleepRecord, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockSleepRecordService) List(ctx context.Context, filter domain.SleepRecordFilter) (*domain.SleepRecordListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.SleepRecordListResponse{
		Data:       []domain.SleepRecordResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockSleepRecordService) Replace(ctx context.Context, id uint, req *domain.CreateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, id, req)
	}
	return sampleRecord(id), nil
}

func (m *MockSleepRecordService) Update(ctx context.Context, id uint, req *domain.UpdateSleepRecordRequest) (*domain.SleepRecord, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return sampleRecord(id), nil
}

func (m *MockSleepRecordService) Delete(ctx context.Context, id uint) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *MockSleepRecordService) Restore(ctx context.Context, id uint) (*domain.SleepRecord, error) {
	if m.restoreFunc != nil {
		return m.restoreFunc(ctx, id)
	}
	return sampleRecord(id), nil
}

func (m *MockSleepRecordService) Attach(ctx context.Context, id uint, url string) (*domain.SleepRecord, error) {
	if m.attachFunc != nil {
		return m.attachFunc(ctx, id, url)
	}
	record := sampleRecord(id)
	record.AttachmentURL = &url
	return record, nil
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	aggregatesFunc    func(ctx context.Context, filter domain.ReportFilter) (*domain.AggregatesResponse, error)
	timeseriesFunc    func(ctx context.Context, filter domain.ReportFilter) (*domain.TimeseriesResponse, error)
	distributionFunc  func(ctx context.Context, filter domain.ReportFilter) (*domain.DistributionResponse, error)
	habitsQualityFunc func(ctx context.Context, filter domain.ReportFilter) (*domain.HabitsQualityResponse, error)
	exportRecordsFunc func(ctx context.Context, filter domain.ReportFilter, w io.Writer) error
}

func (m *MockReportService) Aggregates(ctx context.Context, filter domain.ReportFilter) (*domain.AggregatesResponse, error) {
	if m.aggregatesFunc != nil {
		return m.aggregatesFunc(ctx, filter)
	}
	return &domain.AggregatesResponse{
		ByGender:    []domain.GenderAggregate{},
		ByAgeBucket: []domain.AgeBucketAggregate{},
	}, nil
}

func (m *MockReportService) Timeseries(ctx context.Context, filter domain.ReportFilter) (*domain.TimeseriesResponse, error) {
	if m.timeseriesFunc != nil {
		return m.timeseriesFunc(ctx, filter)
	}
	return &domain.TimeseriesResponse{Daily: []domain.DailyPoint{}}, nil
}

func (m *MockReportService) Distribution(ctx context.Context, filter domain.ReportFilter) (*domain.DistributionResponse, error) {
	if m.distributionFunc != nil {
		return m.distributionFunc(ctx, filter)
	}
	return &domain.DistributionResponse{Source: "sleep_stages"}, nil
}

func (m *MockReportService) HabitsQuality(ctx context.Context, filter domain.ReportFilter) (*domain.HabitsQualityResponse, error) {
	if m.habitsQualityFunc != nil {
		return m.habitsQualityFunc(ctx, filter)
	}
	return &domain.HabitsQualityResponse{ByTag: []domain.TagHabitAggregate{}}, nil
}

func (m *MockReportService) ExportRecordsCSV(ctx context.Context, filter domain.ReportFilter, w io.Writer) error {
	if m.exportRecordsFunc != nil {
		return m.exportRecordsFunc(ctx, filter, w)
	}
	_, err := w.Write([]byte("id,subject_id\n"))
	return err
}

func (m *MockReportService) ExportSubjectsCSV(ctx context.Context, w io.Writer) error {
	_, err := w.Write([]byte("id,name\n"))
	return err
}

func (m *MockReportService) BuildInsightsContext(ctx context.Context, filter domain.ReportFilter) (*domain.ReportInsightsContext, error) {
	return &domain.ReportInsightsContext{WindowDays: filter.Days}, nil
}

// MockInsightsService is a mock implementation of InsightsService
type MockInsightsService struct {
	generateFunc func(ctx context.Context, filter domain.ReportFilter) (*domain.InsightsResponse, error)
}

func (m *MockInsightsService) Generate(ctx context.Context, filter domain.ReportFilter) (*domain.InsightsResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, filter)
	}
	return &domain.InsightsResponse{WindowDays: 30}, nil
}

// MockStorageClient is a mock implementation of storage.Client
type MockStorageClient struct {
	enabled    bool
	uploadFunc func(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

func (m *MockStorageClient) IsEnabled() bool {
	return m.enabled
}

func (m *MockStorageClient) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	if m.uploadFunc != nil {
		return m.uploadFunc(ctx, filename, contentType, body)
	}
	return "https://project.supabase.co/storage/v1/object/public/sleep-uploads/sleep-records/abc_" + filename, nil
}
