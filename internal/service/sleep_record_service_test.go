package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dvaldes/sueno-habitos/internal/domain"
)

func yesterday() domain.Date {
	d := domain.Today().AddDate(0, 0, -1)
	return domain.NewDate(d.Year(), d.Month(), d.Day())
}

func seedSubject(t *testing.T, repo *MockSubjectRepository) *domain.Subject {
	t.Helper()
	name := "Ana María"
	subject := &domain.Subject{Name: &name, Age: 34, Gender: "F"}
	if err := repo.Create(context.Background(), subject); err != nil {
		t.Fatalf("failed to seed subject: %v", err)
	}
	return subject
}

func newRecordService() (SleepRecordService, *MockSleepRecordRepository, *MockSubjectRepository) {
	recordRepo := NewMockSleepRecordRepository()
	subjectRepo := NewMockSubjectRepository()
	return NewSleepRecordService(recordRepo, subjectRepo), recordRepo, subjectRepo
}

func TestSleepRecordService_Create(t *testing.T) {
	svc, _, subjectRepo := newRecordService()
	subject := seedSubject(t, subjectRepo)

	req := &domain.CreateSleepRecordRequest{
		SubjectID:  subject.ID,
		RecordDate: yesterday(),
		Bedtime:    domain.TimeOfDay{Hour: 23},
		WakeupTime: domain.TimeOfDay{Hour: 7},
		Awakenings: 2,
	}

	record, err := svc.Create(context.Background(), req)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if record.SleepDuration != 8.0 {
		t.Errorf("SleepDuration = %v, want 8.0", record.SleepDuration)
	}
	if record.SleepEfficiency != 97.92 {
		t.Errorf("SleepEfficiency = %v, want 97.92", record.SleepEfficiency)
	}
	if !record.WakeupTime.After(record.Bedtime) {
		t.Error("wake-up must resolve after bedtime")
	}
	if record.Subject == nil || record.Subject.ID != subject.ID {
		t.Error("record should carry its subject")
	}
}

func TestSleepRecordService_Create_SubjectMissing(t *testing.T) {
	svc, _, _ := newRecordService()

	_, err := svc.Create(context.Background(), &domain.CreateSleepRecordRequest{
		SubjectID:  99,
		RecordDate: yesterday(),
		Bedtime:    domain.TimeOfDay{Hour: 23},
		WakeupTime: domain.TimeOfDay{Hour: 7},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSleepRecordService_Create_SubjectDeleted(t *testing.T) {
	svc, _, subjectRepo := newRecordService()
	subject := seedSubject(t, subjectRepo)
	subject.IsDeleted = true

	_, err := svc.Create(context.Background(), &domain.CreateSleepRecordRequest{
		SubjectID:  subject.ID,
		RecordDate: yesterday(),
		Bedtime:    domain.TimeOfDay{Hour: 23},
		WakeupTime: domain.TimeOfDay{Hour: 7},
	})
	if !errors.Is(err, domain.ErrSubjectGone) {
		t.Errorf("expected ErrSubjectGone, got %v", err)
	}
}

func TestSleepRecordService_Create_FutureDate(t *testing.T) {
	svc, _, subjectRepo := newRecordService()
	subject := seedSubject(t, subjectRepo)

	future := domain.Today().AddDate(0, 0, 1)
	_, err := svc.Create(context.Background(), &domain.CreateSleepRecordRequest{
		SubjectID:  subject.ID,
		RecordDate: domain.NewDate(future.Year(), future.Month(), future.Day()),
		Bedtime:    domain.TimeOfDay{Hour: 23},
		WakeupTime: domain.TimeOfDay{Hour: 7},
	})
	if !errors.Is(err, domain.ErrFutureDate) {
		t.Errorf("expected ErrFutureDate, got %v", err)
	}
}

func TestSleepRecordService_Update_RecomputesMetrics(t *testing.T) {
	svc, _, subjectRepo := newRecordService()
	subject := seedSubject(t, subjectRepo)

	record, err := svc.Create(context.Background(), &domain.CreateSleepRecordRequest{
		SubjectID:  subject.ID,
		RecordDate: yesterday(),
		Bedtime:    domain.TimeOfDay{Hour: 23},
		WakeupTime: domain.TimeOfDay{Hour: 7},
		Awakenings: 0,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if record.SleepEfficiency != 100.0 {
		t.Fatalf("baseline efficiency = %v, want 100", record.SleepEfficiency)
	}

	awakenings := 4
	updated, err := svc.Update(context.Background(), record.ID, &domain.UpdateSleepRecordRequest{
		Awakenings: &awakenings,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// 480 min in bed, 20 min WASO: 100*(480-20)/480 = 95.83
	if updated.SleepEfficiency != 95.83 {
		t.Errorf("SleepEfficiency = %v, want 95.83", updated.SleepEfficiency)
	}
	if updated.SleepDuration != 8.0 {
		t.Errorf("SleepDuration = %v, want 8.0 (window unchanged)", updated.SleepDuration)
	}
}

func TestSleepRecordService_Update_NotesOnlyKeepsMetrics(t *testing.T) {
	svc, _, subjectRepo := newRecordService()
	subject := seedSubject(t, subjectRepo)

	record, err := svc.Create(context.Background(), &domain.CreateSleepRecordRequest{
		SubjectID:  subject.ID,
		RecordDate: yesterday(),
		Bedtime:    domain.TimeOfDay{Hour: 23},
		WakeupTime: domain.TimeOfDay{Hour: 7},
		Awakenings: 2,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	notes := "se despertó por ruido"
	updated, err := svc.Update(context.Background(), record.ID, &domain.UpdateSleepRecordRequest{
		Notes: &notes,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.SleepEfficiency != 97.92 || updated.SleepDuration != 8.0 {
		t.Errorf("metrics changed on notes-only patch: %v / %v", updated.SleepDuration, updated.SleepEfficiency)
	}
	if updated.Notes == nil || *updated.Notes != notes {
		t.Error("notes not applied")
	}
}

func TestSleepRecordService_Update_DeletedRecord(t *testing.T) {
	svc, recordRepo, subjectRepo := newRecordService()
	subject := seedSubject(t, subjectRepo)

	record, err := svc.Create(context.Background(), &domain.CreateSleepRecordRequest{
		SubjectID:  subject.ID,
		RecordDate: yesterday(),
		Bedtime:    domain.TimeOfDay{Hour: 23},
		WakeupTime: domain.TimeOfDay{Hour: 7},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	recordRepo.records[record.ID].IsDeleted = true

	notes := "nota"
	if _, err := svc.Update(context.Background(), record.ID, &domain.UpdateSleepRecordRequest{Notes: &notes}); !errors.Is(err, domain.ErrRecordGone) {
		t.Errorf("expected ErrRecordGone, got %v", err)
	}

	// Restore patch is the one write a deleted record accepts
	restore := false
	restored, err := svc.Update(context.Background(), record.ID, &domain.UpdateSleepRecordRequest{IsDeleted: &restore})
	if err != nil {
		t.Fatalf("restore patch error = %v", err)
	}
	if restored.IsDeleted {
		t.Error("record still deleted after restore patch")
	}
}

func TestSleepRecordService_DeleteAndRestore(t *testing.T) {
	svc, _, subjectRepo := newRecordService()
	subject := seedSubject(t, subjectRepo)

	record, err := svc.Create(context.Background(), &domain.CreateSleepRecordRequest{
		SubjectID:  subject.ID,
		RecordDate: yesterday(),
		Bedtime:    domain.TimeOfDay{Hour: 23},
		WakeupTime: domain.TimeOfDay{Hour: 7},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), record.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetByID(context.Background(), record.ID); !errors.Is(err, domain.ErrRecordGone) {
		t.Errorf("expected ErrRecordGone after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), record.ID); !errors.Is(err, domain.ErrRecordGone) {
		t.Errorf("expected ErrRecordGone on double delete, got %v", err)
	}

	restored, err := svc.Restore(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.IsDeleted {
		t.Error("record still deleted after restore")
	}
}

func TestSleepRecordService_List_Pagination(t *testing.T) {
	svc, _, subjectRepo := newRecordService()
	subject := seedSubject(t, subjectRepo)

	for i := 1; i <= 3; i++ {
		d := domain.Today().AddDate(0, 0, -i)
		_, err := svc.Create(context.Background(), &domain.CreateSleepRecordRequest{
			SubjectID:  subject.ID,
			RecordDate: domain.NewDate(d.Year(), d.Month(), d.Day()),
			Bedtime:    domain.TimeOfDay{Hour: 23},
			WakeupTime: domain.TimeOfDay{Hour: 7},
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	response, err := svc.List(context.Background(), domain.SleepRecordFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(response.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(response.Data))
	}
	if !response.Pagination.HasMore {
		t.Error("expected HasMore")
	}
	if response.Pagination.NextCursor == "" {
		t.Error("expected next cursor")
	}
	// Newest first
	if response.Data[0].RecordDate < response.Data[1].RecordDate {
		t.Errorf("records not in descending date order: %s before %s", response.Data[0].RecordDate, response.Data[1].RecordDate)
	}
}

func TestSleepRecordService_List_InvalidGender(t *testing.T) {
	svc, _, _ := newRecordService()

	if _, err := svc.List(context.Background(), domain.SleepRecordFilter{Gender: "X"}); !errors.Is(err, domain.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestSleepRecordService_Attach(t *testing.T) {
	svc, _, subjectRepo := newRecordService()
	subject := seedSubject(t, subjectRepo)

	record, err := svc.Create(context.Background(), &domain.CreateSleepRecordRequest{
		SubjectID:  subject.ID,
		RecordDate: yesterday(),
		Bedtime:    domain.TimeOfDay{Hour: 23},
		WakeupTime: domain.TimeOfDay{Hour: 7},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	url := "https://project.supabase.co/storage/v1/object/public/sleep-uploads/sleep-records/x_report.pdf"
	updated, err := svc.Attach(context.Background(), record.ID, url)
	if err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	if updated.AttachmentURL == nil || *updated.AttachmentURL != url {
		t.Error("attachment URL not stored")
	}
}
