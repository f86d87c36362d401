package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dvaldes/sueno-habitos/internal/domain"
)

func newSubjectService() (SubjectService, *MockSubjectRepository, *MockTagRepository) {
	subjectRepo := NewMockSubjectRepository()
	tagRepo := NewMockTagRepository()
	return NewSubjectService(subjectRepo, tagRepo), subjectRepo, tagRepo
}

func TestSubjectService_Create(t *testing.T) {
	svc, _, tagRepo := newSubjectService()

	tag := &domain.Tag{Name: "Cafe tarde"}
	if err := tagRepo.Create(context.Background(), tag); err != nil {
		t.Fatalf("failed to seed tag: %v", err)
	}

	name := "  Ana   María "
	subject, err := svc.Create(context.Background(), &domain.CreateSubjectRequest{
		Name:   &name,
		Age:    34,
		Gender: "f",
		TagIDs: []uint{tag.ID},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if subject.Name == nil || *subject.Name != "Ana María" {
		t.Errorf("name not normalized: %v", subject.Name)
	}
	if subject.Gender != "F" {
		t.Errorf("Gender = %q, want F", subject.Gender)
	}
	if len(subject.Tags) != 1 || subject.Tags[0].Name != "Cafe tarde" {
		t.Errorf("tags not attached: %v", subject.Tags)
	}
}

func TestSubjectService_Create_Invalid(t *testing.T) {
	svc, _, _ := newSubjectService()

	badName := "Ana123"
	tests := []struct {
		name    string
		req     *domain.CreateSubjectRequest
		wantErr error
	}{
		{
			name:    "invalid gender",
			req:     &domain.CreateSubjectRequest{Age: 30, Gender: "X"},
			wantErr: domain.ErrFormat,
		},
		{
			name:    "age out of range",
			req:     &domain.CreateSubjectRequest{Age: 150, Gender: "M"},
			wantErr: domain.ErrOutOfRange,
		},
		{
			name:    "name with digits",
			req:     &domain.CreateSubjectRequest{Name: &badName, Age: 30, Gender: "M"},
			wantErr: domain.ErrFormat,
		},
		{
			name:    "unknown tag id",
			req:     &domain.CreateSubjectRequest{Age: 30, Gender: "M", TagIDs: []uint{77}},
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSubjectService_GetByID_Deleted(t *testing.T) {
	svc, subjectRepo, _ := newSubjectService()
	subject := seedSubject(t, subjectRepo)
	subject.IsDeleted = true

	if _, err := svc.GetByID(context.Background(), subject.ID); !errors.Is(err, domain.ErrSubjectGone) {
		t.Errorf("expected ErrSubjectGone, got %v", err)
	}
}

func TestSubjectService_Update(t *testing.T) {
	svc, subjectRepo, tagRepo := newSubjectService()
	subject := seedSubject(t, subjectRepo)

	tag := &domain.Tag{Name: "Ejercicio regular"}
	if err := tagRepo.Create(context.Background(), tag); err != nil {
		t.Fatalf("failed to seed tag: %v", err)
	}

	age := 35
	updated, err := svc.Update(context.Background(), subject.ID, &domain.UpdateSubjectRequest{
		Age:    &age,
		TagIDs: []uint{tag.ID},
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Age != 35 {
		t.Errorf("Age = %d, want 35", updated.Age)
	}
	if len(updated.Tags) != 1 || updated.Tags[0].ID != tag.ID {
		t.Errorf("tags not replaced: %v", updated.Tags)
	}
}

func TestSubjectService_Update_Deleted(t *testing.T) {
	svc, subjectRepo, _ := newSubjectService()
	subject := seedSubject(t, subjectRepo)
	subject.IsDeleted = true

	age := 40
	if _, err := svc.Update(context.Background(), subject.ID, &domain.UpdateSubjectRequest{Age: &age}); !errors.Is(err, domain.ErrSubjectGone) {
		t.Errorf("expected ErrSubjectGone, got %v", err)
	}

	restore := false
	restored, err := svc.Update(context.Background(), subject.ID, &domain.UpdateSubjectRequest{IsDeleted: &restore})
	if err != nil {
		t.Fatalf("restore patch error = %v", err)
	}
	if restored.IsDeleted {
		t.Error("subject still deleted after restore patch")
	}
}

func TestSubjectService_DeleteAndRestore(t *testing.T) {
	svc, subjectRepo, _ := newSubjectService()
	subject := seedSubject(t, subjectRepo)

	if err := svc.Delete(context.Background(), subject.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := svc.Delete(context.Background(), subject.ID); !errors.Is(err, domain.ErrSubjectGone) {
		t.Errorf("expected ErrSubjectGone on double delete, got %v", err)
	}

	restored, err := svc.Restore(context.Background(), subject.ID)
	if err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if restored.IsDeleted {
		t.Error("subject still deleted after restore")
	}
	// Restore is idempotent
	if _, err := svc.Restore(context.Background(), subject.ID); err != nil {
		t.Errorf("second Restore() error = %v", err)
	}
}

func TestSubjectService_List_InvalidGender(t *testing.T) {
	svc, _, _ := newSubjectService()

	if _, err := svc.List(context.Background(), domain.SubjectFilter{Gender: "banana"}); !errors.Is(err, domain.ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}
