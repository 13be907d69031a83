package services

import (
	"errors"
	"testing"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

type stubProgressRepo struct {
	entries []models.ProgressEntry
}

func (stub *stubProgressRepo) Create(entry *models.ProgressEntry) error {
	entry.ID = uint(len(stub.entries) + 1)
	stub.entries = append(stub.entries, *entry)
	return nil
}

func (stub *stubProgressRepo) ListForUser(userID uint) ([]models.ProgressEntry, error) {
	result := make([]models.ProgressEntry, 0)
	for index := len(stub.entries) - 1; index >= 0; index-- {
		if stub.entries[index].UserID == userID {
			result = append(result, stub.entries[index])
		}
	}
	return result, nil
}

func TestProgressServiceRecordDatesEntryToday(t *testing.T) {
	repo := &stubProgressRepo{}
	service := NewProgressService(repo)
	bangkok := time.FixedZone("ICT", 7*60*60)
	now := time.Date(2026, time.March, 3, 23, 30, 0, 0, bangkok)
	weight := 72.5

	entry, err := service.Record(4, ProgressInput{WeightKG: &weight, ExerciseMinutes: 45, Notes: "  tempo run  "}, now)
	if err != nil {
		t.Fatalf("Record() unexpected error: %v", err)
	}
	want := time.Date(2026, time.March, 3, 0, 0, 0, 0, bangkok)
	if !entry.Date.Equal(want) {
		t.Fatalf("entry.Date = %v, want %v", entry.Date, want)
	}
	if entry.Notes != "tempo run" {
		t.Fatalf("entry.Notes = %q, want trimmed notes", entry.Notes)
	}

	entries, err := service.List(4)
	if err != nil || len(entries) != 1 {
		t.Fatalf("List() = %d entries, %v, want 1, nil", len(entries), err)
	}
}

func TestProgressServiceRecordValidation(t *testing.T) {
	service := NewProgressService(&stubProgressRepo{})
	now := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)
	tooLight := 5.0

	if _, err := service.Record(4, ProgressInput{WeightKG: &tooLight}, now); !errors.Is(err, ErrInvalidWeight) {
		t.Fatalf("Record(weight) error = %v, want ErrInvalidWeight", err)
	}
	if _, err := service.Record(4, ProgressInput{ExerciseMinutes: -5}, now); !errors.Is(err, ErrInvalidExerciseMinutes) {
		t.Fatalf("Record(minutes) error = %v, want ErrInvalidExerciseMinutes", err)
	}
	if _, err := service.Record(4, ProgressInput{}, now); err != nil {
		t.Fatalf("Record(empty) unexpected error: %v", err)
	}
}
