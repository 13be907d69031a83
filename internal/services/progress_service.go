package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

var (
	ErrInvalidExerciseMinutes = errors.New("exercise minutes must be between 0 and 1440")
	ErrProgressNotesTooLong   = errors.New("notes must be at most 2000 characters")
	ErrProgressSaveFailed     = errors.New("save progress failed")
)

const maxProgressNotesLength = 2000

type ProgressInput struct {
	WeightKG        *float64 `json:"weight_kg"`
	ExerciseMinutes int      `json:"exercise_minutes"`
	Notes           string   `json:"notes"`
}

type ProgressRepository interface {
	Create(entry *models.ProgressEntry) error
	ListForUser(userID uint) ([]models.ProgressEntry, error)
}

type ProgressService struct {
	entries ProgressRepository
}

func NewProgressService(entries ProgressRepository) *ProgressService {
	return &ProgressService{entries: entries}
}

// Record stores an entry dated today in the given location.
func (service *ProgressService) Record(userID uint, input ProgressInput, now time.Time) (models.ProgressEntry, error) {
	if input.WeightKG != nil && (*input.WeightKG < 20 || *input.WeightKG > 400) {
		return models.ProgressEntry{}, ErrInvalidWeight
	}
	if input.ExerciseMinutes < 0 || input.ExerciseMinutes > 24*60 {
		return models.ProgressEntry{}, ErrInvalidExerciseMinutes
	}
	notes := strings.TrimSpace(input.Notes)
	if len([]rune(notes)) > maxProgressNotesLength {
		return models.ProgressEntry{}, ErrProgressNotesTooLong
	}

	entry := models.ProgressEntry{
		UserID:          userID,
		Date:            DateAtLocation(now, now.Location()),
		WeightKG:        input.WeightKG,
		ExerciseMinutes: input.ExerciseMinutes,
		Notes:           notes,
	}
	if err := service.entries.Create(&entry); err != nil {
		return models.ProgressEntry{}, fmt.Errorf("%w: %v", ErrProgressSaveFailed, err)
	}
	return entry, nil
}

func (service *ProgressService) List(userID uint) ([]models.ProgressEntry, error) {
	return service.entries.ListForUser(userID)
}
