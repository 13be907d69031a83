package db

import (
	"errors"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExercisePlanRepository struct {
	database *gorm.DB
}

func NewExercisePlanRepository(database *gorm.DB) *ExercisePlanRepository {
	return &ExercisePlanRepository{database: database}
}

func (repo *ExercisePlanRepository) Create(plan *models.ExercisePlan) error {
	return repo.database.Omit(clause.Associations).Create(plan).Error
}

// Save updates the plan's settings without touching its day records.
func (repo *ExercisePlanRepository) Save(plan *models.ExercisePlan) error {
	return repo.database.Omit(clause.Associations).Save(plan).Error
}

func (repo *ExercisePlanRepository) LatestForUser(userID uint) (models.ExercisePlan, bool, error) {
	var plan models.ExercisePlan
	result := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC").First(&plan)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.ExercisePlan{}, false, nil
	}
	if result.Error != nil {
		return models.ExercisePlan{}, false, result.Error
	}
	return plan, true, nil
}

// ReplaceWorkoutDays swaps the plan's schedule atomically so concurrent
// regenerations never leave more than one row per day number.
func (repo *ExercisePlanRepository) ReplaceWorkoutDays(planID uint, days []models.WorkoutDay) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		staleDays := tx.Model(&models.WorkoutDay{}).Select("id").Where("exercise_plan_id = ?", planID)
		if err := tx.Where("workout_day_id IN (?)", staleDays).Delete(&models.WorkoutExercise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exercise_plan_id = ?", planID).Delete(&models.WorkoutDay{}).Error; err != nil {
			return err
		}

		for index := range days {
			day := &days[index]
			day.ID = 0
			day.ExercisePlanID = planID
			if err := tx.Omit(clause.Associations).Create(day).Error; err != nil {
				return err
			}
			for exerciseIndex := range day.Exercises {
				entry := &day.Exercises[exerciseIndex]
				entry.ID = 0
				entry.WorkoutDayID = day.ID
				if err := tx.Omit(clause.Associations).Create(entry).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (repo *ExercisePlanRepository) ListWorkoutDays(planID uint) ([]models.WorkoutDay, error) {
	days := make([]models.WorkoutDay, 0, 7)
	if err := repo.preloadExercises(repo.database).
		Where("exercise_plan_id = ?", planID).
		Order("day_number ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *ExercisePlanRepository) FindWorkoutDayByNumber(planID uint, dayNumber int) (models.WorkoutDay, bool, error) {
	var day models.WorkoutDay
	result := repo.preloadExercises(repo.database).
		Where("exercise_plan_id = ? AND day_number = ?", planID, dayNumber).
		First(&day)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.WorkoutDay{}, false, nil
	}
	if result.Error != nil {
		return models.WorkoutDay{}, false, result.Error
	}
	return day, true, nil
}

// FindWorkoutDay loads a day together with the id of the user owning its plan.
func (repo *ExercisePlanRepository) FindWorkoutDay(dayID uint) (models.WorkoutDay, uint, bool, error) {
	var day models.WorkoutDay
	result := repo.preloadExercises(repo.database).First(&day, dayID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.WorkoutDay{}, 0, false, nil
	}
	if result.Error != nil {
		return models.WorkoutDay{}, 0, false, result.Error
	}

	var plan models.ExercisePlan
	if err := repo.database.Select("id", "user_id").First(&plan, day.ExercisePlanID).Error; err != nil {
		return models.WorkoutDay{}, 0, false, err
	}
	return day, plan.UserID, true, nil
}

func (repo *ExercisePlanRepository) preloadExercises(database *gorm.DB) *gorm.DB {
	return database.
		Preload("Exercises", func(tx *gorm.DB) *gorm.DB { return tx.Order("sort_order ASC") }).
		Preload("Exercises.Exercise")
}
