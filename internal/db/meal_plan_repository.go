package db

import (
	"errors"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MealPlanRepository struct {
	database *gorm.DB
}

func NewMealPlanRepository(database *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{database: database}
}

func (repo *MealPlanRepository) Create(plan *models.MealPlan) error {
	return repo.database.Omit(clause.Associations).Create(plan).Error
}

// Save updates the plan's settings without touching its day records.
func (repo *MealPlanRepository) Save(plan *models.MealPlan) error {
	return repo.database.Omit(clause.Associations).Save(plan).Error
}

func (repo *MealPlanRepository) LatestForUser(userID uint) (models.MealPlan, bool, error) {
	var plan models.MealPlan
	result := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC").First(&plan)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.MealPlan{}, false, nil
	}
	if result.Error != nil {
		return models.MealPlan{}, false, result.Error
	}
	return plan, true, nil
}

func (repo *MealPlanRepository) ReplaceDailyMeals(planID uint, days []models.DailyMeal) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		staleDays := tx.Model(&models.DailyMeal{}).Select("id").Where("meal_plan_id = ?", planID)
		if err := tx.Where("daily_meal_id IN (?)", staleDays).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_plan_id = ?", planID).Delete(&models.DailyMeal{}).Error; err != nil {
			return err
		}

		for index := range days {
			day := &days[index]
			day.ID = 0
			day.MealPlanID = planID
			if err := tx.Omit(clause.Associations).Create(day).Error; err != nil {
				return err
			}
			for itemIndex := range day.MealItems {
				item := &day.MealItems[itemIndex]
				item.ID = 0
				item.DailyMealID = day.ID
				if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (repo *MealPlanRepository) ListDailyMeals(planID uint) ([]models.DailyMeal, error) {
	days := make([]models.DailyMeal, 0, 7)
	if err := repo.preloadItems(repo.database).
		Where("meal_plan_id = ?", planID).
		Order("day_number ASC").
		Find(&days).Error; err != nil {
		return nil, err
	}
	return days, nil
}

func (repo *MealPlanRepository) FindDailyMealByNumber(planID uint, dayNumber int) (models.DailyMeal, bool, error) {
	var day models.DailyMeal
	result := repo.preloadItems(repo.database).
		Where("meal_plan_id = ? AND day_number = ?", planID, dayNumber).
		First(&day)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.DailyMeal{}, false, nil
	}
	if result.Error != nil {
		return models.DailyMeal{}, false, result.Error
	}
	return day, true, nil
}

// FindDailyMeal loads a day together with the id of the user owning its plan.
func (repo *MealPlanRepository) FindDailyMeal(dayID uint) (models.DailyMeal, uint, bool, error) {
	var day models.DailyMeal
	result := repo.preloadItems(repo.database).First(&day, dayID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.DailyMeal{}, 0, false, nil
	}
	if result.Error != nil {
		return models.DailyMeal{}, 0, false, result.Error
	}

	var plan models.MealPlan
	if err := repo.database.Select("id", "user_id").First(&plan, day.MealPlanID).Error; err != nil {
		return models.DailyMeal{}, 0, false, err
	}
	return day, plan.UserID, true, nil
}

func (repo *MealPlanRepository) preloadItems(database *gorm.DB) *gorm.DB {
	return database.
		Preload("MealItems", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Preload("MealItems.Recipe")
}
