package db

import (
	"errors"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	database *gorm.DB
}

func NewCatalogRepository(database *gorm.DB) *CatalogRepository {
	return &CatalogRepository{database: database}
}

// ListExercisesForPlan returns the eligible pool in id order; callers shuffle.
func (repo *CatalogRepository) ListExercisesForPlan(difficulties []models.Level, equipmentRequired bool) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if len(difficulties) == 0 {
		return exercises, nil
	}
	values := make([]string, 0, len(difficulties))
	for _, difficulty := range difficulties {
		values = append(values, string(difficulty))
	}
	if err := repo.database.
		Where("difficulty IN ? AND equipment_required = ?", values, equipmentRequired).
		Order("id ASC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *CatalogRepository) ListRecipesByMealType(mealType models.MealType) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	if err := repo.database.Where("meal_type = ?", string(mealType)).Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (repo *CatalogRepository) FindRecipe(recipeID uint) (models.Recipe, bool, error) {
	var recipe models.Recipe
	result := repo.database.
		Preload("Ingredients", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		First(&recipe, recipeID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Recipe{}, false, nil
	}
	if result.Error != nil {
		return models.Recipe{}, false, result.Error
	}
	return recipe, true, nil
}

func (repo *CatalogRepository) FindExercise(exerciseID uint) (models.Exercise, bool, error) {
	var exercise models.Exercise
	result := repo.database.First(&exercise, exerciseID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Exercise{}, false, nil
	}
	if result.Error != nil {
		return models.Exercise{}, false, result.Error
	}
	return exercise, true, nil
}
