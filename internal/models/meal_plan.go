package models

import "time"

type MealPlan struct {
	ID                  uint        `gorm:"primaryKey" json:"id"`
	UserID              uint        `gorm:"not null;index" json:"user_id"`
	Goal                MealGoal    `gorm:"not null" json:"goal"`
	DailyCalories       int         `gorm:"not null;default:2000" json:"daily_calories"`
	ProteinRatio        int         `gorm:"not null;default:30" json:"protein_ratio"`
	CarbRatio           int         `gorm:"not null;default:40" json:"carb_ratio"`
	FatRatio            int         `gorm:"not null;default:30" json:"fat_ratio"`
	MealsPerDay         int         `gorm:"not null;default:3" json:"meals_per_day"`
	DietaryRestrictions string      `json:"dietary_restrictions"`
	Allergies           string      `json:"allergies"`
	StartDate           time.Time   `gorm:"not null" json:"start_date"`
	CreatedAt           time.Time   `json:"created_at"`
	DailyMeals          []DailyMeal `gorm:"constraint:OnDelete:CASCADE" json:"daily_meals,omitempty"`
}

type DailyMeal struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	MealPlanID uint       `gorm:"not null;uniqueIndex:uidx_daily_meal_plan_day" json:"meal_plan_id"`
	DayNumber  int        `gorm:"not null;uniqueIndex:uidx_daily_meal_plan_day" json:"day_number"`
	MealItems  []MealItem `gorm:"constraint:OnDelete:CASCADE" json:"meal_items"`
}

type MealItem struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	DailyMealID uint     `gorm:"not null;index" json:"daily_meal_id"`
	RecipeID    uint     `gorm:"not null" json:"recipe_id"`
	Recipe      *Recipe  `json:"recipe,omitempty"`
	MealTime    MealType `gorm:"not null" json:"meal_time"`
}
