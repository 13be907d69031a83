package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

var (
	ErrInvalidDailyCalories = errors.New("daily calories must be between 800 and 10000")
	ErrInvalidMacroRatio    = errors.New("macro ratios must be between 0 and 100")
	ErrInvalidMealsPerDay   = errors.New("meals per day must be between 2 and 6")
	ErrMealPlanSaveFailed   = errors.New("save meal plan failed")
	ErrRecipeNotFound       = errors.New("recipe not found")
)

const (
	minDailyCalories = 800
	maxDailyCalories = 10000
	minMealsPerDay   = 2
	maxMealsPerDay   = 6
	snackMealsFloor  = 3
)

type MealPlanInput struct {
	Goal                string `json:"goal"`
	DailyCalories       int    `json:"daily_calories"`
	ProteinRatio        int    `json:"protein_ratio"`
	CarbRatio           int    `json:"carb_ratio"`
	FatRatio            int    `json:"fat_ratio"`
	MealsPerDay         int    `json:"meals_per_day"`
	DietaryRestrictions string `json:"dietary_restrictions"`
	Allergies           string `json:"allergies"`
}

type MealPlanSettings struct {
	Goal                models.MealGoal
	DailyCalories       int
	ProteinRatio        int
	CarbRatio           int
	FatRatio            int
	MealsPerDay         int
	DietaryRestrictions string
	Allergies           string
}

// ParseMealPlanInput validates the form. Ratios need not sum to 100.
func ParseMealPlanInput(input MealPlanInput) (MealPlanSettings, error) {
	goal, err := models.ParseMealGoal(input.Goal)
	if err != nil {
		return MealPlanSettings{}, err
	}
	if input.DailyCalories < minDailyCalories || input.DailyCalories > maxDailyCalories {
		return MealPlanSettings{}, ErrInvalidDailyCalories
	}
	for _, ratio := range []int{input.ProteinRatio, input.CarbRatio, input.FatRatio} {
		if ratio < 0 || ratio > 100 {
			return MealPlanSettings{}, ErrInvalidMacroRatio
		}
	}
	if input.MealsPerDay < minMealsPerDay || input.MealsPerDay > maxMealsPerDay {
		return MealPlanSettings{}, ErrInvalidMealsPerDay
	}

	return MealPlanSettings{
		Goal:                goal,
		DailyCalories:       input.DailyCalories,
		ProteinRatio:        input.ProteinRatio,
		CarbRatio:           input.CarbRatio,
		FatRatio:            input.FatRatio,
		MealsPerDay:         input.MealsPerDay,
		DietaryRestrictions: strings.TrimSpace(input.DietaryRestrictions),
		Allergies:           strings.TrimSpace(input.Allergies),
	}, nil
}

// InferDietType reads the free-text restrictions. Vegan wins over vegetarian
// when both words appear.
func InferDietType(restrictions string) models.DietType {
	normalized := strings.ToLower(restrictions)
	switch {
	case strings.Contains(normalized, "vegan"):
		return models.DietVegan
	case strings.Contains(normalized, "vegetarian"):
		return models.DietVegetarian
	default:
		return models.DietAny
	}
}

// recipeFitsGoal applies the per-slot calorie ceiling or protein floor.
func recipeFitsGoal(recipe models.Recipe, goal models.MealGoal) bool {
	switch goal {
	case models.MealGoalWeightLoss:
		ceilings := map[models.MealType]int{
			models.MealBreakfast: 400,
			models.MealLunch:     500,
			models.MealDinner:    500,
			models.MealSnack:     200,
		}
		return recipe.CaloriesPerServing < ceilings[recipe.MealType]
	case models.MealGoalMuscleGain:
		floors := map[models.MealType]float64{
			models.MealBreakfast: 20,
			models.MealLunch:     30,
			models.MealDinner:    30,
			models.MealSnack:     10,
		}
		return recipe.Protein > floors[recipe.MealType]
	default:
		return true
	}
}

// FilterRecipePool keeps recipes matching the diet and goal. When nothing
// matches, the whole meal-type pool is returned instead.
func FilterRecipePool(recipes []models.Recipe, diet models.DietType, goal models.MealGoal) []models.Recipe {
	filtered := make([]models.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.DietType != diet && recipe.DietType != models.DietAny {
			continue
		}
		if !recipeFitsGoal(recipe, goal) {
			continue
		}
		filtered = append(filtered, recipe)
	}
	if len(filtered) == 0 {
		return recipes
	}
	return filtered
}

type MacroTargets struct {
	ProteinGrams int `json:"protein"`
	CarbGrams    int `json:"carbs"`
	FatGrams     int `json:"fat"`
}

func CalculateMacros(plan models.MealPlan) MacroTargets {
	calories := float64(plan.DailyCalories)
	return MacroTargets{
		ProteinGrams: int(math.Round(calories * float64(plan.ProteinRatio) / 100 / 4)),
		CarbGrams:    int(math.Round(calories * float64(plan.CarbRatio) / 100 / 4)),
		FatGrams:     int(math.Round(calories * float64(plan.FatRatio) / 100 / 9)),
	}
}

type MealTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// SummarizeDailyMeal groups the items by meal time and totals one serving of
// each recipe.
func SummarizeDailyMeal(day models.DailyMeal) (map[models.MealType][]models.MealItem, MealTotals) {
	grouped := make(map[models.MealType][]models.MealItem)
	var totals MealTotals
	for _, item := range day.MealItems {
		grouped[item.MealTime] = append(grouped[item.MealTime], item)
		if item.Recipe == nil {
			continue
		}
		totals.Calories += item.Recipe.CaloriesPerServing
		totals.Protein += item.Recipe.Protein
		totals.Carbs += item.Recipe.Carbs
		totals.Fat += item.Recipe.Fat
	}
	totals.Protein = roundTenth(totals.Protein)
	totals.Carbs = roundTenth(totals.Carbs)
	totals.Fat = roundTenth(totals.Fat)
	return grouped, totals
}

func roundTenth(value float64) float64 {
	return math.Round(value*10) / 10
}

type MealPlanRepository interface {
	Create(plan *models.MealPlan) error
	Save(plan *models.MealPlan) error
	LatestForUser(userID uint) (models.MealPlan, bool, error)
	ReplaceDailyMeals(planID uint, days []models.DailyMeal) error
	ListDailyMeals(planID uint) ([]models.DailyMeal, error)
	FindDailyMealByNumber(planID uint, dayNumber int) (models.DailyMeal, bool, error)
	FindDailyMeal(dayID uint) (models.DailyMeal, uint, bool, error)
}

type RecipeCatalog interface {
	ListRecipesByMealType(mealType models.MealType) ([]models.Recipe, error)
	FindRecipe(recipeID uint) (models.Recipe, bool, error)
}

type MealPlanService struct {
	plans   MealPlanRepository
	recipes RecipeCatalog
	random  RandomSource
}

func NewMealPlanService(plans MealPlanRepository, recipes RecipeCatalog, random RandomSource) *MealPlanService {
	if random == nil {
		random = DefaultRandom
	}
	return &MealPlanService{plans: plans, recipes: recipes, random: random}
}

func (service *MealPlanService) SavePlan(userID uint, settings MealPlanSettings, now time.Time) (models.MealPlan, error) {
	plan, found, err := service.plans.LatestForUser(userID)
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("%w: %v", ErrMealPlanSaveFailed, err)
	}

	plan.UserID = userID
	plan.Goal = settings.Goal
	plan.DailyCalories = settings.DailyCalories
	plan.ProteinRatio = settings.ProteinRatio
	plan.CarbRatio = settings.CarbRatio
	plan.FatRatio = settings.FatRatio
	plan.MealsPerDay = settings.MealsPerDay
	plan.DietaryRestrictions = settings.DietaryRestrictions
	plan.Allergies = settings.Allergies

	if found {
		err = service.plans.Save(&plan)
	} else {
		plan.StartDate = DateAtLocation(now, now.Location())
		err = service.plans.Create(&plan)
	}
	if err != nil {
		return models.MealPlan{}, fmt.Errorf("%w: %v", ErrMealPlanSaveFailed, err)
	}

	if err := service.Generate(plan); err != nil {
		return models.MealPlan{}, err
	}
	return plan, nil
}

// Generate rebuilds the seven daily meal records of the plan.
func (service *MealPlanService) Generate(plan models.MealPlan) error {
	diet := InferDietType(plan.DietaryRestrictions)
	pools := make(map[models.MealType][]models.Recipe, 4)
	for _, mealType := range models.MealTypes() {
		recipes, err := service.recipes.ListRecipesByMealType(mealType)
		if err != nil {
			return fmt.Errorf("load %s recipes: %w", mealType, err)
		}
		pools[mealType] = FilterRecipePool(recipes, diet, plan.Goal)
	}

	days := BuildDailyMeals(plan, pools, service.random)
	if err := service.plans.ReplaceDailyMeals(plan.ID, days); err != nil {
		return fmt.Errorf("replace daily meals: %w", err)
	}
	return nil
}

func (service *MealPlanService) Current(userID uint) (models.MealPlan, []models.DailyMeal, error) {
	plan, found, err := service.plans.LatestForUser(userID)
	if err != nil {
		return models.MealPlan{}, nil, err
	}
	if !found {
		return models.MealPlan{}, nil, ErrPlanNotFound
	}

	days, err := service.plans.ListDailyMeals(plan.ID)
	if err != nil {
		return models.MealPlan{}, nil, err
	}
	return plan, days, nil
}

func (service *MealPlanService) DayForUser(userID uint, dayID uint) (models.DailyMeal, error) {
	day, ownerID, found, err := service.plans.FindDailyMeal(dayID)
	if err != nil {
		return models.DailyMeal{}, err
	}
	if !found {
		return models.DailyMeal{}, ErrPlanDayNotFound
	}
	if ownerID != userID {
		return models.DailyMeal{}, ErrPlanDayForbidden
	}
	return day, nil
}

func (service *MealPlanService) Today(userID uint, now time.Time) (*models.DailyMeal, error) {
	plan, found, err := service.plans.LatestForUser(userID)
	if err != nil || !found {
		return nil, err
	}
	day, found, err := service.plans.FindDailyMealByNumber(plan.ID, ISOWeekday(now))
	if err != nil || !found {
		return nil, err
	}
	return &day, nil
}

func (service *MealPlanService) Recipe(recipeID uint) (models.Recipe, error) {
	recipe, found, err := service.recipes.FindRecipe(recipeID)
	if err != nil {
		return models.Recipe{}, err
	}
	if !found {
		return models.Recipe{}, ErrRecipeNotFound
	}
	return recipe, nil
}

// BuildDailyMeals shuffles each pool once and then indexes it by day number,
// so one generation is internally consistent while two runs differ.
func BuildDailyMeals(plan models.MealPlan, pools map[models.MealType][]models.Recipe, random RandomSource) []models.DailyMeal {
	shuffled := make(map[models.MealType][]models.Recipe, len(pools))
	for _, mealType := range models.MealTypes() {
		shuffled[mealType] = sample(pools[mealType], len(pools[mealType]), random)
	}

	slots := []models.MealType{models.MealBreakfast, models.MealLunch, models.MealDinner}
	if plan.MealsPerDay > snackMealsFloor {
		slots = append(slots, models.MealSnack)
	}

	days := make([]models.DailyMeal, 0, 7)
	for dayNumber := 1; dayNumber <= 7; dayNumber++ {
		items := make([]models.MealItem, 0, len(slots))
		for _, slot := range slots {
			pool := shuffled[slot]
			if len(pool) == 0 {
				continue
			}
			items = append(items, models.MealItem{
				RecipeID: pool[dayNumber%len(pool)].ID,
				MealTime: slot,
			})
		}
		days = append(days, models.DailyMeal{DayNumber: dayNumber, MealItems: items})
	}
	return days
}
