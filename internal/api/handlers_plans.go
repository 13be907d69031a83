package api

import (
	"strings"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/daithanwa/dsi202-2025/internal/services"
	"github.com/gofiber/fiber/v2"
)

// defaultDailyCalories is offered when the profile lacks the data for TDEE.
const defaultDailyCalories = 2000

func (handler *Handler) GetExercisePlan(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	plan, days, err := handler.workouts.Current(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	calendar := services.BuildPlanCalendar(plan.StartDate, handler.now(), days, func(day models.WorkoutDay) int {
		return day.DayNumber
	})
	return c.JSON(fiber.Map{
		"plan":     plan,
		"days":     days,
		"calendar": calendar,
	})
}

func (handler *Handler) SaveExercisePlan(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input services.ExercisePlanInput
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	settings, err := services.ParseExercisePlanInput(input)
	if err != nil {
		return handler.respondError(c, err)
	}

	plan, err := handler.workouts.SavePlan(user.ID, settings, handler.now())
	if err != nil {
		return handler.respondError(c, err)
	}
	_, days, err := handler.workouts.Current(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": handler.translate(c, "success.exercise_plan_created"),
		"plan":    plan,
		"days":    days,
	})
}

func (handler *Handler) GetWorkoutDay(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	dayID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	day, err := handler.workouts.DayForUser(user.ID, dayID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"day": day})
}

func (handler *Handler) GetMealPlan(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	plan, days, err := handler.meals.Current(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	calendar := services.BuildPlanCalendar(plan.StartDate, handler.now(), days, func(day models.DailyMeal) int {
		return day.DayNumber
	})
	return c.JSON(fiber.Map{
		"plan":     plan,
		"macros":   services.CalculateMacros(plan),
		"days":     days,
		"calendar": calendar,
	})
}

// MealPlanSuggestion proposes daily calories for the requested goal from the
// profile's TDEE.
func (handler *Handler) MealPlanSuggestion(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	goal := models.MealGoalGeneralHealth
	if raw := strings.TrimSpace(c.Query("goal")); raw != "" {
		parsed, err := models.ParseMealGoal(raw)
		if err != nil {
			return handler.respondError(c, err)
		}
		goal = parsed
	}

	profile, err := handler.profiles.Load(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	metrics := services.CalculateProfileMetrics(profile, handler.now())

	calories := defaultDailyCalories
	if metrics.TDEE != nil {
		calories = services.SuggestedCalories(*metrics.TDEE, goal)
	}
	return c.JSON(fiber.Map{
		"goal":           goal,
		"daily_calories": calories,
		"tdee":           metrics.TDEE,
	})
}

func (handler *Handler) SaveMealPlan(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input services.MealPlanInput
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	settings, err := services.ParseMealPlanInput(input)
	if err != nil {
		return handler.respondError(c, err)
	}

	plan, err := handler.meals.SavePlan(user.ID, settings, handler.now())
	if err != nil {
		return handler.respondError(c, err)
	}
	_, days, err := handler.meals.Current(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": handler.translate(c, "success.meal_plan_created"),
		"plan":    plan,
		"macros":  services.CalculateMacros(plan),
		"days":    days,
	})
}

func (handler *Handler) GetDailyMeal(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	dayID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	day, err := handler.meals.DayForUser(user.ID, dayID)
	if err != nil {
		return handler.respondError(c, err)
	}
	grouped, totals := services.SummarizeDailyMeal(day)
	return c.JSON(fiber.Map{
		"day":    day,
		"meals":  grouped,
		"totals": totals,
	})
}

func (handler *Handler) GetRecipe(c *fiber.Ctx) error {
	recipeID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	recipe, err := handler.meals.Recipe(recipeID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"recipe": recipe})
}
