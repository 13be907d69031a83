package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

func validExercisePlanInput(daysPerWeek int) map[string]any {
	return map[string]any{
		"goal":                "muscle_gain",
		"level":               "beginner",
		"days_per_week":       daysPerWeek,
		"preferred_time":      "morning",
		"training_focus":      "full_body",
		"available_equipment": false,
	}
}

func (harness *testApp) subscribe(t *testing.T, cookie string) {
	t.Helper()

	planID := harness.firstID(t, &models.SubscriptionPlan{})
	harness.expect(t, http.MethodPost, fmt.Sprintf("/api/subscription-plans/%d/subscribe", planID), cookie, nil, http.StatusCreated)
}

func TestPlanRoutesRequireSubscriptionThenProfile(t *testing.T) {
	harness := newTestApp(t)
	harness.seedCatalog(t)
	cookie := harness.register(t, "runner")

	body := harness.expect(t, http.MethodGet, "/api/exercise-plan", cookie, nil, http.StatusConflict)
	if body["redirect"] != "/subscriptions" {
		t.Fatalf("missing subscription body = %v, want redirect /subscriptions", body)
	}
	if message, _ := body["message"].(string); message == "" {
		t.Fatalf("missing subscription body has no message: %v", body)
	}

	harness.subscribe(t, cookie)
	planID := harness.firstID(t, &models.SubscriptionPlan{})
	again := harness.expect(t, http.MethodPost, fmt.Sprintf("/api/subscription-plans/%d/subscribe", planID), cookie, nil, http.StatusOK)
	if jsonNumber(t, jsonObject(t, again["subscription"])["days_remaining"]) != 30 {
		t.Fatalf("existing subscription body = %v, want 30 days remaining", again)
	}

	body = harness.expect(t, http.MethodPost, "/api/exercise-plan", cookie, validExercisePlanInput(3), http.StatusConflict)
	if body["redirect"] != "/profile/setup" {
		t.Fatalf("incomplete profile body = %v, want redirect /profile/setup", body)
	}

	harness.expect(t, http.MethodGet, "/api/exercise-plan", cookie, nil, http.StatusNotFound)
}

func TestSaveExercisePlanRegeneratesWeekInPlace(t *testing.T) {
	harness := newTestApp(t)
	harness.seedCatalog(t)
	cookie := harness.register(t, "runner")
	harness.subscribe(t, cookie)
	harness.completeProfile(t, cookie)

	invalid := harness.expect(t, http.MethodPost, "/api/exercise-plan", cookie, validExercisePlanInput(9), http.StatusBadRequest)
	if message, _ := invalid["error"].(string); message == "" {
		t.Fatalf("invalid plan body = %v, want error message", invalid)
	}

	created := harness.expect(t, http.MethodPost, "/api/exercise-plan", cookie, validExercisePlanInput(3), http.StatusCreated)
	if days := jsonArray(t, created["days"]); len(days) != 7 {
		t.Fatalf("created plan has %d days, want 7", len(days))
	}

	harness.expect(t, http.MethodPost, "/api/exercise-plan", cookie, validExercisePlanInput(4), http.StatusCreated)

	var plans, days int64
	harness.database.Model(&models.ExercisePlan{}).Count(&plans)
	harness.database.Model(&models.WorkoutDay{}).Count(&days)
	if plans != 1 || days != 7 {
		t.Fatalf("after resubmit plans=%d days=%d, want 1 and 7", plans, days)
	}

	current := harness.expect(t, http.MethodGet, "/api/exercise-plan", cookie, nil, http.StatusOK)
	if jsonNumber(t, jsonObject(t, current["plan"])["days_per_week"]) != 4 {
		t.Fatalf("current plan = %v, want days_per_week 4", current["plan"])
	}
	calendar := jsonArray(t, current["calendar"])
	if len(calendar) != 28 {
		t.Fatalf("calendar has %d cells, want 28", len(calendar))
	}
	first := jsonObject(t, calendar[0])
	if first["is_today"] != true || jsonNumber(t, first["day_number"]) != 3 {
		t.Fatalf("first calendar cell = %v, want today on weekday 3", first)
	}
}

func TestWorkoutDayOfAnotherUserIsForbidden(t *testing.T) {
	harness := newTestApp(t)
	harness.seedCatalog(t)

	owner := harness.register(t, "owner")
	harness.subscribe(t, owner)
	harness.completeProfile(t, owner)
	harness.expect(t, http.MethodPost, "/api/exercise-plan", owner, validExercisePlanInput(3), http.StatusCreated)
	dayID := harness.firstID(t, &models.WorkoutDay{})

	day := harness.expect(t, http.MethodGet, fmt.Sprintf("/api/exercise-plan/days/%d", dayID), owner, nil, http.StatusOK)
	if jsonNumber(t, jsonObject(t, day["day"])["day_number"]) != 1 {
		t.Fatalf("first workout day = %v, want day_number 1", day)
	}

	other := harness.register(t, "visitor")
	harness.subscribe(t, other)
	body := harness.expect(t, http.MethodGet, fmt.Sprintf("/api/exercise-plan/days/%d", dayID), other, nil, http.StatusForbidden)
	if body["redirect"] != "/dashboard" {
		t.Fatalf("forbidden body = %v, want redirect /dashboard", body)
	}

	harness.expect(t, http.MethodGet, "/api/exercise-plan/days/999999", owner, nil, http.StatusNotFound)
	harness.expect(t, http.MethodGet, "/api/exercise-plan/days/abc", owner, nil, http.StatusBadRequest)
}

func TestMealPlanSuggestionAndDailyTotals(t *testing.T) {
	harness := newTestApp(t)
	harness.seedCatalog(t)
	cookie := harness.register(t, "runner")
	harness.subscribe(t, cookie)
	harness.completeProfile(t, cookie)

	suggestion := harness.expect(t, http.MethodGet, "/api/meal-plan/suggestion", cookie, nil, http.StatusOK)
	if suggestion["tdee"] == nil {
		t.Fatalf("suggestion = %v, want tdee from completed profile", suggestion)
	}
	if jsonNumber(t, suggestion["daily_calories"]) != jsonNumber(t, suggestion["tdee"]) {
		t.Fatalf("general health suggestion = %v, want daily calories equal to tdee", suggestion)
	}
	harness.expect(t, http.MethodGet, "/api/meal-plan/suggestion?goal=bulk", cookie, nil, http.StatusBadRequest)

	created := harness.expect(t, http.MethodPost, "/api/meal-plan", cookie, map[string]any{
		"goal":           "maintenance",
		"daily_calories": 2000,
		"protein_ratio":  30,
		"carb_ratio":     40,
		"fat_ratio":      30,
		"meals_per_day":  4,
	}, http.StatusCreated)
	macros := jsonObject(t, created["macros"])
	if jsonNumber(t, macros["protein"]) != 150 || jsonNumber(t, macros["carbs"]) != 200 || jsonNumber(t, macros["fat"]) != 67 {
		t.Fatalf("macros = %v, want protein 150 carbs 200 fat 67", macros)
	}
	days := jsonArray(t, created["days"])
	if len(days) != 7 {
		t.Fatalf("meal plan has %d days, want 7", len(days))
	}

	dayID := jsonNumber(t, jsonObject(t, days[0])["id"])
	detail := harness.expect(t, http.MethodGet, fmt.Sprintf("/api/meal-plan/days/%d", dayID), cookie, nil, http.StatusOK)
	totals := jsonObject(t, detail["totals"])
	if jsonNumber(t, totals["calories"]) != 1600 {
		t.Fatalf("totals = %v, want 1600 calories for four meals", totals)
	}
	meals := jsonObject(t, detail["meals"])
	if len(jsonArray(t, meals["snack"])) != 1 {
		t.Fatalf("meals = %v, want one snack", meals)
	}

	recipeID := harness.firstID(t, &models.Recipe{})
	recipe := harness.expect(t, http.MethodGet, fmt.Sprintf("/api/recipes/%d", recipeID), cookie, nil, http.StatusOK)
	if len(jsonArray(t, jsonObject(t, recipe["recipe"])["ingredients"])) != 1 {
		t.Fatalf("recipe = %v, want its ingredient", recipe)
	}
}

func TestDashboardSummarizesToday(t *testing.T) {
	harness := newTestApp(t)
	harness.seedCatalog(t)
	cookie := harness.register(t, "runner")

	empty := harness.expect(t, http.MethodGet, "/api/dashboard", cookie, nil, http.StatusOK)
	if empty["today_workout"] != nil || empty["subscription"] != nil {
		t.Fatalf("empty dashboard = %v", empty)
	}
	if len(jsonArray(t, empty["recent_orders"])) != 0 {
		t.Fatalf("empty dashboard recent orders = %v, want []", empty["recent_orders"])
	}

	harness.subscribe(t, cookie)
	harness.completeProfile(t, cookie)
	harness.expect(t, http.MethodPost, "/api/exercise-plan", cookie, validExercisePlanInput(3), http.StatusCreated)

	dashboard := harness.expect(t, http.MethodGet, "/api/dashboard", cookie, nil, http.StatusOK)
	today := jsonObject(t, dashboard["today_workout"])
	if jsonNumber(t, today["day_number"]) != 3 {
		t.Fatalf("today workout = %v, want Wednesday record", today)
	}
	if jsonNumber(t, jsonObject(t, dashboard["subscription"])["days_remaining"]) != 30 {
		t.Fatalf("dashboard subscription = %v, want 30 days remaining", dashboard["subscription"])
	}
	if dashboard["bmi"] != 22.0 {
		t.Fatalf("dashboard bmi = %v, want 22", dashboard["bmi"])
	}
}
