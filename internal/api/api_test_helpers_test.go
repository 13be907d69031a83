package api

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/db"
	"github.com/daithanwa/dsi202-2025/internal/i18n"
	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/daithanwa/dsi202-2025/internal/ratelimit"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const testSecretKey = "test-secret-key-with-at-least-32-characters"

var testLocation = time.FixedZone("ICT", 7*60*60)

// testNow is a Wednesday.
var testNow = time.Date(2026, time.March, 4, 10, 0, 0, 0, testLocation)

type testApp struct {
	app      *fiber.App
	database *gorm.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	return newTestAppWithLimiter(t, nil)
}

func newTestAppWithLimiter(t *testing.T, limiter ratelimit.AttemptLimiter) *testApp {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "fitplan-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager(i18n.LangEN)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, Options{
		SecretKey:       testSecretKey,
		Location:        testLocation,
		PromptPayMobile: "0812345678",
		I18n:            i18nManager,
		LoginLimiter:    limiter,
		Random:          rand.New(rand.NewPCG(7, 11)),
		Now:             func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	return &testApp{app: app, database: database}
}

func (harness *testApp) request(t *testing.T, method string, path string, cookie string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := harness.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body: %v", method, path, err)
	}
	decoded := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			t.Fatalf("%s %s decode body %q: %v", method, path, string(raw), err)
		}
	}
	return response, decoded
}

func (harness *testApp) expect(t *testing.T, method string, path string, cookie string, body any, status int) map[string]any {
	t.Helper()

	response, decoded := harness.request(t, method, path, cookie, body)
	if response.StatusCode != status {
		t.Fatalf("%s %s status = %d, want %d (body %v)", method, path, response.StatusCode, status, decoded)
	}
	return decoded
}

func authCookieFrom(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatalf("response has no %s cookie", authCookieName)
	return ""
}

func (harness *testApp) register(t *testing.T, username string) string {
	t.Helper()

	response, body := harness.request(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "trainhard42",
		"confirm_password": "trainhard42",
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register %s status = %d (body %v)", username, response.StatusCode, body)
	}
	return authCookieFrom(t, response)
}

func (harness *testApp) completeProfile(t *testing.T, cookie string) {
	t.Helper()

	harness.expect(t, http.MethodPut, "/api/profile", cookie, map[string]any{
		"birth_date":     "1995-06-15",
		"gender":         "female",
		"height_cm":      165,
		"weight_kg":      60,
		"activity_level": 3,
	}, http.StatusOK)
}

func (harness *testApp) seedCatalog(t *testing.T) db.SeedBatch {
	t.Helper()

	batch := db.SeedBatch{
		Products: []models.Product{
			{Name: "Resistance Band", Price: 35000, Stock: 10, IsActive: true},
			{Name: "Yoga Mat", Price: 59000, Stock: 5, IsActive: true},
		},
		SubscriptionPlans: []models.SubscriptionPlan{
			{Name: "Monthly Coaching", Duration: models.DurationMonthly, Price: 29900, IsActive: true},
		},
		ForumTopics: []models.ForumTopic{
			{Name: "Training", Description: "Workout talk", LastActivity: testNow.Add(-48 * time.Hour)},
		},
	}
	groups := []models.MuscleGroup{
		models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleArms,
		models.MuscleLegs, models.MuscleCore, models.MuscleFullBody,
	}
	for _, group := range groups {
		for index := range 3 {
			batch.Exercises = append(batch.Exercises, models.Exercise{
				Name:        string(group) + " move " + string(rune('A'+index)),
				MuscleGroup: group,
				Difficulty:  models.LevelBeginner,
			})
		}
	}
	for _, mealType := range models.MealTypes() {
		for index := range 2 {
			batch.Recipes = append(batch.Recipes, models.Recipe{
				Name:               string(mealType) + " dish " + string(rune('A'+index)),
				MealType:           mealType,
				DietType:           models.DietAny,
				Servings:           1,
				CaloriesPerServing: 400,
				Protein:            25,
				Carbs:              40,
				Fat:                12,
				Ingredients:        []models.Ingredient{{Name: "rice", Amount: "1 cup"}},
			})
		}
	}

	if _, err := db.NewSeedRepository(harness.database).Insert(batch); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	return batch
}

func (harness *testApp) firstID(t *testing.T, model any) uint {
	t.Helper()

	var id uint
	if err := harness.database.Model(model).Select("id").Order("id ASC").Limit(1).Scan(&id).Error; err != nil {
		t.Fatalf("load first id: %v", err)
	}
	if id == 0 {
		t.Fatalf("no rows for %T", model)
	}
	return id
}

func jsonNumber(t *testing.T, value any) int {
	t.Helper()

	number, ok := value.(float64)
	if !ok {
		t.Fatalf("value %v (%T) is not a JSON number", value, value)
	}
	return int(number)
}

func jsonObject(t *testing.T, value any) map[string]any {
	t.Helper()

	object, ok := value.(map[string]any)
	if !ok {
		t.Fatalf("value %v (%T) is not a JSON object", value, value)
	}
	return object
}

func jsonArray(t *testing.T, value any) []any {
	t.Helper()

	array, ok := value.([]any)
	if !ok {
		t.Fatalf("value %v (%T) is not a JSON array", value, value)
	}
	return array
}
