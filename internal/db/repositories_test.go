package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
)

func openRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return openSQLiteForMigrationBootstrapTest(t, filepath.Join(t.TempDir(), "fitplan-repo.db"))
}

func createRepositoryTestUser(t *testing.T, database *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{Username: username, Email: username + "@example.com", PasswordHash: "hash", CreatedAt: time.Now()}
	if err := NewUserRepository(database).CreateWithProfile(&user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createRepositoryTestExercise(t *testing.T, database *gorm.DB) models.Exercise {
	t.Helper()

	exercise := models.Exercise{Name: "Squat", MuscleGroup: models.MuscleLegs, Difficulty: models.LevelBeginner}
	if err := database.Create(&exercise).Error; err != nil {
		t.Fatalf("create exercise: %v", err)
	}
	return exercise
}

func weekOfDays(exerciseID uint) []models.WorkoutDay {
	days := make([]models.WorkoutDay, 0, 7)
	for dayNumber := 1; dayNumber <= 7; dayNumber++ {
		day := models.WorkoutDay{DayNumber: dayNumber, Focus: models.FocusRest}
		if dayNumber%2 == 1 {
			day.Focus = models.FocusFullBody
			day.Exercises = []models.WorkoutExercise{{ExerciseID: exerciseID, Sets: 3, Reps: "10-12", RestTime: 60, Order: 1}}
		}
		days = append(days, day)
	}
	return days
}

func TestCreateWithProfileStoresEmptyProfile(t *testing.T) {
	database := openRepositoryTestDB(t)
	user := createRepositoryTestUser(t, database, "alice")

	profile, err := NewProfileRepository(database).FindOrCreate(user.ID)
	if err != nil {
		t.Fatalf("FindOrCreate() error = %v", err)
	}
	if profile.ID == 0 || profile.HasCompletedProfile || profile.ActivityLevel != 1 {
		t.Fatalf("profile = %+v, want stored incomplete profile with activity level 1", profile)
	}

	exists, err := NewUserRepository(database).ExistsByUsername("  ALICE ")
	if err != nil || !exists {
		t.Fatalf("ExistsByUsername() = %v, %v; want true", exists, err)
	}
}

func TestReplaceWorkoutDaysKeepsOneRowPerDay(t *testing.T) {
	database := openRepositoryTestDB(t)
	user := createRepositoryTestUser(t, database, "alice")
	exercise := createRepositoryTestExercise(t, database)
	repo := NewExercisePlanRepository(database)

	plan := models.ExercisePlan{
		UserID: user.ID, Goal: models.GoalGeneralFitness, Level: models.LevelBeginner,
		DaysPerWeek: 4, StartDate: time.Now(),
	}
	if err := repo.Create(&plan); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for range 2 {
		if err := repo.ReplaceWorkoutDays(plan.ID, weekOfDays(exercise.ID)); err != nil {
			t.Fatalf("ReplaceWorkoutDays() error = %v", err)
		}
	}

	days, err := repo.ListWorkoutDays(plan.ID)
	if err != nil {
		t.Fatalf("ListWorkoutDays() error = %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("ListWorkoutDays() returned %d days, want 7", len(days))
	}
	var entries int64
	if err := database.Model(&models.WorkoutExercise{}).Count(&entries).Error; err != nil {
		t.Fatalf("count workout exercises: %v", err)
	}
	if entries != 4 {
		t.Fatalf("workout exercise rows = %d, want 4", entries)
	}
	if days[0].Exercises[0].Exercise == nil || days[0].Exercises[0].Exercise.Name != "Squat" {
		t.Fatalf("day 1 exercise = %+v, want preloaded Squat", days[0].Exercises[0])
	}

	day, ownerID, found, err := repo.FindWorkoutDay(days[2].ID)
	if err != nil || !found || ownerID != user.ID || day.DayNumber != 3 {
		t.Fatalf("FindWorkoutDay() = day %d owner %d found %v err %v", day.DayNumber, ownerID, found, err)
	}
}

func TestDeletingUserCascadesToPlans(t *testing.T) {
	database := openRepositoryTestDB(t)
	user := createRepositoryTestUser(t, database, "alice")
	exercise := createRepositoryTestExercise(t, database)
	repo := NewExercisePlanRepository(database)

	plan := models.ExercisePlan{UserID: user.ID, Goal: models.GoalEndurance, Level: models.LevelBeginner, DaysPerWeek: 3, StartDate: time.Now()}
	if err := repo.Create(&plan); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.ReplaceWorkoutDays(plan.ID, weekOfDays(exercise.ID)); err != nil {
		t.Fatalf("ReplaceWorkoutDays() error = %v", err)
	}

	if err := database.Delete(&models.User{}, user.ID).Error; err != nil {
		t.Fatalf("delete user: %v", err)
	}

	for _, model := range []any{&models.UserProfile{}, &models.ExercisePlan{}, &models.WorkoutDay{}, &models.WorkoutExercise{}} {
		var count int64
		if err := database.Model(model).Count(&count).Error; err != nil {
			t.Fatalf("count %T: %v", model, err)
		}
		if count != 0 {
			t.Fatalf("%T rows = %d after user delete, want 0", model, count)
		}
	}
}

func TestOrderRepositoryCartLifecycle(t *testing.T) {
	database := openRepositoryTestDB(t)
	user := createRepositoryTestUser(t, database, "alice")
	product := models.Product{Name: "Kettlebell", Price: 120000, Stock: 3, IsActive: true}
	if err := database.Create(&product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	repo := NewOrderRepository(database)

	if _, placed, err := repo.Checkout(user.ID); err != nil || placed {
		t.Fatalf("Checkout() on empty cart placed=%v err=%v, want not placed", placed, err)
	}

	if _, err := repo.AddToCart(user.ID, product); err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	cart, err := repo.AddToCart(user.ID, product)
	if err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	if len(cart.Items) != 1 || cart.Items[0].Quantity != 2 || cart.TotalAmount != 240000 {
		t.Fatalf("cart = %+v, want one line of two totalling 240000", cart)
	}

	count, err := repo.CountCartItems(user.ID)
	if err != nil || count != 2 {
		t.Fatalf("CountCartItems() = %d, %v; want 2", count, err)
	}

	cart, found, err := repo.SetCartItemQuantity(user.ID, cart.Items[0].ID, 1)
	if err != nil || !found || cart.TotalAmount != 120000 {
		t.Fatalf("SetCartItemQuantity() total=%d found=%v err=%v, want 120000", cart.TotalAmount, found, err)
	}

	other := createRepositoryTestUser(t, database, "bob")
	if _, found, err := repo.SetCartItemQuantity(other.ID, cart.Items[0].ID, 5); err != nil || found {
		t.Fatalf("SetCartItemQuantity() for another user found=%v err=%v, want not found", found, err)
	}

	order, placed, err := repo.Checkout(user.ID)
	if err != nil || !placed {
		t.Fatalf("Checkout() placed=%v err=%v", placed, err)
	}
	if order.Status != models.OrderPaid || order.OrderNumber != OrderNumber(order.ID) {
		t.Fatalf("order = %+v, want paid with order number", order)
	}

	if _, found, err := repo.FindCart(user.ID); err != nil || found {
		t.Fatalf("FindCart() after checkout found=%v err=%v, want no cart", found, err)
	}
	orders, err := repo.ListForUser(user.ID, 0)
	if err != nil || len(orders) != 1 {
		t.Fatalf("ListForUser() = %d orders, %v; want 1", len(orders), err)
	}
}

func TestOrderNumberFormat(t *testing.T) {
	if got := OrderNumber(42); got != "ORD-000042" {
		t.Fatalf("OrderNumber(42) = %q, want ORD-000042", got)
	}
}
