package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

type fakeDashboardWorkouts struct {
	plan  models.ExercisePlan
	found bool
	today *models.WorkoutDay
	err   error
}

func (fake fakeDashboardWorkouts) Latest(uint) (models.ExercisePlan, bool, error) {
	return fake.plan, fake.found, nil
}

func (fake fakeDashboardWorkouts) Today(uint, time.Time) (*models.WorkoutDay, error) {
	return fake.today, fake.err
}

type fakeDashboardMeals struct {
	today *models.DailyMeal
}

func (fake fakeDashboardMeals) Today(uint, time.Time) (*models.DailyMeal, error) {
	return fake.today, nil
}

type fakeDashboardSubscriptions struct {
	subscription models.Subscription
	found        bool
}

func (fake fakeDashboardSubscriptions) Active(uint, time.Time) (models.Subscription, bool, error) {
	return fake.subscription, fake.found, nil
}

type fakeDashboardOrders struct {
	orders []models.Order
}

func (fake fakeDashboardOrders) RecentOrders(uint) ([]models.Order, error) {
	return fake.orders, nil
}

type fakeDashboardProfiles struct {
	profile models.UserProfile
}

func (fake fakeDashboardProfiles) Load(uint) (models.UserProfile, error) {
	return fake.profile, nil
}

type fakeDashboardProgress struct {
	entries []models.ProgressEntry
}

func (fake fakeDashboardProgress) List(uint) ([]models.ProgressEntry, error) {
	return fake.entries, nil
}

func TestDashboardServiceBuild(t *testing.T) {
	now := time.Date(2026, time.May, 6, 10, 0, 0, 0, time.UTC)
	content := NewContentService(&stubContentRepo{articles: []models.Article{
		{ID: 1, Category: "cardio"},
		{ID: 2, Category: "general"},
	}})
	service := NewDashboardService(
		fakeDashboardWorkouts{
			plan:  models.ExercisePlan{Goal: models.GoalEndurance},
			found: true,
			today: &models.WorkoutDay{DayNumber: 3, Focus: models.FocusCardio},
		},
		fakeDashboardMeals{today: &models.DailyMeal{DayNumber: 3, MealItems: []models.MealItem{
			{MealTime: models.MealBreakfast, Recipe: &models.Recipe{CaloriesPerServing: 350, Protein: 20}},
		}}},
		fakeDashboardSubscriptions{found: true, subscription: models.Subscription{
			Status:  models.SubscriptionActive,
			EndDate: now.AddDate(0, 0, 12),
		}},
		fakeDashboardOrders{},
		fakeDashboardProfiles{profile: models.UserProfile{HeightCM: 180, WeightKG: 81}},
		content,
		fakeDashboardProgress{entries: []models.ProgressEntry{{ID: 9, ExerciseMinutes: 30}, {ID: 8}}},
	)

	dashboard, err := service.Build(context.Background(), 1, now)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if dashboard.TodayWorkout == nil || dashboard.TodayWorkout.Focus != models.FocusCardio {
		t.Fatalf("TodayWorkout = %+v, want cardio day", dashboard.TodayWorkout)
	}
	if dashboard.TodayMeals == nil || dashboard.TodayMeals.Totals.Calories != 350 {
		t.Fatalf("TodayMeals = %+v, want 350 kcal", dashboard.TodayMeals)
	}
	if dashboard.Subscription == nil || dashboard.Subscription.DaysRemaining != 12 {
		t.Fatalf("Subscription = %+v, want 12 days remaining", dashboard.Subscription)
	}
	if dashboard.BMI == nil || *dashboard.BMI != 25 {
		t.Fatalf("BMI = %v, want 25", dashboard.BMI)
	}
	if len(dashboard.RecommendedArticles) != 1 || dashboard.RecommendedArticles[0].ID != 1 {
		t.Fatalf("RecommendedArticles = %+v, want the cardio article", dashboard.RecommendedArticles)
	}
	if dashboard.LastActivity == nil || dashboard.LastActivity.ID != 9 {
		t.Fatalf("LastActivity = %+v, want newest entry", dashboard.LastActivity)
	}
	if dashboard.RecentOrders == nil {
		t.Fatalf("RecentOrders must be an empty list, not nil")
	}
}

func TestDashboardServiceBuildEmptyUser(t *testing.T) {
	service := NewDashboardService(
		fakeDashboardWorkouts{},
		fakeDashboardMeals{},
		fakeDashboardSubscriptions{},
		fakeDashboardOrders{},
		fakeDashboardProfiles{},
		NewContentService(&stubContentRepo{}),
		fakeDashboardProgress{},
	)

	dashboard, err := service.Build(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if dashboard.TodayWorkout != nil || dashboard.TodayMeals != nil || dashboard.Subscription != nil || dashboard.BMI != nil || dashboard.LastActivity != nil {
		t.Fatalf("Build() = %+v, want empty sections", dashboard)
	}
}

func TestDashboardServiceBuildPropagatesErrors(t *testing.T) {
	failure := errors.New("database locked")
	service := NewDashboardService(
		fakeDashboardWorkouts{err: failure},
		fakeDashboardMeals{},
		fakeDashboardSubscriptions{},
		fakeDashboardOrders{},
		fakeDashboardProfiles{},
		NewContentService(&stubContentRepo{}),
		fakeDashboardProgress{},
	)

	if _, err := service.Build(context.Background(), 1, time.Now()); !errors.Is(err, failure) {
		t.Fatalf("Build() error = %v, want %v", err, failure)
	}
}
