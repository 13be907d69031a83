package services

import (
	"context"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"golang.org/x/sync/errgroup"
)

type DashboardWorkouts interface {
	Latest(userID uint) (models.ExercisePlan, bool, error)
	Today(userID uint, now time.Time) (*models.WorkoutDay, error)
}

type DashboardMeals interface {
	Today(userID uint, now time.Time) (*models.DailyMeal, error)
}

type DashboardSubscriptions interface {
	Active(userID uint, now time.Time) (models.Subscription, bool, error)
}

type DashboardOrders interface {
	RecentOrders(userID uint) ([]models.Order, error)
}

type DashboardProfiles interface {
	Load(userID uint) (models.UserProfile, error)
}

type DashboardArticles interface {
	Recommended(goal models.Goal) ([]models.Article, error)
}

type DashboardProgress interface {
	List(userID uint) ([]models.ProgressEntry, error)
}

type ActiveSubscriptionView struct {
	Subscription  models.Subscription `json:"subscription"`
	DaysRemaining int                 `json:"days_remaining"`
}

type TodayMealsView struct {
	Day    models.DailyMeal                      `json:"day"`
	Meals  map[models.MealType][]models.MealItem `json:"meals"`
	Totals MealTotals                            `json:"totals"`
}

type Dashboard struct {
	TodayWorkout        *models.WorkoutDay      `json:"today_workout"`
	TodayMeals          *TodayMealsView         `json:"today_meals"`
	Subscription        *ActiveSubscriptionView `json:"subscription"`
	RecentOrders        []models.Order          `json:"recent_orders"`
	BMI                 *float64                `json:"bmi"`
	RecommendedArticles []models.Article        `json:"recommended_articles"`
	LastActivity        *models.ProgressEntry   `json:"last_activity"`
}

type DashboardService struct {
	workouts      DashboardWorkouts
	meals         DashboardMeals
	subscriptions DashboardSubscriptions
	orders        DashboardOrders
	profiles      DashboardProfiles
	articles      DashboardArticles
	progress      DashboardProgress
}

func NewDashboardService(
	workouts DashboardWorkouts,
	meals DashboardMeals,
	subscriptions DashboardSubscriptions,
	orders DashboardOrders,
	profiles DashboardProfiles,
	articles DashboardArticles,
	progress DashboardProgress,
) *DashboardService {
	return &DashboardService{
		workouts:      workouts,
		meals:         meals,
		subscriptions: subscriptions,
		orders:        orders,
		profiles:      profiles,
		articles:      articles,
		progress:      progress,
	}
}

// Build collects the dashboard sections concurrently. The first failing read
// cancels the rest.
func (service *DashboardService) Build(ctx context.Context, userID uint, now time.Time) (Dashboard, error) {
	var dashboard Dashboard
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		day, err := service.workouts.Today(userID, now)
		dashboard.TodayWorkout = day
		return err
	})
	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		day, err := service.meals.Today(userID, now)
		if err != nil || day == nil {
			return err
		}
		grouped, totals := SummarizeDailyMeal(*day)
		dashboard.TodayMeals = &TodayMealsView{Day: *day, Meals: grouped, Totals: totals}
		return nil
	})
	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		subscription, found, err := service.subscriptions.Active(userID, now)
		if err != nil || !found {
			return err
		}
		dashboard.Subscription = &ActiveSubscriptionView{
			Subscription:  subscription,
			DaysRemaining: subscription.DaysRemaining(now),
		}
		return nil
	})
	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		orders, err := service.orders.RecentOrders(userID)
		dashboard.RecentOrders = orders
		return err
	})
	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		profile, err := service.profiles.Load(userID)
		if err != nil {
			return err
		}
		if bmi, ok := BodyMassIndex(profile); ok {
			dashboard.BMI = &bmi
		}
		return nil
	})
	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		plan, _, err := service.workouts.Latest(userID)
		if err != nil {
			return err
		}
		articles, err := service.articles.Recommended(plan.Goal)
		dashboard.RecommendedArticles = articles
		return err
	})
	group.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}
		entries, err := service.progress.List(userID)
		if err != nil || len(entries) == 0 {
			return err
		}
		dashboard.LastActivity = &entries[0]
		return nil
	})

	if err := group.Wait(); err != nil {
		return Dashboard{}, err
	}
	if dashboard.RecentOrders == nil {
		dashboard.RecentOrders = make([]models.Order, 0)
	}
	if dashboard.RecommendedArticles == nil {
		dashboard.RecommendedArticles = make([]models.Article, 0)
	}
	return dashboard, nil
}
