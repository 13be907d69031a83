package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

var (
	ErrSubscriptionPlanNotFound = errors.New("subscription plan not found")
	ErrSubscriptionPlanInactive = errors.New("subscription plan is not offered")
	ErrSubscriptionRequired     = errors.New("active subscription required")
)

type SubscriptionRepository interface {
	ListActivePlans() ([]models.SubscriptionPlan, error)
	FindPlan(planID uint) (models.SubscriptionPlan, bool, error)
	ExpireEnded(userID uint, now time.Time) error
	FindActive(userID uint, planID uint, now time.Time) (models.Subscription, bool, error)
	Create(subscription *models.Subscription) error
	ListForUser(userID uint) ([]models.Subscription, error)
}

type SubscriptionService struct {
	subscriptions SubscriptionRepository
}

func NewSubscriptionService(subscriptions SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions}
}

func (service *SubscriptionService) ListPlans() ([]models.SubscriptionPlan, error) {
	return service.subscriptions.ListActivePlans()
}

func (service *SubscriptionService) Plan(planID uint) (models.SubscriptionPlan, error) {
	plan, found, err := service.subscriptions.FindPlan(planID)
	if err != nil {
		return models.SubscriptionPlan{}, err
	}
	if !found {
		return models.SubscriptionPlan{}, ErrSubscriptionPlanNotFound
	}
	return plan, nil
}

// Subscribe starts a subscription to the plan. An active subscription to the
// same plan is returned unchanged with created=false.
func (service *SubscriptionService) Subscribe(userID uint, planID uint, now time.Time) (models.Subscription, bool, error) {
	plan, err := service.Plan(planID)
	if err != nil {
		return models.Subscription{}, false, err
	}
	if !plan.IsActive {
		return models.Subscription{}, false, ErrSubscriptionPlanInactive
	}

	if err := service.subscriptions.ExpireEnded(userID, now); err != nil {
		return models.Subscription{}, false, fmt.Errorf("expire subscriptions: %w", err)
	}
	existing, found, err := service.subscriptions.FindActive(userID, plan.ID, now)
	if err != nil {
		return models.Subscription{}, false, err
	}
	if found {
		return existing, false, nil
	}

	subscription := models.Subscription{
		UserID:    userID,
		PlanID:    plan.ID,
		StartDate: now,
		EndDate:   now.AddDate(0, 0, plan.Duration.Days()),
		Status:    models.SubscriptionActive,
	}
	if err := service.subscriptions.Create(&subscription); err != nil {
		return models.Subscription{}, false, fmt.Errorf("create subscription: %w", err)
	}
	subscription.Plan = &plan
	return subscription, true, nil
}

// Active returns the user's current subscription after expiring ended ones.
func (service *SubscriptionService) Active(userID uint, now time.Time) (models.Subscription, bool, error) {
	if err := service.subscriptions.ExpireEnded(userID, now); err != nil {
		return models.Subscription{}, false, fmt.Errorf("expire subscriptions: %w", err)
	}
	return service.subscriptions.FindActive(userID, 0, now)
}

func (service *SubscriptionService) RequireActive(userID uint, now time.Time) error {
	_, found, err := service.Active(userID, now)
	if err != nil {
		return err
	}
	if !found {
		return ErrSubscriptionRequired
	}
	return nil
}

func (service *SubscriptionService) ListForUser(userID uint, now time.Time) ([]models.Subscription, error) {
	if err := service.subscriptions.ExpireEnded(userID, now); err != nil {
		return nil, fmt.Errorf("expire subscriptions: %w", err)
	}
	return service.subscriptions.ListForUser(userID)
}
