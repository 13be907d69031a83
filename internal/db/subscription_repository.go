package db

import (
	"errors"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	database *gorm.DB
}

func NewSubscriptionRepository(database *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{database: database}
}

func (repo *SubscriptionRepository) ListActivePlans() ([]models.SubscriptionPlan, error) {
	plans := make([]models.SubscriptionPlan, 0)
	if err := repo.database.Where("is_active = ?", true).Order("price ASC, id ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

func (repo *SubscriptionRepository) FindPlan(planID uint) (models.SubscriptionPlan, bool, error) {
	var plan models.SubscriptionPlan
	result := repo.database.First(&plan, planID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.SubscriptionPlan{}, false, nil
	}
	if result.Error != nil {
		return models.SubscriptionPlan{}, false, result.Error
	}
	return plan, true, nil
}

// ExpireEnded flips active subscriptions whose end date has passed.
func (repo *SubscriptionRepository) ExpireEnded(userID uint, now time.Time) error {
	return repo.database.Model(&models.Subscription{}).
		Where("user_id = ? AND status = ? AND end_date < ?", userID, models.SubscriptionActive, now).
		Update("status", models.SubscriptionExpired).Error
}

func (repo *SubscriptionRepository) FindActive(userID uint, planID uint, now time.Time) (models.Subscription, bool, error) {
	query := repo.database.Preload("Plan").
		Where("user_id = ? AND status = ? AND end_date >= ?", userID, models.SubscriptionActive, now)
	if planID != 0 {
		query = query.Where("plan_id = ?", planID)
	}

	var subscription models.Subscription
	result := query.Order("end_date DESC, id DESC").First(&subscription)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Subscription{}, false, nil
	}
	if result.Error != nil {
		return models.Subscription{}, false, result.Error
	}
	return subscription, true, nil
}

func (repo *SubscriptionRepository) Create(subscription *models.Subscription) error {
	return repo.database.Omit("Plan").Create(subscription).Error
}

func (repo *SubscriptionRepository) ListForUser(userID uint) ([]models.Subscription, error) {
	subscriptions := make([]models.Subscription, 0)
	if err := repo.database.Preload("Plan").
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}
