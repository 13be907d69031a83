package models

import (
	"errors"
	"time"
)

var ErrInvalidPlanDuration = errors.New("invalid plan duration")

type PlanDuration string

const (
	DurationMonthly   PlanDuration = "monthly"
	DurationQuarterly PlanDuration = "quarterly"
	DurationYearly    PlanDuration = "yearly"
)

// Days returns the subscription length granted by the duration.
func (duration PlanDuration) Days() int {
	switch duration {
	case DurationMonthly:
		return 30
	case DurationQuarterly:
		return 90
	case DurationYearly:
		return 365
	}
	return 0
}

func (duration PlanDuration) Valid() bool {
	return duration.Days() > 0
}

func ParsePlanDuration(raw string) (PlanDuration, error) {
	normalized := normalizeChoice(raw)
	if normalized == "" {
		return DurationMonthly, nil
	}
	duration := PlanDuration(normalized)
	if !duration.Valid() {
		return "", ErrInvalidPlanDuration
	}
	return duration, nil
}

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

type SubscriptionPlan struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Description string       `json:"description"`
	Duration    PlanDuration `gorm:"not null;default:monthly" json:"duration"`
	Price       int64        `gorm:"not null" json:"price"`
	IsActive    bool         `gorm:"not null" json:"is_active"`
}

type Subscription struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	UserID    uint               `gorm:"not null;index" json:"user_id"`
	PlanID    uint               `gorm:"not null" json:"plan_id"`
	Plan      *SubscriptionPlan  `json:"plan,omitempty"`
	StartDate time.Time          `gorm:"not null" json:"start_date"`
	EndDate   time.Time          `gorm:"not null" json:"end_date"`
	Status    SubscriptionStatus `gorm:"not null;default:active" json:"status"`
}

// ActiveAt reports whether the subscription covers the given instant.
func (subscription Subscription) ActiveAt(now time.Time) bool {
	return subscription.Status == SubscriptionActive && !now.After(subscription.EndDate)
}

// DaysRemaining counts whole calendar days until the end date, never negative.
func (subscription Subscription) DaysRemaining(now time.Time) int {
	if !subscription.ActiveAt(now) {
		return 0
	}
	location := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, location)
	end := subscription.EndDate.In(location)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, location)
	days := int(endDay.Sub(today).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}
