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
	ErrInvalidBirthDate     = errors.New("invalid birth date")
	ErrInvalidGender        = errors.New("invalid gender")
	ErrInvalidHeight        = errors.New("height must be between 50 and 280 cm")
	ErrInvalidWeight        = errors.New("weight must be between 20 and 400 kg")
	ErrInvalidActivityLevel = errors.New("activity level must be between 1 and 5")
	ErrProfileSaveFailed    = errors.New("save profile failed")
	ErrProfileIncomplete    = errors.New("profile is not completed")
)

var activityMultipliers = map[int]float64{
	1: 1.2,
	2: 1.375,
	3: 1.55,
	4: 1.725,
	5: 1.9,
}

type ProfileInput struct {
	BirthDate         string  `json:"birth_date"`
	Gender            string  `json:"gender"`
	HeightCM          float64 `json:"height_cm"`
	WeightKG          float64 `json:"weight_kg"`
	ActivityLevel     int     `json:"activity_level"`
	MedicalConditions string  `json:"medical_conditions"`
}

type ProfileRepository interface {
	FindOrCreate(userID uint) (models.UserProfile, error)
	Save(profile *models.UserProfile) error
}

type ProfileService struct {
	profiles ProfileRepository
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

func (service *ProfileService) Load(userID uint) (models.UserProfile, error) {
	return service.profiles.FindOrCreate(userID)
}

// Complete validates the form, stores it and marks the profile completed.
func (service *ProfileService) Complete(userID uint, input ProfileInput, now time.Time) (models.UserProfile, error) {
	profile, err := service.profiles.FindOrCreate(userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrProfileSaveFailed, err)
	}

	birthDate, err := parseBirthDate(input.BirthDate, now)
	if err != nil {
		return models.UserProfile{}, err
	}
	gender := strings.ToLower(strings.TrimSpace(input.Gender))
	switch gender {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
	default:
		return models.UserProfile{}, ErrInvalidGender
	}
	if input.HeightCM < 50 || input.HeightCM > 280 {
		return models.UserProfile{}, ErrInvalidHeight
	}
	if input.WeightKG < 20 || input.WeightKG > 400 {
		return models.UserProfile{}, ErrInvalidWeight
	}
	if _, ok := activityMultipliers[input.ActivityLevel]; !ok {
		return models.UserProfile{}, ErrInvalidActivityLevel
	}

	profile.BirthDate = birthDate
	profile.Gender = gender
	profile.HeightCM = input.HeightCM
	profile.WeightKG = input.WeightKG
	profile.ActivityLevel = input.ActivityLevel
	profile.MedicalConditions = strings.TrimSpace(input.MedicalConditions)
	profile.HasCompletedProfile = true

	if err := service.profiles.Save(&profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %v", ErrProfileSaveFailed, err)
	}
	return profile, nil
}

func parseBirthDate(raw string, now time.Time) (*time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(time.DateOnly, trimmed, time.UTC)
	if err != nil || !parsed.Before(now) {
		return nil, ErrInvalidBirthDate
	}
	return &parsed, nil
}

type ProfileMetrics struct {
	BMI  *float64 `json:"bmi,omitempty"`
	BMR  *float64 `json:"bmr,omitempty"`
	TDEE *int     `json:"tdee,omitempty"`
}

func CalculateProfileMetrics(profile models.UserProfile, now time.Time) ProfileMetrics {
	metrics := ProfileMetrics{}
	if bmi, ok := BodyMassIndex(profile); ok {
		metrics.BMI = &bmi
	}
	if bmr, ok := BasalMetabolicRate(profile, now); ok {
		rounded := roundTenth(bmr)
		metrics.BMR = &rounded
		tdee := TotalDailyEnergy(bmr, profile.ActivityLevel)
		metrics.TDEE = &tdee
	}
	return metrics
}

// BodyMassIndex is rounded to one decimal.
func BodyMassIndex(profile models.UserProfile) (float64, bool) {
	if profile.HeightCM <= 0 || profile.WeightKG <= 0 {
		return 0, false
	}
	heightM := profile.HeightCM / 100
	return roundTenth(profile.WeightKG / (heightM * heightM)), true
}

// BasalMetabolicRate uses the revised Harris-Benedict equations. Any gender
// other than male uses the female coefficients.
func BasalMetabolicRate(profile models.UserProfile, now time.Time) (float64, bool) {
	if profile.HeightCM <= 0 || profile.WeightKG <= 0 || profile.BirthDate == nil || profile.Gender == "" {
		return 0, false
	}
	age := float64(int(now.Sub(*profile.BirthDate).Hours()/24) / 365)
	if profile.Gender == models.GenderMale {
		return 88.362 + 13.397*profile.WeightKG + 4.799*profile.HeightCM - 5.677*age, true
	}
	return 447.593 + 9.247*profile.WeightKG + 3.098*profile.HeightCM - 4.330*age, true
}

func TotalDailyEnergy(bmr float64, activityLevel int) int {
	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		multiplier = activityMultipliers[1]
	}
	return int(math.Round(bmr * multiplier))
}

// SuggestedCalories adjusts TDEE for the meal goal of a new plan.
func SuggestedCalories(tdee int, goal models.MealGoal) int {
	switch goal {
	case models.MealGoalWeightLoss:
		return max(1200, int(float64(tdee)*0.8))
	case models.MealGoalMuscleGain:
		return int(float64(tdee) * 1.1)
	default:
		return tdee
	}
}
