package services

import (
	"errors"
	"testing"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

type stubProfileRepo struct {
	profile models.UserProfile
	saved   int
}

func (stub *stubProfileRepo) FindOrCreate(userID uint) (models.UserProfile, error) {
	stub.profile.UserID = userID
	return stub.profile, nil
}

func (stub *stubProfileRepo) Save(profile *models.UserProfile) error {
	stub.profile = *profile
	stub.saved++
	return nil
}

func TestProfileServiceCompleteMarksProfile(t *testing.T) {
	repo := &stubProfileRepo{}
	service := NewProfileService(repo)
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	profile, err := service.Complete(5, ProfileInput{
		BirthDate:     "1996-05-20",
		Gender:        "Male",
		HeightCM:      180,
		WeightKG:      81,
		ActivityLevel: 3,
	}, now)
	if err != nil {
		t.Fatalf("Complete() unexpected error: %v", err)
	}
	if !profile.HasCompletedProfile || repo.saved != 1 {
		t.Fatalf("profile completed = %v saved = %d", profile.HasCompletedProfile, repo.saved)
	}
	if profile.Gender != models.GenderMale {
		t.Fatalf("Gender = %q, want male", profile.Gender)
	}
}

func TestProfileServiceCompleteRejectsInvalidInput(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	valid := ProfileInput{Gender: "female", HeightCM: 165, WeightKG: 60, ActivityLevel: 2}

	testCases := []struct {
		name   string
		mutate func(*ProfileInput)
		want   error
	}{
		{name: "gender", mutate: func(input *ProfileInput) { input.Gender = "" }, want: ErrInvalidGender},
		{name: "height", mutate: func(input *ProfileInput) { input.HeightCM = 20 }, want: ErrInvalidHeight},
		{name: "weight", mutate: func(input *ProfileInput) { input.WeightKG = 0 }, want: ErrInvalidWeight},
		{name: "activity", mutate: func(input *ProfileInput) { input.ActivityLevel = 6 }, want: ErrInvalidActivityLevel},
		{name: "future birth date", mutate: func(input *ProfileInput) { input.BirthDate = "2030-01-01" }, want: ErrInvalidBirthDate},
		{name: "bad birth date", mutate: func(input *ProfileInput) { input.BirthDate = "01/02/1990" }, want: ErrInvalidBirthDate},
	}
	for _, testCase := range testCases {
		service := NewProfileService(&stubProfileRepo{})
		input := valid
		testCase.mutate(&input)
		if _, err := service.Complete(1, input, now); !errors.Is(err, testCase.want) {
			t.Fatalf("%s: error = %v, want %v", testCase.name, err, testCase.want)
		}
	}
}

func TestCalculateProfileMetrics(t *testing.T) {
	birth := time.Date(1996, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	profile := models.UserProfile{BirthDate: &birth, Gender: models.GenderMale, HeightCM: 180, WeightKG: 81, ActivityLevel: 3}

	metrics := CalculateProfileMetrics(profile, now)
	if metrics.BMI == nil || *metrics.BMI != 25 {
		t.Fatalf("BMI = %v, want 25", metrics.BMI)
	}
	// 88.362 + 13.397*81 + 4.799*180 - 5.677*30 = 1867.029
	if metrics.BMR == nil || *metrics.BMR != 1867 {
		t.Fatalf("BMR = %v, want 1867", metrics.BMR)
	}
	if metrics.TDEE == nil || *metrics.TDEE != 2894 {
		t.Fatalf("TDEE = %v, want 2894", metrics.TDEE)
	}
}

func TestCalculateProfileMetricsWithoutData(t *testing.T) {
	metrics := CalculateProfileMetrics(models.UserProfile{}, time.Now())
	if metrics.BMI != nil || metrics.BMR != nil || metrics.TDEE != nil {
		t.Fatalf("CalculateProfileMetrics(empty) = %+v, want all nil", metrics)
	}
}

func TestSuggestedCalories(t *testing.T) {
	testCases := []struct {
		tdee int
		goal models.MealGoal
		want int
	}{
		{tdee: 2500, goal: models.MealGoalWeightLoss, want: 2000},
		{tdee: 1400, goal: models.MealGoalWeightLoss, want: 1200},
		{tdee: 2500, goal: models.MealGoalMuscleGain, want: 2750},
		{tdee: 2500, goal: models.MealGoalMaintenance, want: 2500},
	}
	for _, testCase := range testCases {
		if got := SuggestedCalories(testCase.tdee, testCase.goal); got != testCase.want {
			t.Fatalf("SuggestedCalories(%d, %s) = %d, want %d", testCase.tdee, testCase.goal, got, testCase.want)
		}
	}
}
