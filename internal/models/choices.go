package models

import (
	"errors"
	"strings"
)

var (
	ErrInvalidGoal          = errors.New("invalid goal")
	ErrInvalidMealGoal      = errors.New("invalid meal goal")
	ErrInvalidLevel         = errors.New("invalid level")
	ErrInvalidTrainingFocus = errors.New("invalid training focus")
	ErrInvalidPreferredTime = errors.New("invalid preferred time")
	ErrInvalidDayFocus      = errors.New("invalid day focus")
	ErrInvalidMuscleGroup   = errors.New("invalid muscle group")
	ErrInvalidMealType      = errors.New("invalid meal type")
	ErrInvalidDietType      = errors.New("invalid diet type")
)

type Goal string

const (
	GoalWeightLoss     Goal = "weight_loss"
	GoalFatLoss        Goal = "fat_loss"
	GoalMuscleGain     Goal = "muscle_gain"
	GoalEndurance      Goal = "endurance"
	GoalGeneralFitness Goal = "general_fitness"
)

func (goal Goal) Valid() bool {
	switch goal {
	case GoalWeightLoss, GoalFatLoss, GoalMuscleGain, GoalEndurance, GoalGeneralFitness:
		return true
	}
	return false
}

func ParseGoal(raw string) (Goal, error) {
	goal := Goal(normalizeChoice(raw))
	if !goal.Valid() {
		return "", ErrInvalidGoal
	}
	return goal, nil
}

type MealGoal string

const (
	MealGoalWeightLoss    MealGoal = "weight_loss"
	MealGoalMuscleGain    MealGoal = "muscle_gain"
	MealGoalMaintenance   MealGoal = "maintenance"
	MealGoalGeneralHealth MealGoal = "general_health"
)

func (goal MealGoal) Valid() bool {
	switch goal {
	case MealGoalWeightLoss, MealGoalMuscleGain, MealGoalMaintenance, MealGoalGeneralHealth:
		return true
	}
	return false
}

func ParseMealGoal(raw string) (MealGoal, error) {
	goal := MealGoal(normalizeChoice(raw))
	if !goal.Valid() {
		return "", ErrInvalidMealGoal
	}
	return goal, nil
}

type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

func (level Level) Valid() bool {
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

func ParseLevel(raw string) (Level, error) {
	level := Level(normalizeChoice(raw))
	if !level.Valid() {
		return "", ErrInvalidLevel
	}
	return level, nil
}

type TrainingFocus string

const (
	TrainingFullBody     TrainingFocus = "full_body"
	TrainingUpperLower   TrainingFocus = "upper_lower"
	TrainingPushPullLegs TrainingFocus = "push_pull_legs"
)

func (focus TrainingFocus) Valid() bool {
	switch focus {
	case TrainingFullBody, TrainingUpperLower, TrainingPushPullLegs:
		return true
	}
	return false
}

func ParseTrainingFocus(raw string) (TrainingFocus, error) {
	focus := TrainingFocus(normalizeChoice(raw))
	if !focus.Valid() {
		return "", ErrInvalidTrainingFocus
	}
	return focus, nil
}

type PreferredTime string

const (
	PreferredMorning   PreferredTime = "morning"
	PreferredAfternoon PreferredTime = "afternoon"
	PreferredEvening   PreferredTime = "evening"
)

func (value PreferredTime) Valid() bool {
	switch value {
	case PreferredMorning, PreferredAfternoon, PreferredEvening:
		return true
	}
	return false
}

// ParsePreferredTime defaults to evening when the field is left empty.
func ParsePreferredTime(raw string) (PreferredTime, error) {
	normalized := normalizeChoice(raw)
	if normalized == "" {
		return PreferredEvening, nil
	}
	value := PreferredTime(normalized)
	if !value.Valid() {
		return "", ErrInvalidPreferredTime
	}
	return value, nil
}

type DayFocus string

const (
	FocusRest        DayFocus = "rest"
	FocusCardio      DayFocus = "cardio"
	FocusStrength    DayFocus = "strength"
	FocusFlexibility DayFocus = "flexibility"
	FocusHIIT        DayFocus = "hiit"
	FocusUpperBody   DayFocus = "upper_body"
	FocusLowerBody   DayFocus = "lower_body"
	FocusFullBody    DayFocus = "full_body"
)

func (focus DayFocus) Valid() bool {
	switch focus {
	case FocusRest, FocusCardio, FocusStrength, FocusFlexibility, FocusHIIT, FocusUpperBody, FocusLowerBody, FocusFullBody:
		return true
	}
	return false
}

func ParseDayFocus(raw string) (DayFocus, error) {
	focus := DayFocus(normalizeChoice(raw))
	if !focus.Valid() {
		return "", ErrInvalidDayFocus
	}
	return focus, nil
}

type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleLegs      MuscleGroup = "legs"
	MuscleCore      MuscleGroup = "core"
	MuscleFullBody  MuscleGroup = "full_body"
)

func (group MuscleGroup) Valid() bool {
	switch group {
	case MuscleChest, MuscleBack, MuscleShoulders, MuscleArms, MuscleLegs, MuscleCore, MuscleFullBody:
		return true
	}
	return false
}

func ParseMuscleGroup(raw string) (MuscleGroup, error) {
	group := MuscleGroup(normalizeChoice(raw))
	if !group.Valid() {
		return "", ErrInvalidMuscleGroup
	}
	return group, nil
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

func (mealType MealType) Valid() bool {
	switch mealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

func ParseMealType(raw string) (MealType, error) {
	mealType := MealType(normalizeChoice(raw))
	if !mealType.Valid() {
		return "", ErrInvalidMealType
	}
	return mealType, nil
}

// MealTypes lists meal slots in serving order.
func MealTypes() []MealType {
	return []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}
}

type DietType string

const (
	DietAny         DietType = "any"
	DietVegetarian  DietType = "vegetarian"
	DietVegan       DietType = "vegan"
	DietLowCarb     DietType = "low_carb"
	DietHighProtein DietType = "high_protein"
)

func (diet DietType) Valid() bool {
	switch diet {
	case DietAny, DietVegetarian, DietVegan, DietLowCarb, DietHighProtein:
		return true
	}
	return false
}

// ParseDietType defaults to any when the field is left empty.
func ParseDietType(raw string) (DietType, error) {
	normalized := normalizeChoice(raw)
	if normalized == "" {
		return DietAny, nil
	}
	diet := DietType(normalized)
	if !diet.Valid() {
		return "", ErrInvalidDietType
	}
	return diet, nil
}

func normalizeChoice(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
