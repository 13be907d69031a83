package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/daithanwa/dsi202-2025/internal/models"
)

var (
	ErrPlanNotFound          = errors.New("plan not found")
	ErrPlanDayNotFound       = errors.New("plan day not found")
	ErrPlanDayForbidden      = errors.New("plan day belongs to another user")
	ErrInvalidDaysPerWeek    = errors.New("days per week must be between 1 and 7")
	ErrWorkoutPlanSaveFailed = errors.New("save workout plan failed")
)

const pushPullLegsMaxDays = 6

// Prescription is the per-exercise load for a plan level.
type Prescription struct {
	ExercisesPerDay int
	Sets            int
	Reps            string
	RestSeconds     int
}

func PrescriptionForLevel(level models.Level) Prescription {
	switch level {
	case models.LevelIntermediate:
		return Prescription{ExercisesPerDay: 7, Sets: 4, Reps: "10-12", RestSeconds: 45}
	case models.LevelAdvanced:
		return Prescription{ExercisesPerDay: 9, Sets: 5, Reps: "8-12", RestSeconds: 30}
	default:
		return Prescription{ExercisesPerDay: 5, Sets: 3, Reps: "8-10", RestSeconds: 60}
	}
}

type ExercisePlanInput struct {
	Goal               string `json:"goal"`
	Level              string `json:"level"`
	DaysPerWeek        int    `json:"days_per_week"`
	PreferredTime      string `json:"preferred_time"`
	TrainingFocus      string `json:"training_focus"`
	AvailableEquipment bool   `json:"available_equipment"`
}

type ExercisePlanSettings struct {
	Goal               models.Goal
	Level              models.Level
	DaysPerWeek        int
	PreferredTime      models.PreferredTime
	TrainingFocus      models.TrainingFocus
	AvailableEquipment bool
}

func ParseExercisePlanInput(input ExercisePlanInput) (ExercisePlanSettings, error) {
	goal, err := models.ParseGoal(input.Goal)
	if err != nil {
		return ExercisePlanSettings{}, err
	}
	level, err := models.ParseLevel(input.Level)
	if err != nil {
		return ExercisePlanSettings{}, err
	}
	preferredTime, err := models.ParsePreferredTime(input.PreferredTime)
	if err != nil {
		return ExercisePlanSettings{}, err
	}
	focus, err := models.ParseTrainingFocus(input.TrainingFocus)
	if err != nil {
		return ExercisePlanSettings{}, err
	}
	if input.DaysPerWeek < 1 || input.DaysPerWeek > 7 {
		return ExercisePlanSettings{}, ErrInvalidDaysPerWeek
	}

	return ExercisePlanSettings{
		Goal:               goal,
		Level:              level,
		DaysPerWeek:        input.DaysPerWeek,
		PreferredTime:      preferredTime,
		TrainingFocus:      focus,
		AvailableEquipment: input.AvailableEquipment,
	}, nil
}

type ExercisePlanRepository interface {
	Create(plan *models.ExercisePlan) error
	Save(plan *models.ExercisePlan) error
	LatestForUser(userID uint) (models.ExercisePlan, bool, error)
	ReplaceWorkoutDays(planID uint, days []models.WorkoutDay) error
	ListWorkoutDays(planID uint) ([]models.WorkoutDay, error)
	FindWorkoutDayByNumber(planID uint, dayNumber int) (models.WorkoutDay, bool, error)
	FindWorkoutDay(dayID uint) (models.WorkoutDay, uint, bool, error)
}

type ExerciseCatalog interface {
	ListExercisesForPlan(difficulties []models.Level, equipmentRequired bool) ([]models.Exercise, error)
}

type WorkoutPlanService struct {
	plans   ExercisePlanRepository
	catalog ExerciseCatalog
	random  RandomSource
}

func NewWorkoutPlanService(plans ExercisePlanRepository, catalog ExerciseCatalog, random RandomSource) *WorkoutPlanService {
	if random == nil {
		random = DefaultRandom
	}
	return &WorkoutPlanService{plans: plans, catalog: catalog, random: random}
}

// SavePlan applies the settings to the user's latest plan, creating one
// starting today when none exists, and regenerates its week.
func (service *WorkoutPlanService) SavePlan(userID uint, settings ExercisePlanSettings, now time.Time) (models.ExercisePlan, error) {
	plan, found, err := service.plans.LatestForUser(userID)
	if err != nil {
		return models.ExercisePlan{}, fmt.Errorf("%w: %v", ErrWorkoutPlanSaveFailed, err)
	}

	plan.UserID = userID
	plan.Goal = settings.Goal
	plan.Level = settings.Level
	plan.DaysPerWeek = settings.DaysPerWeek
	plan.PreferredTime = settings.PreferredTime
	plan.TrainingFocus = settings.TrainingFocus
	plan.AvailableEquipment = settings.AvailableEquipment

	if found {
		err = service.plans.Save(&plan)
	} else {
		plan.StartDate = DateAtLocation(now, now.Location())
		err = service.plans.Create(&plan)
	}
	if err != nil {
		return models.ExercisePlan{}, fmt.Errorf("%w: %v", ErrWorkoutPlanSaveFailed, err)
	}

	if err := service.Generate(plan); err != nil {
		return models.ExercisePlan{}, err
	}
	return plan, nil
}

// Generate rebuilds all seven weekday records of the plan.
func (service *WorkoutPlanService) Generate(plan models.ExercisePlan) error {
	pool, err := service.catalog.ListExercisesForPlan(EligibleDifficulties(plan.Level), plan.AvailableEquipment)
	if err != nil {
		return fmt.Errorf("load exercise pool: %w", err)
	}

	days := BuildWorkoutDays(plan, pool, service.random)
	if err := service.plans.ReplaceWorkoutDays(plan.ID, days); err != nil {
		return fmt.Errorf("replace workout days: %w", err)
	}
	return nil
}

func (service *WorkoutPlanService) Current(userID uint) (models.ExercisePlan, []models.WorkoutDay, error) {
	plan, found, err := service.plans.LatestForUser(userID)
	if err != nil {
		return models.ExercisePlan{}, nil, err
	}
	if !found {
		return models.ExercisePlan{}, nil, ErrPlanNotFound
	}

	days, err := service.plans.ListWorkoutDays(plan.ID)
	if err != nil {
		return models.ExercisePlan{}, nil, err
	}
	return plan, days, nil
}

func (service *WorkoutPlanService) DayForUser(userID uint, dayID uint) (models.WorkoutDay, error) {
	day, ownerID, found, err := service.plans.FindWorkoutDay(dayID)
	if err != nil {
		return models.WorkoutDay{}, err
	}
	if !found {
		return models.WorkoutDay{}, ErrPlanDayNotFound
	}
	if ownerID != userID {
		return models.WorkoutDay{}, ErrPlanDayForbidden
	}
	return day, nil
}

// Today returns the weekday record matching today for the user's latest plan.
func (service *WorkoutPlanService) Today(userID uint, now time.Time) (*models.WorkoutDay, error) {
	plan, found, err := service.plans.LatestForUser(userID)
	if err != nil || !found {
		return nil, err
	}
	day, found, err := service.plans.FindWorkoutDayByNumber(plan.ID, ISOWeekday(now))
	if err != nil || !found {
		return nil, err
	}
	return &day, nil
}

// BuildWorkoutDays lays out the week for the plan from the eligible pool.
// Every weekday 1..7 gets exactly one record; rest days carry no exercises.
func BuildWorkoutDays(plan models.ExercisePlan, pool []models.Exercise, random RandomSource) []models.WorkoutDay {
	prescription := PrescriptionForLevel(plan.Level)

	daysPerWeek := plan.DaysPerWeek
	if plan.TrainingFocus == models.TrainingPushPullLegs {
		daysPerWeek = min(daysPerWeek, pushPullLegsMaxDays)
	}
	training := make(map[int]bool, 7)
	for _, day := range DistributeTrainingDays(daysPerWeek) {
		training[day] = true
	}

	days := make([]models.WorkoutDay, 0, 7)
	session := 0
	for dayNumber := 1; dayNumber <= 7; dayNumber++ {
		if !training[dayNumber] {
			days = append(days, models.WorkoutDay{DayNumber: dayNumber, Focus: models.FocusRest, Exercises: []models.WorkoutExercise{}})
			continue
		}

		var focus models.DayFocus
		var selected []models.Exercise
		switch plan.TrainingFocus {
		case models.TrainingUpperLower:
			if session%2 == 0 {
				focus = models.FocusUpperBody
				selected = SelectTargeted(pool, upperBodyGroups, prescription.ExercisesPerDay, random)
			} else {
				focus = models.FocusLowerBody
				selected = SelectTargeted(pool, lowerBodyGroups, prescription.ExercisesPerDay, random)
			}
		case models.TrainingPushPullLegs:
			target := pushPullLegsCycle[session%len(pushPullLegsCycle)]
			focus = models.FocusUpperBody
			if target == models.MuscleLegs {
				focus = models.FocusLowerBody
			}
			selected = SelectTargeted(pool, []models.MuscleGroup{target}, prescription.ExercisesPerDay, random)
		default:
			focus = models.FocusFullBody
			selected = SelectWholeBody(pool, prescription.ExercisesPerDay, random)
		}
		session++

		days = append(days, models.WorkoutDay{
			DayNumber: dayNumber,
			Focus:     focus,
			Exercises: prescribe(selected, prescription),
		})
	}
	return days
}

var pushPullLegsCycle = []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleLegs}

func prescribe(selected []models.Exercise, prescription Prescription) []models.WorkoutExercise {
	entries := make([]models.WorkoutExercise, 0, len(selected))
	for index, exercise := range selected {
		entries = append(entries, models.WorkoutExercise{
			ExerciseID: exercise.ID,
			Sets:       prescription.Sets,
			Reps:       prescription.Reps,
			RestTime:   prescription.RestSeconds,
			Order:      index + 1,
		})
	}
	return entries
}

// Latest returns the user's newest exercise plan without its days.
func (service *WorkoutPlanService) Latest(userID uint) (models.ExercisePlan, bool, error) {
	return service.plans.LatestForUser(userID)
}
