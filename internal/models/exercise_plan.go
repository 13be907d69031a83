package models

import "time"

type ExercisePlan struct {
	ID                 uint          `gorm:"primaryKey" json:"id"`
	UserID             uint          `gorm:"not null;index" json:"user_id"`
	Goal               Goal          `gorm:"not null" json:"goal"`
	Level              Level         `gorm:"not null" json:"level"`
	DaysPerWeek        int           `gorm:"not null;default:3" json:"days_per_week"`
	PreferredTime      PreferredTime `gorm:"not null;default:evening" json:"preferred_time"`
	TrainingFocus      TrainingFocus `gorm:"not null;default:full_body" json:"training_focus"`
	AvailableEquipment bool          `gorm:"not null;default:false" json:"available_equipment"`
	StartDate          time.Time     `gorm:"not null" json:"start_date"`
	CreatedAt          time.Time     `json:"created_at"`
	WorkoutDays        []WorkoutDay  `gorm:"constraint:OnDelete:CASCADE" json:"workout_days,omitempty"`
}

type WorkoutDay struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	ExercisePlanID uint              `gorm:"not null;uniqueIndex:uidx_workout_day_plan_day" json:"exercise_plan_id"`
	DayNumber      int               `gorm:"not null;uniqueIndex:uidx_workout_day_plan_day" json:"day_number"`
	Focus          DayFocus          `gorm:"not null" json:"focus"`
	Exercises      []WorkoutExercise `gorm:"constraint:OnDelete:CASCADE" json:"exercises"`
}

type WorkoutExercise struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	WorkoutDayID uint      `gorm:"not null;index" json:"workout_day_id"`
	ExerciseID   uint      `gorm:"not null" json:"exercise_id"`
	Exercise     *Exercise `json:"exercise,omitempty"`
	Sets         int       `gorm:"not null;default:3" json:"sets"`
	Reps         string    `gorm:"not null;default:10-12" json:"reps"`
	RestTime     int       `gorm:"not null;default:60" json:"rest_time"`
	Notes        string    `json:"notes"`
	Order        int       `gorm:"column:sort_order;not null;default:0" json:"order"`
}
