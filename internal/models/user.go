package models

import "time"

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

type User struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	Username           string    `gorm:"uniqueIndex;not null" json:"username"`
	Email              string    `gorm:"not null" json:"email"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	PasswordHash       string    `gorm:"not null" json:"-"`
	MustChangePassword bool      `gorm:"not null;default:false" json:"-"`
	CreatedAt          time.Time `gorm:"not null" json:"created_at"`
}

type UserProfile struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	UserID              uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	BirthDate           *time.Time `json:"birth_date,omitempty"`
	Gender              string     `json:"gender"`
	HeightCM            float64    `gorm:"column:height_cm" json:"height_cm"`
	WeightKG            float64    `gorm:"column:weight_kg" json:"weight_kg"`
	ActivityLevel       int        `gorm:"not null;default:1" json:"activity_level"`
	MedicalConditions   string     `json:"medical_conditions"`
	HasCompletedProfile bool       `gorm:"not null;default:false" json:"has_completed_profile"`
}
