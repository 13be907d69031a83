package db

import (
	"errors"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// FindOrCreate returns the user's profile, creating an empty one for accounts
// registered before profiles existed.
func (repo *ProfileRepository) FindOrCreate(userID uint) (models.UserProfile, error) {
	var profile models.UserProfile
	result := repo.database.Where("user_id = ?", userID).First(&profile)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		profile = models.UserProfile{UserID: userID, ActivityLevel: 1}
		if err := repo.database.Create(&profile).Error; err != nil {
			return models.UserProfile{}, err
		}
		return profile, nil
	}
	if result.Error != nil {
		return models.UserProfile{}, result.Error
	}
	return profile, nil
}

func (repo *ProfileRepository) Save(profile *models.UserProfile) error {
	return repo.database.Save(profile).Error
}
