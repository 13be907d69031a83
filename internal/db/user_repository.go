package db

import (
	"errors"
	"strings"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, error) {
	var user models.User
	if err := repo.database.First(&user, userID).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByUsername(username string) (models.User, bool, error) {
	var user models.User
	result := repo.database.Where("lower(username) = ?", strings.ToLower(strings.TrimSpace(username))).First(&user)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.User{}, false, nil
	}
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	return user, true, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(username) = ?", strings.ToLower(strings.TrimSpace(username))).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

// CreateWithProfile stores the account together with its empty profile.
func (repo *UserRepository) CreateWithProfile(user *models.User) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.UserProfile{UserID: user.ID, ActivityLevel: 1}).Error
	})
}

func (repo *UserRepository) UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"password_hash":        passwordHash,
		"must_change_password": mustChangePassword,
	}).Error
}

func (repo *UserRepository) UpdateNames(userID uint, firstName string, lastName string, email string) error {
	return repo.database.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]any{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
	}).Error
}
