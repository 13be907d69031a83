package db

import (
	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	database *gorm.DB
}

func NewProgressRepository(database *gorm.DB) *ProgressRepository {
	return &ProgressRepository{database: database}
}

func (repo *ProgressRepository) Create(entry *models.ProgressEntry) error {
	return repo.database.Create(entry).Error
}

func (repo *ProgressRepository) ListForUser(userID uint) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
