package db

import (
	"errors"
	"strings"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	database *gorm.DB
}

func NewProductRepository(database *gorm.DB) *ProductRepository {
	return &ProductRepository{database: database}
}

// ListActive returns active products newest first, optionally filtered by a
// case-insensitive match on name or description.
func (repo *ProductRepository) ListActive(search string, limit int) ([]models.Product, error) {
	products := make([]models.Product, 0)
	query := repo.database.Where("is_active = ?", true)
	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		pattern := "%" + term + "%"
		query = query.Where("lower(name) LIKE ? OR lower(description) LIKE ?", pattern, pattern)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Order("created_at DESC, id DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (repo *ProductRepository) FindByID(productID uint) (models.Product, bool, error) {
	var product models.Product
	result := repo.database.First(&product, productID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Product{}, false, nil
	}
	if result.Error != nil {
		return models.Product{}, false, result.Error
	}
	return product, true, nil
}
