package db

import (
	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistRepository struct {
	database *gorm.DB
}

func NewWishlistRepository(database *gorm.DB) *WishlistRepository {
	return &WishlistRepository{database: database}
}

// Add is idempotent per user and product.
func (repo *WishlistRepository) Add(userID uint, productID uint) error {
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	return repo.database.
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}}, DoNothing: true}).
		Omit(clause.Associations).
		Create(&item).Error
}

func (repo *WishlistRepository) ListForUser(userID uint) ([]models.WishlistItem, error) {
	items := make([]models.WishlistItem, 0)
	if err := repo.database.Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Remove reports whether a row owned by the user was deleted.
func (repo *WishlistRepository) Remove(userID uint, itemID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.WishlistItem{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
