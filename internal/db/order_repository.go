package db

import (
	"errors"
	"fmt"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errCartItemMissing = errors.New("cart item missing")

type OrderRepository struct {
	database *gorm.DB
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{database: database}
}

// FindCart returns the user's pending order, if one exists.
func (repo *OrderRepository) FindCart(userID uint) (models.Order, bool, error) {
	return repo.findOrder(repo.database, "user_id = ? AND status = ?", userID, models.OrderPending)
}

// AddToCart increments the product line of the pending order, creating the
// order and line on first use.
func (repo *OrderRepository) AddToCart(userID uint, product models.Product) (models.Order, error) {
	var cart models.Order
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		pending, err := repo.pendingOrder(tx, userID)
		if err != nil {
			return err
		}

		var item models.OrderItem
		result := tx.Where("order_id = ? AND product_id = ?", pending.ID, product.ID).First(&item)
		switch {
		case errors.Is(result.Error, gorm.ErrRecordNotFound):
			item = models.OrderItem{OrderID: pending.ID, ProductID: product.ID, Quantity: 1, Price: product.Price}
			if err := tx.Omit(clause.Associations).Create(&item).Error; err != nil {
				return err
			}
		case result.Error != nil:
			return result.Error
		default:
			if err := tx.Model(&item).Update("quantity", gorm.Expr("quantity + 1")).Error; err != nil {
				return err
			}
		}

		cart, err = repo.recomputeTotal(tx, pending.ID)
		return err
	})
	return cart, err
}

// SetCartItemQuantity changes a line of the user's cart; a quantity below one
// removes the line. found is false when the line is not in the user's cart.
func (repo *OrderRepository) SetCartItemQuantity(userID uint, itemID uint, quantity int) (models.Order, bool, error) {
	var cart models.Order
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		item, found, err := repo.cartItem(tx, userID, itemID)
		if err != nil {
			return err
		}
		if !found {
			return errCartItemMissing
		}

		if quantity < 1 {
			err = tx.Delete(&models.OrderItem{}, item.ID).Error
		} else {
			err = tx.Model(&item).Update("quantity", quantity).Error
		}
		if err != nil {
			return err
		}

		cart, err = repo.recomputeTotal(tx, item.OrderID)
		return err
	})
	if errors.Is(err, errCartItemMissing) {
		return models.Order{}, false, nil
	}
	if err != nil {
		return models.Order{}, false, err
	}
	return cart, true, nil
}

func (repo *OrderRepository) FindCartItem(userID uint, itemID uint) (models.OrderItem, bool, error) {
	return repo.cartItem(repo.database, userID, itemID)
}

// Checkout marks the pending order paid and assigns its order number. found is
// false when the user has no cart or the cart has no lines.
func (repo *OrderRepository) Checkout(userID uint) (models.Order, bool, error) {
	var order models.Order
	placed := false
	err := repo.database.Transaction(func(tx *gorm.DB) error {
		pending, found, err := repo.findOrder(tx, "user_id = ? AND status = ?", userID, models.OrderPending)
		if err != nil {
			return err
		}
		if !found || len(pending.Items) == 0 {
			return nil
		}

		if err := tx.Model(&models.Order{}).Where("id = ?", pending.ID).Updates(map[string]any{
			"status":       models.OrderPaid,
			"order_number": OrderNumber(pending.ID),
		}).Error; err != nil {
			return err
		}

		order, placed, err = repo.findOrder(tx, "id = ?", pending.ID)
		return err
	})
	if err != nil {
		return models.Order{}, false, err
	}
	return order, placed, nil
}

func (repo *OrderRepository) CountCartItems(userID uint) (int, error) {
	var total struct {
		Quantity int `gorm:"column:quantity"`
	}
	if err := repo.database.Table("order_items").
		Select("COALESCE(SUM(order_items.quantity), 0) AS quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.user_id = ? AND orders.status = ?", userID, models.OrderPending).
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total.Quantity, nil
}

// ListForUser returns placed orders newest first; limit <= 0 means all.
func (repo *OrderRepository) ListForUser(userID uint, limit int) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	query := repo.database.
		Where("user_id = ? AND status <> ?", userID, models.OrderPending).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (repo *OrderRepository) FindForUser(userID uint, orderID uint) (models.Order, bool, error) {
	return repo.findOrder(repo.database, "id = ? AND user_id = ?", orderID, userID)
}

func OrderNumber(orderID uint) string {
	return fmt.Sprintf("ORD-%06d", orderID)
}

func (repo *OrderRepository) pendingOrder(tx *gorm.DB, userID uint) (models.Order, error) {
	var order models.Order
	result := tx.Where("user_id = ? AND status = ?", userID, models.OrderPending).First(&order)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		order = models.Order{UserID: userID, Status: models.OrderPending}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return models.Order{}, err
		}
		return order, nil
	}
	return order, result.Error
}

func (repo *OrderRepository) cartItem(tx *gorm.DB, userID uint, itemID uint) (models.OrderItem, bool, error) {
	var item models.OrderItem
	result := tx.
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.id = ? AND orders.user_id = ? AND orders.status = ?", itemID, userID, models.OrderPending).
		First(&item)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.OrderItem{}, false, nil
	}
	if result.Error != nil {
		return models.OrderItem{}, false, result.Error
	}
	return item, true, nil
}

func (repo *OrderRepository) recomputeTotal(tx *gorm.DB, orderID uint) (models.Order, error) {
	if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Update(
		"total_amount",
		tx.Model(&models.OrderItem{}).Select("COALESCE(SUM(price * quantity), 0)").Where("order_id = ?", orderID),
	).Error; err != nil {
		return models.Order{}, err
	}
	order, _, err := repo.findOrder(tx, "id = ?", orderID)
	return order, err
}

func (repo *OrderRepository) findOrder(tx *gorm.DB, condition string, args ...any) (models.Order, bool, error) {
	var order models.Order
	result := tx.
		Preload("Items", func(items *gorm.DB) *gorm.DB { return items.Order("id ASC") }).
		Preload("Items.Product").
		Where(condition, args...).
		First(&order)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.Order{}, false, nil
	}
	if result.Error != nil {
		return models.Order{}, false, result.Error
	}
	return order, true, nil
}
