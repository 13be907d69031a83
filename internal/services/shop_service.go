package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/daithanwa/dsi202-2025/internal/promptpay"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrInvalidCartAction  = errors.New("invalid cart action")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotPayable    = errors.New("order cannot be paid")
	ErrWishlistNotFound   = errors.New("wishlist item not found")
)

const (
	homeProductLimit  = 4
	recentOrdersLimit  = 5
)

type CartAction string

const (
	CartIncrease CartAction = "increase"
	CartDecrease CartAction = "decrease"
	CartRemove   CartAction = "remove"
)

type ProductRepository interface {
	ListActive(search string, limit int) ([]models.Product, error)
	FindByID(productID uint) (models.Product, bool, error)
}

type OrderRepository interface {
	FindCart(userID uint) (models.Order, bool, error)
	AddToCart(userID uint, product models.Product) (models.Order, error)
	SetCartItemQuantity(userID uint, itemID uint, quantity int) (models.Order, bool, error)
	FindCartItem(userID uint, itemID uint) (models.OrderItem, bool, error)
	Checkout(userID uint) (models.Order, bool, error)
	CountCartItems(userID uint) (int, error)
	ListForUser(userID uint, limit int) ([]models.Order, error)
	FindForUser(userID uint, orderID uint) (models.Order, bool, error)
}

type WishlistRepository interface {
	Add(userID uint, productID uint) error
	ListForUser(userID uint) ([]models.WishlistItem, error)
	Remove(userID uint, itemID uint) (bool, error)
}

// OrderDetail carries the PromptPay payload and QR image for the order total.
// QRCodePNG is empty when the image could not be produced.
type OrderDetail struct {
	Order            models.Order `json:"order"`
	PromptPayPayload string       `json:"promptpay_payload,omitempty"`
	QRCodePNG        string       `json:"qr_code_png,omitempty"`
}

type ShopService struct {
	products        ProductRepository
	orders          OrderRepository
	wishlist        WishlistRepository
	promptPayMobile string
}

func NewShopService(products ProductRepository, orders OrderRepository, wishlist WishlistRepository, promptPayMobile string) *ShopService {
	return &ShopService{
		products:        products,
		orders:          orders,
		wishlist:        wishlist,
		promptPayMobile: promptPayMobile,
	}
}

func (service *ShopService) ListProducts(search string) ([]models.Product, error) {
	return service.products.ListActive(search, 0)
}

func (service *ShopService) FeaturedProducts() ([]models.Product, error) {
	return service.products.ListActive("", homeProductLimit)
}

func (service *ShopService) Product(productID uint) (models.Product, error) {
	product, found, err := service.products.FindByID(productID)
	if err != nil {
		return models.Product{}, err
	}
	if !found || !product.IsActive {
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}

// Cart returns the pending order; a user without one gets an empty cart.
func (service *ShopService) Cart(userID uint) (models.Order, error) {
	cart, found, err := service.orders.FindCart(userID)
	if err != nil {
		return models.Order{}, err
	}
	if !found {
		return models.Order{UserID: userID, Status: models.OrderPending, Items: make([]models.OrderItem, 0)}, nil
	}
	return cart, nil
}

func (service *ShopService) CartCount(userID uint) (int, error) {
	return service.orders.CountCartItems(userID)
}

func (service *ShopService) AddToCart(userID uint, productID uint) (models.Order, error) {
	product, found, err := service.products.FindByID(productID)
	if err != nil {
		return models.Order{}, err
	}
	if !found {
		return models.Order{}, ErrProductNotFound
	}
	if !product.IsActive {
		return models.Order{}, ErrProductUnavailable
	}

	cart, err := service.orders.AddToCart(userID, product)
	if err != nil {
		return models.Order{}, fmt.Errorf("add to cart: %w", err)
	}
	return cart, nil
}

// UpdateCartItem applies a cart action; decreasing a line at quantity one
// removes it.
func (service *ShopService) UpdateCartItem(userID uint, itemID uint, action CartAction) (models.Order, error) {
	item, found, err := service.orders.FindCartItem(userID, itemID)
	if err != nil {
		return models.Order{}, err
	}
	if !found {
		return models.Order{}, ErrCartItemNotFound
	}

	var quantity int
	switch action {
	case CartIncrease:
		quantity = item.Quantity + 1
	case CartDecrease:
		quantity = item.Quantity - 1
	case CartRemove:
		quantity = 0
	default:
		return models.Order{}, ErrInvalidCartAction
	}

	cart, found, err := service.orders.SetCartItemQuantity(userID, itemID, quantity)
	if err != nil {
		return models.Order{}, fmt.Errorf("update cart: %w", err)
	}
	if !found {
		return models.Order{}, ErrCartItemNotFound
	}
	return cart, nil
}

func (service *ShopService) RemoveCartItem(userID uint, itemID uint) (models.Order, error) {
	return service.UpdateCartItem(userID, itemID, CartRemove)
}

// Checkout settles the cart immediately; there is no payment gateway.
func (service *ShopService) Checkout(userID uint) (models.Order, error) {
	order, placed, err := service.orders.Checkout(userID)
	if err != nil {
		return models.Order{}, fmt.Errorf("checkout: %w", err)
	}
	if !placed {
		return models.Order{}, ErrCartEmpty
	}
	return order, nil
}

func (service *ShopService) Orders(userID uint) ([]models.Order, error) {
	return service.orders.ListForUser(userID, 0)
}

func (service *ShopService) RecentOrders(userID uint) ([]models.Order, error) {
	return service.orders.ListForUser(userID, recentOrdersLimit)
}

func (service *ShopService) Order(userID uint, orderID uint) (models.Order, error) {
	order, found, err := service.orders.FindForUser(userID, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if !found {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

// OrderDetail returns the order with a PromptPay QR for its total. QR failures
// leave the image empty instead of failing the request.
func (service *ShopService) OrderDetail(userID uint, orderID uint) (OrderDetail, error) {
	order, err := service.Order(userID, orderID)
	if err != nil {
		return OrderDetail{}, err
	}

	detail := OrderDetail{Order: order}
	payload, err := promptpay.Payload(service.promptPayMobile, order.TotalAmount)
	if err != nil {
		return detail, nil
	}
	detail.PromptPayPayload = payload

	image, err := promptpay.QRCodePNG(payload)
	if err != nil {
		return detail, nil
	}
	detail.QRCodePNG = base64.StdEncoding.EncodeToString(image)
	return detail, nil
}

// RequestPayment only accepts orders still awaiting payment.
func (service *ShopService) RequestPayment(userID uint, orderID uint) (models.Order, error) {
	order, err := service.Order(userID, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if order.Status != models.OrderPending {
		return models.Order{}, ErrOrderNotPayable
	}
	return order, nil
}

func (service *ShopService) Wishlist(userID uint) ([]models.WishlistItem, error) {
	return service.wishlist.ListForUser(userID)
}

// AddToWishlist is idempotent per product.
func (service *ShopService) AddToWishlist(userID uint, productID uint) error {
	if _, err := service.Product(productID); err != nil {
		return err
	}
	if err := service.wishlist.Add(userID, productID); err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func (service *ShopService) RemoveFromWishlist(userID uint, itemID uint) error {
	removed, err := service.wishlist.Remove(userID, itemID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrWishlistNotFound
	}
	return nil
}

func ParseCartAction(raw string) (CartAction, error) {
	action := CartAction(strings.ToLower(strings.TrimSpace(raw)))
	switch action {
	case CartIncrease, CartDecrease, CartRemove:
		return action, nil
	default:
		return "", ErrInvalidCartAction
	}
}
