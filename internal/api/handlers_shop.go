package api

import (
	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/daithanwa/dsi202-2025/internal/services"
	"github.com/gofiber/fiber/v2"
)

type cartItemRequest struct {
	Action string `json:"action"`
}

func (handler *Handler) Home(c *fiber.Ctx) error {
	products, err := handler.shop.FeaturedProducts()
	if err != nil {
		return handler.respondError(c, err)
	}
	plans, err := handler.subscriptions.ListPlans()
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"products": products,
		"plans":    plans,
	})
}

func (handler *Handler) ListProducts(c *fiber.Ctx) error {
	products, err := handler.shop.ListProducts(c.Query("q"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"products": products})
}

func (handler *Handler) GetProduct(c *fiber.Ctx) error {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	product, err := handler.shop.Product(productID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"product": product})
}

func (handler *Handler) GetCart(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	cart, err := handler.shop.Cart(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return handler.sendCart(c, user.ID, cart, "")
}

func (handler *Handler) AddToCart(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	productID, err := parseIDParam(c, "productID")
	if err != nil {
		return handler.respondError(c, err)
	}
	product, err := handler.shop.Product(productID)
	if err != nil {
		return handler.respondError(c, err)
	}
	cart, err := handler.shop.AddToCart(user.ID, productID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return handler.sendCart(c, user.ID, cart, handler.translate(c, "success.cart_added", product.Name))
}

func (handler *Handler) UpdateCartItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	itemID, err := parseIDParam(c, "itemID")
	if err != nil {
		return handler.respondError(c, err)
	}
	var input cartItemRequest
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	action, err := services.ParseCartAction(input.Action)
	if err != nil {
		return handler.respondError(c, err)
	}

	cart, err := handler.shop.UpdateCartItem(user.ID, itemID, action)
	if err != nil {
		return handler.respondError(c, err)
	}
	return handler.sendCart(c, user.ID, cart, handler.translate(c, "success.cart_updated"))
}

func (handler *Handler) RemoveCartItem(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	itemID, err := parseIDParam(c, "itemID")
	if err != nil {
		return handler.respondError(c, err)
	}
	cart, err := handler.shop.RemoveCartItem(user.ID, itemID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return handler.sendCart(c, user.ID, cart, handler.translate(c, "success.cart_item_removed"))
}

func (handler *Handler) sendCart(c *fiber.Ctx, userID uint, cart models.Order, message string) error {
	count, err := handler.shop.CartCount(userID)
	if err != nil {
		return handler.respondError(c, err)
	}
	body := fiber.Map{"cart": cart, "item_count": count}
	if message != "" {
		body["message"] = message
	}
	return c.JSON(body)
}

func (handler *Handler) Checkout(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	order, err := handler.shop.Checkout(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	handler.logger.Info("order placed", "user_id", user.ID, "order_number", order.OrderNumber, "total_satang", order.TotalAmount)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": handler.translate(c, "success.checkout", order.OrderNumber),
		"order":   order,
	})
}

func (handler *Handler) ListOrders(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	orders, err := handler.shop.Orders(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"orders": orders})
}

func (handler *Handler) GetOrder(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	detail, err := handler.shop.OrderDetail(user.ID, orderID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(detail)
}

func (handler *Handler) RequestPayment(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	orderID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	order, err := handler.shop.RequestPayment(user.ID, orderID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": handler.translate(c, "success.payment_requested", order.OrderNumber),
		"order":   order,
	})
}

func (handler *Handler) GetWishlist(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	items, err := handler.shop.Wishlist(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}

func (handler *Handler) AddToWishlist(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	productID, err := parseIDParam(c, "productID")
	if err != nil {
		return handler.respondError(c, err)
	}
	product, err := handler.shop.Product(productID)
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.shop.AddToWishlist(user.ID, productID); err != nil {
		return handler.respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": handler.translate(c, "success.wishlist_added", product.Name),
	})
}

func (handler *Handler) RemoveFromWishlist(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	itemID, err := parseIDParam(c, "itemID")
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.shop.RemoveFromWishlist(user.ID, itemID); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": handler.translate(c, "success.wishlist_removed")})
}
