package api

import (
	"github.com/daithanwa/dsi202-2025/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListSubscriptionPlans(c *fiber.Ctx) error {
	plans, err := handler.subscriptions.ListPlans()
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"plans": plans})
}

func (handler *Handler) GetSubscriptionPlan(c *fiber.Ctx) error {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	plan, err := handler.subscriptions.Plan(planID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"plan": plan})
}

func (handler *Handler) Subscribe(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	planID, err := parseIDParam(c, "id")
	if err != nil {
		return handler.respondError(c, err)
	}
	plan, err := handler.subscriptions.Plan(planID)
	if err != nil {
		return handler.respondError(c, err)
	}

	now := handler.now()
	subscription, created, err := handler.subscriptions.Subscribe(user.ID, planID, now)
	if err != nil {
		return handler.respondError(c, err)
	}

	status, key := fiber.StatusCreated, "success.subscribed"
	if !created {
		status, key = fiber.StatusOK, "success.already_subscribed"
	}
	return c.Status(status).JSON(fiber.Map{
		"message": handler.translate(c, key, plan.Name),
		"subscription": services.ActiveSubscriptionView{
			Subscription:  subscription,
			DaysRemaining: subscription.DaysRemaining(now),
		},
	})
}

func (handler *Handler) MySubscriptions(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	subscriptions, err := handler.subscriptions.ListForUser(user.ID, handler.now())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"subscriptions": subscriptions})
}
