package api

import (
	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/daithanwa/dsi202-2025/internal/services"
	"github.com/gofiber/fiber/v2"
)

type profileResponse struct {
	Profile models.UserProfile      `json:"profile"`
	Metrics services.ProfileMetrics `json:"metrics"`
}

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	profile, err := handler.profiles.Load(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(profileResponse{
		Profile: profile,
		Metrics: services.CalculateProfileMetrics(profile, handler.now()),
	})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input services.ProfileInput
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	now := handler.now()
	profile, err := handler.profiles.Complete(user.ID, input, now)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": handler.translate(c, "success.profile_saved"),
		"profile": profile,
		"metrics": services.CalculateProfileMetrics(profile, now),
	})
}

func (handler *Handler) Dashboard(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	dashboard, err := handler.dashboard.Build(c.UserContext(), user.ID, handler.now())
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(dashboard)
}
