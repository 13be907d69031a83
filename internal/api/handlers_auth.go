package api

import (
	"errors"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/daithanwa/dsi202-2025/internal/services"
	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

type accountResponse struct {
	User               models.User `json:"user"`
	MustChangePassword bool        `json:"must_change_password"`
}

func newAccountResponse(user models.User) accountResponse {
	return accountResponse{User: user, MustChangePassword: user.MustChangePassword}
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	user, err := handler.auth.Register(input)
	if err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.setAuthCookie(c, &user, false); err != nil {
		return handler.respondError(c, err)
	}

	handler.logger.Info("user registered", "user_id", user.ID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": handler.translate(c, "success.registered"),
		"account": newAccountResponse(user),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := "login:" + c.IP()
	if handler.loginLimiter.TooManyRecent(limiterKey) {
		return apiError(c, fiber.StatusTooManyRequests, handler.translate(c, "error.too_many_attempts"))
	}

	var input loginRequest
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}

	user, err := handler.auth.Authenticate(input.Username, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			handler.loginLimiter.AddFailure(limiterKey)
			handler.logger.Warn("login failed", "ip", c.IP())
		}
		return handler.respondError(c, err)
	}
	handler.loginLimiter.Reset(limiterKey)

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": handler.translate(c, "success.logged_in"),
		"account": newAccountResponse(user),
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": handler.translate(c, "success.logged_out")})
}

func (handler *Handler) GetAccount(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(newAccountResponse(*user))
}

func (handler *Handler) UpdateAccount(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input services.AccountInput
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	updated, err := handler.auth.UpdateAccount(user.ID, input)
	if err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": handler.translate(c, "success.account_updated"),
		"account": newAccountResponse(updated),
	})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var input services.ChangePasswordInput
	if err := parseBody(c, &input); err != nil {
		return handler.respondError(c, err)
	}
	if err := handler.auth.ChangePassword(user.ID, input); err != nil {
		return handler.respondError(c, err)
	}

	user.MustChangePassword = false
	if err := handler.setAuthCookie(c, user, false); err != nil {
		return handler.respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": handler.translate(c, "success.password_changed")})
}
