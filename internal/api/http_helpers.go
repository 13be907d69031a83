package api

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/daithanwa/dsi202-2025/internal/services"
	"github.com/gofiber/fiber/v2"
)

var (
	errInvalidID   = errors.New("invalid id")
	errInvalidBody = errors.New("invalid request body")
)

type errorRule struct {
	targets []error
	status  int
	key     string
	// redirect is set for prerequisite and access errors.
	redirect string
}

var errorRules = []errorRule{
	{
		targets:  []error{services.ErrPlanDayForbidden},
		status:   fiber.StatusForbidden,
		key:      "error.access_denied",
		redirect: "/dashboard",
	},
	{
		targets:  []error{services.ErrSubscriptionRequired},
		status:   fiber.StatusConflict,
		key:      "error.subscription_required",
		redirect: "/subscriptions",
	},
	{
		targets:  []error{services.ErrProfileIncomplete},
		status:   fiber.StatusConflict,
		key:      "error.profile_required",
		redirect: "/profile/setup",
	},
	{targets: []error{services.ErrAuthCredentialsInvalid}, status: fiber.StatusUnauthorized, key: "error.invalid_credentials"},
	{targets: []error{services.ErrUsernameTaken}, status: fiber.StatusConflict, key: "error.username_taken"},
	{targets: []error{services.ErrInvalidUsername}, status: fiber.StatusBadRequest, key: "error.invalid_username"},
	{targets: []error{services.ErrInvalidEmail}, status: fiber.StatusBadRequest, key: "error.invalid_email"},
	{targets: []error{services.ErrWeakPassword}, status: fiber.StatusBadRequest, key: "error.weak_password"},
	{targets: []error{services.ErrPasswordMismatch}, status: fiber.StatusBadRequest, key: "error.password_mismatch"},
	{targets: []error{services.ErrCurrentPasswordInvalid}, status: fiber.StatusBadRequest, key: "error.current_password_invalid"},
	{
		targets: []error{
			services.ErrInvalidBirthDate,
			services.ErrInvalidGender,
			services.ErrInvalidHeight,
			services.ErrInvalidWeight,
			services.ErrInvalidActivityLevel,
		},
		status: fiber.StatusBadRequest,
		key:    "error.invalid_profile",
	},
	{
		targets: []error{
			models.ErrInvalidGoal,
			models.ErrInvalidMealGoal,
			models.ErrInvalidLevel,
			models.ErrInvalidTrainingFocus,
			models.ErrInvalidPreferredTime,
			services.ErrInvalidDaysPerWeek,
			services.ErrInvalidDailyCalories,
			services.ErrInvalidMacroRatio,
			services.ErrInvalidMealsPerDay,
		},
		status: fiber.StatusBadRequest,
		key:    "error.invalid_plan_options",
	},
	{targets: []error{services.ErrInvalidExerciseMinutes, services.ErrProgressNotesTooLong}, status: fiber.StatusBadRequest, key: "error.invalid_progress"},
	{
		targets: []error{services.ErrForumTitleRequired, services.ErrForumTitleTooLong, services.ErrForumContentEmpty},
		status:  fiber.StatusBadRequest,
		key:     "error.invalid_post",
	},
	{targets: []error{services.ErrInvalidCartAction, errInvalidID, errInvalidBody}, status: fiber.StatusBadRequest, key: "error.invalid_request"},
	{targets: []error{services.ErrProductUnavailable}, status: fiber.StatusConflict, key: "error.product_unavailable"},
	{targets: []error{services.ErrSubscriptionPlanInactive}, status: fiber.StatusConflict, key: "error.plan_inactive"},
	{targets: []error{services.ErrCartEmpty}, status: fiber.StatusConflict, key: "error.cart_empty"},
	{targets: []error{services.ErrOrderNotPayable}, status: fiber.StatusConflict, key: "error.order_not_payable"},
	{
		targets: []error{
			services.ErrPlanNotFound,
			services.ErrPlanDayNotFound,
			services.ErrRecipeNotFound,
			services.ErrProductNotFound,
			services.ErrCartItemNotFound,
			services.ErrOrderNotFound,
			services.ErrWishlistNotFound,
			services.ErrSubscriptionPlanNotFound,
			services.ErrForumTopicNotFound,
			services.ErrForumThreadNotFound,
			services.ErrUserNotFound,
		},
		status: fiber.StatusNotFound,
		key:    "error.not_found",
	},
}

func matchErrorRule(err error) (errorRule, bool) {
	for _, rule := range errorRules {
		for _, target := range rule.targets {
			if errors.Is(err, target) {
				return rule, true
			}
		}
	}
	return errorRule{}, false
}

// respondError maps service errors onto status codes and localized bodies.
// Unknown errors are logged and reported as 500.
func (handler *Handler) respondError(c *fiber.Ctx, err error) error {
	rule, ok := matchErrorRule(err)
	if !ok {
		handler.logger.Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"request_id", requestID(c),
			"error", err,
		)
		return apiError(c, fiber.StatusInternalServerError, handler.translate(c, "error.internal"))
	}
	if rule.redirect != "" {
		return handler.redirectError(c, rule.status, rule.key, rule.redirect)
	}

	body := fiber.Map{"error": handler.translate(c, rule.key)}
	if rule.status == fiber.StatusBadRequest {
		body["detail"] = err.Error()
	}
	return c.Status(rule.status).JSON(body)
}

func (handler *Handler) redirectError(c *fiber.Ctx, status int, key string, redirect string) error {
	return c.Status(status).JSON(fiber.Map{
		"message":  handler.translate(c, key),
		"redirect": redirect,
	})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func (handler *Handler) translate(c *fiber.Ctx, key string, args ...any) string {
	if len(args) == 0 {
		return handler.i18n.Translate(currentLanguage(c), key)
	}
	return handler.i18n.Translatef(currentLanguage(c), key, args...)
}

func parseBody(c *fiber.Ctx, target any) error {
	if err := c.BodyParser(target); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(c.Params(name)), 10, 64)
	if err != nil || value == 0 {
		return 0, errInvalidID
	}
	return uint(value), nil
}

func requestID(c *fiber.Ctx) string {
	value, _ := c.Locals("requestid").(string)
	return value
}

func acceptsJSON(c *fiber.Ctx) bool {
	return strings.Contains(strings.ToLower(c.Get("Accept")), "application/json")
}

func sanitizeRedirectPath(raw string, fallback string) string {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return fallback
	}
	if strings.HasPrefix(candidate, "//") || !strings.HasPrefix(candidate, "/") {
		return fallback
	}
	parsed, err := url.Parse(candidate)
	if err != nil || parsed.IsAbs() {
		return fallback
	}
	return candidate
}
