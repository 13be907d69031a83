package api

import (
	"strings"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/daithanwa/dsi202-2025/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName     = "fitplan_auth"
	languageCookieName = "fitplan_lang"
	contextUserKey     = "current_user"
	contextLanguageKey = "current_language"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func currentLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}

func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	cookieLanguage := c.Cookies(languageCookieName)
	language := handler.i18n.DetectFromAcceptLanguage(c.Get("Accept-Language"))
	if cookieLanguage != "" {
		language = handler.i18n.NormalizeLanguage(cookieLanguage)
	}

	c.Locals(contextLanguageKey, language)
	return c.Next()
}

func (handler *Handler) setLanguageCookie(c *fiber.Ctx, language string) {
	c.Cookie(&fiber.Cookie{
		Name:     languageCookieName,
		Value:    handler.i18n.NormalizeLanguage(language),
		Path:     "/",
		HTTPOnly: false,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  handler.now().AddDate(1, 0, 0),
	})
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, handler.translate(c, "error.unauthorized"))
	}

	c.Locals(contextUserKey, user)
	if user.MustChangePassword && !passwordChangeAllowed(c.Path()) {
		return handler.redirectError(c, fiber.StatusForbidden, "error.password_change_required", "/account/password")
	}
	return c.Next()
}

// passwordChangeAllowed lists the routes a user holding a temporary password
// may still reach.
func passwordChangeAllowed(path string) bool {
	switch strings.TrimSuffix(strings.TrimSpace(path), "/") {
	case "/api/account", "/api/account/password", "/api/auth/logout":
		return true
	default:
		return false
	}
}

// RequireActiveSubscription guards the plan routes.
func (handler *Handler) RequireActiveSubscription(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, handler.translate(c, "error.unauthorized"))
	}
	if err := handler.subscriptions.RequireActive(user.ID, handler.now()); err != nil {
		return handler.respondError(c, err)
	}
	return c.Next()
}

// RequireCompletedProfile guards plan creation, which needs body metrics.
func (handler *Handler) RequireCompletedProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, handler.translate(c, "error.unauthorized"))
	}
	profile, err := handler.profiles.Load(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	if !profile.HasCompletedProfile {
		return handler.respondError(c, services.ErrProfileIncomplete)
	}
	return c.Next()
}
