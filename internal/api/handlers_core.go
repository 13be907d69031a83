package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) SetLanguage(c *fiber.Ctx) error {
	requested := c.Params("lang")
	if !handler.i18n.IsSupported(requested) {
		return apiError(c, fiber.StatusBadRequest, handler.translate(c, "error.unsupported_language"))
	}
	language := handler.i18n.NormalizeLanguage(requested)
	handler.setLanguageCookie(c, language)
	c.Locals(contextLanguageKey, language)

	if acceptsJSON(c) {
		return c.JSON(fiber.Map{
			"language": language,
			"message":  handler.translate(c, "success.language_changed"),
		})
	}
	return c.Redirect(sanitizeRedirectPath(c.Query("next"), "/"), fiber.StatusSeeOther)
}
