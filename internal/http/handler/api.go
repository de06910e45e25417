package handler

import (
	"github.com/gofiber/fiber/v2"

	"triptogether/internal/content"
	"triptogether/internal/model"
	"triptogether/internal/service"
)

// ContentAPI returns the content table entry for a locale.
//
// @Summary Page content for a locale
// @Tags    content
// @Produce json
// @Param   lang path string true "Locale" Enums(en, ru)
// @Success 200 {object} content.Content
// @Failure 404 {object} errorPayload
// @Router  /api/content/{lang} [get]
func ContentAPI() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Params("lang")
		if !content.Has(lang) {
			return writeError(c, fiber.StatusNotFound, "UNKNOWN_LOCALE", "unknown locale")
		}
		return c.JSON(content.For(lang))
	}
}

// ContactAPI accepts a contact message as JSON. Empty fields are accepted.
//
// @Summary Submit the contact form
// @Tags    contact
// @Accept  json
// @Produce json
// @Param   message body model.ContactMessage true "Contact message"
// @Success 202 {object} model.ContactReceipt
// @Failure 400 {object} errorPayload
// @Router  /api/contact [post]
func ContactAPI(svc service.ContactService, fallback string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var msg model.ContactMessage
		if err := c.BodyParser(&msg); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if !content.Has(msg.Locale) {
			msg.Locale = fallback
		}

		receipt, err := svc.Submit(c.UserContext(), msg)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Status(fiber.StatusAccepted).JSON(receipt)
	}
}
