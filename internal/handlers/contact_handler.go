package handlers

import (
	"handiva/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the tribal contact form.
type ContactHandler struct {
	service *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/tribal-contact", h.HandleSubmit)
}

// HandleSubmit stores a contact message and returns its id.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var input services.ContactInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorBody("Missing fields"))
	}

	msg, err := h.service.SubmitContact(c.UserContext(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      msg.ID,
	})
}
