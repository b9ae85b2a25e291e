package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ideapulse/idea-feedback-backend/internal/models"
	"github.com/ideapulse/idea-feedback-backend/utils"
)

func (h *Handler) SubmitFeedback(c *fiber.Ctx) error {
	var req models.SubmitFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Rating must be between 1 and 10")
	}

	created, err := h.feedback.Submit(c.Context(), c.Params("id"), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) GetFeedback(c *fiber.Ctx) error {
	rows, err := h.feedback.ListByIdea(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"feedback": rows,
	})
}

func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	dash, err := h.feedback.Dashboard(c.Context(), c.Params("id"), c.Query("creatorToken"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dash)
}
