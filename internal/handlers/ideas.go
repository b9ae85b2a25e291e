package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ideapulse/idea-feedback-backend/internal/models"
	"github.com/ideapulse/idea-feedback-backend/utils"
)

func (h *Handler) CreateIdea(c *fiber.Ctx) error {
	var req models.CreateIdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	created, err := h.ideas.Create(c.Context(), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) GetIdeas(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.ideas.ListPublic(c.Context(), page)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"ideas": result.Ideas,
		"pagination": fiber.Map{
			"page":    result.Page,
			"limit":   result.Limit,
			"total":   result.Total,
			"hasMore": result.HasMore,
		},
	})
}

func (h *Handler) GetIdea(c *fiber.Ctx) error {
	idea, err := h.ideas.Get(c.Context(), c.Params("id"), c.Query("password"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(idea)
}

func (h *Handler) UpdateIdea(c *fiber.Ctx) error {
	var req models.UpdateIdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := utils.Validate.Struct(req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}

	idea, err := h.ideas.Update(c.Context(), c.Params("id"), c.Query("creatorToken"), c.Query("password"), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(idea)
}

func (h *Handler) DeleteIdea(c *fiber.Ctx) error {
	if err := h.ideas.Delete(c.Context(), c.Params("id"), c.Query("creatorToken")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Idea deleted successfully",
	})
}
