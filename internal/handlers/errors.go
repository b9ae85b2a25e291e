package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/ideapulse/idea-feedback-backend/internal/services"
	"github.com/ideapulse/idea-feedback-backend/utils"
)

// respondError maps the service error taxonomy onto HTTP statuses. Missing
// password (401) and wrong password (403) stay distinct so clients know
// whether to prompt.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, vErr.Reason)
	case errors.Is(err, services.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Idea not found")
	case errors.Is(err, services.ErrPasswordRequired):
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Password required for private idea")
	case errors.Is(err, services.ErrPasswordInvalid):
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Invalid password")
	case errors.Is(err, services.ErrUnauthorized):
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Unauthorized")
	default:
		log.Printf("request failed: %v", err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// ErrorHandler is the app-level Fiber error handler for errors that escape
// the route handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
