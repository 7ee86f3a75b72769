package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mentorhub/scheduler"
	"mentorhub/utils"
)

// schedulerError maps scheduling failures onto HTTP responses so every
// handler reports them the same way.
func schedulerError(c *fiber.Ctx, err error) error {
	var verr *scheduler.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid request",
			Error:   verr.Error(),
		})
	case errors.Is(err, scheduler.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Not found",
		})
	case errors.Is(err, scheduler.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Message: "You don't have permission to perform this action",
		})
	case errors.Is(err, scheduler.ErrSlotUnavailable):
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "The requested slot is no longer available",
		})
	case errors.Is(err, scheduler.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Internal server error",
			Error:   err.Error(),
		})
	}
}

func currentUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals("userID").(uint)
	return id, ok
}
