package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mentorhub/db"
	"mentorhub/models"
	"mentorhub/scheduler"
)

// GetAvailability lists the calling mentor's weekly availability windows.
func GetAvailability(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	var windows []models.AvailabilityWindow
	err := db.DB.
		Where("mentor_id = ?", userID).
		Order("day_of_week, start_time").
		Find(&windows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch availability",
		})
	}

	return c.JSON(windows)
}

type SetAvailabilityInput struct {
	Windows []models.AvailabilityWindow `json:"windows"`
}

// SetAvailability replaces the calling mentor's whole weekly schedule.
// Sending an empty list clears it.
func SetAvailability(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	input := new(SetAvailabilityInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	sched := scheduler.New(db.DB)
	windows, err := sched.ReplaceWeeklyAvailability(userID, input.Windows)
	if err != nil {
		return schedulerError(c, err)
	}

	return c.JSON(windows)
}
