package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mentorhub/db"
	"mentorhub/models"
)

// Dashboard summarizes the caller's sessions by lifecycle status, plus the
// next upcoming confirmed session.
func Dashboard(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	ownerColumn := "mentee_id"
	if role == models.RoleMentor {
		ownerColumn = "mentor_id"
	}

	type statusCount struct {
		Status models.BookingStatus
		Count  int64
	}
	var rows []statusCount
	err := db.DB.Model(&models.Booking{}).
		Select("status, count(*) as count").
		Where(ownerColumn+" = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load dashboard",
		})
	}

	counts := fiber.Map{
		"pending":   int64(0),
		"confirmed": int64(0),
		"cancelled": int64(0),
		"completed": int64(0),
	}
	for _, row := range rows {
		counts[string(row.Status)] = row.Count
	}

	var next models.Booking
	hasNext := db.DB.
		Preload("Mentor").
		Preload("Mentee").
		Where(ownerColumn+" = ?", userID).
		Where("status = ?", models.StatusConfirmed).
		Order("session_date, start_time").
		First(&next).RowsAffected > 0

	resp := fiber.Map{
		"counts": counts,
	}
	if hasNext {
		next.Mentor.Password = ""
		next.Mentee.Password = ""
		resp["next_session"] = next
	}

	return c.JSON(resp)
}
