package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"mentorhub/db"
	"mentorhub/models"
	"mentorhub/redis"
	"mentorhub/scheduler"
)

func roomKey(roomID string) string {
	return fmt.Sprintf("session:%s:participants", roomID)
}

// JoinSession admits a participant of a confirmed booking into its video
// room and tracks presence in Redis.
func JoinSession(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.MentorID != userID && booking.MenteeID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}
	if booking.Status != models.StatusConfirmed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only confirmed sessions can be joined",
		})
	}

	key := roomKey(booking.RoomID)
	if err := redis.Client.SAdd(redis.Ctx, key, userID).Err(); err != nil {
		log.Printf("Error tracking presence for room %s: %v", booking.RoomID, err)
	}

	participants, err := redis.Client.SCard(redis.Ctx, key).Result()
	if err != nil {
		participants = 0
	}

	return c.JSON(fiber.Map{
		"room_id":      booking.RoomID,
		"participants": participants,
	})
}

// LeaveSession removes the participant from the room. When the leaver is a
// participant of a still-confirmed booking, the session is marked completed.
func LeaveSession(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	bookingID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid booking ID",
		})
	}

	var booking models.Booking
	if err := db.DB.First(&booking, bookingID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.MentorID != userID && booking.MenteeID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}

	key := roomKey(booking.RoomID)
	if err := redis.Client.SRem(redis.Ctx, key, userID).Err(); err != nil {
		log.Printf("Error clearing presence for room %s: %v", booking.RoomID, err)
	}

	if booking.Status == models.StatusConfirmed {
		sched := scheduler.New(db.DB)
		updated, err := sched.UpdateStatus(booking.ID, userID, models.StatusCompleted)
		if err != nil {
			return schedulerError(c, err)
		}
		booking = updated
	}

	return c.JSON(fiber.Map{
		"message": "Left session",
		"status":  booking.Status,
	})
}
