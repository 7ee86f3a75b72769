package controllers

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"mentorhub/db"
	"mentorhub/models"
	"mentorhub/scheduler"
	"mentorhub/utils"
)

// Swappable so handler tests run without an SMTP server.
var sendEmail = utils.SendEmail

// GetMentorSlots lists the open 1-hour slots for a mentor on a given date
// (?date=YYYY-MM-DD).
func GetMentorSlots(c *fiber.Ctx) error {
	mentorID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid mentor ID",
		})
	}

	sched := scheduler.New(db.DB)
	slots, err := sched.ListOpenSlots(uint(mentorID), c.Query("date"))
	if err != nil {
		return schedulerError(c, err)
	}

	return c.JSON(fiber.Map{
		"slots": slots,
	})
}

type CreateBookingRequest struct {
	MentorID  uint    `json:"mentor_id"`
	Date      string  `json:"date"`
	StartTime string  `json:"start_time"`
	Notes     *string `json:"notes"`
}

// CreateBooking reserves a slot for the calling mentee. The booking starts
// pending until the mentor confirms it.
func CreateBooking(c *fiber.Ctx) error {
	menteeID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	req := new(CreateBookingRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	sched := scheduler.New(db.DB)
	booking, err := sched.CreateBooking(scheduler.CreateBookingInput{
		MentorID:  req.MentorID,
		MenteeID:  menteeID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Notes:     req.Notes,
	})
	if err != nil {
		return schedulerError(c, err)
	}

	notifyBookingRequested(booking)

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// ListBookings returns the caller's bookings, mentors see sessions they
// host, mentees see sessions they booked. Supports ?status= filtering.
func ListBookings(c *fiber.Ctx) error {
	userID, ok := currentUserID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, _ := c.Locals("role").(string)

	query := db.DB.Model(&models.Booking{}).
		Preload("Mentor").
		Preload("Mentor.Profile").
		Preload("Mentee").
		Preload("Mentee.Profile")

	if role == models.RoleMentor {
		query = query.Where("mentor_id = ?", userID)
	} else {
		query = query.Where("mentee_id = ?", userID)
	}

	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(models.BookingStatus(status)) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unknown status filter",
			})
		}
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	err := query.
		Order("session_date, start_time").
		Find(&bookings).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch bookings",
		})
	}

	for i := range bookings {
		bookings[i].Mentor.Password = ""
		bookings[i].Mentee.Password = ""
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

// GetBooking returns one booking the caller participates in.
func GetBooking(c *fiber.Ctx) error {
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
	err = db.DB.
		Preload("Mentor").
		Preload("Mentor.Profile").
		Preload("Mentee").
		Preload("Mentee.Profile").
		First(&booking, bookingID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.MentorID != userID && booking.MenteeID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "You don't have permission to perform this action",
		})
	}

	booking.Mentor.Password = ""
	booking.Mentee.Password = ""
	return c.JSON(booking)
}

type UpdateStatusRequest struct {
	Status models.BookingStatus `json:"status"`
}

// UpdateBookingStatus moves a booking through its lifecycle: the mentor
// confirms or cancels a pending booking, either side completes a confirmed
// one.
func UpdateBookingStatus(c *fiber.Ctx) error {
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

	req := new(UpdateStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	sched := scheduler.New(db.DB)
	booking, err := sched.UpdateStatus(uint(bookingID), userID, req.Status)
	if err != nil {
		return schedulerError(c, err)
	}

	notifyStatusChanged(booking)

	return c.JSON(booking)
}

func notifyBookingRequested(booking models.Booking) {
	var mentor models.User
	if err := db.DB.First(&mentor, booking.MentorID).Error; err != nil {
		log.Printf("Error loading mentor %d for notification: %v", booking.MentorID, err)
		return
	}

	subject := "New session request"
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>You have a new session request on <b>%s</b> at <b>%s</b>. Log in to confirm or decline it.</p>",
		mentor.Name,
		booking.SessionDate.Format("2006-01-02"),
		booking.StartTime,
	)
	if err := sendEmail(mentor.Email, subject, body); err != nil {
		log.Printf("Error sending booking request email: %v", err)
	}
}

func notifyStatusChanged(booking models.Booking) {
	var mentee models.User
	if err := db.DB.First(&mentee, booking.MenteeID).Error; err != nil {
		log.Printf("Error loading mentee %d for notification: %v", booking.MenteeID, err)
		return
	}

	subject := fmt.Sprintf("Your session is %s", booking.Status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your session on <b>%s</b> at <b>%s</b> is now <b>%s</b>.</p>",
		mentee.Name,
		booking.SessionDate.Format("2006-01-02"),
		booking.StartTime,
		booking.Status,
	)
	if err := sendEmail(mentee.Email, subject, body); err != nil {
		log.Printf("Error sending status change email: %v", err)
	}
}
