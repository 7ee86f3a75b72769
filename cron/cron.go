package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"mentorhub/db"
	"mentorhub/models"
	"mentorhub/utils"
)

// StartCronJobs initializes and starts the cron scheduler for session reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to catch sessions starting in about an hour
	_, err := c.AddFunc("* * * * *", sendSessionReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for session reminders")
}

type reminderSpan struct {
	day  time.Time
	from string
	to   string
}

// reminderSpans returns the date and clock ranges holding sessions that
// start 55 to 65 minutes after now. A lead window crossing midnight yields
// one span for the tail of the first day and one for the head of the next,
// so sessions starting just after 00:00 still get their reminder.
func reminderSpans(now time.Time) []reminderSpan {
	from := now.Add(55 * time.Minute)
	to := now.Add(65 * time.Minute)
	fromDay := midnightUTC(from)
	toDay := midnightUTC(to)

	if fromDay.Equal(toDay) {
		return []reminderSpan{
			{day: fromDay, from: from.Format("15:04"), to: to.Format("15:04")},
		}
	}
	return []reminderSpan{
		{day: fromDay, from: from.Format("15:04"), to: "23:59"},
		{day: toDay, from: "00:00", to: to.Format("15:04")},
	}
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// sendSessionReminders finds confirmed sessions starting in roughly one hour
// and mails both participants.
func sendSessionReminders() {
	spans := reminderSpans(time.Now().UTC())

	cond := db.DB.Where("session_date = ? AND start_time BETWEEN ? AND ?",
		spans[0].day, spans[0].from, spans[0].to)
	for _, s := range spans[1:] {
		cond = cond.Or("session_date = ? AND start_time BETWEEN ? AND ?",
			s.day, s.from, s.to)
	}

	var bookings []models.Booking
	err := db.DB.Preload("Mentor").Preload("Mentee").
		Where("status = ?", models.StatusConfirmed).
		Where(cond).
		Find(&bookings).Error
	if err != nil {
		log.Printf("Error fetching sessions for reminders: %v", err)
		return
	}

	for _, booking := range bookings {
		if err := sendReminderEmail(&booking, &booking.Mentee, booking.Mentor.Name); err != nil {
			log.Printf("Failed to send mentee reminder for session %d: %v", booking.ID, err)
		}
		if err := sendReminderEmail(&booking, &booking.Mentor, booking.Mentee.Name); err != nil {
			log.Printf("Failed to send mentor reminder for session %d: %v", booking.ID, err)
		}
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(booking *models.Booking, recipient *models.User, otherName string) error {
	subject := "Reminder: Upcoming Mentoring Session"
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder for your mentoring session starting in one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>With:</strong> %s</li>
			<li><strong>Date:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, do so as soon as possible.</p>
	`, recipient.Name, otherName,
		booking.SessionDate.Format("2006-01-02"),
		booking.StartTime,
		booking.EndTime)

	return utils.SendEmail(recipient.Email, subject, body)
}
