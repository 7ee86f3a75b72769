package scheduler

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"mentorhub/models"
	"mentorhub/utils"
)

// Scheduler arbitrates mentor availability and session bookings. It is
// request-scoped: construct one per handler call over the shared *gorm.DB.
type Scheduler struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Scheduler {
	return &Scheduler{db: db}
}

// ListOpenSlots returns the bookable 1-hour slots for a mentor on a date.
// Dates before today are rejected; there is no upper bound on how far ahead
// a mentor can be booked. A mentor with no availability for that weekday
// yields an empty list.
func (s *Scheduler) ListOpenSlots(mentorID uint, date string) ([]TimeSlot, error) {
	if mentorID == 0 {
		return nil, validationError("mentor_id is required")
	}
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	if day.Before(today()) {
		return nil, validationError("date must not be in the past")
	}

	windows, err := s.availabilityFor(s.db, mentorID, day)
	if err != nil {
		return nil, err
	}
	bookings, err := s.activeBookingsFor(s.db, mentorID, day)
	if err != nil {
		return nil, err
	}

	return GenerateSlots(windows, bookings)
}

type CreateBookingInput struct {
	MentorID  uint
	MenteeID  uint
	Date      string
	StartTime string
	Notes     *string
}

// CreateBooking reserves one slot. The open-slot check reruns inside the
// commit transaction against the latest bookings, and the partial unique
// index on (mentor_id, session_date, start_time) backs it up under
// concurrent writers: whichever insert loses the race surfaces
// ErrSlotUnavailable.
func (s *Scheduler) CreateBooking(in CreateBookingInput) (models.Booking, error) {
	if in.MentorID == 0 {
		return models.Booking{}, validationError("mentor_id is required")
	}
	if in.MenteeID == 0 {
		return models.Booking{}, validationError("mentee_id is required")
	}
	if in.MentorID == in.MenteeID {
		return models.Booking{}, validationError("mentor and mentee must differ")
	}
	day, err := parseDate(in.Date)
	if err != nil {
		return models.Booking{}, err
	}
	if day.Before(today()) {
		return models.Booking{}, validationError("date must not be in the past")
	}
	start, err := parseClock(in.StartTime)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		MentorID:    in.MentorID,
		MenteeID:    in.MenteeID,
		SessionDate: day,
		StartTime:   formatClock(start),
		EndTime:     formatClock(start + slotMinutes),
		Status:      models.StatusPending,
		Notes:       in.Notes,
		RoomID:      utils.NewRoomID(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		windows, err := s.availabilityFor(tx, in.MentorID, day)
		if err != nil {
			return err
		}
		if !slotWithinWindows(windows, start) {
			return ErrNotFound
		}

		bookings, err := s.activeBookingsFor(tx, in.MentorID, day)
		if err != nil {
			return err
		}
		open, err := GenerateSlots(windows, bookings)
		if err != nil {
			return err
		}
		if !containsStart(open, booking.StartTime) {
			return ErrSlotUnavailable
		}

		if err := tx.Create(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotUnavailable
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// UpdateStatus applies one lifecycle transition. Only the owning mentor may
// confirm or decline a pending booking; either participant may complete a
// confirmed one. Illegal target states fail with ErrInvalidTransition and
// leave the booking untouched.
func (s *Scheduler) UpdateStatus(bookingID, actorID uint, newStatus models.BookingStatus) (models.Booking, error) {
	if bookingID == 0 {
		return models.Booking{}, validationError("booking_id is required")
	}
	if actorID == 0 {
		return models.Booking{}, validationError("actor_id is required")
	}
	if !models.ValidStatus(newStatus) {
		return models.Booking{}, validationError("unknown status")
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !models.CanTransition(booking.Status, newStatus) {
			return ErrInvalidTransition
		}

		switch booking.Status {
		case models.StatusPending:
			if actorID != booking.MentorID {
				return ErrForbidden
			}
		case models.StatusConfirmed:
			if actorID != booking.MentorID && actorID != booking.MenteeID {
				return ErrForbidden
			}
		}

		booking.Status = newStatus
		return tx.Model(&booking).Update("status", newStatus).Error
	})
	if err != nil {
		return models.Booking{}, err
	}
	return booking, nil
}

// ReplaceWeeklyAvailability swaps a mentor's entire weekly schedule in one
// transaction: all prior windows go, the new set comes in. Any invalid
// window aborts the whole save.
func (s *Scheduler) ReplaceWeeklyAvailability(mentorID uint, windows []models.AvailabilityWindow) ([]models.AvailabilityWindow, error) {
	if mentorID == 0 {
		return nil, validationError("mentor_id is required")
	}

	for i := range windows {
		w := &windows[i]
		if w.DayOfWeek < models.Sunday || w.DayOfWeek > models.Saturday {
			return nil, validationError("day_of_week must be between 0 and 6")
		}
		start, err := parseClock(w.StartTime)
		if err != nil {
			return nil, err
		}
		end, err := parseClock(w.EndTime)
		if err != nil {
			return nil, err
		}
		if start >= end {
			return nil, validationError("start_time must be before end_time")
		}
		w.ID = 0
		w.MentorID = mentorID
		w.StartTime = formatClock(start)
		w.EndTime = formatClock(end)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("mentor_id = ?", mentorID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}
		if len(windows) == 0 {
			return nil
		}
		return tx.Create(&windows).Error
	})
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (s *Scheduler) availabilityFor(tx *gorm.DB, mentorID uint, day time.Time) ([]models.AvailabilityWindow, error) {
	var windows []models.AvailabilityWindow
	err := tx.
		Where("mentor_id = ?", mentorID).
		Where("day_of_week = ?", int(day.Weekday())).
		Where("is_available = ?", true).
		Find(&windows).Error
	if err != nil {
		return nil, err
	}
	return windows, nil
}

func (s *Scheduler) activeBookingsFor(tx *gorm.DB, mentorID uint, day time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := tx.
		Where("mentor_id = ?", mentorID).
		Where("session_date = ?", day).
		Where("status <> ?", models.StatusCancelled).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func containsStart(slots []TimeSlot, start string) bool {
	for _, s := range slots {
		if s.StartTime == start {
			return true
		}
	}
	return false
}
