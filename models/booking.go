package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking is a reserved 1-hour session between a mentor and a mentee.
// SessionDate carries the calendar date only (stored at midnight UTC);
// StartTime/EndTime are "HH:MM" clock strings. RoomID is the opaque token
// the video-session service uses to rendezvous the two participants.
type Booking struct {
	gorm.Model
	MentorID    uint          `json:"mentor_id" gorm:"index:idx_bookings_mentor_date"`
	Mentor      User          `json:"mentor,omitempty" gorm:"foreignKey:MentorID"`
	MenteeID    uint          `json:"mentee_id" gorm:"index"`
	Mentee      User          `json:"mentee,omitempty" gorm:"foreignKey:MenteeID"`
	SessionDate time.Time     `json:"session_date" gorm:"index:idx_bookings_mentor_date"`
	StartTime   string        `json:"start_time" gorm:"size:5"`
	EndTime     string        `json:"end_time" gorm:"size:5"`
	Status      BookingStatus `json:"status" gorm:"size:16;index"`
	Notes       *string       `json:"notes,omitempty"`
	RoomID      string        `json:"room_id"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	return nil
}

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to
// another. Legal moves: pending -> confirmed, pending -> cancelled,
// confirmed -> completed. Completed and cancelled are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted
	}
	return false
}
