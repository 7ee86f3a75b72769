package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AvailabilityWindow is one recurring weekly interval during which a mentor
// accepts session bookings. Times are clock strings in 24h "HH:MM" format.
// A mentor may hold several windows on the same weekday; windows are
// replaced as a whole week, never patched individually.
type AvailabilityWindow struct {
	gorm.Model
	MentorID    uint      `json:"mentor_id" gorm:"index:idx_availability_mentor_day"`
	DayOfWeek   DayOfWeek `json:"day_of_week" gorm:"index:idx_availability_mentor_day"`
	StartTime   string    `json:"start_time" gorm:"size:5"`
	EndTime     string    `json:"end_time" gorm:"size:5"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
}
