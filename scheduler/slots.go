package scheduler

import (
	"sort"

	"mentorhub/models"
)

// TimeSlot is one bookable 1-hour window on a concrete date.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// GenerateSlots computes the open 1-hour slots for one mentor and one date.
// Windows must already be filtered to the date's weekday and is_available =
// true; bookings must already be filtered to the same mentor and date with
// status != cancelled.
//
// Each window is cut into consecutive 1-hour slots starting at its start
// time; a trailing span shorter than a full hour is dropped. A slot is taken
// when an existing booking has the same start time — bookings that overlap a
// candidate without sharing its start are not detected, which is the
// long-standing behavior callers rely on while every slot is exactly one
// hour. Overlapping windows yield each slot once.
func GenerateSlots(windows []models.AvailabilityWindow, bookings []models.Booking) ([]TimeSlot, error) {
	booked := make(map[string]bool, len(bookings))
	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		booked[b.StartTime] = true
	}

	seen := make(map[int]bool)
	starts := make([]int, 0)

	for _, w := range windows {
		if !w.IsAvailable {
			continue
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
			return nil, validationError("availability window start must be before end")
		}

		for s := start; s+slotMinutes <= end; s += slotMinutes {
			if seen[s] || booked[formatClock(s)] {
				continue
			}
			seen[s] = true
			starts = append(starts, s)
		}
	}

	sort.Ints(starts)

	slots := make([]TimeSlot, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, TimeSlot{
			StartTime: formatClock(s),
			EndTime:   formatClock(s + slotMinutes),
		})
	}
	return slots, nil
}

// slotWithinWindows reports whether a full slot starting at startMinutes
// fits inside any of the given windows, ignoring existing bookings.
func slotWithinWindows(windows []models.AvailabilityWindow, startMinutes int) bool {
	for _, w := range windows {
		if !w.IsAvailable {
			continue
		}
		ws, err := parseClock(w.StartTime)
		if err != nil {
			continue
		}
		we, err := parseClock(w.EndTime)
		if err != nil {
			continue
		}
		for s := ws; s+slotMinutes <= we; s += slotMinutes {
			if s == startMinutes {
				return true
			}
		}
	}
	return false
}
