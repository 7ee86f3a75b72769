package scheduler

import (
	"testing"

	"mentorhub/models"
)

func window(day models.DayOfWeek, start, end string) models.AvailabilityWindow {
	return models.AvailabilityWindow{
		MentorID:    1,
		DayOfWeek:   day,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}
}

func booking(start string, status models.BookingStatus) models.Booking {
	return models.Booking{
		MentorID:  1,
		MenteeID:  2,
		StartTime: start,
		Status:    status,
	}
}

func startTimes(slots []TimeSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartTime)
	}
	return out
}

func TestGenerateSlots_FullDayWindow(t *testing.T) {
	slots, err := GenerateSlots(
		[]models.AvailabilityWindow{window(models.Monday, "09:00", "17:00")},
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
	got := startTimes(slots)
	if len(got) != len(want) {
		t.Fatalf("expected %d slots, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot %d: expected start %s, got %s", i, want[i], got[i])
		}
	}
	if slots[0].EndTime != "10:00" {
		t.Fatalf("expected first slot to end at 10:00, got %s", slots[0].EndTime)
	}
}

func TestGenerateSlots_BookedSlotExcluded(t *testing.T) {
	slots, err := GenerateSlots(
		[]models.AvailabilityWindow{window(models.Monday, "09:00", "17:00")},
		[]models.Booking{booking("10:00", models.StatusPending)},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 7 {
		t.Fatalf("expected 7 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.StartTime == "10:00" {
			t.Fatalf("booked slot 10:00 should not be offered")
		}
	}
}

func TestGenerateSlots_CompletedStillBlocks(t *testing.T) {
	slots, err := GenerateSlots(
		[]models.AvailabilityWindow{window(models.Monday, "09:00", "12:00")},
		[]models.Booking{
			booking("09:00", models.StatusConfirmed),
			booking("10:00", models.StatusCompleted),
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := startTimes(slots)
	if len(got) != 1 || got[0] != "11:00" {
		t.Fatalf("expected only 11:00 to remain open, got %v", got)
	}
}

func TestGenerateSlots_CancelledDoesNotBlock(t *testing.T) {
	slots, err := GenerateSlots(
		[]models.AvailabilityWindow{window(models.Monday, "09:00", "11:00")},
		[]models.Booking{booking("09:00", models.StatusCancelled)},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 2 {
		t.Fatalf("expected cancelled booking to free its slot, got %v", startTimes(slots))
	}
}

func TestGenerateSlots_TrailingPartialHourDropped(t *testing.T) {
	slots, err := GenerateSlots(
		[]models.AvailabilityWindow{window(models.Monday, "09:00", "10:30")},
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := startTimes(slots)
	if len(got) != 1 || got[0] != "09:00" {
		t.Fatalf("expected a single 09:00 slot, got %v", got)
	}
}

func TestGenerateSlots_OverlappingWindowsDeduped(t *testing.T) {
	slots, err := GenerateSlots(
		[]models.AvailabilityWindow{
			window(models.Monday, "09:00", "12:00"),
			window(models.Monday, "10:00", "13:00"),
		},
		nil,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "10:00", "11:00", "12:00"}
	got := startTimes(slots)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestGenerateSlots_UnavailableWindowSkipped(t *testing.T) {
	w := window(models.Monday, "09:00", "12:00")
	w.IsAvailable = false

	slots, err := GenerateSlots([]models.AvailabilityWindow{w}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots from an unavailable window, got %v", startTimes(slots))
	}
}

func TestGenerateSlots_NoWindows(t *testing.T) {
	slots, err := GenerateSlots(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slots == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", startTimes(slots))
	}
}

func TestGenerateSlots_InvalidWindowRejected(t *testing.T) {
	_, err := GenerateSlots(
		[]models.AvailabilityWindow{window(models.Monday, "12:00", "09:00")},
		nil,
	)
	if err == nil {
		t.Fatalf("expected error for inverted window")
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "10:75", wantErr: true},
		{in: "nope", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("parseClock(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parseClock(%q): unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("parseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
