package cron

import (
	"testing"
	"time"
)

func TestReminderSpans_MidDay(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	spans := reminderSpans(now)
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	s := spans[0]
	if !s.day.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected day %v", s.day)
	}
	if s.from != "12:55" || s.to != "13:05" {
		t.Fatalf("unexpected range %s-%s", s.from, s.to)
	}
}

func TestReminderSpans_WindowFullyPastMidnight(t *testing.T) {
	// 23:10 + 55m..65m lands entirely inside the next day; sessions
	// starting 00:05-00:15 must be matched on tomorrow's date.
	now := time.Date(2026, 3, 2, 23, 10, 0, 0, time.UTC)

	spans := reminderSpans(now)
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	s := spans[0]
	if !s.day.Equal(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected next day, got %v", s.day)
	}
	if s.from != "00:05" || s.to != "00:15" {
		t.Fatalf("unexpected range %s-%s", s.from, s.to)
	}
}

func TestReminderSpans_WindowStraddlesMidnight(t *testing.T) {
	now := time.Date(2026, 3, 2, 23, 0, 0, 0, time.UTC)

	spans := reminderSpans(now)
	if len(spans) != 2 {
		t.Fatalf("expected two spans, got %d", len(spans))
	}

	tail := spans[0]
	if !tail.day.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected tail day %v", tail.day)
	}
	if tail.from != "23:55" || tail.to != "23:59" {
		t.Fatalf("unexpected tail range %s-%s", tail.from, tail.to)
	}

	head := spans[1]
	if !head.day.Equal(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected head day %v", head.day)
	}
	if head.from != "00:00" || head.to != "00:05" {
		t.Fatalf("unexpected head range %s-%s", head.from, head.to)
	}
}
