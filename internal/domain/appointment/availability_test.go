package appointment

import (
	"testing"
	"time"

	"github.com/barbermap/booking-api/internal/models"
)

func TestAvailableSlotsFullDay(t *testing.T) {
	slots := AvailableSlots(map[string]bool{})

	if len(slots) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Fatalf("first slot = %q, want %q", slots[0], "08:00")
	}
	if slots[len(slots)-1] != "17:30" {
		t.Fatalf("last slot = %q, want %q", slots[len(slots)-1], "17:30")
	}

	seen := map[string]bool{}
	for i := 1; i < len(slots); i++ {
		if slots[i] <= slots[i-1] {
			t.Fatalf("slots not in ascending order: %v", slots)
		}
	}
	for _, s := range slots {
		if seen[s] {
			t.Fatalf("duplicate slot %q", s)
		}
		seen[s] = true
	}
}

func TestAvailableSlotsRemovesOccupied(t *testing.T) {
	slots := AvailableSlots(map[string]bool{"09:00": true})

	if len(slots) != 19 {
		t.Fatalf("expected 19 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s == "09:00" {
			t.Fatalf("occupied slot %q still present", s)
		}
	}
	if slots[0] != "08:00" || slots[1] != "08:30" || slots[2] != "09:30" {
		t.Fatalf("unexpected boundary slots: %v", slots[:3])
	}
}

func TestOccupiedSlotsDiscardsDateComponent(t *testing.T) {
	aps := []models.Appointment{
		{StartTime: time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)},
		{StartTime: time.Date(2024, 6, 10, 14, 30, 0, 0, time.Local)},
	}

	occupied := OccupiedSlots(aps)
	if len(occupied) != 2 {
		t.Fatalf("expected 2 occupied slots, got %d", len(occupied))
	}
	if !occupied["09:00"] || !occupied["14:30"] {
		t.Fatalf("unexpected occupied set: %v", occupied)
	}
}

func TestDayWindow(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	start, end := DayWindow(date)

	if !start.Equal(date) {
		t.Fatalf("window start = %v, want %v", start, date)
	}
	if !end.Equal(date.Add(24 * time.Hour)) {
		t.Fatalf("window end = %v, want %v", end, date.Add(24*time.Hour))
	}
}
