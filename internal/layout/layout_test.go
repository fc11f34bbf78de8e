package layout_test

import (
	"testing"

	"weekpulse/internal/layout"
	"weekpulse/internal/models"
	"weekpulse/internal/timeutil"
)

func fullDaySlots() []string {
	return timeutil.TimeSlots(0, 24, layout.SlotMinutes)
}

func TestSegmentsGeometry(t *testing.T) {
	segs, err := layout.Segments("2024-01-01", "09:00", "10:30", fullDaySlots())
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}

	seg := segs[0]
	// 09:00 is 18 slot rows from midnight at 72px each.
	if seg.Top != 18*72 {
		t.Fatalf("Expected top %d, got %f", 18*72, seg.Top)
	}
	// 90 minutes spans 3 rows.
	if seg.Height != 3*72 {
		t.Fatalf("Expected height %d, got %f", 3*72, seg.Height)
	}
	if seg.Slot != "09:00" {
		t.Fatalf("Expected slot 09:00, got %s", seg.Slot)
	}
	if seg.Continuation {
		t.Fatal("Single-day segment must not be a continuation")
	}
}

func TestSegmentsQuarterHourGeometry(t *testing.T) {
	// Off-grid times get fractional pixel geometry but attach to the
	// enclosing slot row.
	segs, err := layout.Segments("2024-01-01", "09:15", "09:45", fullDaySlots())
	if err != nil {
		t.Fatal(err)
	}
	seg := segs[0]
	if seg.Top != 555.0/30*72 {
		t.Fatalf("Expected top %f, got %f", 555.0/30*72, seg.Top)
	}
	if seg.Height != 72 {
		t.Fatalf("Expected height 72, got %f", seg.Height)
	}
	if seg.Slot != "09:00" {
		t.Fatalf("Expected slot 09:00, got %s", seg.Slot)
	}
}

func TestSegmentsZeroDuration(t *testing.T) {
	segs, err := layout.Segments("2024-01-01", "09:00", "09:00", fullDaySlots())
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 1 {
		t.Fatalf("Expected 1 segment, got %d", len(segs))
	}
	if segs[0].Height != 0 {
		t.Fatalf("Expected zero height, got %f", segs[0].Height)
	}
}

func TestSegmentsMidnightCrossing(t *testing.T) {
	segs, err := layout.Segments("2024-01-01", "23:00", "01:00", fullDaySlots())
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) != 2 {
		t.Fatalf("Expected 2 segments, got %d", len(segs))
	}

	first, second := segs[0], segs[1]
	if first.Date != "2024-01-01" || second.Date != "2024-01-02" {
		t.Fatalf("Expected segments on consecutive days, got %s and %s", first.Date, second.Date)
	}
	if first.EndMinutes != timeutil.MinutesPerDay {
		t.Fatalf("Expected first segment to end at midnight, got %d", first.EndMinutes)
	}
	if second.StartMinutes != 0 {
		t.Fatalf("Expected second segment to start at midnight, got %d", second.StartMinutes)
	}
	if !second.Continuation {
		t.Fatal("Expected second segment to carry the continuation flag")
	}

	total := (first.EndMinutes - first.StartMinutes) + (second.EndMinutes - second.StartMinutes)
	if total != 120 {
		t.Fatalf("Expected segments to cover 120 minutes, got %d", total)
	}
}

func TestSegmentsEmptySlots(t *testing.T) {
	if _, err := layout.Segments("2024-01-01", "09:00", "10:00", nil); err == nil {
		t.Fatal("Expected error for empty slot list")
	}
}

func TestPlaceWeek(t *testing.T) {
	weekStart, _ := timeutil.ParseDate("2024-01-01")
	slots := fullDaySlots()

	tasks := []models.ScheduledTask{
		{ID: 1, Title: "Deep work", Color: "#3b82f6", Date: "2024-01-01", StartTime: "09:00", EndTime: "11:00"},
		{ID: 2, Title: "Night shift", Color: "#3b82f6", Date: "2024-01-02", StartTime: "23:00", EndTime: "01:00"},
	}
	events := []models.Event{
		{ID: 10, Title: "Standup", Color: "#ef4444", Date: "2024-01-01"},
		{ID: 11, Title: "Release", Color: "#ef4444", Date: "2024-01-01"},
	}

	days, err := layout.PlaceWeek(weekStart, slots, tasks, events)
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 7 {
		t.Fatalf("Expected 7 day columns, got %d", len(days))
	}
	if days[0].Date != "2024-01-01" || days[6].Date != "2024-01-07" {
		t.Fatalf("Expected week 2024-01-01..2024-01-07, got %s..%s", days[0].Date, days[6].Date)
	}

	// Monday: two stacked events plus one task box.
	monday := days[0].Boxes
	if len(monday) != 3 {
		t.Fatalf("Expected 3 boxes on Monday, got %d", len(monday))
	}
	if monday[0].Kind != "event" || monday[0].Top != 12 {
		t.Fatalf("Expected first event at top 12, got %s at %f", monday[0].Kind, monday[0].Top)
	}
	if monday[1].Top != 48 {
		t.Fatalf("Expected second event stacked at top 48, got %f", monday[1].Top)
	}
	task := monday[2]
	if task.Kind != "task" || task.ID != 1 {
		t.Fatalf("Expected task 1, got %s %d", task.Kind, task.ID)
	}
	if task.ZIndex <= monday[0].ZIndex {
		t.Fatal("Expected tasks to layer above events")
	}

	// The midnight crosser renders on Tuesday and continues on Wednesday.
	if len(days[1].Boxes) != 1 || len(days[2].Boxes) != 1 {
		t.Fatalf("Expected the night shift split across two days, got %d and %d boxes",
			len(days[1].Boxes), len(days[2].Boxes))
	}
	cont := days[2].Boxes[0]
	if cont.Segment == nil || !cont.Segment.Continuation {
		t.Fatal("Expected Wednesday's box to be a continuation segment")
	}
}

func TestPlaceWeekDropsSpillPastSunday(t *testing.T) {
	weekStart, _ := timeutil.ParseDate("2024-01-01")
	tasks := []models.ScheduledTask{
		{ID: 1, Title: "Overnight", Color: "#3b82f6", Date: "2024-01-07", StartTime: "23:00", EndTime: "02:00"},
	}

	days, err := layout.PlaceWeek(weekStart, fullDaySlots(), tasks, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(days[6].Boxes) != 1 {
		t.Fatalf("Expected 1 box on Sunday, got %d", len(days[6].Boxes))
	}
	for i := 0; i < 6; i++ {
		if len(days[i].Boxes) != 0 {
			t.Fatalf("Expected day %d empty, got %d boxes", i, len(days[i].Boxes))
		}
	}
}

func TestReschedulePreservesDuration(t *testing.T) {
	date, start, end, err := layout.Reschedule("09:00", "10:30", "2024-01-05", "14:00")
	if err != nil {
		t.Fatal(err)
	}
	if date != "2024-01-05" || start != "14:00" || end != "15:30" {
		t.Fatalf("Expected 2024-01-05 14:00-15:30, got %s %s-%s", date, start, end)
	}
}

func TestRescheduleMidnightCrosser(t *testing.T) {
	// A 23:00-01:00 item keeps its 2h duration; dropped at 23:30 the end
	// wraps to 01:30 the next day.
	date, start, end, err := layout.Reschedule("23:00", "01:00", "2024-01-05", "23:30")
	if err != nil {
		t.Fatal(err)
	}
	if date != "2024-01-05" || start != "23:30" || end != "01:30" {
		t.Fatalf("Expected 2024-01-05 23:30-01:30, got %s %s-%s", date, start, end)
	}
}

func TestRescheduleRejectsBadInput(t *testing.T) {
	if _, _, _, err := layout.Reschedule("09:00", "10:00", "not-a-date", "14:00"); err == nil {
		t.Fatal("Expected error for invalid date")
	}
	if _, _, _, err := layout.Reschedule("09:00", "10:00", "2024-01-05", "25:99"); err == nil {
		t.Fatal("Expected error for invalid slot")
	}
}
