package timeutil_test

import (
	"testing"
	"time"

	"weekpulse/internal/timeutil"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"2024-01-01", "2024-01-01"}, // Monday maps to itself
		{"2024-01-03", "2024-01-01"}, // Wednesday
		{"2024-01-06", "2024-01-01"}, // Saturday
		{"2024-01-07", "2024-01-01"}, // Sunday closes the week, not starts it
		{"2024-01-08", "2024-01-08"}, // next Monday
	}
	for _, c := range cases {
		day, err := timeutil.ParseDate(c.day)
		if err != nil {
			t.Fatal(err)
		}
		if got := timeutil.FormatDate(timeutil.WeekStart(day)); got != c.want {
			t.Fatalf("WeekStart(%s): expected %s, got %s", c.day, c.want, got)
		}
	}
}

func TestWeekEnd(t *testing.T) {
	day, _ := timeutil.ParseDate("2024-01-03")
	if got := timeutil.FormatDate(timeutil.WeekEnd(day)); got != "2024-01-07" {
		t.Fatalf("Expected 2024-01-07, got %s", got)
	}
}

func TestTimeToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := timeutil.TimeToMinutes(c.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != c.want {
			t.Fatalf("TimeToMinutes(%s): expected %d, got %d", c.in, c.want, got)
		}
	}

	for _, bad := range []string{"", "9", "09:60", "ab:cd", "-1:00"} {
		if _, err := timeutil.TimeToMinutes(bad); err == nil {
			t.Fatalf("Expected error for %q", bad)
		}
	}
}

func TestMinutesToTime(t *testing.T) {
	if got := timeutil.MinutesToTime(570); got != "09:30" {
		t.Fatalf("Expected 09:30, got %s", got)
	}
	if got := timeutil.MinutesToTime(0); got != "00:00" {
		t.Fatalf("Expected 00:00, got %s", got)
	}
}

func TestTimeSlots(t *testing.T) {
	slots := timeutil.TimeSlots(0, 24, 30)
	if len(slots) != 48 {
		t.Fatalf("Expected 48 slots, got %d", len(slots))
	}
	if slots[0] != "00:00" {
		t.Fatalf("Expected first slot 00:00, got %s", slots[0])
	}
	if slots[47] != "23:30" {
		t.Fatalf("Expected last slot 23:30, got %s", slots[47])
	}

	working := timeutil.TimeSlots(9, 17, 30)
	if len(working) != 16 {
		t.Fatalf("Expected 16 slots, got %d", len(working))
	}
	if working[0] != "09:00" {
		t.Fatalf("Expected first slot 09:00, got %s", working[0])
	}
}

func TestIsWeekend(t *testing.T) {
	sat, _ := timeutil.ParseDate("2024-01-06")
	sun, _ := timeutil.ParseDate("2024-01-07")
	mon, _ := timeutil.ParseDate("2024-01-08")

	if !timeutil.IsWeekend(sat) || !timeutil.IsWeekend(sun) {
		t.Fatal("Expected Saturday and Sunday to be weekend")
	}
	if timeutil.IsWeekend(mon) {
		t.Fatal("Expected Monday not to be weekend")
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, bad := range []string{"01/02/2024", "2024-13-01", "yesterday"} {
		if _, err := timeutil.ParseDate(bad); err == nil {
			t.Fatalf("Expected error for %q", bad)
		}
	}
	if _, err := time.Parse(timeutil.DateLayout, "2024-02-29"); err != nil {
		t.Fatal("2024 is a leap year, Feb 29 must parse")
	}
}
