// Package timeutil holds the date and clock arithmetic shared by the
// calendar handlers, the recurrence expander and the layout engine.
// Dates are ISO day strings (2006-01-02), times are HH:MM wall-clock
// strings; both are stored as-is in the database.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the ISO day format used everywhere a date crosses the
	// API or hits storage.
	DateLayout = "2006-01-02"

	// MinutesPerDay is the number of wall-clock minutes in one day.
	MinutesPerDay = 24 * 60
)

// WeekStart returns the Monday of the week containing t, at the same
// clock time. Sunday maps back six days.
func WeekStart(t time.Time) time.Time {
	diff := int(time.Monday - t.Weekday())
	if t.Weekday() == time.Sunday {
		diff = -6
	}
	return t.AddDate(0, 0, diff)
}

// WeekEnd returns the Sunday closing the week containing t.
func WeekEnd(t time.Time) time.Time {
	return WeekStart(t).AddDate(0, 0, 6)
}

// FormatDate renders t as an ISO day string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO day string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// TimeToMinutes converts an HH:MM string to minutes since midnight.
func TimeToMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hours*60 + minutes, nil
}

// MinutesToTime renders minutes since midnight as an HH:MM string.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// TimeSlots generates the HH:MM labels of the calendar grid rows,
// [startHour, endHour) at the given interval.
func TimeSlots(startHour, endHour, intervalMinutes int) []string {
	var slots []string
	for hour := startHour; hour < endHour; hour++ {
		for minute := 0; minute < 60; minute += intervalMinutes {
			slots = append(slots, MinutesToTime(hour*60+minute))
		}
	}
	return slots
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
