// Package recurrence turns a recurring task's rule into the concrete
// occurrence dates the calendar stores as individual rows.
package recurrence

import (
	"time"

	"weekpulse/internal/timeutil"
)

// Rule is a recurrence pattern carried by a parent scheduled task.
type Rule string

const (
	Daily    Rule = "DAILY"
	Weekly   Rule = "WEEKLY"
	Monthly  Rule = "MONTHLY"
	Weekdays Rule = "WEEKDAYS"
)

// HorizonDays is how far ahead of the parent date occurrences are
// materialized: twelve weeks.
const HorizonDays = 84

// Valid reports whether r is a known recurrence rule.
func Valid(r Rule) bool {
	switch r {
	case Daily, Weekly, Monthly, Weekdays:
		return true
	}
	return false
}

// Expand computes the occurrence dates generated for a parent task dated
// start. The parent's own date is never included.
//
//   - DAILY: every day, start+1 .. start+84.
//   - WEEKLY: every 7th day within the 84-day horizon.
//   - MONTHLY: start plus one, two and three calendar months. AddDate
//     normalizes short months (Jan 31 + 1mo lands in early March).
//   - WEEKDAYS: the next 84 Monday-Friday days; Saturdays and Sundays are
//     skipped, so the horizon stretches past 84 calendar days.
func Expand(start time.Time, r Rule) []time.Time {
	var dates []time.Time
	switch r {
	case Daily:
		for i := 1; i <= HorizonDays; i++ {
			dates = append(dates, start.AddDate(0, 0, i))
		}
	case Weekly:
		for i := 7; i <= HorizonDays; i += 7 {
			dates = append(dates, start.AddDate(0, 0, i))
		}
	case Monthly:
		for m := 1; m <= 3; m++ {
			dates = append(dates, start.AddDate(0, m, 0))
		}
	case Weekdays:
		cursor := start
		for steps := 0; steps < HorizonDays; {
			cursor = cursor.AddDate(0, 0, 1)
			if timeutil.IsWeekend(cursor) {
				continue
			}
			dates = append(dates, cursor)
			steps++
		}
	}
	return dates
}

// Occurrences projects the rule's pattern onto an arbitrary window,
// returning every occurrence date d with after < d <= until. It is used
// by the horizon worker to keep the materialized window full as time
// advances past the initial expansion.
func Occurrences(start time.Time, r Rule, after, until time.Time) []time.Time {
	var dates []time.Time
	appendInWindow := func(d time.Time) {
		if d.After(after) && !d.After(until) {
			dates = append(dates, d)
		}
	}

	switch r {
	case Daily:
		for d := start.AddDate(0, 0, 1); !d.After(until); d = d.AddDate(0, 0, 1) {
			appendInWindow(d)
		}
	case Weekly:
		for d := start.AddDate(0, 0, 7); !d.After(until); d = d.AddDate(0, 0, 7) {
			appendInWindow(d)
		}
	case Monthly:
		for m := 1; ; m++ {
			d := start.AddDate(0, m, 0)
			if d.After(until) {
				break
			}
			appendInWindow(d)
		}
	case Weekdays:
		for d := start.AddDate(0, 0, 1); !d.After(until); d = d.AddDate(0, 0, 1) {
			if timeutil.IsWeekend(d) {
				continue
			}
			appendInWindow(d)
		}
	}
	return dates
}
