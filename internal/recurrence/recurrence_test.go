package recurrence_test

import (
	"testing"
	"time"

	"weekpulse/internal/recurrence"
	"weekpulse/internal/timeutil"
)

func date(s string) time.Time {
	t, err := timeutil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestExpandDaily(t *testing.T) {
	dates := recurrence.Expand(date("2024-01-01"), recurrence.Daily)

	if len(dates) != 84 {
		t.Fatalf("Expected 84 occurrences, got %d", len(dates))
	}
	if got := timeutil.FormatDate(dates[0]); got != "2024-01-02" {
		t.Fatalf("Expected first occurrence 2024-01-02, got %s", got)
	}
	if got := timeutil.FormatDate(dates[83]); got != "2024-03-25" {
		t.Fatalf("Expected last occurrence 2024-03-25, got %s", got)
	}
}

func TestExpandNeverIncludesStart(t *testing.T) {
	for _, rule := range []recurrence.Rule{recurrence.Daily, recurrence.Weekly, recurrence.Monthly, recurrence.Weekdays} {
		for _, d := range recurrence.Expand(date("2024-01-01"), rule) {
			if timeutil.FormatDate(d) == "2024-01-01" {
				t.Fatalf("Rule %s generated the start date itself", rule)
			}
		}
	}
}

func TestExpandWeekly(t *testing.T) {
	start := date("2024-01-01")
	dates := recurrence.Expand(start, recurrence.Weekly)

	if len(dates) != 12 {
		t.Fatalf("Expected 12 occurrences, got %d", len(dates))
	}
	for i, d := range dates {
		want := start.AddDate(0, 0, (i+1)*7)
		if !d.Equal(want) {
			t.Fatalf("Occurrence %d: expected %s, got %s", i, timeutil.FormatDate(want), timeutil.FormatDate(d))
		}
		if d.Weekday() != start.Weekday() {
			t.Fatalf("Occurrence %d fell on %s, expected %s", i, d.Weekday(), start.Weekday())
		}
	}
}

func TestExpandMonthly(t *testing.T) {
	dates := recurrence.Expand(date("2024-01-15"), recurrence.Monthly)

	want := []string{"2024-02-15", "2024-03-15", "2024-04-15"}
	if len(dates) != len(want) {
		t.Fatalf("Expected %d occurrences, got %d", len(want), len(dates))
	}
	for i, d := range dates {
		if got := timeutil.FormatDate(d); got != want[i] {
			t.Fatalf("Occurrence %d: expected %s, got %s", i, want[i], got)
		}
	}
}

func TestExpandMonthlyNormalizesShortMonths(t *testing.T) {
	// Jan 31 has no counterpart in February; AddDate rolls it forward.
	dates := recurrence.Expand(date("2024-01-31"), recurrence.Monthly)

	if got := timeutil.FormatDate(dates[0]); got != "2024-03-02" {
		t.Fatalf("Expected Jan 31 + 1 month = 2024-03-02, got %s", got)
	}
}

func TestExpandWeekdays(t *testing.T) {
	dates := recurrence.Expand(date("2024-01-01"), recurrence.Weekdays)

	if len(dates) != 84 {
		t.Fatalf("Expected 84 occurrences, got %d", len(dates))
	}
	for _, d := range dates {
		if timeutil.IsWeekend(d) {
			t.Fatalf("Weekday rule generated weekend date %s", timeutil.FormatDate(d))
		}
	}
	// 2024-01-01 is a Monday, so the first occurrence is Tuesday the 2nd.
	if got := timeutil.FormatDate(dates[0]); got != "2024-01-02" {
		t.Fatalf("Expected first occurrence 2024-01-02, got %s", got)
	}
	// 84 weekday steps stretch past 84 calendar days.
	if last := dates[83]; !last.After(date("2024-01-01").AddDate(0, 0, 84)) {
		t.Fatalf("Expected weekday horizon beyond 84 calendar days, last was %s", timeutil.FormatDate(last))
	}
}

func TestValid(t *testing.T) {
	for _, rule := range []recurrence.Rule{recurrence.Daily, recurrence.Weekly, recurrence.Monthly, recurrence.Weekdays} {
		if !recurrence.Valid(rule) {
			t.Fatalf("Expected %s to be valid", rule)
		}
	}
	if recurrence.Valid("YEARLY") {
		t.Fatal("Expected YEARLY to be invalid")
	}
	if recurrence.Valid("daily") {
		t.Fatal("Rules are case-sensitive, expected lowercase to be invalid")
	}
}

func TestOccurrencesWindow(t *testing.T) {
	dates := recurrence.Occurrences(date("2024-01-01"), recurrence.Daily, date("2024-01-10"), date("2024-01-15"))

	want := []string{"2024-01-11", "2024-01-12", "2024-01-13", "2024-01-14", "2024-01-15"}
	if len(dates) != len(want) {
		t.Fatalf("Expected %d occurrences, got %d", len(want), len(dates))
	}
	for i, d := range dates {
		if got := timeutil.FormatDate(d); got != want[i] {
			t.Fatalf("Occurrence %d: expected %s, got %s", i, want[i], got)
		}
	}
}

func TestOccurrencesMatchesExpandPattern(t *testing.T) {
	// Projected onto the initial window, Occurrences must agree with Expand.
	start := date("2024-01-01")
	expanded := recurrence.Expand(start, recurrence.Weekly)
	windowed := recurrence.Occurrences(start, recurrence.Weekly, start, start.AddDate(0, 0, recurrence.HorizonDays))

	if len(expanded) != len(windowed) {
		t.Fatalf("Expand produced %d dates, Occurrences %d", len(expanded), len(windowed))
	}
	for i := range expanded {
		if !expanded[i].Equal(windowed[i]) {
			t.Fatalf("Date %d differs: %s vs %s", i, timeutil.FormatDate(expanded[i]), timeutil.FormatDate(windowed[i]))
		}
	}
}
