// Package layout maps a week's tasks and events onto the calendar grid:
// vertical pixel geometry within a day column, the single slot row each
// render attaches to, and the split applied to items that cross midnight.
package layout

import (
	"fmt"
	"time"

	"weekpulse/internal/models"
	"weekpulse/internal/timeutil"
)

const (
	// SlotMinutes is the grid resolution: one row per half hour.
	SlotMinutes = 30

	// SlotHeight is the pixel height of one 30-minute slot row.
	SlotHeight = 72

	// Events are stacked at the top of a day column in insertion order,
	// independent of their time of day.
	EventStackTop   = 12
	EventStackStep  = 36
	EventCardHeight = 32
	eventZIndex     = 10
	taskZIndex      = 20
)

// Segment is one rendered span of a task within a single day column. A
// task whose end time precedes its start time crosses midnight and yields
// two segments; the second carries Continuation.
type Segment struct {
	Date         string  `json:"date"`
	StartMinutes int     `json:"start_minutes"`
	EndMinutes   int     `json:"end_minutes"`
	Top          float64 `json:"top"`
	Height       float64 `json:"height"`
	Slot         string  `json:"slot"`
	Continuation bool    `json:"continuation,omitempty"`
}

// Segments computes the rendered spans for a timed item on the given day.
// slots is the day's ordered slot label list; geometry is relative to its
// first slot. A zero-duration item (end == start) yields one segment of
// height zero.
func Segments(date, start, end string, slots []string) ([]Segment, error) {
	if len(slots) == 0 {
		return nil, fmt.Errorf("empty slot list")
	}
	startMin, err := timeutil.TimeToMinutes(start)
	if err != nil {
		return nil, err
	}
	endMin, err := timeutil.TimeToMinutes(end)
	if err != nil {
		return nil, err
	}
	firstSlot, err := timeutil.TimeToMinutes(slots[0])
	if err != nil {
		return nil, err
	}

	if endMin >= startMin {
		return []Segment{segment(date, startMin, endMin, firstSlot, slots, false)}, nil
	}

	// Crosses midnight: render start..24:00 on this day and 00:00..end on
	// the following day, each against that day's own slot list.
	day, err := timeutil.ParseDate(date)
	if err != nil {
		return nil, err
	}
	next := timeutil.FormatDate(day.AddDate(0, 0, 1))
	return []Segment{
		segment(date, startMin, timeutil.MinutesPerDay, firstSlot, slots, false),
		segment(next, 0, endMin, firstSlot, slots, true),
	}, nil
}

func segment(date string, startMin, endMin, firstSlot int, slots []string, continuation bool) Segment {
	return Segment{
		Date:         date,
		StartMinutes: startMin,
		EndMinutes:   endMin,
		Top:          float64(startMin-firstSlot) / SlotMinutes * SlotHeight,
		Height:       float64(endMin-startMin) / SlotMinutes * SlotHeight,
		Slot:         slotFor(slots, startMin, firstSlot),
		Continuation: continuation,
	}
}

// slotFor picks the single slot row an item render is attached to, so a
// span covering several rows is emitted exactly once.
func slotFor(slots []string, startMin, firstSlot int) string {
	if startMin <= firstSlot {
		return slots[0]
	}
	idx := (startMin - firstSlot) / SlotMinutes
	if idx >= len(slots) {
		idx = len(slots) - 1
	}
	return slots[idx]
}

// Box is a positioned render of a task segment or a stacked event.
type Box struct {
	Kind    string   `json:"kind"`
	ID      int      `json:"id"`
	Title   string   `json:"title"`
	Color   string   `json:"color"`
	Top     float64  `json:"top"`
	Height  float64  `json:"height"`
	Slot    string   `json:"slot,omitempty"`
	ZIndex  int      `json:"z_index"`
	Segment *Segment `json:"segment,omitempty"`
}

// DayColumn is one day of the weekly grid with its placed boxes.
type DayColumn struct {
	Date  string `json:"date"`
	Boxes []Box  `json:"boxes"`
}

// PlaceWeek lays out a week of tasks and events over seven day columns
// starting at weekStart. Overlapping items are layered by z-index only;
// no reflow or collision resolution is performed. Midnight-crossing
// segments that spill past the week's last day are dropped.
func PlaceWeek(weekStart time.Time, slots []string, tasks []models.ScheduledTask, events []models.Event) ([]DayColumn, error) {
	days := make([]DayColumn, 7)
	index := make(map[string]int, 7)
	for i := range days {
		date := timeutil.FormatDate(weekStart.AddDate(0, 0, i))
		days[i].Date = date
		days[i].Boxes = []Box{}
		index[date] = i
	}

	// Events stack at the top of their column in insertion order.
	stacked := make(map[string]int, 7)
	for _, ev := range events {
		i, ok := index[ev.Date]
		if !ok {
			continue
		}
		n := stacked[ev.Date]
		stacked[ev.Date]++
		days[i].Boxes = append(days[i].Boxes, Box{
			Kind:   "event",
			ID:     ev.ID,
			Title:  ev.Title,
			Color:  ev.Color,
			Top:    float64(EventStackTop + n*EventStackStep),
			Height: EventCardHeight,
			ZIndex: eventZIndex,
		})
	}

	for _, task := range tasks {
		segs, err := Segments(task.Date, task.StartTime, task.EndTime, slots)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", task.ID, err)
		}
		for _, seg := range segs {
			i, ok := index[seg.Date]
			if !ok {
				continue
			}
			s := seg
			days[i].Boxes = append(days[i].Boxes, Box{
				Kind:    "task",
				ID:      task.ID,
				Title:   task.Title,
				Color:   task.Color,
				Top:     seg.Top,
				Height:  seg.Height,
				Slot:    seg.Slot,
				ZIndex:  taskZIndex,
				Segment: &s,
			})
		}
	}

	return days, nil
}

// Reschedule re-derives an item's date and times from a drag target. The
// new start is the target slot's time, the new date is the target
// column's date, and the duration is preserved; an end past midnight
// wraps to an earlier HH:MM on the next day, matching the storage
// convention for midnight-crossing items.
func Reschedule(start, end, targetDate, targetSlot string) (date, newStart, newEnd string, err error) {
	startMin, err := timeutil.TimeToMinutes(start)
	if err != nil {
		return "", "", "", err
	}
	endMin, err := timeutil.TimeToMinutes(end)
	if err != nil {
		return "", "", "", err
	}
	slotMin, err := timeutil.TimeToMinutes(targetSlot)
	if err != nil {
		return "", "", "", err
	}
	if _, err := timeutil.ParseDate(targetDate); err != nil {
		return "", "", "", err
	}

	duration := endMin - startMin
	if duration < 0 {
		duration += timeutil.MinutesPerDay
	}
	return targetDate,
		timeutil.MinutesToTime(slotMin),
		timeutil.MinutesToTime((slotMin + duration) % timeutil.MinutesPerDay),
		nil
}
