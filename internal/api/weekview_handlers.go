package api

import (
	"weekpulse/internal/database"
	"weekpulse/internal/layout"
	"weekpulse/internal/models"
	"weekpulse/internal/timeutil"

	"github.com/gofiber/fiber/v2"
)

// WeekViewHandler assembles one week of the calendar grid server-side:
// slot labels plus seven day columns of positioned boxes.
func WeekViewHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		weekStartParam := c.Query("weekStart")
		if weekStartParam == "" {
			return fiber.NewError(fiber.StatusBadRequest, "weekStart is required")
		}
		day, err := timeutil.ParseDate(weekStartParam)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid weekStart, expected YYYY-MM-DD")
		}

		// Any day of the week is accepted; the view always covers the
		// enclosing Monday..Sunday week.
		weekStart := timeutil.WeekStart(day)
		startDate := timeutil.FormatDate(weekStart)
		endDate := timeutil.FormatDate(timeutil.WeekEnd(weekStart))

		tasks := []models.ScheduledTask{}
		rows, err := db.Query(
			"SELECT "+taskColumns+" FROM scheduled_tasks WHERE date >= ? AND date <= ? ORDER BY date, start_time",
			startDate, endDate,
		)
		if err != nil {
			return err
		}
		for rows.Next() {
			t, err := scanTask(rows)
			if err != nil {
				rows.Close()
				return err
			}
			tasks = append(tasks, t)
		}
		rows.Close()

		events := []models.Event{}
		rows, err = db.Query(
			"SELECT "+eventColumns+" FROM events WHERE date >= ? AND date <= ? ORDER BY date, created_at",
			startDate, endDate,
		)
		if err != nil {
			return err
		}
		for rows.Next() {
			e, err := scanEvent(rows)
			if err != nil {
				rows.Close()
				return err
			}
			events = append(events, e)
		}
		rows.Close()

		slots := timeutil.TimeSlots(0, 24, layout.SlotMinutes)
		days, err := layout.PlaceWeek(weekStart, slots, tasks, events)
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"weekStart": startDate,
			"weekEnd":   endDate,
			"slots":     slots,
			"days":      days,
		})
	}
}
