package api

import (
	"strconv"

	"weekpulse/internal/database"
	"weekpulse/internal/models"
	"weekpulse/internal/timeutil"

	"github.com/gofiber/fiber/v2"
)

const eventColumns = `id, title, description, date, start_time, end_time, type, color,
	completed, completed_at, created_at`

var eventUpdateColumns = []string{
	"title", "description", "date", "start_time", "end_time", "type",
	"color", "completed", "completed_at",
}

var validEventTypes = map[string]bool{"deadline": true, "meeting": true, "event": true}

func scanEvent(row rowScanner) (models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
		&e.Type, &e.Color, &e.Completed, &e.CompletedAt, &e.CreatedAt,
	)
	return e, err
}

func ListEventsHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startDate := c.Query("startDate")
		endDate := c.Query("endDate")
		if startDate == "" || endDate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "startDate and endDate are required")
		}

		rows, err := db.Query(
			"SELECT "+eventColumns+" FROM events WHERE date >= ? AND date <= ? ORDER BY date, start_time",
			startDate, endDate,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		events := []models.Event{}
		for rows.Next() {
			e, err := scanEvent(rows)
			if err != nil {
				return err
			}
			events = append(events, e)
		}
		return c.JSON(events)
	}
}

// CreateEventHandler stores an event. Times are optional: an event with
// neither is all-day.
func CreateEventHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateEventRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if req.Title == "" || req.Date == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title and date are required")
		}
		if _, err := timeutil.ParseDate(req.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		}

		eventType := req.Type
		if eventType == "" {
			eventType = "event"
		}
		if !validEventTypes[eventType] {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid event type")
		}

		color := req.Color
		if color == "" {
			color = "#ef4444"
		}

		res, err := db.Exec(
			`INSERT INTO events (title, description, date, start_time, end_time, type, color)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			req.Title, req.Description, req.Date, req.StartTime, req.EndTime, eventType, color,
		)
		if err != nil {
			return err
		}

		event, err := scanEvent(db.QueryRow(
			"SELECT "+eventColumns+" FROM events WHERE id = ?", res.LastInsertID,
		))
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(event)
	}
}

func UpdateEventHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
		}

		var body map[string]any
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		set, args, err := buildUpdate(body, eventUpdateColumns)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		args = append(args, eventID)
		res, err := db.Exec("UPDATE events SET "+set+" WHERE id = ?", args...)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

func DeleteEventHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		eventID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
		}

		res, err := db.Exec("DELETE FROM events WHERE id = ?", eventID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
