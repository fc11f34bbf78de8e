package api

import (
	"weekpulse/internal/database"
	"weekpulse/internal/models"
	"weekpulse/internal/timeutil"

	"github.com/gofiber/fiber/v2"
)

const reflectionColumns = "id, scheduled_task_id, date, notes, rating_productivity, rating_energy, rating_focus, rating_satisfaction"

func scanReflection(row rowScanner) (models.Reflection, error) {
	var r models.Reflection
	err := row.Scan(
		&r.ID, &r.ScheduledTaskID, &r.Date, &r.Notes,
		&r.RatingProductivity, &r.RatingEnergy, &r.RatingFocus, &r.RatingSatisfaction,
	)
	return r, err
}

// ListReflectionsHandler returns reflections, optionally narrowed by date
// or taskId query params.
func ListReflectionsHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := "SELECT " + reflectionColumns + " FROM reflections"
		args := []any{}
		where := ""

		if date := c.Query("date"); date != "" {
			where = " WHERE date = ?"
			args = append(args, date)
		}
		if taskID := c.Query("taskId"); taskID != "" {
			if where == "" {
				where = " WHERE scheduled_task_id = ?"
			} else {
				where += " AND scheduled_task_id = ?"
			}
			args = append(args, taskID)
		}

		rows, err := db.Query(query+where+" ORDER BY date DESC, id DESC", args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		reflections := []models.Reflection{}
		for rows.Next() {
			r, err := scanReflection(rows)
			if err != nil {
				return err
			}
			reflections = append(reflections, r)
		}
		return c.JSON(reflections)
	}
}

func CreateReflectionHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateReflectionRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if req.Date == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Date is required")
		}
		if _, err := timeutil.ParseDate(req.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		}
		for _, rating := range []*int{req.RatingProductivity, req.RatingEnergy, req.RatingFocus, req.RatingSatisfaction} {
			if rating != nil && (*rating < 1 || *rating > 5) {
				return fiber.NewError(fiber.StatusBadRequest, "Ratings must be 1-5")
			}
		}

		res, err := db.Exec(
			`INSERT INTO reflections (scheduled_task_id, date, notes, rating_productivity, rating_energy, rating_focus, rating_satisfaction)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			req.ScheduledTaskID, req.Date, req.Notes,
			req.RatingProductivity, req.RatingEnergy, req.RatingFocus, req.RatingSatisfaction,
		)
		if err != nil {
			return err
		}

		reflection, err := scanReflection(db.QueryRow(
			"SELECT "+reflectionColumns+" FROM reflections WHERE id = ?", res.LastInsertID,
		))
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(reflection)
	}
}
