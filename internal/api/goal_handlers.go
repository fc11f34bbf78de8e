package api

import (
	"strconv"

	"weekpulse/internal/database"
	"weekpulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListGoalsHandler returns the goals scoped to one week. Scoping is
// string equality on week_start, not a date range.
func ListGoalsHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		weekStart := c.Params("weekStart")

		rows, err := db.Query(
			"SELECT id, text, completed, week_start, created_at FROM weekly_goals WHERE week_start = ? ORDER BY created_at",
			weekStart,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		goals := []models.WeeklyGoal{}
		for rows.Next() {
			var g models.WeeklyGoal
			if err := rows.Scan(&g.ID, &g.Text, &g.Completed, &g.WeekStart, &g.CreatedAt); err != nil {
				return err
			}
			goals = append(goals, g)
		}
		return c.JSON(goals)
	}
}

func CreateGoalHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateGoalRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if req.Text == "" || req.WeekStart == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Text and week_start are required")
		}

		res, err := db.Exec(
			"INSERT INTO weekly_goals (text, week_start, completed) VALUES (?, ?, ?)",
			req.Text, req.WeekStart, req.Completed,
		)
		if err != nil {
			return err
		}

		var g models.WeeklyGoal
		err = db.QueryRow(
			"SELECT id, text, completed, week_start, created_at FROM weekly_goals WHERE id = ?",
			res.LastInsertID,
		).Scan(&g.ID, &g.Text, &g.Completed, &g.WeekStart, &g.CreatedAt)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(g)
	}
}

func UpdateGoalHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		goalID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid goal ID")
		}

		var req models.UpdateGoalRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		res, err := db.Exec(
			"UPDATE weekly_goals SET text = ?, completed = ? WHERE id = ?",
			req.Text, req.Completed, goalID,
		)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Goal not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

func DeleteGoalHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		goalID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid goal ID")
		}

		res, err := db.Exec("DELETE FROM weekly_goals WHERE id = ?", goalID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Goal not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
