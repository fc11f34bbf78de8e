package api

import (
	"strconv"

	"weekpulse/internal/database"
	"weekpulse/internal/models"
	"weekpulse/internal/recurrence"
	"weekpulse/internal/timeutil"

	"github.com/gofiber/fiber/v2"
)

const taskColumns = `id, title, description, date, start_time, end_time, color, completed,
	completed_at, not_completed_reason, reflection_notes, recurrence_rule,
	recurrence_parent_id, template_task_id, created_at`

// Columns a PUT may overwrite. The recurrence columns are deliberately
// absent: parents and instances are only ever written by the expander, so
// an instance carrying its own rule is unrepresentable through the API.
var taskUpdateColumns = []string{
	"title", "description", "date", "start_time", "end_time", "color",
	"completed", "completed_at", "not_completed_reason", "reflection_notes",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.ScheduledTask, error) {
	var t models.ScheduledTask
	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Date, &t.StartTime, &t.EndTime,
		&t.Color, &t.Completed, &t.CompletedAt, &t.NotCompletedReason,
		&t.ReflectionNotes, &t.RecurrenceRule, &t.RecurrenceParentID,
		&t.TemplateTaskID, &t.CreatedAt,
	)
	return t, err
}

// ListTasksHandler returns tasks whose date falls in the inclusive
// [startDate, endDate] range, ordered by date then start time.
func ListTasksHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startDate := c.Query("startDate")
		endDate := c.Query("endDate")
		if startDate == "" || endDate == "" {
			return fiber.NewError(fiber.StatusBadRequest, "startDate and endDate are required")
		}

		rows, err := db.Query(
			"SELECT "+taskColumns+" FROM scheduled_tasks WHERE date >= ? AND date <= ? ORDER BY date, start_time",
			startDate, endDate,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		tasks := []models.ScheduledTask{}
		for rows.Next() {
			t, err := scanTask(rows)
			if err != nil {
				return err
			}
			tasks = append(tasks, t)
		}
		return c.JSON(tasks)
	}
}

// CreateTaskHandler stores a task. When a recurrence rule is present the
// row becomes the parent of a series and its occurrences over the next
// twelve weeks are materialized in the same transaction.
func CreateTaskHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if req.Title == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Title, date, start_time and end_time are required")
		}
		startDate, err := timeutil.ParseDate(req.Date)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		}
		if _, err := timeutil.TimeToMinutes(req.StartTime); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid start_time")
		}
		if _, err := timeutil.TimeToMinutes(req.EndTime); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid end_time")
		}

		var rule recurrence.Rule
		if req.RecurrenceRule != nil {
			rule = recurrence.Rule(*req.RecurrenceRule)
			if !recurrence.Valid(rule) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid recurrence_rule")
			}
		}

		color := req.Color
		if color == "" {
			color = "#3b82f6"
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		res, err := tx.Exec(
			`INSERT INTO scheduled_tasks (title, description, date, start_time, end_time, color, recurrence_rule)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			req.Title, req.Description, req.Date, req.StartTime, req.EndTime, color, req.RecurrenceRule,
		)
		if err != nil {
			return err
		}
		parentID := res.LastInsertID

		instances := 0
		if rule != "" {
			for _, occurrence := range recurrence.Expand(startDate, rule) {
				_, err := tx.Exec(
					`INSERT INTO scheduled_tasks (title, description, date, start_time, end_time, color, recurrence_parent_id)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
					req.Title, req.Description, timeutil.FormatDate(occurrence), req.StartTime, req.EndTime, color, parentID,
				)
				if err != nil {
					return err
				}
				instances++
			}
		}

		if err := tx.Commit(); err != nil {
			return err
		}

		task, err := scanTask(db.QueryRow(
			"SELECT "+taskColumns+" FROM scheduled_tasks WHERE id = ?", parentID,
		))
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(models.CreateTaskResponse{
			ScheduledTask:    task,
			InstancesCreated: instances,
		})
	}
}

// UpdateTaskHandler overwrites the named columns of a task. No optimistic
// concurrency: last write wins.
func UpdateTaskHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid task ID")
		}

		var body map[string]any
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		set, args, err := buildUpdate(body, taskUpdateColumns)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		args = append(args, taskID)
		res, err := db.Exec("UPDATE scheduled_tasks SET "+set+" WHERE id = ?", args...)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// DeleteTaskHandler removes a task. Deleting a recurrence parent also
// removes its generated instances.
func DeleteTaskHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid task ID")
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		if _, err := tx.Exec("DELETE FROM scheduled_tasks WHERE recurrence_parent_id = ?", taskID); err != nil {
			return err
		}
		res, err := tx.Exec("DELETE FROM scheduled_tasks WHERE id = ?", taskID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Task not found")
		}

		if err := tx.Commit(); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
