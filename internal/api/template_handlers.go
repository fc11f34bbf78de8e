package api

import (
	"database/sql"
	"strconv"

	"weekpulse/internal/database"
	"weekpulse/internal/models"
	"weekpulse/internal/timeutil"

	"github.com/gofiber/fiber/v2"
)

const templateTaskColumns = "id, template_id, title, description, day_of_week, start_time, end_time, color"

func scanTemplateTask(row rowScanner) (models.TemplateTask, error) {
	var t models.TemplateTask
	err := row.Scan(
		&t.ID, &t.TemplateID, &t.Title, &t.Description, &t.DayOfWeek,
		&t.StartTime, &t.EndTime, &t.Color,
	)
	return t, err
}

func ListTemplatesHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := db.Query("SELECT id, name, created_at FROM templates ORDER BY created_at DESC, id DESC")
		if err != nil {
			return err
		}
		defer rows.Close()

		templates := []models.Template{}
		for rows.Next() {
			var t models.Template
			if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
				return err
			}
			templates = append(templates, t)
		}
		return c.JSON(templates)
	}
}

// GetTemplateHandler returns a template with its tasks embedded.
func GetTemplateHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		templateID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid template ID")
		}

		var t models.Template
		err = db.QueryRow(
			"SELECT id, name, created_at FROM templates WHERE id = ?", templateID,
		).Scan(&t.ID, &t.Name, &t.CreatedAt)
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Template not found")
		}
		if err != nil {
			return err
		}

		rows, err := db.Query(
			"SELECT "+templateTaskColumns+" FROM template_tasks WHERE template_id = ? ORDER BY day_of_week, start_time",
			templateID,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		t.Tasks = []models.TemplateTask{}
		for rows.Next() {
			task, err := scanTemplateTask(rows)
			if err != nil {
				return err
			}
			t.Tasks = append(t.Tasks, task)
		}
		return c.JSON(t)
	}
}

func CreateTemplateHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateTemplateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Name is required")
		}

		res, err := db.Exec("INSERT INTO templates (name) VALUES (?)", req.Name)
		if err != nil {
			return err
		}

		var t models.Template
		err = db.QueryRow(
			"SELECT id, name, created_at FROM templates WHERE id = ?", res.LastInsertID,
		).Scan(&t.ID, &t.Name, &t.CreatedAt)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

// DeleteTemplateHandler removes a template and, through the foreign key
// cascade, its tasks.
func DeleteTemplateHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		templateID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid template ID")
		}

		res, err := db.Exec("DELETE FROM templates WHERE id = ?", templateID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Template not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

func AddTemplateTaskHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		templateID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid template ID")
		}

		var req models.TemplateTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validateTemplateTask(req); err != nil {
			return err
		}

		var exists int
		err = db.QueryRow("SELECT id FROM templates WHERE id = ?", templateID).Scan(&exists)
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Template not found")
		}
		if err != nil {
			return err
		}

		color := req.Color
		if color == "" {
			color = "#3b82f6"
		}

		res, err := db.Exec(
			`INSERT INTO template_tasks (template_id, title, description, day_of_week, start_time, end_time, color)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			templateID, req.Title, req.Description, req.DayOfWeek, req.StartTime, req.EndTime, color,
		)
		if err != nil {
			return err
		}

		task, err := scanTemplateTask(db.QueryRow(
			"SELECT "+templateTaskColumns+" FROM template_tasks WHERE id = ?", res.LastInsertID,
		))
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(task)
	}
}

func UpdateTemplateTaskHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid template task ID")
		}

		var req models.TemplateTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := validateTemplateTask(req); err != nil {
			return err
		}

		res, err := db.Exec(
			`UPDATE template_tasks SET title = ?, description = ?, day_of_week = ?, start_time = ?, end_time = ?, color = ?
			WHERE id = ?`,
			req.Title, req.Description, req.DayOfWeek, req.StartTime, req.EndTime, req.Color, taskID,
		)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Template task not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

func DeleteTemplateTaskHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		taskID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid template task ID")
		}

		res, err := db.Exec("DELETE FROM template_tasks WHERE id = ?", taskID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Template task not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}

// ApplyTemplateHandler materializes a template onto a week: one scheduled
// task per template task at weekStart + day_of_week, carrying a
// back-reference to the template task it came from. Re-applying creates
// duplicates; there is no dedup.
func ApplyTemplateHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		templateID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid template ID")
		}

		var req models.ApplyTemplateRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		weekStart, err := timeutil.ParseDate(req.WeekStartDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid weekStartDate, expected YYYY-MM-DD")
		}

		var exists int
		err = db.QueryRow("SELECT id FROM templates WHERE id = ?", templateID).Scan(&exists)
		if err == sql.ErrNoRows {
			return fiber.NewError(fiber.StatusNotFound, "Template not found")
		}
		if err != nil {
			return err
		}

		rows, err := db.Query(
			"SELECT "+templateTaskColumns+" FROM template_tasks WHERE template_id = ? ORDER BY day_of_week, start_time",
			templateID,
		)
		if err != nil {
			return err
		}
		templateTasks := []models.TemplateTask{}
		for rows.Next() {
			task, err := scanTemplateTask(rows)
			if err != nil {
				rows.Close()
				return err
			}
			templateTasks = append(templateTasks, task)
		}
		rows.Close()

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		created := []models.ScheduledTask{}
		for _, tt := range templateTasks {
			date := timeutil.FormatDate(weekStart.AddDate(0, 0, tt.DayOfWeek))
			res, err := tx.Exec(
				`INSERT INTO scheduled_tasks (title, description, date, start_time, end_time, color, template_task_id)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				tt.Title, tt.Description, date, tt.StartTime, tt.EndTime, tt.Color, tt.ID,
			)
			if err != nil {
				return err
			}
			task, err := scanTask(tx.QueryRow(
				"SELECT "+taskColumns+" FROM scheduled_tasks WHERE id = ?", res.LastInsertID,
			))
			if err != nil {
				return err
			}
			created = append(created, task)
		}

		if err := tx.Commit(); err != nil {
			return err
		}
		return c.JSON(models.ApplyTemplateResponse{Success: true, Tasks: created})
	}
}

func validateTemplateTask(req models.TemplateTaskRequest) error {
	if req.Title == "" || req.StartTime == "" || req.EndTime == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Title, start_time and end_time are required")
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return fiber.NewError(fiber.StatusBadRequest, "day_of_week must be 0-6")
	}
	if _, err := timeutil.TimeToMinutes(req.StartTime); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid start_time")
	}
	if _, err := timeutil.TimeToMinutes(req.EndTime); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid end_time")
	}
	return nil
}
