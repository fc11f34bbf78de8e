package api

import (
	"strconv"

	"weekpulse/internal/database"
	"weekpulse/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotesHandler returns pulse notes newest first, capped by the limit
// query param (default 50).
func ListNotesHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := 50
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		rows, err := db.Query(
			"SELECT id, content, created_at FROM pulse_notes ORDER BY created_at DESC, id DESC LIMIT ?",
			limit,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		notes := []models.PulseNote{}
		for rows.Next() {
			var n models.PulseNote
			if err := rows.Scan(&n.ID, &n.Content, &n.CreatedAt); err != nil {
				return err
			}
			notes = append(notes, n)
		}
		return c.JSON(notes)
	}
}

func CreateNoteHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.CreateNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if req.Content == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Content is required")
		}

		res, err := db.Exec("INSERT INTO pulse_notes (content) VALUES (?)", req.Content)
		if err != nil {
			return err
		}

		var n models.PulseNote
		err = db.QueryRow(
			"SELECT id, content, created_at FROM pulse_notes WHERE id = ?", res.LastInsertID,
		).Scan(&n.ID, &n.Content, &n.CreatedAt)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(n)
	}
}

func DeleteNoteHandler(db database.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		noteID, err := strconv.Atoi(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid note ID")
		}

		res, err := db.Exec("DELETE FROM pulse_notes WHERE id = ?", noteID)
		if err != nil {
			return err
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Note not found")
		}
		return c.JSON(fiber.Map{"success": true})
	}
}
