package api

import (
	"fmt"
	"time"

	"weekpulse/internal/database"
	"weekpulse/internal/logger"
	"weekpulse/internal/models"
	"weekpulse/internal/recurrence"
	"weekpulse/internal/timeutil"
)

// ExtendRecurrenceHorizons tops up the materialized window of every
// recurring series. The initial expansion at creation time covers twelve
// weeks from the parent date; as the calendar advances, this job projects
// each parent's rule onto the window ending twelve weeks from today and
// inserts the occurrences that do not exist yet. It runs nightly and is
// safe to run repeatedly.
func ExtendRecurrenceHorizons(db database.DB) error {
	rows, err := db.Query(
		"SELECT " + taskColumns + " FROM scheduled_tasks WHERE recurrence_rule IS NOT NULL",
	)
	if err != nil {
		return fmt.Errorf("load recurrence parents: %w", err)
	}
	parents := []models.ScheduledTask{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			rows.Close()
			return err
		}
		parents = append(parents, t)
	}
	rows.Close()

	today := time.Now()
	until := today.AddDate(0, 0, recurrence.HorizonDays)
	created := 0

	for _, p := range parents {
		rule := recurrence.Rule(*p.RecurrenceRule)
		if !recurrence.Valid(rule) {
			logger.Warn("skipping parent with unknown recurrence rule", "id", p.ID, "rule", rule)
			continue
		}
		parentDate, err := timeutil.ParseDate(p.Date)
		if err != nil {
			logger.Warn("skipping parent with bad date", "id", p.ID, "date", p.Date)
			continue
		}

		existing := map[string]bool{}
		childRows, err := db.Query(
			"SELECT date FROM scheduled_tasks WHERE recurrence_parent_id = ?", p.ID,
		)
		if err != nil {
			return err
		}
		for childRows.Next() {
			var d string
			if err := childRows.Scan(&d); err != nil {
				childRows.Close()
				return err
			}
			existing[d] = true
		}
		childRows.Close()

		missing := []string{}
		for _, occurrence := range recurrence.Occurrences(parentDate, rule, today, until) {
			date := timeutil.FormatDate(occurrence)
			if !existing[date] {
				missing = append(missing, date)
			}
		}
		if len(missing) == 0 {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		for _, date := range missing {
			_, err := tx.Exec(
				`INSERT INTO scheduled_tasks (title, description, date, start_time, end_time, color, recurrence_parent_id)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.Title, p.Description, date, p.StartTime, p.EndTime, p.Color, p.ID,
			)
			if err != nil {
				tx.Rollback()
				return fmt.Errorf("extend series %d: %w", p.ID, err)
			}
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		created += len(missing)
	}

	if created > 0 {
		logger.Info("extended recurrence horizons", "instances_created", created)
	}
	return nil
}
