package api

import (
	"fmt"
	"strings"

	"weekpulse/internal/timeutil"
)

// buildUpdate turns a request body into a SET clause over the allowed
// columns only, in their declared order. Unknown keys are ignored, the
// way the original partial-update endpoints behaved. Boolean columns
// arriving as JSON numbers are coerced; date and time columns are
// validated so a partial update cannot store a value the layout engine
// chokes on later.
func buildUpdate(body map[string]any, allowed []string) (string, []any, error) {
	var sets []string
	var args []any
	for _, col := range allowed {
		value, ok := body[col]
		if !ok {
			continue
		}
		if col == "completed" || col == "published" {
			value = coerceBool(value)
		}
		if err := validateUpdateValue(col, value); err != nil {
			return "", nil, err
		}
		sets = append(sets, col+" = ?")
		args = append(args, value)
	}
	if len(sets) == 0 {
		return "", nil, fmt.Errorf("no updatable fields in request body")
	}
	return strings.Join(sets, ", "), args, nil
}

func validateUpdateValue(col string, value any) error {
	switch col {
	case "date":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("date must be a string")
		}
		if _, err := timeutil.ParseDate(s); err != nil {
			return fmt.Errorf("invalid date, expected YYYY-MM-DD")
		}
	case "start_time", "end_time":
		// Events may clear their times back to all-day.
		if value == nil {
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%s must be a string", col)
		}
		if _, err := timeutil.TimeToMinutes(s); err != nil {
			return fmt.Errorf("invalid %s, expected HH:MM", col)
		}
	}
	return nil
}

func coerceBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	}
	return false
}
