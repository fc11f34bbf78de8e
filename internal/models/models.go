package models

import "time"

// RecurrenceKind classifies a scheduled task row by its role in a
// recurring series.
type RecurrenceKind string

const (
	Standalone         RecurrenceKind = "standalone"
	RecurrenceParent   RecurrenceKind = "parent"
	RecurrenceInstance RecurrenceKind = "instance"
)

type ScheduledTask struct {
	ID                 int       `json:"id"`
	Title              string    `json:"title"`
	Description        *string   `json:"description,omitempty"`
	Date               string    `json:"date"`
	StartTime          string    `json:"start_time"`
	EndTime            string    `json:"end_time"`
	Color              string    `json:"color"`
	Completed          bool      `json:"completed"`
	CompletedAt        *string   `json:"completed_at,omitempty"`
	NotCompletedReason *string   `json:"not_completed_reason,omitempty"`
	ReflectionNotes    *string   `json:"reflection_notes,omitempty"`
	RecurrenceRule     *string   `json:"recurrence_rule,omitempty"`
	RecurrenceParentID *int      `json:"recurrence_parent_id,omitempty"`
	TemplateTaskID     *int      `json:"template_task_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// RecurrenceKind reports whether the row is a standalone task, the parent
// of a recurring series, or a generated instance. A row can never be both
// parent and instance; the API refuses to construct such a state.
func (t ScheduledTask) RecurrenceKind() RecurrenceKind {
	switch {
	case t.RecurrenceRule != nil:
		return RecurrenceParent
	case t.RecurrenceParentID != nil:
		return RecurrenceInstance
	default:
		return Standalone
	}
}

type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Date        string    `json:"date"`
	StartTime   *string   `json:"start_time,omitempty"`
	EndTime     *string   `json:"end_time,omitempty"`
	Type        string    `json:"type"`
	Color       string    `json:"color"`
	Completed   bool      `json:"completed"`
	CompletedAt *string   `json:"completed_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Template struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	Tasks     []TemplateTask `json:"tasks,omitempty"`
}

type TemplateTask struct {
	ID          int     `json:"id"`
	TemplateID  int     `json:"template_id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DayOfWeek   int     `json:"day_of_week"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Color       string  `json:"color"`
}

type WeeklyGoal struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	WeekStart string    `json:"week_start"`
	CreatedAt time.Time `json:"created_at"`
}

type PulseNote struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Reflection struct {
	ID                 int     `json:"id"`
	ScheduledTaskID    *int    `json:"scheduled_task_id,omitempty"`
	Date               string  `json:"date"`
	Notes              *string `json:"notes,omitempty"`
	RatingProductivity *int    `json:"rating_productivity,omitempty"`
	RatingEnergy       *int    `json:"rating_energy,omitempty"`
	RatingFocus        *int    `json:"rating_focus,omitempty"`
	RatingSatisfaction *int    `json:"rating_satisfaction,omitempty"`
}

// BlogPost ids are caller-assigned slugs, not generated integers.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	FullContent *string   `json:"full_content,omitempty"`
	Date        string    `json:"date"`
	Theme       *string   `json:"theme,omitempty"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VoteSummary struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	Total     int `json:"total"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

type CreateTaskRequest struct {
	Title          string  `json:"title"`
	Description    *string `json:"description,omitempty"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Color          string  `json:"color,omitempty"`
	RecurrenceRule *string `json:"recurrence_rule,omitempty"`
}

// CreateTaskResponse reports the stored parent row plus how many
// recurrence instances were generated alongside it.
type CreateTaskResponse struct {
	ScheduledTask
	InstancesCreated int `json:"instances_created"`
}

type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date"`
	StartTime   *string `json:"start_time,omitempty"`
	EndTime     *string `json:"end_time,omitempty"`
	Type        string  `json:"type,omitempty"`
	Color       string  `json:"color,omitempty"`
}

type CreateGoalRequest struct {
	Text      string `json:"text"`
	WeekStart string `json:"week_start"`
	Completed bool   `json:"completed,omitempty"`
}

type UpdateGoalRequest struct {
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

type CreateNoteRequest struct {
	Content string `json:"content"`
}

type CreateTemplateRequest struct {
	Name string `json:"name"`
}

type TemplateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	DayOfWeek   int     `json:"day_of_week"`
	StartTime   string  `json:"start_time"`
	EndTime     string  `json:"end_time"`
	Color       string  `json:"color,omitempty"`
}

type ApplyTemplateRequest struct {
	WeekStartDate string `json:"weekStartDate"`
}

type ApplyTemplateResponse struct {
	Success bool            `json:"success"`
	Tasks   []ScheduledTask `json:"tasks"`
}

type CreateReflectionRequest struct {
	ScheduledTaskID    *int    `json:"scheduled_task_id,omitempty"`
	Date               string  `json:"date"`
	Notes              *string `json:"notes,omitempty"`
	RatingProductivity *int    `json:"rating_productivity,omitempty"`
	RatingEnergy       *int    `json:"rating_energy,omitempty"`
	RatingFocus        *int    `json:"rating_focus,omitempty"`
	RatingSatisfaction *int    `json:"rating_satisfaction,omitempty"`
}

type BlogPostRequest struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	FullContent *string `json:"full_content,omitempty"`
	Date        string  `json:"date"`
	Theme       *string `json:"theme,omitempty"`
	Published   *bool   `json:"published,omitempty"`
}

type VoteRequest struct {
	VoteType string `json:"vote_type"`
}
