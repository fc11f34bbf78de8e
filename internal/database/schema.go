package database

// Dates and clock times are stored as TEXT (2006-01-02 / HH:MM) in both
// backends so range filters and ordering are plain string comparisons.

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS scheduled_tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	date TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	color TEXT DEFAULT '#3b82f6',
	completed BOOLEAN DEFAULT 0,
	completed_at TEXT,
	not_completed_reason TEXT,
	reflection_notes TEXT,
	recurrence_rule TEXT,
	recurrence_parent_id INTEGER,
	template_task_id INTEGER,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT,
	date TEXT NOT NULL,
	start_time TEXT,
	end_time TEXT,
	type TEXT DEFAULT 'event',
	color TEXT DEFAULT '#ef4444',
	completed BOOLEAN DEFAULT 0,
	completed_at TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS templates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS template_tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	template_id INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	day_of_week INTEGER NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	color TEXT DEFAULT '#3b82f6',
	FOREIGN KEY (template_id) REFERENCES templates(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS weekly_goals (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text TEXT NOT NULL,
	completed BOOLEAN DEFAULT 0,
	week_start TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS pulse_notes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	content TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS reflections (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	scheduled_task_id INTEGER,
	date TEXT NOT NULL,
	notes TEXT,
	rating_productivity INTEGER,
	rating_energy INTEGER,
	rating_focus INTEGER,
	rating_satisfaction INTEGER
);

CREATE TABLE IF NOT EXISTS blog_posts (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	full_content TEXT,
	date TEXT NOT NULL,
	theme TEXT,
	published BOOLEAN DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS blog_post_votes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	post_id TEXT NOT NULL,
	ip_address TEXT NOT NULL,
	vote_type TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(post_id, ip_address)
);

CREATE INDEX IF NOT EXISTS idx_scheduled_tasks_date ON scheduled_tasks(date);
CREATE INDEX IF NOT EXISTS idx_scheduled_tasks_parent ON scheduled_tasks(recurrence_parent_id);
CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
CREATE INDEX IF NOT EXISTS idx_template_tasks_template ON template_tasks(template_id);
CREATE INDEX IF NOT EXISTS idx_weekly_goals_week ON weekly_goals(week_start);
CREATE INDEX IF NOT EXISTS idx_blog_post_votes_post ON blog_post_votes(post_id);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS scheduled_tasks (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	date TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	color TEXT DEFAULT '#3b82f6',
	completed BOOLEAN DEFAULT FALSE,
	completed_at TEXT,
	not_completed_reason TEXT,
	reflection_notes TEXT,
	recurrence_rule TEXT,
	recurrence_parent_id INTEGER,
	template_task_id INTEGER,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS events (
	id SERIAL PRIMARY KEY,
	title TEXT NOT NULL,
	description TEXT,
	date TEXT NOT NULL,
	start_time TEXT,
	end_time TEXT,
	type TEXT DEFAULT 'event',
	color TEXT DEFAULT '#ef4444',
	completed BOOLEAN DEFAULT FALSE,
	completed_at TEXT,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS templates (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS template_tasks (
	id SERIAL PRIMARY KEY,
	template_id INTEGER NOT NULL REFERENCES templates(id) ON DELETE CASCADE,
	title TEXT NOT NULL,
	description TEXT,
	day_of_week INTEGER NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	color TEXT DEFAULT '#3b82f6'
);

CREATE TABLE IF NOT EXISTS weekly_goals (
	id SERIAL PRIMARY KEY,
	text TEXT NOT NULL,
	completed BOOLEAN DEFAULT FALSE,
	week_start TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS pulse_notes (
	id SERIAL PRIMARY KEY,
	content TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS reflections (
	id SERIAL PRIMARY KEY,
	scheduled_task_id INTEGER,
	date TEXT NOT NULL,
	notes TEXT,
	rating_productivity INTEGER,
	rating_energy INTEGER,
	rating_focus INTEGER,
	rating_satisfaction INTEGER
);

CREATE TABLE IF NOT EXISTS blog_posts (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	content TEXT NOT NULL,
	full_content TEXT,
	date TEXT NOT NULL,
	theme TEXT,
	published BOOLEAN DEFAULT TRUE,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS blog_post_votes (
	id SERIAL PRIMARY KEY,
	post_id TEXT NOT NULL,
	ip_address TEXT NOT NULL,
	vote_type TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(post_id, ip_address)
);

CREATE INDEX IF NOT EXISTS idx_scheduled_tasks_date ON scheduled_tasks(date);
CREATE INDEX IF NOT EXISTS idx_scheduled_tasks_parent ON scheduled_tasks(recurrence_parent_id);
CREATE INDEX IF NOT EXISTS idx_events_date ON events(date);
CREATE INDEX IF NOT EXISTS idx_template_tasks_template ON template_tasks(template_id);
CREATE INDEX IF NOT EXISTS idx_weekly_goals_week ON weekly_goals(week_start);
CREATE INDEX IF NOT EXISTS idx_blog_post_votes_post ON blog_post_votes(post_id);
`
