package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	name    string
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		name:    "initial_schema",
		sql: `
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS profile (
  id INTEGER PRIMARY KEY CHECK(id = 1),
  name TEXT NOT NULL,
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  height_cm REAL NOT NULL CHECK(height_cm > 0),
  birth_date TEXT,
  gender TEXT CHECK(gender IN ('male', 'female', 'other')),
  activity_level TEXT NOT NULL DEFAULT 'moderate'
    CHECK(activity_level IN ('sedentary', 'light', 'moderate', 'active', 'veryActive')),
  weight_goal TEXT CHECK(weight_goal IN ('lose', 'maintain', 'gain')),
  target_weight_kg REAL,
  xp_level INTEGER NOT NULL DEFAULT 1 CHECK(xp_level >= 1),
  xp_current INTEGER NOT NULL DEFAULT 0 CHECK(xp_current >= 0),
  xp_total INTEGER NOT NULL DEFAULT 0 CHECK(xp_total >= 0),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS weight_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  entry_date TEXT NOT NULL,
  weight_kg REAL NOT NULL CHECK(weight_kg > 0),
  notes TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS meal_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  entry_date TEXT NOT NULL,
  name TEXT NOT NULL,
  calories INTEGER NOT NULL CHECK(calories >= 0),
  meal_type TEXT NOT NULL CHECK(meal_type IN ('breakfast', 'lunch', 'dinner', 'snack')),
  quality TEXT,
  description TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS exercise_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  entry_date TEXT NOT NULL,
  exercise_type TEXT NOT NULL,
  duration_min INTEGER NOT NULL CHECK(duration_min > 0),
  calories_burned INTEGER NOT NULL CHECK(calories_burned >= 0),
  intensity TEXT CHECK(intensity IN ('light', 'moderate', 'intense')),
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS mood_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  entry_date TEXT NOT NULL,
  mood TEXT NOT NULL CHECK(mood IN ('great', 'good', 'neutral', 'bad', 'awful')),
  notes TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS cycle_entries (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  entry_date TEXT NOT NULL,
  flow TEXT CHECK(flow IN ('light', 'medium', 'heavy')),
  symptoms TEXT NOT NULL DEFAULT '',
  notes TEXT,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS goals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  goal_type TEXT NOT NULL CHECK(goal_type IN ('weight', 'exercise', 'nutrition', 'other')),
  target_value REAL NOT NULL,
  current_value REAL NOT NULL DEFAULT 0,
  deadline TEXT,
  completed INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS app_config (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_weight_entries_date ON weight_entries(entry_date);
CREATE INDEX IF NOT EXISTS idx_meal_entries_date ON meal_entries(entry_date);
CREATE INDEX IF NOT EXISTS idx_exercise_entries_date ON exercise_entries(entry_date);
`,
	},
	{
		version: 2,
		name:    "training_schedule",
		sql: `
CREATE TABLE IF NOT EXISTS schedule_days (
  weekday INTEGER PRIMARY KEY CHECK(weekday BETWEEN 0 AND 6),
  is_training INTEGER NOT NULL DEFAULT 0,
  training_types TEXT NOT NULL DEFAULT '',
  intensity TEXT CHECK(intensity IN ('light', 'moderate', 'intense')),
  duration_min INTEGER
);
`,
	},
	{
		version: 3,
		name:    "gamification",
		sql: `
CREATE TABLE IF NOT EXISTS achievements (
  id TEXT PRIMARY KEY,
  key TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  badge_type TEXT NOT NULL CHECK(badge_type IN ('medal', 'trophy', 'badge')),
  category TEXT NOT NULL
    CHECK(category IN ('consistency', 'milestone', 'nutrition', 'exercise', 'weight', 'special')),
  tier TEXT NOT NULL CHECK(tier IN ('bronze', 'silver', 'gold')),
  xp_reward INTEGER NOT NULL CHECK(xp_reward >= 0),
  date_earned TEXT NOT NULL,
  notification_sent INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS challenge_completions (
  day TEXT NOT NULL,
  challenge_id TEXT NOT NULL,
  xp_awarded INTEGER NOT NULL CHECK(xp_awarded >= 0),
  completed_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(day, challenge_id)
);

CREATE INDEX IF NOT EXISTS idx_challenge_completions_day ON challenge_completions(day);
`,
	},
}

func ApplyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
  version INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		return fmt.Errorf("ensure schema_migrations table: %w", err)
	}

	for _, m := range migrations {
		var exists int
		err := db.QueryRow(`SELECT 1 FROM schema_migrations WHERE version = ?`, m.version).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("check migration version %d: %w", m.version, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration tx: %w", err)
		}

		if _, err := tx.Exec(m.sql); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply migration version %d (%s): %w", m.version, m.name, err)
		}
		if _, err := tx.Exec(`INSERT INTO schema_migrations(version, name) VALUES(?, ?)`, m.version, m.name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record migration version %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration version %d: %w", m.version, err)
		}
	}

	return nil
}
