package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NatiMalka/fitness-time/internal/model"
)

type MoodInput struct {
	Date  string
	Mood  string
	Notes string
}

func AddMoodEntry(db *sql.DB, in MoodInput, today time.Time) (int64, error) {
	in.Mood = strings.ToLower(strings.TrimSpace(in.Mood))
	if err := oneOf("mood", in.Mood, "great", "good", "neutral", "bad", "awful"); err != nil {
		return 0, err
	}
	day, err := normalizeDay(in.Date, today)
	if err != nil {
		return 0, err
	}

	res, err := db.Exec(`
INSERT INTO mood_entries(entry_date, mood, notes)
VALUES(?, ?, ?)
`, day, in.Mood, nullable(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("add mood entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve mood entry id: %w", err)
	}
	return id, nil
}

func ListMoodEntries(db *sql.DB, limit int) ([]model.MoodEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
SELECT id, entry_date, mood, IFNULL(notes, ''), created_at
FROM mood_entries
ORDER BY entry_date DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list mood entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.MoodEntry, 0)
	for rows.Next() {
		var e model.MoodEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Mood, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan mood entry: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mood entries: %w", err)
	}
	return items, nil
}
