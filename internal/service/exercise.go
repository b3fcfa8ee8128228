package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NatiMalka/fitness-time/internal/model"
)

type ExerciseInput struct {
	Date           string
	ExerciseType   string
	DurationMin    int
	CaloriesBurned int
	Intensity      string
}

func normalizeExerciseInput(in ExerciseInput, today time.Time) (ExerciseInput, error) {
	in.ExerciseType = strings.ToLower(strings.TrimSpace(in.ExerciseType))
	if in.ExerciseType == "" {
		return ExerciseInput{}, fmt.Errorf("exercise type is required")
	}
	if in.DurationMin <= 0 {
		return ExerciseInput{}, fmt.Errorf("duration must be > 0")
	}
	if err := validateNonNegativeInt("calories burned", in.CaloriesBurned); err != nil {
		return ExerciseInput{}, err
	}
	in.Intensity = strings.ToLower(strings.TrimSpace(in.Intensity))
	if err := optionalOneOf("intensity", in.Intensity, "light", "moderate", "intense"); err != nil {
		return ExerciseInput{}, err
	}
	day, err := normalizeDay(in.Date, today)
	if err != nil {
		return ExerciseInput{}, err
	}
	in.Date = day
	return in, nil
}

// AddExerciseEntry records a workout and re-evaluates milestone achievements.
func AddExerciseEntry(db *sql.DB, in ExerciseInput, today time.Time) (int64, *GamifyOutcome, error) {
	in, err := normalizeExerciseInput(in, today)
	if err != nil {
		return 0, nil, err
	}

	res, err := db.Exec(`
INSERT INTO exercise_entries(entry_date, exercise_type, duration_min, calories_burned, intensity)
VALUES(?, ?, ?, ?, ?)
`, in.Date, in.ExerciseType, in.DurationMin, in.CaloriesBurned, nullable(in.Intensity))
	if err != nil {
		return 0, nil, fmt.Errorf("add exercise entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, nil, fmt.Errorf("resolve exercise entry id: %w", err)
	}

	outcome, err := CheckAchievements(db, today)
	if err != nil {
		return 0, nil, err
	}
	return id, outcome, nil
}

func ListExerciseEntries(db *sql.DB, date string, limit int) ([]model.ExerciseEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
SELECT id, entry_date, exercise_type, duration_min, calories_burned, IFNULL(intensity, ''), created_at, updated_at
FROM exercise_entries`
	args := make([]any, 0)
	if strings.TrimSpace(date) != "" {
		day, err := normalizeDay(date, time.Now())
		if err != nil {
			return nil, err
		}
		query += ` WHERE entry_date = ?`
		args = append(args, day)
	}
	query += ` ORDER BY entry_date DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercise entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.ExerciseEntry, 0)
	for rows.Next() {
		var e model.ExerciseEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.ExerciseType, &e.DurationMin, &e.CaloriesBurned, &e.Intensity,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan exercise entry: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercise entries: %w", err)
	}
	return items, nil
}

func UpdateExerciseEntry(db *sql.DB, id int64, in ExerciseInput) error {
	if id <= 0 {
		return fmt.Errorf("exercise entry id must be > 0")
	}
	in, err := normalizeExerciseInput(in, time.Now())
	if err != nil {
		return err
	}

	res, err := db.Exec(`
UPDATE exercise_entries
SET entry_date = ?, exercise_type = ?, duration_min = ?, calories_burned = ?, intensity = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, in.Date, in.ExerciseType, in.DurationMin, in.CaloriesBurned, nullable(in.Intensity), id)
	if err != nil {
		return fmt.Errorf("update exercise entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("exercise entry %d not found", id)
	}
	return nil
}

func DeleteExerciseEntry(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("exercise entry id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM exercise_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete exercise entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("exercise entry %d not found", id)
	}
	return nil
}
