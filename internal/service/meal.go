package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NatiMalka/fitness-time/internal/model"
)

type MealInput struct {
	Date        string
	Name        string
	Calories    int
	MealType    string
	Quality     string
	Description string
}

func normalizeMealInput(in MealInput, today time.Time) (MealInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return MealInput{}, fmt.Errorf("meal name is required")
	}
	if err := validateNonNegativeInt("calories", in.Calories); err != nil {
		return MealInput{}, err
	}
	in.MealType = strings.ToLower(strings.TrimSpace(in.MealType))
	if err := oneOf("meal type", in.MealType, "breakfast", "lunch", "dinner", "snack"); err != nil {
		return MealInput{}, err
	}
	day, err := normalizeDay(in.Date, today)
	if err != nil {
		return MealInput{}, err
	}
	in.Date = day
	in.Quality = strings.ToLower(strings.TrimSpace(in.Quality))
	if err := optionalOneOf("quality", in.Quality, "healthy", "moderate", "unhealthy"); err != nil {
		return MealInput{}, err
	}
	in.Description = strings.TrimSpace(in.Description)
	return in, nil
}

// AddMealEntry records a meal and re-evaluates milestone achievements.
func AddMealEntry(db *sql.DB, in MealInput, today time.Time) (int64, *GamifyOutcome, error) {
	in, err := normalizeMealInput(in, today)
	if err != nil {
		return 0, nil, err
	}

	res, err := db.Exec(`
INSERT INTO meal_entries(entry_date, name, calories, meal_type, quality, description)
VALUES(?, ?, ?, ?, ?, ?)
`, in.Date, in.Name, in.Calories, in.MealType, nullable(in.Quality), nullable(in.Description))
	if err != nil {
		return 0, nil, fmt.Errorf("add meal entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, nil, fmt.Errorf("resolve meal entry id: %w", err)
	}

	outcome, err := CheckAchievements(db, today)
	if err != nil {
		return 0, nil, err
	}
	return id, outcome, nil
}

func ListMealEntries(db *sql.DB, date string, limit int) ([]model.MealEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
SELECT id, entry_date, name, calories, meal_type, IFNULL(quality, ''), IFNULL(description, ''), created_at, updated_at
FROM meal_entries`
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
		return nil, fmt.Errorf("list meal entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.MealEntry, 0)
	for rows.Next() {
		var e model.MealEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Name, &e.Calories, &e.MealType, &e.Quality, &e.Description,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan meal entry: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meal entries: %w", err)
	}
	return items, nil
}

func UpdateMealEntry(db *sql.DB, id int64, in MealInput) error {
	if id <= 0 {
		return fmt.Errorf("meal entry id must be > 0")
	}
	in, err := normalizeMealInput(in, time.Now())
	if err != nil {
		return err
	}

	res, err := db.Exec(`
UPDATE meal_entries
SET entry_date = ?, name = ?, calories = ?, meal_type = ?, quality = ?, description = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, in.Date, in.Name, in.Calories, in.MealType, nullable(in.Quality), nullable(in.Description), id)
	if err != nil {
		return fmt.Errorf("update meal entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal entry %d not found", id)
	}
	return nil
}

func DeleteMealEntry(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("meal entry id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM meal_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete meal entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("meal entry %d not found", id)
	}
	return nil
}
