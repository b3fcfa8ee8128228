package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NatiMalka/fitness-time/internal/model"
)

type WeightInput struct {
	Date     string
	WeightKg float64
	Notes    string
}

// AddWeightEntry records a weight measurement and re-evaluates milestone
// achievements over the updated history.
func AddWeightEntry(db *sql.DB, in WeightInput, today time.Time) (int64, *GamifyOutcome, error) {
	if err := validatePositiveFloat("weight", in.WeightKg); err != nil {
		return 0, nil, err
	}
	day, err := normalizeDay(in.Date, today)
	if err != nil {
		return 0, nil, err
	}

	res, err := db.Exec(`
INSERT INTO weight_entries(entry_date, weight_kg, notes)
VALUES(?, ?, ?)
`, day, in.WeightKg, strings.TrimSpace(in.Notes))
	if err != nil {
		return 0, nil, fmt.Errorf("add weight entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, nil, fmt.Errorf("resolve weight entry id: %w", err)
	}

	outcome, err := CheckAchievements(db, today)
	if err != nil {
		return 0, nil, err
	}
	return id, outcome, nil
}

func ListWeightEntries(db *sql.DB, limit int) ([]model.WeightEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
SELECT id, entry_date, weight_kg, IFNULL(notes, ''), created_at, updated_at
FROM weight_entries
ORDER BY entry_date DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.WeightEntry, 0)
	for rows.Next() {
		var e model.WeightEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.WeightKg, &e.Notes, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate weight entries: %w", err)
	}
	return items, nil
}

// UpdateWeightEntry edits an existing entry. Date edits feed back into the
// streak computation on the next evaluation pass.
func UpdateWeightEntry(db *sql.DB, id int64, in WeightInput) error {
	if id <= 0 {
		return fmt.Errorf("weight entry id must be > 0")
	}
	if err := validatePositiveFloat("weight", in.WeightKg); err != nil {
		return err
	}
	day, err := normalizeDay(in.Date, time.Now())
	if err != nil {
		return err
	}

	res, err := db.Exec(`
UPDATE weight_entries
SET entry_date = ?, weight_kg = ?, notes = ?, updated_at = CURRENT_TIMESTAMP
WHERE id = ?
`, day, in.WeightKg, strings.TrimSpace(in.Notes), id)
	if err != nil {
		return fmt.Errorf("update weight entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("weight entry %d not found", id)
	}
	return nil
}

func DeleteWeightEntry(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("weight entry id must be > 0")
	}
	res, err := db.Exec(`DELETE FROM weight_entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete weight entry %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("weight entry %d not found", id)
	}
	return nil
}
