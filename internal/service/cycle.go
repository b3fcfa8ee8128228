package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NatiMalka/fitness-time/internal/model"
)

type CycleInput struct {
	Date     string
	Flow     string
	Symptoms []string
	Notes    string
}

func AddCycleEntry(db *sql.DB, in CycleInput, today time.Time) (int64, error) {
	in.Flow = strings.ToLower(strings.TrimSpace(in.Flow))
	if err := optionalOneOf("flow", in.Flow, "light", "medium", "heavy"); err != nil {
		return 0, err
	}
	day, err := normalizeDay(in.Date, today)
	if err != nil {
		return 0, err
	}
	symptoms := make([]string, 0, len(in.Symptoms))
	for _, s := range in.Symptoms {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			symptoms = append(symptoms, s)
		}
	}

	res, err := db.Exec(`
INSERT INTO cycle_entries(entry_date, flow, symptoms, notes)
VALUES(?, ?, ?, ?)
`, day, nullable(in.Flow), strings.Join(symptoms, ","), nullable(in.Notes))
	if err != nil {
		return 0, fmt.Errorf("add cycle entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve cycle entry id: %w", err)
	}
	return id, nil
}

func ListCycleEntries(db *sql.DB, limit int) ([]model.CycleEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Query(`
SELECT id, entry_date, IFNULL(flow, ''), symptoms, IFNULL(notes, ''), created_at
FROM cycle_entries
ORDER BY entry_date DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list cycle entries: %w", err)
	}
	defer rows.Close()

	items := make([]model.CycleEntry, 0)
	for rows.Next() {
		var e model.CycleEntry
		var symptoms string
		if err := rows.Scan(&e.ID, &e.Date, &e.Flow, &symptoms, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cycle entry: %w", err)
		}
		if symptoms != "" {
			e.Symptoms = strings.Split(symptoms, ",")
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cycle entries: %w", err)
	}
	return items, nil
}
