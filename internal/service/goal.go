package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/NatiMalka/fitness-time/internal/model"
)

type GoalInput struct {
	Title        string
	GoalType     string
	TargetValue  float64
	CurrentValue float64
	Deadline     string
}

func AddGoal(db *sql.DB, in GoalInput) (int64, error) {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return 0, fmt.Errorf("goal title is required")
	}
	in.GoalType = strings.ToLower(strings.TrimSpace(in.GoalType))
	if err := oneOf("goal type", in.GoalType, "weight", "exercise", "nutrition", "other"); err != nil {
		return 0, err
	}
	in.Deadline = strings.TrimSpace(in.Deadline)
	if in.Deadline != "" {
		if _, err := parseDay(in.Deadline); err != nil {
			return 0, fmt.Errorf("invalid deadline %q (expected YYYY-MM-DD)", in.Deadline)
		}
	}

	res, err := db.Exec(`
INSERT INTO goals(title, goal_type, target_value, current_value, deadline)
VALUES(?, ?, ?, ?, ?)
`, in.Title, in.GoalType, in.TargetValue, in.CurrentValue, nullable(in.Deadline))
	if err != nil {
		return 0, fmt.Errorf("add goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("resolve goal id: %w", err)
	}
	return id, nil
}

func ListGoals(db *sql.DB, includeCompleted bool) ([]model.Goal, error) {
	query := `
SELECT id, title, goal_type, target_value, current_value, IFNULL(deadline, ''), completed, created_at, updated_at
FROM goals`
	if !includeCompleted {
		query += ` WHERE completed = 0`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	items := make([]model.Goal, 0)
	for rows.Next() {
		var g model.Goal
		var completed int
		if err := rows.Scan(&g.ID, &g.Title, &g.GoalType, &g.TargetValue, &g.CurrentValue, &g.Deadline,
			&completed, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		g.Completed = completed == 1
		items = append(items, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate goals: %w", err)
	}
	return items, nil
}

func UpdateGoalProgress(db *sql.DB, id int64, currentValue float64) error {
	if id <= 0 {
		return fmt.Errorf("goal id must be > 0")
	}
	res, err := db.Exec(`
UPDATE goals SET current_value = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`, currentValue, id)
	if err != nil {
		return fmt.Errorf("update goal %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %d not found", id)
	}
	return nil
}

func CompleteGoal(db *sql.DB, id int64) error {
	if id <= 0 {
		return fmt.Errorf("goal id must be > 0")
	}
	res, err := db.Exec(`
UPDATE goals SET completed = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`, id)
	if err != nil {
		return fmt.Errorf("complete goal %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("goal %d not found", id)
	}
	return nil
}
