package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatiMalka/fitness-time/internal/gamify"
	"github.com/NatiMalka/fitness-time/internal/model"
)

// GamifyOutcome is what a tracked activity produced: newly unlocked
// achievements, the XP that went through the ledger, and any level-up.
type GamifyOutcome struct {
	NewAchievements []model.Achievement
	XPAwarded       int
	LeveledUp       bool
	NewLevel        int
}

// CheckAchievements evaluates the full entry history against the milestone
// rules, records anything newly crossed, and applies the summed XP reward
// through the ledger in one award. A repeat call with unchanged history
// records nothing and awards nothing. Without a profile it is a no-op.
func CheckAchievements(db *sql.DB, today time.Time) (*GamifyOutcome, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin achievements tx: %w", err)
	}
	defer tx.Rollback()

	profile, err := getProfile(tx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	earned, err := earnedKeys(tx)
	if err != nil {
		return nil, err
	}
	history, err := loadHistory(tx)
	if err != nil {
		return nil, err
	}

	result := gamify.Evaluate(history, earned, today)
	outcome := &GamifyOutcome{}
	for _, a := range result.New {
		minted, err := insertAchievement(tx, a)
		if err != nil {
			return nil, err
		}
		if minted != nil {
			outcome.NewAchievements = append(outcome.NewAchievements, *minted)
		}
	}

	if result.XPToAward > 0 {
		xp, err := applyXP(tx, result.XPToAward, today)
		if err != nil {
			return nil, err
		}
		if xp != nil {
			outcome.XPAwarded = result.XPToAward
			outcome.LeveledUp = xp.LeveledUp
			outcome.NewLevel = xp.NewLevel
			if xp.LevelAchievement != nil {
				outcome.NewAchievements = append(outcome.NewAchievements, *xp.LevelAchievement)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit achievements tx: %w", err)
	}
	return outcome, nil
}

func earnedKeys(q dbtx) (map[string]bool, error) {
	rows, err := q.Query(`SELECT key FROM achievements`)
	if err != nil {
		return nil, fmt.Errorf("list achievement keys: %w", err)
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan achievement key: %w", err)
		}
		keys[key] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievement keys: %w", err)
	}
	return keys, nil
}

func loadHistory(q dbtx) (gamify.History, error) {
	var h gamify.History
	var err error
	if h.Weight, err = entryDates(q, "weight_entries"); err != nil {
		return h, err
	}
	if h.Meal, err = entryDates(q, "meal_entries"); err != nil {
		return h, err
	}
	if h.Exercise, err = entryDates(q, "exercise_entries"); err != nil {
		return h, err
	}
	return h, nil
}

func entryDates(q dbtx, table string) ([]time.Time, error) {
	rows, err := q.Query(`SELECT entry_date FROM ` + table)
	if err != nil {
		return nil, fmt.Errorf("list %s dates: %w", table, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan %s date: %w", table, err)
		}
		d, err := parseDay(raw)
		if err != nil {
			return nil, fmt.Errorf("parse %s date: %w", table, err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s dates: %w", table, err)
	}
	return dates, nil
}

// insertAchievement records a milestone grant once. The UNIQUE key column
// is the backstop: a concurrent duplicate turns into a silent skip and the
// function returns nil for it.
func insertAchievement(q dbtx, a gamify.Achievement) (*model.Achievement, error) {
	id := newAchievementID()
	res, err := q.Exec(`
INSERT INTO achievements(id, key, title, description, badge_type, category, tier, xp_reward, date_earned)
VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(key) DO NOTHING
`, id, a.Key, a.Title, a.Description, a.Type, a.Category, a.Tier, a.XPReward, a.DateEarned)
	if err != nil {
		return nil, fmt.Errorf("record achievement %q: %w", a.Key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}
	return &model.Achievement{
		ID:          id,
		Key:         a.Key,
		Title:       a.Title,
		Description: a.Description,
		BadgeType:   a.Type,
		Category:    a.Category,
		Tier:        a.Tier,
		XPReward:    a.XPReward,
		DateEarned:  a.DateEarned,
	}, nil
}

// ListAchievements returns every earned achievement, most recent first.
func ListAchievements(db *sql.DB) ([]model.Achievement, error) {
	rows, err := db.Query(`
SELECT id, key, title, description, badge_type, category, tier, xp_reward, date_earned, notification_sent
FROM achievements
ORDER BY date_earned DESC, created_at DESC
`)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	items := make([]model.Achievement, 0)
	for rows.Next() {
		var a model.Achievement
		var sent int
		if err := rows.Scan(&a.ID, &a.Key, &a.Title, &a.Description, &a.BadgeType, &a.Category, &a.Tier,
			&a.XPReward, &a.DateEarned, &sent); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		a.NotificationSent = sent == 1
		items = append(items, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate achievements: %w", err)
	}
	return items, nil
}

// MarkAchievementNotified flips the one-time notification flag.
func MarkAchievementNotified(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE achievements SET notification_sent = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark achievement %q notified: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("achievement %q not found", id)
	}
	return nil
}
