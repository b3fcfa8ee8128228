package service

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/NatiMalka/fitness-time/internal/gamify"
)

type ScheduleDayInput struct {
	Weekday     time.Weekday
	IsTraining  bool
	Types       []string
	Intensity   string
	DurationMin int
}

type SetScheduleInput struct {
	Days      []ScheduleDayInput
	MealCount int
	WeekStart time.Weekday
}

// SetSchedule replaces the weekly training plan and marks onboarding setup
// complete, which switches the daily challenge generator from the setup
// fallback to schedule-derived sets.
func SetSchedule(db *sql.DB, in SetScheduleInput) error {
	if in.MealCount <= 0 {
		in.MealCount = 3
	}
	if in.MealCount > 8 {
		return fmt.Errorf("meal count must be <= 8")
	}
	if in.WeekStart != time.Sunday && in.WeekStart != time.Monday {
		return fmt.Errorf("week start must be sunday or monday")
	}
	seen := make(map[time.Weekday]bool)
	for _, d := range in.Days {
		if seen[d.Weekday] {
			return fmt.Errorf("duplicate schedule entry for %s", strings.ToLower(d.Weekday.String()))
		}
		seen[d.Weekday] = true
		if d.IsTraining {
			if err := optionalOneOf("intensity", d.Intensity, "light", "moderate", "intense"); err != nil {
				return err
			}
			if d.DurationMin < 0 {
				return fmt.Errorf("duration must be >= 0")
			}
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schedule tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM schedule_days`); err != nil {
		return fmt.Errorf("clear schedule: %w", err)
	}
	for _, d := range in.Days {
		if _, err := tx.Exec(`
INSERT INTO schedule_days(weekday, is_training, training_types, intensity, duration_min)
VALUES(?, ?, ?, ?, ?)
`, int(d.Weekday), boolToInt(d.IsTraining), strings.Join(d.Types, ","), nullable(d.Intensity), nullableInt(d.DurationMin)); err != nil {
			return fmt.Errorf("save schedule day %s: %w", strings.ToLower(d.Weekday.String()), err)
		}
	}

	configs := map[string]string{
		ConfigScheduleSetupDone: "1",
		ConfigMealCount:         strconv.Itoa(in.MealCount),
		ConfigWeekStart:         strings.ToLower(in.WeekStart.String()),
	}
	for key, value := range configs {
		if _, err := tx.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value); err != nil {
			return fmt.Errorf("set config %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schedule tx: %w", err)
	}
	return nil
}

// GetSchedule loads the weekly plan for the challenge generator. A missing
// or incomplete setup yields HasCompletedSetup=false and defaults.
func GetSchedule(db *sql.DB) (gamify.Schedule, error) {
	sched := gamify.Schedule{MealCount: 3, WeekStart: time.Sunday}

	setup, ok, err := GetConfig(db, ConfigScheduleSetupDone)
	if err != nil {
		return sched, err
	}
	sched.HasCompletedSetup = ok && setup == "1"

	if mealCount, ok, err := GetConfig(db, ConfigMealCount); err != nil {
		return sched, err
	} else if ok {
		if n, err := strconv.Atoi(mealCount); err == nil && n > 0 {
			sched.MealCount = n
		}
	}
	if weekStart, ok, err := GetConfig(db, ConfigWeekStart); err != nil {
		return sched, err
	} else if ok && weekStart == "monday" {
		sched.WeekStart = time.Monday
	}

	rows, err := db.Query(`
SELECT weekday, is_training, training_types, IFNULL(intensity, ''), IFNULL(duration_min, 0)
FROM schedule_days
ORDER BY weekday ASC
`)
	if err != nil {
		return sched, fmt.Errorf("list schedule days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day gamify.TrainingDay
		var weekday, training int
		var types string
		if err := rows.Scan(&weekday, &training, &types, &day.Intensity, &day.DurationMin); err != nil {
			return sched, fmt.Errorf("scan schedule day: %w", err)
		}
		day.Weekday = time.Weekday(weekday)
		day.IsTraining = training == 1
		if types != "" {
			day.Types = strings.Split(types, ",")
		}
		sched.Days = append(sched.Days, day)
	}
	if err := rows.Err(); err != nil {
		return sched, fmt.Errorf("iterate schedule days: %w", err)
	}
	return sched, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableInt(value int) any {
	if value <= 0 {
		return nil
	}
	return value
}
