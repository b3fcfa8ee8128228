package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatiMalka/fitness-time/internal/gamify"
)

// Status is the dashboard read model: level progression, per-type streaks,
// today's activity, and today's challenge set.
type Status struct {
	Date           string
	HasProfile     bool
	Name           string
	Progress       gamify.LevelProgress
	TotalXP        int
	CurrentXP      int
	WeightStreak   int
	MealStreak     int
	ExerciseStreak int
	TodayMeals     int
	TodayCalories  int
	TodayWorkouts  int
	LatestWeightKg float64
	BMI            float64
	BMICategory    string
	Challenges     []gamify.Challenge
}

// Summary assembles the status view. It works without a profile too, so the
// pre-onboarding state renders instead of failing.
func Summary(db *sql.DB, today time.Time) (*Status, error) {
	status := &Status{Date: today.Format(dayFormat)}

	profile, err := GetProfile(db)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		status.HasProfile = true
		status.Name = profile.Name
		state := gamify.XPState{Level: profile.XPLevel, CurrentXP: profile.XPCurrent, TotalXP: profile.XPTotal}
		status.Progress = gamify.Progress(state)
		status.TotalXP = state.TotalXP
		status.CurrentXP = state.CurrentXP
		status.LatestWeightKg = profile.WeightKg
		if profile.HeightCm > 0 {
			m := profile.HeightCm / 100
			status.BMI = profile.WeightKg / (m * m)
			status.BMICategory = BMICategory(status.BMI)
		}
	}

	history, err := loadHistory(db)
	if err != nil {
		return nil, err
	}
	status.WeightStreak = gamify.Streak(history.Weight)
	status.MealStreak = gamify.Streak(history.Meal)
	status.ExerciseStreak = gamify.Streak(history.Exercise)

	if latest, err := latestWeight(db); err != nil {
		return nil, err
	} else if latest > 0 {
		status.LatestWeightKg = latest
	}

	day := status.Date
	if err := db.QueryRow(`
SELECT COUNT(*), IFNULL(SUM(calories), 0) FROM meal_entries WHERE entry_date = ?
`, day).Scan(&status.TodayMeals, &status.TodayCalories); err != nil {
		return nil, fmt.Errorf("count today's meals: %w", err)
	}
	if err := db.QueryRow(`
SELECT COUNT(*) FROM exercise_entries WHERE entry_date = ?
`, day).Scan(&status.TodayWorkouts); err != nil {
		return nil, fmt.Errorf("count today's workouts: %w", err)
	}

	challenges, err := TodayChallenges(db, today)
	if err != nil {
		return nil, err
	}
	status.Challenges = challenges
	return status, nil
}

func latestWeight(db *sql.DB) (float64, error) {
	var weight float64
	err := db.QueryRow(`
SELECT weight_kg FROM weight_entries ORDER BY entry_date DESC, id DESC LIMIT 1
`).Scan(&weight)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load latest weight: %w", err)
	}
	return weight, nil
}

// BMICategory maps a BMI value to its standard label.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
