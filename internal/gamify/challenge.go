package gamify

import (
	"fmt"
	"time"
)

// The fixed challenge catalog. Completion state is keyed on these ids in
// the per-day completion log, never on the regenerated set itself.
const (
	ChallengeSetupSchedule  = "setup-schedule"
	ChallengeDailyWorkout   = "daily-workout"
	ChallengeRestDay        = "rest-day"
	ChallengeDailyNutrition = "daily-nutrition"
	ChallengeWeeklyWeight   = "weekly-weight"
)

const (
	ChallengeCategoryNutrition = "nutrition"
	ChallengeCategoryExercise  = "exercise"
	ChallengeCategoryWeight    = "weight"
	ChallengeCategoryTracking  = "tracking"
)

// Challenge is one entry of a day's challenge set.
type Challenge struct {
	ID          string
	Title       string
	Description string
	XPReward    int
	Category    string
	Completed   bool
}

// TrainingDay is one weekday of the user's training schedule.
type TrainingDay struct {
	Weekday     time.Weekday
	IsTraining  bool
	Types       []string
	Intensity   string
	DurationMin int
}

// Schedule is the onboarding-configured weekly plan the challenge set is
// derived from.
type Schedule struct {
	Days              []TrainingDay
	MealCount         int
	WeekStart         time.Weekday
	HasCompletedSetup bool
}

// DailySet derives the challenge set for today's calendar date. Before
// schedule setup is completed the set is exactly the setup challenge;
// afterwards it follows today's schedule entry: a workout challenge scaled
// by intensity on training days, a low-value rest challenge otherwise, a
// nutrition challenge sized by the configured meal count every day, and a
// weight challenge on the first two days of the tracked week.
func DailySet(s Schedule, today time.Time) []Challenge {
	if !s.HasCompletedSetup {
		return []Challenge{{
			ID:          ChallengeSetupSchedule,
			Title:       "Set up your training schedule",
			Description: "Customize your daily challenges by setting up a schedule",
			XPReward:    25,
			Category:    ChallengeCategoryTracking,
		}}
	}

	var day *TrainingDay
	for i := range s.Days {
		if s.Days[i].Weekday == today.Weekday() {
			day = &s.Days[i]
			break
		}
	}

	var set []Challenge
	if day != nil && day.IsTraining {
		workoutType := "general"
		if len(day.Types) > 0 && day.Types[0] != "" {
			workoutType = day.Types[0]
		}
		intensity := day.Intensity
		if intensity == "" {
			intensity = "moderate"
		}
		reward := 15
		switch intensity {
		case "intense":
			reward = 20
		case "light":
			reward = 10
		}
		set = append(set, Challenge{
			ID:          ChallengeDailyWorkout,
			Title:       fmt.Sprintf("Complete a %s %s workout", intensity, workoutType),
			Description: "Do your scheduled workout for today and log it",
			XPReward:    reward,
			Category:    ChallengeCategoryExercise,
		})
	} else {
		set = append(set, Challenge{
			ID:          ChallengeRestDay,
			Title:       "Rest Day - Take care of your body",
			Description: "Use this day for stretching, flexibility or active recovery",
			XPReward:    5,
			Category:    ChallengeCategoryExercise,
		})
	}

	mealCount := s.MealCount
	if mealCount <= 0 {
		mealCount = 3
	}
	set = append(set, Challenge{
		ID:          ChallengeDailyNutrition,
		Title:       fmt.Sprintf("Log %d meals today", mealCount),
		Description: "Track your nutrition with proper meal entries",
		XPReward:    10,
		Category:    ChallengeCategoryNutrition,
	})

	if weekOffset(s.WeekStart, today.Weekday()) <= 1 {
		set = append(set, Challenge{
			ID:          ChallengeWeeklyWeight,
			Title:       "Log your weekly weight",
			Description: "Track your progress with a weekly weight measurement",
			XPReward:    5,
			Category:    ChallengeCategoryWeight,
		})
	}

	return set
}

// weekOffset is the day index of wd in a week starting at start.
func weekOffset(start, wd time.Weekday) int {
	return (int(wd) - int(start) + 7) % 7
}

// MarkCompleted flips the Completed flag on ids present in done, so a set
// regenerated on the same day keeps its completion state.
func MarkCompleted(set []Challenge, done map[string]bool) []Challenge {
	for i := range set {
		if done[set[i].ID] {
			set[i].Completed = true
		}
	}
	return set
}

// Find returns the challenge with the given id from set.
func Find(set []Challenge, id string) (Challenge, bool) {
	for _, c := range set {
		if c.ID == id {
			return c, true
		}
	}
	return Challenge{}, false
}
