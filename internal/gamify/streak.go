// Package gamify implements the progression rules of fitness-time: streak
// counting, the XP ledger, achievement milestones, and daily challenge
// generation. Everything in this package is pure; persistence lives in
// internal/service.
package gamify

import (
	"sort"
	"time"
)

const dayFormat = "2006-01-02"

// Streak returns the number of consecutive calendar days covered by dates,
// counting back from the most recent day present. Input order does not
// matter and multiple entries on the same day count once. Empty input
// yields 0; a single entry yields 1 even when its day is not today.
func Streak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	seen := make(map[string]time.Time, len(dates))
	for _, d := range dates {
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local)
		seen[day.Format(dayFormat)] = day
	}
	days := make([]time.Time, 0, len(seen))
	for _, day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 1; i < len(days); i++ {
		if !days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			break
		}
		streak++
	}
	return streak
}
