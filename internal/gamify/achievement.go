package gamify

import (
	"fmt"
	"time"
)

const (
	TypeMedal  = "medal"
	TypeTrophy = "trophy"
	TypeBadge  = "badge"
)

const (
	CategoryConsistency = "consistency"
	CategoryMilestone   = "milestone"
	CategoryNutrition   = "nutrition"
	CategoryExercise    = "exercise"
	CategoryWeight      = "weight"
	CategorySpecial     = "special"
)

const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// Activity types tracked for streak and entry-count milestones.
const (
	ActivityWeight   = "weight"
	ActivityMeal     = "meal"
	ActivityExercise = "exercise"
)

// Achievement is a single milestone grant. Key is the stable,
// locale-independent identity used for deduplication; Title and
// Description are display text derived from it.
type Achievement struct {
	Key         string
	Title       string
	Description string
	Type        string
	Category    string
	Tier        string
	XPReward    int
	DateEarned  string
}

// History holds entry dates per tracked activity type. Order is irrelevant;
// Streak normalizes internally.
type History struct {
	Weight   []time.Time
	Meal     []time.Time
	Exercise []time.Time
}

// EvalResult lists achievements newly crossed plus the XP sum the caller
// must put through the ledger exactly once.
type EvalResult struct {
	New       []Achievement
	XPToAward int
}

var streakMilestones = []struct {
	Days int
	Tier string
}{
	{3, TierBronze},
	{7, TierSilver},
	{30, TierGold},
}

var countMilestones = []struct {
	Count int
	Tier  string
}{
	{10, TierBronze},
	{50, TierSilver},
	{100, TierGold},
}

func StreakKey(activity string, days int) string {
	return fmt.Sprintf("streak:%s:%d", activity, days)
}

func CountKey(activity string, count int) string {
	return fmt.Sprintf("entries:%s:%d", activity, count)
}

func LevelKey(level int) string {
	return fmt.Sprintf("level:%d", level)
}

// FirstChallengeKey identifies the one-time first-daily-challenge badge.
const FirstChallengeKey = "challenge:first"

var activityLabels = map[string]struct {
	Label string
	Noun  string
}{
	ActivityWeight:   {"Weight", "weight"},
	ActivityMeal:     {"Meal", "meals"},
	ActivityExercise: {"Exercise", "exercise"},
}

// Evaluate checks history against the streak and entry-count milestones and
// returns every achievement whose key is not already in earnedKeys. A
// milestone never reverts: once its key is earned it is skipped forever, so
// repeated calls over unchanged history return nothing.
func Evaluate(h History, earnedKeys map[string]bool, today time.Time) EvalResult {
	day := today.Format(dayFormat)
	var result EvalResult
	add := func(a Achievement) {
		if earnedKeys[a.Key] {
			return
		}
		result.New = append(result.New, a)
		result.XPToAward += a.XPReward
	}

	byType := []struct {
		activity string
		dates    []time.Time
	}{
		{ActivityWeight, h.Weight},
		{ActivityMeal, h.Meal},
		{ActivityExercise, h.Exercise},
	}

	for _, t := range byType {
		labels := activityLabels[t.activity]
		streak := Streak(t.dates)
		for _, m := range streakMilestones {
			if streak < m.Days {
				continue
			}
			add(Achievement{
				Key:         StreakKey(t.activity, m.Days),
				Title:       fmt.Sprintf("%d Day %s Tracking Streak", m.Days, labels.Label),
				Description: fmt.Sprintf("You've tracked your %s for %d consecutive days", labels.Noun, m.Days),
				Type:        TypeMedal,
				Category:    CategoryConsistency,
				Tier:        m.Tier,
				XPReward:    m.Days * 10,
				DateEarned:  day,
			})
		}
		for _, m := range countMilestones {
			if len(t.dates) < m.Count {
				continue
			}
			add(Achievement{
				Key:         CountKey(t.activity, m.Count),
				Title:       fmt.Sprintf("%d %s Entries", m.Count, labels.Label),
				Description: fmt.Sprintf("You've recorded %d %s entries", m.Count, labels.Noun),
				Type:        TypeTrophy,
				Category:    CategoryMilestone,
				Tier:        m.Tier,
				XPReward:    m.Count,
				DateEarned:  day,
			})
		}
	}

	return result
}

// LevelUpAchievement mints the badge for reaching a level. The level-up
// itself is the reward, so XPReward stays 0. Minted by the ledger's caller
// when AwardXP signals a level-up, never by Evaluate.
func LevelUpAchievement(level int, today time.Time) Achievement {
	tier := TierBronze
	switch {
	case level >= 10:
		tier = TierGold
	case level >= 5:
		tier = TierSilver
	}
	return Achievement{
		Key:         LevelKey(level),
		Title:       fmt.Sprintf("Reached Level %d!", level),
		Description: fmt.Sprintf("You've reached level %d - %s", level, LevelTitle(level)),
		Type:        TypeBadge,
		Category:    CategoryMilestone,
		Tier:        tier,
		XPReward:    0,
		DateEarned:  today.Format(dayFormat),
	}
}

// FirstChallengeAchievement mints the badge for the very first daily
// challenge completion.
func FirstChallengeAchievement(today time.Time) Achievement {
	return Achievement{
		Key:         FirstChallengeKey,
		Title:       "A Journey Begins",
		Description: "Completed your first daily challenge",
		Type:        TypeBadge,
		Category:    CategorySpecial,
		Tier:        TierBronze,
		XPReward:    25,
		DateEarned:  today.Format(dayFormat),
	}
}
