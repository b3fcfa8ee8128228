package service_test

import (
	"testing"

	"github.com/NatiMalka/fitness-time/internal/service"
)

func TestWeightStreakMilestoneAwardsOnce(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	today := localDate(2026, 3, 10)
	// Creating the profile records today's first weight entry.
	newTestProfile(t, db, today)

	_, outcome, err := service.AddWeightEntry(db, service.WeightInput{Date: "2026-03-08", WeightKg: 70.4}, today)
	if err != nil {
		t.Fatalf("add weight entry: %v", err)
	}
	if outcome == nil || len(outcome.NewAchievements) != 0 {
		t.Fatalf("outcome = %+v, want no achievements with a gap in the run", outcome)
	}

	// Filling the gap completes a 3-day run ending today.
	_, outcome, err = service.AddWeightEntry(db, service.WeightInput{Date: "2026-03-09", WeightKg: 70.2}, today)
	if err != nil {
		t.Fatalf("add weight entry: %v", err)
	}
	if outcome == nil || len(outcome.NewAchievements) != 1 {
		t.Fatalf("outcome = %+v, want exactly the 3-day streak medal", outcome)
	}
	a := outcome.NewAchievements[0]
	if a.Key != "streak:weight:3" || a.Tier != "bronze" || a.BadgeType != "medal" {
		t.Fatalf("achievement = %+v, want bronze streak:weight:3 medal", a)
	}
	if a.XPReward != 30 || outcome.XPAwarded != 30 {
		t.Fatalf("xp = %d awarded %d, want 30", a.XPReward, outcome.XPAwarded)
	}
	if a.ID == "" {
		t.Fatalf("achievement id not assigned")
	}

	p, err := service.GetProfile(db)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.XPTotal != 30 {
		t.Fatalf("ledger total = %d, want 30", p.XPTotal)
	}

	// Re-checking unchanged history grants nothing.
	again, err := service.CheckAchievements(db, today)
	if err != nil {
		t.Fatalf("re-check achievements: %v", err)
	}
	if len(again.NewAchievements) != 0 || again.XPAwarded != 0 {
		t.Fatalf("re-check = %+v, want nothing new", again)
	}
	p, err = service.GetProfile(db)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.XPTotal != 30 {
		t.Fatalf("ledger total after re-check = %d, want 30 unchanged", p.XPTotal)
	}
}

func TestMealCountMilestone(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	today := localDate(2026, 3, 10)
	newTestProfile(t, db, today)

	var last *service.GamifyOutcome
	for i := 0; i < 10; i++ {
		_, outcome, err := service.AddMealEntry(db, service.MealInput{
			Name:     "Snack",
			Calories: 150,
			MealType: "snack",
		}, today)
		if err != nil {
			t.Fatalf("add meal %d: %v", i, err)
		}
		last = outcome
	}

	found := false
	for _, a := range last.NewAchievements {
		if a.Key == "entries:meal:10" {
			found = true
			if a.BadgeType != "trophy" || a.XPReward != 10 {
				t.Fatalf("achievement = %+v, want trophy worth 10 XP", a)
			}
		}
	}
	if !found {
		t.Fatalf("10th meal outcome = %+v, want entries:meal:10 trophy", last)
	}
}

func TestAddEntriesWithoutProfileSkipGamification(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	today := localDate(2026, 3, 10)
	id, outcome, err := service.AddWeightEntry(db, service.WeightInput{WeightKg: 70}, today)
	if err != nil {
		t.Fatalf("add weight entry: %v", err)
	}
	if id == 0 {
		t.Fatalf("entry not recorded")
	}
	if outcome != nil {
		t.Fatalf("outcome = %+v, want nil without a profile", outcome)
	}
}

func TestMarkAchievementNotified(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	today := localDate(2026, 3, 10)
	newTestProfile(t, db, today)
	if _, err := service.ApplyXP(db, 120, today); err != nil {
		t.Fatalf("apply xp: %v", err)
	}

	items, err := service.ListAchievements(db)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if len(items) != 1 || items[0].NotificationSent {
		t.Fatalf("achievements = %+v, want one unnotified badge", items)
	}

	if err := service.MarkAchievementNotified(db, items[0].ID); err != nil {
		t.Fatalf("mark notified: %v", err)
	}
	items, err = service.ListAchievements(db)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if !items[0].NotificationSent {
		t.Fatalf("achievement still unnotified: %+v", items[0])
	}

	if err := service.MarkAchievementNotified(db, "missing-id"); err == nil {
		t.Fatalf("expected error for unknown achievement id")
	}
}
