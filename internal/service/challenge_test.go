package service_test

import (
	"testing"

	"github.com/NatiMalka/fitness-time/internal/gamify"
	"github.com/NatiMalka/fitness-time/internal/service"
)

func TestTodayChallengesBeforeSetup(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	set, err := service.TodayChallenges(db, localDate(2026, 3, 10))
	if err != nil {
		t.Fatalf("today challenges: %v", err)
	}
	if len(set) != 1 || set[0].ID != gamify.ChallengeSetupSchedule {
		t.Fatalf("set = %+v, want only the setup challenge", set)
	}
}

func TestTodayChallengesFollowSchedule(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	newTestSchedule(t, db)

	// 2026-03-09 is a training Monday at week start.
	set, err := service.TodayChallenges(db, localDate(2026, 3, 9))
	if err != nil {
		t.Fatalf("today challenges: %v", err)
	}
	if _, ok := gamify.Find(set, gamify.ChallengeDailyWorkout); !ok {
		t.Fatalf("monday set missing workout: %+v", set)
	}
	if _, ok := gamify.Find(set, gamify.ChallengeWeeklyWeight); !ok {
		t.Fatalf("monday set missing weekly weight: %+v", set)
	}

	// 2026-03-10 is an untrained Tuesday.
	set, err = service.TodayChallenges(db, localDate(2026, 3, 10))
	if err != nil {
		t.Fatalf("today challenges: %v", err)
	}
	if _, ok := gamify.Find(set, gamify.ChallengeRestDay); !ok {
		t.Fatalf("tuesday set missing rest day: %+v", set)
	}
	if _, ok := gamify.Find(set, gamify.ChallengeWeeklyWeight); ok {
		t.Fatalf("tuesday set should not carry weekly weight: %+v", set)
	}
}

func TestCompleteChallengeRequiresProfile(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	today := localDate(2026, 3, 10)
	if _, err := service.CompleteChallenge(db, gamify.ChallengeSetupSchedule, today); err == nil {
		t.Fatalf("expected error completing a challenge without a profile")
	}

	// The attempt must leave no trace, or the one-time rewards would be
	// burned with no ledger to credit them to.
	var completions int
	if err := db.QueryRow(`SELECT COUNT(1) FROM challenge_completions`).Scan(&completions); err != nil {
		t.Fatalf("count completions: %v", err)
	}
	if completions != 0 {
		t.Fatalf("completions = %d, want none recorded", completions)
	}
	items, err := service.ListAchievements(db)
	if err != nil {
		t.Fatalf("list achievements: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("achievements = %+v, want none minted", items)
	}

	// After onboarding, both one-time rewards are still claimable.
	newTestProfile(t, db, today)
	res, err := service.CompleteChallenge(db, gamify.ChallengeSetupSchedule, today)
	if err != nil {
		t.Fatalf("complete setup challenge: %v", err)
	}
	if res.XPAwarded != 50 {
		t.Fatalf("xp awarded = %d, want 25 setup + 25 journey badge", res.XPAwarded)
	}
	p, err := service.GetProfile(db)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.XPTotal != 50 {
		t.Fatalf("ledger total = %d, want 50", p.XPTotal)
	}
}

func TestCompletionLogAndLedgerStayInStep(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	tuesday := localDate(2026, 3, 10)
	newTestProfile(t, db, tuesday)
	newTestSchedule(t, db)

	if _, err := service.CompleteChallenge(db, gamify.ChallengeRestDay, tuesday); err != nil {
		t.Fatalf("complete rest day: %v", err)
	}
	if _, err := service.CompleteChallenge(db, gamify.ChallengeDailyNutrition, tuesday); err != nil {
		t.Fatalf("complete nutrition: %v", err)
	}

	// Every committed completion row has its XP in the ledger: the log sum
	// plus the journey badge reward equals the profile total.
	var logged int
	if err := db.QueryRow(`SELECT IFNULL(SUM(xp_awarded), 0) FROM challenge_completions`).Scan(&logged); err != nil {
		t.Fatalf("sum completion xp: %v", err)
	}
	if logged != 15 {
		t.Fatalf("logged xp = %d, want 5 rest + 10 nutrition", logged)
	}
	p, err := service.GetProfile(db)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.XPTotal != logged+25 {
		t.Fatalf("ledger total = %d, want logged %d plus the 25 XP badge", p.XPTotal, logged)
	}
}

func TestCompleteChallengeAwardsOnceAndMintsJourneyBadge(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	today := localDate(2026, 3, 10)
	newTestProfile(t, db, today)
	newTestSchedule(t, db)

	res, err := service.CompleteChallenge(db, gamify.ChallengeRestDay, today)
	if err != nil {
		t.Fatalf("complete challenge: %v", err)
	}
	if res.AlreadyCompleted || !res.FirstToday {
		t.Fatalf("result = %+v, want a fresh first-of-day completion", res)
	}
	// Rest day is 5 XP; the first completion also carries the 25 XP badge.
	if res.XPAwarded != 30 {
		t.Fatalf("xp awarded = %d, want 30", res.XPAwarded)
	}
	foundJourney := false
	for _, a := range res.NewAchievements {
		if a.Key == "challenge:first" {
			foundJourney = true
		}
	}
	if !foundJourney {
		t.Fatalf("achievements = %+v, want the journey badge", res.NewAchievements)
	}

	p, err := service.GetProfile(db)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.XPTotal != 30 {
		t.Fatalf("ledger total = %d, want 30", p.XPTotal)
	}

	// Repeat completion is flagged and awards nothing.
	res, err = service.CompleteChallenge(db, gamify.ChallengeRestDay, today)
	if err != nil {
		t.Fatalf("repeat completion: %v", err)
	}
	if !res.AlreadyCompleted || res.XPAwarded != 0 || len(res.NewAchievements) != 0 {
		t.Fatalf("repeat result = %+v, want already-completed with no award", res)
	}
	p, err = service.GetProfile(db)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.XPTotal != 30 {
		t.Fatalf("ledger total after repeat = %d, want 30 unchanged", p.XPTotal)
	}
}

func TestCompleteChallengeSecondOfDaySkipsBadge(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	today := localDate(2026, 3, 10)
	newTestProfile(t, db, today)
	newTestSchedule(t, db)

	if _, err := service.CompleteChallenge(db, gamify.ChallengeRestDay, today); err != nil {
		t.Fatalf("first completion: %v", err)
	}
	res, err := service.CompleteChallenge(db, gamify.ChallengeDailyNutrition, today)
	if err != nil {
		t.Fatalf("second completion: %v", err)
	}
	if res.FirstToday {
		t.Fatalf("result = %+v, want FirstToday false", res)
	}
	if res.XPAwarded != 10 || len(res.NewAchievements) != 0 {
		t.Fatalf("result = %+v, want plain 10 XP nutrition reward", res)
	}
}

func TestCompleteChallengeRejectsIDOutsideTodaySet(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	newTestProfile(t, db, localDate(2026, 3, 10))
	newTestSchedule(t, db)

	// Tuesday is a rest day, so the workout challenge is not offered.
	if _, err := service.CompleteChallenge(db, gamify.ChallengeDailyWorkout, localDate(2026, 3, 10)); err == nil {
		t.Fatalf("expected error for challenge outside today's set")
	}
	if _, err := service.CompleteChallenge(db, "no-such-challenge", localDate(2026, 3, 10)); err == nil {
		t.Fatalf("expected error for unknown challenge id")
	}
}

func TestChallengeCompletionResetsAcrossDays(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	tuesday := localDate(2026, 3, 10)
	newTestProfile(t, db, tuesday)
	newTestSchedule(t, db)

	if _, err := service.CompleteChallenge(db, gamify.ChallengeRestDay, tuesday); err != nil {
		t.Fatalf("complete challenge: %v", err)
	}

	// Same day: the regenerated set keeps completion state.
	set, err := service.TodayChallenges(db, tuesday)
	if err != nil {
		t.Fatalf("today challenges: %v", err)
	}
	rest, _ := gamify.Find(set, gamify.ChallengeRestDay)
	if !rest.Completed {
		t.Fatalf("rest day should stay completed within the day: %+v", set)
	}

	// Next day: a fresh set, nothing completed.
	wednesday := localDate(2026, 3, 11)
	set, err = service.TodayChallenges(db, wednesday)
	if err != nil {
		t.Fatalf("today challenges: %v", err)
	}
	for _, c := range set {
		if c.Completed {
			t.Fatalf("new day should start incomplete: %+v", set)
		}
	}

	// Completing the same challenge id on the new day awards again, but the
	// one-time journey badge is not re-minted.
	res, err := service.CompleteChallenge(db, gamify.ChallengeRestDay, wednesday)
	if err != nil {
		t.Fatalf("complete challenge next day: %v", err)
	}
	if res.AlreadyCompleted {
		t.Fatalf("result = %+v, want fresh completion on the new day", res)
	}
	if res.XPAwarded != 5 || len(res.NewAchievements) != 0 {
		t.Fatalf("result = %+v, want 5 XP and no repeated badge", res)
	}
}

func TestCompletionLogPrunedPastRetention(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	newTestSchedule(t, db)

	seed := []string{"2026-03-01", "2026-03-04"}
	for _, day := range seed {
		if _, err := db.Exec(`
INSERT INTO challenge_completions(day, challenge_id, xp_awarded) VALUES(?, 'rest-day', 5)
`, day); err != nil {
			t.Fatalf("seed completion %s: %v", day, err)
		}
	}

	if _, err := service.TodayChallenges(db, localDate(2026, 3, 10)); err != nil {
		t.Fatalf("today challenges: %v", err)
	}

	rows, err := db.Query(`SELECT day FROM challenge_completions ORDER BY day`)
	if err != nil {
		t.Fatalf("query completions: %v", err)
	}
	defer rows.Close()
	var days []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			t.Fatalf("scan completion: %v", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("iterate completions: %v", err)
	}
	if len(days) != 1 || days[0] != "2026-03-04" {
		t.Fatalf("retained days = %v, want only 2026-03-04", days)
	}
}
