package service

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatiMalka/fitness-time/internal/gamify"
	"github.com/NatiMalka/fitness-time/internal/model"
)

const completionRetentionDays = 7

// TodayChallenges derives today's challenge set, re-marks ids already
// completed today so a repeat call on the same day keeps completion state,
// records the generation date, and prunes completion-log entries older than
// the retention window.
func TodayChallenges(db *sql.DB, today time.Time) ([]gamify.Challenge, error) {
	sched, err := GetSchedule(db)
	if err != nil {
		return nil, err
	}
	set := gamify.DailySet(sched, today)

	done, err := completionsFor(db, today.Format(dayFormat))
	if err != nil {
		return nil, err
	}
	set = gamify.MarkCompleted(set, done)

	if err := SetConfig(db, ConfigLastChallengeDay, today.Format(dayFormat)); err != nil {
		return nil, err
	}
	if err := pruneCompletions(db, today); err != nil {
		return nil, err
	}
	return set, nil
}

// ChallengeResult reports one completion attempt. A repeat completion is
// flagged AlreadyCompleted with zero XP and no state change.
type ChallengeResult struct {
	Challenge        gamify.Challenge
	AlreadyCompleted bool
	FirstToday       bool
	XPAwarded        int
	NewAchievements  []model.Achievement
	LeveledUp        bool
	NewLevel         int
}

// CompleteChallenge marks a challenge from today's set as done, records it
// in the per-day completion log, and awards its XP exactly once. The first
// completion of the day also mints the one-time journey badge; its reward
// is folded into the same single award. It needs a profile: completing a
// one-time challenge with no ledger to credit would burn its reward, so the
// attempt is refused instead. The completion row, any badge, and the ledger
// update commit together.
func CompleteChallenge(db *sql.DB, id string, today time.Time) (*ChallengeResult, error) {
	profile, err := GetProfile(db)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile yet; run 'fitness profile set' first")
	}

	sched, err := GetSchedule(db)
	if err != nil {
		return nil, err
	}
	set := gamify.DailySet(sched, today)
	challenge, ok := gamify.Find(set, id)
	if !ok {
		return nil, fmt.Errorf("challenge %q is not in today's set", id)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin challenge tx: %w", err)
	}
	defer tx.Rollback()

	day := today.Format(dayFormat)
	done, err := completionsFor(tx, day)
	if err != nil {
		return nil, err
	}
	if done[id] {
		challenge.Completed = true
		return &ChallengeResult{Challenge: challenge, AlreadyCompleted: true}, nil
	}
	firstToday := len(done) == 0

	if _, err := tx.Exec(`
INSERT INTO challenge_completions(day, challenge_id, xp_awarded)
VALUES(?, ?, ?)
ON CONFLICT(day, challenge_id) DO NOTHING
`, day, id, challenge.XPReward); err != nil {
		return nil, fmt.Errorf("record challenge completion: %w", err)
	}

	result := &ChallengeResult{Challenge: challenge, FirstToday: firstToday}
	result.Challenge.Completed = true

	xpToAward := challenge.XPReward
	if firstToday {
		minted, err := insertAchievement(tx, gamify.FirstChallengeAchievement(today))
		if err != nil {
			return nil, err
		}
		if minted != nil {
			result.NewAchievements = append(result.NewAchievements, *minted)
			xpToAward += minted.XPReward
		}
	}

	xp, err := applyXP(tx, xpToAward, today)
	if err != nil {
		return nil, err
	}
	if xp != nil {
		result.XPAwarded = xpToAward
		result.LeveledUp = xp.LeveledUp
		result.NewLevel = xp.NewLevel
		if xp.LevelAchievement != nil {
			result.NewAchievements = append(result.NewAchievements, *xp.LevelAchievement)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit challenge tx: %w", err)
	}
	return result, nil
}

func completionsFor(q dbtx, day string) (map[string]bool, error) {
	rows, err := q.Query(`SELECT challenge_id FROM challenge_completions WHERE day = ?`, day)
	if err != nil {
		return nil, fmt.Errorf("list challenge completions: %w", err)
	}
	defer rows.Close()

	done := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan challenge completion: %w", err)
		}
		done[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate challenge completions: %w", err)
	}
	return done, nil
}

// pruneCompletions drops log entries older than the retention window. Pure
// garbage collection: stale rows never affect correctness, only storage.
func pruneCompletions(db *sql.DB, today time.Time) error {
	cutoff := today.AddDate(0, 0, -completionRetentionDays).Format(dayFormat)
	if _, err := db.Exec(`DELETE FROM challenge_completions WHERE day < ?`, cutoff); err != nil {
		return fmt.Errorf("prune challenge completions: %w", err)
	}
	return nil
}
