package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/NatiMalka/fitness-time/internal/gamify"
	"github.com/NatiMalka/fitness-time/internal/model"
)

type ProfileInput struct {
	Name           string
	WeightKg       float64
	HeightCm       float64
	BirthDate      string
	Gender         string
	ActivityLevel  string
	WeightGoal     string
	TargetWeightKg *float64
}

// SaveProfile creates or updates the single user profile. Creating it also
// records today's weight as the first weight entry and, when a weight-goal
// direction is set, seeds a personalized weight goal. The recorded entry
// feeds straight into milestone evaluation, so the returned outcome carries
// anything it unlocked. The XP columns are never touched by the profile
// upsert itself; ApplyXP is the only writer.
func SaveProfile(db *sql.DB, in ProfileInput, today time.Time) (*GamifyOutcome, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("profile name is required")
	}
	if err := validatePositiveFloat("weight", in.WeightKg); err != nil {
		return nil, err
	}
	if err := validatePositiveFloat("height", in.HeightCm); err != nil {
		return nil, err
	}
	in.BirthDate = strings.TrimSpace(in.BirthDate)
	if in.BirthDate != "" {
		if _, err := parseDay(in.BirthDate); err != nil {
			return nil, fmt.Errorf("invalid birth date %q (expected YYYY-MM-DD)", in.BirthDate)
		}
	}
	if err := optionalOneOf("gender", in.Gender, "male", "female", "other"); err != nil {
		return nil, err
	}
	if in.ActivityLevel == "" {
		in.ActivityLevel = "moderate"
	}
	if err := oneOf("activity level", in.ActivityLevel, "sedentary", "light", "moderate", "active", "veryActive"); err != nil {
		return nil, err
	}
	if err := optionalOneOf("weight goal", in.WeightGoal, "lose", "maintain", "gain"); err != nil {
		return nil, err
	}
	if in.TargetWeightKg != nil && *in.TargetWeightKg <= 0 {
		return nil, fmt.Errorf("target weight must be > 0")
	}

	existing, err := GetProfile(db)
	if err != nil {
		return nil, err
	}
	isNew := existing == nil
	day := today.Format(dayFormat)

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin profile tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
INSERT INTO profile(id, name, weight_kg, height_cm, birth_date, gender, activity_level, weight_goal, target_weight_kg)
VALUES(1, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  name=excluded.name,
  weight_kg=excluded.weight_kg,
  height_cm=excluded.height_cm,
  birth_date=excluded.birth_date,
  gender=excluded.gender,
  activity_level=excluded.activity_level,
  weight_goal=excluded.weight_goal,
  target_weight_kg=excluded.target_weight_kg,
  updated_at=CURRENT_TIMESTAMP
`, in.Name, in.WeightKg, in.HeightCm, nullable(in.BirthDate), nullable(in.Gender), in.ActivityLevel,
		nullable(in.WeightGoal), in.TargetWeightKg); err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	// The profile weight doubles as today's weight entry.
	var entryID int64
	err = tx.QueryRow(`SELECT id FROM weight_entries WHERE entry_date = ? LIMIT 1`, day).Scan(&entryID)
	switch {
	case err == sql.ErrNoRows:
		if _, err := tx.Exec(`INSERT INTO weight_entries(entry_date, weight_kg) VALUES(?, ?)`, day, in.WeightKg); err != nil {
			return nil, fmt.Errorf("record initial weight entry: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("check today's weight entry: %w", err)
	default:
		if _, err := tx.Exec(`UPDATE weight_entries SET weight_kg = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, in.WeightKg, entryID); err != nil {
			return nil, fmt.Errorf("update today's weight entry: %w", err)
		}
	}

	if isNew && in.WeightGoal != "" {
		title, target := seededWeightGoal(in)
		deadline := today.AddDate(0, 3, 0).Format(dayFormat)
		if _, err := tx.Exec(`
INSERT INTO goals(title, goal_type, target_value, current_value, deadline)
VALUES(?, 'weight', ?, ?, ?)
`, title, target, in.WeightKg, deadline); err != nil {
			return nil, fmt.Errorf("seed weight goal: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit profile tx: %w", err)
	}

	// The weight entry just recorded counts toward milestones right away.
	return CheckAchievements(db, today)
}

func seededWeightGoal(in ProfileInput) (string, float64) {
	if in.TargetWeightKg != nil {
		return fmt.Sprintf("Reach target weight of %.1fkg", *in.TargetWeightKg), *in.TargetWeightKg
	}
	switch in.WeightGoal {
	case "lose":
		return "Lose 5kg", in.WeightKg - 5
	case "gain":
		return "Gain 3kg", in.WeightKg + 3
	default:
		return "Maintain current weight", in.WeightKg
	}
}

// GetProfile returns the user profile, or nil when none exists yet.
func GetProfile(db *sql.DB) (*model.Profile, error) {
	return getProfile(db)
}

func getProfile(q dbtx) (*model.Profile, error) {
	var p model.Profile
	var birthDate, gender, weightGoal sql.NullString
	var target sql.NullFloat64
	err := q.QueryRow(`
SELECT name, weight_kg, height_cm, birth_date, gender, activity_level, weight_goal, target_weight_kg,
       xp_level, xp_current, xp_total, created_at, updated_at
FROM profile WHERE id = 1
`).Scan(&p.Name, &p.WeightKg, &p.HeightCm, &birthDate, &gender, &p.ActivityLevel, &weightGoal, &target,
		&p.XPLevel, &p.XPCurrent, &p.XPTotal, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p.BirthDate = birthDate.String
	p.Gender = gender.String
	p.WeightGoal = weightGoal.String
	if target.Valid {
		v := target.Float64
		p.TargetWeightKg = &v
	}
	return &p, nil
}

// XPOutcome reports an applied award: the updated ledger and, when a band
// boundary was crossed, the freshly minted level-up badge.
type XPOutcome struct {
	State            gamify.XPState
	LeveledUp        bool
	NewLevel         int
	LevelAchievement *model.Achievement
}

// ApplyXP is the sole mutator of the profile's XP state. With no profile it
// is a silent no-op and returns nil, since "no profile yet" is the normal
// pre-onboarding condition. On a level-up it also records the level badge.
// The ledger update and the badge land in one transaction.
func ApplyXP(db *sql.DB, amount int, today time.Time) (*XPOutcome, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin xp tx: %w", err)
	}
	defer tx.Rollback()

	outcome, err := applyXP(tx, amount, today)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit xp tx: %w", err)
	}
	return outcome, nil
}

func applyXP(q dbtx, amount int, today time.Time) (*XPOutcome, error) {
	profile, err := getProfile(q)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	state := gamify.XPState{Level: profile.XPLevel, CurrentXP: profile.XPCurrent, TotalXP: profile.XPTotal}
	res, err := gamify.AwardXP(state, amount)
	if err != nil {
		return nil, err
	}

	if _, err := q.Exec(`
UPDATE profile SET xp_level = ?, xp_current = ?, xp_total = ?, updated_at = CURRENT_TIMESTAMP WHERE id = 1
`, res.State.Level, res.State.CurrentXP, res.State.TotalXP); err != nil {
		return nil, fmt.Errorf("update xp state: %w", err)
	}

	outcome := &XPOutcome{State: res.State, LeveledUp: res.LeveledUp, NewLevel: res.NewLevel}
	if res.LeveledUp {
		minted, err := insertAchievement(q, gamify.LevelUpAchievement(res.NewLevel, today))
		if err != nil {
			return nil, err
		}
		outcome.LevelAchievement = minted
	}
	return outcome, nil
}

func nullable(value string) any {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return value
}

func newAchievementID() string {
	return uuid.NewString()
}
