package gamify

import (
	"fmt"
	"math"
)

// XPState is the canonical experience ledger: the derived level, XP inside
// the current level band, and the monotonically growing lifetime total.
type XPState struct {
	Level     int
	CurrentXP int
	TotalXP   int
}

// LevelBand is one row of the level table: total-XP boundaries [MinXP, MaxXP)
// and a display title. The top band is open-ended.
type LevelBand struct {
	Level int
	MinXP int
	MaxXP int
	Title string
}

var levelBands = []LevelBand{
	{Level: 1, MinXP: 0, MaxXP: 100, Title: "Beginner"},
	{Level: 2, MinXP: 100, MaxXP: 250, Title: "Novice"},
	{Level: 3, MinXP: 250, MaxXP: 500, Title: "Apprentice"},
	{Level: 4, MinXP: 500, MaxXP: 1000, Title: "Adept"},
	{Level: 5, MinXP: 1000, MaxXP: 2000, Title: "Expert"},
	{Level: 6, MinXP: 2000, MaxXP: 3500, Title: "Master"},
	{Level: 7, MinXP: 3500, MaxXP: 5000, Title: "Advanced Master"},
	{Level: 8, MinXP: 5000, MaxXP: 7500, Title: "Champion"},
	{Level: 9, MinXP: 7500, MaxXP: 10000, Title: "Legend"},
	{Level: 10, MinXP: 10000, MaxXP: math.MaxInt, Title: "Undefeated"},
}

// Levels returns a copy of the level table.
func Levels() []LevelBand {
	out := make([]LevelBand, len(levelBands))
	copy(out, levelBands)
	return out
}

// LevelTitle returns the display title for a level, clamped to the table.
func LevelTitle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(levelBands) {
		level = len(levelBands)
	}
	return levelBands[level-1].Title
}

func bandFor(totalXP int) LevelBand {
	for _, b := range levelBands {
		if totalXP >= b.MinXP && totalXP < b.MaxXP {
			return b
		}
	}
	return levelBands[len(levelBands)-1]
}

// AwardResult carries the updated ledger and the level-up signal. Crossing
// several bands in one award raises a single signal with the final level.
type AwardResult struct {
	State     XPState
	LeveledUp bool
	NewLevel  int
}

// AwardXP adds amount to the ledger and re-derives the level from the band
// table. Negative amounts are rejected. A zero-value state is treated as a
// fresh ledger at level 1 / 0 XP.
func AwardXP(state XPState, amount int) (AwardResult, error) {
	if amount < 0 {
		return AwardResult{}, fmt.Errorf("xp amount must be >= 0, got %d", amount)
	}
	if state.Level < 1 {
		state = XPState{Level: 1}
	}
	prevLevel := state.Level
	total := state.TotalXP + amount
	band := bandFor(total)
	next := XPState{Level: band.Level, CurrentXP: total - band.MinXP, TotalXP: total}
	return AwardResult{State: next, LeveledUp: band.Level > prevLevel, NewLevel: band.Level}, nil
}

// LevelProgress describes where a ledger sits inside its band, for display.
type LevelProgress struct {
	Level         int
	Title         string
	Percent       int
	LevelFloor    int
	NextThreshold int
}

// Progress computes percent-to-next-level, clamped to [0, 100]. The top band
// has no ceiling; it reports 100 percent and its own floor as the threshold.
func Progress(state XPState) LevelProgress {
	if state.Level < 1 {
		state = XPState{Level: 1}
	}
	band := bandFor(state.TotalXP)
	p := LevelProgress{Level: band.Level, Title: band.Title, LevelFloor: band.MinXP, NextThreshold: band.MaxXP}
	if band.MaxXP == math.MaxInt {
		p.Percent = 100
		p.NextThreshold = band.MinXP
		return p
	}
	pct := (state.TotalXP - band.MinXP) * 100 / (band.MaxXP - band.MinXP)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	p.Percent = pct
	return p
}
