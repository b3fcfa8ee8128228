package gamify_test

import (
	"testing"

	"github.com/NatiMalka/fitness-time/internal/gamify"
)

func TestAwardXPFreshLedger(t *testing.T) {
	t.Parallel()

	res, err := gamify.AwardXP(gamify.XPState{}, 30)
	if err != nil {
		t.Fatalf("award xp: %v", err)
	}
	if res.State.Level != 1 || res.State.CurrentXP != 30 || res.State.TotalXP != 30 {
		t.Fatalf("state = %+v, want level 1, current 30, total 30", res.State)
	}
	if res.LeveledUp {
		t.Fatalf("unexpected level-up on fresh ledger")
	}
}

func TestAwardXPLevelUpAtBoundary(t *testing.T) {
	t.Parallel()

	state := gamify.XPState{Level: 1, CurrentXP: 90, TotalXP: 90}
	res, err := gamify.AwardXP(state, 10)
	if err != nil {
		t.Fatalf("award xp: %v", err)
	}
	if !res.LeveledUp || res.NewLevel != 2 {
		t.Fatalf("result = %+v, want level-up to 2", res)
	}
	if res.State.Level != 2 || res.State.CurrentXP != 0 || res.State.TotalXP != 100 {
		t.Fatalf("state = %+v, want level 2, current 0, total 100", res.State)
	}
}

func TestAwardXPMultiBandSingleSignal(t *testing.T) {
	t.Parallel()

	// 150 XP from zero crosses the level 2 boundary and lands mid-band.
	res, err := gamify.AwardXP(gamify.XPState{}, 150)
	if err != nil {
		t.Fatalf("award xp: %v", err)
	}
	if !res.LeveledUp || res.NewLevel != 2 {
		t.Fatalf("result = %+v, want one level-up signal carrying level 2", res)
	}
	if res.State.Level != 2 || res.State.CurrentXP != 50 || res.State.TotalXP != 150 {
		t.Fatalf("state = %+v, want level 2, current 50, total 150", res.State)
	}
}

func TestAwardXPRejectsNegative(t *testing.T) {
	t.Parallel()

	if _, err := gamify.AwardXP(gamify.XPState{Level: 1}, -1); err == nil {
		t.Fatalf("expected error for negative amount")
	}
}

func TestAwardXPZeroIsNoOp(t *testing.T) {
	t.Parallel()

	state := gamify.XPState{Level: 3, CurrentXP: 40, TotalXP: 290}
	res, err := gamify.AwardXP(state, 0)
	if err != nil {
		t.Fatalf("award xp: %v", err)
	}
	if res.State != state || res.LeveledUp {
		t.Fatalf("result = %+v, want unchanged state and no level-up", res)
	}
}

func TestAwardXPLevelInvariant(t *testing.T) {
	t.Parallel()

	// Whatever sequence of awards led to a total, the level matches the band
	// for that total and CurrentXP is the offset from its floor.
	state := gamify.XPState{}
	for _, amount := range []int{10, 40, 70, 200, 300, 2000, 9000} {
		res, err := gamify.AwardXP(state, amount)
		if err != nil {
			t.Fatalf("award %d: %v", amount, err)
		}
		state = res.State
		var band gamify.LevelBand
		for _, b := range gamify.Levels() {
			if state.TotalXP >= b.MinXP && state.TotalXP < b.MaxXP {
				band = b
				break
			}
		}
		if state.Level != band.Level {
			t.Fatalf("total %d: level = %d, want %d", state.TotalXP, state.Level, band.Level)
		}
		if state.CurrentXP != state.TotalXP-band.MinXP {
			t.Fatalf("total %d: current = %d, want %d", state.TotalXP, state.CurrentXP, state.TotalXP-band.MinXP)
		}
	}
	if state.Level != 10 {
		t.Fatalf("final level = %d, want 10", state.Level)
	}
}

func TestProgressMidBand(t *testing.T) {
	t.Parallel()

	p := gamify.Progress(gamify.XPState{Level: 2, CurrentXP: 75, TotalXP: 175})
	if p.Level != 2 || p.Title != "Novice" {
		t.Fatalf("progress = %+v, want level 2 Novice", p)
	}
	if p.Percent != 50 {
		t.Fatalf("percent = %d, want 50", p.Percent)
	}
	if p.LevelFloor != 100 || p.NextThreshold != 250 {
		t.Fatalf("band bounds = [%d, %d), want [100, 250)", p.LevelFloor, p.NextThreshold)
	}
}

func TestProgressTopBand(t *testing.T) {
	t.Parallel()

	p := gamify.Progress(gamify.XPState{Level: 10, CurrentXP: 500, TotalXP: 10500})
	if p.Percent != 100 {
		t.Fatalf("top-band percent = %d, want 100", p.Percent)
	}
	if p.NextThreshold != 10000 {
		t.Fatalf("top-band threshold = %d, want its own floor 10000", p.NextThreshold)
	}
	if p.Title != "Undefeated" {
		t.Fatalf("title = %q, want Undefeated", p.Title)
	}
}

func TestLevelTitleClamped(t *testing.T) {
	t.Parallel()

	if got := gamify.LevelTitle(0); got != "Beginner" {
		t.Fatalf("LevelTitle(0) = %q, want Beginner", got)
	}
	if got := gamify.LevelTitle(99); got != "Undefeated" {
		t.Fatalf("LevelTitle(99) = %q, want Undefeated", got)
	}
}
