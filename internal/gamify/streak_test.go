package gamify_test

import (
	"testing"
	"time"

	"github.com/NatiMalka/fitness-time/internal/gamify"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestStreakEmptyAndSingle(t *testing.T) {
	t.Parallel()

	if got := gamify.Streak(nil); got != 0 {
		t.Fatalf("empty streak = %d, want 0", got)
	}
	if got := gamify.Streak([]time.Time{day(2026, 3, 10)}); got != 1 {
		t.Fatalf("single-entry streak = %d, want 1", got)
	}
}

func TestStreakConsecutiveDays(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		day(2026, 3, 8),
		day(2026, 3, 9),
		day(2026, 3, 10),
	}
	if got := gamify.Streak(dates); got != 3 {
		t.Fatalf("streak = %d, want 3", got)
	}
}

func TestStreakBreaksOnGap(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		day(2026, 3, 5),
		day(2026, 3, 6),
		day(2026, 3, 9),
		day(2026, 3, 10),
	}
	if got := gamify.Streak(dates); got != 2 {
		t.Fatalf("streak across gap = %d, want 2", got)
	}
}

func TestStreakIgnoresOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		time.Date(2026, 3, 10, 22, 15, 0, 0, time.Local),
		day(2026, 3, 8),
		time.Date(2026, 3, 10, 7, 30, 0, 0, time.Local),
		day(2026, 3, 9),
		day(2026, 3, 9),
	}
	if got := gamify.Streak(dates); got != 3 {
		t.Fatalf("streak with dupes = %d, want 3", got)
	}
}

func TestStreakCountsFromMostRecentDay(t *testing.T) {
	t.Parallel()

	// Most recent run is the only one that counts, even when an older run
	// is longer.
	dates := []time.Time{
		day(2026, 2, 1),
		day(2026, 2, 2),
		day(2026, 2, 3),
		day(2026, 2, 4),
		day(2026, 3, 10),
	}
	if got := gamify.Streak(dates); got != 1 {
		t.Fatalf("streak = %d, want 1", got)
	}
}

func TestStreakAcrossMonthBoundary(t *testing.T) {
	t.Parallel()

	dates := []time.Time{
		day(2026, 2, 27),
		day(2026, 2, 28),
		day(2026, 3, 1),
	}
	if got := gamify.Streak(dates); got != 3 {
		t.Fatalf("streak across month boundary = %d, want 3", got)
	}
}
