package service_test

import (
	"testing"
	"time"

	"github.com/NatiMalka/fitness-time/internal/service"
)

func TestGetScheduleDefaultsBeforeSetup(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	sched, err := service.GetSchedule(db)
	if err != nil {
		t.Fatalf("get schedule: %v", err)
	}
	if sched.HasCompletedSetup {
		t.Fatalf("schedule = %+v, want setup incomplete", sched)
	}
	if sched.MealCount != 3 || sched.WeekStart != time.Sunday {
		t.Fatalf("defaults = meals %d, week start %s, want 3 and sunday", sched.MealCount, sched.WeekStart)
	}
	if len(sched.Days) != 0 {
		t.Fatalf("days = %+v, want none before setup", sched.Days)
	}
}

func TestSetScheduleRoundTrip(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	in := service.SetScheduleInput{
		Days: []service.ScheduleDayInput{
			{Weekday: time.Monday, IsTraining: true, Types: []string{"strength", "core"}, Intensity: "intense", DurationMin: 45},
			{Weekday: time.Tuesday},
			{Weekday: time.Thursday, IsTraining: true, Types: []string{"running"}, Intensity: "light", DurationMin: 30},
		},
		MealCount: 4,
		WeekStart: time.Monday,
	}
	if err := service.SetSchedule(db, in); err != nil {
		t.Fatalf("set schedule: %v", err)
	}

	sched, err := service.GetSchedule(db)
	if err != nil {
		t.Fatalf("get schedule: %v", err)
	}
	if !sched.HasCompletedSetup {
		t.Fatalf("schedule = %+v, want setup complete", sched)
	}
	if sched.MealCount != 4 || sched.WeekStart != time.Monday {
		t.Fatalf("schedule = meals %d, week start %s, want 4 and monday", sched.MealCount, sched.WeekStart)
	}
	if len(sched.Days) != 3 {
		t.Fatalf("days = %+v, want 3", sched.Days)
	}

	monday := sched.Days[0]
	if monday.Weekday != time.Monday || !monday.IsTraining {
		t.Fatalf("monday = %+v, want a training day", monday)
	}
	if len(monday.Types) != 2 || monday.Types[0] != "strength" {
		t.Fatalf("monday types = %v, want [strength core]", monday.Types)
	}
	if monday.Intensity != "intense" || monday.DurationMin != 45 {
		t.Fatalf("monday = %+v, want intense 45min", monday)
	}
	tuesday := sched.Days[1]
	if tuesday.IsTraining {
		t.Fatalf("tuesday = %+v, want a rest day", tuesday)
	}
}

func TestSetScheduleReplacesPreviousPlan(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	newTestSchedule(t, db)
	in := service.SetScheduleInput{
		Days:      []service.ScheduleDayInput{{Weekday: time.Friday, IsTraining: true, Intensity: "moderate"}},
		MealCount: 5,
		WeekStart: time.Sunday,
	}
	if err := service.SetSchedule(db, in); err != nil {
		t.Fatalf("replace schedule: %v", err)
	}

	sched, err := service.GetSchedule(db)
	if err != nil {
		t.Fatalf("get schedule: %v", err)
	}
	if len(sched.Days) != 1 || sched.Days[0].Weekday != time.Friday {
		t.Fatalf("days = %+v, want only friday", sched.Days)
	}
	if sched.MealCount != 5 {
		t.Fatalf("meal count = %d, want 5", sched.MealCount)
	}
}

func TestSetScheduleValidation(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	cases := []service.SetScheduleInput{
		{WeekStart: time.Wednesday, MealCount: 3},
		{WeekStart: time.Sunday, MealCount: 9},
		{WeekStart: time.Sunday, MealCount: 3, Days: []service.ScheduleDayInput{
			{Weekday: time.Monday}, {Weekday: time.Monday},
		}},
		{WeekStart: time.Sunday, MealCount: 3, Days: []service.ScheduleDayInput{
			{Weekday: time.Monday, IsTraining: true, Intensity: "extreme"},
		}},
	}
	for i, in := range cases {
		if err := service.SetSchedule(db, in); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, in)
		}
	}
}
