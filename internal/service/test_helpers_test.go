package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/NatiMalka/fitness-time/internal/db"
	"github.com/NatiMalka/fitness-time/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fitness.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func newTestProfile(t *testing.T, sqldb *sql.DB, today time.Time) {
	t.Helper()
	if _, err := service.SaveProfile(sqldb, service.ProfileInput{
		Name:     "Dana",
		WeightKg: 70,
		HeightCm: 172,
	}, today); err != nil {
		t.Fatalf("save profile: %v", err)
	}
}

func newTestSchedule(t *testing.T, sqldb *sql.DB) {
	t.Helper()
	in := service.SetScheduleInput{
		MealCount: 3,
		WeekStart: time.Sunday,
	}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := service.ScheduleDayInput{Weekday: wd}
		if wd == time.Monday || wd == time.Thursday {
			day.IsTraining = true
			day.Types = []string{"strength"}
			day.Intensity = "moderate"
			day.DurationMin = 60
		}
		in.Days = append(in.Days, day)
	}
	if err := service.SetSchedule(sqldb, in); err != nil {
		t.Fatalf("set schedule: %v", err)
	}
}

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}
