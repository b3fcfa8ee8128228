package fitness

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/NatiMalka/fitness-time/internal/app"
	"github.com/NatiMalka/fitness-time/internal/db"
	"github.com/NatiMalka/fitness-time/internal/gamify"
	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/NatiMalka/fitness-time/internal/ui"
)

func withDB(run func(*sql.DB) error) error {
	path, err := resolveDBPath()
	if err != nil {
		return err
	}
	if err := app.EnsureDBDir(path); err != nil {
		return err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	if err := db.ApplyMigrations(sqldb); err != nil {
		return err
	}
	return run(sqldb)
}

func resolveDBPath() (string, error) {
	if strings.TrimSpace(dbPath) != "" {
		return dbPath, nil
	}
	return app.DefaultDBPath()
}

func parseInt64Arg(name, value string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, value)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be > 0", name)
	}
	return v, nil
}

// announce prints whatever an activity unlocked.
func announce(outcome *service.GamifyOutcome) {
	if outcome == nil {
		return
	}
	for _, a := range outcome.NewAchievements {
		if a.XPReward > 0 {
			ui.Celebrate("Achievement unlocked: %s (+%d XP)", a.Title, a.XPReward)
		} else {
			ui.Celebrate("Achievement unlocked: %s", a.Title)
		}
	}
	if outcome.LeveledUp {
		ui.Celebrate("Level up! You are now level %d - %s", outcome.NewLevel, gamify.LevelTitle(outcome.NewLevel))
	}
}
