package fitness

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatiMalka/fitness-time/internal/gamify"
	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/NatiMalka/fitness-time/internal/ui"
	"github.com/spf13/cobra"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "View and complete daily challenges",
}

var challengeListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show today's challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			set, err := service.TodayChallenges(sqldb, time.Now())
			if err != nil {
				return err
			}
			printChallenges(cmd, set)
			return nil
		})
	},
}

var challengeCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark one of today's challenges as done",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			res, err := service.CompleteChallenge(sqldb, args[0], time.Now())
			if err != nil {
				return err
			}
			if res.AlreadyCompleted {
				ui.Warn("%q is already completed today.", res.Challenge.Title)
				return nil
			}
			ui.Success("Completed %q", res.Challenge.Title)
			if res.XPAwarded > 0 {
				ui.Celebrate("+%d XP", res.XPAwarded)
			}
			for _, a := range res.NewAchievements {
				ui.Celebrate("Achievement unlocked: %s", a.Title)
			}
			if res.LeveledUp {
				ui.Celebrate("Level up! You are now level %d - %s", res.NewLevel, gamify.LevelTitle(res.NewLevel))
			}
			return nil
		})
	},
}

func printChallenges(cmd *cobra.Command, set []gamify.Challenge) {
	if len(set) == 1 && set[0].ID == gamify.ChallengeSetupSchedule {
		ui.Info("Set up your training schedule to unlock daily challenges:")
		ui.Info("  fitness schedule setup --training-day monday --training-day thursday")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ID\tXP\tDONE\tTITLE")
	for _, c := range set {
		done := " "
		if c.Completed {
			done = "x"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t[%s]\t%s\n", c.ID, c.XPReward, done, c.Title)
	}
}

func init() {
	challengeCmd.AddCommand(challengeListCmd, challengeCompleteCmd)
	rootCmd.AddCommand(challengeCmd)
}
