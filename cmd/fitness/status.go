package fitness

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/NatiMalka/fitness-time/internal/ui"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's progress at a glance",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			s, err := service.Summary(sqldb, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if !s.HasProfile {
				ui.Warn("No profile yet. Run 'fitness profile set' to get started.")
			} else {
				fmt.Fprintf(out, "%s's fitness - %s\n\n", s.Name, s.Date)
				fmt.Fprintf(out, "Level %d %s  %s %d%%\n",
					s.Progress.Level, s.Progress.Title, progressBar(s.Progress.Percent), s.Progress.Percent)
				fmt.Fprintf(out, "XP: %d toward next level, %d total\n", s.CurrentXP, s.TotalXP)
				if s.BMI > 0 {
					fmt.Fprintf(out, "Weight: %.1f kg  BMI: %.1f (%s)\n", s.LatestWeightKg, s.BMI, s.BMICategory)
				}
				fmt.Fprintln(out)
			}

			fmt.Fprintf(out, "Streaks: weight %dd, meals %dd, exercise %dd\n",
				s.WeightStreak, s.MealStreak, s.ExerciseStreak)
			fmt.Fprintf(out, "Today: %d meals (%d kcal), %d workouts\n\n",
				s.TodayMeals, s.TodayCalories, s.TodayWorkouts)

			fmt.Fprintln(out, "Today's challenges:")
			for _, c := range s.Challenges {
				done := " "
				if c.Completed {
					done = "x"
				}
				fmt.Fprintf(out, "  [%s] %s (+%d XP)  %s\n", done, c.Title, c.XPReward, c.ID)
			}
			return nil
		})
	},
}

// progressBar renders a 20-cell bar for a 0-100 percent value.
func progressBar(percent int) string {
	filled := percent / 5
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 20-filled) + "]"
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
