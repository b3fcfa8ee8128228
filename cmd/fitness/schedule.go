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

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Configure the weekly training schedule",
}

var (
	scheduleTrainingDays []string
	scheduleTypes        []string
	scheduleIntensity    string
	scheduleDuration     int
	scheduleMealCount    int
	scheduleWeekStart    string
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var scheduleSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up the weekly plan and unlock daily challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		weekStart, ok := weekdayNames[strings.ToLower(strings.TrimSpace(scheduleWeekStart))]
		if !ok {
			return fmt.Errorf("invalid week start %q (expected sunday or monday)", scheduleWeekStart)
		}

		training := make(map[time.Weekday]bool)
		for _, name := range scheduleTrainingDays {
			wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
			if !ok {
				return fmt.Errorf("invalid weekday %q", name)
			}
			training[wd] = true
		}

		in := service.SetScheduleInput{
			MealCount: scheduleMealCount,
			WeekStart: weekStart,
		}
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			day := service.ScheduleDayInput{Weekday: wd}
			if training[wd] {
				day.IsTraining = true
				day.Types = scheduleTypes
				day.Intensity = strings.ToLower(strings.TrimSpace(scheduleIntensity))
				day.DurationMin = scheduleDuration
			}
			in.Days = append(in.Days, day)
		}

		return withDB(func(sqldb *sql.DB) error {
			if err := service.SetSchedule(sqldb, in); err != nil {
				return err
			}
			ui.Success("Schedule saved. Daily challenges now follow your plan.")
			return nil
		})
	},
}

var scheduleShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the weekly schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			sched, err := service.GetSchedule(sqldb)
			if err != nil {
				return err
			}
			if !sched.HasCompletedSetup {
				ui.Warn("No schedule yet. Run 'fitness schedule setup' to create one.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Week starts: %s\tMeals per day: %d\n",
				strings.ToLower(sched.WeekStart.String()), sched.MealCount)
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tTRAINING\tTYPES\tINTENSITY\tDURATION_MIN")
			for _, d := range sched.Days {
				training := "rest"
				if d.IsTraining {
					training = "training"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\n",
					strings.ToLower(d.Weekday.String()), training,
					strings.Join(d.Types, ","), d.Intensity, d.DurationMin)
			}
			return nil
		})
	},
}

func init() {
	scheduleSetupCmd.Flags().StringSliceVar(&scheduleTrainingDays, "training-day", nil, "Training weekday (repeatable, e.g. monday)")
	scheduleSetupCmd.Flags().StringSliceVar(&scheduleTypes, "type", nil, "Training type for training days (repeatable)")
	scheduleSetupCmd.Flags().StringVar(&scheduleIntensity, "intensity", "moderate", "Training intensity (light, moderate, intense)")
	scheduleSetupCmd.Flags().IntVar(&scheduleDuration, "duration", 60, "Training duration in minutes")
	scheduleSetupCmd.Flags().IntVar(&scheduleMealCount, "meals", 3, "Meals per day")
	scheduleSetupCmd.Flags().StringVar(&scheduleWeekStart, "week-start", "sunday", "First day of the tracked week (sunday or monday)")

	scheduleCmd.AddCommand(scheduleSetupCmd, scheduleShowCmd)
	rootCmd.AddCommand(scheduleCmd)
}
