package fitness

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Track exercise entries",
}

var (
	exerciseType      string
	exerciseDuration  int
	exerciseCalories  int
	exerciseIntensity string
	exerciseDate      string
	exerciseListDate  string
	exerciseLimit     int
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an exercise entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.ExerciseInput{
			Date:           exerciseDate,
			ExerciseType:   exerciseType,
			DurationMin:    exerciseDuration,
			CaloriesBurned: exerciseCalories,
			Intensity:      exerciseIntensity,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, outcome, err := service.AddExerciseEntry(sqldb, in, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added exercise entry %d\n", id)
			announce(outcome)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListExerciseEntries(sqldb, exerciseListDate, exerciseLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tTYPE\tDURATION_MIN\tCALORIES\tINTENSITY")
			for _, e := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%d\t%s\n",
					e.ID, e.Date, e.ExerciseType, e.DurationMin, e.CaloriesBurned, e.Intensity)
			}
			return nil
		})
	},
}

var exerciseUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an exercise entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("exercise entry id", args[0])
		if err != nil {
			return err
		}
		in := service.ExerciseInput{
			Date:           exerciseDate,
			ExerciseType:   exerciseType,
			DurationMin:    exerciseDuration,
			CaloriesBurned: exerciseCalories,
			Intensity:      exerciseIntensity,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateExerciseEntry(sqldb, id, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated exercise entry %d\n", id)
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("exercise entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteExerciseEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted exercise entry %d\n", id)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{exerciseAddCmd, exerciseUpdateCmd} {
		c.Flags().StringVar(&exerciseType, "type", "", "Exercise type (e.g. running, strength)")
		c.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes")
		c.Flags().IntVar(&exerciseCalories, "calories", 0, "Calories burned")
		c.Flags().StringVar(&exerciseIntensity, "intensity", "", "Intensity (light, moderate, intense)")
		c.Flags().StringVar(&exerciseDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
		_ = c.MarkFlagRequired("type")
		_ = c.MarkFlagRequired("duration")
	}
	exerciseListCmd.Flags().StringVar(&exerciseListDate, "date", "", "Only list entries for this date")
	exerciseListCmd.Flags().IntVar(&exerciseLimit, "limit", 50, "Maximum entries to list")

	exerciseCmd.AddCommand(exerciseAddCmd, exerciseListCmd, exerciseUpdateCmd, exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
