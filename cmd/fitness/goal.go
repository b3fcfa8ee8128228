package fitness

import (
	"database/sql"
	"fmt"

	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/spf13/cobra"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage personal goals",
}

var (
	goalTitle        string
	goalType         string
	goalTarget       float64
	goalCurrent      float64
	goalDeadline     string
	goalAllCompleted bool
)

var goalAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.GoalInput{
			Title:        goalTitle,
			GoalType:     goalType,
			TargetValue:  goalTarget,
			CurrentValue: goalCurrent,
			Deadline:     goalDeadline,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddGoal(sqldb, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added goal %d\n", id)
			return nil
		})
	},
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListGoals(sqldb, goalAllCompleted)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTITLE\tTYPE\tTARGET\tCURRENT\tDEADLINE\tDONE")
			for _, g := range items {
				done := "no"
				if g.Completed {
					done = "yes"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%.1f\t%.1f\t%s\t%s\n",
					g.ID, g.Title, g.GoalType, g.TargetValue, g.CurrentValue, g.Deadline, done)
			}
			return nil
		})
	},
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <id>",
	Short: "Update a goal's current value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("goal id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateGoalProgress(sqldb, id, goalCurrent); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %d progress to %.1f\n", id, goalCurrent)
			return nil
		})
	},
}

var goalCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a goal as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("goal id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.CompleteGoal(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Completed goal %d\n", id)
			return nil
		})
	},
}

func init() {
	goalAddCmd.Flags().StringVar(&goalTitle, "title", "", "Goal title")
	goalAddCmd.Flags().StringVar(&goalType, "type", "", "Goal type (weight, exercise, nutrition, other)")
	goalAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target value")
	goalAddCmd.Flags().Float64Var(&goalCurrent, "current", 0, "Current value")
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "Deadline (YYYY-MM-DD)")
	_ = goalAddCmd.MarkFlagRequired("title")
	_ = goalAddCmd.MarkFlagRequired("type")

	goalListCmd.Flags().BoolVar(&goalAllCompleted, "all", false, "Include completed goals")
	goalProgressCmd.Flags().Float64Var(&goalCurrent, "current", 0, "New current value")
	_ = goalProgressCmd.MarkFlagRequired("current")

	goalCmd.AddCommand(goalAddCmd, goalListCmd, goalProgressCmd, goalCompleteCmd)
	rootCmd.AddCommand(goalCmd)
}
