package fitness

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Track meal entries",
}

var (
	mealName     string
	mealCalories int
	mealType     string
	mealQuality  string
	mealDesc     string
	mealDate     string
	mealListDate string
	mealLimit    int
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a meal entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.MealInput{
			Date:        mealDate,
			Name:        mealName,
			Calories:    mealCalories,
			MealType:    mealType,
			Quality:     mealQuality,
			Description: mealDesc,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, outcome, err := service.AddMealEntry(sqldb, in, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added meal entry %d\n", id)
			announce(outcome)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List meal entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListMealEntries(sqldb, mealListDate, mealLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tNAME\tCALORIES\tTYPE")
			for _, e := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%s\n", e.ID, e.Date, e.Name, e.Calories, e.MealType)
			}
			return nil
		})
	},
}

var mealUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a meal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("meal entry id", args[0])
		if err != nil {
			return err
		}
		in := service.MealInput{
			Date:        mealDate,
			Name:        mealName,
			Calories:    mealCalories,
			MealType:    mealType,
			Quality:     mealQuality,
			Description: mealDesc,
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateMealEntry(sqldb, id, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal entry %d\n", id)
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a meal entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("meal entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteMealEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal entry %d\n", id)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{mealAddCmd, mealUpdateCmd} {
		c.Flags().StringVar(&mealName, "name", "", "Meal name")
		c.Flags().IntVar(&mealCalories, "calories", 0, "Calories")
		c.Flags().StringVar(&mealType, "type", "", "Meal type (breakfast, lunch, dinner, snack)")
		c.Flags().StringVar(&mealQuality, "quality", "", "Meal quality (healthy, moderate, unhealthy)")
		c.Flags().StringVar(&mealDesc, "description", "", "Description")
		c.Flags().StringVar(&mealDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
		_ = c.MarkFlagRequired("name")
		_ = c.MarkFlagRequired("type")
	}
	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Only list entries for this date")
	mealListCmd.Flags().IntVar(&mealLimit, "limit", 50, "Maximum entries to list")

	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealUpdateCmd, mealDeleteCmd)
	rootCmd.AddCommand(mealCmd)
}
