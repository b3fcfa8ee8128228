package fitness

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/spf13/cobra"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track weight entries",
}

var (
	weightValue float64
	weightDate  string
	weightNotes string
	weightLimit int
)

var weightAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a weight entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.WeightInput{Date: weightDate, WeightKg: weightValue, Notes: weightNotes}
		return withDB(func(sqldb *sql.DB) error {
			id, outcome, err := service.AddWeightEntry(sqldb, in, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added weight entry %d\n", id)
			announce(outcome)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List weight entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListWeightEntries(sqldb, weightLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tWEIGHT_KG\tNOTES")
			for _, e := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%.1f\t%s\n", e.ID, e.Date, e.WeightKg, e.Notes)
			}
			return nil
		})
	},
}

var weightUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("weight entry id", args[0])
		if err != nil {
			return err
		}
		in := service.WeightInput{Date: weightDate, WeightKg: weightValue, Notes: weightNotes}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.UpdateWeightEntry(sqldb, id, in); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated weight entry %d\n", id)
			return nil
		})
	},
}

var weightDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("weight entry id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteWeightEntry(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted weight entry %d\n", id)
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{weightAddCmd, weightUpdateCmd} {
		c.Flags().Float64Var(&weightValue, "kg", 0, "Weight in kg")
		c.Flags().StringVar(&weightDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
		c.Flags().StringVar(&weightNotes, "notes", "", "Notes")
		_ = c.MarkFlagRequired("kg")
	}
	weightListCmd.Flags().IntVar(&weightLimit, "limit", 50, "Maximum entries to list")

	weightCmd.AddCommand(weightAddCmd, weightListCmd, weightUpdateCmd, weightDeleteCmd)
	rootCmd.AddCommand(weightCmd)
}
