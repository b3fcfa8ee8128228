package fitness

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/spf13/cobra"
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Track menstrual cycle entries",
}

var (
	cycleFlow     string
	cycleSymptoms []string
	cycleNotes    string
	cycleDate     string
	cycleLimit    int
)

var cycleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a cycle entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.CycleInput{
			Date:     cycleDate,
			Flow:     cycleFlow,
			Symptoms: cycleSymptoms,
			Notes:    cycleNotes,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddCycleEntry(sqldb, in, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added cycle entry %d\n", id)
			return nil
		})
	},
}

var cycleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cycle entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListCycleEntries(sqldb, cycleLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tFLOW\tSYMPTOMS\tNOTES")
			for _, e := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\t%s\n",
					e.ID, e.Date, e.Flow, strings.Join(e.Symptoms, ","), e.Notes)
			}
			return nil
		})
	},
}

func init() {
	cycleAddCmd.Flags().StringVar(&cycleFlow, "flow", "", "Flow intensity (light, medium, heavy)")
	cycleAddCmd.Flags().StringSliceVar(&cycleSymptoms, "symptom", nil, "Symptom (repeatable)")
	cycleAddCmd.Flags().StringVar(&cycleNotes, "notes", "", "Optional notes")
	cycleAddCmd.Flags().StringVar(&cycleDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	cycleListCmd.Flags().IntVar(&cycleLimit, "limit", 50, "Maximum entries to list")

	cycleCmd.AddCommand(cycleAddCmd, cycleListCmd)
	rootCmd.AddCommand(cycleCmd)
}
