package fitness

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/spf13/cobra"
)

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Track daily mood",
}

var (
	moodValue string
	moodNotes string
	moodDate  string
	moodLimit int
)

var moodAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a mood entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		in := service.MoodInput{
			Date:  moodDate,
			Mood:  moodValue,
			Notes: moodNotes,
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddMoodEntry(sqldb, in, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added mood entry %d\n", id)
			return nil
		})
	},
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mood entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListMoodEntries(sqldb, moodLimit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tMOOD\tNOTES")
			for _, e := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%s\n", e.ID, e.Date, e.Mood, e.Notes)
			}
			return nil
		})
	},
}

func init() {
	moodAddCmd.Flags().StringVar(&moodValue, "mood", "", "Mood (great, good, neutral, bad, awful)")
	moodAddCmd.Flags().StringVar(&moodNotes, "notes", "", "Optional notes")
	moodAddCmd.Flags().StringVar(&moodDate, "date", "", "Entry date (YYYY-MM-DD, default today)")
	_ = moodAddCmd.MarkFlagRequired("mood")
	moodListCmd.Flags().IntVar(&moodLimit, "limit", 50, "Maximum entries to list")

	moodCmd.AddCommand(moodAddCmd, moodListCmd)
	rootCmd.AddCommand(moodCmd)
}
