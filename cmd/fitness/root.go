package fitness

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "fitness",
	Short: "fitness tracks your health journey from the terminal",
	Long:  "fitness is a local-first health tracking CLI with weight, nutrition, exercise, mood and cycle logs, plus XP levels, achievements, and daily challenges.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
