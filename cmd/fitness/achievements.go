package fitness

import (
	"database/sql"
	"fmt"

	"github.com/NatiMalka/fitness-time/internal/service"
	"github.com/NatiMalka/fitness-time/internal/ui"
	"github.com/spf13/cobra"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "List earned achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			items, err := service.ListAchievements(sqldb)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				ui.Info("No achievements yet. Keep tracking!")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "DATE\tTYPE\tTIER\tTITLE\tXP")
			for _, a := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%d\n",
					a.DateEarned, a.BadgeType, a.Tier, a.Title, a.XPReward)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
