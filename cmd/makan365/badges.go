package makan365

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aficat/makan365/internal/service"
	"github.com/aficat/makan365/internal/store"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show earned achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := store.New(sqldb).List()
			if err != nil {
				return err
			}
			state := service.AggregateStreaks(logs, time.Now())
			badges := service.EvaluateBadges(state)
			if len(badges) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No badges yet. Complete challenges to earn badges!")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "BADGE\tDESCRIPTION")
			for _, b := range badges {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", b.Name, b.Description)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}
