package makan365

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aficat/makan365/internal/service"
	"github.com/aficat/makan365/internal/store"
)

var healthy365Cmd = &cobra.Command{
	Use:   "healthy365",
	Short: "Healthy 365 integration (preview)",
}

var healthy365SyncCmd = &cobra.Command{
	Use:   "sync <entry-id>",
	Short: "Sync a logged entry and show earned points",
	Long:  "Sync sends one entry to Healthy 365 and reports the reward points for its Nutri-Grade. The official API is not public yet, so the call is simulated locally.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			e, err := service.FindLog(store.New(sqldb), args[0])
			if err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("entry %s not found", args[0])
				}
				return err
			}
			result := service.SyncWithHealthy365(e)
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			fmt.Fprintf(cmd.OutOrStdout(), "Sync id: %s\n", result.Healthy365ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Points earned: %d (Nutri-Grade %s)\n", result.Points, e.NutriGrade)
			return nil
		})
	},
}

var healthy365ChallengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List the current national challenges",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "CHALLENGE\tTARGET\tREWARD")
		for _, c := range service.Healthy365Challenges() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", c.Name, c.Target, c.Reward)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthy365Cmd)
	healthy365Cmd.AddCommand(healthy365SyncCmd, healthy365ChallengesCmd)
}
