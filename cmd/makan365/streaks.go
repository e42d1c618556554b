package makan365

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aficat/makan365/internal/service"
	"github.com/aficat/makan365/internal/store"
)

const (
	weeklyGoalDays  = 7
	monthlyGoalDays = 30
)

var streaksCmd = &cobra.Command{
	Use:   "streaks",
	Short: "Show Grade A streaks and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := store.New(sqldb).List()
			if err != nil {
				return err
			}
			now := time.Now()
			state := service.AggregateStreaks(logs, now)

			fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d day(s)\n", state.CurrentStreak)
			fmt.Fprintf(cmd.OutOrStdout(), "Longest streak: %d day(s)\n", state.LongestStreak)
			fmt.Fprintf(cmd.OutOrStdout(), "Grade A days: %d\n", state.TotalGradeA)
			fmt.Fprintf(cmd.OutOrStdout(), "Days logged: %d\n", state.TotalDays)
			fmt.Fprintf(cmd.OutOrStdout(), "Total logs: %d\n", state.TotalLogs)
			if state.CurrentStreak == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Log a Grade A meal today to start a streak.")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nLast 7 days:")
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tDATE\tLOGS\tGRADE A")
			for _, day := range service.RecentActivity(logs, now, 7) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\n", day.DayName, day.Date, day.TotalLogs, day.GradeACount)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "\nGoals:")
			printGoal(cmd, "Weekly", state.CurrentStreak, weeklyGoalDays)
			printGoal(cmd, "Monthly", state.CurrentStreak, monthlyGoalDays)
			return nil
		})
	},
}

func printGoal(cmd *cobra.Command, name string, streak, target int) {
	progress := streak
	if progress > target {
		progress = target
	}
	status := "in progress"
	if progress >= target {
		status = "done"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s goal: %d/%d days (%s)\n", name, progress, target, status)
}

func init() {
	rootCmd.AddCommand(streaksCmd)
}
