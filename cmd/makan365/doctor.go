package makan365

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aficat/makan365/internal/service"
	"github.com/aficat/makan365/internal/store"
)

var doctorFix bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run log collection integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			st := store.New(sqldb)
			report, err := service.RunDoctor(st, doctorFix)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate ids: %d\n", report.DuplicateIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Malformed timestamps: %d\n", report.BadTimestamps)
			fmt.Fprintf(cmd.OutOrStdout(), "Negative nutrient values: %d\n", report.NegativeNutrients)
			fmt.Fprintf(cmd.OutOrStdout(), "Stale cached grades: %d\n", report.GradeMismatches)
			if doctorFix {
				fmt.Fprintf(cmd.OutOrStdout(), "Fixed entries: %d\n", report.FixedEntries)
				fmt.Fprintf(cmd.OutOrStdout(), "Dropped duplicates: %d\n", report.DroppedEntries)
				// Re-check after fixes so exit status reflects final state.
				report, err = service.RunDoctor(st, false)
				if err != nil {
					return err
				}
			}
			if report.DuplicateIDs > 0 || report.NegativeNutrients > 0 || report.GradeMismatches > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Attempt safe auto-fixes")
}
