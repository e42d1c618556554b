package makan365

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "makan365",
	Short: "makan365 scans nutrition labels and tracks Nutri-Grade streaks",
	Long:  "makan365 is a local-first food logging CLI: scan a packaged-food nutrition label, get its Singapore Nutri-Grade, and build Grade A eating streaks with achievements and Healthy 365 points.",
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
