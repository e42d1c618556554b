package makan365

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aficat/makan365/internal/service"
	"github.com/aficat/makan365/internal/store"
)

var (
	exportOut   string
	importIn    string
	importMerge bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the food log as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(exportOut) == "" {
			return fmt.Errorf("--out is required")
		}
		return withDB(func(sqldb *sql.DB) error {
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			count, err := service.ExportLogs(store.New(sqldb), f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", count, exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a food log JSON export",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(importIn) == "" {
			return fmt.Errorf("--in is required")
		}
		return withDB(func(sqldb *sql.DB) error {
			f, err := os.Open(importIn)
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer f.Close()
			count, err := service.ImportLogs(store.New(sqldb), f, importMerge)
			if err != nil {
				return err
			}
			if importMerge {
				fmt.Fprintf(cmd.OutOrStdout(), "Merged %d new entries from %s\n", count, importIn)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries from %s (collection replaced)\n", count, importIn)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file path")
	importCmd.Flags().StringVar(&importIn, "in", "", "Input file path")
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Merge with the existing log instead of replacing it")
}
