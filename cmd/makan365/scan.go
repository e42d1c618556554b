package makan365

import (
	"database/sql"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aficat/makan365/internal/model"
	"github.com/aficat/makan365/internal/provider/vision"
	"github.com/aficat/makan365/internal/service"
	"github.com/aficat/makan365/internal/store"
)

var (
	scanImage  string
	scanText   string
	scanName   string
	scanAPIKey string
	scanNoSave bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a nutrition label and log its Nutri-Grade",
	Long:  "Scan reads a label photo, runs OCR through the Google Vision API, parses the nutrition facts, computes the Singapore Nutri-Grade, and appends the result to the food log. Without an API key it falls back to a demo label text.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(scanImage) == "" && strings.TrimSpace(scanText) == "" {
			return fmt.Errorf("either --image or --text is required")
		}
		return withDB(func(sqldb *sql.DB) error {
			raw := scanText
			if strings.TrimSpace(raw) == "" {
				detected, err := detectLabelText(cmd, sqldb)
				if err != nil {
					return err
				}
				raw = detected
			}

			nutrition := service.ParseNutrition(raw)
			nutrition.FoodName = strings.TrimSpace(scanName)
			entry := service.NewLogEntry(nutrition, scanImage, raw, time.Now())

			printNutrition(cmd, entry)
			if scanNoSave {
				fmt.Fprintln(cmd.OutOrStdout(), "Dry run, nothing saved.")
				return nil
			}
			if err := store.New(sqldb).Append(entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %s\n", entry.ID)
			return nil
		})
	},
}

// detectLabelText OCRs the image. Extraction failures are never hard errors:
// a missing key or a failed call degrades to a canned demo label, and only
// an unreadable image file aborts the scan.
func detectLabelText(cmd *cobra.Command, sqldb *sql.DB) (string, error) {
	data, err := os.ReadFile(scanImage)
	if err != nil {
		return "", fmt.Errorf("read image %s: %w", scanImage, err)
	}
	key, err := resolveVisionKey(sqldb, scanAPIKey)
	if err != nil {
		return "", err
	}
	if key == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "No vision API key configured, using a demo label text.")
		return vision.MockLabelText(), nil
	}

	client := &vision.Client{APIKey: key}
	text, err := client.DetectText(cmd.Context(), base64.StdEncoding.EncodeToString(data))
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "OCR failed (%v), using a demo label text.\n", err)
		return vision.MockLabelText(), nil
	}
	return text, nil
}

func printNutrition(cmd *cobra.Command, e model.LogEntry) {
	n := e.Nutrition
	if n == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "Nutri-Grade: %s\n", e.NutriGrade)
		fmt.Fprintln(cmd.OutOrStdout(), service.GradeGuidance(e.NutriGrade))
		return
	}
	if n.FoodName != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Food: %s\n", n.FoodName)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Calories: %.0f kcal\n", n.Calories)
	fmt.Fprintf(cmd.OutOrStdout(), "Protein: %.1fg  Fat: %.1fg  Saturated fat: %.1fg\n", n.Protein, n.Fat, n.SaturatedFat)
	fmt.Fprintf(cmd.OutOrStdout(), "Carbs: %.1fg  Sugar: %.1fg  Fiber: %.1fg\n", n.Carbs, n.Sugar, n.Fiber)
	fmt.Fprintf(cmd.OutOrStdout(), "Sodium: %.0fmg  Cholesterol: %.0fmg\n", n.Sodium, n.Cholesterol)
	fmt.Fprintf(cmd.OutOrStdout(), "Nutri-Grade: %s\n", e.NutriGrade)
	fmt.Fprintln(cmd.OutOrStdout(), service.GradeGuidance(e.NutriGrade))
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanImage, "image", "", "Path to a nutrition label photo")
	scanCmd.Flags().StringVar(&scanText, "text", "", "Raw label text (skips OCR)")
	scanCmd.Flags().StringVar(&scanName, "name", "", "Food name to attach to the entry")
	scanCmd.Flags().StringVar(&scanAPIKey, "api-key", "", "Google Vision API key (overrides env and config)")
	scanCmd.Flags().BoolVar(&scanNoSave, "no-save", false, "Show the grade without logging the entry")
}
