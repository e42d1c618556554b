package makan365

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aficat/makan365/internal/model"
	"github.com/aficat/makan365/internal/service"
	"github.com/aficat/makan365/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage food log entries",
}

var (
	addName        string
	addCalories    float64
	addProtein     float64
	addFat         float64
	addSatFat      float64
	addTransFat    float64
	addCarbs       float64
	addSugar       float64
	addSodium      float64
	addFiber       float64
	addCholesterol float64
	addDate        string
	addTime        string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a manual entry without scanning",
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := parseDateTimeOrNow(addDate, addTime)
		if err != nil {
			return err
		}
		nutrition := &model.Nutrition{
			FoodName:     strings.TrimSpace(addName),
			Calories:     addCalories,
			Protein:      addProtein,
			Fat:          addFat,
			SaturatedFat: addSatFat,
			TransFat:     addTransFat,
			Carbs:        addCarbs,
			Sugar:        addSugar,
			Sodium:       addSodium,
			Fiber:        addFiber,
			Cholesterol:  addCholesterol,
		}
		return withDB(func(sqldb *sql.DB) error {
			entry := service.NewLogEntry(nutrition, "", "", at)
			if err := store.New(sqldb).Append(entry); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged entry %s with Nutri-Grade %s\n", entry.ID, entry.NutriGrade)
			return nil
		})
	},
}

var (
	listLimit int
	listGrade string
)

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := store.New(sqldb).List()
			if err != nil {
				return err
			}
			logs = service.SortedLogs(logs)
			grade := parseGradeFilter(listGrade)

			fmt.Fprintln(cmd.OutOrStdout(), "ID\tDATE\tGRADE\tKCAL\tSUGAR\tSODIUM\tNAME")
			shown := 0
			for _, e := range logs {
				if grade != "" && e.NutriGrade != grade {
					continue
				}
				if listLimit > 0 && shown >= listLimit {
					break
				}
				shown++
				name := ""
				var kcal, sugar, sodium float64
				if e.Nutrition != nil {
					name = e.Nutrition.FoodName
					kcal = e.Nutrition.Calories
					sugar = e.Nutrition.Sugar
					sodium = e.Nutrition.Sodium
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.0f\t%.1f\t%.0f\t%s\n",
					e.ID, displayTime(e), e.NutriGrade, kcal, sugar, sodium, name)
			}
			return nil
		})
	},
}

var logShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single entry",
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
			fmt.Fprintf(cmd.OutOrStdout(), "ID: %s\n", e.ID)
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", displayTime(e))
			printNutrition(cmd, e)
			if e.Image != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Image: %s\n", e.Image)
			}
			if e.ExtractedText != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Extracted text:\n%s\n", e.ExtractedText)
			}
			return nil
		})
	},
}

var deleteYes bool

var logDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry (irreversible)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !deleteYes {
			return fmt.Errorf("deleting an entry cannot be undone; re-run with --yes to confirm")
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := store.New(sqldb).Remove(args[0]); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return fmt.Errorf("entry %s not found", args[0])
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
			return nil
		})
	},
}

// parseGradeFilter accepts a-d in either case plus "unknown" for entries
// without a nutrition record.
func parseGradeFilter(s string) model.Grade {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(model.GradeUnknown)) {
		return model.GradeUnknown
	}
	return model.Grade(strings.ToUpper(s))
}

func displayTime(e model.LogEntry) string {
	t, err := e.Time()
	if err != nil {
		return e.Timestamp
	}
	return t.Local().Format("2006-01-02 15:04")
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd, logListCmd, logShowCmd, logDeleteCmd)

	logAddCmd.Flags().StringVar(&addName, "name", "", "Food name")
	logAddCmd.Flags().Float64Var(&addCalories, "calories", 0, "Calories (kcal)")
	logAddCmd.Flags().Float64Var(&addProtein, "protein", 0, "Protein grams")
	logAddCmd.Flags().Float64Var(&addFat, "fat", 0, "Fat grams")
	logAddCmd.Flags().Float64Var(&addSatFat, "saturated-fat", 0, "Saturated fat grams")
	logAddCmd.Flags().Float64Var(&addTransFat, "trans-fat", 0, "Trans fat grams")
	logAddCmd.Flags().Float64Var(&addCarbs, "carbs", 0, "Carbohydrate grams")
	logAddCmd.Flags().Float64Var(&addSugar, "sugar", 0, "Sugar grams")
	logAddCmd.Flags().Float64Var(&addSodium, "sodium", 0, "Sodium milligrams")
	logAddCmd.Flags().Float64Var(&addFiber, "fiber", 0, "Fiber grams")
	logAddCmd.Flags().Float64Var(&addCholesterol, "cholesterol", 0, "Cholesterol milligrams")
	logAddCmd.Flags().StringVar(&addDate, "date", "", "Date in YYYY-MM-DD")
	logAddCmd.Flags().StringVar(&addTime, "time", "", "Time in HH:MM")

	logListCmd.Flags().IntVar(&listLimit, "limit", 50, "Result limit")
	logListCmd.Flags().StringVar(&listGrade, "grade", "", "Filter by Nutri-Grade (A-D or Unknown)")

	logDeleteCmd.Flags().BoolVar(&deleteYes, "yes", false, "Confirm the deletion")
}
