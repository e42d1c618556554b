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

var (
	similarEntry       string
	similarCalories    float64
	similarProtein     float64
	similarCarbs       float64
	similarFat         float64
	similarSodium      float64
	similarSugar       float64
	similarCuisine     string
	similarHalal       bool
	similarVegetarian  bool
	similarMaxCalories float64
)

var similarCmd = &cobra.Command{
	Use:   "similar",
	Short: "Match a nutrition profile against local Singapore foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			nutrition := &model.Nutrition{
				Calories: similarCalories,
				Protein:  similarProtein,
				Carbs:    similarCarbs,
				Fat:      similarFat,
				Sodium:   similarSodium,
				Sugar:    similarSugar,
			}
			if strings.TrimSpace(similarEntry) != "" {
				e, err := service.FindLog(store.New(sqldb), similarEntry)
				if err != nil {
					if errors.Is(err, store.ErrNotFound) {
						return fmt.Errorf("entry %s not found", similarEntry)
					}
					return err
				}
				if e.Nutrition == nil {
					return fmt.Errorf("entry %s has no nutrition record", similarEntry)
				}
				nutrition = e.Nutrition
			}

			matches := service.FindSimilarFoods(nutrition, service.FoodPreferences{
				Cuisine:     strings.ToLower(strings.TrimSpace(similarCuisine)),
				Halal:       similarHalal,
				Vegetarian:  similarVegetarian,
				MaxCalories: similarMaxCalories,
			})
			if len(matches) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No similar local foods found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "MATCH\tNAME\tTYPE\tGRADE\tKCAL\tPRICE")
			for _, m := range matches {
				fmt.Fprintf(cmd.OutOrStdout(), "%.0f%%\t%s\t%s\t%s\t%.0f\t%s\n",
					m.Similarity*100, m.Name, m.Type, m.NutriGrade, m.Calories, m.PriceRange)
			}
			return nil
		})
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Suggest healthier local dishes from your recent history",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := store.New(sqldb).List()
			if err != nil {
				return err
			}
			foods := service.RecommendHealthier(service.SortedLogs(logs))
			if len(foods) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Your recent logs look balanced. Keep it up!")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "You've been having some less healthy choices. Try these Grade A local foods:")
			for _, f := range foods {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) - %s\n", f.Name, f.PriceRange, f.Description)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(similarCmd, recommendCmd)
	similarCmd.Flags().StringVar(&similarEntry, "entry", "", "Use the nutrition profile of a logged entry id")
	similarCmd.Flags().Float64Var(&similarCalories, "calories", 0, "Calories (kcal)")
	similarCmd.Flags().Float64Var(&similarProtein, "protein", 0, "Protein grams")
	similarCmd.Flags().Float64Var(&similarCarbs, "carbs", 0, "Carbohydrate grams")
	similarCmd.Flags().Float64Var(&similarFat, "fat", 0, "Fat grams")
	similarCmd.Flags().Float64Var(&similarSodium, "sodium", 0, "Sodium milligrams")
	similarCmd.Flags().Float64Var(&similarSugar, "sugar", 0, "Sugar grams")
	similarCmd.Flags().StringVar(&similarCuisine, "cuisine", "", "Filter by cuisine (chinese, malay, indian, mixed)")
	similarCmd.Flags().BoolVar(&similarHalal, "halal", false, "Only halal foods")
	similarCmd.Flags().BoolVar(&similarVegetarian, "vegetarian", false, "Only vegetarian foods")
	similarCmd.Flags().Float64Var(&similarMaxCalories, "max-calories", 0, "Calorie ceiling for matches (default 1000)")
}
