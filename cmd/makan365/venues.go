package makan365

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aficat/makan365/internal/model"
	"github.com/aficat/makan365/internal/service"
)

var (
	venueLat        float64
	venueLng        float64
	venueRadius     float64
	venueGrade      string
	venueType       string
	venueHalal      bool
	venueVegetarian bool
)

var venuesCmd = &cobra.Command{
	Use:   "venues",
	Short: "Find nearby food venues (demo data)",
	Long:  "Venues lists food locations near a point with their Nutri-Grade. The data set is a built-in demo; a real Places search would need a maps API key and is not implemented.",
	RunE: func(cmd *cobra.Command, args []string) error {
		filter := service.VenueFilter{
			Grade:      model.Grade(strings.ToUpper(strings.TrimSpace(venueGrade))),
			Type:       strings.ToLower(strings.TrimSpace(venueType)),
			Halal:      venueHalal,
			Vegetarian: venueVegetarian,
		}
		results := service.SearchNearbyVenues(venueLat, venueLng, venueRadius, filter)
		if len(results) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No venues found within the search radius.")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), "NAME\tTYPE\tGRADE\tRATING\tDISTANCE\tNOTES")
		for _, v := range results {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%.1f\t%.1f km\t%s\n",
				v.Name, v.Type, v.NutriGrade, v.Rating, v.DistanceKm, v.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(venuesCmd)
	venuesCmd.Flags().Float64Var(&venueLat, "lat", service.DefaultLat, "Latitude of the search origin")
	venuesCmd.Flags().Float64Var(&venueLng, "lng", service.DefaultLng, "Longitude of the search origin")
	venuesCmd.Flags().Float64Var(&venueRadius, "radius", 10, "Search radius in km")
	venuesCmd.Flags().StringVar(&venueGrade, "grade", "", "Filter by Nutri-Grade (A-D)")
	venuesCmd.Flags().StringVar(&venueType, "type", "", "Filter by venue type (hawker, supermarket, restaurant)")
	venuesCmd.Flags().BoolVar(&venueHalal, "halal", false, "Only halal venues")
	venuesCmd.Flags().BoolVar(&venueVegetarian, "vegetarian", false, "Only vegetarian-friendly venues")
}
