package service

import (
	"math"
	"sort"

	"github.com/aficat/makan365/internal/model"
)

// Default search origin: central Singapore.
const (
	DefaultLat = 1.3521
	DefaultLng = 103.8198
)

// venues is the static demo venue set. A real Places lookup needs a maps API
// key and is out of scope; absence of the key is the normal mode here.
var venues = []model.Venue{
	{
		ID:          "maxwell_food_centre",
		Name:        "Maxwell Food Centre",
		Type:        "hawker",
		NutriGrade:  model.GradeA,
		Rating:      4.5,
		Lat:         1.2804,
		Lng:         103.8446,
		Description: "Famous for Tian Tian Hainanese Chicken Rice",
	},
	{
		ID:          "lau_pa_sat",
		Name:        "Lau Pa Sat",
		Type:        "hawker",
		NutriGrade:  model.GradeB,
		Rating:      4.2,
		Lat:         1.2806,
		Lng:         103.8503,
		Halal:       true,
		Description: "Historic food centre with diverse options",
	},
	{
		ID:          "amoy_street_food_centre",
		Name:        "Amoy Street Food Centre",
		Type:        "hawker",
		NutriGrade:  model.GradeA,
		Rating:      4.4,
		Lat:         1.2790,
		Lng:         103.8466,
		Description: "Lunchtime favourite known for fish soup stalls",
	},
	{
		ID:          "zam_zam",
		Name:        "Zam Zam Restaurant",
		Type:        "restaurant",
		NutriGrade:  model.GradeC,
		Rating:      4.1,
		Lat:         1.3020,
		Lng:         103.8590,
		Halal:       true,
		Description: "Century-old murtabak and prata institution",
	},
	{
		ID:          "fairprice_finest",
		Name:        "FairPrice Finest",
		Type:        "supermarket",
		NutriGrade:  model.GradeA,
		Rating:      4.0,
		Lat:         1.3006,
		Lng:         103.8453,
		Halal:       true,
		Vegetarian:  true,
		Description: "Supermarket with wholegrain and fresh produce sections",
	},
}

// VenueFilter narrows a venue search. Zero values mean no constraint.
type VenueFilter struct {
	Grade      model.Grade
	Type       string
	Halal      bool
	Vegetarian bool
}

// SearchNearbyVenues returns demo venues within radiusKm of the origin,
// nearest first, with DistanceKm filled in. A non-positive radius defaults
// to 5 km.
func SearchNearbyVenues(lat, lng, radiusKm float64, filter VenueFilter) []model.Venue {
	if radiusKm <= 0 {
		radiusKm = 5
	}
	out := []model.Venue{}
	for _, v := range venues {
		if filter.Grade != "" && v.NutriGrade != filter.Grade {
			continue
		}
		if filter.Type != "" && v.Type != filter.Type {
			continue
		}
		if filter.Halal && !v.Halal {
			continue
		}
		if filter.Vegetarian && !v.Vegetarian {
			continue
		}
		v.DistanceKm = haversineKm(lat, lng, v.Lat, v.Lng)
		if v.DistanceKm > radiusKm {
			continue
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

// haversineKm is the great-circle distance between two points.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLng := rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
