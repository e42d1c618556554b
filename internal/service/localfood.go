package service

import (
	"sort"

	"github.com/aficat/makan365/internal/model"
)

// localFoods is the built-in Singapore food database the matcher works
// against. Hawker dishes first, supermarket staples after.
var localFoods = []model.LocalFood{
	{
		ID:           "chicken_rice",
		Name:         "Hainanese Chicken Rice",
		Description:  "Singapore's national dish with steamed chicken and fragrant rice",
		Type:         "hawker",
		Cuisine:      "chinese",
		NutriGrade:   model.GradeB,
		Calories:     350,
		Protein:      25,
		Carbs:        30,
		Fat:          12,
		Sodium:       800,
		Sugar:        2,
		SaturatedFat: 3,
		Locations:    []string{"Maxwell Food Centre", "Tian Tian Chicken Rice", "Boon Tong Kee"},
		PriceRange:   "$3-5",
		HealthTips:   []string{"Ask for less rice", "Choose breast meat", "Add more vegetables"},
	},
	{
		ID:           "laksa",
		Name:         "Laksa",
		Description:  "Spicy coconut curry noodle soup with prawns and fish cake",
		Type:         "hawker",
		Cuisine:      "mixed",
		Halal:        true,
		NutriGrade:   model.GradeC,
		Calories:     450,
		Protein:      20,
		Carbs:        40,
		Fat:          18,
		Sodium:       1200,
		Sugar:        8,
		SaturatedFat: 8,
		Locations:    []string{"Janggut Laksa", "Katong Laksa", "Sungei Road Laksa"},
		PriceRange:   "$4-6",
		HealthTips:   []string{"Share with a friend", "Ask for less coconut milk", "Add more vegetables"},
	},
	{
		ID:           "char_kway_teow",
		Name:         "Char Kway Teow",
		Description:  "Stir-fried flat rice noodles with dark soy sauce, cockles, and Chinese sausage",
		Type:         "hawker",
		Cuisine:      "chinese",
		NutriGrade:   model.GradeD,
		Calories:     600,
		Protein:      15,
		Carbs:        70,
		Fat:          25,
		Sodium:       1500,
		Sugar:        5,
		SaturatedFat: 12,
		Locations:    []string{"Hill Street Char Kway Teow", "Outram Park Char Kway Teow"},
		PriceRange:   "$4-7",
		HealthTips:   []string{"Share portion", "Ask for less oil", "Add vegetables"},
	},
	{
		ID:           "fish_soup",
		Name:         "Fish Soup",
		Description:  "Clear fish soup with vegetables and rice",
		Type:         "hawker",
		Cuisine:      "chinese",
		NutriGrade:   model.GradeA,
		Calories:     200,
		Protein:      30,
		Carbs:        15,
		Fat:          5,
		Sodium:       400,
		Sugar:        1,
		SaturatedFat: 1,
		Locations:    []string{"Maxwell Food Centre", "Amoy Street Food Centre"},
		PriceRange:   "$4-6",
		HealthTips:   []string{"Excellent choice!", "High protein, low fat", "Great for weight management"},
	},
	{
		ID:           "roti_prata",
		Name:         "Roti Prata",
		Description:  "Crispy flatbread served with curry",
		Type:         "hawker",
		Cuisine:      "indian",
		Halal:        true,
		Vegetarian:   true,
		NutriGrade:   model.GradeC,
		Calories:     300,
		Protein:      8,
		Carbs:        35,
		Fat:          15,
		Sodium:       600,
		Sugar:        2,
		SaturatedFat: 6,
		Locations:    []string{"Zam Zam Restaurant", "Springleaf Prata Place"},
		PriceRange:   "$2-4",
		HealthTips:   []string{"Choose plain prata", "Limit curry intake", "Add vegetables"},
	},
	{
		ID:           "nasi_lemak",
		Name:         "Nasi Lemak",
		Description:  "Fragrant coconut rice with fried chicken, ikan bilis, and sambal",
		Type:         "hawker",
		Cuisine:      "malay",
		Halal:        true,
		NutriGrade:   model.GradeC,
		Calories:     500,
		Protein:      20,
		Carbs:        55,
		Fat:          22,
		Sodium:       1000,
		Sugar:        3,
		SaturatedFat: 10,
		Locations:    []string{"Ponggol Nasi Lemak", "Changi Village Nasi Lemak"},
		PriceRange:   "$3-5",
		HealthTips:   []string{"Ask for less rice", "Choose grilled chicken", "Add more vegetables"},
	},
	{
		ID:           "brown_rice",
		Name:         "Brown Rice",
		Description:  "Whole grain rice with higher fiber content",
		Type:         "supermarket",
		Cuisine:      "mixed",
		Halal:        true,
		Vegetarian:   true,
		NutriGrade:   model.GradeA,
		Calories:     110,
		Protein:      2.6,
		Carbs:        23,
		Fat:          0.9,
		Sodium:       5,
		Sugar:        0.4,
		SaturatedFat: 0.2,
		PriceRange:   "$2-4 per kg",
	},
	{
		ID:           "oats",
		Name:         "Rolled Oats",
		Description:  "Whole grain oats for breakfast or baking",
		Type:         "supermarket",
		Cuisine:      "mixed",
		Halal:        true,
		Vegetarian:   true,
		NutriGrade:   model.GradeA,
		Calories:     68,
		Protein:      2.4,
		Carbs:        12,
		Fat:          1.4,
		Sodium:       1,
		Sugar:        0.2,
		SaturatedFat: 0.2,
		PriceRange:   "$3-6 per 500g",
	},
	{
		ID:           "greek_yogurt",
		Name:         "Greek Yogurt",
		Description:  "High protein yogurt with probiotics",
		Type:         "supermarket",
		Cuisine:      "mixed",
		Halal:        true,
		Vegetarian:   true,
		NutriGrade:   model.GradeA,
		Calories:     59,
		Protein:      10,
		Carbs:        3.6,
		Fat:          0.4,
		Sodium:       36,
		Sugar:        3.6,
		SaturatedFat: 0.1,
		PriceRange:   "$4-7 per 500g",
	},
}

// LocalFoods returns the whole built-in database.
func LocalFoods() []model.LocalFood {
	out := make([]model.LocalFood, len(localFoods))
	copy(out, localFoods)
	return out
}

// FoodPreferences narrows the candidate set before similarity scoring.
type FoodPreferences struct {
	Cuisine     string
	Halal       bool
	Vegetarian  bool
	MaxCalories float64
}

// ScoredFood is a database food with its similarity to a nutrient profile.
type ScoredFood struct {
	model.LocalFood
	Similarity float64
}

// FindSimilarFoods ranks database foods by nutrition-profile similarity to
// the supplied record and returns the top five matches.
func FindSimilarFoods(n *model.Nutrition, prefs FoodPreferences) []ScoredFood {
	if n == nil {
		return nil
	}
	maxCalories := prefs.MaxCalories
	if maxCalories <= 0 {
		maxCalories = 1000
	}

	scored := []ScoredFood{}
	for _, f := range localFoods {
		if prefs.Cuisine != "" && f.Cuisine != prefs.Cuisine {
			continue
		}
		if prefs.Halal && !f.Halal {
			continue
		}
		if prefs.Vegetarian && !f.Vegetarian {
			continue
		}
		if f.Calories > maxCalories {
			continue
		}
		scored = append(scored, ScoredFood{LocalFood: f, Similarity: similarityScore(n, f)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})
	if len(scored) > 5 {
		scored = scored[:5]
	}
	return scored
}

// similarityScore weighs per-field relative differences; dimensions missing
// on either side are skipped and the result renormalized.
func similarityScore(n *model.Nutrition, f model.LocalFood) float64 {
	type dim struct {
		a, b, weight float64
	}
	dims := []dim{
		{n.Calories, f.Calories, 0.3},
		{n.Protein, f.Protein, 0.2},
		{n.Carbs, f.Carbs, 0.2},
		{n.Fat, f.Fat, 0.15},
		{n.Sodium, f.Sodium, 0.1},
		{n.Sugar, f.Sugar, 0.05},
	}
	score, totalWeight := 0.0, 0.0
	for _, d := range dims {
		if d.a <= 0 || d.b <= 0 {
			continue
		}
		larger := d.a
		if d.b > larger {
			larger = d.b
		}
		diff := (d.a - d.b) / larger
		if diff < 0 {
			diff = -diff
		}
		score += (1 - diff) * d.weight
		totalWeight += d.weight
	}
	if totalWeight == 0 {
		return 0
	}
	return score / totalWeight
}

// RecommendHealthier suggests grade-A hawker dishes when the recent history
// skews toward grade D. It looks at the ten most recent entries.
func RecommendHealthier(logs []model.LogEntry) []model.LocalFood {
	recent := logs
	if len(recent) > 10 {
		recent = recent[:10]
	}
	gradeA, gradeD := 0, 0
	for _, e := range recent {
		switch e.NutriGrade {
		case model.GradeA:
			gradeA++
		case model.GradeD:
			gradeD++
		}
	}
	if gradeD <= gradeA {
		return nil
	}
	out := []model.LocalFood{}
	for _, f := range localFoods {
		if f.Type == "hawker" && f.NutriGrade == model.GradeA {
			out = append(out, f)
		}
	}
	return out
}
