package service

import (
	"math"

	"github.com/aficat/makan365/internal/model"
)

// GradeNutrition maps a nutrient record to its Singapore Nutri-Grade.
// Thresholds follow the MOH-style bands and apply to the raw field values;
// the label data is taken as already per-100g, no serving normalization.
// A nil record is the only way to get GradeUnknown.
func GradeNutrition(n *model.Nutrition) model.Grade {
	if n == nil {
		return model.GradeUnknown
	}
	score := GradeScore(n)
	switch {
	case score >= 6:
		return model.GradeA
	case score >= 4:
		return model.GradeB
	case score >= 2:
		return model.GradeC
	default:
		return model.GradeD
	}
}

// GradeScore accumulates grading points in [0,7]. Higher is better.
func GradeScore(n *model.Nutrition) int {
	sugar := orZero(n.Sugar)
	satFat := orZero(n.SaturatedFat)
	sodium := orZero(n.Sodium)
	calories := orZero(n.Calories)

	score := 0
	switch {
	case sugar <= 5:
		score += 2
	case sugar <= 10:
		score++
	}
	switch {
	case satFat <= 1.5:
		score += 2
	case satFat <= 3:
		score++
	}
	switch {
	case sodium <= 120:
		score += 2
	case sodium <= 300:
		score++
	}
	if calories <= 100 {
		score++
	}
	return score
}

// orZero applies the default-zero policy to bad numeric input.
func orZero(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// GradeGuidance returns the one-line consumer guidance shown with a grade.
func GradeGuidance(grade model.Grade) string {
	switch grade {
	case model.GradeA:
		return "Excellent choice! This food has low sugar, saturated fat, and sodium content."
	case model.GradeB:
		return "Good choice! This food has moderate levels of sugar, saturated fat, or sodium."
	case model.GradeC:
		return "Moderate choice. This food has higher levels of sugar, saturated fat, or sodium."
	case model.GradeD:
		return "Consider healthier options. This food has high levels of sugar, saturated fat, or sodium."
	default:
		return "No nutrition information available for this entry."
	}
}

// GradeRecommendations returns follow-up suggestions for a grade.
func GradeRecommendations(grade model.Grade) []string {
	switch grade {
	case model.GradeA:
		return []string{
			"Fresh fruits and vegetables",
			"Lean proteins (fish, chicken breast)",
			"Whole grains (brown rice, quinoa)",
			"Nuts and seeds (unsalted)",
			"Water and unsweetened beverages",
		}
	case model.GradeB:
		return []string{
			"Try reducing added sugar",
			"Choose leaner cuts of meat",
			"Opt for whole grain options",
			"Add more vegetables to your meals",
		}
	case model.GradeC:
		return []string{
			"Consider healthier cooking methods",
			"Reduce portion sizes",
			"Look for low-sodium alternatives",
			"Add more fiber-rich foods",
		}
	default:
		return []string{
			"Try healthier alternatives",
			"Read nutrition labels carefully",
			"Choose fresh over processed foods",
			"Consider homemade versions",
		}
	}
}
