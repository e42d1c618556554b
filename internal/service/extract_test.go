package service_test

import (
	"testing"

	"github.com/aficat/makan365/internal/service"
)

const usLabel = `Nutrition Facts
Serving Size: 1 piece (85g)
Calories: 220
Total Fat: 12g
Saturated Fat: 2g
Cholesterol: 0mg
Sodium: 150mg
Total Carbohydrate: 25g
Dietary Fiber: 3g
Sugars: 8g
Protein: 6g`

func TestParseNutritionUSStyleLabel(t *testing.T) {
	t.Parallel()

	n := service.ParseNutrition(usLabel)
	if n.Calories != 220 {
		t.Fatalf("expected 220 kcal, got %v", n.Calories)
	}
	if n.Fat != 12 || n.SaturatedFat != 2 {
		t.Fatalf("unexpected fat values: fat=%v sat=%v", n.Fat, n.SaturatedFat)
	}
	if n.Sodium != 150 {
		t.Fatalf("expected 150 mg sodium, got %v", n.Sodium)
	}
	if n.Carbs != 25 || n.Sugar != 8 || n.Fiber != 3 {
		t.Fatalf("unexpected carb values: carbs=%v sugar=%v fiber=%v", n.Carbs, n.Sugar, n.Fiber)
	}
	if n.Protein != 6 || n.Cholesterol != 0 {
		t.Fatalf("unexpected protein/cholesterol: %v / %v", n.Protein, n.Cholesterol)
	}
}

func TestParseNutritionValueBeforeKeyword(t *testing.T) {
	t.Parallel()

	n := service.ParseNutrition("Per serving: 12.5g protein, 3g fibre, 250 mg sodium")
	if n.Protein != 12.5 {
		t.Fatalf("expected protein 12.5, got %v", n.Protein)
	}
	if n.Fiber != 3 {
		t.Fatalf("expected fibre 3, got %v", n.Fiber)
	}
	if n.Sodium != 250 {
		t.Fatalf("expected sodium 250, got %v", n.Sodium)
	}
}

func TestParseNutritionKilojouleConversion(t *testing.T) {
	t.Parallel()

	n := service.ParseNutrition("450 kJ energy per 100g")
	if n.Calories != 108 {
		t.Fatalf("expected 450 kJ to convert to 108 kcal, got %v", n.Calories)
	}
}

func TestParseNutritionSaltToSodiumConversion(t *testing.T) {
	t.Parallel()

	n := service.ParseNutrition("contains 0.6 g salt per serving")
	if n.Sodium != 240 {
		t.Fatalf("expected 0.6g salt to convert to 240 mg sodium, got %v", n.Sodium)
	}
}

func TestParseNutritionDirectReadingBeatsConversion(t *testing.T) {
	t.Parallel()

	n := service.ParseNutrition("Calories 150 kcal, Sodium 200 mg, Salt 1.5 g")
	if n.Calories != 150 {
		t.Fatalf("expected direct kcal reading 150, got %v", n.Calories)
	}
	if n.Sodium != 200 {
		t.Fatalf("expected direct sodium reading 200, got %v", n.Sodium)
	}
}

func TestParseNutritionEmptyAndJunkText(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "best before end: see lid", "ingredients: water, wheat flour"} {
		n := service.ParseNutrition(text)
		if n == nil {
			t.Fatalf("expected empty record, got nil for %q", text)
		}
		if n.Calories != 0 || n.Protein != 0 || n.Sugar != 0 || n.Sodium != 0 {
			t.Fatalf("expected all-zero record for %q, got %+v", text, n)
		}
	}
}

func TestParseNutritionIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	upper := service.ParseNutrition("SUGARS: 9G\nSODIUM: 310MG")
	if upper.Sugar != 9 || upper.Sodium != 310 {
		t.Fatalf("expected case-insensitive match, got %+v", upper)
	}
}
