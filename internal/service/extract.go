package service

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aficat/makan365/internal/model"
)

// fieldPatterns matches a labelled amount in free-form OCR text. Patterns are
// tried in order: "sugar: 12 g", "12 g sugar", "sugar: 12", "12 sugar".
type fieldPatterns struct {
	patterns []*regexp.Regexp
}

func newFieldPatterns(keywords []string, unit string) fieldPatterns {
	fp := fieldPatterns{}
	for _, kw := range keywords {
		k := regexp.QuoteMeta(kw)
		u := regexp.QuoteMeta(unit)
		fp.patterns = append(fp.patterns,
			regexp.MustCompile(k+`\s*:?\s*(\d+(?:\.\d+)?)\s*`+u),
			regexp.MustCompile(`(\d+(?:\.\d+)?)\s*`+u+`\s*`+k),
			regexp.MustCompile(k+`\s*:?\s*(\d+(?:\.\d+)?)`),
			regexp.MustCompile(`(\d+(?:\.\d+)?)\s*`+k),
		)
	}
	return fp
}

func (fp fieldPatterns) extract(text string) (float64, bool) {
	for _, re := range fp.patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return v, true
	}
	return 0, false
}

var (
	caloriesPat    = newFieldPatterns([]string{"calories", "energy"}, "kcal")
	energyKJPat    = newFieldPatterns([]string{"energy"}, "kj")
	proteinPat     = newFieldPatterns([]string{"protein"}, "g")
	fatPat         = newFieldPatterns([]string{"total fat", "fat"}, "g")
	satFatPat      = newFieldPatterns([]string{"saturated fat", "saturates"}, "g")
	transFatPat    = newFieldPatterns([]string{"trans fat"}, "g")
	carbsPat       = newFieldPatterns([]string{"carbohydrate", "carbs", "total carbohydrate"}, "g")
	sugarPat       = newFieldPatterns([]string{"sugars", "sugar"}, "g")
	sodiumPat      = newFieldPatterns([]string{"sodium", "salt"}, "mg")
	saltGramsPat   = newFieldPatterns([]string{"salt"}, "g")
	fiberPat       = newFieldPatterns([]string{"fiber", "fibre", "dietary fiber"}, "g")
	cholesterolPat = newFieldPatterns([]string{"cholesterol"}, "mg")
)

// ParseNutrition extracts a nutrient record from raw OCR text via keyword and
// unit matching. Fields not found in the text stay zero; the function never
// fails. Energy in kJ is converted to kcal and salt grams to sodium mg when
// the direct readings are absent.
func ParseNutrition(text string) *model.Nutrition {
	n := &model.Nutrition{}
	if strings.TrimSpace(text) == "" {
		return n
	}
	lower := strings.ToLower(text)

	n.Calories, _ = caloriesPat.extract(lower)
	n.Protein, _ = proteinPat.extract(lower)
	n.Fat, _ = fatPat.extract(lower)
	n.SaturatedFat, _ = satFatPat.extract(lower)
	n.TransFat, _ = transFatPat.extract(lower)
	n.Carbs, _ = carbsPat.extract(lower)
	n.Sugar, _ = sugarPat.extract(lower)
	n.Sodium, _ = sodiumPat.extract(lower)
	n.Fiber, _ = fiberPat.extract(lower)
	n.Cholesterol, _ = cholesterolPat.extract(lower)

	if n.Calories == 0 {
		if kj, ok := energyKJPat.extract(lower); ok {
			n.Calories = math.Round(kj / 4.184)
		}
	}
	if n.Sodium == 0 {
		if salt, ok := saltGramsPat.extract(lower); ok {
			n.Sodium = math.Round(salt * 400)
		}
	}
	return n
}
