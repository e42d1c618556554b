package service

import (
	"github.com/aficat/makan365/internal/model"
	"github.com/aficat/makan365/internal/store"
)

type DoctorReport struct {
	DuplicateIDs      int
	BadTimestamps     int
	NegativeNutrients int
	GradeMismatches   int
	FixedEntries      int
	DroppedEntries    int
}

// RunDoctor checks the log collection for defects the normal flows cannot
// produce but an imported or hand-edited collection can: duplicate ids,
// unparseable timestamps, negative nutrient values, and cached grades that
// disagree with a recompute. With fix set it drops duplicate ids (first
// occurrence wins), zeroes negative nutrients, and regrades, then writes the
// collection back. Bad timestamps are reported but left alone; the
// aggregator already skips them.
func RunDoctor(st store.LogStore, fix bool) (DoctorReport, error) {
	report := DoctorReport{}
	logs, err := st.List()
	if err != nil {
		return report, err
	}

	seen := map[string]bool{}
	kept := make([]model.LogEntry, 0, len(logs))
	for _, e := range logs {
		if seen[e.ID] {
			report.DuplicateIDs++
			if fix {
				report.DroppedEntries++
				continue
			}
		}
		seen[e.ID] = true

		if _, err := e.Time(); err != nil {
			report.BadTimestamps++
		}

		fixed := false
		if e.Nutrition != nil && hasNegatives(e.Nutrition) {
			report.NegativeNutrients++
			if fix {
				clampNegatives(e.Nutrition)
				fixed = true
			}
		}
		if want := GradeNutrition(e.Nutrition); e.NutriGrade != want {
			report.GradeMismatches++
			if fix {
				e.NutriGrade = want
				if e.Nutrition != nil {
					e.Nutrition.NutriGrade = want
				}
				fixed = true
			}
		}
		if fixed {
			report.FixedEntries++
		}
		kept = append(kept, e)
	}

	if fix && (report.FixedEntries > 0 || report.DroppedEntries > 0) {
		if err := st.Replace(kept); err != nil {
			return report, err
		}
	}
	return report, nil
}

func nutrientFields(n *model.Nutrition) []*float64 {
	return []*float64{
		&n.Calories, &n.Protein, &n.Fat, &n.SaturatedFat, &n.TransFat,
		&n.Carbs, &n.Sugar, &n.Sodium, &n.Fiber, &n.Cholesterol,
	}
}

func hasNegatives(n *model.Nutrition) bool {
	for _, f := range nutrientFields(n) {
		if *f < 0 {
			return true
		}
	}
	return false
}

func clampNegatives(n *model.Nutrition) {
	for _, f := range nutrientFields(n) {
		if *f < 0 {
			*f = 0
		}
	}
}
