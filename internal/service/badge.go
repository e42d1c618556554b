package service

import "github.com/aficat/makan365/internal/model"

type badgeRule struct {
	id          string
	name        string
	description string
	earned      func(model.StreakState) bool
}

// Badge predicates are independent threshold checks over the aggregate
// counters. A badge disappears if its counters later regress, e.g. after a
// deletion; nothing is persisted as earned.
var badgeRules = []badgeRule{
	{
		id:          "week_streak",
		name:        "Week Warrior",
		description: "7-day Grade A streak",
		earned:      func(s model.StreakState) bool { return s.CurrentStreak >= 7 },
	},
	{
		id:          "month_streak",
		name:        "Monthly Master",
		description: "30-day Grade A streak",
		earned:      func(s model.StreakState) bool { return s.CurrentStreak >= 30 },
	},
	{
		id:          "century",
		name:        "Century Champion",
		description: "100-day Grade A streak",
		earned:      func(s model.StreakState) bool { return s.LongestStreak >= 100 },
	},
	{
		id:          "hawker_hero",
		name:        "Hawker Hero",
		description: "50 Grade A days logged",
		earned:      func(s model.StreakState) bool { return s.TotalGradeA >= 50 },
	},
	{
		id:          "food_logger",
		name:        "Food Logger",
		description: "100 meals logged",
		earned:      func(s model.StreakState) bool { return s.TotalLogs >= 100 },
	},
	{
		id:          "nutri_expert",
		name:        "Nutri-Grade Expert",
		description: "10 Grade A days in 20 logs",
		earned:      func(s model.StreakState) bool { return s.TotalGradeA >= 10 && s.TotalLogs >= 20 },
	},
}

// EvaluateBadges returns every badge whose predicate holds for the state.
func EvaluateBadges(state model.StreakState) []model.Badge {
	out := []model.Badge{}
	for _, r := range badgeRules {
		if r.earned(state) {
			out = append(out, model.Badge{ID: r.id, Name: r.name, Description: r.description})
		}
	}
	return out
}
