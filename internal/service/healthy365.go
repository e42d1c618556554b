package service

import (
	"fmt"

	"github.com/rs/xid"

	"github.com/aficat/makan365/internal/model"
)

// SyncResult mirrors the response shape of the (not yet public) Healthy 365
// meal-logging API. Sync is a mock until the official API opens up: it
// always succeeds and awards points locally.
type SyncResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	Healthy365ID string `json:"healthy365Id"`
	Points       int    `json:"points"`
}

type Challenge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Reward      string `json:"reward"`
	Target      int    `json:"target"`
}

// Healthy365Points maps a Nutri-Grade to its reward points.
func Healthy365Points(grade model.Grade) int {
	switch grade {
	case model.GradeA:
		return 10
	case model.GradeB:
		return 7
	case model.GradeC:
		return 4
	case model.GradeD:
		return 1
	default:
		return 0
	}
}

// SyncWithHealthy365 performs the mock sync for one log entry.
func SyncWithHealthy365(entry model.LogEntry) SyncResult {
	return SyncResult{
		Success:      true,
		Message:      "Successfully synced with Healthy 365!",
		Healthy365ID: fmt.Sprintf("h365_%s", xid.New().String()),
		Points:       Healthy365Points(entry.NutriGrade),
	}
}

// Healthy365Challenges returns the canned national challenge set.
func Healthy365Challenges() []Challenge {
	return []Challenge{
		{
			ID:          "nutri_grade_week",
			Name:        "Nutri-Grade A Week",
			Description: "Log 7 Grade A meals in a week",
			Reward:      "50 Healthy 365 points",
			Target:      7,
		},
		{
			ID:          "hawker_hero",
			Name:        "Hawker Hero",
			Description: "Try 10 different hawker dishes",
			Reward:      "100 Healthy 365 points",
			Target:      10,
		},
		{
			ID:          "vegetable_master",
			Name:        "Vegetable Master",
			Description: "Log 20 vegetable-rich meals",
			Reward:      "75 Healthy 365 points",
			Target:      20,
		},
		{
			ID:          "water_champion",
			Name:        "Water Champion",
			Description: "Log 7 days of adequate water intake",
			Reward:      "25 Healthy 365 points",
			Target:      7,
		},
	}
}
