package model

import "time"

// Grade is the Singapore Nutri-Grade front-of-pack rating. A is best.
type Grade string

const (
	GradeA       Grade = "A"
	GradeB       Grade = "B"
	GradeC       Grade = "C"
	GradeD       Grade = "D"
	GradeUnknown Grade = "Unknown"
)

// Nutrition holds the values read off a nutrition label. Amounts are grams
// except Calories (kcal) and Sodium/Cholesterol (mg). Fields missing from the
// label are zero, never rejected.
type Nutrition struct {
	FoodName     string  `json:"foodName,omitempty"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	SaturatedFat float64 `json:"saturatedFat"`
	TransFat     float64 `json:"transFat"`
	Carbs        float64 `json:"carbs"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
	Fiber        float64 `json:"fiber"`
	Cholesterol  float64 `json:"cholesterol"`
	NutriGrade   Grade   `json:"nutriGrade,omitempty"`
}

// LogEntry is one saved scan or manual entry. Entries are immutable after
// creation; edits go through a new save flow. The ID is an opaque
// creation-ordered token and the timestamp is RFC 3339.
type LogEntry struct {
	ID            string     `json:"id"`
	Timestamp     string     `json:"timestamp"`
	Image         string     `json:"image,omitempty"`
	ExtractedText string     `json:"extractedText,omitempty"`
	Nutrition     *Nutrition `json:"nutrition"`
	NutriGrade    Grade      `json:"nutriGrade"`
}

// Time parses the entry timestamp.
func (e LogEntry) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, e.Timestamp)
}

// StreakState is derived in full from the log collection on every load.
type StreakState struct {
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`
	TotalGradeA   int `json:"totalGradeA"`
	TotalLogs     int `json:"totalLogs"`
	TotalDays     int `json:"totalDays"`
}

// Badge is a named achievement. Badges are recomputed from StreakState on
// every load and are never persisted as earned.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DayActivity is one cell of the recent-activity strip.
type DayActivity struct {
	Date        string `json:"date"`
	DayName     string `json:"dayName"`
	TotalLogs   int    `json:"totalLogs"`
	GradeACount int    `json:"gradeACount"`
}

// Venue is a food location on the (mock) map.
type Venue struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	NutriGrade  Grade   `json:"nutriGrade"`
	Rating      float64 `json:"rating"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	DistanceKm  float64 `json:"distanceKm"`
	Halal       bool    `json:"halal"`
	Vegetarian  bool    `json:"vegetarian"`
	Description string  `json:"description"`
}

// LocalFood is an entry in the built-in Singapore food database.
type LocalFood struct {
	ID           string
	Name         string
	Description  string
	Type         string
	Cuisine      string
	Halal        bool
	Vegetarian   bool
	NutriGrade   Grade
	Calories     float64
	Protein      float64
	Carbs        float64
	Fat          float64
	Sodium       float64
	Sugar        float64
	SaturatedFat float64
	Locations    []string
	PriceRange   string
	HealthTips   []string
}
