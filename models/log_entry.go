package models

import "time"

// Kind of logged item.
const (
	KindMeal    = "meal"
	KindProduct = "product"
	KindCustom  = "custom"
)

// LogEntry is one consumed food item. The macro fields hold per-serving
// values; Quantity scales them at aggregation time. An entry is never
// mutated after creation, only removed.
type LogEntry struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Image    string    `json:"image,omitempty"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Quantity float64   `json:"quantity"`
	LoggedAt time.Time `json:"logged_at"`
}

// Totals are aggregated macros for a set of entries (quantity applied).
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailyTargets are the per-day macro ceilings progress is measured against.
type DailyTargets struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DefaultTargets apply to every user and every date.
var DefaultTargets = DailyTargets{
	Calories: 2000,
	Protein:  50,
	Carbs:    250,
	Fat:      65,
}

// Progress holds per-nutrient percentages of the daily target, each
// clamped to [0, 100].
type Progress struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// WeeklyDay is one day of the trailing-week overview.
type WeeklyDay struct {
	Date  string `json:"date"`  // "2006-01-02"
	Label string `json:"label"` // "Mon", "Tue", …
	Totals
}
