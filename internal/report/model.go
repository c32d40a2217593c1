package report

import (
	"fmt"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

// Summary is one weekly bucket row: compact most/least consumed strings
// for a single meal slot. Derived data, recomputed on every run.
type Summary struct {
	Week      string                `json:"week"`       // e.g. "Aug2024_week2"
	DateRange string                `json:"date_range"` // "DD/MM/YYYY-DD/MM/YYYY"
	Meal      consumption.MealType  `json:"meal"`
	Most      string                `json:"most_consumed"`  // "dish: qty; dish: qty; ..."
	Least     string                `json:"least_consumed"` // same format, ascending
}

// MonthlySummary is the calendar-month variant, no date range.
type MonthlySummary struct {
	Month string               `json:"month"` // e.g. "Aug2024"
	Meal  consumption.MealType `json:"meal"`
	Most  string               `json:"most_consumed"`
	Least string               `json:"least_consumed"`
}

// Fact is one normalized row of the expanded weekly tables: a dish's
// total quantity within one bucket for one meal.
type Fact struct {
	Week       string               `json:"week"`
	DateRange  string               `json:"date_range"`
	Start      time.Time            `json:"-"`
	End        time.Time            `json:"-"`
	Meal       consumption.MealType `json:"meal"`
	Dish       string               `json:"dish_name"`
	QuantityKg float64              `json:"quantity_kg"`
}

// Days returns the bucket's inclusive day count.
func (f Fact) Days() int {
	return int(f.End.Sub(f.Start).Hours()/24) + 1
}

// MonthlyFact is the per-dish row of the expanded monthly tables.
type MonthlyFact struct {
	Month      string               `json:"month"`
	Meal       consumption.MealType `json:"meal"`
	Dish       string               `json:"dish_name"`
	QuantityKg float64              `json:"quantity_kg"`
}

// SplitDateRange parses a "DD/MM/YYYY-DD/MM/YYYY" bucket range.
func SplitDateRange(s string) (time.Time, time.Time, error) {
	if len(s) != 21 || s[10] != '-' {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed date range %q", s)
	}
	start, err := time.Parse(consumption.DateLayout, s[:10])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(consumption.DateLayout, s[11:])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// FormatDateRange renders a bucket range in the wire format.
func FormatDateRange(start, end time.Time) string {
	return start.Format(consumption.DateLayout) + "-" + end.Format(consumption.DateLayout)
}
