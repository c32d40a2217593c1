package consumption

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for all dates in CSV files and API payloads.
const DateLayout = "02/01/2006"

type MealType string

const (
	Breakfast MealType = "Breakfast"
	Lunch     MealType = "Lunch"
	Dinner    MealType = "Dinner"
)

// MealOrder is the serving order used everywhere a day is iterated.
var MealOrder = []MealType{Breakfast, Lunch, Dinner}

// ParseMealType normalizes a meal token from a request or CSV cell.
func ParseMealType(s string) (MealType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "breakfast":
		return Breakfast, true
	case "lunch":
		return Lunch, true
	case "dinner":
		return Dinner, true
	}
	return "", false
}

// Record is one served-dish observation. Source of truth; immutable once
// recorded.
type Record struct {
	Date       time.Time `json:"date"`
	Meal       MealType  `json:"meal_type"`
	Dish       string    `json:"dish_name"`
	QuantityKg float64   `json:"quantity_kg"`
	RecordedBy string    `json:"recorded_by,omitempty"`
}

// WasteRecord mirrors Record for leftover quantities.
type WasteRecord struct {
	Date       time.Time `json:"date"`
	Meal       MealType  `json:"meal_type"`
	Dish       string    `json:"dish_name"`
	QuantityKg float64   `json:"quantity_kg"`
	RecordedBy string    `json:"recorded_by,omitempty"`
}

// Portion is one dish entry of a day's meal list.
type Portion struct {
	Dish string
	Kg   float64
}

// DayRecord is the aggregator's input row: one calendar day with three
// parallel item/quantity lists.
type DayRecord struct {
	MonthYear string // e.g. "Aug2024"
	Week      int    // week-of-month, 1-based
	Date      time.Time
	Breakfast []Portion
	Lunch     []Portion
	Dinner    []Portion
}

// Portions returns the list for the given meal.
func (d DayRecord) Portions(meal MealType) []Portion {
	switch meal {
	case Breakfast:
		return d.Breakfast
	case Lunch:
		return d.Lunch
	case Dinner:
		return d.Dinner
	}
	return nil
}

// ParsePortions zips the semicolon-joined item and quantity lists.
// Entries whose quantity token is not a valid non-negative decimal are
// skipped, never reported.
func ParsePortions(items, kgs string) []Portion {
	names := strings.Split(items, ";")
	quantities := strings.Split(kgs, ";")

	n := len(names)
	if len(quantities) < n {
		n = len(quantities)
	}

	portions := make([]Portion, 0, n)
	for i := 0; i < n; i++ {
		name := strings.TrimSpace(names[i])
		if name == "" {
			continue
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(quantities[i]), 64)
		if err != nil || qty < 0 {
			continue
		}
		portions = append(portions, Portion{Dish: name, Kg: qty})
	}
	return portions
}

// WeekOfMonth returns the 1-based 7-day stride index for a date,
// anchored to the 1st of its month.
func WeekOfMonth(date time.Time) int {
	return (date.Day()-1)/7 + 1
}

// MonthYearLabel formats a date as the bucket month label, e.g. "Aug2024".
func MonthYearLabel(date time.Time) string {
	return date.Format("Jan2006")
}

// DayRecordsFromRecords groups normalized records back into per-day rows
// for the aggregator. Order follows first encounter of each date; within a
// meal, dishes keep insertion order with duplicate names accumulated.
func DayRecordsFromRecords(records []Record) []DayRecord {
	type dayAcc struct {
		rec   *DayRecord
		index map[MealType]map[string]int
	}

	var order []string
	days := make(map[string]*dayAcc)

	for _, r := range records {
		key := r.Date.Format(DateLayout)
		acc, ok := days[key]
		if !ok {
			acc = &dayAcc{
				rec: &DayRecord{
					MonthYear: MonthYearLabel(r.Date),
					Week:      WeekOfMonth(r.Date),
					Date:      r.Date,
				},
				index: map[MealType]map[string]int{
					Breakfast: {},
					Lunch:     {},
					Dinner:    {},
				},
			}
			days[key] = acc
			order = append(order, key)
		}

		idx := acc.index[r.Meal]
		if idx == nil {
			continue // unknown meal slot
		}
		list := acc.rec.Portions(r.Meal)
		if pos, dup := idx[r.Dish]; dup {
			list[pos].Kg += r.QuantityKg
			continue
		}
		idx[r.Dish] = len(list)
		list = append(list, Portion{Dish: r.Dish, Kg: r.QuantityKg})
		switch r.Meal {
		case Breakfast:
			acc.rec.Breakfast = list
		case Lunch:
			acc.rec.Lunch = list
		case Dinner:
			acc.rec.Dinner = list
		}
	}

	out := make([]DayRecord, 0, len(order))
	for _, key := range order {
		out = append(out, *days[key].rec)
	}
	return out
}
