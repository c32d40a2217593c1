package report

import (
	"strings"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

// MealExtremes is the admin report's view of one meal slot: the single
// most and least consumed dish over the selected window.
type MealExtremes struct {
	Meal      consumption.MealType `json:"meal"`
	MostDish  string               `json:"most_consumed_dish"`
	MostKg    float64              `json:"most_consumed_kg"`
	LeastDish string               `json:"least_consumed_dish"`
	LeastKg   float64              `json:"least_consumed_kg"`
}

// FilterWindow keeps facts whose bucket overlaps [start, end].
func FilterWindow(facts []Fact, start, end time.Time) []Fact {
	var out []Fact
	for _, f := range facts {
		if !f.End.Before(start) && !f.Start.After(end) {
			out = append(out, f)
		}
	}
	return out
}

// extremes ranks per-dish totals within each meal and keeps the two ends.
// Meals with no data are omitted.
func extremes(sum func(meal consumption.MealType, c *counter)) []MealExtremes {
	var out []MealExtremes
	for _, meal := range consumption.MealOrder {
		c := newCounter()
		sum(meal, c)
		ranked := c.ranked()
		if len(ranked) == 0 {
			continue
		}
		out = append(out, MealExtremes{
			Meal:      meal,
			MostDish:  ranked[0].dish,
			MostKg:    ranked[0].kg,
			LeastDish: ranked[len(ranked)-1].dish,
			LeastKg:   ranked[len(ranked)-1].kg,
		})
	}
	return out
}

// WeeklyExtremes builds the admin consumption report data for a date
// window from the combined most+least expanded tables.
func WeeklyExtremes(most, least []Fact, start, end time.Time) []MealExtremes {
	combined := append(FilterWindow(most, start, end), FilterWindow(least, start, end)...)
	return extremes(func(meal consumption.MealType, c *counter) {
		for _, f := range combined {
			if f.Meal == meal {
				c.add(f.Dish, f.QuantityKg)
			}
		}
	})
}

// MonthlyExtremes is the calendar-month variant, selected by a
// case-insensitive month label (e.g. "aug2024").
func MonthlyExtremes(most, least []MonthlyFact, monthYear string) []MealExtremes {
	want := strings.ToLower(monthYear)
	combined := append(append([]MonthlyFact(nil), most...), least...)
	return extremes(func(meal consumption.MealType, c *counter) {
		for _, f := range combined {
			if f.Meal == meal && strings.ToLower(f.Month) == want {
				c.add(f.Dish, f.QuantityKg)
			}
		}
	})
}
