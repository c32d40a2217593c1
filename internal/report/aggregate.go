package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

// counter accumulates per-dish quantity totals, preserving first-encounter
// order so ranking ties break stably.
type counter struct {
	order  []string
	totals map[string]float64
}

func newCounter() *counter {
	return &counter{totals: make(map[string]float64)}
}

func (c *counter) add(dish string, kg float64) {
	if _, ok := c.totals[dish]; !ok {
		c.order = append(c.order, dish)
	}
	c.totals[dish] += kg
}

type rankedDish struct {
	dish string
	kg   float64
}

// ranked returns dishes by total quantity descending, ties in encounter
// order.
func (c *counter) ranked() []rankedDish {
	out := make([]rankedDish, 0, len(c.order))
	for _, dish := range c.order {
		out = append(out, rankedDish{dish: dish, kg: c.totals[dish]})
	}
	// insertion sort keeps equal totals in encounter order
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].kg > out[j-1].kg; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// mostConsumed formats the top-n window.
func mostConsumed(ranked []rankedDish, n int) string {
	if len(ranked) < n {
		n = len(ranked)
	}
	parts := make([]string, 0, n)
	for _, r := range ranked[:n] {
		parts = append(parts, fmt.Sprintf("%s: %.2f", r.dish, r.kg))
	}
	return strings.Join(parts, "; ")
}

// leastConsumed formats the bottom-n window read from the tail, quantity
// ascending.
func leastConsumed(ranked []rankedDish, n int) string {
	if len(ranked) < n {
		n = len(ranked)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		r := ranked[len(ranked)-1-i]
		parts = append(parts, fmt.Sprintf("%s: %.2f", r.dish, r.kg))
	}
	return strings.Join(parts, "; ")
}

// WeekDateRange computes a week bucket's concrete interval from its month
// label and week index: start = 1st of month + 7*(week-1) days, end =
// start + 6 days clipped to the month's last day.
func WeekDateRange(monthYear string, week int) (time.Time, time.Time, error) {
	first, err := time.Parse("Jan2006", monthYear)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad month_year %q: %w", monthYear, err)
	}

	start := first.AddDate(0, 0, (week-1)*7)
	end := start.AddDate(0, 0, 6)
	endOfMonth := first.AddDate(0, 1, -1)
	if end.After(endOfMonth) {
		end = endOfMonth
	}
	return start, end, nil
}

const rankWindow = 3

type weekBucket struct {
	dateRange string
	meals     map[consumption.MealType]*counter
}

// Weekly groups day rows into (month, week-of-month) buckets and ranks
// each meal's dishes by accumulated quantity. One Summary row per
// (bucket, meal), buckets in first-encounter order, meals in serving
// order.
func Weekly(days []consumption.DayRecord) ([]Summary, error) {
	var order []string
	buckets := make(map[string]*weekBucket)

	for _, day := range days {
		key := fmt.Sprintf("%s_week%d", day.MonthYear, day.Week)

		b, ok := buckets[key]
		if !ok {
			start, end, err := WeekDateRange(day.MonthYear, day.Week)
			if err != nil {
				return nil, err
			}
			b = &weekBucket{
				dateRange: FormatDateRange(start, end),
				meals: map[consumption.MealType]*counter{
					consumption.Breakfast: newCounter(),
					consumption.Lunch:     newCounter(),
					consumption.Dinner:    newCounter(),
				},
			}
			buckets[key] = b
			order = append(order, key)
		}

		for _, meal := range consumption.MealOrder {
			for _, p := range day.Portions(meal) {
				b.meals[meal].add(p.Dish, p.Kg)
			}
		}
	}

	var summaries []Summary
	for _, key := range order {
		b := buckets[key]
		for _, meal := range consumption.MealOrder {
			ranked := b.meals[meal].ranked()
			summaries = append(summaries, Summary{
				Week:      key,
				DateRange: b.dateRange,
				Meal:      meal,
				Most:      mostConsumed(ranked, rankWindow),
				Least:     leastConsumed(ranked, rankWindow),
			})
		}
	}
	return summaries, nil
}

// Monthly is the calendar-month variant of Weekly. Kept as an optional
// report path; the suggestion pipeline runs on weekly buckets.
func Monthly(days []consumption.DayRecord) []MonthlySummary {
	var order []string
	buckets := make(map[string]map[consumption.MealType]*counter)

	for _, day := range days {
		b, ok := buckets[day.MonthYear]
		if !ok {
			b = map[consumption.MealType]*counter{
				consumption.Breakfast: newCounter(),
				consumption.Lunch:     newCounter(),
				consumption.Dinner:    newCounter(),
			}
			buckets[day.MonthYear] = b
			order = append(order, day.MonthYear)
		}
		for _, meal := range consumption.MealOrder {
			for _, p := range day.Portions(meal) {
				b[meal].add(p.Dish, p.Kg)
			}
		}
	}

	var summaries []MonthlySummary
	for _, key := range order {
		for _, meal := range consumption.MealOrder {
			ranked := buckets[key][meal].ranked()
			summaries = append(summaries, MonthlySummary{
				Month: key,
				Meal:  meal,
				Most:  mostConsumed(ranked, rankWindow),
				Least: leastConsumed(ranked, rankWindow),
			})
		}
	}
	return summaries
}
