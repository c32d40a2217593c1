package report

import (
	"strconv"
	"strings"
)

// parseDishQuantity splits one "dish: qty" entry. Reports ok=false for
// malformed entries (extra colons, unparsable quantity); callers drop
// those silently, the compact strings are a lossy serialization.
func parseDishQuantity(entry string) (string, float64, bool) {
	parts := strings.Split(entry, ":")
	if len(parts) != 2 {
		return "", 0, false
	}
	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", 0, false
	}

	token := strings.TrimSpace(parts[1])
	token = strings.TrimSpace(strings.TrimSuffix(token, "kg"))
	qty, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return "", 0, false
	}
	return name, qty, true
}

// expandRow turns one compact string into per-dish totals, summing when
// a dish name appears twice within the row.
func expandRow(compact string) ([]string, map[string]float64) {
	var order []string
	totals := make(map[string]float64)

	for _, entry := range strings.Split(compact, ";") {
		name, qty, ok := parseDishQuantity(entry)
		if !ok {
			continue
		}
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += qty
	}
	return order, totals
}

func expandWeekly(summaries []Summary, pick func(Summary) string) []Fact {
	var facts []Fact
	for _, s := range summaries {
		start, end, err := SplitDateRange(s.DateRange)
		if err != nil {
			continue
		}
		order, totals := expandRow(pick(s))
		for _, dish := range order {
			facts = append(facts, Fact{
				Week:       s.Week,
				DateRange:  s.DateRange,
				Start:      start,
				End:        end,
				Meal:       s.Meal,
				Dish:       dish,
				QuantityKg: totals[dish],
			})
		}
	}
	return facts
}

// ExpandMost normalizes the most-consumed strings into one row per
// (bucket, meal, dish).
func ExpandMost(summaries []Summary) []Fact {
	return expandWeekly(summaries, func(s Summary) string { return s.Most })
}

// ExpandLeast does the same for the least-consumed strings.
func ExpandLeast(summaries []Summary) []Fact {
	return expandWeekly(summaries, func(s Summary) string { return s.Least })
}

func expandMonthly(summaries []MonthlySummary, pick func(MonthlySummary) string) []MonthlyFact {
	var facts []MonthlyFact
	for _, s := range summaries {
		order, totals := expandRow(pick(s))
		for _, dish := range order {
			facts = append(facts, MonthlyFact{
				Month:      s.Month,
				Meal:       s.Meal,
				Dish:       dish,
				QuantityKg: totals[dish],
			})
		}
	}
	return facts
}

// ExpandMostMonthly and ExpandLeastMonthly serve the monthly report path.
func ExpandMostMonthly(summaries []MonthlySummary) []MonthlyFact {
	return expandMonthly(summaries, func(s MonthlySummary) string { return s.Most })
}

func ExpandLeastMonthly(summaries []MonthlySummary) []MonthlyFact {
	return expandMonthly(summaries, func(s MonthlySummary) string { return s.Least })
}
