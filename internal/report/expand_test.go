package report

import (
	"math"
	"testing"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

func TestExpandMost_OneFactPerDish(t *testing.T) {
	summaries := []Summary{
		{
			Week:      "Aug2024_week1",
			DateRange: "01/08/2024-07/08/2024",
			Meal:      consumption.Breakfast,
			Most:      "Idli: 15.00; Upma: 7.00; Dosa: 4.00",
			Least:     "Dosa: 4.00; Upma: 7.00; Idli: 15.00",
		},
	}

	facts := ExpandMost(summaries)
	if len(facts) != 3 {
		t.Fatalf("expected 3 facts, got %d", len(facts))
	}

	if facts[0].Dish != "Idli" || facts[0].QuantityKg != 15 {
		t.Errorf("first fact: got %+v", facts[0])
	}
	if facts[0].Week != "Aug2024_week1" || facts[0].Meal != consumption.Breakfast {
		t.Errorf("bucket columns not carried: %+v", facts[0])
	}
	if facts[0].Days() != 7 {
		t.Errorf("expected 7 day bucket, got %d", facts[0].Days())
	}
}

func TestExpandLeast_AscendingOrderPreserved(t *testing.T) {
	summaries := []Summary{
		{
			Week:      "Aug2024_week1",
			DateRange: "01/08/2024-07/08/2024",
			Meal:      consumption.Lunch,
			Least:     "Chole: 2.50; Rajma: 3.00",
		},
	}

	facts := ExpandLeast(summaries)
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}
	if facts[0].Dish != "Chole" || facts[1].Dish != "Rajma" {
		t.Errorf("order not preserved: %v, %v", facts[0].Dish, facts[1].Dish)
	}
}

func TestExpand_SumPreserved(t *testing.T) {
	summaries := []Summary{
		{
			Week:      "Aug2024_week2",
			DateRange: "08/08/2024-14/08/2024",
			Meal:      consumption.Dinner,
			Most:      "Tawa Roti: 120.50; Dal Makhani: 88.25; Kadai Paneer: 61.00",
		},
	}

	facts := ExpandMost(summaries)
	var sum float64
	for _, f := range facts {
		sum += f.QuantityKg
	}
	if math.Abs(sum-269.75) > 1e-9 {
		t.Errorf("expanded sum %v, want 269.75", sum)
	}
}

func TestExpand_SkipsMalformedEntries(t *testing.T) {
	summaries := []Summary{
		{
			Week:      "Aug2024_week1",
			DateRange: "01/08/2024-07/08/2024",
			Meal:      consumption.Breakfast,
			Most:      "Idli: 5.00; bogus entry; : 3.00; Dosa: x; Upma: 2.00 kg",
		},
	}

	facts := ExpandMost(summaries)
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}
	if facts[1].Dish != "Upma" || facts[1].QuantityKg != 2 {
		t.Errorf("kg suffix not stripped: %+v", facts[1])
	}
}

func TestExpand_DuplicateDishSummed(t *testing.T) {
	summaries := []Summary{
		{
			Week:      "Aug2024_week1",
			DateRange: "01/08/2024-07/08/2024",
			Meal:      consumption.Breakfast,
			Most:      "Idli: 5.00; Idli: 3.00",
		},
	}

	facts := ExpandMost(summaries)
	if len(facts) != 1 {
		t.Fatalf("expected 1 fact, got %d", len(facts))
	}
	if facts[0].QuantityKg != 8 {
		t.Errorf("expected summed quantity 8, got %v", facts[0].QuantityKg)
	}
}

func TestExpand_BadDateRangeDropped(t *testing.T) {
	summaries := []Summary{
		{Week: "w", DateRange: "garbage", Meal: consumption.Breakfast, Most: "Idli: 5.00"},
	}
	if facts := ExpandMost(summaries); len(facts) != 0 {
		t.Fatalf("expected no facts for malformed range, got %d", len(facts))
	}
}

func TestExpandMostMonthly(t *testing.T) {
	summaries := []MonthlySummary{
		{Month: "Aug2024", Meal: consumption.Lunch, Most: "Dal Tadka: 300.00; Rajma: 120.00"},
	}

	facts := ExpandMostMonthly(summaries)
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d", len(facts))
	}
	if facts[0].Month != "Aug2024" || facts[0].Dish != "Dal Tadka" || facts[0].QuantityKg != 300 {
		t.Errorf("got %+v", facts[0])
	}
}
