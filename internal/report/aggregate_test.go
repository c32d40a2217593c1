package report

import (
	"testing"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func day(t *testing.T, date string, breakfast []consumption.Portion) consumption.DayRecord {
	t.Helper()
	d, err := time.Parse(consumption.DateLayout, date)
	if err != nil {
		t.Fatalf("bad test date %q: %v", date, err)
	}
	return consumption.DayRecord{
		MonthYear: consumption.MonthYearLabel(d),
		Week:      consumption.WeekOfMonth(d),
		Date:      d,
		Breakfast: breakfast,
	}
}

func findSummary(t *testing.T, summaries []Summary, week string, meal consumption.MealType) Summary {
	t.Helper()
	for _, s := range summaries {
		if s.Week == week && s.Meal == meal {
			return s
		}
	}
	t.Fatalf("no summary for %s/%s", week, meal)
	return Summary{}
}

// --------------------------------------------------
// Weekly aggregation
// --------------------------------------------------

func TestWeekly_RanksByAccumulatedQuantity(t *testing.T) {
	days := []consumption.DayRecord{
		day(t, "01/08/2024", []consumption.Portion{
			{Dish: "Idli", Kg: 10}, {Dish: "Dosa", Kg: 4},
		}),
		day(t, "02/08/2024", []consumption.Portion{
			{Dish: "Idli", Kg: 5}, {Dish: "Upma", Kg: 7},
		}),
	}

	summaries, err := Weekly(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := findSummary(t, summaries, "Aug2024_week1", consumption.Breakfast)

	if s.Most != "Idli: 15.00; Upma: 7.00; Dosa: 4.00" {
		t.Errorf("most: got %q", s.Most)
	}
	// least reads the ranking tail backwards, ascending
	if s.Least != "Dosa: 4.00; Upma: 7.00; Idli: 15.00" {
		t.Errorf("least: got %q", s.Least)
	}
	if s.DateRange != "01/08/2024-07/08/2024" {
		t.Errorf("date range: got %q", s.DateRange)
	}
}

func TestWeekly_FewerDishesThanWindow(t *testing.T) {
	days := []consumption.DayRecord{
		day(t, "01/08/2024", []consumption.Portion{
			{Dish: "Poha", Kg: 3},
		}),
	}

	summaries, err := Weekly(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := findSummary(t, summaries, "Aug2024_week1", consumption.Breakfast)
	if s.Most != "Poha: 3.00" {
		t.Errorf("most: got %q", s.Most)
	}
	if s.Least != "Poha: 3.00" {
		t.Errorf("least: got %q", s.Least)
	}
}

func TestWeekly_EmptyMealSlot(t *testing.T) {
	days := []consumption.DayRecord{
		day(t, "01/08/2024", []consumption.Portion{{Dish: "Idli", Kg: 2}}),
	}

	summaries, err := Weekly(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := findSummary(t, summaries, "Aug2024_week1", consumption.Lunch)
	if s.Most != "" || s.Least != "" {
		t.Errorf("expected empty strings for unserved meal, got %q / %q", s.Most, s.Least)
	}
}

func TestWeekly_SplitsMonthBoundary(t *testing.T) {
	days := []consumption.DayRecord{
		day(t, "31/08/2024", []consumption.Portion{{Dish: "Idli", Kg: 2}}),
		day(t, "01/09/2024", []consumption.Portion{{Dish: "Idli", Kg: 3}}),
	}

	summaries, err := Weekly(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// consecutive days, but different months means different buckets
	s1 := findSummary(t, summaries, "Aug2024_week5", consumption.Breakfast)
	s2 := findSummary(t, summaries, "Sep2024_week1", consumption.Breakfast)
	if s1.Most != "Idli: 2.00" {
		t.Errorf("Aug bucket: got %q", s1.Most)
	}
	if s2.Most != "Idli: 3.00" {
		t.Errorf("Sep bucket: got %q", s2.Most)
	}
}

func TestWeekly_Deterministic(t *testing.T) {
	days := []consumption.DayRecord{
		day(t, "05/08/2024", []consumption.Portion{
			{Dish: "Idli", Kg: 4}, {Dish: "Dosa", Kg: 4}, {Dish: "Upma", Kg: 4},
		}),
	}

	first, err := Weekly(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Weekly(days)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("row %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// --------------------------------------------------
// Week bucket intervals
// --------------------------------------------------

func TestWeekDateRange_ClipsToMonthEnd(t *testing.T) {
	cases := []struct {
		month string
		week  int
		start string
		end   string
	}{
		{"Aug2024", 1, "01/08/2024", "07/08/2024"},
		{"Aug2024", 4, "22/08/2024", "28/08/2024"},
		{"Aug2024", 5, "29/08/2024", "31/08/2024"}, // partial trailing week
		{"Feb2024", 5, "29/02/2024", "29/02/2024"}, // leap day
	}

	for _, tc := range cases {
		start, end, err := WeekDateRange(tc.month, tc.week)
		if err != nil {
			t.Fatalf("%s week%d: %v", tc.month, tc.week, err)
		}
		if got := start.Format(consumption.DateLayout); got != tc.start {
			t.Errorf("%s week%d start: got %s, want %s", tc.month, tc.week, got, tc.start)
		}
		if got := end.Format(consumption.DateLayout); got != tc.end {
			t.Errorf("%s week%d end: got %s, want %s", tc.month, tc.week, got, tc.end)
		}
	}
}

func TestWeekDateRange_BadMonthLabel(t *testing.T) {
	if _, _, err := WeekDateRange("notamonth", 1); err == nil {
		t.Fatal("expected error for malformed month label")
	}
}

// --------------------------------------------------
// Monthly aggregation
// --------------------------------------------------

func TestMonthly_AccumulatesAcrossWeeks(t *testing.T) {
	days := []consumption.DayRecord{
		day(t, "01/08/2024", []consumption.Portion{{Dish: "Idli", Kg: 10}}),
		day(t, "20/08/2024", []consumption.Portion{{Dish: "Idli", Kg: 6}, {Dish: "Dosa", Kg: 9}}),
	}

	summaries := Monthly(days)

	var got MonthlySummary
	found := false
	for _, s := range summaries {
		if s.Month == "Aug2024" && s.Meal == consumption.Breakfast {
			got = s
			found = true
		}
	}
	if !found {
		t.Fatal("no Aug2024 breakfast summary")
	}
	if got.Most != "Idli: 16.00; Dosa: 9.00" {
		t.Errorf("most: got %q", got.Most)
	}
}
