package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteWeeklyCSV renders the weekly summary table in the report wire
// format.
func WriteWeeklyCSV(w io.Writer, summaries []Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Week", "Date Range", "Meal",
		"Most Consumed Dishes (kg)", "Least Consumed Dishes (kg)",
	}); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write([]string{s.Week, s.DateRange, string(s.Meal), s.Most, s.Least}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteMonthlyCSV renders the monthly summary table.
func WriteMonthlyCSV(w io.Writer, summaries []MonthlySummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Month", "Meal",
		"Most Consumed Dishes (kg)", "Least Consumed Dishes (kg)",
	}); err != nil {
		return err
	}
	for _, s := range summaries {
		if err := cw.Write([]string{s.Month, string(s.Meal), s.Most, s.Least}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFactsCSV renders an expanded weekly table.
func WriteFactsCSV(w io.Writer, facts []Fact) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"Week", "Date Range", "Meal", "Dish Name", "Quantity (kg)",
	}); err != nil {
		return err
	}
	for _, f := range facts {
		if err := cw.Write([]string{
			f.Week, f.DateRange, string(f.Meal), f.Dish,
			fmt.Sprintf("%.2f", f.QuantityKg),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
