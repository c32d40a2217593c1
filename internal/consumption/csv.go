package consumption

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Input fact columns, in file order.
var dayRecordColumns = []string{
	"month_year", "week", "date",
	"breakfast_items", "breakfast_kg",
	"lunch_items", "lunch_kg",
	"dinner_items", "dinner_kg",
}

// ErrMissingColumn reports a required aggregation column absent from an
// uploaded file. Fatal to that call, surfaced to the caller.
type ErrMissingColumn struct {
	Column string
}

func (e ErrMissingColumn) Error() string {
	return fmt.Sprintf("missing required column: %s", e.Column)
}

// ReadDayRecords parses the per-day consumption fact CSV
// (month_year, week, date, <meal>_items, <meal>_kg triplets).
// Rows with an unparsable date or week token are skipped; a missing
// header column is fatal.
func ReadDayRecords(r io.Reader) ([]DayRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, name := range dayRecordColumns {
		if _, ok := col[name]; !ok {
			return nil, ErrMissingColumn{Column: name}
		}
	}

	var days []DayRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		field := func(name string) string {
			i := col[name]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}

		date, err := time.Parse(DateLayout, strings.TrimSpace(field("date")))
		if err != nil {
			continue
		}
		week, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(field("week")), "week"))
		if err != nil || week < 1 {
			continue
		}

		days = append(days, DayRecord{
			MonthYear: strings.TrimSpace(field("month_year")),
			Week:      week,
			Date:      date,
			Breakfast: ParsePortions(field("breakfast_items"), field("breakfast_kg")),
			Lunch:     ParsePortions(field("lunch_items"), field("lunch_kg")),
			Dinner:    ParsePortions(field("dinner_items"), field("dinner_kg")),
		})
	}
	return days, nil
}

// Records explodes a day row into normalized consumption records.
func (d DayRecord) Records(recordedBy string) []Record {
	var out []Record
	for _, meal := range MealOrder {
		for _, p := range d.Portions(meal) {
			out = append(out, Record{
				Date:       d.Date,
				Meal:       meal,
				Dish:       p.Dish,
				QuantityKg: p.Kg,
				RecordedBy: recordedBy,
			})
		}
	}
	return out
}
