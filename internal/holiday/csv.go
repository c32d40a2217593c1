package holiday

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Akhil-Sharma-26/sync-spoon/internal/consumption"
)

// ReadCalendar parses the holiday schedule CSV
// (columns Holiday, Start Date, End Date, dates DD/MM/YYYY).
// Rows with unparsable dates are skipped.
func ReadCalendar(r io.Reader) (Calendar, error) {
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
	for _, name := range []string{"holiday", "start date", "end date"} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("missing required column: %s", name)
		}
	}

	var cal Calendar
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
			return strings.TrimSpace(row[i])
		}

		start, err := time.Parse(consumption.DateLayout, field("start date"))
		if err != nil {
			continue
		}
		end, err := time.Parse(consumption.DateLayout, field("end date"))
		if err != nil || end.Before(start) {
			continue
		}

		cal = append(cal, Period{Name: field("holiday"), Start: start, End: end})
	}
	return cal, nil
}
