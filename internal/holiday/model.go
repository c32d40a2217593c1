package holiday

import "time"

// MinHolidayDays is the duration a named period must span before it
// counts as a holiday for demand adjustment. Duration is end minus start
// in whole days, exclusive of the end day.
const MinHolidayDays = 7

// Period is one named holiday interval from the schedule.
type Period struct {
	Name  string    `json:"name"`
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Days returns end minus start in whole days.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours() / 24)
}

// Contains reports whether date falls inside the period, inclusive of
// both ends.
func (p Period) Contains(date time.Time) bool {
	return !date.Before(p.Start) && !date.After(p.End)
}

// Calendar is an ordered list of holiday periods.
type Calendar []Period

// Qualifying keeps only periods long enough to adjust demand.
func (c Calendar) Qualifying() Calendar {
	var out Calendar
	for _, p := range c {
		if p.Days() >= MinHolidayDays {
			out = append(out, p)
		}
	}
	return out
}

// Find returns the first period containing the date.
func (c Calendar) Find(date time.Time) (Period, bool) {
	for _, p := range c {
		if p.Contains(date) {
			return p, true
		}
	}
	return Period{}, false
}
